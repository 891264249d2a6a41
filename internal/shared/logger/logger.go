package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "WARN":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

func levelString(l Level) string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ErrObj carries error details for ERROR entries.
type ErrObj struct {
	Msg   string `json:"msg"`
	Stack string `json:"stack,omitempty"`
}

// Entry is the line schema every service emits.
type Entry struct {
	Timestamp  string         `json:"timestamp"`            // ISO 8601 (UTC)
	Level      string         `json:"level"`                // INFO | DEBUG | WARN | ERROR
	Service    string         `json:"service"`              // e.g., vehicle-service
	Action     string         `json:"action"`               // event name, e.g., vehicle_added
	Message    string         `json:"message"`              // human-readable
	Hostname   string         `json:"hostname"`             // container/host
	RequestID  string         `json:"request_id,omitempty"` // correlation id
	VehicleID  string         `json:"vehicle_id,omitempty"` // when applicable
	Error      *ErrObj        `json:"error,omitempty"`      // only for ERROR
	Additional map[string]any `json:"additional,omitempty"` // optional extras
}

type Logger struct {
	service  string
	minLevel Level
	hostname string
	pretty   bool

	outWriter io.Writer
	errWriter io.Writer
	mu        sync.Mutex
}

// NewLogger writes JSON lines to stdout, errors to stderr.
func NewLogger(service string) *Logger {
	h, _ := os.Hostname()
	return &Logger{
		service:   service,
		minLevel:  ParseLevel(os.Getenv("LOG_LEVEL")),
		hostname:  h,
		pretty:    strings.ToLower(os.Getenv("LOG_PRETTY")) == "true",
		outWriter: os.Stdout,
		errWriter: os.Stderr,
	}
}

func (l *Logger) Debug(e Entry) { l.log(LevelDebug, e, nil) }
func (l *Logger) Info(e Entry)  { l.log(LevelInfo, e, nil) }
func (l *Logger) Warn(e Entry)  { l.log(LevelWarn, e, nil) }
func (l *Logger) Error(e Entry) { l.log(LevelError, e, nil) }

func (l *Logger) Fatal(e Entry) {
	if e.Error == nil {
		e.Error = &ErrObj{Msg: e.Message, Stack: string(debug.Stack())}
	} else if e.Error.Stack == "" {
		e.Error.Stack = string(debug.Stack())
	}
	l.log(LevelError, e, nil)
	os.Exit(1)
}

// WithContext attaches request_id and vehicle_id to every entry.
func (l *Logger) WithContext(requestID, vehicleID string) *ContextLogger {
	base := map[string]any{}
	if requestID != "" {
		base["request_id"] = requestID
	}
	if vehicleID != "" {
		base["vehicle_id"] = vehicleID
	}
	return &ContextLogger{parent: l, base: base}
}

type ContextLogger struct {
	parent *Logger
	base   map[string]any
}

func (c *ContextLogger) Debug(e Entry) { c.parent.log(LevelDebug, e, c.base) }
func (c *ContextLogger) Info(e Entry)  { c.parent.log(LevelInfo, e, c.base) }
func (c *ContextLogger) Warn(e Entry)  { c.parent.log(LevelWarn, e, c.base) }
func (c *ContextLogger) Error(e Entry) { c.parent.log(LevelError, e, c.base) }

func (l *Logger) log(level Level, e Entry, base map[string]any) {
	if level < l.minLevel {
		return
	}

	if e.Timestamp == "" {
		e.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	if e.Level == "" {
		e.Level = levelString(level)
	}
	if e.Service == "" {
		e.Service = l.service
	}
	if e.Hostname == "" {
		e.Hostname = l.hostname
	}
	if e.RequestID == "" {
		e.RequestID = baseString(base, "request_id")
	}
	if e.VehicleID == "" {
		e.VehicleID = baseString(base, "vehicle_id")
	}

	for k, v := range base {
		switch k {
		case "request_id", "vehicle_id":
			continue
		}
		if e.Additional == nil {
			e.Additional = map[string]any{}
		}
		e.Additional[k] = v
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	writer := l.outWriter
	if level == LevelError {
		writer = l.errWriter
	}

	var b []byte
	var err error
	if l.pretty {
		b, err = json.MarshalIndent(e, "", "  ")
	} else {
		b, err = json.Marshal(e)
	}
	if err != nil {
		fmt.Fprintf(l.errWriter, `{"timestamp":"%s","level":"ERROR","service":"%s","message":"failed to marshal log: %v"}`+"\n",
			time.Now().UTC().Format(time.RFC3339Nano), l.service, err)
		return
	}

	_, _ = writer.Write(b)
	_, _ = writer.Write([]byte("\n"))
}

func baseString(m map[string]any, k string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[k].(string); ok {
		return s
	}
	return ""
}
