package transport

import (
	"encoding/json"
	"net/http"
)

// Message is the body of the fixed response wrapper every handler uses.
// MsgBody is either a plain string or a structured payload.
type Message struct {
	MsgBody  interface{} `json:"msgBody"`
	MsgError bool        `json:"msgError"`
}

// Envelope is the wire shape existing clients depend on. The
// {message:{msgBody,msgError}} layout and the 200/201/400/403/500 status
// taxonomy are a hard external contract.
type Envelope struct {
	Message Message `json:"message"`
}

func respondEnvelope(w http.ResponseWriter, status int, body interface{}, isError bool) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Message: Message{MsgBody: body, MsgError: isError}})
}
