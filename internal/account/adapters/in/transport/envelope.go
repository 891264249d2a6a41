package transport

import (
	"encoding/json"
	"net/http"
)

// Message and Envelope mirror the wrapper the vehicle service uses so both
// services speak the same wire shape to the front end.
type Message struct {
	MsgBody  interface{} `json:"msgBody"`
	MsgError bool        `json:"msgError"`
}

type Envelope struct {
	Message Message `json:"message"`
}

func respondEnvelope(w http.ResponseWriter, status int, body interface{}, isError bool) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Message: Message{MsgBody: body, MsgError: isError}})
}
