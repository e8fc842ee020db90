package client

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Unwrap returns the "data" member of a response envelope when it is present
// and not null, and the whole body otherwise.
//
//	{"success":true,"data":[1,2,3]} -> [1,2,3]
//	[1,2,3]                         -> [1,2,3]
func Unwrap(raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return trimmed
	}
	data, ok := envelope["data"]
	if !ok || bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return trimmed
	}
	return data
}

// message extracts the "message" member of an error body.
func message(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Message
}
