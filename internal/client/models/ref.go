package models

import (
	"bytes"
	"encoding/json"
)

// Ref is a reference to another record that the backend may or may not have
// populated. Value is nil when only the id was sent.
type Ref[T any] struct {
	ID    string
	Value *T
}

// RefTo returns an unpopulated reference to id.
func RefTo[T any](id string) Ref[T] {
	return Ref[T]{ID: id}
}

// Populated reports whether the referenced object was included.
func (r Ref[T]) Populated() bool { return r.Value != nil }

// RefID returns the referenced id. It is also what validation sees.
func (r Ref[T]) RefID() string { return r.ID }

// MarshalJSON writes the id only; the backend expects ids in request bodies.
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

func (r *Ref[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*r = Ref[T]{}
		return nil
	case b[0] == '"':
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*r = Ref[T]{ID: id}
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	var head struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	*r = Ref[T]{ID: head.ID, Value: &v}
	return nil
}
