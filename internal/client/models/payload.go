package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// EntityKind tags an outbox payload with the entity it replicates.
type EntityKind string

const (
	EntityKindUser  EntityKind = "user"
	EntityKindVital EntityKind = "vital"
)

// Action is the remote operation an outbox entry requests. Only creation is
// replicated; local rows are never updated or deleted.
type Action string

const ActionCreate Action = "create"

// ErrUnknownEntityKind is returned when an outbox payload is tagged with a
// kind this build does not know how to dispatch.
var ErrUnknownEntityKind = errors.New("unknown entity kind")

// UserPayload is the wire form of a user-creation operation. The remote side
// keys users by username, so the local numeric id is not part of the payload.
type UserPayload struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	FullName  *string `json:"full_name"`
	Birthdate string  `json:"birthdate"`
	Email     *string `json:"email"`
}

func (UserPayload) GetKind() EntityKind { return EntityKindUser }

// VitalPayload is the wire form of a vital-creation operation. The owning
// user is referenced by natural key (UserExternal = username) because the
// remote id space is independent of the local one.
type VitalPayload struct {
	UserExternal string   `json:"user_external"`
	Date         string   `json:"date"`
	Systolic     *int64   `json:"pressure_systolic"`
	Diastolic    *int64   `json:"pressure_diastolic"`
	Glucose      *float64 `json:"glucose"`
	Notes        *string  `json:"notes"`
}

func (VitalPayload) GetKind() EntityKind { return EntityKindVital }

// TypedPayload is implemented by every payload variant.
type TypedPayload interface {
	GetKind() EntityKind
}

// EncodePayload serializes a typed payload for storage in the outbox.
func EncodePayload(p TypedPayload) ([]byte, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", p.GetKind(), err)
	}
	return b, nil
}

// DecodePayload parses raw outbox payload bytes into the variant selected by
// kind. The switch is exhaustive over the known kinds; anything else is
// ErrUnknownEntityKind so the sync driver can classify it as permanent.
func DecodePayload(kind EntityKind, raw []byte) (TypedPayload, error) {
	switch kind {
	case EntityKindUser:
		var p UserPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode user payload: %w", err)
		}
		return p, nil
	case EntityKindVital:
		var p VitalPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode vital payload: %w", err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntityKind, kind)
	}
}
