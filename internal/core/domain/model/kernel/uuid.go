package kernel

import (
	"bytes"
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through one of the constructor functions.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object used by every aggregate in the engine:
// orders, line items, status change records and consolidated orders.
// It wraps github.com/google/uuid and treats the nil UUID as "not constructed".
//
// Example:
//
//	orderID := kernel.NewUUID()
//	parsed, err := kernel.UUIDFromString(c.Param("id"))
//	if err != nil {
//	    return errs.NewValueIsInvalidErrorWithCause("order id", err)
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the canonical textual representation.
// The nil UUID parses successfully but fails Validate.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes restores an identifier read from the store.
// Unlike UUIDFromString it rejects the nil UUID, because persisted rows never carry one.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying google/uuid value, used by persistence DTOs.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Compare orders identifiers by their byte value, which matches the ordering of
// their canonical string form. Used wherever a deterministic tie-break is required.
func (u UUID) Compare(other UUID) int {
	return bytes.Compare(u.id[:], other.id[:])
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// MarshalText renders the identifier for JSON event payloads and HTTP responses.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.id.String()), nil
}

// UnmarshalText parses the canonical textual representation.
func (u *UUID) UnmarshalText(text []byte) error {
	parsed, err := UUIDFromString(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
