package core

import (
	"fmt"

	"github.com/google/uuid"
)

// -----------------------------------------------------------------------------
// ID
// -----------------------------------------------------------------------------

// ID is a random 128-bit identifier. Chunk files produced by concurrent task
// invocations sharing a working directory are isolated solely by the
// uniqueness of this prefix, so it must come from a collision-resistant
// source, never a process-local counter.
type ID string

func NewID() (ID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return ID(id.String()), nil
}

func MustNewID() ID {
	id, err := NewID()
	if err != nil {
		panic(err)
	}
	return id
}

func ParseID(s string) (ID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("failed to parse id: %w", err)
	}
	return ID(id.String()), nil
}

func (id ID) String() string {
	return string(id)
}

func (id ID) IsZero() bool {
	return id == ""
}
