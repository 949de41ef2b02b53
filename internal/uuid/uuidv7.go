// Package uuid issues time-ordered identifiers for session tokens and
// request IDs.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. UUIDv7 values sort by creation time, which
// keeps request IDs in log order.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Entropy failure; a random v4 is still unique.
		return googleuuid.NewString()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
