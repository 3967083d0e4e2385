package models

import "github.com/oklog/ulid/v2"

// NewID returns a fresh ULID string used as the primary key for every entity.
func NewID() string {
	return ulid.Make().String()
}

// ValidID reports whether id parses as a ULID. Handlers use this to tell a
// malformed id (400) apart from one that simply does not resolve (404).
func ValidID(id string) bool {
	_, err := ulid.Parse(id)
	return err == nil
}
