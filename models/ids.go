package models

import "github.com/google/uuid"

// IsUUIDv4 reports whether s is a canonical, hyphenated version 4 UUID.
// Case is ignored.
func IsUUIDv4(s string) bool {
	if len(s) != 36 {
		return false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return id.Version() == 4 && id.Variant() == uuid.RFC4122
}
