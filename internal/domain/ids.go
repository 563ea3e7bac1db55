package domain

import "github.com/google/uuid"

// CanonicalID returns id in the lowercase hyphenated form the store uses.
// Any spelling uuid.Parse accepts (upper case, braces, urn:uuid:) is
// rewritten; ok is false when id is not an identifier at all.
func CanonicalID(id string) (string, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}
