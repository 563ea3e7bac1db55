package service

import "github.com/spec-kit/clinic-roster/internal/domain"

// canonicalID normalizes a path id before it reaches the store. Malformed ids
// can never resolve, so callers report them as not found without a round trip.
func canonicalID(id string) (string, bool) {
	return domain.CanonicalID(id)
}
