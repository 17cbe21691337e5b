// Package ident produces the opaque string ids used for projects and
// tasks. Ids pair a monotonically-increasing millisecond time component
// with random entropy (UUIDv7), so no two calls in a process collide and
// ids sort roughly by creation time. Global uniqueness across devices is
// not promised; there is no merge path that would need it.
package ident

import (
	"github.com/google/uuid"
)

// New returns a fresh opaque id.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		// entropy source failure; a random v4 still satisfies uniqueness
		return uuid.New().String()
	}
	return id.String()
}
