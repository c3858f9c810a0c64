package id

import "github.com/google/uuid"

// Generator creates opaque identifiers, used to tag outgoing requests.
type Generator interface {
	New() string
}

type UUID struct{}

func (UUID) New() string {
	return uuid.NewString()
}
