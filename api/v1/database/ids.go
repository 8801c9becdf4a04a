package database

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz1234567890"
	idLength   = 20
)

// NewID returns a random lowercase alphanumeric id. Uniqueness is left to
// the primary key.
func NewID() (string, error) {
	id, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		return "", fmt.Errorf("%w: failed to generate id: %w", ErrDatabaseError, err)
	}
	return id, nil
}
