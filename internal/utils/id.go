package utils

import (
	"github.com/google/uuid"
)

// NewID returns a time-ordered UUIDv7 string. Ids generated by one process
// sort in creation order, even within the same clock tick.
func NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
