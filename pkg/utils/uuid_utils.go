package utils

import (
	"github.com/google/uuid"
)

// GenerateUUIDv7 returns a time-ordered UUID for new rows. v7 keeps
// primary keys roughly insertion-ordered; on the rare v7 failure a
// random v4 is used instead.
func GenerateUUIDv7() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
