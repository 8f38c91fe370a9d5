package model

import "github.com/google/uuid"

// NewID creates a new unique bookmark ID.
func NewID() string {
	return uuid.New().String()
}
