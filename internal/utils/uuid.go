package utils

import "github.com/google/uuid"

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered v7 UUID, or a random v4 one if the clock
// source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewRunID returns a fresh identifier for one backup run. Ids of successive
// runs sort in creation order.
func NewRunID() string {
	return NewUUIDGenerator().Generate()
}
