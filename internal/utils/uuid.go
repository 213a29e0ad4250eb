package utils

import "github.com/google/uuid"

// UUIDGenerator produces client-side record identifiers. UUIDv7 keeps ids
// roughly time-ordered, which keeps local indexes and remote upserts cheap.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
