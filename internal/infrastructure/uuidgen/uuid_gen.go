package uuidgen

import (
	"github.com/google/uuid"
	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
)

// Generator issues random (v4) UUID strings for document ids.
type Generator struct{}

// Ensure Generator implements the contract.IUUIDGenerator interface
var _ contract.IUUIDGenerator = (*Generator)(nil)

// NewGenerator creates a new UUID generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// NewUUID generates a new UUID.
func (g *Generator) NewUUID() string {
	return uuid.NewString()
}
