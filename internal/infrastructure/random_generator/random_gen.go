package randomgenerator

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
)

type RandomGenerator struct{}

var _ contract.IRandomGenerator = (*RandomGenerator)(nil)

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

// GenerateRandomToken returns n random bytes encoded as unpadded base64url.
func (rg *RandomGenerator) GenerateRandomToken(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("token length must be positive, got %d", n)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
