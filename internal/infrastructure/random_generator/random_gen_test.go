package randomgenerator

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomToken(t *testing.T) {
	rg := NewRandomGenerator()

	a, err := rg.GenerateRandomToken(16)
	require.NoError(t, err)
	b, err := rg.GenerateRandomToken(16)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	raw, err := base64.RawURLEncoding.DecodeString(a)
	require.NoError(t, err)
	assert.Len(t, raw, 16)
}

func TestGenerateRandomToken_InvalidLength(t *testing.T) {
	_, err := NewRandomGenerator().GenerateRandomToken(0)
	assert.Error(t, err)
}
