package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationIDIsOrderIndependent(t *testing.T) {
	pairs := [][2]string{
		{"a", "b"},
		{"8f0c2a1e-user", "1b2d3c4e-admin"},
		{"same", "same"},
	}
	for _, p := range pairs {
		assert.Equal(t, ConversationID(p[0], p[1]), ConversationID(p[1], p[0]))
	}
	assert.Equal(t, "a_b", ConversationID("b", "a"))
}

func TestConversationParticipants(t *testing.T) {
	id := ConversationID("u2", "u1")

	assert.Equal(t, []string{"u1", "u2"}, ConversationParticipants(id))
	assert.True(t, IsConversationParticipant(id, "u2"))
	assert.False(t, IsConversationParticipant(id, "u3"))
	assert.Nil(t, ConversationParticipants("malformed"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "healthy-breakfast-ideas", Slugify("  Healthy Breakfast  Ideas! "))
	assert.Equal(t, "10-tips", Slugify("10 tips"))
	assert.Equal(t, "", Slugify("!!!"))
}
