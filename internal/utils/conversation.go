package utils

import (
	"sort"
	"strings"
)

const conversationSeparator = "_"

// ConversationID derives the thread key of two participants. The result does
// not depend on argument order.
func ConversationID(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return strings.Join(ids, conversationSeparator)
}

// IsConversationParticipant reports whether userID is one of the two ids
// encoded in conversationID.
func IsConversationParticipant(conversationID, userID string) bool {
	for _, id := range ConversationParticipants(conversationID) {
		if id == userID {
			return true
		}
	}
	return false
}

// ConversationParticipants splits a conversation id back into its ids.
// UUIDs never contain the separator, so the split is unambiguous.
func ConversationParticipants(conversationID string) []string {
	parts := strings.SplitN(conversationID, conversationSeparator, 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil
	}
	return parts
}
