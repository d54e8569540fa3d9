package entity

import "time"

// AdminRecipient is the recipient token that routes a message to an admin.
const AdminRecipient = "admin"

const MaxMessageLength = 5000

// Message is immutable after creation except for the read flag.
type Message struct {
	ID             string     `bson:"_id,omitempty" json:"id"`
	ConversationID string     `bson:"conversation_id" json:"conversationId"`
	SenderID       string     `bson:"sender_id" json:"senderId"`
	SenderName     string     `bson:"sender_name" json:"senderName"`
	SenderRole     UserRole   `bson:"sender_role" json:"senderRole"`
	RecipientID    string     `bson:"recipient_id" json:"recipientId"`
	RecipientName  string     `bson:"recipient_name" json:"recipientName"`
	RecipientRole  UserRole   `bson:"recipient_role" json:"recipientRole"`
	Content        string     `bson:"content" json:"content"`
	IsRead         bool       `bson:"is_read" json:"isRead"`
	ReadAt         *time.Time `bson:"read_at,omitempty" json:"readAt,omitempty"`
	CreatedAt      time.Time  `bson:"created_at" json:"createdAt"`
}

// MessageQuery selects which messages a listing returns.
type MessageQuery struct {
	ConversationID    string
	CounterpartUserID string
}
