package database

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// desiredIndexes lists the indexes each collection needs. Names are fixed so
// re-running EnsureIndexes is a no-op.
var desiredIndexes = map[string][]mongo.IndexModel{
	CollectionUsers: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("uniq_email").SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}, {Key: "created_at", Value: 1}}, Options: options.Index().SetName("role_created")},
	},
	CollectionAssessments: {
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}}, Options: options.Index().SetName("user_created")},
	},
	CollectionConsultations: {
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}}, Options: options.Index().SetName("user_status")},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("status_created")},
	},
	CollectionAppointments: {
		{Keys: bson.D{{Key: "specialist_id", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}}, Options: options.Index().SetName("specialist_date_status")},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}, Options: options.Index().SetName("user_date")},
	},
	CollectionMessages: {
		{Keys: bson.D{{Key: "conversation_id", Value: 1}, {Key: "created_at", Value: 1}}, Options: options.Index().SetName("conversation_created")},
		{Keys: bson.D{{Key: "recipient_id", Value: 1}, {Key: "is_read", Value: 1}}, Options: options.Index().SetName("recipient_unread")},
		{Keys: bson.D{{Key: "sender_id", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("sender_created")},
		{Keys: bson.D{{Key: "recipient_role", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("recipient_role_created")},
	},
	CollectionContents: {
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetName("uniq_slug").SetUnique(true)},
		{Keys: bson.D{{Key: "is_published", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("published_created")},
		{Keys: bson.D{{Key: "tags", Value: 1}}, Options: options.Index().SetName("tags")},
	},
	CollectionCategories: {
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetName("uniq_slug").SetUnique(true)},
	},
	CollectionMedia: {
		{Keys: bson.D{{Key: "public_id", Value: 1}}, Options: options.Index().SetName("uniq_public_id").SetUnique(true)},
	},
	CollectionTokens: {
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "token_type", Value: 1}}, Options: options.Index().SetName("user_type")},
		{Keys: bson.D{{Key: "expires_at", Value: 1}}, Options: options.Index().SetName("ttl_expires").SetExpireAfterSeconds(0)},
	},
}

// EnsureIndexes is called at startup. Problems from every collection are
// collected so a single failure does not hide the others.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	var problems []string
	for collection, models := range desiredIndexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil && !isOptionsConflictErr(err) {
			problems = append(problems, collection+": "+err.Error())
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// An index with the same keys may already exist under another name.
func isOptionsConflictErr(err error) bool {
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 85 || ce.Code == 86) {
		return true
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}

// IsDuplicateKeyErr reports whether err came from a unique index violation.
func IsDuplicateKeyErr(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
