package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// pageOptions converts 1-based page/limit into skip/limit find options.
func pageOptions(page, limit int64) *options.FindOptions {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	return options.Find().SetSkip((page - 1) * limit).SetLimit(limit)
}

// containsInsensitive matches s anywhere in the field, case-insensitively.
func containsInsensitive(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}
