package mongodb

import (
	"testing"

	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPageOptions(t *testing.T) {
	opts := pageOptions(3, 10)
	assert.Equal(t, int64(20), *opts.Skip)
	assert.Equal(t, int64(10), *opts.Limit)

	opts = pageOptions(0, 1000)
	assert.Equal(t, int64(0), *opts.Skip)
	assert.Equal(t, int64(maxPageSize), *opts.Limit)

	opts = pageOptions(2, 0)
	assert.Equal(t, int64(defaultPageSize), *opts.Limit)
}

func TestContentFilterToBSON(t *testing.T) {
	video := entity.ContentTypeVideo
	query := contentFilterToBSON(entity.ContentFilter{
		Type:          &video,
		Tag:           "protein",
		Search:        "oats (quick)",
		PublishedOnly: true,
	})

	assert.Equal(t, true, query["is_published"])
	assert.Equal(t, video, query["type"])
	assert.Equal(t, "protein", query["tags"])
	or, ok := query["$or"].(bson.A)
	if assert.True(t, ok) {
		title := or[0].(bson.M)["title"].(primitive.Regex)
		assert.Equal(t, `oats \(quick\)`, title.Pattern)
		assert.Equal(t, "i", title.Options)
	}
}

func TestUserFilterToBSON(t *testing.T) {
	admin := entity.UserRoleAdmin
	query := userFilterToBSON(entity.UserFilter{Role: &admin})

	assert.Equal(t, admin, query["role"])
	_, hasSearch := query["$or"]
	assert.False(t, hasSearch)
}
