package entity

import "time"

type ContentType string

const (
	ContentTypeVideo       ContentType = "video"
	ContentTypePost        ContentType = "post"
	ContentTypeInfographic ContentType = "infographic"
)

func (t ContentType) IsValid() bool {
	return t == ContentTypeVideo || t == ContentTypePost || t == ContentTypeInfographic
}

type ContentCategory string

const (
	ContentCategoryNutrition        ContentCategory = "nutrition"
	ContentCategoryRecipes          ContentCategory = "recipes"
	ContentCategoryFitness          ContentCategory = "fitness"
	ContentCategoryWellness         ContentCategory = "wellness"
	ContentCategoryWeightManagement ContentCategory = "weight_management"
)

func (c ContentCategory) IsValid() bool {
	switch c {
	case ContentCategoryNutrition, ContentCategoryRecipes, ContentCategoryFitness,
		ContentCategoryWellness, ContentCategoryWeightManagement:
		return true
	}
	return false
}

// Content is a library resource.
type Content struct {
	ID            string          `bson:"_id,omitempty" json:"id"`
	Title         string          `bson:"title" json:"title"`
	Slug          string          `bson:"slug" json:"slug"`
	Type          ContentType     `bson:"type" json:"type"`
	Category      ContentCategory `bson:"category" json:"category"`
	Body          string          `bson:"body" json:"body"`
	Tags          []string        `bson:"tags,omitempty" json:"tags,omitempty"`
	MediaURL      string          `bson:"media_url,omitempty" json:"mediaUrl,omitempty"`
	MediaPublicID string          `bson:"media_public_id,omitempty" json:"mediaPublicId,omitempty"`
	ThumbnailURL  string          `bson:"thumbnail_url,omitempty" json:"thumbnailUrl,omitempty"`
	IsPublished   bool            `bson:"is_published" json:"isPublished"`
	PublishedAt   *time.Time      `bson:"published_at,omitempty" json:"publishedAt,omitempty"`
	AuthorID      string          `bson:"author_id" json:"authorId"`
	CreatedAt     time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time       `bson:"updated_at" json:"updatedAt"`
}

// ContentFilter narrows content listings.
type ContentFilter struct {
	Type          *ContentType
	Category      *ContentCategory
	Tag           string
	Search        string
	PublishedOnly bool
	Page          int64
	Limit         int64
}

// ContentPage is one page of a content listing.
type ContentPage struct {
	Items []Content `json:"items"`
	Total int64     `json:"total"`
	Page  int64     `json:"page"`
	Limit int64     `json:"limit"`
}
