package dto

import (
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

type ContentRequest struct {
	Title         string   `json:"title" binding:"required,notblank,max=200"`
	Type          string   `json:"type" binding:"required,oneof=video post infographic"`
	Category      string   `json:"category" binding:"required,oneof=nutrition recipes fitness wellness weight_management"`
	Body          string   `json:"body"`
	Tags          []string `json:"tags" binding:"omitempty,max=20,dive,max=50"`
	MediaURL      string   `json:"mediaUrl" binding:"omitempty,url"`
	MediaPublicID string   `json:"mediaPublicId"`
	ThumbnailURL  string   `json:"thumbnailUrl" binding:"omitempty,url"`
	IsPublished   bool     `json:"isPublished"`
}

func (r ContentRequest) ToInput() usecasecontract.ContentInput {
	return usecasecontract.ContentInput{
		Title:         r.Title,
		Type:          entity.ContentType(r.Type),
		Category:      entity.ContentCategory(r.Category),
		Body:          r.Body,
		Tags:          r.Tags,
		MediaURL:      r.MediaURL,
		MediaPublicID: r.MediaPublicID,
		ThumbnailURL:  r.ThumbnailURL,
		IsPublished:   r.IsPublished,
	}
}

type ContentListQuery struct {
	Type     string `form:"type" binding:"omitempty,oneof=video post infographic"`
	Category string `form:"category" binding:"omitempty,oneof=nutrition recipes fitness wellness weight_management"`
	Tag      string `form:"tag" binding:"max=50"`
	Search   string `form:"search" binding:"max=100"`
	Page     int64  `form:"page" binding:"omitempty,min=1"`
	Limit    int64  `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q ContentListQuery) ToFilter(publishedOnly bool) entity.ContentFilter {
	filter := entity.ContentFilter{
		Tag:           q.Tag,
		Search:        q.Search,
		PublishedOnly: publishedOnly,
		Page:          q.Page,
		Limit:         q.Limit,
	}
	if q.Type != "" {
		t := entity.ContentType(q.Type)
		filter.Type = &t
	}
	if q.Category != "" {
		c := entity.ContentCategory(q.Category)
		filter.Category = &c
	}
	return filter
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=100"`
	Description string `json:"description" binding:"max=500"`
}

func (r CategoryRequest) ToInput() usecasecontract.CategoryInput {
	return usecasecontract.CategoryInput{Name: r.Name, Description: r.Description}
}

// BrandingRequest is a partial update; absent fields keep their value.
type BrandingRequest struct {
	SiteName       *string `json:"siteName" binding:"omitempty,notblank,max=100"`
	Tagline        *string `json:"tagline" binding:"omitempty,max=200"`
	LogoURL        *string `json:"logoUrl" binding:"omitempty,url"`
	LogoPublicID   *string `json:"logoPublicId"`
	PrimaryColor   *string `json:"primaryColor" binding:"omitempty,hexcolor"`
	SecondaryColor *string `json:"secondaryColor" binding:"omitempty,hexcolor"`
	ContactEmail   *string `json:"contactEmail" binding:"omitempty,email"`
}

func (r BrandingRequest) ToInput() usecasecontract.BrandingInput {
	return usecasecontract.BrandingInput{
		SiteName:       r.SiteName,
		Tagline:        r.Tagline,
		LogoURL:        r.LogoURL,
		LogoPublicID:   r.LogoPublicID,
		PrimaryColor:   r.PrimaryColor,
		SecondaryColor: r.SecondaryColor,
		ContactEmail:   r.ContactEmail,
	}
}
