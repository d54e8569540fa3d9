package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	"github.com/medcharfeddine/nutricoach/internal/infrastructure/metrics"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
	"github.com/medcharfeddine/nutricoach/internal/utils"
)

const (
	contentCacheName = "content"
	maxTitleLength   = 200
	maxTags          = 20
	maxSlugAttempts  = 50
)

// ContentUseCase manages the resource library.
type ContentUseCase struct {
	contentRepo contract.IContentRepository
	sanitizer   contract.IHTMLSanitizer
	uuidgen     contract.IUUIDGenerator
	validator   usecasecontract.IValidator
	logger      usecasecontract.IAppLogger
	config      usecasecontract.IConfigProvider
	cache       contract.ICache
}

func NewContentUseCase(
	contentRepo contract.IContentRepository,
	sanitizer contract.IHTMLSanitizer,
	uuidgen contract.IUUIDGenerator,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
) *ContentUseCase {
	return &ContentUseCase{
		contentRepo: contentRepo,
		sanitizer:   sanitizer,
		uuidgen:     uuidgen,
		validator:   validator,
		logger:      logger,
		config:      cfg,
	}
}

var _ usecasecontract.IContentUseCase = (*ContentUseCase)(nil)

// SetCache enables caching of content detail by slug.
func (uc *ContentUseCase) SetCache(cache contract.ICache) {
	uc.cache = cache
}

func contentSlugKey(slug string) string {
	return "content:slug:" + slug
}

func (uc *ContentUseCase) evict(ctx context.Context, slugs ...string) {
	if uc.cache == nil {
		return
	}
	keys := make([]string, 0, len(slugs))
	for _, s := range slugs {
		keys = append(keys, contentSlugKey(s))
	}
	if err := uc.cache.Delete(ctx, keys...); err != nil {
		uc.logger.Warnf("cache error: content eviction slugs=%v err=%v", slugs, err)
	}
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func (uc *ContentUseCase) validateInput(input *usecasecontract.ContentInput) error {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return apperror.Validation("title is required")
	}
	if len(input.Title) > maxTitleLength {
		return apperror.Validation("title cannot exceed %d characters", maxTitleLength)
	}
	if !input.Type.IsValid() {
		return apperror.Validation("invalid content type %q", input.Type)
	}
	if !input.Category.IsValid() {
		return apperror.Validation("invalid category %q", input.Category)
	}
	input.Tags = normalizeTags(input.Tags)
	if len(input.Tags) > maxTags {
		return apperror.Validation("at most %d tags are allowed", maxTags)
	}
	for field, u := range map[string]string{"mediaUrl": input.MediaURL, "thumbnailUrl": input.ThumbnailURL} {
		if u != "" && uc.validator.ValidateURL(u) != nil {
			return apperror.Validation("%s must be a valid URL", field)
		}
	}
	if input.Type != entity.ContentTypePost && input.MediaURL == "" {
		return apperror.Validation("mediaUrl is required for %s content", input.Type)
	}
	input.Body = uc.sanitizer.Sanitize(input.Body)
	return nil
}

// uniqueSlug derives a slug from the title, suffixing -2, -3... on collisions.
func (uc *ContentUseCase) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := utils.Slugify(title)
	if base == "" {
		base = "content"
	}
	candidate := base
	for i := 2; i <= maxSlugAttempts; i++ {
		exists, err := uc.contentRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", apperror.Internal("failed to check slug", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return base + "-" + uc.uuidgen.NewUUID()[:8], nil
}

func (uc *ContentUseCase) Create(ctx context.Context, actor entity.Actor, input usecasecontract.ContentInput) (*entity.Content, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := uc.validateInput(&input); err != nil {
		return nil, err
	}
	slug, err := uc.uniqueSlug(ctx, input.Title)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	content := &entity.Content{
		ID:            uc.uuidgen.NewUUID(),
		Title:         input.Title,
		Slug:          slug,
		Type:          input.Type,
		Category:      input.Category,
		Body:          input.Body,
		Tags:          input.Tags,
		MediaURL:      input.MediaURL,
		MediaPublicID: input.MediaPublicID,
		ThumbnailURL:  input.ThumbnailURL,
		IsPublished:   input.IsPublished,
		AuthorID:      actor.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if content.IsPublished {
		content.PublishedAt = &now
	}
	if err := uc.contentRepo.Create(ctx, content); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, apperror.Conflict("content with slug %s already exists", slug)
		}
		uc.logger.Errorf("failed to create content %q: %v", input.Title, err)
		return nil, apperror.Internal("failed to create content", err)
	}
	return content, nil
}

func (uc *ContentUseCase) Update(ctx context.Context, actor entity.Actor, id string, input usecasecontract.ContentInput) (*entity.Content, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := uc.validateInput(&input); err != nil {
		return nil, err
	}
	content, err := uc.contentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "content")
	}

	oldSlug := content.Slug
	if input.Title != content.Title {
		slug, err := uc.uniqueSlug(ctx, input.Title)
		if err != nil {
			return nil, err
		}
		content.Slug = slug
	}
	now := time.Now()
	content.Title = input.Title
	content.Type = input.Type
	content.Category = input.Category
	content.Body = input.Body
	content.Tags = input.Tags
	content.MediaURL = input.MediaURL
	content.MediaPublicID = input.MediaPublicID
	content.ThumbnailURL = input.ThumbnailURL
	if input.IsPublished && content.PublishedAt == nil {
		content.PublishedAt = &now
	}
	content.IsPublished = input.IsPublished
	content.UpdatedAt = now

	if err := uc.contentRepo.Update(ctx, content); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NotFound("content not found")
		}
		uc.logger.Errorf("failed to update content %s: %v", id, err)
		return nil, apperror.Internal("failed to update content", err)
	}
	uc.evict(ctx, oldSlug, content.Slug)
	return content, nil
}

func (uc *ContentUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	content, err := uc.contentRepo.GetByID(ctx, id)
	if err != nil {
		return lookupErr(err, "content")
	}
	if err := uc.contentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return apperror.NotFound("content not found")
		}
		return apperror.Internal("failed to delete content", err)
	}
	uc.evict(ctx, content.Slug)
	return nil
}

// GetBySlug serves published content, from cache when possible.
func (uc *ContentUseCase) GetBySlug(ctx context.Context, slug string) (*entity.Content, error) {
	if uc.cache != nil {
		var cached entity.Content
		found, err := uc.cache.GetJSON(ctx, contentSlugKey(slug), &cached)
		switch {
		case err != nil:
			uc.logger.Warningf("cache error: content detail slug=%s err=%v", slug, err)
		case found:
			metrics.IncCacheHit(contentCacheName)
			return &cached, nil
		default:
			metrics.IncCacheMiss(contentCacheName)
		}
	}

	content, err := uc.contentRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, lookupErr(err, "content")
	}
	if !content.IsPublished {
		return nil, apperror.NotFound("content not found")
	}

	if uc.cache != nil {
		if err := uc.cache.SetJSON(ctx, contentSlugKey(slug), content, uc.config.GetContentCacheTTL()); err != nil {
			uc.logger.Warningf("cache error: content set slug=%s err=%v", slug, err)
		}
	}
	return content, nil
}

func (uc *ContentUseCase) List(ctx context.Context, filter entity.ContentFilter) (*entity.ContentPage, error) {
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, apperror.Validation("invalid content type %q", *filter.Type)
	}
	if filter.Category != nil && !filter.Category.IsValid() {
		return nil, apperror.Validation("invalid category %q", *filter.Category)
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	filter.Tag = strings.ToLower(strings.TrimSpace(filter.Tag))

	items, total, err := uc.contentRepo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Internal("failed to list content", err)
	}
	if items == nil {
		items = []entity.Content{}
	}
	return &entity.ContentPage{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}
