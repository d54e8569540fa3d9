package contract

import (
	"context"

	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
)

type IContentRepository interface {
	Create(ctx context.Context, content *entity.Content) error
	GetByID(ctx context.Context, id string) (*entity.Content, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Content, error)
	List(ctx context.Context, filter entity.ContentFilter) ([]entity.Content, int64, error)
	Update(ctx context.Context, content *entity.Content) error
	Delete(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type ICategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type IBrandingRepository interface {
	// Get returns apperror.ErrNotFound until branding is first saved.
	Get(ctx context.Context) (*entity.Branding, error)
	Upsert(ctx context.Context, branding *entity.Branding) error
}
