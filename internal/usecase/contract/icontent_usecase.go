package usecasecontract

import (
	"context"
	"io"

	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
)

type ContentInput struct {
	Title         string
	Type          entity.ContentType
	Category      entity.ContentCategory
	Body          string
	Tags          []string
	MediaURL      string
	MediaPublicID string
	ThumbnailURL  string
	IsPublished   bool
}

type IContentUseCase interface {
	Create(ctx context.Context, actor entity.Actor, input ContentInput) (*entity.Content, error)
	Update(ctx context.Context, actor entity.Actor, id string, input ContentInput) (*entity.Content, error)
	Delete(ctx context.Context, actor entity.Actor, id string) error
	GetBySlug(ctx context.Context, slug string) (*entity.Content, error)
	List(ctx context.Context, filter entity.ContentFilter) (*entity.ContentPage, error)
}

type CategoryInput struct {
	Name        string
	Description string
}

type ICategoryUseCase interface {
	Create(ctx context.Context, actor entity.Actor, input CategoryInput) (*entity.Category, error)
	Update(ctx context.Context, actor entity.Actor, id string, input CategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, actor entity.Actor, id string) error
	List(ctx context.Context) ([]entity.Category, error)
}

type BrandingInput struct {
	SiteName       *string
	Tagline        *string
	LogoURL        *string
	LogoPublicID   *string
	PrimaryColor   *string
	SecondaryColor *string
	ContactEmail   *string
}

type IBrandingUseCase interface {
	Get(ctx context.Context) (*entity.Branding, error)
	Update(ctx context.Context, actor entity.Actor, input BrandingInput) (*entity.Branding, error)
}

type IMediaUseCase interface {
	Upload(ctx context.Context, actor entity.Actor, fileName, mimeType string, size int64, r io.Reader) (*entity.Media, error)
	Open(ctx context.Context, publicID string) (*entity.Media, io.ReadCloser, error)
	Delete(ctx context.Context, actor entity.Actor, publicID string) error
}
