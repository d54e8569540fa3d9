package contract

import (
	"context"

	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
)

// IMediaRepository defines the interface for media metadata persistence.
type IMediaRepository interface {
	CreateMedia(ctx context.Context, media *entity.Media) error
	GetMediaByPublicID(ctx context.Context, publicID string) (*entity.Media, error)
	// DeleteMedia soft deletes the record.
	DeleteMedia(ctx context.Context, publicID string) error
}
