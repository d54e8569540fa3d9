package external_services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrMediaNotFound = errors.New("media file not found")

// GridFSMediaStorage keeps uploaded files in a GridFS bucket. The public id is
// used as the GridFS file id.
type GridFSMediaStorage struct {
	bucket    *gridfs.Bucket
	baseURL   string
	newPublic func() string
}

var _ contract.IMediaStorage = (*GridFSMediaStorage)(nil)

func NewGridFSMediaStorage(db *mongo.Database, bucketName, baseURL string, uuidGen contract.IUUIDGenerator) (*GridFSMediaStorage, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(bucketName))
	if err != nil {
		return nil, fmt.Errorf("failed to open gridfs bucket %s: %w", bucketName, err)
	}
	return &GridFSMediaStorage{
		bucket:    bucket,
		baseURL:   strings.TrimRight(baseURL, "/"),
		newPublic: uuidGen.NewUUID,
	}, nil
}

func (s *GridFSMediaStorage) Upload(ctx context.Context, fileName, mimeType string, r io.Reader) (*entity.UploadedMedia, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	publicID := s.newPublic()
	opts := options.GridFSUpload().SetMetadata(bson.D{{Key: "contentType", Value: mimeType}})
	if err := s.bucket.UploadFromStreamWithID(publicID, fileName, r, opts); err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", fileName, err)
	}
	return &entity.UploadedMedia{
		URL:      fmt.Sprintf("%s/api/v1/media/%s", s.baseURL, publicID),
		PublicID: publicID,
	}, nil
}

func (s *GridFSMediaStorage) Open(ctx context.Context, publicID string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stream, err := s.bucket.OpenDownloadStream(publicID)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to open media %s: %w", publicID, err)
	}
	return stream, nil
}

func (s *GridFSMediaStorage) Delete(ctx context.Context, publicID string) error {
	if err := s.bucket.DeleteContext(ctx, publicID); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete media %s: %w", publicID, err)
	}
	return nil
}
