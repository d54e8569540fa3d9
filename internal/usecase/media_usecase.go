package usecase

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"time"

	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

// MediaUseCase stores uploads on the media host and keeps their metadata.
type MediaUseCase struct {
	mediaRepo contract.IMediaRepository
	storage   contract.IMediaStorage
	uuidgen   contract.IUUIDGenerator
	logger    usecasecontract.IAppLogger
}

func NewMediaUseCase(mediaRepo contract.IMediaRepository, storage contract.IMediaStorage, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *MediaUseCase {
	return &MediaUseCase{
		mediaRepo: mediaRepo,
		storage:   storage,
		uuidgen:   uuidgen,
		logger:    logger,
	}
}

var _ usecasecontract.IMediaUseCase = (*MediaUseCase)(nil)

func (uc *MediaUseCase) Upload(ctx context.Context, actor entity.Actor, fileName, mimeType string, size int64, r io.Reader) (*entity.Media, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, apperror.Validation("file is empty")
	}
	if size > entity.MaxMediaSize {
		return nil, apperror.Validation("file exceeds the %d MB limit", entity.MaxMediaSize>>20)
	}
	if !entity.IsAllowedMediaType(mimeType) {
		return nil, apperror.Validation("file type %s is not allowed", mimeType)
	}
	fileName = filepath.Base(fileName)

	uploaded, err := uc.storage.Upload(ctx, fileName, mimeType, io.LimitReader(r, entity.MaxMediaSize))
	if err != nil {
		uc.logger.Errorf("failed to upload %s: %v", fileName, err)
		return nil, apperror.Internal("failed to upload file", err)
	}

	media := &entity.Media{
		ID:         uc.uuidgen.NewUUID(),
		PublicID:   uploaded.PublicID,
		URL:        uploaded.URL,
		FileName:   fileName,
		MimeType:   mimeType,
		FileSize:   size,
		UploadedBy: actor.UserID,
		CreatedAt:  time.Now(),
	}
	if err := uc.mediaRepo.CreateMedia(ctx, media); err != nil {
		uc.logger.Errorf("failed to save metadata for %s: %v", uploaded.PublicID, err)
		if derr := uc.storage.Delete(ctx, uploaded.PublicID); derr != nil {
			uc.logger.Warnf("orphaned media blob %s: %v", uploaded.PublicID, derr)
		}
		return nil, apperror.Internal("failed to save file metadata", err)
	}
	return media, nil
}

// Open streams a file. The caller closes the reader.
func (uc *MediaUseCase) Open(ctx context.Context, publicID string) (*entity.Media, io.ReadCloser, error) {
	media, err := uc.mediaRepo.GetMediaByPublicID(ctx, publicID)
	if err != nil {
		return nil, nil, lookupErr(err, "media")
	}
	rc, err := uc.storage.Open(ctx, publicID)
	if err != nil {
		uc.logger.Errorf("metadata exists but blob %s cannot be opened: %v", publicID, err)
		return nil, nil, apperror.NotFound("media not found")
	}
	return media, rc, nil
}

func (uc *MediaUseCase) Delete(ctx context.Context, actor entity.Actor, publicID string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if _, err := uc.mediaRepo.GetMediaByPublicID(ctx, publicID); err != nil {
		return lookupErr(err, "media")
	}
	if err := uc.storage.Delete(ctx, publicID); err != nil {
		return apperror.Internal("failed to delete file", err)
	}
	if err := uc.mediaRepo.DeleteMedia(ctx, publicID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return apperror.NotFound("media not found")
		}
		return apperror.Internal("failed to delete media metadata", err)
	}
	return nil
}
