package contract

import (
	"context"
	"io"

	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
)

type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
	HashString(s string) string
	CheckHash(s, hash string) bool
}

type IUUIDGenerator interface {
	NewUUID() string
}

type IEmailService interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
}

// INotifier renders and delivers a notification to one recipient.
type INotifier interface {
	Notify(ctx context.Context, notification entity.Notification) error
}

// ITranslator translates short text between language codes.
type ITranslator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// IMediaStorage is the blob host for uploaded files.
type IMediaStorage interface {
	Upload(ctx context.Context, fileName, mimeType string, r io.Reader) (*entity.UploadedMedia, error)
	Open(ctx context.Context, publicID string) (io.ReadCloser, error)
	Delete(ctx context.Context, publicID string) error
}

type IHTMLSanitizer interface {
	Sanitize(html string) string
}

// IRandomGenerator produces URL-safe random strings, e.g. OAuth state values.
type IRandomGenerator interface {
	GenerateRandomToken(n int) (string, error)
}
