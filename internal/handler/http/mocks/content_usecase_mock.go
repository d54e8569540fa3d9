package mocks

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

// MockContentUsecase is a mock of the content library use case.
type MockContentUsecase struct {
	ShouldFailCreate bool
	ShouldFailUpdate bool
	ShouldFailDelete bool
	ShouldFailGet    bool
	ShouldFailList   bool

	LastInput  usecasecontract.ContentInput
	LastFilter entity.ContentFilter
}

var _ usecasecontract.IContentUseCase = (*MockContentUsecase)(nil)

func NewMockContentUsecase() *MockContentUsecase {
	return &MockContentUsecase{}
}

func (m *MockContentUsecase) Create(ctx context.Context, actor entity.Actor, input usecasecontract.ContentInput) (*entity.Content, error) {
	m.LastInput = input
	if m.ShouldFailCreate {
		return nil, apperror.Forbidden("admin access required")
	}
	return &entity.Content{ID: "content-1", Title: input.Title, Slug: "eat-more-greens", Type: input.Type, Category: input.Category, AuthorID: actor.UserID}, nil
}

func (m *MockContentUsecase) Update(ctx context.Context, actor entity.Actor, id string, input usecasecontract.ContentInput) (*entity.Content, error) {
	m.LastInput = input
	if m.ShouldFailUpdate {
		return nil, apperror.NotFound("content not found")
	}
	return &entity.Content{ID: id, Title: input.Title, Type: input.Type, Category: input.Category}, nil
}

func (m *MockContentUsecase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	if m.ShouldFailDelete {
		return apperror.NotFound("content not found")
	}
	return nil
}

func (m *MockContentUsecase) GetBySlug(ctx context.Context, slug string) (*entity.Content, error) {
	if m.ShouldFailGet {
		return nil, apperror.NotFound("content not found")
	}
	return &entity.Content{ID: "content-1", Slug: slug, Title: "Eat more greens", IsPublished: true}, nil
}

func (m *MockContentUsecase) List(ctx context.Context, filter entity.ContentFilter) (*entity.ContentPage, error) {
	m.LastFilter = filter
	if m.ShouldFailList {
		return nil, apperror.Internal("failed to list content", errors.New("db down"))
	}
	return &entity.ContentPage{
		Items: []entity.Content{{ID: "content-1", Slug: "eat-more-greens", IsPublished: true}},
		Total: 1,
		Page:  1,
		Limit: 20,
	}, nil
}

// MockCategoryUsecase is a mock of the category use case.
type MockCategoryUsecase struct {
	ShouldFailCreate bool
	ShouldFailUpdate bool
	ShouldFailDelete bool
	ShouldFailList   bool

	LastInput usecasecontract.CategoryInput
}

var _ usecasecontract.ICategoryUseCase = (*MockCategoryUsecase)(nil)

func NewMockCategoryUsecase() *MockCategoryUsecase {
	return &MockCategoryUsecase{}
}

func (m *MockCategoryUsecase) Create(ctx context.Context, actor entity.Actor, input usecasecontract.CategoryInput) (*entity.Category, error) {
	m.LastInput = input
	if m.ShouldFailCreate {
		return nil, apperror.Conflict("category already exists")
	}
	return &entity.Category{ID: "cat-1", Name: input.Name, NameAr: "[ar] " + input.Name, Slug: "cat"}, nil
}

func (m *MockCategoryUsecase) Update(ctx context.Context, actor entity.Actor, id string, input usecasecontract.CategoryInput) (*entity.Category, error) {
	m.LastInput = input
	if m.ShouldFailUpdate {
		return nil, apperror.NotFound("category not found")
	}
	return &entity.Category{ID: id, Name: input.Name}, nil
}

func (m *MockCategoryUsecase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	if m.ShouldFailDelete {
		return apperror.NotFound("category not found")
	}
	return nil
}

func (m *MockCategoryUsecase) List(ctx context.Context) ([]entity.Category, error) {
	if m.ShouldFailList {
		return nil, apperror.Internal("failed to list categories", errors.New("db down"))
	}
	return []entity.Category{{ID: "cat-1", Name: "Recipes", NameAr: "وصفات", Slug: "recipes"}}, nil
}

// MockBrandingUsecase is a mock of the branding use case.
type MockBrandingUsecase struct {
	ShouldFailGet    bool
	ShouldFailUpdate bool

	LastInput usecasecontract.BrandingInput
}

var _ usecasecontract.IBrandingUseCase = (*MockBrandingUsecase)(nil)

func NewMockBrandingUsecase() *MockBrandingUsecase {
	return &MockBrandingUsecase{}
}

func (m *MockBrandingUsecase) Get(ctx context.Context) (*entity.Branding, error) {
	if m.ShouldFailGet {
		return nil, apperror.Internal("failed to load branding", errors.New("db down"))
	}
	return entity.DefaultBranding(), nil
}

func (m *MockBrandingUsecase) Update(ctx context.Context, actor entity.Actor, input usecasecontract.BrandingInput) (*entity.Branding, error) {
	m.LastInput = input
	if m.ShouldFailUpdate {
		return nil, apperror.Validation("primaryColor must be a hex color")
	}
	b := entity.DefaultBranding()
	if input.SiteName != nil {
		b.SiteName = *input.SiteName
	}
	if input.PrimaryColor != nil {
		b.PrimaryColor = *input.PrimaryColor
	}
	b.UpdatedBy = actor.UserID
	return b, nil
}

// MockMediaUsecase is a mock of the media use case.
type MockMediaUsecase struct {
	ShouldFailUpload bool
	ShouldFailOpen   bool
	ShouldFailDelete bool

	MockContent []byte

	LastFileName string
	LastMimeType string
	LastSize     int64
	LastBody     []byte
}

var _ usecasecontract.IMediaUseCase = (*MockMediaUsecase)(nil)

func NewMockMediaUsecase() *MockMediaUsecase {
	return &MockMediaUsecase{MockContent: []byte("%PDF-1.4 mock")}
}

func (m *MockMediaUsecase) Upload(ctx context.Context, actor entity.Actor, fileName, mimeType string, size int64, r io.Reader) (*entity.Media, error) {
	m.LastFileName = fileName
	m.LastMimeType = mimeType
	m.LastSize = size
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, apperror.Internal("failed to read upload", err)
	}
	m.LastBody = body
	if m.ShouldFailUpload {
		return nil, apperror.Validation("unsupported media type %q", mimeType)
	}
	return &entity.Media{
		ID:       "media-1",
		PublicID: "public-1",
		URL:      "http://localhost:8080/api/v1/media/public-1",
		FileName: fileName,
		MimeType: mimeType,
		FileSize: size,
	}, nil
}

func (m *MockMediaUsecase) Open(ctx context.Context, publicID string) (*entity.Media, io.ReadCloser, error) {
	if m.ShouldFailOpen {
		return nil, nil, apperror.NotFound("media not found")
	}
	media := &entity.Media{
		PublicID: publicID,
		FileName: "plan.pdf",
		MimeType: "application/pdf",
		FileSize: int64(len(m.MockContent)),
	}
	return media, io.NopCloser(bytes.NewReader(m.MockContent)), nil
}

func (m *MockMediaUsecase) Delete(ctx context.Context, actor entity.Actor, publicID string) error {
	if m.ShouldFailDelete {
		return apperror.NotFound("media not found")
	}
	return nil
}
