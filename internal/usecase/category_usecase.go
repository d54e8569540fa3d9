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

// CategoryUseCase manages bilingual categories. Arabic fields are machine
// translated and fall back to the source text.
type CategoryUseCase struct {
	categoryRepo contract.ICategoryRepository
	translator   contract.ITranslator
	uuidgen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
	config       usecasecontract.IConfigProvider
}

// NewCategoryUseCase accepts a nil translator; names are then copied as is.
func NewCategoryUseCase(
	categoryRepo contract.ICategoryRepository,
	translator contract.ITranslator,
	uuidgen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		translator:   translator,
		uuidgen:      uuidgen,
		logger:       logger,
		config:       cfg,
	}
}

var _ usecasecontract.ICategoryUseCase = (*CategoryUseCase)(nil)

func (uc *CategoryUseCase) translate(ctx context.Context, text string) string {
	if text == "" || uc.translator == nil {
		return text
	}
	out, err := uc.translator.Translate(ctx, text, uc.config.GetTranslationSourceLang(), uc.config.GetTranslationTargetLang())
	if err != nil {
		metrics.IncTranslationFallback()
		uc.logger.Warnf("translation failed, keeping source text %q: %v", text, err)
		return text
	}
	return out
}

func (uc *CategoryUseCase) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := utils.Slugify(name)
	if base == "" {
		base = "category"
	}
	candidate := base
	for i := 2; i <= maxSlugAttempts; i++ {
		exists, err := uc.categoryRepo.SlugExists(ctx, candidate)
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

func (uc *CategoryUseCase) Create(ctx context.Context, actor entity.Actor, input usecasecontract.CategoryInput) (*entity.Category, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.Validation("name is required")
	}
	slug, err := uc.uniqueSlug(ctx, name)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	description := strings.TrimSpace(input.Description)
	category := &entity.Category{
		ID:            uc.uuidgen.NewUUID(),
		Name:          name,
		NameAr:        uc.translate(ctx, name),
		Description:   description,
		DescriptionAr: uc.translate(ctx, description),
		Slug:          slug,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, apperror.Conflict("category %s already exists", name)
		}
		uc.logger.Errorf("failed to create category %q: %v", name, err)
		return nil, apperror.Internal("failed to create category", err)
	}
	return category, nil
}

func (uc *CategoryUseCase) Update(ctx context.Context, actor entity.Actor, id string, input usecasecontract.CategoryInput) (*entity.Category, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.Validation("name is required")
	}
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "category")
	}

	if name != category.Name {
		slug, err := uc.uniqueSlug(ctx, name)
		if err != nil {
			return nil, err
		}
		category.Slug = slug
		category.Name = name
		category.NameAr = uc.translate(ctx, name)
	}
	if description := strings.TrimSpace(input.Description); description != category.Description {
		category.Description = description
		category.DescriptionAr = uc.translate(ctx, description)
	}
	category.UpdatedAt = time.Now()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NotFound("category not found")
		}
		return nil, apperror.Internal("failed to update category", err)
	}
	return category, nil
}

func (uc *CategoryUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := uc.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return apperror.NotFound("category not found")
		}
		return apperror.Internal("failed to delete category", err)
	}
	return nil
}

func (uc *CategoryUseCase) List(ctx context.Context) ([]entity.Category, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal("failed to list categories", err)
	}
	if categories == nil {
		categories = []entity.Category{}
	}
	return categories, nil
}
