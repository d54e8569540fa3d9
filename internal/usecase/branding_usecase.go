package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	"github.com/medcharfeddine/nutricoach/internal/infrastructure/metrics"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

const brandingCacheKey = "branding"

// BrandingUseCase reads and edits the site-wide branding singleton.
type BrandingUseCase struct {
	brandingRepo contract.IBrandingRepository
	validator    usecasecontract.IValidator
	logger       usecasecontract.IAppLogger
	config       usecasecontract.IConfigProvider
	cache        contract.ICache
}

func NewBrandingUseCase(brandingRepo contract.IBrandingRepository, validator usecasecontract.IValidator, logger usecasecontract.IAppLogger, cfg usecasecontract.IConfigProvider) *BrandingUseCase {
	return &BrandingUseCase{
		brandingRepo: brandingRepo,
		validator:    validator,
		logger:       logger,
		config:       cfg,
	}
}

var _ usecasecontract.IBrandingUseCase = (*BrandingUseCase)(nil)

func (uc *BrandingUseCase) SetCache(cache contract.ICache) {
	uc.cache = cache
}

// Get returns the saved branding, or the defaults before the first save.
func (uc *BrandingUseCase) Get(ctx context.Context) (*entity.Branding, error) {
	if uc.cache != nil {
		var cached entity.Branding
		found, err := uc.cache.GetJSON(ctx, brandingCacheKey, &cached)
		switch {
		case err != nil:
			uc.logger.Warningf("cache error: branding err=%v", err)
		case found:
			metrics.IncCacheHit(brandingCacheKey)
			return &cached, nil
		default:
			metrics.IncCacheMiss(brandingCacheKey)
		}
	}

	branding, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if err := uc.cache.SetJSON(ctx, brandingCacheKey, branding, uc.config.GetContentCacheTTL()); err != nil {
			uc.logger.Warningf("cache error: branding set err=%v", err)
		}
	}
	return branding, nil
}

func (uc *BrandingUseCase) load(ctx context.Context) (*entity.Branding, error) {
	branding, err := uc.brandingRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return entity.DefaultBranding(), nil
		}
		return nil, apperror.Internal("failed to load branding", err)
	}
	return branding, nil
}

func (uc *BrandingUseCase) Update(ctx context.Context, actor entity.Actor, input usecasecontract.BrandingInput) (*entity.Branding, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	branding, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	if input.SiteName != nil {
		name := strings.TrimSpace(*input.SiteName)
		if name == "" {
			return nil, apperror.Validation("siteName cannot be empty")
		}
		branding.SiteName = name
	}
	if input.Tagline != nil {
		branding.Tagline = strings.TrimSpace(*input.Tagline)
	}
	if input.PrimaryColor != nil {
		if err := uc.validator.ValidateHexColor(*input.PrimaryColor); err != nil {
			return nil, apperror.Validation("primaryColor must be a hex color")
		}
		branding.PrimaryColor = *input.PrimaryColor
	}
	if input.SecondaryColor != nil {
		if err := uc.validator.ValidateHexColor(*input.SecondaryColor); err != nil {
			return nil, apperror.Validation("secondaryColor must be a hex color")
		}
		branding.SecondaryColor = *input.SecondaryColor
	}
	if input.LogoURL != nil {
		if *input.LogoURL != "" && uc.validator.ValidateURL(*input.LogoURL) != nil {
			return nil, apperror.Validation("logoUrl must be a valid URL")
		}
		branding.LogoURL = *input.LogoURL
	}
	if input.LogoPublicID != nil {
		branding.LogoPublicID = *input.LogoPublicID
	}
	if input.ContactEmail != nil {
		email := strings.TrimSpace(*input.ContactEmail)
		if email != "" && uc.validator.ValidateEmail(email) != nil {
			return nil, apperror.Validation("contactEmail must be a valid email")
		}
		branding.ContactEmail = email
	}
	branding.ID = entity.BrandingID
	branding.UpdatedBy = actor.UserID
	branding.UpdatedAt = time.Now()

	if err := uc.brandingRepo.Upsert(ctx, branding); err != nil {
		uc.logger.Errorf("failed to save branding: %v", err)
		return nil, apperror.Internal("failed to save branding", err)
	}
	if uc.cache != nil {
		if err := uc.cache.Delete(ctx, brandingCacheKey); err != nil {
			uc.logger.Warnf("cache error: branding eviction err=%v", err)
		}
	}
	return branding, nil
}
