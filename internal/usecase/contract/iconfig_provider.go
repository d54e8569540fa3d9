package usecasecontract

import "time"

type IConfigProvider interface {
	GetAppBaseURL() string
	GetRefreshTokenExpiry() time.Duration
	GetAvailabilityCacheTTL() time.Duration
	GetContentCacheTTL() time.Duration
	GetNotificationTimeout() time.Duration
	GetTranslationSourceLang() string
	GetTranslationTargetLang() string
}
