package settings

import "context"

type SettingsRepository interface {
	// Get returns the stored settings, or Defaults() when the row is missing.
	Get(ctx context.Context) (CompanySettings, error)
	Upsert(ctx context.Context, s CompanySettings) (CompanySettings, error)
}

type SettingsService interface {
	GetSettings(ctx context.Context) (CompanySettings, error)
	UpdateSettings(ctx context.Context, draft Draft) (CompanySettings, error)
}
