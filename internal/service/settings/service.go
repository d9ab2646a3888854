package settings

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/settings"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	cacheKey = "settings:company"
	cacheTTL = 30 * time.Minute
)

type SettingsServiceImpl struct {
	repo settings.SettingsRepository
	rdb  redis.Cmdable // optional
	sf   *singleflight.Group
}

// NewSettingsService returns a settings service. rdb may be nil, in which
// case every read goes to the store.
func NewSettingsService(repo settings.SettingsRepository, rdb redis.Cmdable) settings.SettingsService {
	return &SettingsServiceImpl{
		repo: repo,
		rdb:  rdb,
		sf:   &singleflight.Group{},
	}
}

// GetSettings implements settings.SettingsService.
func (s *SettingsServiceImpl) GetSettings(ctx context.Context) (settings.CompanySettings, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			cs := settings.Defaults()
			if err := json.Unmarshal([]byte(cached), &cs); err == nil {
				return cs, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		cs, err := s.repo.Get(ctx)
		if err != nil {
			return nil, err
		}
		if s.rdb != nil {
			if data, err := json.Marshal(cs); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, data, cacheTTL).Err(); err != nil {
					slog.Warn("Failed to cache company settings", "error", err)
				}
			}
		}
		return cs, nil
	})
	if err != nil {
		return settings.CompanySettings{}, err
	}
	return v.(settings.CompanySettings), nil
}

// UpdateSettings implements settings.SettingsService.
func (s *SettingsServiceImpl) UpdateSettings(ctx context.Context, draft settings.Draft) (settings.CompanySettings, error) {
	if err := draft.Validate(); err != nil {
		return settings.CompanySettings{}, err
	}

	saved, err := s.repo.Upsert(ctx, draft.ToSettings())
	if err != nil {
		return settings.CompanySettings{}, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			slog.Error("Failed to invalidate settings cache", "key", cacheKey, "error", err)
		}
	}

	slog.Info("Updated company settings", "company_name", saved.CompanyName, "currency", saved.Currency)
	return saved, nil
}
