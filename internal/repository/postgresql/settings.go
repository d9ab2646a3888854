package postgresql

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/settings"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// Get implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Get(ctx context.Context) (settings.CompanySettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT company_name, working_hours, timezone, currency, leave_request_notifications, updated_at
		FROM company_settings
		WHERE id = 1
	`

	var s settings.CompanySettings
	err := q.QueryRow(ctx, query).Scan(
		&s.CompanyName, &s.WorkingHours, &s.Timezone, &s.Currency, &s.LeaveRequestNotifications, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Defaults(), nil
		}
		return settings.CompanySettings{}, apperror.Store("settings.get", err)
	}

	return s, nil
}

// Upsert implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Upsert(ctx context.Context, s settings.CompanySettings) (settings.CompanySettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO company_settings (id, company_name, working_hours, timezone, currency, leave_request_notifications)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			working_hours = EXCLUDED.working_hours,
			timezone = EXCLUDED.timezone,
			currency = EXCLUDED.currency,
			leave_request_notifications = EXCLUDED.leave_request_notifications,
			updated_at = NOW()
		RETURNING company_name, working_hours, timezone, currency, leave_request_notifications, updated_at
	`

	var saved settings.CompanySettings
	err := q.QueryRow(ctx, query, s.CompanyName, s.WorkingHours, s.Timezone, s.Currency, s.LeaveRequestNotifications).Scan(
		&saved.CompanyName, &saved.WorkingHours, &saved.Timezone, &saved.Currency,
		&saved.LeaveRequestNotifications, &saved.UpdatedAt,
	)
	if err != nil {
		return settings.CompanySettings{}, apperror.Store("settings.upsert", err)
	}

	return saved, nil
}
