package postgresql

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/profile"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
)

type profileRepositoryImpl struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) profile.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

const profileColumns = `id, email, first_name, last_name, department, position, role, hire_date, created_at, updated_at`

func profileDest(p *profile.Profile) []interface{} {
	return []interface{}{
		&p.ID, &p.Email, &p.FirstName, &p.LastName, &p.Department, &p.Position,
		&p.Role, &p.HireDate, &p.CreatedAt, &p.UpdatedAt,
	}
}

// GetByID implements profile.ProfileRepository.
func (r *profileRepositoryImpl) GetByID(ctx context.Context, id string) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	var p profile.Profile
	err := q.QueryRow(ctx, "SELECT "+profileColumns+" FROM profiles WHERE id = $1", id).Scan(profileDest(&p)...)
	if err != nil {
		return profile.Profile{}, rowError(err, profile.ErrProfileNotFound, "profile.get")
	}
	return p, nil
}

// GetByEmail implements profile.ProfileRepository. Emails compare case-insensitively.
func (r *profileRepositoryImpl) GetByEmail(ctx context.Context, email string) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	var p profile.Profile
	err := q.QueryRow(ctx, "SELECT "+profileColumns+" FROM profiles WHERE lower(email) = $1",
		strings.ToLower(strings.TrimSpace(email))).Scan(profileDest(&p)...)
	if err != nil {
		return profile.Profile{}, rowError(err, profile.ErrProfileNotFound, "profile.get_by_email")
	}
	return p, nil
}

// List implements profile.ProfileRepository.
func (r *profileRepositoryImpl) List(ctx context.Context) ([]profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, "SELECT "+profileColumns+" FROM profiles ORDER BY created_at DESC")
	if err != nil {
		return nil, apperror.Store("profile.list", err)
	}
	defer rows.Close()

	profiles := make([]profile.Profile, 0)
	for rows.Next() {
		var p profile.Profile
		if err := rows.Scan(profileDest(&p)...); err != nil {
			return nil, apperror.Store("profile.list", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Store("profile.list", err)
	}

	return profiles, nil
}

// Update implements profile.ProfileRepository.
func (r *profileRepositoryImpl) Update(ctx context.Context, id string, req profile.UpdateProfileRequest) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	p := newPatch()
	setString(p, "first_name", req.FirstName)
	setString(p, "last_name", req.LastName)
	setString(p, "department", req.Department)
	setString(p, "position", req.Position)

	query, args := p.update("profiles", id, profileColumns)

	var updated profile.Profile
	if err := q.QueryRow(ctx, query, args...).Scan(profileDest(&updated)...); err != nil {
		return profile.Profile{}, rowError(err, profile.ErrProfileNotFound, "profile.update")
	}
	return updated, nil
}
