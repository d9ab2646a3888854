package profile

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/profile"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/session"
)

type ProfileServiceImpl struct {
	profileRepo profile.ProfileRepository
}

func NewProfileService(profileRepo profile.ProfileRepository) profile.ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

// current resolves the principal's profile by id, then by email for
// principals whose token subject predates their profile row.
func (s *ProfileServiceImpl) current(ctx context.Context) (profile.Profile, error) {
	p, ok := session.FromContext(ctx)
	if !ok {
		return profile.Profile{}, profile.ErrUnauthenticated
	}

	found, err := s.profileRepo.GetByID(ctx, p.UserID)
	if errors.Is(err, apperror.ErrNotFound) && p.Email != "" {
		return s.profileRepo.GetByEmail(ctx, p.Email)
	}
	return found, err
}

// GetCurrentProfile implements profile.ProfileService.
func (s *ProfileServiceImpl) GetCurrentProfile(ctx context.Context) (profile.Profile, error) {
	return s.current(ctx)
}

// UpdateCurrentProfile implements profile.ProfileService.
func (s *ProfileServiceImpl) UpdateCurrentProfile(ctx context.Context, draft profile.Draft) (profile.Profile, error) {
	if err := draft.Validate(); err != nil {
		return profile.Profile{}, err
	}

	current, err := s.current(ctx)
	if err != nil {
		return profile.Profile{}, err
	}

	updated, err := s.profileRepo.Update(ctx, current.ID, draft.ToUpdate())
	if err != nil {
		return profile.Profile{}, err
	}

	slog.Info("Profile updated", "profile_id", updated.ID)
	return updated, nil
}

// ListProfiles implements profile.ProfileService.
func (s *ProfileServiceImpl) ListProfiles(ctx context.Context) ([]profile.Profile, error) {
	return s.profileRepo.List(ctx)
}
