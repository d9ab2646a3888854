package profile

import "context"

// ProfileService operates on the profile of the principal carried by ctx.
type ProfileService interface {
	GetCurrentProfile(ctx context.Context) (Profile, error)
	UpdateCurrentProfile(ctx context.Context, draft Draft) (Profile, error)
	ListProfiles(ctx context.Context) ([]Profile, error)
}
