package profile

import "context"

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (Profile, error)
	GetByEmail(ctx context.Context, email string) (Profile, error)
	List(ctx context.Context) ([]Profile, error)
	Update(ctx context.Context, id string, req UpdateProfileRequest) (Profile, error)
}
