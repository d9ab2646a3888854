package recruitment

import "context"

type ApplicantRepository interface {
	List(ctx context.Context) ([]Applicant, error)
	Create(ctx context.Context, a Applicant) (Applicant, error)
	Update(ctx context.Context, id string, req UpdateApplicantRequest) (Applicant, error)
	Delete(ctx context.Context, id string) error
}

type JobOfferRepository interface {
	List(ctx context.Context) ([]JobOffer, error)
	Create(ctx context.Context, o JobOffer) (JobOffer, error)
	Update(ctx context.Context, id string, req UpdateJobOfferRequest) (JobOffer, error)
	Delete(ctx context.Context, id string) error
}

type OnboardingRepository interface {
	List(ctx context.Context) ([]Onboarding, error)
	Create(ctx context.Context, o Onboarding) (Onboarding, error)
	Update(ctx context.Context, id string, req UpdateOnboardingRequest) (Onboarding, error)
	Delete(ctx context.Context, id string) error
}

type RegularizationRepository interface {
	List(ctx context.Context) ([]Regularization, error)
	Create(ctx context.Context, r Regularization) (Regularization, error)
	Update(ctx context.Context, id string, req UpdateRegularizationRequest) (Regularization, error)
	Delete(ctx context.Context, id string) error
}
