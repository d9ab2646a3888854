package recruitment

import "context"

// RecruitmentService passes applicant, offer, onboarding and regularization
// records through to the store after validating the request.
type RecruitmentService interface {
	ListApplicants(ctx context.Context) ([]Applicant, error)
	CreateApplicant(ctx context.Context, req CreateApplicantRequest) (Applicant, error)
	UpdateApplicant(ctx context.Context, id string, req UpdateApplicantRequest) (Applicant, error)
	DeleteApplicant(ctx context.Context, id string) error

	ListJobOffers(ctx context.Context) ([]JobOffer, error)
	CreateJobOffer(ctx context.Context, req CreateJobOfferRequest) (JobOffer, error)
	UpdateJobOffer(ctx context.Context, id string, req UpdateJobOfferRequest) (JobOffer, error)
	DeleteJobOffer(ctx context.Context, id string) error

	ListOnboarding(ctx context.Context) ([]Onboarding, error)
	CreateOnboarding(ctx context.Context, req CreateOnboardingRequest) (Onboarding, error)
	UpdateOnboarding(ctx context.Context, id string, req UpdateOnboardingRequest) (Onboarding, error)
	DeleteOnboarding(ctx context.Context, id string) error

	ListRegularizations(ctx context.Context) ([]Regularization, error)
	CreateRegularization(ctx context.Context, req CreateRegularizationRequest) (Regularization, error)
	UpdateRegularization(ctx context.Context, id string, req UpdateRegularizationRequest) (Regularization, error)
	DeleteRegularization(ctx context.Context, id string) error
}
