package recruitment

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/recruitment"
)

type RecruitmentServiceImpl struct {
	applicantRepo      recruitment.ApplicantRepository
	jobOfferRepo       recruitment.JobOfferRepository
	onboardingRepo     recruitment.OnboardingRepository
	regularizationRepo recruitment.RegularizationRepository
}

func NewRecruitmentService(
	applicantRepo recruitment.ApplicantRepository,
	jobOfferRepo recruitment.JobOfferRepository,
	onboardingRepo recruitment.OnboardingRepository,
	regularizationRepo recruitment.RegularizationRepository,
) recruitment.RecruitmentService {
	return &RecruitmentServiceImpl{
		applicantRepo:      applicantRepo,
		jobOfferRepo:       jobOfferRepo,
		onboardingRepo:     onboardingRepo,
		regularizationRepo: regularizationRepo,
	}
}

type validatable interface {
	Validate() error
}

// validated runs store only when req passes validation.
func validated[T any](req validatable, store func() (T, error)) (T, error) {
	if err := req.Validate(); err != nil {
		var zero T
		return zero, err
	}
	return store()
}

// ========== APPLICANTS ==========

func (s *RecruitmentServiceImpl) ListApplicants(ctx context.Context) ([]recruitment.Applicant, error) {
	return s.applicantRepo.List(ctx)
}

func (s *RecruitmentServiceImpl) CreateApplicant(ctx context.Context, req recruitment.CreateApplicantRequest) (recruitment.Applicant, error) {
	created, err := validated(req, func() (recruitment.Applicant, error) {
		return s.applicantRepo.Create(ctx, req.ToApplicant())
	})
	if err == nil {
		slog.Info("Applicant created", "applicant_id", created.ID, "position", created.PositionApplied)
	}
	return created, err
}

func (s *RecruitmentServiceImpl) UpdateApplicant(ctx context.Context, id string, req recruitment.UpdateApplicantRequest) (recruitment.Applicant, error) {
	return validated(req, func() (recruitment.Applicant, error) {
		return s.applicantRepo.Update(ctx, id, req)
	})
}

func (s *RecruitmentServiceImpl) DeleteApplicant(ctx context.Context, id string) error {
	return s.applicantRepo.Delete(ctx, id)
}

// ========== JOB OFFERS ==========

func (s *RecruitmentServiceImpl) ListJobOffers(ctx context.Context) ([]recruitment.JobOffer, error) {
	return s.jobOfferRepo.List(ctx)
}

func (s *RecruitmentServiceImpl) CreateJobOffer(ctx context.Context, req recruitment.CreateJobOfferRequest) (recruitment.JobOffer, error) {
	created, err := validated(req, func() (recruitment.JobOffer, error) {
		return s.jobOfferRepo.Create(ctx, req.ToJobOffer())
	})
	if err == nil {
		slog.Info("Job offer created", "job_offer_id", created.ID, "position", created.Position)
	}
	return created, err
}

func (s *RecruitmentServiceImpl) UpdateJobOffer(ctx context.Context, id string, req recruitment.UpdateJobOfferRequest) (recruitment.JobOffer, error) {
	return validated(req, func() (recruitment.JobOffer, error) {
		return s.jobOfferRepo.Update(ctx, id, req)
	})
}

func (s *RecruitmentServiceImpl) DeleteJobOffer(ctx context.Context, id string) error {
	return s.jobOfferRepo.Delete(ctx, id)
}

// ========== ONBOARDING ==========

func (s *RecruitmentServiceImpl) ListOnboarding(ctx context.Context) ([]recruitment.Onboarding, error) {
	return s.onboardingRepo.List(ctx)
}

func (s *RecruitmentServiceImpl) CreateOnboarding(ctx context.Context, req recruitment.CreateOnboardingRequest) (recruitment.Onboarding, error) {
	return validated(req, func() (recruitment.Onboarding, error) {
		return s.onboardingRepo.Create(ctx, req.ToOnboarding())
	})
}

func (s *RecruitmentServiceImpl) UpdateOnboarding(ctx context.Context, id string, req recruitment.UpdateOnboardingRequest) (recruitment.Onboarding, error) {
	return validated(req, func() (recruitment.Onboarding, error) {
		return s.onboardingRepo.Update(ctx, id, req)
	})
}

func (s *RecruitmentServiceImpl) DeleteOnboarding(ctx context.Context, id string) error {
	return s.onboardingRepo.Delete(ctx, id)
}

// ========== REGULARIZATION ==========

func (s *RecruitmentServiceImpl) ListRegularizations(ctx context.Context) ([]recruitment.Regularization, error) {
	return s.regularizationRepo.List(ctx)
}

func (s *RecruitmentServiceImpl) CreateRegularization(ctx context.Context, req recruitment.CreateRegularizationRequest) (recruitment.Regularization, error) {
	return validated(req, func() (recruitment.Regularization, error) {
		return s.regularizationRepo.Create(ctx, req.ToRegularization())
	})
}

func (s *RecruitmentServiceImpl) UpdateRegularization(ctx context.Context, id string, req recruitment.UpdateRegularizationRequest) (recruitment.Regularization, error) {
	return validated(req, func() (recruitment.Regularization, error) {
		return s.regularizationRepo.Update(ctx, id, req)
	})
}

func (s *RecruitmentServiceImpl) DeleteRegularization(ctx context.Context, id string) error {
	return s.regularizationRepo.Delete(ctx, id)
}
