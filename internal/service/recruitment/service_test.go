package recruitment

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/nullable"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApplicantRepo struct {
	recruitment.ApplicantRepository
	created []recruitment.Applicant
}

func (f *fakeApplicantRepo) Create(ctx context.Context, a recruitment.Applicant) (recruitment.Applicant, error) {
	a.ID = "a-1"
	f.created = append(f.created, a)
	return a, nil
}

func (f *fakeApplicantRepo) Delete(ctx context.Context, id string) error {
	return recruitment.ErrApplicantNotFound
}

type fakeOnboardingRepo struct {
	recruitment.OnboardingRepository
	updates int
}

func (f *fakeOnboardingRepo) Update(ctx context.Context, id string, req recruitment.UpdateOnboardingRequest) (recruitment.Onboarding, error) {
	f.updates++
	return recruitment.Onboarding{ID: id, TasksCompleted: req.TasksCompleted.Value, TotalTasks: req.TotalTasks.Value}, nil
}

func TestCreateApplicant(t *testing.T) {
	repo := &fakeApplicantRepo{}
	svc := NewRecruitmentService(repo, nil, nil, nil)

	created, err := svc.CreateApplicant(context.Background(), recruitment.CreateApplicantRequest{
		FirstName: "Ben", LastName: "Santos", Email: "ben@x.com", PositionApplied: "Engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, recruitment.DefaultApplicantStatus, created.Status)

	_, err = svc.CreateApplicant(context.Background(), recruitment.CreateApplicantRequest{FirstName: "Ben", Email: "not-an-email"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "email")
	assert.Len(t, repo.created, 1)
}

func TestDeleteApplicant_NotFound(t *testing.T) {
	svc := NewRecruitmentService(&fakeApplicantRepo{}, nil, nil, nil)
	assert.ErrorIs(t, svc.DeleteApplicant(context.Background(), "missing"), apperror.ErrNotFound)
}

func TestUpdateOnboarding_TaskProgress(t *testing.T) {
	repo := &fakeOnboardingRepo{}
	svc := NewRecruitmentService(nil, nil, repo, nil)

	_, err := svc.UpdateOnboarding(context.Background(), "o-1", recruitment.UpdateOnboardingRequest{
		TasksCompleted: nullable.Of(6),
		TotalTasks:     nullable.Of(5),
	})
	require.Error(t, err)
	assert.Zero(t, repo.updates)

	updated, err := svc.UpdateOnboarding(context.Background(), "o-1", recruitment.UpdateOnboardingRequest{
		TasksCompleted: nullable.Of(5),
		TotalTasks:     nullable.Of(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, *updated.TasksCompleted)
}
