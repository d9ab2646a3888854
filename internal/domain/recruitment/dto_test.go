package recruitment

import (
	"testing"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateApplicantRequest(t *testing.T) {
	req := CreateApplicantRequest{
		FirstName:       "Lia",
		LastName:        "Santos",
		Email:           "lia@example.com",
		PositionApplied: "Recruiter",
	}
	require.NoError(t, req.Validate())

	a := req.ToApplicant()
	assert.Equal(t, DefaultApplicantStatus, a.Status)
	assert.Nil(t, a.ApplicationDate)
	assert.Nil(t, a.ContactNumber)

	req.Email = "lia"
	req.ApplicationDate = "03/01/2024"
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "application_date")
}

func TestCreateJobOfferRequest_LenientSalary(t *testing.T) {
	req := CreateJobOfferRequest{Position: "Analyst", SalaryOffered: "n/a"}
	require.NoError(t, req.Validate())
	assert.Nil(t, req.ToJobOffer().SalaryOffered)

	req.SalaryOffered = "45,000.50"
	o := req.ToJobOffer()
	require.NotNil(t, o.SalaryOffered)
	assert.Equal(t, "45000.5", o.SalaryOffered.String())
	assert.Equal(t, DefaultJobOfferStatus, o.Status)
}

func TestOnboardingTaskProgress(t *testing.T) {
	err := CreateOnboardingRequest{TasksCompleted: "5", TotalTasks: "3"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrInvalidTaskProgress.Error())

	err = UpdateOnboardingRequest{TasksCompleted: nullable.Of(2), TotalTasks: nullable.Of(4)}.Validate()
	assert.NoError(t, err)
}

func TestUpdateRequests_RejectClearingRequiredFields(t *testing.T) {
	err := UpdateApplicantRequest{FirstName: nullable.Null[string]()}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first_name")

	err = UpdateRegularizationRequest{Status: nullable.Of(" ")}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")
}
