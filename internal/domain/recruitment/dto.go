package recruitment

import (
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/nullable"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

func optionalDate(errs *validator.ValidationErrors, field, value string) {
	if _, ok := validator.ParseOptionalDate(value); !ok {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
	}
}

func patchDate(errs *validator.ValidationErrors, field string, f nullable.Field[string]) {
	if f.Value == nil {
		return
	}
	if _, ok := validator.IsValidDate(*f.Value); !ok {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
	}
}

func patchRequired(errs *validator.ValidationErrors, field string, f nullable.Field[string]) {
	if f.Set && (f.Value == nil || validator.IsEmpty(*f.Value)) {
		errs.Add(field, field+" is required")
	}
}

func orDefault(s, fallback string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return fallback
}

// Applicant

type CreateApplicantRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	ContactNumber   string `json:"contact_number"`
	PositionApplied string `json:"position_applied"`
	ApplicationDate string `json:"application_date"`
	Status          string `json:"status"`
}

func (r CreateApplicantRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("first_name", r.FirstName)
	errs.Required("last_name", r.LastName)
	errs.Required("email", r.Email)
	errs.Required("position_applied", r.PositionApplied)
	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(strings.TrimSpace(r.Email)) {
		errs.Add("email", "invalid email format")
	}
	optionalDate(&errs, "application_date", r.ApplicationDate)

	return errs.Err()
}

func (r CreateApplicantRequest) ToApplicant() Applicant {
	date, _ := validator.ParseOptionalDate(r.ApplicationDate)
	return Applicant{
		FirstName:       strings.TrimSpace(r.FirstName),
		LastName:        strings.TrimSpace(r.LastName),
		Email:           strings.TrimSpace(r.Email),
		ContactNumber:   validator.OptionalString(r.ContactNumber),
		PositionApplied: strings.TrimSpace(r.PositionApplied),
		ApplicationDate: date,
		Status:          orDefault(r.Status, DefaultApplicantStatus),
	}
}

type UpdateApplicantRequest struct {
	FirstName       nullable.Field[string] `json:"first_name"`
	LastName        nullable.Field[string] `json:"last_name"`
	Email           nullable.Field[string] `json:"email"`
	ContactNumber   nullable.Field[string] `json:"contact_number"`
	PositionApplied nullable.Field[string] `json:"position_applied"`
	ApplicationDate nullable.Field[string] `json:"application_date"`
	Status          nullable.Field[string] `json:"status"`
}

func (r UpdateApplicantRequest) Validate() error {
	var errs validator.ValidationErrors

	patchRequired(&errs, "first_name", r.FirstName)
	patchRequired(&errs, "last_name", r.LastName)
	patchRequired(&errs, "email", r.Email)
	patchRequired(&errs, "position_applied", r.PositionApplied)
	patchRequired(&errs, "status", r.Status)
	if r.Email.Value != nil && !validator.IsValidEmail(*r.Email.Value) {
		errs.Add("email", "invalid email format")
	}
	patchDate(&errs, "application_date", r.ApplicationDate)

	return errs.Err()
}

// Job offer

type CreateJobOfferRequest struct {
	ApplicantID   string      `json:"applicant_id"`
	Position      string      `json:"position"`
	SalaryOffered form.Number `json:"salary_offered"`
	OfferDate     string      `json:"offer_date"`
	Status        string      `json:"status"`
}

func (r CreateJobOfferRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("position", r.Position)
	if !validator.IsEmpty(r.ApplicantID) && !validator.IsValidUUID(strings.TrimSpace(r.ApplicantID)) {
		errs.Add("applicant_id", "applicant_id must be a valid UUID")
	}
	if s := validator.ParseAmount(r.SalaryOffered.String()); s != nil && s.IsNegative() {
		errs.Add("salary_offered", "salary_offered cannot be negative")
	}
	optionalDate(&errs, "offer_date", r.OfferDate)

	return errs.Err()
}

func (r CreateJobOfferRequest) ToJobOffer() JobOffer {
	date, _ := validator.ParseOptionalDate(r.OfferDate)
	return JobOffer{
		ApplicantID:   validator.OptionalString(r.ApplicantID),
		Position:      strings.TrimSpace(r.Position),
		SalaryOffered: validator.ParseAmount(r.SalaryOffered.String()),
		OfferDate:     date,
		Status:        orDefault(r.Status, DefaultJobOfferStatus),
	}
}

type UpdateJobOfferRequest struct {
	ApplicantID   nullable.Field[string]          `json:"applicant_id"`
	Position      nullable.Field[string]          `json:"position"`
	SalaryOffered nullable.Field[decimal.Decimal] `json:"salary_offered"`
	OfferDate     nullable.Field[string]          `json:"offer_date"`
	Status        nullable.Field[string]          `json:"status"`
}

func (r UpdateJobOfferRequest) Validate() error {
	var errs validator.ValidationErrors

	patchRequired(&errs, "position", r.Position)
	patchRequired(&errs, "status", r.Status)
	if r.ApplicantID.Value != nil && !validator.IsValidUUID(*r.ApplicantID.Value) {
		errs.Add("applicant_id", "applicant_id must be a valid UUID")
	}
	if r.SalaryOffered.Value != nil && r.SalaryOffered.Value.IsNegative() {
		errs.Add("salary_offered", "salary_offered cannot be negative")
	}
	patchDate(&errs, "offer_date", r.OfferDate)

	return errs.Err()
}

// Onboarding

type CreateOnboardingRequest struct {
	EmployeeID     string      `json:"employee_id"`
	StartDate      string      `json:"start_date"`
	CompletionDate string      `json:"completion_date"`
	TasksCompleted form.Number `json:"tasks_completed"`
	TotalTasks     form.Number `json:"total_tasks"`
	Status         string      `json:"status"`
}

func (r CreateOnboardingRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.EmployeeID) && !validator.IsValidUUID(strings.TrimSpace(r.EmployeeID)) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	optionalDate(&errs, "start_date", r.StartDate)
	optionalDate(&errs, "completion_date", r.CompletionDate)

	done := validator.ParseInt(r.TasksCompleted.String())
	total := validator.ParseInt(r.TotalTasks.String())
	if done != nil && total != nil && *done > *total {
		errs.Add("tasks_completed", ErrInvalidTaskProgress.Error())
	}

	return errs.Err()
}

func (r CreateOnboardingRequest) ToOnboarding() Onboarding {
	start, _ := validator.ParseOptionalDate(r.StartDate)
	completion, _ := validator.ParseOptionalDate(r.CompletionDate)
	return Onboarding{
		EmployeeID:     validator.OptionalString(r.EmployeeID),
		StartDate:      start,
		CompletionDate: completion,
		TasksCompleted: validator.ParseInt(r.TasksCompleted.String()),
		TotalTasks:     validator.ParseInt(r.TotalTasks.String()),
		Status:         orDefault(r.Status, DefaultOnboardingStatus),
	}
}

type UpdateOnboardingRequest struct {
	EmployeeID     nullable.Field[string] `json:"employee_id"`
	StartDate      nullable.Field[string] `json:"start_date"`
	CompletionDate nullable.Field[string] `json:"completion_date"`
	TasksCompleted nullable.Field[int]    `json:"tasks_completed"`
	TotalTasks     nullable.Field[int]    `json:"total_tasks"`
	Status         nullable.Field[string] `json:"status"`
}

func (r UpdateOnboardingRequest) Validate() error {
	var errs validator.ValidationErrors

	patchRequired(&errs, "status", r.Status)
	if r.EmployeeID.Value != nil && !validator.IsValidUUID(*r.EmployeeID.Value) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	patchDate(&errs, "start_date", r.StartDate)
	patchDate(&errs, "completion_date", r.CompletionDate)
	if r.TasksCompleted.Value != nil && r.TotalTasks.Value != nil && *r.TasksCompleted.Value > *r.TotalTasks.Value {
		errs.Add("tasks_completed", ErrInvalidTaskProgress.Error())
	}

	return errs.Err()
}

// Regularization

type CreateRegularizationRequest struct {
	EmployeeID         string      `json:"employee_id"`
	ProbationStartDate string      `json:"probation_start_date"`
	ProbationEndDate   string      `json:"probation_end_date"`
	RegularizationDate string      `json:"regularization_date"`
	EvaluationScore    form.Number `json:"evaluation_score"`
	Status             string      `json:"status"`
}

func (r CreateRegularizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.EmployeeID) && !validator.IsValidUUID(strings.TrimSpace(r.EmployeeID)) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	optionalDate(&errs, "probation_start_date", r.ProbationStartDate)
	optionalDate(&errs, "probation_end_date", r.ProbationEndDate)
	optionalDate(&errs, "regularization_date", r.RegularizationDate)

	return errs.Err()
}

func (r CreateRegularizationRequest) ToRegularization() Regularization {
	start, _ := validator.ParseOptionalDate(r.ProbationStartDate)
	end, _ := validator.ParseOptionalDate(r.ProbationEndDate)
	regularized, _ := validator.ParseOptionalDate(r.RegularizationDate)
	return Regularization{
		EmployeeID:         validator.OptionalString(r.EmployeeID),
		ProbationStartDate: start,
		ProbationEndDate:   end,
		RegularizationDate: regularized,
		EvaluationScore:    validator.ParseAmount(r.EvaluationScore.String()),
		Status:             orDefault(r.Status, DefaultRegularizationStatus),
	}
}

type UpdateRegularizationRequest struct {
	EmployeeID         nullable.Field[string]          `json:"employee_id"`
	ProbationStartDate nullable.Field[string]          `json:"probation_start_date"`
	ProbationEndDate   nullable.Field[string]          `json:"probation_end_date"`
	RegularizationDate nullable.Field[string]          `json:"regularization_date"`
	EvaluationScore    nullable.Field[decimal.Decimal] `json:"evaluation_score"`
	Status             nullable.Field[string]          `json:"status"`
}

func (r UpdateRegularizationRequest) Validate() error {
	var errs validator.ValidationErrors

	patchRequired(&errs, "status", r.Status)
	if r.EmployeeID.Value != nil && !validator.IsValidUUID(*r.EmployeeID.Value) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	patchDate(&errs, "probation_start_date", r.ProbationStartDate)
	patchDate(&errs, "probation_end_date", r.ProbationEndDate)
	patchDate(&errs, "regularization_date", r.RegularizationDate)

	return errs.Err()
}
