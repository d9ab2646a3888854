package recruitment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Applicant struct {
	ID              string     `json:"id"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Email           string     `json:"email"`
	ContactNumber   *string    `json:"contact_number"`
	PositionApplied string     `json:"position_applied"`
	ApplicationDate *time.Time `json:"application_date"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type JobOffer struct {
	ID            string           `json:"id"`
	ApplicantID   *string          `json:"applicant_id"`
	Position      string           `json:"position"`
	SalaryOffered *decimal.Decimal `json:"salary_offered"`
	OfferDate     *time.Time       `json:"offer_date"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type Onboarding struct {
	ID             string     `json:"id"`
	EmployeeID     *string    `json:"employee_id"`
	StartDate      *time.Time `json:"start_date"`
	CompletionDate *time.Time `json:"completion_date"`
	TasksCompleted *int       `json:"tasks_completed"`
	TotalTasks     *int       `json:"total_tasks"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type Regularization struct {
	ID                 string           `json:"id"`
	EmployeeID         *string          `json:"employee_id"`
	ProbationStartDate *time.Time       `json:"probation_start_date"`
	ProbationEndDate   *time.Time       `json:"probation_end_date"`
	RegularizationDate *time.Time       `json:"regularization_date"`
	EvaluationScore    *decimal.Decimal `json:"evaluation_score"`
	Status             string           `json:"status"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// Default statuses applied when a create request leaves status blank.
const (
	DefaultApplicantStatus      = "applied"
	DefaultJobOfferStatus       = "pending"
	DefaultOnboardingStatus     = "in_progress"
	DefaultRegularizationStatus = "probationary"
)
