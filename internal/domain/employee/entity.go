package employee

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PriorEmployerSlots is the fixed number of previous-employment blocks kept per employee.
const PriorEmployerSlots = 3

type Employee struct {
	ID                  string           `json:"id"`
	ProfileID           *string          `json:"profile_id"`
	EmployeeNumber      *string          `json:"employee_number"`
	FirstName           string           `json:"first_name"`
	LastName            string           `json:"last_name"`
	Email               string           `json:"email"`
	ContactNumber       *string          `json:"contact_number"`
	HomeAddress         *string          `json:"home_address"`
	DateOfBirth         *time.Time       `json:"date_of_birth"`
	Department          string           `json:"department"`
	Position            string           `json:"position"`
	Salary              *decimal.Decimal `json:"salary"` // nil means not set
	HireDate            time.Time        `json:"hire_date"`
	Status              Status           `json:"status"`
	ImmediateSupervisor *string          `json:"immediate_supervisor"`
	EmploymentDetails   *string          `json:"employment_details"`
	GovernmentIDs       GovernmentIDs    `json:"government_ids"`
	Education           Education        `json:"education"`
	PriorEmployers      [3]PriorEmployer `json:"prior_employers"`
	EmergencyContact    EmergencyContact `json:"emergency_contact"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusOnLeave  Status = "on leave"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusOnLeave:
		return true
	}
	return false
}

// GovernmentIDs are the Philippine statutory identifiers.
type GovernmentIDs struct {
	SSSNumber        *string `json:"sss_number"`
	TINNumber        *string `json:"tin_number"`
	PhilHealthNumber *string `json:"philhealth_number"`
	HDMFNumber       *string `json:"hdmf_number"`
}

type Education struct {
	School           *string `json:"school"`
	Course           *string `json:"course"`
	YearAttendedFrom *int    `json:"year_attended_from"`
	YearAttendedTo   *int    `json:"year_attended_to"`
}

type PriorEmployer struct {
	CompanyName       *string    `json:"company_name"`
	CompanyAddress    *string    `json:"company_address"`
	ContactNumber     *string    `json:"contact_number"`
	Position          *string    `json:"position"`
	EmploymentFrom    *time.Time `json:"employment_from"`
	EmploymentTo      *time.Time `json:"employment_to"`
	SupervisorName    *string    `json:"supervisor_name"`
	SupervisorContact *string    `json:"supervisor_contact"`
	ReasonLeaving     *string    `json:"reason_leaving"`
}

// IsEmpty reports whether the slot carries no data at all.
func (p PriorEmployer) IsEmpty() bool {
	for _, s := range []*string{
		p.CompanyName, p.CompanyAddress, p.ContactNumber, p.Position,
		p.SupervisorName, p.SupervisorContact, p.ReasonLeaving,
	} {
		if s != nil && strings.TrimSpace(*s) != "" {
			return false
		}
	}
	return p.EmploymentFrom == nil && p.EmploymentTo == nil
}

type EmergencyContact struct {
	Name     *string `json:"name"`
	Relation *string `json:"relation"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Email    *string `json:"email"`
}
