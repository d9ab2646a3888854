package employee

import (
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/nullable"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// UpdateEmployeeRequest is a partial update. Absent keys are left untouched
// and explicit nulls clear optional columns.
type UpdateEmployeeRequest struct {
	EmployeeNumber      nullable.Field[string]          `json:"employee_number"`
	FirstName           nullable.Field[string]          `json:"first_name"`
	LastName            nullable.Field[string]          `json:"last_name"`
	Email               nullable.Field[string]          `json:"email"`
	ContactNumber       nullable.Field[string]          `json:"contact_number"`
	HomeAddress         nullable.Field[string]          `json:"home_address"`
	DateOfBirth         nullable.Field[string]          `json:"date_of_birth"`
	Department          nullable.Field[string]          `json:"department"`
	Position            nullable.Field[string]          `json:"position"`
	Salary              nullable.Field[decimal.Decimal] `json:"salary"`
	HireDate            nullable.Field[string]          `json:"hire_date"`
	Status              nullable.Field[string]          `json:"status"`
	ImmediateSupervisor nullable.Field[string]          `json:"immediate_supervisor"`
	EmploymentDetails   nullable.Field[string]          `json:"employment_details"`
	SSSNumber           nullable.Field[string]          `json:"sss_number"`
	TINNumber           nullable.Field[string]          `json:"tin_number"`
	PhilHealthNumber    nullable.Field[string]          `json:"philhealth_number"`
	HDMFNumber          nullable.Field[string]          `json:"hdmf_number"`
	School              nullable.Field[string]          `json:"school"`
	Course              nullable.Field[string]          `json:"course"`
	YearAttendedFrom    nullable.Field[int]             `json:"year_attended_from"`
	YearAttendedTo      nullable.Field[int]             `json:"year_attended_to"`
	PriorEmployers      [3]PriorEmployerPatch           `json:"prior_employers"`
	EmergencyContact    EmergencyContactPatch           `json:"emergency_contact"`
}

type PriorEmployerPatch struct {
	CompanyName       nullable.Field[string] `json:"company_name"`
	CompanyAddress    nullable.Field[string] `json:"company_address"`
	ContactNumber     nullable.Field[string] `json:"contact_number"`
	Position          nullable.Field[string] `json:"position"`
	EmploymentFrom    nullable.Field[string] `json:"employment_from"`
	EmploymentTo      nullable.Field[string] `json:"employment_to"`
	SupervisorName    nullable.Field[string] `json:"supervisor_name"`
	SupervisorContact nullable.Field[string] `json:"supervisor_contact"`
	ReasonLeaving     nullable.Field[string] `json:"reason_leaving"`
}

type EmergencyContactPatch struct {
	Name     nullable.Field[string] `json:"name"`
	Relation nullable.Field[string] `json:"relation"`
	Phone    nullable.Field[string] `json:"phone"`
	Address  nullable.Field[string] `json:"address"`
	Email    nullable.Field[string] `json:"email"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	required := map[string]nullable.Field[string]{
		"first_name": r.FirstName,
		"last_name":  r.LastName,
		"email":      r.Email,
		"department": r.Department,
		"position":   r.Position,
		"hire_date":  r.HireDate,
		"status":     r.Status,
	}
	for _, field := range []string{"first_name", "last_name", "email", "department", "position", "hire_date", "status"} {
		f := required[field]
		if f.Set && (f.Value == nil || validator.IsEmpty(*f.Value)) {
			errs.Add(field, field+" cannot be empty")
		}
	}

	if r.Email.Value != nil && !validator.IsEmpty(*r.Email.Value) && !validator.IsValidEmail(strings.TrimSpace(*r.Email.Value)) {
		errs.Add("email", "invalid email format")
	}
	if r.HireDate.Value != nil && !validator.IsEmpty(*r.HireDate.Value) {
		if _, ok := validator.IsValidDate(*r.HireDate.Value); !ok {
			errs.Add("hire_date", "hire_date must be in YYYY-MM-DD format")
		}
	}
	if r.DateOfBirth.Value != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth.Value); !ok {
			errs.Add("date_of_birth", "date_of_birth must be in YYYY-MM-DD format")
		}
	}
	if r.Status.Value != nil && !validator.IsEmpty(*r.Status.Value) && !Status(*r.Status.Value).IsValid() {
		errs.Add("status", ErrInvalidStatus.Error())
	}
	if r.Salary.Value != nil && r.Salary.Value.IsNegative() {
		errs.Add("salary", ErrNegativeSalary.Error())
	}
	for i, p := range r.PriorEmployers {
		for name, f := range map[string]nullable.Field[string]{"employment_from": p.EmploymentFrom, "employment_to": p.EmploymentTo} {
			if f.Value == nil {
				continue
			}
			if _, ok := validator.IsValidDate(*f.Value); !ok {
				errs.Add("prior_employers["+validator.Itoa(i)+"]."+name, name+" must be in YYYY-MM-DD format")
			}
		}
	}
	if r.EmergencyContact.Email.Value != nil && !validator.IsValidEmail(*r.EmergencyContact.Email.Value) {
		errs.Add("emergency_contact.email", "invalid email format")
	}

	return errs.Err()
}

// Filter is the list-view search and filter state. "all" or an empty value
// disables a filter.
type Filter struct {
	Search     string `json:"search"`
	Department string `json:"department"`
	Status     string `json:"status"`
	Sort       string `json:"sort"`
}

// ListResponse is the filtered employee list. Empty is set, with a message,
// when no record matches so clients render an explicit empty state.
type ListResponse struct {
	Employees []Employee `json:"employees"`
	Total     int        `json:"total"`
	Matched   int        `json:"matched"`
	Empty     bool       `json:"empty"`
	Message   string     `json:"message,omitempty"`
}
