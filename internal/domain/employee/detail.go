package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Detail is the read-only employee view, grouped the way the detail dialog
// renders it. Prior employers only lists slots that carry data.
type Detail struct {
	ID               string              `json:"id"`
	FullName         string              `json:"full_name"`
	BasicInfo        BasicInfo           `json:"basic_info"`
	Employment       Employment          `json:"employment"`
	GovernmentIDs    GovernmentIDs       `json:"government_ids"`
	Education        Education           `json:"education"`
	PriorEmployment  []PriorEmployerView `json:"previous_employment"`
	EmergencyContact EmergencyContact    `json:"emergency_contact"`
}

type BasicInfo struct {
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	ContactNumber *string    `json:"contact_number"`
	HomeAddress   *string    `json:"home_address"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
}

type Employment struct {
	EmployeeNumber      *string          `json:"employee_number"`
	Department          string           `json:"department"`
	Position            string           `json:"position"`
	Status              Status           `json:"status"`
	HireDate            time.Time        `json:"hire_date"`
	Salary              *decimal.Decimal `json:"salary"`
	ImmediateSupervisor *string          `json:"immediate_supervisor"`
	EmploymentDetails   *string          `json:"employment_details"`
}

type PriorEmployerView struct {
	Slot int `json:"slot"`
	PriorEmployer
}

func NewDetail(e Employee) Detail {
	d := Detail{
		ID:       e.ID,
		FullName: e.FullName(),
		BasicInfo: BasicInfo{
			FirstName:     e.FirstName,
			LastName:      e.LastName,
			Email:         e.Email,
			ContactNumber: e.ContactNumber,
			HomeAddress:   e.HomeAddress,
			DateOfBirth:   e.DateOfBirth,
		},
		Employment: Employment{
			EmployeeNumber:      e.EmployeeNumber,
			Department:          e.Department,
			Position:            e.Position,
			Status:              e.Status,
			HireDate:            e.HireDate,
			Salary:              e.Salary,
			ImmediateSupervisor: e.ImmediateSupervisor,
			EmploymentDetails:   e.EmploymentDetails,
		},
		GovernmentIDs:    e.GovernmentIDs,
		Education:        e.Education,
		PriorEmployment:  []PriorEmployerView{},
		EmergencyContact: e.EmergencyContact,
	}
	for i, p := range e.PriorEmployers {
		if p.IsEmpty() {
			continue
		}
		d.PriorEmployment = append(d.PriorEmployment, PriorEmployerView{Slot: i + 1, PriorEmployer: p})
	}
	return d
}
