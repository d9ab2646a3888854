package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/nullable"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
)

// Draft is the editable form state of the add/edit employee dialog.
// Every input is kept as text; parsing happens on submit.
type Draft struct {
	EmployeeNumber      string                `json:"employee_number"`
	FirstName           string                `json:"first_name"`
	LastName            string                `json:"last_name"`
	Email               string                `json:"email"`
	ContactNumber       string                `json:"contact_number"`
	HomeAddress         string                `json:"home_address"`
	DateOfBirth         string                `json:"date_of_birth"`
	Department          string                `json:"department"`
	Position            string                `json:"position"`
	Salary              form.Number           `json:"salary"`
	HireDate            string                `json:"hire_date"`
	Status              string                `json:"status"`
	ImmediateSupervisor string                `json:"immediate_supervisor"`
	EmploymentDetails   string                `json:"employment_details"`
	SSSNumber           string                `json:"sss_number"`
	TINNumber           string                `json:"tin_number"`
	PhilHealthNumber    string                `json:"philhealth_number"`
	HDMFNumber          string                `json:"hdmf_number"`
	School              string                `json:"school"`
	Course              string                `json:"course"`
	YearAttendedFrom    form.Number           `json:"year_attended_from"`
	YearAttendedTo      form.Number           `json:"year_attended_to"`
	PriorEmployers      [3]PriorEmployerDraft `json:"prior_employers"`
	EmergencyContact    EmergencyContactDraft `json:"emergency_contact"`
}

type PriorEmployerDraft struct {
	CompanyName       string `json:"company_name"`
	CompanyAddress    string `json:"company_address"`
	ContactNumber     string `json:"contact_number"`
	Position          string `json:"position"`
	EmploymentFrom    string `json:"employment_from"`
	EmploymentTo      string `json:"employment_to"`
	SupervisorName    string `json:"supervisor_name"`
	SupervisorContact string `json:"supervisor_contact"`
	ReasonLeaving     string `json:"reason_leaving"`
}

type EmergencyContactDraft struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Email    string `json:"email"`
}

// NewDraft returns the empty draft shown when adding an employee.
func NewDraft() Draft {
	return Draft{Status: string(StatusActive)}
}

// DraftFromEmployee initializes the edit dialog from a stored employee.
func DraftFromEmployee(e Employee) Draft {
	d := Draft{
		EmployeeNumber:      validator.StringOrEmpty(e.EmployeeNumber),
		FirstName:           e.FirstName,
		LastName:            e.LastName,
		Email:               e.Email,
		ContactNumber:       validator.StringOrEmpty(e.ContactNumber),
		HomeAddress:         validator.StringOrEmpty(e.HomeAddress),
		DateOfBirth:         validator.FormatDate(e.DateOfBirth),
		Department:          e.Department,
		Position:            e.Position,
		HireDate:            e.HireDate.Format(validator.DateLayout),
		Status:              string(e.Status),
		ImmediateSupervisor: validator.StringOrEmpty(e.ImmediateSupervisor),
		EmploymentDetails:   validator.StringOrEmpty(e.EmploymentDetails),
		SSSNumber:           validator.StringOrEmpty(e.GovernmentIDs.SSSNumber),
		TINNumber:           validator.StringOrEmpty(e.GovernmentIDs.TINNumber),
		PhilHealthNumber:    validator.StringOrEmpty(e.GovernmentIDs.PhilHealthNumber),
		HDMFNumber:          validator.StringOrEmpty(e.GovernmentIDs.HDMFNumber),
		School:              validator.StringOrEmpty(e.Education.School),
		Course:              validator.StringOrEmpty(e.Education.Course),
		EmergencyContact: EmergencyContactDraft{
			Name:     validator.StringOrEmpty(e.EmergencyContact.Name),
			Relation: validator.StringOrEmpty(e.EmergencyContact.Relation),
			Phone:    validator.StringOrEmpty(e.EmergencyContact.Phone),
			Address:  validator.StringOrEmpty(e.EmergencyContact.Address),
			Email:    validator.StringOrEmpty(e.EmergencyContact.Email),
		},
	}
	if e.Salary != nil {
		d.Salary = form.Number(e.Salary.String())
	}
	if e.Education.YearAttendedFrom != nil {
		d.YearAttendedFrom = form.Number(validator.Itoa(*e.Education.YearAttendedFrom))
	}
	if e.Education.YearAttendedTo != nil {
		d.YearAttendedTo = form.Number(validator.Itoa(*e.Education.YearAttendedTo))
	}
	for i, p := range e.PriorEmployers {
		d.PriorEmployers[i] = PriorEmployerDraft{
			CompanyName:       validator.StringOrEmpty(p.CompanyName),
			CompanyAddress:    validator.StringOrEmpty(p.CompanyAddress),
			ContactNumber:     validator.StringOrEmpty(p.ContactNumber),
			Position:          validator.StringOrEmpty(p.Position),
			EmploymentFrom:    validator.FormatDate(p.EmploymentFrom),
			EmploymentTo:      validator.FormatDate(p.EmploymentTo),
			SupervisorName:    validator.StringOrEmpty(p.SupervisorName),
			SupervisorContact: validator.StringOrEmpty(p.SupervisorContact),
			ReasonLeaving:     validator.StringOrEmpty(p.ReasonLeaving),
		}
	}
	return d
}

// Validate checks required fields first, then formats. Numeric inputs are
// never rejected: unparseable text becomes "not set".
func (d Draft) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("first_name", d.FirstName)
	errs.Required("last_name", d.LastName)
	errs.Required("email", d.Email)
	errs.Required("department", d.Department)
	errs.Required("position", d.Position)
	errs.Required("hire_date", d.HireDate)

	if !validator.IsEmpty(d.Email) && !validator.IsValidEmail(strings.TrimSpace(d.Email)) {
		errs.Add("email", "invalid email format")
	}
	if !validator.IsEmpty(d.HireDate) {
		if _, ok := validator.IsValidDate(strings.TrimSpace(d.HireDate)); !ok {
			errs.Add("hire_date", "hire_date must be in YYYY-MM-DD format")
		}
	}
	if dob, ok := validator.ParseOptionalDate(d.DateOfBirth); !ok {
		errs.Add("date_of_birth", "date_of_birth must be in YYYY-MM-DD format")
	} else if dob != nil && dob.After(time.Now()) {
		errs.Add("date_of_birth", ErrFutureBirthDate.Error())
	}
	if d.Status != "" && !Status(d.Status).IsValid() {
		errs.Add("status", ErrInvalidStatus.Error())
	}
	if salary := validator.ParseAmount(d.Salary.String()); salary != nil && salary.IsNegative() {
		errs.Add("salary", ErrNegativeSalary.Error())
	}

	from := validator.ParseInt(d.YearAttendedFrom.String())
	to := validator.ParseInt(d.YearAttendedTo.String())
	if from != nil && to != nil && *to < *from {
		errs.Add("year_attended_to", ErrInvalidYearRange.Error())
	}

	for i, p := range d.PriorEmployers {
		field := "prior_employers[" + validator.Itoa(i) + "]"
		start, okFrom := validator.ParseOptionalDate(p.EmploymentFrom)
		end, okTo := validator.ParseOptionalDate(p.EmploymentTo)
		if !okFrom {
			errs.Add(field+".employment_from", "employment_from must be in YYYY-MM-DD format")
		}
		if !okTo {
			errs.Add(field+".employment_to", "employment_to must be in YYYY-MM-DD format")
		}
		if start != nil && end != nil && end.Before(*start) {
			errs.Add(field+".employment_to", ErrEmployerDateRange.Error())
		}
	}

	if email := strings.TrimSpace(d.EmergencyContact.Email); email != "" && !validator.IsValidEmail(email) {
		errs.Add("emergency_contact.email", "invalid email format")
	}

	return errs.Err()
}

// ToEmployee converts a validated draft into a new employee record.
func (d Draft) ToEmployee() Employee {
	hireDate, _ := validator.IsValidDate(strings.TrimSpace(d.HireDate))
	dob, _ := validator.ParseOptionalDate(d.DateOfBirth)

	status := Status(d.Status)
	if status == "" {
		status = StatusActive
	}

	e := Employee{
		EmployeeNumber:      validator.OptionalString(d.EmployeeNumber),
		FirstName:           strings.TrimSpace(d.FirstName),
		LastName:            strings.TrimSpace(d.LastName),
		Email:               strings.TrimSpace(d.Email),
		ContactNumber:       validator.OptionalString(d.ContactNumber),
		HomeAddress:         validator.OptionalString(d.HomeAddress),
		DateOfBirth:         dob,
		Department:          strings.TrimSpace(d.Department),
		Position:            strings.TrimSpace(d.Position),
		Salary:              validator.ParseAmount(d.Salary.String()),
		HireDate:            hireDate,
		Status:              status,
		ImmediateSupervisor: validator.OptionalString(d.ImmediateSupervisor),
		EmploymentDetails:   validator.OptionalString(d.EmploymentDetails),
		GovernmentIDs: GovernmentIDs{
			SSSNumber:        validator.OptionalString(d.SSSNumber),
			TINNumber:        validator.OptionalString(d.TINNumber),
			PhilHealthNumber: validator.OptionalString(d.PhilHealthNumber),
			HDMFNumber:       validator.OptionalString(d.HDMFNumber),
		},
		Education: Education{
			School:           validator.OptionalString(d.School),
			Course:           validator.OptionalString(d.Course),
			YearAttendedFrom: validator.ParseInt(d.YearAttendedFrom.String()),
			YearAttendedTo:   validator.ParseInt(d.YearAttendedTo.String()),
		},
		EmergencyContact: EmergencyContact{
			Name:     validator.OptionalString(d.EmergencyContact.Name),
			Relation: validator.OptionalString(d.EmergencyContact.Relation),
			Phone:    validator.OptionalString(d.EmergencyContact.Phone),
			Address:  validator.OptionalString(d.EmergencyContact.Address),
			Email:    validator.OptionalString(d.EmergencyContact.Email),
		},
	}
	for i, p := range d.PriorEmployers {
		from, _ := validator.ParseOptionalDate(p.EmploymentFrom)
		to, _ := validator.ParseOptionalDate(p.EmploymentTo)
		e.PriorEmployers[i] = PriorEmployer{
			CompanyName:       validator.OptionalString(p.CompanyName),
			CompanyAddress:    validator.OptionalString(p.CompanyAddress),
			ContactNumber:     validator.OptionalString(p.ContactNumber),
			Position:          validator.OptionalString(p.Position),
			EmploymentFrom:    from,
			EmploymentTo:      to,
			SupervisorName:    validator.OptionalString(p.SupervisorName),
			SupervisorContact: validator.OptionalString(p.SupervisorContact),
			ReasonLeaving:     validator.OptionalString(p.ReasonLeaving),
		}
	}
	return e
}

// ToUpdate converts a validated draft into a full-replacement patch: every
// column is written, and blank optional inputs clear their column.
func (d Draft) ToUpdate() UpdateEmployeeRequest {
	e := d.ToEmployee()

	req := UpdateEmployeeRequest{
		EmployeeNumber:      nullable.From(e.EmployeeNumber),
		FirstName:           nullable.Of(e.FirstName),
		LastName:            nullable.Of(e.LastName),
		Email:               nullable.Of(e.Email),
		ContactNumber:       nullable.From(e.ContactNumber),
		HomeAddress:         nullable.From(e.HomeAddress),
		DateOfBirth:         nullable.From(validator.OptionalString(d.DateOfBirth)),
		Department:          nullable.Of(e.Department),
		Position:            nullable.Of(e.Position),
		Salary:              nullable.From(e.Salary),
		HireDate:            nullable.Of(strings.TrimSpace(d.HireDate)),
		Status:              nullable.Of(string(e.Status)),
		ImmediateSupervisor: nullable.From(e.ImmediateSupervisor),
		EmploymentDetails:   nullable.From(e.EmploymentDetails),
		SSSNumber:           nullable.From(e.GovernmentIDs.SSSNumber),
		TINNumber:           nullable.From(e.GovernmentIDs.TINNumber),
		PhilHealthNumber:    nullable.From(e.GovernmentIDs.PhilHealthNumber),
		HDMFNumber:          nullable.From(e.GovernmentIDs.HDMFNumber),
		School:              nullable.From(e.Education.School),
		Course:              nullable.From(e.Education.Course),
		YearAttendedFrom:    nullable.From(e.Education.YearAttendedFrom),
		YearAttendedTo:      nullable.From(e.Education.YearAttendedTo),
		EmergencyContact: EmergencyContactPatch{
			Name:     nullable.From(e.EmergencyContact.Name),
			Relation: nullable.From(e.EmergencyContact.Relation),
			Phone:    nullable.From(e.EmergencyContact.Phone),
			Address:  nullable.From(e.EmergencyContact.Address),
			Email:    nullable.From(e.EmergencyContact.Email),
		},
	}
	for i, p := range e.PriorEmployers {
		req.PriorEmployers[i] = PriorEmployerPatch{
			CompanyName:       nullable.From(p.CompanyName),
			CompanyAddress:    nullable.From(p.CompanyAddress),
			ContactNumber:     nullable.From(p.ContactNumber),
			Position:          nullable.From(p.Position),
			EmploymentFrom:    nullable.From(validator.OptionalString(d.PriorEmployers[i].EmploymentFrom)),
			EmploymentTo:      nullable.From(validator.OptionalString(d.PriorEmployers[i].EmploymentTo)),
			SupervisorName:    nullable.From(p.SupervisorName),
			SupervisorContact: nullable.From(p.SupervisorContact),
			ReasonLeaving:     nullable.From(p.ReasonLeaving),
		}
	}
	return req
}
