package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

var priorEmployerFields = []string{
	"company_name", "company_address", "contact_number", "position",
	"employment_from", "employment_to", "supervisor_name", "supervisor_contact", "reason_leaving",
}

func priorEmployerColumn(slot int, field string) string {
	return fmt.Sprintf("employer_%d_%s", slot+1, field)
}

// employeeWritableColumns lists every column an insert sets, in the order
// employeeValues returns them.
var employeeWritableColumns = func() []string {
	cols := []string{
		"profile_id", "employee_number", "first_name", "last_name", "email", "contact_number",
		"home_address", "date_of_birth", "department", "position", "salary", "hire_date", "status",
		"immediate_supervisor", "employment_details",
		"sss_number", "tin_number", "philhealth_number", "hdmf_number",
		"school", "course", "year_attended_from", "year_attended_to",
	}
	for slot := 0; slot < employee.PriorEmployerSlots; slot++ {
		for _, f := range priorEmployerFields {
			cols = append(cols, priorEmployerColumn(slot, f))
		}
	}
	return append(cols,
		"emergency_contact_name", "emergency_contact_relation", "emergency_contact_phone",
		"emergency_contact_address", "emergency_contact_email",
	)
}()

var employeeColumns = "id, " + strings.Join(employeeWritableColumns, ", ") + ", created_at, updated_at"

func employeeValues(e *employee.Employee) []interface{} {
	values := []interface{}{
		e.ProfileID, e.EmployeeNumber, e.FirstName, e.LastName, e.Email, e.ContactNumber,
		e.HomeAddress, e.DateOfBirth, e.Department, e.Position, e.Salary, e.HireDate, e.Status,
		e.ImmediateSupervisor, e.EmploymentDetails,
		e.GovernmentIDs.SSSNumber, e.GovernmentIDs.TINNumber, e.GovernmentIDs.PhilHealthNumber, e.GovernmentIDs.HDMFNumber,
		e.Education.School, e.Education.Course, e.Education.YearAttendedFrom, e.Education.YearAttendedTo,
	}
	for i := range e.PriorEmployers {
		p := &e.PriorEmployers[i]
		values = append(values,
			p.CompanyName, p.CompanyAddress, p.ContactNumber, p.Position,
			p.EmploymentFrom, p.EmploymentTo, p.SupervisorName, p.SupervisorContact, p.ReasonLeaving,
		)
	}
	c := &e.EmergencyContact
	return append(values, c.Name, c.Relation, c.Phone, c.Address, c.Email)
}

// employeeDest returns scan targets matching employeeColumns.
func employeeDest(e *employee.Employee) []interface{} {
	dest := []interface{}{&e.ID}
	dest = append(dest,
		&e.ProfileID, &e.EmployeeNumber, &e.FirstName, &e.LastName, &e.Email, &e.ContactNumber,
		&e.HomeAddress, &e.DateOfBirth, &e.Department, &e.Position, &e.Salary, &e.HireDate, &e.Status,
		&e.ImmediateSupervisor, &e.EmploymentDetails,
		&e.GovernmentIDs.SSSNumber, &e.GovernmentIDs.TINNumber, &e.GovernmentIDs.PhilHealthNumber, &e.GovernmentIDs.HDMFNumber,
		&e.Education.School, &e.Education.Course, &e.Education.YearAttendedFrom, &e.Education.YearAttendedTo,
	)
	for i := range e.PriorEmployers {
		p := &e.PriorEmployers[i]
		dest = append(dest,
			&p.CompanyName, &p.CompanyAddress, &p.ContactNumber, &p.Position,
			&p.EmploymentFrom, &p.EmploymentTo, &p.SupervisorName, &p.SupervisorContact, &p.ReasonLeaving,
		)
	}
	c := &e.EmergencyContact
	return append(dest, &c.Name, &c.Relation, &c.Phone, &c.Address, &c.Email, &e.CreatedAt, &e.UpdatedAt)
}

func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := "SELECT " + employeeColumns + " FROM employees ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, apperror.Store("employee.list", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(employeeDest(&emp)...); err != nil {
			return nil, apperror.Store("employee.list", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Store("employee.list", err)
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := "SELECT " + employeeColumns + " FROM employees WHERE id = $1"

	var emp employee.Employee
	if err := q.QueryRow(ctx, query, id).Scan(employeeDest(&emp)...); err != nil {
		return employee.Employee{}, rowError(err, employee.ErrEmployeeNotFound, "employee.get")
	}

	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf("INSERT INTO employees (%s) VALUES (%s) RETURNING %s",
		strings.Join(employeeWritableColumns, ", "),
		placeholders(len(employeeWritableColumns)),
		employeeColumns,
	)

	var created employee.Employee
	if err := q.QueryRow(ctx, query, employeeValues(&newEmployee)...).Scan(employeeDest(&created)...); err != nil {
		return employee.Employee{}, apperror.Store("employee.create", err)
	}

	return created, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	p := newPatch()
	setString(p, "employee_number", req.EmployeeNumber)
	setRequiredString(p, "first_name", req.FirstName)
	setRequiredString(p, "last_name", req.LastName)
	setRequiredString(p, "email", req.Email)
	setString(p, "contact_number", req.ContactNumber)
	setString(p, "home_address", req.HomeAddress)
	setDate(p, "date_of_birth", req.DateOfBirth)
	setRequiredString(p, "department", req.Department)
	setRequiredString(p, "position", req.Position)
	setField(p, "salary", req.Salary)
	if req.HireDate.Value != nil {
		if hired, ok := validatedDate(*req.HireDate.Value); ok {
			p.add("hire_date", hired)
		}
	}
	setRequiredString(p, "status", req.Status)
	setString(p, "immediate_supervisor", req.ImmediateSupervisor)
	setString(p, "employment_details", req.EmploymentDetails)
	setString(p, "sss_number", req.SSSNumber)
	setString(p, "tin_number", req.TINNumber)
	setString(p, "philhealth_number", req.PhilHealthNumber)
	setString(p, "hdmf_number", req.HDMFNumber)
	setString(p, "school", req.School)
	setString(p, "course", req.Course)
	setField(p, "year_attended_from", req.YearAttendedFrom)
	setField(p, "year_attended_to", req.YearAttendedTo)
	for slot, pe := range req.PriorEmployers {
		setString(p, priorEmployerColumn(slot, "company_name"), pe.CompanyName)
		setString(p, priorEmployerColumn(slot, "company_address"), pe.CompanyAddress)
		setString(p, priorEmployerColumn(slot, "contact_number"), pe.ContactNumber)
		setString(p, priorEmployerColumn(slot, "position"), pe.Position)
		setDate(p, priorEmployerColumn(slot, "employment_from"), pe.EmploymentFrom)
		setDate(p, priorEmployerColumn(slot, "employment_to"), pe.EmploymentTo)
		setString(p, priorEmployerColumn(slot, "supervisor_name"), pe.SupervisorName)
		setString(p, priorEmployerColumn(slot, "supervisor_contact"), pe.SupervisorContact)
		setString(p, priorEmployerColumn(slot, "reason_leaving"), pe.ReasonLeaving)
	}
	setString(p, "emergency_contact_name", req.EmergencyContact.Name)
	setString(p, "emergency_contact_relation", req.EmergencyContact.Relation)
	setString(p, "emergency_contact_phone", req.EmergencyContact.Phone)
	setString(p, "emergency_contact_address", req.EmergencyContact.Address)
	setString(p, "emergency_contact_email", req.EmergencyContact.Email)

	query, args := p.update("employees", id, employeeColumns)

	var updated employee.Employee
	if err := q.QueryRow(ctx, query, args...).Scan(employeeDest(&updated)...); err != nil {
		return employee.Employee{}, rowError(err, employee.ErrEmployeeNotFound, "employee.update")
	}

	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return execError(err, employee.ErrEmployeeNotFound, "employee.delete")
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
