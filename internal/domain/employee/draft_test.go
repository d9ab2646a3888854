package employee

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	d := NewDraft()
	d.FirstName = "Ana"
	d.LastName = "Cruz"
	d.Email = "ana@x.com"
	d.Department = "Engineering"
	d.Position = "QA"
	d.HireDate = "2024-01-10"
	return d
}

func TestDraft_Validate_RequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(d *Draft)
		field string
	}{
		{"missing first name", func(d *Draft) { d.FirstName = "" }, "first_name"},
		{"missing last name", func(d *Draft) { d.LastName = " " }, "last_name"},
		{"missing email", func(d *Draft) { d.Email = "" }, "email"},
		{"missing department", func(d *Draft) { d.Department = "" }, "department"},
		{"missing position", func(d *Draft) { d.Position = "" }, "position"},
		{"missing hire date", func(d *Draft) { d.HireDate = "" }, "hire_date"},
		{"malformed email", func(d *Draft) { d.Email = "ana@" }, "email"},
		{"malformed hire date", func(d *Draft) { d.HireDate = "01/10/2024" }, "hire_date"},
		{"unknown status", func(d *Draft) { d.Status = "retired" }, "status"},
		{"negative salary", func(d *Draft) { d.Salary = "-1" }, "salary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.edit(&d)

			err := d.Validate()
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.field)
		})
	}
}

func TestDraft_Validate_Valid(t *testing.T) {
	assert.NoError(t, validDraft().Validate())
}

func TestDraft_ToEmployee_EmptySalaryIsUnset(t *testing.T) {
	for _, input := range []string{"", "  ", "n/a"} {
		d := validDraft()
		d.Salary = form.Number(input)

		require.NoError(t, d.Validate())
		e := d.ToEmployee()
		assert.Nil(t, e.Salary, "salary %q should be unset, not zero", input)
	}
}

func TestDraft_ToEmployee(t *testing.T) {
	d := validDraft()
	d.Salary = "75000"
	d.YearAttendedFrom = "2015"
	d.PriorEmployers[1].CompanyName = "Acme"
	d.PriorEmployers[1].EmploymentFrom = "2020-01-01"

	e := d.ToEmployee()

	assert.Equal(t, "Ana", e.FirstName)
	assert.Equal(t, "Cruz", e.LastName)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), e.HireDate)
	assert.Equal(t, StatusActive, e.Status)
	require.NotNil(t, e.Salary)
	assert.True(t, e.Salary.Equal(decimal.NewFromInt(75000)))
	assert.Equal(t, 2015, *e.Education.YearAttendedFrom)
	assert.Nil(t, e.Education.YearAttendedTo)
	assert.True(t, e.PriorEmployers[0].IsEmpty())
	assert.Equal(t, "Acme", *e.PriorEmployers[1].CompanyName)
	assert.Nil(t, e.ContactNumber)
}

func TestDraftFromEmployee_RoundTrip(t *testing.T) {
	d := validDraft()
	d.Salary = "1200.5"
	d.EmergencyContact.Name = "Ben Cruz"

	back := DraftFromEmployee(d.ToEmployee())

	assert.Equal(t, d.FirstName, back.FirstName)
	assert.Equal(t, d.HireDate, back.HireDate)
	assert.Equal(t, form.Number("1200.5"), back.Salary)
	assert.Equal(t, "Ben Cruz", back.EmergencyContact.Name)
}

func TestDraft_ToUpdate_ClearsBlankOptionals(t *testing.T) {
	d := validDraft()
	req := d.ToUpdate()

	assert.True(t, req.Salary.Set)
	assert.True(t, req.Salary.IsNull())
	assert.True(t, req.ContactNumber.IsNull())
	require.NotNil(t, req.FirstName.Value)
	assert.Equal(t, "Ana", *req.FirstName.Value)
	assert.Equal(t, "2024-01-10", *req.HireDate.Value)
	assert.NoError(t, req.Validate())
}
