package report

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const monthLayout = "2006-01"

// ReportRequest selects the reporting month and an optional department.
type ReportRequest struct {
	Month      string `json:"month"` // Format: "YYYY-MM", defaults to the current month
	Department string `json:"department"`
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month != "" {
		if _, err := time.Parse(monthLayout, r.Month); err != nil {
			errs.Add("month", "month must be in YYYY-MM format")
		}
	}

	return errs.Err()
}

// Period returns the first and last day of the selected month.
func (r *ReportRequest) Period(now time.Time) (time.Time, time.Time) {
	start, err := time.Parse(monthLayout, r.Month)
	if err != nil {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return start, start.AddDate(0, 1, -1)
}

// IncludesDepartment reports whether dept passes the department filter.
func (r *ReportRequest) IncludesDepartment(dept string) bool {
	return r.Department == "" || strings.EqualFold(r.Department, "all") || r.Department == dept
}

type Report struct {
	Month       string `json:"month"`
	Department  string `json:"department,omitempty"`
	Currency    string `json:"currency"`
	GeneratedAt string `json:"generated_at"`

	Attendance     attendance.Summary `json:"attendance"`
	AttendanceRate float64            `json:"attendance_rate"`

	Expenses        payroll.ExpenseRollup     `json:"expenses"`
	MonthlyExpenses []payroll.MonthlyExpense  `json:"monthly_expenses"`
	Departments     []payroll.DepartmentTotal `json:"departments"`
	EmployeeCosts   []EmployeeCost            `json:"employee_costs"`
	Formatted       FormattedTotals           `json:"formatted"`
}

// EmployeeCost is one row of the employee cost analysis. TotalCost is
// salary plus benefits; overtime is reported alongside but not included.
type EmployeeCost struct {
	EmployeeID string          `json:"employee_id"`
	Name       string          `json:"name"`
	Department string          `json:"department"`
	Position   string          `json:"position"`
	Salary     decimal.Decimal `json:"salary"`
	Benefits   decimal.Decimal `json:"benefits"`
	Overtime   decimal.Decimal `json:"overtime"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	Display    string          `json:"display"`
}

// FormattedTotals are the expense totals rendered in the company currency.
type FormattedTotals struct {
	Salaries string `json:"salaries"`
	Benefits string `json:"benefits"`
	Overtime string `json:"overtime"`
	Total    string `json:"total"`
}
