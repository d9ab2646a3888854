package payroll

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ExpenseRollup sums the employer-side cost of payroll records.
type ExpenseRollup struct {
	Records  int             `json:"records"`
	Salaries decimal.Decimal `json:"salaries"`
	Benefits decimal.Decimal `json:"benefits"`
	Overtime decimal.Decimal `json:"overtime"`
	Total    decimal.Decimal `json:"total"`
	NetPay   decimal.Decimal `json:"net_pay"`
}

func (e *ExpenseRollup) add(r PayrollRecord) {
	e.Records++
	e.Salaries = e.Salaries.Add(r.BasicSalary)
	e.Benefits = e.Benefits.Add(r.Allowances)
	e.Overtime = e.Overtime.Add(r.OvertimePay)
	e.Total = e.Total.Add(r.GrossPay())
	e.NetPay = e.NetPay.Add(r.NetPay)
}

type MonthlyExpense struct {
	Month string `json:"month"` // YYYY-MM of the pay period start
	ExpenseRollup
}

type DepartmentTotal struct {
	Department string          `json:"department"`
	Employees  int             `json:"employees"`
	Total      decimal.Decimal `json:"total"`
	Share      float64         `json:"share"`
}

// NetPay is basic + allowances + overtime less deductions, statutory
// contributions and tax.
func NetPay(basic, allowances, overtime, deductions, sss, philhealth, pagibig, tax decimal.Decimal) decimal.Decimal {
	return basic.Add(allowances).Add(overtime).
		Sub(deductions).Sub(sss).Sub(philhealth).Sub(pagibig).Sub(tax)
}

// EmployeeCost is the derived per-employee cost: salary plus benefits.
func EmployeeCost(salary, benefits decimal.Decimal) decimal.Decimal {
	return salary.Add(benefits)
}

// Rollup totals basic salary, benefits and overtime across records.
func Rollup(records []PayrollRecord) ExpenseRollup {
	var out ExpenseRollup
	for _, r := range records {
		out.add(r)
	}
	return out
}

// RollupByMonth groups records by the month their pay period starts in,
// oldest month first.
func RollupByMonth(records []PayrollRecord) []MonthlyExpense {
	byMonth := make(map[string]*MonthlyExpense)
	for _, r := range records {
		key := r.PayPeriodStart.Format("2006-01")
		m, ok := byMonth[key]
		if !ok {
			m = &MonthlyExpense{Month: key}
			byMonth[key] = m
		}
		m.add(r)
	}

	out := make([]MonthlyExpense, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// UnassignedDepartment labels records whose employee has no department.
const UnassignedDepartment = "Unassigned"

// DepartmentTotals groups gross payroll cost by the department departmentOf
// reports for each record's employee. Results are ordered by total, largest
// first, and Share is the department's percentage of the grand total.
func DepartmentTotals(records []PayrollRecord, departmentOf func(employeeID string) string) []DepartmentTotal {
	type acc struct {
		total     decimal.Decimal
		employees map[string]struct{}
	}
	groups := make(map[string]*acc)
	grand := decimal.Zero

	for _, r := range records {
		dept := departmentOf(r.EmployeeID)
		if dept == "" {
			dept = UnassignedDepartment
		}
		g, ok := groups[dept]
		if !ok {
			g = &acc{employees: make(map[string]struct{})}
			groups[dept] = g
		}
		gross := r.GrossPay()
		g.total = g.total.Add(gross)
		g.employees[r.EmployeeID] = struct{}{}
		grand = grand.Add(gross)
	}

	hundred := decimal.NewFromInt(100)
	out := make([]DepartmentTotal, 0, len(groups))
	for dept, g := range groups {
		share := 0.0
		if grand.IsPositive() {
			share = g.total.Mul(hundred).Div(grand).Round(1).InexactFloat64()
		}
		out = append(out, DepartmentTotal{
			Department: dept,
			Employees:  len(g.employees),
			Total:      g.total,
			Share:      share,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Department < out[j].Department
	})
	return out
}
