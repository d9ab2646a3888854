package report

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/settings"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/currency"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	attendanceRepo  attendance.AttendanceRepository
	payrollRepo     payroll.PayrollRepository
	settingsService settings.SettingsService
	now             func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	payrollRepo payroll.PayrollRepository,
	settingsService settings.SettingsService,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:    employeeRepo,
		attendanceRepo:  attendanceRepo,
		payrollRepo:     payrollRepo,
		settingsService: settingsService,
		now:             time.Now,
	}
}

// GetReport implements report.ReportService.
func (s *ReportServiceImpl) GetReport(ctx context.Context, req report.ReportRequest) (report.Report, error) {
	if err := req.Validate(); err != nil {
		return report.Report{}, err
	}

	start, end := req.Period(s.now())
	from, to := start.Format(validator.DateLayout), end.Format(validator.DateLayout)

	var (
		employees []employee.Employee
		records   []attendance.Attendance
		payrolls  []payroll.PayrollRecord
		company   settings.CompanySettings
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.List(gCtx, attendance.ListFilter{From: from, To: to})
		return err
	})
	g.Go(func() error {
		var err error
		payrolls, err = s.payrollRepo.List(gCtx, payroll.PayrollFilter{From: from, To: to})
		return err
	})
	g.Go(func() error {
		var err error
		company, err = s.settingsService.GetSettings(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return report.Report{}, err
	}

	byID := make(map[string]employee.Employee, len(employees))
	included := make([]employee.Employee, 0, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
		if req.IncludesDepartment(e.Department) {
			included = append(included, e)
		}
	}
	departmentOf := func(id string) string {
		return byID[id].Department
	}

	records = filterBy(records, func(a attendance.Attendance) bool { return req.IncludesDepartment(departmentOf(a.EmployeeID)) })
	payrolls = filterBy(payrolls, func(p payroll.PayrollRecord) bool { return req.IncludesDepartment(departmentOf(p.EmployeeID)) })

	money := currency.NewFormatter(company.Currency)
	expenses := payroll.Rollup(payrolls)

	return report.Report{
		Month:           start.Format("2006-01"),
		Department:      req.Department,
		Currency:        money.Code(),
		GeneratedAt:     s.now().Format(time.RFC3339),
		Attendance:      attendance.Summarize(records),
		AttendanceRate:  attendance.AttendanceRate(records),
		Expenses:        expenses,
		MonthlyExpenses: payroll.RollupByMonth(payrolls),
		Departments:     payroll.DepartmentTotals(payrolls, departmentOf),
		EmployeeCosts:   employeeCosts(included, payrolls, money),
		Formatted: report.FormattedTotals{
			Salaries: money.Format(expenses.Salaries),
			Benefits: money.Format(expenses.Benefits),
			Overtime: money.Format(expenses.Overtime),
			Total:    money.Format(expenses.Total),
		},
	}, nil
}

func filterBy[T any](items []T, keep func(T) bool) []T {
	out := items[:0:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// employeeCosts builds one row per employee. Salary and benefits come from
// the period's payroll records; an employee without any falls back to the
// salary on file.
func employeeCosts(employees []employee.Employee, records []payroll.PayrollRecord, money currency.Formatter) []report.EmployeeCost {
	type sums struct {
		salary, benefits, overtime decimal.Decimal
		paid                       bool
	}
	byEmployee := make(map[string]*sums)
	for _, r := range records {
		s, ok := byEmployee[r.EmployeeID]
		if !ok {
			s = &sums{}
			byEmployee[r.EmployeeID] = s
		}
		s.salary = s.salary.Add(r.BasicSalary)
		s.benefits = s.benefits.Add(r.Allowances)
		s.overtime = s.overtime.Add(r.OvertimePay)
		s.paid = true
	}

	out := make([]report.EmployeeCost, 0, len(employees))
	for _, e := range employees {
		row := report.EmployeeCost{
			EmployeeID: e.ID,
			Name:       e.FullName(),
			Department: e.Department,
			Position:   e.Position,
		}
		if s, ok := byEmployee[e.ID]; ok && s.paid {
			row.Salary, row.Benefits, row.Overtime = s.salary, s.benefits, s.overtime
		} else if e.Salary != nil {
			row.Salary = *e.Salary
		}
		row.TotalCost = payroll.EmployeeCost(row.Salary, row.Benefits)
		row.Display = money.Format(row.TotalCost)
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].TotalCost.Cmp(out[j].TotalCost); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}
