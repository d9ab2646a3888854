package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusDraft     PayrollStatus = "draft"
	PayrollStatusProcessed PayrollStatus = "processed"
	PayrollStatusPaid      PayrollStatus = "paid"
)

func (s PayrollStatus) IsValid() bool {
	switch s {
	case PayrollStatusDraft, PayrollStatusProcessed, PayrollStatusPaid:
		return true
	}
	return false
}

// PayrollRecord is one employee's pay for one period. Allowances are the
// employee benefits component used by expense reports.
type PayrollRecord struct {
	ID                     string          `json:"id"`
	EmployeeID             string          `json:"employee_id"`
	PayPeriodStart         time.Time       `json:"pay_period_start"`
	PayPeriodEnd           time.Time       `json:"pay_period_end"`
	BasicSalary            decimal.Decimal `json:"basic_salary"`
	Allowances             decimal.Decimal `json:"allowances"`
	OvertimePay            decimal.Decimal `json:"overtime_pay"`
	Deductions             decimal.Decimal `json:"deductions"`
	SSSContribution        decimal.Decimal `json:"sss_contribution"`
	PhilHealthContribution decimal.Decimal `json:"philhealth_contribution"`
	PagIBIGContribution    decimal.Decimal `json:"pagibig_contribution"`
	TaxWithheld            decimal.Decimal `json:"tax_withheld"`
	NetPay                 decimal.Decimal `json:"net_pay"`
	Status                 PayrollStatus   `json:"status"`
	ProcessedAt            *time.Time      `json:"processed_at"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// GrossPay is basic salary plus allowances and overtime.
func (r PayrollRecord) GrossPay() decimal.Decimal {
	return r.BasicSalary.Add(r.Allowances).Add(r.OvertimePay)
}

// TotalDeductions sums other deductions, statutory contributions and tax.
func (r PayrollRecord) TotalDeductions() decimal.Decimal {
	return r.Deductions.
		Add(r.SSSContribution).
		Add(r.PhilHealthContribution).
		Add(r.PagIBIGContribution).
		Add(r.TaxWithheld)
}

// ComputeNetPay is gross pay less total deductions.
func (r PayrollRecord) ComputeNetPay() decimal.Decimal {
	return NetPay(r.BasicSalary, r.Allowances, r.OvertimePay,
		r.Deductions, r.SSSContribution, r.PhilHealthContribution, r.PagIBIGContribution, r.TaxWithheld)
}
