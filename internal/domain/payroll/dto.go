package payroll

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/nullable"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Draft is the payroll form state. Amount inputs are lenient: blank or
// unparseable text counts as zero.
type Draft struct {
	EmployeeID             string      `json:"employee_id"`
	PayPeriodStart         string      `json:"pay_period_start"`
	PayPeriodEnd           string      `json:"pay_period_end"`
	BasicSalary            form.Number `json:"basic_salary"`
	Allowances             form.Number `json:"allowances"`
	OvertimePay            form.Number `json:"overtime_pay"`
	Deductions             form.Number `json:"deductions"`
	SSSContribution        form.Number `json:"sss_contribution"`
	PhilHealthContribution form.Number `json:"philhealth_contribution"`
	PagIBIGContribution    form.Number `json:"pagibig_contribution"`
	TaxWithheld            form.Number `json:"tax_withheld"`
	Status                 string      `json:"status"`
}

func NewDraft() Draft {
	return Draft{Status: string(PayrollStatusDraft)}
}

func DraftFromPayrollRecord(r PayrollRecord) Draft {
	return Draft{
		EmployeeID:             r.EmployeeID,
		PayPeriodStart:         r.PayPeriodStart.Format(validator.DateLayout),
		PayPeriodEnd:           r.PayPeriodEnd.Format(validator.DateLayout),
		BasicSalary:            form.Number(r.BasicSalary.String()),
		Allowances:             form.Number(r.Allowances.String()),
		OvertimePay:            form.Number(r.OvertimePay.String()),
		Deductions:             form.Number(r.Deductions.String()),
		SSSContribution:        form.Number(r.SSSContribution.String()),
		PhilHealthContribution: form.Number(r.PhilHealthContribution.String()),
		PagIBIGContribution:    form.Number(r.PagIBIGContribution.String()),
		TaxWithheld:            form.Number(r.TaxWithheld.String()),
		Status:                 string(r.Status),
	}
}

func (d Draft) amounts() map[string]form.Number {
	return map[string]form.Number{
		"basic_salary":            d.BasicSalary,
		"allowances":              d.Allowances,
		"overtime_pay":            d.OvertimePay,
		"deductions":              d.Deductions,
		"sss_contribution":        d.SSSContribution,
		"philhealth_contribution": d.PhilHealthContribution,
		"pagibig_contribution":    d.PagIBIGContribution,
		"tax_withheld":            d.TaxWithheld,
	}
}

func (d Draft) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("employee_id", d.EmployeeID)
	errs.Required("pay_period_start", d.PayPeriodStart)
	errs.Required("pay_period_end", d.PayPeriodEnd)

	if !validator.IsEmpty(d.EmployeeID) && !validator.IsValidUUID(strings.TrimSpace(d.EmployeeID)) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}

	start, okStart := validator.IsValidDate(strings.TrimSpace(d.PayPeriodStart))
	end, okEnd := validator.IsValidDate(strings.TrimSpace(d.PayPeriodEnd))
	if !validator.IsEmpty(d.PayPeriodStart) && !okStart {
		errs.Add("pay_period_start", "pay_period_start must be in YYYY-MM-DD format")
	}
	if !validator.IsEmpty(d.PayPeriodEnd) && !okEnd {
		errs.Add("pay_period_end", "pay_period_end must be in YYYY-MM-DD format")
	}
	if okStart && okEnd && end.Before(start) {
		errs.Add("pay_period_end", ErrInvalidPeriod.Error())
	}

	for field, n := range d.amounts() {
		if v := validator.ParseAmount(n.String()); v != nil && v.IsNegative() {
			errs.Add(field, ErrNegativeAmount.Error())
		}
	}
	if d.Status != "" && !PayrollStatus(d.Status).IsValid() {
		errs.Add("status", ErrInvalidStatus.Error())
	}

	return errs.Err()
}

func amountOrZero(n form.Number) decimal.Decimal {
	if v := validator.ParseAmount(n.String()); v != nil {
		return *v
	}
	return decimal.Zero
}

// ToPayrollRecord converts a validated draft. Net pay is always derived.
func (d Draft) ToPayrollRecord() PayrollRecord {
	start, _ := validator.IsValidDate(strings.TrimSpace(d.PayPeriodStart))
	end, _ := validator.IsValidDate(strings.TrimSpace(d.PayPeriodEnd))

	status := PayrollStatus(d.Status)
	if status == "" {
		status = PayrollStatusDraft
	}

	r := PayrollRecord{
		EmployeeID:             strings.TrimSpace(d.EmployeeID),
		PayPeriodStart:         start,
		PayPeriodEnd:           end,
		BasicSalary:            amountOrZero(d.BasicSalary),
		Allowances:             amountOrZero(d.Allowances),
		OvertimePay:            amountOrZero(d.OvertimePay),
		Deductions:             amountOrZero(d.Deductions),
		SSSContribution:        amountOrZero(d.SSSContribution),
		PhilHealthContribution: amountOrZero(d.PhilHealthContribution),
		PagIBIGContribution:    amountOrZero(d.PagIBIGContribution),
		TaxWithheld:            amountOrZero(d.TaxWithheld),
		Status:                 status,
	}
	r.NetPay = r.ComputeNetPay()
	if status != PayrollStatusDraft {
		now := time.Now()
		r.ProcessedAt = &now
	}
	return r
}

// ToUpdate converts a validated draft into a full patch of every column.
func (d Draft) ToUpdate() UpdatePayrollRecordRequest {
	r := d.ToPayrollRecord()
	return UpdatePayrollRecordRequest{
		PayPeriodStart:         nullable.Of(strings.TrimSpace(d.PayPeriodStart)),
		PayPeriodEnd:           nullable.Of(strings.TrimSpace(d.PayPeriodEnd)),
		BasicSalary:            nullable.Of(r.BasicSalary),
		Allowances:             nullable.Of(r.Allowances),
		OvertimePay:            nullable.Of(r.OvertimePay),
		Deductions:             nullable.Of(r.Deductions),
		SSSContribution:        nullable.Of(r.SSSContribution),
		PhilHealthContribution: nullable.Of(r.PhilHealthContribution),
		PagIBIGContribution:    nullable.Of(r.PagIBIGContribution),
		TaxWithheld:            nullable.Of(r.TaxWithheld),
		Status:                 nullable.Of(string(r.Status)),
	}
}

// UpdatePayrollRecordRequest is a partial update. NetPay and ProcessedAt are
// filled in by the service from the merged record.
type UpdatePayrollRecordRequest struct {
	PayPeriodStart         nullable.Field[string]          `json:"pay_period_start"`
	PayPeriodEnd           nullable.Field[string]          `json:"pay_period_end"`
	BasicSalary            nullable.Field[decimal.Decimal] `json:"basic_salary"`
	Allowances             nullable.Field[decimal.Decimal] `json:"allowances"`
	OvertimePay            nullable.Field[decimal.Decimal] `json:"overtime_pay"`
	Deductions             nullable.Field[decimal.Decimal] `json:"deductions"`
	SSSContribution        nullable.Field[decimal.Decimal] `json:"sss_contribution"`
	PhilHealthContribution nullable.Field[decimal.Decimal] `json:"philhealth_contribution"`
	PagIBIGContribution    nullable.Field[decimal.Decimal] `json:"pagibig_contribution"`
	TaxWithheld            nullable.Field[decimal.Decimal] `json:"tax_withheld"`
	Status                 nullable.Field[string]          `json:"status"`
	NetPay                 nullable.Field[decimal.Decimal] `json:"-"`
	ProcessedAt            nullable.Field[time.Time]       `json:"-"`
}

func (r UpdatePayrollRecordRequest) amounts() map[string]nullable.Field[decimal.Decimal] {
	return map[string]nullable.Field[decimal.Decimal]{
		"basic_salary":            r.BasicSalary,
		"allowances":              r.Allowances,
		"overtime_pay":            r.OvertimePay,
		"deductions":              r.Deductions,
		"sss_contribution":        r.SSSContribution,
		"philhealth_contribution": r.PhilHealthContribution,
		"pagibig_contribution":    r.PagIBIGContribution,
		"tax_withheld":            r.TaxWithheld,
	}
}

func (r UpdatePayrollRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, f := range map[string]nullable.Field[string]{
		"pay_period_start": r.PayPeriodStart,
		"pay_period_end":   r.PayPeriodEnd,
	} {
		if !f.Set {
			continue
		}
		if f.Value == nil {
			errs.Add(field, field+" is required")
			continue
		}
		if _, ok := validator.IsValidDate(*f.Value); !ok {
			errs.Add(field, field+" must be in YYYY-MM-DD format")
		}
	}
	for field, f := range r.amounts() {
		if f.Value != nil && f.Value.IsNegative() {
			errs.Add(field, ErrNegativeAmount.Error())
		}
	}
	if r.Status.Set && (r.Status.Value == nil || !PayrollStatus(*r.Status.Value).IsValid()) {
		errs.Add("status", ErrInvalidStatus.Error())
	}

	return errs.Err()
}

// Apply returns rec with the patch applied. A null amount clears to zero.
func (r UpdatePayrollRecordRequest) Apply(rec PayrollRecord) PayrollRecord {
	if r.PayPeriodStart.Value != nil {
		if t, ok := validator.IsValidDate(*r.PayPeriodStart.Value); ok {
			rec.PayPeriodStart = t
		}
	}
	if r.PayPeriodEnd.Value != nil {
		if t, ok := validator.IsValidDate(*r.PayPeriodEnd.Value); ok {
			rec.PayPeriodEnd = t
		}
	}
	apply := func(dst *decimal.Decimal, f nullable.Field[decimal.Decimal]) {
		if !f.Set {
			return
		}
		if f.Value == nil {
			*dst = decimal.Zero
			return
		}
		*dst = *f.Value
	}
	apply(&rec.BasicSalary, r.BasicSalary)
	apply(&rec.Allowances, r.Allowances)
	apply(&rec.OvertimePay, r.OvertimePay)
	apply(&rec.Deductions, r.Deductions)
	apply(&rec.SSSContribution, r.SSSContribution)
	apply(&rec.PhilHealthContribution, r.PhilHealthContribution)
	apply(&rec.PagIBIGContribution, r.PagIBIGContribution)
	apply(&rec.TaxWithheld, r.TaxWithheld)
	if r.Status.Value != nil {
		rec.Status = PayrollStatus(*r.Status.Value)
	}
	return rec
}

// PayrollFilter narrows records by employee, status and a pay period window.
type PayrollFilter struct {
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
	From       string `json:"from"`
	To         string `json:"to"`
}

func (f PayrollFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.EmployeeID != "" && !validator.IsValidUUID(f.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	if f.Status != "" && !PayrollStatus(f.Status).IsValid() {
		errs.Add("status", ErrInvalidStatus.Error())
	}
	for field, v := range map[string]string{"from": f.From, "to": f.To} {
		if v == "" {
			continue
		}
		if _, ok := validator.IsValidDate(v); !ok {
			errs.Add(field, field+" must be in YYYY-MM-DD format")
		}
	}
	return errs.Err()
}

const NoMatchMessage = "No payroll records match the current filters"

type ListResponse struct {
	Records []PayrollRecord `json:"records"`
	Totals  ExpenseRollup   `json:"totals"`
	Empty   bool            `json:"empty"`
	Message string          `json:"message,omitempty"`
}
