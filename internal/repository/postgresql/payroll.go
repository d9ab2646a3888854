package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/nullable"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `id, employee_id, pay_period_start, pay_period_end,
	basic_salary, allowances, overtime_pay, deductions,
	sss_contribution, philhealth_contribution, pagibig_contribution, tax_withheld,
	net_pay, status, processed_at, created_at, updated_at`

func payrollDest(r *payroll.PayrollRecord) []interface{} {
	return []interface{}{
		&r.ID, &r.EmployeeID, &r.PayPeriodStart, &r.PayPeriodEnd,
		&r.BasicSalary, &r.Allowances, &r.OvertimePay, &r.Deductions,
		&r.SSSContribution, &r.PhilHealthContribution, &r.PagIBIGContribution, &r.TaxWithheld,
		&r.NetPay, &r.Status, &r.ProcessedAt, &r.CreatedAt, &r.UpdatedAt,
	}
}

// setAmount writes a NOT NULL money column; an explicit null stores zero.
func setAmount(p *patch, column string, f nullable.Field[decimal.Decimal]) {
	if !f.Set {
		return
	}
	amount := decimal.Zero
	if f.Value != nil {
		amount = *f.Value
	}
	p.add(column, amount)
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if d, ok := validator.IsValidDate(filter.From); ok {
		conditions = append(conditions, fmt.Sprintf("pay_period_start >= $%d", argIdx))
		args = append(args, d)
		argIdx++
	}
	if d, ok := validator.IsValidDate(filter.To); ok {
		conditions = append(conditions, fmt.Sprintf("pay_period_end <= $%d", argIdx))
		args = append(args, d)
	}

	query := "SELECT " + payrollColumns + " FROM payroll"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.Store("payroll.list", err)
	}
	defer rows.Close()

	records := make([]payroll.PayrollRecord, 0)
	for rows.Next() {
		var rec payroll.PayrollRecord
		if err := rows.Scan(payrollDest(&rec)...); err != nil {
			return nil, apperror.Store("payroll.list", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Store("payroll.list", err)
	}

	return records, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, "SELECT "+payrollColumns+" FROM payroll WHERE id = $1"+forUpdate(ctx), id).Scan(payrollDest(&rec)...)
	if err != nil {
		return payroll.PayrollRecord{}, rowError(err, payroll.ErrPayrollRecordNotFound, "payroll.get")
	}
	return rec, nil
}

func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll (
			employee_id, pay_period_start, pay_period_end,
			basic_salary, allowances, overtime_pay, deductions,
			sss_contribution, philhealth_contribution, pagibig_contribution, tax_withheld,
			net_pay, status, processed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + payrollColumns

	var created payroll.PayrollRecord
	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.PayPeriodStart, record.PayPeriodEnd,
		record.BasicSalary, record.Allowances, record.OvertimePay, record.Deductions,
		record.SSSContribution, record.PhilHealthContribution, record.PagIBIGContribution, record.TaxWithheld,
		record.NetPay, record.Status, record.ProcessedAt,
	).Scan(payrollDest(&created)...)
	if err != nil {
		return payroll.PayrollRecord{}, apperror.Store("payroll.create", err)
	}

	return created, nil
}

// Update writes the patch. Callers are expected to have filled NetPay from
// the merged record; the paid-record guard lives in the WHERE clause.
func (r *payrollRepository) Update(ctx context.Context, id string, req payroll.UpdatePayrollRecordRequest) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	p := newPatch()
	if req.PayPeriodStart.Value != nil {
		if d, ok := validatedDate(*req.PayPeriodStart.Value); ok {
			p.add("pay_period_start", d)
		}
	}
	if req.PayPeriodEnd.Value != nil {
		if d, ok := validatedDate(*req.PayPeriodEnd.Value); ok {
			p.add("pay_period_end", d)
		}
	}
	setAmount(p, "basic_salary", req.BasicSalary)
	setAmount(p, "allowances", req.Allowances)
	setAmount(p, "overtime_pay", req.OvertimePay)
	setAmount(p, "deductions", req.Deductions)
	setAmount(p, "sss_contribution", req.SSSContribution)
	setAmount(p, "philhealth_contribution", req.PhilHealthContribution)
	setAmount(p, "pagibig_contribution", req.PagIBIGContribution)
	setAmount(p, "tax_withheld", req.TaxWithheld)
	setAmount(p, "net_pay", req.NetPay)
	setRequiredString(p, "status", req.Status)
	setField(p, "processed_at", req.ProcessedAt)

	p.guard("status <> $%d", payroll.PayrollStatusPaid)

	query, args := p.update("payroll", id, payrollColumns)

	var updated payroll.PayrollRecord
	err := q.QueryRow(ctx, query, args...).Scan(payrollDest(&updated)...)
	if err == nil {
		return updated, nil
	}
	err = rowError(err, payroll.ErrPayrollRecordNotFound, "payroll.update")
	if errors.Is(err, payroll.ErrPayrollRecordNotFound) {
		if _, getErr := r.GetByID(ctx, id); getErr == nil {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyPaid
		}
	}
	return payroll.PayrollRecord{}, err
}

func (r *payrollRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM payroll WHERE id = $1", id)
	if err != nil {
		return execError(err, payroll.ErrPayrollRecordNotFound, "payroll.delete")
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}
	return nil
}
