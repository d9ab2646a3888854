package payroll

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/settings"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/nullable"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

type PayrollServiceImpl struct {
	withTx          func(ctx context.Context, fn func(txCtx context.Context) error) error
	payrollRepo     payroll.PayrollRepository
	employeeRepo    employee.EmployeeRepository
	settingsService settings.SettingsService
	now             func() time.Time
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	settingsService settings.SettingsService,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		withTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		payrollRepo:     payrollRepo,
		employeeRepo:    employeeRepo,
		settingsService: settingsService,
		now:             time.Now,
	}
}

// ListPayrollRecords implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayrollRecords(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListResponse{}, err
	}

	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListResponse{}, err
	}

	resp := payroll.ListResponse{
		Records: records,
		Totals:  payroll.Rollup(records),
	}
	if len(records) == 0 {
		resp.Empty = true
		resp.Message = payroll.NoMatchMessage
	}
	return resp, nil
}

// GetPayrollRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayrollRecord(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	return s.payrollRepo.GetByID(ctx, id)
}

// CreatePayrollRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreatePayrollRecord(ctx context.Context, draft payroll.Draft) (payroll.PayrollRecord, error) {
	if err := draft.Validate(); err != nil {
		return payroll.PayrollRecord{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, strings.TrimSpace(draft.EmployeeID)); err != nil {
		return payroll.PayrollRecord{}, err
	}

	created, err := s.payrollRepo.Create(ctx, draft.ToPayrollRecord())
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	slog.Info("Payroll record created", "payroll_id", created.ID, "employee_id", created.EmployeeID, "net_pay", created.NetPay.StringFixed(2))
	return created, nil
}

// UpdatePayrollRecord implements payroll.PayrollService. The patch is merged
// with the locked current row so net pay always reflects every component.
func (s *PayrollServiceImpl) UpdatePayrollRecord(ctx context.Context, id string, req payroll.UpdatePayrollRecordRequest) (payroll.PayrollRecord, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecord{}, err
	}

	var updated payroll.PayrollRecord
	err := s.withTx(ctx, func(txCtx context.Context) error {
		current, err := s.payrollRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if current.Status == payroll.PayrollStatusPaid {
			return payroll.ErrPayrollRecordAlreadyPaid
		}

		merged := req.Apply(current)
		if merged.PayPeriodEnd.Before(merged.PayPeriodStart) {
			var errs validator.ValidationErrors
			errs.Add("pay_period_end", payroll.ErrInvalidPeriod.Error())
			return errs
		}

		req.NetPay = nullable.Of(merged.ComputeNetPay())
		switch {
		case merged.Status == payroll.PayrollStatusDraft:
			if current.ProcessedAt != nil {
				req.ProcessedAt = nullable.Null[time.Time]()
			}
		case current.ProcessedAt == nil:
			req.ProcessedAt = nullable.Of(s.now())
		}

		updated, err = s.payrollRepo.Update(txCtx, id, req)
		return err
	})
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	slog.Info("Payroll record updated", "payroll_id", id, "status", updated.Status, "net_pay", updated.NetPay.StringFixed(2))
	return updated, nil
}

// DeletePayrollRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeletePayrollRecord(ctx context.Context, id string) error {
	return s.payrollRepo.Delete(ctx, id)
}

// GeneratePayslip implements payroll.PayrollService. It returns the PDF bytes
// and a download filename.
func (s *PayrollServiceImpl) GeneratePayslip(ctx context.Context, id string) ([]byte, string, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	var (
		emp     employee.Employee
		company settings.CompanySettings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		emp, err = s.employeeRepo.GetByID(gctx, record.EmployeeID)
		return err
	})
	g.Go(func() error {
		var err error
		company, err = s.settingsService.GetSettings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, "", err
	}

	pdf, err := renderPayslip(record, emp, company)
	if err != nil {
		slog.Error("Failed to render payslip", "payroll_id", id, "error", err)
		return nil, "", err
	}
	return pdf, payslipFilename(record, emp), nil
}
