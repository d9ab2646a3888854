package payroll

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/settings"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/currency"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

type payslipLine struct {
	label  string
	amount decimal.Decimal
}

func renderPayslip(r payroll.PayrollRecord, emp employee.Employee, company settings.CompanySettings) ([]byte, error) {
	money := currency.NewFormatter(company.Currency)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, company.CompanyName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, "Payslip")
	pdf.Ln(12)

	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s", emp.FullName()))
	pdf.Ln(6)
	if emp.EmployeeNumber != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Employee No.: %s", *emp.EmployeeNumber))
		pdf.Ln(6)
	}
	pdf.Cell(0, 7, fmt.Sprintf("Department: %s / %s", emp.Department, emp.Position))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s to %s",
		r.PayPeriodStart.Format(validator.DateLayout), r.PayPeriodEnd.Format(validator.DateLayout)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Status: %s", r.Status))
	pdf.Ln(10)

	section := func(title string, lines []payslipLine, total payslipLine) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, l := range lines {
			pdf.CellFormat(110, 7, l.label, "", 0, "L", false, 0, "")
			pdf.CellFormat(60, 7, money.Plain(l.amount), "", 1, "R", false, 0, "")
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(110, 7, total.label, "T", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, money.Plain(total.amount), "T", 1, "R", false, 0, "")
		pdf.Ln(4)
	}

	section("Earnings", []payslipLine{
		{"Basic salary", r.BasicSalary},
		{"Allowances", r.Allowances},
		{"Overtime pay", r.OvertimePay},
	}, payslipLine{"Gross pay", r.GrossPay()})

	section("Deductions", []payslipLine{
		{"Other deductions", r.Deductions},
		{"SSS", r.SSSContribution},
		{"PhilHealth", r.PhilHealthContribution},
		{"Pag-IBIG", r.PagIBIGContribution},
		{"Withholding tax", r.TaxWithheld},
	}, payslipLine{"Total deductions", r.TotalDeductions()})

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(110, 9, "Net pay", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 9, money.Plain(r.NetPay), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return buf.Bytes(), nil
}

func payslipFilename(r payroll.PayrollRecord, emp employee.Employee) string {
	name := strings.ToLower(strings.Join(strings.Fields(emp.LastName), "-"))
	if name == "" {
		name = "employee"
	}
	return fmt.Sprintf("payslip-%s-%s.pdf", name, r.PayPeriodStart.Format(validator.DateLayout))
}
