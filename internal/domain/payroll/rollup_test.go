package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func record(employeeID, start, basic, allowances, overtime string) PayrollRecord {
	t, _ := time.Parse("2006-01-02", start)
	r := PayrollRecord{
		EmployeeID:     employeeID,
		PayPeriodStart: t,
		PayPeriodEnd:   t.AddDate(0, 0, 14),
		BasicSalary:    d(basic),
		Allowances:     d(allowances),
		OvertimePay:    d(overtime),
	}
	r.NetPay = r.ComputeNetPay()
	return r
}

func TestNetPay(t *testing.T) {
	got := NetPay(d("30000"), d("2000"), d("1500"), d("500"), d("1350"), d("450"), d("100"), d("2100.75"))
	assert.Equal(t, "28999.25", got.String())
}

func TestEmployeeCost(t *testing.T) {
	assert.True(t, d("27500").Equal(EmployeeCost(d("25000"), d("2500"))))
}

func TestRollup(t *testing.T) {
	rows := []PayrollRecord{
		record("e1", "2024-01-01", "20000", "1000", "0"),
		record("e2", "2024-01-16", "30000", "0", "750.50"),
		record("e1", "2024-02-01", "20000", "1000", "250"),
	}

	total := Rollup(rows)
	assert.Equal(t, 3, total.Records)
	assert.Equal(t, "70000", total.Salaries.String())
	assert.Equal(t, "2000", total.Benefits.String())
	assert.Equal(t, "1000.5", total.Overtime.String())
	assert.Equal(t, "73000.5", total.Total.String())

	months := RollupByMonth(rows)
	require.Len(t, months, 2)
	assert.Equal(t, "2024-01", months[0].Month)
	assert.Equal(t, "51750.5", months[0].Total.String())
	assert.Equal(t, "2024-02", months[1].Month)
	assert.Equal(t, 1, months[1].Records)
}

func TestRollup_Empty(t *testing.T) {
	total := Rollup(nil)
	assert.Equal(t, 0, total.Records)
	assert.True(t, total.Total.IsZero())
	assert.Empty(t, RollupByMonth(nil))
}

func TestDepartmentTotals(t *testing.T) {
	depts := map[string]string{"e1": "Engineering", "e2": "Sales", "e3": "Engineering"}
	rows := []PayrollRecord{
		record("e1", "2024-01-01", "20000", "0", "0"),
		record("e2", "2024-01-01", "10000", "0", "0"),
		record("e3", "2024-01-01", "10000", "0", "0"),
		record("e4", "2024-01-01", "10000", "0", "0"),
	}

	got := DepartmentTotals(rows, func(id string) string { return depts[id] })

	require.Len(t, got, 3)
	assert.Equal(t, "Engineering", got[0].Department)
	assert.Equal(t, 2, got[0].Employees)
	assert.Equal(t, "30000", got[0].Total.String())
	assert.Equal(t, 60.0, got[0].Share)
	assert.Equal(t, "Sales", got[1].Department)
	assert.Equal(t, UnassignedDepartment, got[2].Department)
	assert.Equal(t, 20.0, got[2].Share)
}
