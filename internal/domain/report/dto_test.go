package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReportRequest_Period(t *testing.T) {
	now := time.Date(2024, 7, 19, 10, 0, 0, 0, time.UTC)

	r := ReportRequest{Month: "2024-02"}
	assert.NoError(t, r.Validate())
	start, end := r.Period(now)
	assert.Equal(t, "2024-02-01", start.Format("2006-01-02"))
	assert.Equal(t, "2024-02-29", end.Format("2006-01-02"))

	r = ReportRequest{}
	start, end = r.Period(now)
	assert.Equal(t, "2024-07-01", start.Format("2006-01-02"))
	assert.Equal(t, "2024-07-31", end.Format("2006-01-02"))

	r = ReportRequest{Month: "July"}
	assert.Error(t, r.Validate())
}

func TestReportRequest_IncludesDepartment(t *testing.T) {
	all := ReportRequest{Department: "all"}
	assert.True(t, all.IncludesDepartment("Sales"))

	sales := ReportRequest{Department: "Sales"}
	assert.True(t, sales.IncludesDepartment("Sales"))
	assert.False(t, sales.IncludesDepartment("Engineering"))
}
