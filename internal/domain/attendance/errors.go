package attendance

import (
	"errors"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
)

var (
	ErrAttendanceNotFound = apperror.NotFound("attendance record")
	ErrAttendanceExists   = apperror.Conflict("attendance already recorded for this employee and date")
	ErrInvalidStatus      = errors.New("status must be Present, Late, Absent or Half Day")
	ErrInvalidTime        = errors.New("time must be in HH:MM format")
)
