package response

import (
	"errors"
	"net/http"

	"github.com/officetrack/attendance-tracker-go/internal/domain/attendance"
	"github.com/officetrack/attendance-tracker-go/internal/domain/employee"
	"github.com/officetrack/attendance-tracker-go/internal/domain/session"
	"github.com/officetrack/attendance-tracker-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmployeeIDRequired):
		BadRequest(w, "Employee ID is required", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Invalid date", nil)
	case errors.Is(err, attendance.ErrInvalidRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Session domain errors
	case errors.Is(err, session.ErrNoActiveSession):
		Unauthorized(w, "No active session")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
