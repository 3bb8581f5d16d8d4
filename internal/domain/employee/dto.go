package employee

import (
	"github.com/officetrack/attendance-tracker-go/internal/domain/master"
	"github.com/officetrack/attendance-tracker-go/internal/pkg/validator"
)

// CreateEmployeeRequest carries a new employee master entry. Role may be left
// empty; it is derived from Position.
type CreateEmployeeRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Role       string `json:"role,omitempty"`
	Manager    string `json:"manager,omitempty"`
	Email      string `json:"email"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		return ErrEmployeeIDRequired
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !master.IsValidLocation(r.Location) {
		errs = append(errs, validator.ValidationError{Field: "location", Message: "unknown location"})
	} else if !validator.IsInSlice(r.Department, master.DepartmentsByLocation(r.Location)) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department not available at this location"})
	}
	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest is a partial update; nil fields are left unchanged.
// The id itself is immutable. When Position is set and Role is not, the role
// is re-derived from the new position.
type UpdateEmployeeRequest struct {
	Name       *string `json:"name,omitempty"`
	Location   *string `json:"location,omitempty"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	Role       *string `json:"role,omitempty"`
	Manager    *string `json:"manager,omitempty"`
	Email      *string `json:"email,omitempty"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Location != nil && !master.IsValidLocation(*r.Location) {
		errs = append(errs, validator.ValidationError{Field: "location", Message: "unknown location"})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Filter narrows employee listings.
type Filter struct {
	Location   string
	Department string
	Role       string
}
