package attendance

import (
	"github.com/officetrack/attendance-tracker-go/internal/domain/master"
	"github.com/officetrack/attendance-tracker-go/internal/pkg/validator"
)

// CreateRecordRequest carries a single attendance upsert.
type CreateRecordRequest struct {
	EmployeeID  string `json:"employeeId"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Note        string `json:"note,omitempty"`
	Country     string `json:"country,omitempty"`
	Destination string `json:"destination,omitempty"`
}

func (r CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employee id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if !master.IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateRangeRequest expands into one upsert per calendar day, start and end
// inclusive.
type CreateRangeRequest struct {
	EmployeeID  string `json:"employeeId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Status      string `json:"status"`
	Note        string `json:"note,omitempty"`
	Country     string `json:"country,omitempty"`
	Destination string `json:"destination,omitempty"`
}

func (r CreateRangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employee id is required"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "start date must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "end date must be YYYY-MM-DD"})
	}
	if !master.IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRecordRequest is a partial update of an existing record by id.
type UpdateRecordRequest struct {
	EmployeeID  *string `json:"employeeId,omitempty"`
	Date        *string `json:"date,omitempty"`
	Status      *string `json:"status,omitempty"`
	Note        *string `json:"note,omitempty"`
	Country     *string `json:"country,omitempty"`
	Destination *string `json:"destination,omitempty"`
}

func (r UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
		}
	}
	if r.Status != nil && !master.IsValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// StatusCount is one bucket of a statistics breakdown.
type StatusCount struct {
	Count int    `json:"count"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Statistics summarizes attendance over a date range.
type Statistics struct {
	Total    int                    `json:"total"`
	ByStatus map[string]StatusCount `json:"byStatus"`
}
