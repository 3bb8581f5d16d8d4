package attendance

import "context"

// AttendanceService is the mutation gateway for attendance records.
type AttendanceService interface {
	GetByID(ctx context.Context, id string) (Record, error)

	// List returns every record in stored order.
	List(ctx context.Context) ([]Record, error)

	// ByDate returns all records for one ISO date.
	ByDate(ctx context.Context, date string) ([]Record, error)

	// ByDateRange returns records with start <= date <= end.
	ByDateRange(ctx context.Context, start, end string) ([]Record, error)

	// ByEmployee returns all records for one employee, matched
	// case/whitespace-insensitively.
	ByEmployee(ctx context.Context, employeeID string) ([]Record, error)

	// ByEmployeeAndDate returns the record for an employee on a date, or nil
	// when none exists.
	ByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Record, error)

	// Create upserts a record: an existing record for the same employee and
	// date is updated in place instead of duplicated.
	Create(ctx context.Context, req CreateRecordRequest) (Record, error)

	// CreateRange upserts one record per day from start through end inclusive.
	CreateRange(ctx context.Context, req CreateRangeRequest) ([]Record, error)

	Update(ctx context.Context, id string, req UpdateRecordRequest) (Record, error)

	Delete(ctx context.Context, id string) error

	// Statistics aggregates record counts per status over a date range.
	Statistics(ctx context.Context, start, end string) (Statistics, error)
}
