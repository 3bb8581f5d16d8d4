package employee

import "context"

// EmployeeService is the mutation gateway for the employee master.
type EmployeeService interface {
	// GetByID looks an employee up case/whitespace-insensitively.
	GetByID(ctx context.Context, id string) (Employee, error)

	// List returns employees matching the filter, in stored order.
	List(ctx context.Context, filter Filter) ([]Employee, error)

	// Managers returns every employee with the manager role.
	Managers(ctx context.Context) ([]Employee, error)

	// Create adds a new employee, deriving the role from the position when
	// the request leaves it empty.
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)

	// Update applies a partial update to an existing employee.
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)

	// Delete removes an employee and cascades to its attendance records.
	Delete(ctx context.Context, id string) error
}
