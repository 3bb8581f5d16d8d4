package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/officetrack/attendance-tracker-go/internal/domain/attendance"
	"github.com/officetrack/attendance-tracker-go/internal/domain/employee"
	"github.com/officetrack/attendance-tracker-go/internal/domain/master"
	"github.com/officetrack/attendance-tracker-go/internal/store"
)

type EmployeeServiceImpl struct {
	store *store.Store
}

func NewEmployeeService(st *store.Store) employee.EmployeeService {
	return &EmployeeServiceImpl{store: st}
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	employees, err := s.store.Employees()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to load employees: %w", err)
	}

	for _, emp := range employees {
		if employee.SameID(emp.ID, id) {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, error) {
	employees, err := s.store.Employees()
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	result := make([]employee.Employee, 0, len(employees))
	for _, emp := range employees {
		if filter.Location != "" && emp.Location != filter.Location {
			continue
		}
		if filter.Department != "" && emp.Department != filter.Department {
			continue
		}
		if filter.Role != "" && emp.Role != filter.Role {
			continue
		}
		result = append(result, emp)
	}
	return result, nil
}

func (s *EmployeeServiceImpl) Managers(ctx context.Context) ([]employee.Employee, error) {
	return s.List(ctx, employee.Filter{Role: master.RoleManager})
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	employees, err := s.store.Employees()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to load employees: %w", err)
	}

	for _, emp := range employees {
		if employee.SameID(emp.ID, req.ID) {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
	}

	role := req.Role
	if role == "" {
		role = master.RoleFromPosition(req.Position)
	}

	emp := employee.Employee{
		ID:         strings.TrimSpace(req.ID),
		Name:       req.Name,
		Location:   req.Location,
		Department: req.Department,
		Position:   req.Position,
		Role:       role,
		Manager:    req.Manager,
		Email:      req.Email,
		CreatedAt:  time.Now().UTC(),
	}

	employees = append(employees, emp)
	if err := s.store.SetEmployees(employees); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to save employee: %w", err)
	}
	return emp, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	employees, err := s.store.Employees()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to load employees: %w", err)
	}

	idx := -1
	for i, emp := range employees {
		if employee.SameID(emp.ID, id) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	emp := employees[idx]
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Location != nil {
		emp.Location = *req.Location
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Position != nil {
		emp.Position = *req.Position
		emp.Role = master.RoleFromPosition(*req.Position)
	}
	if req.Role != nil {
		emp.Role = *req.Role
	}
	if req.Manager != nil {
		emp.Manager = *req.Manager
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	now := time.Now().UTC()
	emp.UpdatedAt = &now

	employees[idx] = emp
	if err := s.store.SetEmployees(employees); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to save employee: %w", err)
	}
	return emp, nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	employees, err := s.store.Employees()
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	idx := -1
	for i, emp := range employees {
		if employee.SameID(emp.ID, id) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return employee.ErrEmployeeNotFound
	}

	deletedID := employees[idx].ID
	employees = append(employees[:idx], employees[idx+1:]...)
	if err := s.store.SetEmployees(employees); err != nil {
		return fmt.Errorf("failed to save employees: %w", err)
	}

	// Cascade by exact id match. Records created through the service carry
	// the stored id verbatim.
	records, err := s.store.Attendance()
	if err != nil {
		return fmt.Errorf("failed to load attendance: %w", err)
	}

	kept := make([]attendance.Record, 0, len(records))
	for _, rec := range records {
		if rec.EmployeeID == deletedID {
			continue
		}
		kept = append(kept, rec)
	}
	if len(kept) != len(records) {
		if err := s.store.SetAttendance(kept); err != nil {
			return fmt.Errorf("failed to save attendance: %w", err)
		}
	}
	return nil
}
