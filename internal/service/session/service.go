package session

import (
	"context"
	"fmt"

	"github.com/officetrack/attendance-tracker-go/internal/domain/employee"
	"github.com/officetrack/attendance-tracker-go/internal/domain/master"
	"github.com/officetrack/attendance-tracker-go/internal/domain/session"
	"github.com/officetrack/attendance-tracker-go/internal/store"
)

type SessionServiceImpl struct {
	store       *store.Store
	employeeSvc employee.EmployeeService
}

func NewSessionService(st *store.Store, employeeSvc employee.EmployeeService) session.SessionService {
	return &SessionServiceImpl{store: st, employeeSvc: employeeSvc}
}

func (s *SessionServiceImpl) Login(ctx context.Context, employeeID string) (employee.Employee, error) {
	emp, err := s.employeeSvc.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, err
	}

	if err := s.store.SetCurrentUser(emp.ID); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to save session: %w", err)
	}
	return emp, nil
}

func (s *SessionServiceImpl) Current(ctx context.Context) (employee.Employee, error) {
	id, err := s.store.CurrentUser()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to load session: %w", err)
	}
	if id == "" {
		return employee.Employee{}, session.ErrNoActiveSession
	}

	emp, err := s.employeeSvc.GetByID(ctx, id)
	if err != nil {
		// The session points at a deleted employee. Treat it as logged out.
		return employee.Employee{}, session.ErrNoActiveSession
	}
	return emp, nil
}

func (s *SessionServiceImpl) Logout(ctx context.Context) error {
	return s.store.ClearCurrentUser()
}

func (s *SessionServiceImpl) Permissions(ctx context.Context) (master.Permissions, error) {
	emp, err := s.Current(ctx)
	if err != nil {
		return master.Permissions{}, err
	}
	return master.RoleInfo(emp.Role).Permissions, nil
}

func (s *SessionServiceImpl) HasPermission(ctx context.Context, action string) bool {
	perms, err := s.Permissions(ctx)
	if err != nil {
		return false
	}
	return perms.Allows(action)
}
