package session

import (
	"context"
	"errors"

	"github.com/officetrack/attendance-tracker-go/internal/domain/employee"
	"github.com/officetrack/attendance-tracker-go/internal/domain/master"
)

var ErrNoActiveSession = errors.New("no active session")

// SessionService tracks which employee the application currently acts as.
type SessionService interface {
	// Login makes the given employee the current user.
	Login(ctx context.Context, employeeID string) (employee.Employee, error)

	// Current returns the current user, or ErrNoActiveSession.
	Current(ctx context.Context) (employee.Employee, error)

	Logout(ctx context.Context) error

	// Permissions returns the permission set of the current user's role.
	// Without a session every permission is denied.
	Permissions(ctx context.Context) (master.Permissions, error)

	// HasPermission reports whether the current user may perform the action.
	HasPermission(ctx context.Context, action string) bool
}
