package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	employeedomain "github.com/officetrack/attendance-tracker-go/internal/domain/employee"
	"github.com/officetrack/attendance-tracker-go/internal/domain/master"
	"github.com/officetrack/attendance-tracker-go/internal/domain/session"
	employeeservice "github.com/officetrack/attendance-tracker-go/internal/service/employee"
	"github.com/officetrack/attendance-tracker-go/internal/store"
)

func newTestService(t *testing.T) session.SessionService {
	t.Helper()
	st := store.New(store.NewMemoryCache(), nil, nil)
	employeeSvc := employeeservice.NewEmployeeService(st)

	ctx := context.Background()
	_, err := employeeSvc.Create(ctx, employeedomain.CreateEmployeeRequest{
		ID: "EMP001", Name: "John Smith", Location: "LDN", Department: "Sales", Position: "gm",
	})
	require.NoError(t, err)
	_, err = employeeSvc.Create(ctx, employeedomain.CreateEmployeeRequest{
		ID: "EMP003", Name: "Michael Brown", Location: "LDN", Department: "Sales", Position: "other",
	})
	require.NoError(t, err)

	return NewSessionService(st, employeeSvc)
}

func TestLoginAndCurrent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Current(ctx)
	assert.ErrorIs(t, err, session.ErrNoActiveSession)

	emp, err := svc.Login(ctx, "emp001")
	require.NoError(t, err)
	assert.Equal(t, "EMP001", emp.ID)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EMP001", current.ID)

	require.NoError(t, svc.Logout(ctx))
	_, err = svc.Current(ctx)
	assert.ErrorIs(t, err, session.ErrNoActiveSession)
}

func TestLoginUnknownEmployee(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "EMP999")
	assert.ErrorIs(t, err, employeedomain.ErrEmployeeNotFound)
}

func TestPermissionsByRole(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Nobody logged in: everything denied.
	assert.False(t, svc.HasPermission(ctx, master.ActionView))

	_, err := svc.Login(ctx, "EMP001")
	require.NoError(t, err)
	assert.True(t, svc.HasPermission(ctx, master.ActionView))
	assert.True(t, svc.HasPermission(ctx, master.ActionManageEmployees))

	_, err = svc.Login(ctx, "EMP003")
	require.NoError(t, err)
	assert.False(t, svc.HasPermission(ctx, master.ActionImport))

	perms, err := svc.Permissions(ctx)
	require.NoError(t, err)
	assert.False(t, perms.CanView)
}
