package master

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleFromPosition(t *testing.T) {
	assert.Equal(t, RoleManager, RoleFromPosition("gm"))
	assert.Equal(t, RoleManager, RoleFromPosition("dgm"))
	assert.Equal(t, RoleManager, RoleFromPosition("office_manager"))
	assert.Equal(t, RoleGeneral, RoleFromPosition("other"))
	assert.Equal(t, RoleGeneral, RoleFromPosition("unknown"))
}

func TestDepartmentsByLocation(t *testing.T) {
	assert.Contains(t, DepartmentsByLocation("LDN"), "Operations")
	assert.NotContains(t, DepartmentsByLocation("PRS"), "Operations")
	assert.Empty(t, DepartmentsByLocation("XXX"))

	all := AllDepartments()
	assert.Contains(t, all, "IT")
	assert.Contains(t, all, "Operations")
}

func TestPermissionsAllows(t *testing.T) {
	manager := RoleInfo(RoleManager).Permissions
	general := RoleInfo(RoleGeneral).Permissions

	for _, action := range []string{ActionView, ActionEdit, ActionDelete, ActionImport, ActionExport, ActionManageEmployees} {
		assert.True(t, manager.Allows(action), action)
		assert.False(t, general.Allows(action), action)
	}
	assert.False(t, manager.Allows("unknownAction"))
}

func TestStatusInfoFallsBack(t *testing.T) {
	assert.Equal(t, "Business Trip", StatusInfo("business_trip").Label)
	assert.Equal(t, Statuses[0], StatusInfo("nope"))
	assert.True(t, IsValidStatus("sick"))
	assert.False(t, IsValidStatus("holiday"))
}
