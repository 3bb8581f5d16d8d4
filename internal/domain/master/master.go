package master

import "sort"

// Organization master data. The tracker runs against a fixed set of offices,
// so these are compiled in rather than stored.

// Locations lists the office codes, in display order. The first entry is the
// fallback used when an import carries an unknown location.
var Locations = []string{"LDN", "DSS", "HBG", "PRS", "MIL"}

// Departments maps each location to the departments present there.
var Departments = map[string][]string{
	"LDN": {"Sales", "Finance", "HR", "IT", "Operations"},
	"DSS": {"Sales", "Finance", "HR", "Operations"},
	"HBG": {"Sales", "Finance", "IT", "Operations"},
	"PRS": {"Sales", "Finance", "HR", "IT"},
	"MIL": {"Sales", "Finance", "Operations"},
}

// Position describes a position master entry.
type Position struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Role  string `json:"role"`
}

const (
	RoleManager = "manager"
	RoleGeneral = "general"
)

// Positions lists the position master, in display order.
var Positions = []Position{
	{Key: "office_manager", Label: "Office Manager", Role: RoleManager},
	{Key: "gm", Label: "GM", Role: RoleManager},
	{Key: "dgm", Label: "DGM", Role: RoleManager},
	{Key: "other", Label: "Other", Role: RoleGeneral},
}

// Permissions is the set of actions a role may perform.
type Permissions struct {
	CanView            bool `json:"canView"`
	CanEdit            bool `json:"canEdit"`
	CanDelete          bool `json:"canDelete"`
	CanImport          bool `json:"canImport"`
	CanExport          bool `json:"canExport"`
	CanManageEmployees bool `json:"canManageEmployees"`
}

// Permission action names, as used by HasPermission and the route guards.
const (
	ActionView            = "canView"
	ActionEdit            = "canEdit"
	ActionDelete          = "canDelete"
	ActionImport          = "canImport"
	ActionExport          = "canExport"
	ActionManageEmployees = "canManageEmployees"
)

// Role describes a role master entry.
type Role struct {
	Key         string      `json:"key"`
	Label       string      `json:"label"`
	Permissions Permissions `json:"permissions"`
}

var Roles = []Role{
	{
		Key:   RoleManager,
		Label: "Manager",
		Permissions: Permissions{
			CanView:            true,
			CanEdit:            true,
			CanDelete:          true,
			CanImport:          true,
			CanExport:          true,
			CanManageEmployees: true,
		},
	},
	{
		Key:         RoleGeneral,
		Label:       "General",
		Permissions: Permissions{},
	},
}

// Status describes a status master entry. Color is the hex code the calendar
// view renders the status with.
type Status struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

const (
	StatusOffice       = "office"
	StatusWFH          = "wfh"
	StatusBusinessTrip = "business_trip"
	StatusOut          = "out"
	StatusVacation     = "vacation"
	StatusSick         = "sick"
)

var Statuses = []Status{
	{Value: StatusOffice, Label: "Office", Color: "#4CAF50"},
	{Value: StatusWFH, Label: "Remote (WFH)", Color: "#2196F3"},
	{Value: StatusBusinessTrip, Label: "Business Trip", Color: "#FF9800"},
	{Value: StatusOut, Label: "Out", Color: "#9C27B0"},
	{Value: StatusVacation, Label: "Vacation", Color: "#F44336"},
	{Value: StatusSick, Label: "Sick Leave", Color: "#607D8B"},
}

// IsValidLocation reports whether code is a known location.
func IsValidLocation(code string) bool {
	for _, loc := range Locations {
		if loc == code {
			return true
		}
	}
	return false
}

// DepartmentsByLocation returns the departments configured for a location, or
// an empty slice for an unknown one.
func DepartmentsByLocation(location string) []string {
	depts, ok := Departments[location]
	if !ok {
		return []string{}
	}
	return depts
}

// AllDepartments returns the sorted union of departments across locations.
func AllDepartments() []string {
	seen := make(map[string]struct{})
	var all []string
	for _, depts := range Departments {
		for _, d := range depts {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			all = append(all, d)
		}
	}
	sort.Strings(all)
	return all
}

// PositionInfo returns the position master entry for key, falling back to
// "other" for unknown keys.
func PositionInfo(key string) Position {
	for _, p := range Positions {
		if p.Key == key {
			return p
		}
	}
	return Positions[len(Positions)-1]
}

// RoleFromPosition derives the role for a position key.
func RoleFromPosition(positionKey string) string {
	return PositionInfo(positionKey).Role
}

// RoleInfo returns the role master entry for key, falling back to general.
func RoleInfo(key string) Role {
	for _, r := range Roles {
		if r.Key == key {
			return r
		}
	}
	return Roles[len(Roles)-1]
}

// Allows reports whether the permission set grants the named action.
func (p Permissions) Allows(action string) bool {
	switch action {
	case ActionView:
		return p.CanView
	case ActionEdit:
		return p.CanEdit
	case ActionDelete:
		return p.CanDelete
	case ActionImport:
		return p.CanImport
	case ActionExport:
		return p.CanExport
	case ActionManageEmployees:
		return p.CanManageEmployees
	default:
		return false
	}
}

// StatusInfo returns the status master entry for value, falling back to the
// first status for unknown values.
func StatusInfo(value string) Status {
	for _, s := range Statuses {
		if s.Value == value {
			return s
		}
	}
	return Statuses[0]
}

// IsValidStatus reports whether value is a known status.
func IsValidStatus(value string) bool {
	for _, s := range Statuses {
		if s.Value == value {
			return true
		}
	}
	return false
}
