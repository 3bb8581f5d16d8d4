package http

import (
	"net/http"

	"github.com/officetrack/attendance-tracker-go/internal/domain/master"
	"github.com/officetrack/attendance-tracker-go/internal/handler/http/response"
)

type MasterHandler interface {
	Locations(w http.ResponseWriter, r *http.Request)
	Departments(w http.ResponseWriter, r *http.Request)
	Positions(w http.ResponseWriter, r *http.Request)
	Roles(w http.ResponseWriter, r *http.Request)
	Statuses(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct{}

func NewMasterHandler() MasterHandler {
	return &masterHandlerImpl{}
}

// Locations implements MasterHandler
func (h *masterHandlerImpl) Locations(w http.ResponseWriter, r *http.Request) {
	response.Success(w, master.Locations)
}

// Departments implements MasterHandler. An optional location query
// parameter narrows the list to that location's departments.
func (h *masterHandlerImpl) Departments(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		response.Success(w, master.AllDepartments())
		return
	}
	if !master.IsValidLocation(location) {
		response.BadRequest(w, "Unknown location", nil)
		return
	}
	response.Success(w, master.DepartmentsByLocation(location))
}

// Positions implements MasterHandler
func (h *masterHandlerImpl) Positions(w http.ResponseWriter, r *http.Request) {
	response.Success(w, master.Positions)
}

// Roles implements MasterHandler
func (h *masterHandlerImpl) Roles(w http.ResponseWriter, r *http.Request) {
	response.Success(w, master.Roles)
}

// Statuses implements MasterHandler
func (h *masterHandlerImpl) Statuses(w http.ResponseWriter, r *http.Request) {
	response.Success(w, master.Statuses)
}
