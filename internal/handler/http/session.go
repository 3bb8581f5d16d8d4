package http

import (
	"encoding/json"
	"net/http"

	"github.com/officetrack/attendance-tracker-go/internal/domain/session"
	"github.com/officetrack/attendance-tracker-go/internal/handler/http/response"
)

type SessionHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Current(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Permissions(w http.ResponseWriter, r *http.Request)
}

type sessionHandlerImpl struct {
	sessionService session.SessionService
}

func NewSessionHandler(sessionService session.SessionService) SessionHandler {
	return &sessionHandlerImpl{sessionService: sessionService}
}

// Login implements SessionHandler
func (h *sessionHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID string `json:"employeeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.EmployeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	emp, err := h.sessionService.Login(r.Context(), req.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged in", emp)
}

// Current implements SessionHandler
func (h *sessionHandlerImpl) Current(w http.ResponseWriter, r *http.Request) {
	emp, err := h.sessionService.Current(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// Logout implements SessionHandler
func (h *sessionHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.Logout(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged out", nil)
}

// Permissions implements SessionHandler
func (h *sessionHandlerImpl) Permissions(w http.ResponseWriter, r *http.Request) {
	perms, err := h.sessionService.Permissions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, perms)
}
