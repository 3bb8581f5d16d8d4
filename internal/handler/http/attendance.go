package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/officetrack/attendance-tracker-go/internal/domain/attendance"
	"github.com/officetrack/attendance-tracker-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ListAttendance(w http.ResponseWriter, r *http.Request)
	GetRecord(w http.ResponseWriter, r *http.Request)
	CreateRecord(w http.ResponseWriter, r *http.Request)
	CreateRange(w http.ResponseWriter, r *http.Request)
	QueryRange(w http.ResponseWriter, r *http.Request)
	Statistics(w http.ResponseWriter, r *http.Request)
	UpdateRecord(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// ListAttendance implements AttendanceHandler. Optional date and employee
// query parameters narrow the result.
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	employeeID := r.URL.Query().Get("employee")

	switch {
	case date != "" && employeeID != "":
		result, err := h.attendanceService.ByEmployeeAndDate(r.Context(), employeeID, date)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		records := []attendance.Record{}
		if result != nil {
			records = append(records, *result)
		}
		response.Success(w, records)
	case date != "":
		records, err := h.attendanceService.ByDate(r.Context(), date)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, records)
	case employeeID != "":
		records, err := h.attendanceService.ByEmployee(r.Context(), employeeID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, records)
	default:
		records, err := h.attendanceService.List(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, records)
	}
}

// GetRecord implements AttendanceHandler
func (h *attendanceHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	result, err := h.attendanceService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateRecord implements AttendanceHandler
func (h *attendanceHandlerImpl) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", result)
}

// CreateRange implements AttendanceHandler
func (h *attendanceHandlerImpl) CreateRange(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	results, err := h.attendanceService.CreateRange(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance range recorded", results)
}

// QueryRange implements AttendanceHandler
func (h *attendanceHandlerImpl) QueryRange(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		response.BadRequest(w, "start and end query parameters are required", nil)
		return
	}

	records, err := h.attendanceService.ByDateRange(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Statistics implements AttendanceHandler
func (h *attendanceHandlerImpl) Statistics(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		response.BadRequest(w, "start and end query parameters are required", nil)
		return
	}

	stats, err := h.attendanceService.Statistics(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// UpdateRecord implements AttendanceHandler
func (h *attendanceHandlerImpl) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	var req attendance.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", result)
}

// DeleteRecord implements AttendanceHandler
func (h *attendanceHandlerImpl) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted", nil)
}
