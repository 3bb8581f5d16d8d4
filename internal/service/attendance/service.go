package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/officetrack/attendance-tracker-go/internal/domain/attendance"
	"github.com/officetrack/attendance-tracker-go/internal/domain/employee"
	"github.com/officetrack/attendance-tracker-go/internal/domain/master"
	"github.com/officetrack/attendance-tracker-go/internal/store"
)

type AttendanceServiceImpl struct {
	store *store.Store
}

func NewAttendanceService(st *store.Store) attendance.AttendanceService {
	return &AttendanceServiceImpl{store: st}
}

// newRecordID builds ids like ATT1767225600000-3f2a9c1d.
func newRecordID() string {
	return fmt.Sprintf("ATT%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

func (s *AttendanceServiceImpl) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	records, err := s.store.Attendance()
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (s *AttendanceServiceImpl) List(ctx context.Context) ([]attendance.Record, error) {
	records, err := s.store.Attendance()
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	return records, nil
}

func (s *AttendanceServiceImpl) ByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	records, err := s.store.Attendance()
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}

	result := make([]attendance.Record, 0)
	for _, rec := range records {
		if rec.Date == date {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (s *AttendanceServiceImpl) ByDateRange(ctx context.Context, start, end string) ([]attendance.Record, error) {
	records, err := s.store.Attendance()
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}

	// ISO dates compare lexicographically.
	result := make([]attendance.Record, 0)
	for _, rec := range records {
		if rec.Date >= start && rec.Date <= end {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (s *AttendanceServiceImpl) ByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	records, err := s.store.Attendance()
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}

	result := make([]attendance.Record, 0)
	for _, rec := range records {
		if employee.SameID(rec.EmployeeID, employeeID) {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (s *AttendanceServiceImpl) ByEmployeeAndDate(ctx context.Context, employeeID, date string) (*attendance.Record, error) {
	records, err := s.store.Attendance()
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}

	for _, rec := range records {
		if rec.Date == date && employee.SameID(rec.EmployeeID, employeeID) {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateRecordRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	records, err := s.store.Attendance()
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	records, rec, err := s.upsert(ctx, records, req)
	if err != nil {
		return attendance.Record{}, err
	}
	if err := s.store.SetAttendance(records); err != nil {
		return attendance.Record{}, fmt.Errorf("failed to save attendance: %w", err)
	}
	return rec, nil
}

func (s *AttendanceServiceImpl) CreateRange(ctx context.Context, req attendance.CreateRangeRequest) ([]attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, attendance.ErrInvalidDate
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, attendance.ErrInvalidDate
	}
	if end.Before(start) {
		return nil, attendance.ErrInvalidRange
	}

	records, err := s.store.Attendance()
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}

	created := make([]attendance.Record, 0)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dayReq := attendance.CreateRecordRequest{
			EmployeeID:  req.EmployeeID,
			Date:        day.Format("2006-01-02"),
			Status:      req.Status,
			Note:        req.Note,
			Country:     req.Country,
			Destination: req.Destination,
		}
		var rec attendance.Record
		records, rec, err = s.upsert(ctx, records, dayReq)
		if err != nil {
			return nil, err
		}
		created = append(created, rec)
	}

	if err := s.store.SetAttendance(records); err != nil {
		return nil, fmt.Errorf("failed to save attendance: %w", err)
	}
	return created, nil
}

// upsert updates the record matching the request's employee and date in
// place, or appends a new one. The caller persists the returned slice.
func (s *AttendanceServiceImpl) upsert(ctx context.Context, records []attendance.Record, req attendance.CreateRecordRequest) ([]attendance.Record, attendance.Record, error) {
	employeeID := strings.TrimSpace(req.EmployeeID)
	if emp, err := s.lookupEmployee(ctx, employeeID); err == nil {
		employeeID = emp.ID
	}

	for i, rec := range records {
		if rec.Date != req.Date || !employee.SameID(rec.EmployeeID, employeeID) {
			continue
		}
		rec.Status = req.Status
		rec.Note = req.Note
		rec.Country = req.Country
		rec.Destination = req.Destination
		now := time.Now().UTC()
		rec.UpdatedAt = &now
		records[i] = rec
		return records, rec, nil
	}

	rec := attendance.Record{
		ID:          newRecordID(),
		EmployeeID:  employeeID,
		Date:        req.Date,
		Status:      req.Status,
		Note:        req.Note,
		Country:     req.Country,
		Destination: req.Destination,
		CreatedAt:   time.Now().UTC(),
	}
	return append(records, rec), rec, nil
}

func (s *AttendanceServiceImpl) lookupEmployee(ctx context.Context, id string) (employee.Employee, error) {
	employees, err := s.store.Employees()
	if err != nil {
		return employee.Employee{}, err
	}
	for _, emp := range employees {
		if employee.SameID(emp.ID, id) {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *AttendanceServiceImpl) Update(ctx context.Context, id string, req attendance.UpdateRecordRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	records, err := s.store.Attendance()
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	idx := -1
	for i, rec := range records {
		if rec.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}

	rec := records[idx]
	if req.EmployeeID != nil {
		rec.EmployeeID = strings.TrimSpace(*req.EmployeeID)
	}
	if req.Date != nil {
		rec.Date = *req.Date
	}
	if req.Status != nil {
		rec.Status = *req.Status
	}
	if req.Note != nil {
		rec.Note = *req.Note
	}
	if req.Country != nil {
		rec.Country = *req.Country
	}
	if req.Destination != nil {
		rec.Destination = *req.Destination
	}
	now := time.Now().UTC()
	rec.UpdatedAt = &now

	records[idx] = rec
	if err := s.store.SetAttendance(records); err != nil {
		return attendance.Record{}, fmt.Errorf("failed to save attendance: %w", err)
	}
	return rec, nil
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	records, err := s.store.Attendance()
	if err != nil {
		return fmt.Errorf("failed to load attendance: %w", err)
	}

	idx := -1
	for i, rec := range records {
		if rec.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return attendance.ErrRecordNotFound
	}

	records = append(records[:idx], records[idx+1:]...)
	if err := s.store.SetAttendance(records); err != nil {
		return fmt.Errorf("failed to save attendance: %w", err)
	}
	return nil
}

func (s *AttendanceServiceImpl) Statistics(ctx context.Context, start, end string) (attendance.Statistics, error) {
	records, err := s.ByDateRange(ctx, start, end)
	if err != nil {
		return attendance.Statistics{}, err
	}

	stats := attendance.Statistics{
		Total:    len(records),
		ByStatus: make(map[string]attendance.StatusCount, len(master.Statuses)),
	}
	// Every status gets a bucket, zero counts included.
	for _, info := range master.Statuses {
		stats.ByStatus[info.Value] = attendance.StatusCount{Label: info.Label, Color: info.Color}
	}
	for _, rec := range records {
		count, ok := stats.ByStatus[rec.Status]
		if !ok {
			info := master.StatusInfo(rec.Status)
			count.Label = info.Label
			count.Color = info.Color
		}
		count.Count++
		stats.ByStatus[rec.Status] = count
	}
	return stats, nil
}
