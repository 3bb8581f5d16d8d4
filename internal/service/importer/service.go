package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/officetrack/attendance-tracker-go/internal/domain/attendance"
	"github.com/officetrack/attendance-tracker-go/internal/domain/employee"
	"github.com/officetrack/attendance-tracker-go/internal/domain/importer"
	"github.com/officetrack/attendance-tracker-go/internal/domain/master"
)

const (
	defaultName       = "New Employee"
	defaultLocation   = "LDN"
	defaultMissing    = "Unknown"
	defaultDepartment = "Operations"
	defaultPosition   = "other"
)

type ImporterServiceImpl struct {
	employeeSvc   employee.EmployeeService
	attendanceSvc attendance.AttendanceService
	logger        *slog.Logger
}

func NewImporterService(employeeSvc employee.EmployeeService, attendanceSvc attendance.AttendanceService, logger *slog.Logger) importer.ImporterService {
	return &ImporterServiceImpl{
		employeeSvc:   employeeSvc,
		attendanceSvc: attendanceSvc,
		logger:        logger,
	}
}

func failure(msg string) importer.Result {
	return importer.Result{Success: false, Errors: []string{msg}}
}

func (s *ImporterServiceImpl) ImportTravel(ctx context.Context, content string, scope importer.Scope, scopeValue string) importer.Result {
	if strings.TrimSpace(content) == "" {
		return failure("CSV file is empty")
	}

	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	delimiter := detectDelimiter(lines)

	cols, headerIdx, found := detectHeader(lines, delimiter)
	dataStart := 0
	if found {
		dataStart = headerIdx + 1
	} else {
		cols = positionalColumnMap()
		s.logger.Warn("no header row detected, using positional columns")
	}

	result := importer.Result{Success: true, Errors: []string{}}
	for i := dataStart; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		lineNo := i + 1
		if err := s.importTravelRow(ctx, parseLine(lines[i], delimiter), cols, scope, scopeValue, &result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", lineNo, err))
		}
	}
	return result
}

func (s *ImporterServiceImpl) importTravelRow(ctx context.Context, fields []string, cols columnMap, scope importer.Scope, scopeValue string, result *importer.Result) error {
	id := cols.field(fields, cols.EmployeeID, "")
	if id == "" || strings.EqualFold(id, "employee id") {
		return nil
	}

	name := cols.field(fields, cols.Name, defaultName)
	location := cols.field(fields, cols.Location, defaultLocation)
	destination := cols.field(fields, cols.Destination, defaultMissing)
	purpose := cols.field(fields, cols.Purpose, "")
	country := cols.field(fields, cols.Country, "")
	startRaw := cols.field(fields, cols.StartDate, "")
	endRaw := cols.field(fields, cols.EndDate, "")

	if startRaw == "" || endRaw == "" {
		return nil
	}

	if scope == importer.ScopeEmployee && !employee.SameID(id, scopeValue) {
		return nil
	}

	startDate := normalizeDate(s.logger, startRaw)
	endDate := normalizeDate(s.logger, endRaw)

	emp, err := s.employeeSvc.GetByID(ctx, id)
	switch {
	case err == nil:
		if scope == importer.ScopeLocation && emp.Location != scopeValue {
			return nil
		}
	case errors.Is(err, employee.ErrEmployeeNotFound):
		// Unknown employees can only come in under all or employee scope.
		if scope == importer.ScopeLocation {
			return nil
		}
		emp, err = s.provisionEmployee(ctx, id, name, location)
		if err != nil {
			return err
		}
		result.AutoCreated++
	default:
		return err
	}

	note := purpose
	if note == "" {
		note = fmt.Sprintf("Business trip to %s", destination)
	}

	records, err := s.attendanceSvc.CreateRange(ctx, attendance.CreateRangeRequest{
		EmployeeID:  emp.ID,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      master.StatusBusinessTrip,
		Note:        note,
		Country:     country,
		Destination: destination,
	})
	if err != nil {
		return err
	}
	result.Imported += len(records)
	return nil
}

func (s *ImporterServiceImpl) provisionEmployee(ctx context.Context, id, name, location string) (employee.Employee, error) {
	if !master.IsValidLocation(location) {
		location = master.Locations[0]
	}
	department := defaultDepartment
	if available := master.DepartmentsByLocation(location); len(available) > 0 {
		found := false
		for _, d := range available {
			if d == department {
				found = true
				break
			}
		}
		if !found {
			department = available[0]
		}
	}
	return s.employeeSvc.Create(ctx, employee.CreateEmployeeRequest{
		ID:         id,
		Name:       name,
		Location:   location,
		Department: department,
		Position:   defaultPosition,
		Email:      strings.ToLower(id) + "@company.com",
	})
}

func (s *ImporterServiceImpl) ImportLeave(ctx context.Context, content string, scope importer.Scope, scopeValue string) importer.Result {
	if strings.TrimSpace(content) == "" {
		return failure("CSV file is empty")
	}

	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	result := importer.Result{Success: true, Errors: []string{}}
	// The leave export always carries a header row.
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		lineNo := i + 1
		if err := s.importLeaveRow(ctx, parseLine(lines[i], ','), scope, scopeValue, &result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", lineNo, err))
		}
	}
	return result
}

func (s *ImporterServiceImpl) importLeaveRow(ctx context.Context, fields []string, scope importer.Scope, scopeValue string, result *importer.Result) error {
	if len(fields) < 6 {
		return errors.New("insufficient columns")
	}

	id := fields[0]
	startRaw := fields[2]
	endRaw := fields[3]
	leaveType := fields[4]
	remainingDays := fields[5]

	if id == "" {
		return nil
	}
	if scope == importer.ScopeEmployee && !employee.SameID(id, scopeValue) {
		return nil
	}

	emp, err := s.employeeSvc.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			// An unknown employee cannot be placed in a location, so under
			// location scope the row is out of scope rather than an error.
			if scope == importer.ScopeLocation {
				return nil
			}
			return fmt.Errorf("employee %s not found", id)
		}
		return err
	}
	if scope == importer.ScopeLocation && emp.Location != scopeValue {
		return nil
	}

	status := master.StatusVacation
	note := fmt.Sprintf("%s (%s days remaining)", leaveType, remainingDays)
	if strings.Contains(strings.ToLower(leaveType), "sick") {
		status = master.StatusSick
		note = "Sick leave"
	}

	records, err := s.attendanceSvc.CreateRange(ctx, attendance.CreateRangeRequest{
		EmployeeID: emp.ID,
		StartDate:  normalizeDate(s.logger, startRaw),
		EndDate:    normalizeDate(s.logger, endRaw),
		Status:     status,
		Note:       note,
	})
	if err != nil {
		return err
	}
	result.Imported += len(records)
	return nil
}
