package fixtures

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/officetrack/attendance-tracker-go/internal/domain/attendance"
	"github.com/officetrack/attendance-tracker-go/internal/domain/employee"
	"github.com/officetrack/attendance-tracker-go/internal/domain/session"
)

// SampleEmployees returns the demo employee roster spanning all five
// locations.
func SampleEmployees() []employee.CreateEmployeeRequest {
	return []employee.CreateEmployeeRequest{
		// London (LDN)
		{ID: "EMP001", Name: "John Smith", Location: "LDN", Department: "Sales", Position: "gm", Email: "john.smith@company.com"},
		{ID: "EMP002", Name: "Sarah Johnson", Location: "LDN", Department: "Finance", Position: "office_manager", Email: "sarah.johnson@company.com"},
		{ID: "EMP003", Name: "Michael Brown", Location: "LDN", Department: "Sales", Position: "other", Manager: "EMP001", Email: "michael.brown@company.com"},

		// Duesseldorf (DSS)
		{ID: "EMP004", Name: "Anna Schmidt", Location: "DSS", Department: "Sales", Position: "dgm", Email: "anna.schmidt@company.com"},
		{ID: "EMP005", Name: "Thomas Müller", Location: "DSS", Department: "Operations", Position: "other", Manager: "EMP004", Email: "thomas.mueller@company.com"},

		// Hamburg (HBG)
		{ID: "EMP006", Name: "Emma Weber", Location: "HBG", Department: "IT", Position: "office_manager", Email: "emma.weber@company.com"},
		{ID: "EMP007", Name: "Lucas Fischer", Location: "HBG", Department: "IT", Position: "other", Manager: "EMP006", Email: "lucas.fischer@company.com"},

		// Paris (PRS)
		{ID: "EMP008", Name: "Sophie Martin", Location: "PRS", Department: "HR", Position: "gm", Email: "sophie.martin@company.com"},
		{ID: "EMP009", Name: "Pierre Dubois", Location: "PRS", Department: "Finance", Position: "other", Manager: "EMP008", Email: "pierre.dubois@company.com"},

		// Milan (MIL)
		{ID: "EMP010", Name: "Giulia Rossi", Location: "MIL", Department: "Sales", Position: "dgm", Email: "giulia.rossi@company.com"},
		{ID: "EMP011", Name: "Marco Bianchi", Location: "MIL", Department: "Operations", Position: "other", Manager: "EMP010", Email: "marco.bianchi@company.com"},

		{ID: "EMP012", Name: "Emily Davis", Location: "LDN", Department: "HR", Position: "other", Manager: "EMP002", Email: "emily.davis@company.com"},
		{ID: "EMP013", Name: "佐藤太郎", Location: "LDN", Department: "Sales", Position: "gm", Email: "taro.sato@company.com"},
	}
}

var sampleStatuses = []struct {
	status string
	weight float64
}{
	{"office", 0.5},
	{"wfh", 0.25},
	{"business_trip", 0.1},
	{"out", 0.05},
	{"vacation", 0.08},
	{"sick", 0.02},
}

var sampleDestinations = []string{"Tokyo", "New York", "Singapore", "Dubai", "Sydney"}

// SampleAttendance builds records for every weekday of now's month up to
// now, one per employee per day. The rng seed is fixed so repeated seeding
// yields the same data.
func SampleAttendance(now time.Time) []attendance.CreateRecordRequest {
	rng := rand.New(rand.NewSource(42))
	records := []attendance.CreateRecordRequest{}

	firstDay := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for _, emp := range SampleEmployees() {
		for day := firstDay; day.Month() == now.Month() && !day.After(now); day = day.AddDate(0, 0, 1) {
			if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
				continue
			}

			status := pickStatus(rng)
			rec := attendance.CreateRecordRequest{
				EmployeeID: emp.ID,
				Date:       day.Format("2006-01-02"),
				Status:     status,
			}
			switch status {
			case "business_trip":
				dest := sampleDestinations[rng.Intn(len(sampleDestinations))]
				rec.Note = fmt.Sprintf("Business trip to %s", dest)
				rec.Destination = dest
			case "out":
				rec.Note = "Client meeting"
			case "vacation":
				rec.Note = "Annual leave"
			case "sick":
				rec.Note = "Sick leave"
			}
			records = append(records, rec)
		}
	}
	return records
}

func pickStatus(rng *rand.Rand) string {
	random := rng.Float64()
	cumulative := 0.0
	for _, s := range sampleStatuses {
		cumulative += s.weight
		if random < cumulative {
			return s.status
		}
	}
	return "office"
}

// Seed loads the sample roster and attendance when the store is empty and
// logs the first manager in as the demo user. It reports whether anything
// was seeded.
func Seed(ctx context.Context, employeeSvc employee.EmployeeService, attendanceSvc attendance.AttendanceService, sessionSvc session.SessionService, logger *slog.Logger) (bool, error) {
	existing, err := employeeSvc.List(ctx, employee.Filter{})
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	for _, req := range SampleEmployees() {
		if _, err := employeeSvc.Create(ctx, req); err != nil {
			logger.Error("failed to seed employee", "id", req.ID, "error", err)
		}
	}

	for _, req := range SampleAttendance(time.Now()) {
		if _, err := attendanceSvc.Create(ctx, req); err != nil {
			logger.Error("failed to seed attendance", "employee", req.EmployeeID, "date", req.Date, "error", err)
		}
	}

	if _, err := sessionSvc.Login(ctx, "EMP001"); err != nil {
		logger.Error("failed to set demo user", "error", err)
	}

	logger.Info("sample data initialized")
	return true, nil
}
