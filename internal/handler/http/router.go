package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/officetrack/attendance-tracker-go/internal/config"
	"github.com/officetrack/attendance-tracker-go/internal/domain/master"
	"github.com/officetrack/attendance-tracker-go/internal/domain/session"
	"github.com/officetrack/attendance-tracker-go/internal/handler/http/middleware"
)

type Handlers struct {
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Master     MasterHandler
	Session    SessionHandler
	Import     ImportHandler
	Data       DataHandler
}

func NewRouter(cfg *config.Config, logger *slog.Logger, sessionService session.SessionService, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	requirePermission := func(action string) func(http.Handler) http.Handler {
		return middleware.RequirePermission(sessionService, action)
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/session", func(r chi.Router) {
			r.Post("/", h.Session.Login)
			r.Get("/", h.Session.Current)
			r.Delete("/", h.Session.Logout)
			r.Get("/permissions", h.Session.Permissions)
		})

		r.Route("/master", func(r chi.Router) {
			r.Get("/locations", h.Master.Locations)
			r.Get("/departments", h.Master.Departments)
			r.Get("/positions", h.Master.Positions)
			r.Get("/roles", h.Master.Roles)
			r.Get("/statuses", h.Master.Statuses)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.ListEmployees)
			r.Get("/managers", h.Employee.ListManagers)
			r.Get("/{id}", h.Employee.GetEmployee)

			r.Group(func(r chi.Router) {
				r.Use(requirePermission(master.ActionManageEmployees))
				r.Post("/", h.Employee.CreateEmployee)
				r.Put("/{id}", h.Employee.UpdateEmployee)
				r.Delete("/{id}", h.Employee.DeleteEmployee)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.ListAttendance)
			r.Get("/range", h.Attendance.QueryRange)
			r.Get("/statistics", h.Attendance.Statistics)
			r.Get("/{id}", h.Attendance.GetRecord)

			r.Group(func(r chi.Router) {
				r.Use(requirePermission(master.ActionEdit))
				r.Post("/", h.Attendance.CreateRecord)
				r.Post("/range", h.Attendance.CreateRange)
				r.Put("/{id}", h.Attendance.UpdateRecord)
			})

			r.Group(func(r chi.Router) {
				r.Use(requirePermission(master.ActionDelete))
				r.Delete("/{id}", h.Attendance.DeleteRecord)
			})
		})

		r.Route("/imports", func(r chi.Router) {
			r.Get("/travel/sample", h.Import.SampleTravel)
			r.Get("/leave/sample", h.Import.SampleLeave)

			r.Group(func(r chi.Router) {
				r.Use(requirePermission(master.ActionImport))
				r.Post("/travel", h.Import.ImportTravel)
				r.Post("/leave", h.Import.ImportLeave)
			})
		})

		r.Route("/data", func(r chi.Router) {
			r.With(requirePermission(master.ActionExport)).Get("/", h.Data.Export)
			r.With(requirePermission(master.ActionImport)).Post("/", h.Data.Import)
			r.With(requirePermission(master.ActionDelete)).Delete("/", h.Data.RemoveAll)
		})
	})

	return r
}
