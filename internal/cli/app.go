package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/officetrack/attendance-tracker-go/internal/config"
	attendancedomain "github.com/officetrack/attendance-tracker-go/internal/domain/attendance"
	employeedomain "github.com/officetrack/attendance-tracker-go/internal/domain/employee"
	importerdomain "github.com/officetrack/attendance-tracker-go/internal/domain/importer"
	sessiondomain "github.com/officetrack/attendance-tracker-go/internal/domain/session"
	attendanceservice "github.com/officetrack/attendance-tracker-go/internal/service/attendance"
	employeeservice "github.com/officetrack/attendance-tracker-go/internal/service/employee"
	importerservice "github.com/officetrack/attendance-tracker-go/internal/service/importer"
	sessionservice "github.com/officetrack/attendance-tracker-go/internal/service/session"
	"github.com/officetrack/attendance-tracker-go/internal/store"
	"github.com/officetrack/attendance-tracker-go/internal/store/mirror"
)

// app wires configuration, the record store and the services for one
// command invocation.
type app struct {
	Config *config.Config
	Logger *slog.Logger
	Store  *store.Store

	EmployeeService   employeedomain.EmployeeService
	AttendanceService attendancedomain.AttendanceService
	SessionService    sessiondomain.SessionService
	ImporterService   importerdomain.ImporterService
}

func newApp(ctx context.Context, opts *RootOptions) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := parseLogLevel(cfg.App.LogLevel)
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With(
		slog.String("app", "attendance-tracker"),
		slog.String("env", cfg.App.Env),
	)

	cache, err := store.OpenSQLite(cfg.Cache.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	var m store.Mirror
	switch cfg.Mirror.Type {
	case config.MirrorPostgres:
		m, err = mirror.NewPostgres(ctx, cfg.Mirror.URL, logger)
	case config.MirrorMongo:
		m, err = mirror.NewMongo(ctx, cfg.Mirror.URL, cfg.Mirror.Database, logger)
	}
	if err != nil {
		// The store must come up even when the remote is unreachable.
		logger.Warn("mirror unavailable, continuing with local cache only", "type", cfg.Mirror.Type, "error", err)
		m = nil
	}

	st := store.New(cache, m, logger)
	st.Start(ctx)

	employeeSvc := employeeservice.NewEmployeeService(st)
	attendanceSvc := attendanceservice.NewAttendanceService(st)

	return &app{
		Config:            cfg,
		Logger:            logger,
		Store:             st,
		EmployeeService:   employeeSvc,
		AttendanceService: attendanceSvc,
		SessionService:    sessionservice.NewSessionService(st, employeeSvc),
		ImporterService:   importerservice.NewImporterService(employeeSvc, attendanceSvc, logger),
	}, nil
}

func (a *app) Close(ctx context.Context) {
	if err := a.Store.Close(ctx); err != nil {
		a.Logger.Error("failed to close store", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
