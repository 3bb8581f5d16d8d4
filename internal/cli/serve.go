package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	appHTTP "github.com/officetrack/attendance-tracker-go/internal/handler/http"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "serve",
		Short:         "Start the attendance HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), rootOpts)
		},
	}
}

func runServe(ctx context.Context, rootOpts *RootOptions) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, rootOpts)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		a.Close(shutdownCtx)
	}()

	handlers := appHTTP.Handlers{
		Employee:   appHTTP.NewEmployeeHandler(a.EmployeeService),
		Attendance: appHTTP.NewAttendanceHandler(a.AttendanceService),
		Master:     appHTTP.NewMasterHandler(),
		Session:    appHTTP.NewSessionHandler(a.SessionService),
		Import:     appHTTP.NewImportHandler(a.ImporterService),
		Data:       appHTTP.NewDataHandler(a.Store),
	}
	router := appHTTP.NewRouter(a.Config, a.Logger, a.SessionService, handlers)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.Config.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("starting server", "port", a.Config.App.Port)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		a.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}
