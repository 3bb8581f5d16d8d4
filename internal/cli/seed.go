package cli

import (
	"github.com/spf13/cobra"

	"github.com/officetrack/attendance-tracker-go/internal/fixtures"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "seed",
		Short:         "Load sample employees and attendance into an empty store",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, rootOpts)
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			seeded, err := fixtures.Seed(ctx, a.EmployeeService, a.AttendanceService, a.SessionService, a.Logger)
			if err != nil {
				return err
			}
			if !seeded {
				cmd.Println("Store already has employees, nothing to do")
				return nil
			}
			cmd.Println("Sample data loaded")
			return nil
		},
	}
}
