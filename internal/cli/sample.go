package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	importerservice "github.com/officetrack/attendance-tracker-go/internal/service/importer"
)

// NewSampleCommand creates the sample command. It needs no store, so it
// builds the importer directly.
func NewSampleCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "sample <travel|leave>",
		Short:         "Print a sample CSV for an import format",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := importerservice.NewImporterService(nil, nil, slog.Default())
			switch args[0] {
			case "travel":
				cmd.Println(svc.SampleTravelCSV())
			case "leave":
				cmd.Println(svc.SampleLeaveCSV())
			default:
				return fmt.Errorf("unknown format %q: must be travel or leave", args[0])
			}
			return nil
		},
	}
}
