package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/officetrack/attendance-tracker-go/internal/domain/importer"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	Format     string
	Scope      string
	ScopeValue string
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a travel or leave CSV export",
		Long: `Import attendance from an external CSV export.

Supported formats:
  travel  booking exports; delimiter and header layout are detected,
          unknown employees are provisioned automatically
  leave   HR leave exports with the fixed six-column layout

Example:
  attendanced import --format travel bookings.csv
  attendanced import --format leave --scope location --scope-value LDN leave.csv`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "travel", "file format (travel|leave)")
	cmd.Flags().StringVar(&opts.Scope, "scope", string(importer.ScopeAll), "import scope (all|location|employee)")
	cmd.Flags().StringVar(&opts.ScopeValue, "scope-value", "", "location code or employee id when scope is not all")

	return cmd
}

func runImport(ctx context.Context, opts *ImportOptions, path string, cmd *cobra.Command) error {
	scope := importer.Scope(opts.Scope)
	if !scope.Valid() {
		return fmt.Errorf("invalid scope %q: must be all, location or employee", opts.Scope)
	}
	if scope != importer.ScopeAll && opts.ScopeValue == "" {
		return fmt.Errorf("--scope-value is required when scope is %s", scope)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, opts.RootOptions)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	var result importer.Result
	switch opts.Format {
	case "travel":
		result = a.ImporterService.ImportTravel(ctx, string(content), scope, opts.ScopeValue)
	case "leave":
		result = a.ImporterService.ImportLeave(ctx, string(content), scope, opts.ScopeValue)
	default:
		return fmt.Errorf("invalid format %q: must be travel or leave", opts.Format)
	}

	if !result.Success {
		return fmt.Errorf("import failed: %v", result.Errors)
	}

	cmd.Printf("Imported %d records, auto-created %d employees\n", result.Imported, result.AutoCreated)
	for _, e := range result.Errors {
		cmd.Printf("  %s\n", e)
	}
	return nil
}
