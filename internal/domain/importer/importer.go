package importer

import "context"

// Scope restricts which rows of an import apply.
type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeLocation Scope = "location"
	ScopeEmployee Scope = "employee"
)

func (s Scope) Valid() bool {
	switch s {
	case ScopeAll, ScopeLocation, ScopeEmployee:
		return true
	}
	return false
}

// Result summarizes one import run. Success is false only when the file
// itself is unusable; row-level problems land in Errors with Success true.
type Result struct {
	Success     bool     `json:"success"`
	Imported    int      `json:"imported"`
	AutoCreated int      `json:"autoCreated"`
	Errors      []string `json:"errors"`
}

// ImporterService ingests the two supported CSV export formats.
type ImporterService interface {
	// ImportTravel parses a travel-booking export. Delimiter and header
	// layout are detected heuristically, and unknown employees are
	// provisioned on the fly.
	ImportTravel(ctx context.Context, content string, scope Scope, scopeValue string) Result

	// ImportLeave parses a leave-system export with its fixed six-column
	// layout. Unknown employees are reported as row errors.
	ImportLeave(ctx context.Context, content string, scope Scope, scopeValue string) Result

	// SampleTravelCSV and SampleLeaveCSV return canonical example files.
	SampleTravelCSV() string
	SampleLeaveCSV() string
}
