package importer

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Golden files pin the sample downloads; the frontend links to them
// verbatim, so any change here is a user-visible change.
func TestSampleTravelCSVGolden(t *testing.T) {
	svc := NewImporterService(nil, nil, discardLogger())

	g := goldie.New(t)
	g.Assert(t, "sample_travel", []byte(svc.SampleTravelCSV()))
}

func TestSampleLeaveCSVGolden(t *testing.T) {
	svc := NewImporterService(nil, nil, discardLogger())

	g := goldie.New(t)
	g.Assert(t, "sample_leave", []byte(svc.SampleLeaveCSV()))
}
