package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		delimiter byte
		want      []string
	}{
		{"plain", "a,b,c", ',', []string{"a", "b", "c"}},
		{"trims fields", " a , b ", ',', []string{"a", "b"}},
		{"quoted delimiter", `a,"b,c",d`, ',', []string{"a", "b,c", "d"}},
		{"tab delimited", "a\tb\tc", '\t', []string{"a", "b", "c"}},
		{"comma inside tab fields", "a,x\tb", '\t', []string{"a,x", "b"}},
		{"trailing empty field", "a,b,", ',', []string{"a", "b", ""}},
		{"single field", "abc", ',', []string{"abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLine(tt.line, tt.delimiter))
		})
	}
}

func TestDetectDelimiter(t *testing.T) {
	assert.Equal(t, byte(','), detectDelimiter([]string{"a,b,c", "d,e,f"}))
	assert.Equal(t, byte('\t'), detectDelimiter([]string{"a\tb\tc", "d\te\tf"}))

	// Ties go to comma; tab must be strictly more frequent.
	assert.Equal(t, byte(','), detectDelimiter([]string{"a,b\tc"}))
	assert.Equal(t, byte(','), detectDelimiter([]string{""}))
}

func TestResolveColumnsScoring(t *testing.T) {
	m, score := resolveColumns([]string{"Employee ID", "Name", "Start Date", "End Date", "Destination"})
	assert.Equal(t, 5, score)
	require.NotNil(t, m.EmployeeID)
	assert.Equal(t, 0, *m.EmployeeID)
	require.NotNil(t, m.Name)
	assert.Equal(t, 1, *m.Name)
	require.NotNil(t, m.StartDate)
	require.NotNil(t, m.EndDate)
	require.NotNil(t, m.Destination)
	assert.Nil(t, m.Location)
	assert.Nil(t, m.Purpose)
}

func TestResolveColumnsLocationPhrases(t *testing.T) {
	// "Branch" is the location column; a later bare "Location" then counts
	// as a destination phrase.
	m, _ := resolveColumns([]string{"Employee ID", "Branch", "Location", "Start Date", "End Date"})
	require.NotNil(t, m.Location)
	assert.Equal(t, 1, *m.Location)
	require.NotNil(t, m.Destination)
	assert.Equal(t, 2, *m.Destination)
}

func TestDetectHeaderWindow(t *testing.T) {
	lines := []string{"junk", "more junk", "Employee ID,Name,Start Date,End Date", "EMP001,John,2026-01-01,2026-01-02"}
	m, idx, ok := detectHeader(lines, ',')
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	require.NotNil(t, m.EmployeeID)

	// A qualifying row past line 30 is never considered.
	far := make([]string, 0, 35)
	for i := 0; i < 32; i++ {
		far = append(far, "x")
	}
	far = append(far, "Employee ID,Name,Start Date,End Date")
	_, _, ok = detectHeader(far, ',')
	assert.False(t, ok)
}

func TestColumnMapFieldDefaults(t *testing.T) {
	m := positionalColumnMap()
	row := parseLine("EMP001,,2026-01-01", ',')

	assert.Equal(t, "EMP001", m.field(row, m.EmployeeID, ""))
	assert.Equal(t, "New Employee", m.field(row, m.Name, "New Employee"))
	assert.Equal(t, "Unknown", m.field(row, m.Destination, "Unknown"))
	assert.Equal(t, "", m.field(row, m.EndDate, ""))
}

func TestSampleFilesRoundTripThroughImport(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	// The travel sample provisions its employees, the leave sample then
	// reuses three ids it does not know.
	travel := svc.ImportTravel(context.Background(), svc.SampleTravelCSV(), "all", "")
	assert.True(t, travel.Success)
	assert.Equal(t, 9, travel.Imported)
	assert.Equal(t, 3, travel.AutoCreated)

	leave := svc.ImportLeave(context.Background(), svc.SampleLeaveCSV(), "all", "")
	assert.True(t, leave.Success)
	assert.Equal(t, 0, leave.Imported)
	assert.Len(t, leave.Errors, 3)

	require.True(t, strings.Contains(leave.Errors[0], "EMP004"))
}
