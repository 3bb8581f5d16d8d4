package fixtures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleEmployeesAreUnique(t *testing.T) {
	employees := SampleEmployees()
	require.Len(t, employees, 13)

	seen := map[string]bool{}
	for _, emp := range employees {
		assert.False(t, seen[emp.ID], "duplicate id %s", emp.ID)
		seen[emp.ID] = true
		assert.NotEmpty(t, emp.Name)
		assert.NotEmpty(t, emp.Location)
	}
}

func TestSampleAttendanceIsDeterministic(t *testing.T) {
	now := time.Date(2026, time.February, 18, 12, 0, 0, 0, time.UTC)

	first := SampleAttendance(now)
	second := SampleAttendance(now)
	assert.Equal(t, first, second)
	require.NotEmpty(t, first)

	for _, rec := range first {
		day, err := time.Parse("2006-01-02", rec.Date)
		require.NoError(t, err)
		assert.NotEqual(t, time.Saturday, day.Weekday())
		assert.NotEqual(t, time.Sunday, day.Weekday())
		assert.Equal(t, time.February, day.Month())
		assert.False(t, day.After(now))
	}
}
