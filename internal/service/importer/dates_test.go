package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	logger := discardLogger()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already normalized", "2026-02-05", "2026-02-05"},
		{"iso with slashes", "2026/2/5", "2026-02-05"},
		{"iso needs padding", "2026-2-5", "2026-02-05"},
		{"numeric month first", "10 8, 2026", "2026-10-08"},
		{"numeric swapped when first exceeds twelve", "13 8, 2026", "2026-08-13"},
		{"numeric without comma", "3 7 2026", "2026-03-07"},
		{"ambiguous both small stays month first", "8 5, 2026", "2026-08-05"},
		{"spelled out month", "Feb 5, 2026", "2026-02-05"},
		{"european spelled out", "5 February 2026", "2026-02-05"},
		{"dotted", "05.02.2026", "2026-02-05"},
		{"unparseable returned unchanged", "next Tuesday", "next Tuesday"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeDate(logger, tt.in))
		})
	}
}
