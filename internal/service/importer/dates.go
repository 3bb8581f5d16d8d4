package importer

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDatePattern     = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)
	numericDatePattern = regexp.MustCompile(`^(\d{1,2})\s+(\d{1,2}),?\s+(\d{4})$`)
)

// genericDateLayouts is tried last, for exports with spelled-out months.
var genericDateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"02.01.2006",
	"2006-01-02T15:04:05",
}

// normalizeDate reformats heterogeneous date encodings to zero-padded
// YYYY-MM-DD. Two bare numeric groups are read as month then day, swapped
// when the first exceeds 12. Unrecognized input is logged and returned
// unchanged.
func normalizeDate(logger *slog.Logger, raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return value
	}

	if m := isoDatePattern.FindStringSubmatch(value); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	}

	if m := numericDatePattern.FindStringSubmatch(value); m != nil {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])

		month, day := first, second
		if first > 12 {
			month, day = second, first
		}
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	}

	for _, layout := range genericDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02")
		}
	}

	logger.Warn("could not normalize date, keeping raw value", "date", raw)
	return value
}
