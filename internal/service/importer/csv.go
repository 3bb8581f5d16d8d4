package importer

import "strings"

// parseLine splits a line on the delimiter outside double-quote spans.
// Doubled quotes are not unescaped.
func parseLine(line string, delimiter byte) []string {
	result := make([]string, 0, 8)
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == delimiter && !inQuotes:
			result = append(result, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	result = append(result, strings.TrimSpace(current.String()))
	return result
}

// detectDelimiter counts tabs against commas over the first ten non-empty
// lines and picks tab only when it is strictly more frequent.
func detectDelimiter(lines []string) byte {
	tabs, commas := 0, 0
	seen := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tabs += strings.Count(line, "\t")
		commas += strings.Count(line, ",")
		seen++
		if seen >= 10 {
			break
		}
	}
	if tabs > commas {
		return '\t'
	}
	return ','
}

// columnMap holds the resolved column index per semantic field. A nil index
// means the column is absent, which is distinct from index zero.
type columnMap struct {
	EmployeeID  *int
	Name        *int
	Location    *int
	StartDate   *int
	EndDate     *int
	Destination *int
	Purpose     *int
	Country     *int
}

// field returns the trimmed cell for a resolved column, or def when the
// column is absent or the row is too short.
func (m columnMap) field(cols []string, idx *int, def string) string {
	if idx == nil || *idx >= len(cols) {
		return def
	}
	if v := strings.TrimSpace(cols[*idx]); v != "" {
		return v
	}
	return def
}

// positionalColumnMap is the fallback layout when no header row is found:
// columns 0..4 are id, name, start, end, destination.
func positionalColumnMap() columnMap {
	idx := func(i int) *int { return &i }
	return columnMap{
		EmployeeID:  idx(0),
		Name:        idx(1),
		StartDate:   idx(2),
		EndDate:     idx(3),
		Destination: idx(4),
	}
}

type columnMatcher struct {
	slot  func(m *columnMap) **int
	match func(field string) bool
}

func contains(field string, phrase string) bool {
	return strings.Contains(field, phrase)
}

// columnMatchers is evaluated in order per header cell; the first matcher
// whose slot is still unresolved claims the cell. Order matters because
// phrases overlap ("location" names both a branch column and a destination
// column in different exports).
var columnMatchers = []columnMatcher{
	{
		slot: func(m *columnMap) **int { return &m.EmployeeID },
		match: func(f string) bool {
			return contains(f, "employee id") || f == "id"
		},
	},
	{
		slot: func(m *columnMap) **int { return &m.StartDate },
		match: func(f string) bool {
			return contains(f, "leg1 start") || contains(f, "start date") || f == "start"
		},
	},
	{
		slot: func(m *columnMap) **int { return &m.EndDate },
		match: func(f string) bool {
			return contains(f, "leg1 end") || contains(f, "end date") || f == "end"
		},
	},
	{
		slot: func(m *columnMap) **int { return &m.Name },
		match: func(f string) bool {
			return f == "employee" || f == "name" || contains(f, "employee name")
		},
	},
	{
		slot: func(m *columnMap) **int { return &m.Location },
		match: func(f string) bool {
			return contains(f, "branch") || f == "location"
		},
	},
	{
		slot: func(m *columnMap) **int { return &m.Destination },
		match: func(f string) bool {
			return contains(f, "leg1 country") || contains(f, "destination") ||
				contains(f, "travel request name") || contains(f, "location")
		},
	},
	{
		slot: func(m *columnMap) **int { return &m.Purpose },
		match: func(f string) bool {
			return contains(f, "purpose")
		},
	},
	{
		slot: func(m *columnMap) **int { return &m.Country },
		match: func(f string) bool {
			return contains(f, "country")
		},
	},
}

// resolveColumns maps one candidate header row to semantic columns and
// scores it: +2 for employee-id, +1 each for start-date, end-date and name.
func resolveColumns(cols []string) (columnMap, int) {
	var m columnMap
	for i, raw := range cols {
		field := strings.ToLower(strings.TrimSpace(raw))
		if field == "" {
			continue
		}
		for _, cm := range columnMatchers {
			slot := cm.slot(&m)
			if *slot != nil || !cm.match(field) {
				continue
			}
			idx := i
			*slot = &idx
			break
		}
	}

	score := 0
	if m.EmployeeID != nil {
		score += 2
	}
	if m.StartDate != nil {
		score++
	}
	if m.EndDate != nil {
		score++
	}
	if m.Name != nil {
		score++
	}
	return m, score
}

// detectHeader scans up to the first 30 lines for a row scoring at least 3.
// It returns the mapping and the index of the header row, or ok=false when
// no line qualifies and the positional fallback should be used.
func detectHeader(lines []string, delimiter byte) (columnMap, int, bool) {
	limit := len(lines)
	if limit > 30 {
		limit = 30
	}
	for i := 0; i < limit; i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		m, score := resolveColumns(parseLine(lines[i], delimiter))
		if score >= 3 {
			return m, i, true
		}
	}
	return columnMap{}, 0, false
}
