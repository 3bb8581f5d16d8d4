package employee

import (
	"strings"
	"time"
)

// Employee is a record in the employee master. ID is the canonical form:
// trimmed, unique case-insensitively across the collection.
type Employee struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Location   string     `json:"location"`
	Department string     `json:"department"`
	Position   string     `json:"position"`
	Role       string     `json:"role"`
	Manager    string     `json:"manager,omitempty"`
	Email      string     `json:"email"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// CanonicalID normalizes an employee id for identity comparison: surrounding
// whitespace and letter case are not significant.
func CanonicalID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// SameID reports whether two employee ids name the same identity.
func SameID(a, b string) bool {
	return CanonicalID(a) == CanonicalID(b)
}
