package attendance

import "time"

// Record is one employee-day attendance entry. Date is a plain calendar date
// in zero-padded ISO form ("2026-02-05"); keeping it as a string makes range
// queries simple lexicographic comparisons and avoids timezone day shifts.
//
// At most one record exists per (canonical employee id, date) pair; inserts
// targeting an existing pair update it in place.
type Record struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employeeId"`
	Date        string     `json:"date"`
	Status      string     `json:"status"`
	Note        string     `json:"note,omitempty"`
	Country     string     `json:"country,omitempty"`
	Destination string     `json:"destination,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
