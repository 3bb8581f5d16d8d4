package attendance

import "errors"

var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrInvalidDate    = errors.New("date must be a calendar date in YYYY-MM-DD form")
	ErrInvalidRange   = errors.New("end date must not be before start date")
)
