package handler

import "time"

const (
	// TimeFormat is the standard time format for API responses (RFC3339)
	TimeFormat = time.RFC3339
	// DateFormat is used for article publication dates, which carry no time of day.
	DateFormat = time.DateOnly
)
