package utils

import (
	"time"

	"cloud.google.com/go/civil"
)

// DateToTime maps a calendar date to UTC midnight for date columns.
func DateToTime(d *civil.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.In(time.UTC)
	return &t
}

// ParseDate accepts YYYY-MM-DD and returns nil for anything else.
func ParseDate(s string) *civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		return nil
	}
	return &d
}
