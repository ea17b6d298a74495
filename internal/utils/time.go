package utils

import (
	"fmt"
	"time"

	"github.com/imfreehq/imfree/internal/constants"
)

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// Today returns today's date string (YYYY-MM-DD) in local time.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// FormatTime12 renders an HH:MM time for display ("9:00 AM"). Invalid input
// is returned unchanged so display code never has to branch on errors.
func FormatTime12(timeStr string) string {
	t, err := ParseTime(timeStr)
	if err != nil {
		return timeStr
	}
	return t.Format("3:04 PM")
}

// FormatDateLong renders a date for display ("January 6, 2025 - Monday").
func FormatDateLong(dateStr string) string {
	d, err := ParseDate(dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%s - %s", d.Format("January 2, 2006"), d.Weekday())
}

// FormatDateShort renders a compact date for grid headers ("Mon Jan 6").
func FormatDateShort(dateStr string) string {
	d, err := ParseDate(dateStr)
	if err != nil {
		return dateStr
	}
	return d.Format("Mon Jan 2")
}

// FormatDateTime combines the long date and 12-hour time for display.
func FormatDateTime(dateStr, timeStr string) string {
	return fmt.Sprintf("%s at %s", FormatDateLong(dateStr), FormatTime12(timeStr))
}
