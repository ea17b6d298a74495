// Package grid turns an event's date and time ranges into the discrete slot
// grid that availability is recorded against. Generation is pure and
// deterministic: the same ranges always produce the same grid.
package grid

import (
	"fmt"
	"time"

	"github.com/imfreehq/imfree/internal/constants"
)

// Grid is the ordered cross product of an event's calendar dates and its
// fixed-width time-of-day slots. It is derived on demand and never stored.
type Grid struct {
	Dates []string // YYYY-MM-DD, ascending, inclusive of both range ends
	Times []string // HH:MM, ascending, half-open [startTime, endTime)
}

// Generate builds the slot grid for the given ranges. Malformed inputs fail
// with an invalid-input error. Inverted ranges are not an error: endDate
// before startDate yields no dates, endTime at or before startTime yields no
// time slots, matching how the rest of the app treats empty grids.
func Generate(startDate, endDate, startTime, endTime string) (Grid, error) {
	dates, err := DateRange(startDate, endDate)
	if err != nil {
		return Grid{}, err
	}
	times, err := TimeSlots(startTime, endTime)
	if err != nil {
		return Grid{}, err
	}
	return Grid{Dates: dates, Times: times}, nil
}

// DateRange enumerates every calendar date from start to end inclusive.
func DateRange(startDate, endDate string) ([]string, error) {
	start, err := time.Parse(constants.DateFormat, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q (expected YYYY-MM-DD): %w", startDate, err)
	}
	end, err := time.Parse(constants.DateFormat, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q (expected YYYY-MM-DD): %w", endDate, err)
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(constants.DateFormat))
	}
	return dates, nil
}

// TimeSlots enumerates 30-minute slots from startTime up to, but excluding,
// endTime. Slots align to startTime's own minute value: a 09:15 start yields
// 09:15, 09:45 and so on.
func TimeSlots(startTime, endTime string) ([]string, error) {
	start, err := time.Parse(constants.TimeFormat, startTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q (expected HH:MM): %w", startTime, err)
	}
	end, err := time.Parse(constants.TimeFormat, endTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %q (expected HH:MM): %w", endTime, err)
	}

	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()

	var slots []string
	for m := startMin; m < endMin; m += constants.SlotStepMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots, nil
}

// Contains reports whether the (date, time) pair is a cell of the grid.
func (g Grid) Contains(date, timeOfDay string) bool {
	foundDate := false
	for _, d := range g.Dates {
		if d == date {
			foundDate = true
			break
		}
	}
	if !foundDate {
		return false
	}
	for _, t := range g.Times {
		if t == timeOfDay {
			return true
		}
	}
	return false
}
