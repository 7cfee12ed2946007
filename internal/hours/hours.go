// Package hours evaluates a weekly open/close schedule against a
// reference instant. Evaluation is pure: no I/O, no clocks, no shared
// state, and malformed schedule entries are skipped rather than
// causing an error.
package hours

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"shopfront/internal/model"
)

// Evaluate determines whether a business is open at the given reference
// instant. The weekday and time of day are taken from ref's location.
//
// A day is open over the half-open interval [open, close): the opening
// minute itself counts as open, the closing minute as closed. When the
// current day yields no answer the schedule is scanned forward up to
// seven days for the next opening; if none exists the business is
// reported as temporarily closed.
func Evaluate(schedule model.WeeklySchedule, ref time.Time) model.OpenStatus {
	day := ref.Weekday()
	current := ref.Hour()*60 + ref.Minute()

	today := dayEntry(schedule, day)
	if open, close, ok := interval(today); ok {
		if current >= open && current < close {
			return model.OpenStatus{
				IsOpen:   true,
				ClosesAt: today.Close,
				Message:  fmt.Sprintf("Open until %s", today.Close),
			}
		}
		if current < open {
			return model.OpenStatus{
				IsOpen:      false,
				OpensAt:     today.Open,
				NextOpenDay: day.String(),
				Message:     fmt.Sprintf("Closed • Opens today at %s", today.Open),
			}
		}
	}

	// Past closing or no interval today: find the next open day.
	for offset := 1; offset <= 7; offset++ {
		next := (day + time.Weekday(offset)) % 7
		entry := dayEntry(schedule, next)
		if _, _, ok := interval(entry); !ok {
			continue
		}

		when := "on " + next.String()
		if offset == 1 {
			when = "tomorrow"
		}
		return model.OpenStatus{
			IsOpen:      false,
			OpensAt:     entry.Open,
			NextOpenDay: next.String(),
			Message:     fmt.Sprintf("Closed • Opens %s at %s", when, entry.Open),
		}
	}

	return model.OpenStatus{
		IsOpen:  false,
		Message: "Temporarily closed",
	}
}

// dayEntry resolves a weekday's schedule entry. Key casing is not
// trusted: listing fixtures arrive with both "Monday" and "monday".
func dayEntry(schedule model.WeeklySchedule, day time.Weekday) model.DayHours {
	if d, ok := schedule[day.String()]; ok {
		return d
	}
	for name, d := range schedule {
		if strings.EqualFold(name, day.String()) {
			return d
		}
	}
	return model.DayHours{}
}

// interval resolves a day's opening interval in minutes since midnight.
// Days marked closed, days missing either bound, and days with
// unparseable times contribute no interval.
func interval(d model.DayHours) (open, close int, ok bool) {
	if d.Closed || d.Open == "" || d.Close == "" {
		return 0, 0, false
	}

	open, ok = parseClock(d.Open)
	if !ok {
		return 0, 0, false
	}
	close, ok = parseClock(d.Close)
	if !ok {
		return 0, 0, false
	}
	return open, close, true
}

// parseClock converts a 12-hour clock string such as "9:00 AM" to
// minutes since midnight. The meridiem is case-insensitive. Malformed
// input returns ok=false rather than an error so callers can fail soft.
func parseClock(s string) (int, bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, false
	}

	meridiem := strings.ToUpper(fields[1])
	if meridiem != "AM" && meridiem != "PM" {
		return 0, false
	}

	parts := strings.Split(fields[0], ":")
	if len(parts) != 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, false
	}

	hour = hour % 12
	if meridiem == "PM" {
		hour += 12
	}

	return hour*60 + minute, true
}
