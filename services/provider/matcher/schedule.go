// Package matcher holds the pure temporal and geographic predicates used to
// decide whether a provider can serve a trip.
package matcher

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/piresc/optimat/internal/pkg/models"
)

const (
	minutesPerDay = 24 * 60
	daysPerWeek   = 7
)

// window is a schedule entry reduced to a weekday set and minute bounds
type window struct {
	days  [daysPerWeek]bool
	start int
	end   int // >= minutesPerDay when the window runs past midnight
}

func (w window) covers(t time.Time) bool {
	if !w.days[weekdayIndex(t.Weekday())] {
		return false
	}
	m := t.Hour()*60 + t.Minute()
	if w.end >= minutesPerDay {
		return m >= w.start || m <= w.end-minutesPerDay
	}
	return w.start <= m && m <= w.end
}

// weekdayIndex converts time.Weekday (Sunday first) to a Monday-first index
func weekdayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % daysPerWeek
}

// ParseSchedule decodes a stored service_hours document
func ParseSchedule(raw []byte) (models.ScheduleSpec, error) {
	var spec models.ScheduleSpec
	if len(raw) == 0 {
		return spec, fmt.Errorf("empty schedule")
	}
	if err := json.Unmarshal(raw, &spec); err != nil {
		return spec, fmt.Errorf("invalid schedule: %w", err)
	}
	return spec, nil
}

// ScheduleMatches reports whether a single entry of schedule covers both the
// departure and the return instant, evaluated in loc. Malformed entries are
// skipped.
func ScheduleMatches(schedule models.ScheduleSpec, departure, ret time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	dep := departure.In(loc)
	back := ret.In(loc)

	for _, entry := range schedule.Hours {
		w, err := parseEntry(entry)
		if err != nil {
			continue
		}
		if w.covers(dep) && w.covers(back) {
			return true
		}
	}
	return false
}

func parseEntry(e models.ScheduleEntry) (window, error) {
	var w window
	if len(e.Day) != daysPerWeek {
		return w, fmt.Errorf("day mask %q must have %d characters", e.Day, daysPerWeek)
	}
	for i := 0; i < daysPerWeek; i++ {
		switch e.Day[i] {
		case '1':
			w.days[i] = true
		case '0':
		default:
			return w, fmt.Errorf("day mask %q contains %q", e.Day, e.Day[i])
		}
	}

	start, err := parseHHMM(e.Start, false)
	if err != nil {
		return w, fmt.Errorf("start: %w", err)
	}
	end, err := parseHHMM(e.End, true)
	if err != nil {
		return w, fmt.Errorf("end: %w", err)
	}
	w.start, w.end = start, end
	return w, nil
}

// parseHHMM returns minutes since midnight. When nextDay is allowed, hours
// 24..47 denote the following day.
func parseHHMM(s string, nextDay bool) (int, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("time %q is not HHMM", s)
	}
	for i := 0; i < 4; i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("time %q is not HHMM", s)
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[2]-'0')*10 + int(s[3]-'0')

	if minute > 59 {
		return 0, fmt.Errorf("time %q has minute out of range", s)
	}
	h := hour
	if nextDay && hour >= 24 {
		h = hour - 24
	}
	if h > 23 {
		return 0, fmt.Errorf("time %q has hour out of range", s)
	}
	return hour*60 + minute, nil
}
