package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNoWorkingDays  = errors.New("no working days configured")
	ErrUnknownWeekday = errors.New("unknown weekday name")
	ErrInvalidHours   = errors.New("working hours must be HH:MM with start before end")
)

// Status classifies the restaurant's working window against an instant.
type Status int

const (
	StatusClosedToday Status = iota
	StatusNotYetOpen
	StatusOpen
	StatusClosingSoon
	StatusClosedForToday
)

func (s Status) String() string {
	switch s {
	case StatusClosedToday:
		return "closed-today"
	case StatusNotYetOpen:
		return "not-yet-open"
	case StatusOpen:
		return "open"
	case StatusClosingSoon:
		return "closing-soon"
	case StatusClosedForToday:
		return "closed-for-today"
	default:
		return "unknown"
	}
}

// ClosingSoonLeeway is how close to closing a restaurant still accepts
// orders while being flagged as closing soon.
const ClosingSoonLeeway = 120 * time.Minute

// Window is a restaurant's weekly opening schedule: a set of weekdays plus
// a single daily open interval in local wall-clock minutes.
type Window struct {
	days         [7]bool
	startMinutes int
	endMinutes   int
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sun":       time.Sunday,
	"mon":       time.Monday,
	"tue":       time.Tuesday,
	"wed":       time.Wednesday,
	"thu":       time.Thursday,
	"fri":       time.Friday,
	"sat":       time.Saturday,
}

// ParseWindow builds a Window from the catalog's workingDays names and
// "HH:MM" open/close times.
func ParseWindow(workingDays []string, start, end string) (Window, error) {
	if len(workingDays) == 0 {
		return Window{}, ErrNoWorkingDays
	}

	var w Window
	for _, name := range workingDays {
		day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return Window{}, fmt.Errorf("%w: %q", ErrUnknownWeekday, name)
		}
		w.days[day] = true
	}

	startMin, err := parseHHMM(start)
	if err != nil {
		return Window{}, err
	}
	endMin, err := parseHHMM(end)
	if err != nil {
		return Window{}, err
	}
	if startMin >= endMin {
		return Window{}, ErrInvalidHours
	}

	w.startMinutes = startMin
	w.endMinutes = endMin
	return w, nil
}

func parseHHMM(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHours, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHours, s)
	}
	return h*60 + m, nil
}

// Classify evaluates the window at the given wall-clock instant.
func (w Window) Classify(now time.Time) Status {
	if !w.days[now.Weekday()] {
		return StatusClosedToday
	}

	minutes := now.Hour()*60 + now.Minute()
	switch {
	case minutes < w.startMinutes:
		return StatusNotYetOpen
	case minutes >= w.endMinutes:
		return StatusClosedForToday
	case time.Duration(w.endMinutes-minutes)*time.Minute <= ClosingSoonLeeway:
		return StatusClosingSoon
	default:
		return StatusOpen
	}
}

// AcceptsOrders reports whether checkout submission is permitted at now.
func (w Window) AcceptsOrders(now time.Time) bool {
	s := w.Classify(now)
	return s == StatusOpen || s == StatusClosingSoon
}

// NextOpenDay returns the next weekday after today, in calendar order with
// wraparound, on which the restaurant opens.
func (w Window) NextOpenDay(now time.Time) (time.Weekday, bool) {
	day := now.Weekday()
	for i := 1; i <= 7; i++ {
		candidate := time.Weekday((int(day) + i) % 7)
		if w.days[candidate] {
			return candidate, true
		}
	}
	return time.Sunday, false
}
