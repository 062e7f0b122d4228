package planner

import (
	"fmt"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/course"
)

// Overlaps reports whether two meetings collide: they share at least one day
// and their [start, end) intervals intersect. The half-open interval means a
// meeting ending at 10:00 does not conflict with one starting at 10:00.
// Asynchronous meetings never overlap anything.
func Overlaps(a, b course.Meeting) bool {
	if a.Asynchronous() || b.Asynchronous() {
		return false
	}
	if !shareDay(a.Days, b.Days) {
		return false
	}
	return a.Start < b.End && b.Start < a.End
}

func shareDay(a, b []course.Day) bool {
	for _, da := range a {
		for _, db := range b {
			if da == db {
				return true
			}
		}
	}
	return false
}

// overlapsAny checks one new meeting against everything already committed to
// a partial schedule, bailing on the first hit. Called once per candidate
// meeting per branch, so it stays O(len(acc)).
func overlapsAny(acc []course.Meeting, m course.Meeting) bool {
	for _, existing := range acc {
		if Overlaps(existing, m) {
			return true
		}
	}
	return false
}

// TimeWindow bounds every meeting of a schedule to a daily earliest/latest
// range. The zero value for either side means unbounded, matching the
// planner's web-form heritage where an unset field arrived as 0.
type TimeWindow struct {
	Earliest course.Minutes
	Latest   course.Minutes
}

// InvalidWindowError reports an earliest bound at or after the latest bound.
type InvalidWindowError struct {
	Earliest course.Minutes
	Latest   course.Minutes
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("invalid time window: earliest %s is not before latest %s",
		e.Earliest.Clock(), e.Latest.Clock())
}

// Validate rejects a window whose bounds are inverted. Checked before any
// search begins.
func (w TimeWindow) Validate() error {
	if w.Earliest > 0 && w.Latest > 0 && w.Earliest >= w.Latest {
		return &InvalidWindowError{Earliest: w.Earliest, Latest: w.Latest}
	}
	return nil
}

// Unbounded reports whether the window imposes no constraint.
func (w TimeWindow) Unbounded() bool {
	return w.Earliest == 0 && w.Latest == 0
}

// Contains reports whether the meeting fits entirely inside the window.
// Asynchronous meetings always fit.
func (w TimeWindow) Contains(m course.Meeting) bool {
	if m.Asynchronous() {
		return true
	}
	if w.Earliest > 0 && m.Start < w.Earliest {
		return false
	}
	if w.Latest > 0 && m.End > w.Latest {
		return false
	}
	return true
}

// ParseWindow builds a window from optional clock strings like "9:00" or
// "4:30 PM". Empty strings leave that side unbounded. The window is
// validated before it is returned.
func ParseWindow(earliest, latest string) (TimeWindow, error) {
	var w TimeWindow
	if earliest != "" {
		m, err := course.ParseClock(earliest)
		if err != nil {
			return w, fmt.Errorf("invalid earliest time: %w", err)
		}
		w.Earliest = m
	}
	if latest != "" {
		m, err := course.ParseClock(latest)
		if err != nil {
			return w, fmt.Errorf("invalid latest time: %w", err)
		}
		w.Latest = m
	}
	if err := w.Validate(); err != nil {
		return w, err
	}
	return w, nil
}

// fitsWindow reports whether every meeting of the section fits the window.
func fitsWindow(s course.Section, w TimeWindow) bool {
	if w.Unbounded() {
		return true
	}
	for _, m := range s.Meetings {
		if !w.Contains(m) {
			return false
		}
	}
	return true
}
