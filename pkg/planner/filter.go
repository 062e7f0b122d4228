package planner

import (
	"github.com/ASHRREAL/guelph-schedule-generator/pkg/course"
)

// KeepDaysOff returns only the schedules with no meetings on any of the
// given days. With no days requested, the input is returned as-is.
func KeepDaysOff(schedules []Schedule, daysOff []course.Day) []Schedule {
	if len(daysOff) == 0 {
		return schedules
	}
	off := make(map[course.Day]bool, len(daysOff))
	for _, d := range daysOff {
		off[d] = true
	}

	var kept []Schedule
	for _, s := range schedules {
		if !meetsOnAny(s, off) {
			kept = append(kept, s)
		}
	}
	return kept
}

func meetsOnAny(s Schedule, days map[course.Day]bool) bool {
	for _, sec := range s.Sections {
		for _, m := range sec.Meetings {
			for _, d := range m.Days {
				if days[d] {
					return true
				}
			}
		}
	}
	return false
}

// KeepMinDaysOff returns only the schedules with at least n free weekdays
// (Monday through Friday). n <= 0 keeps everything.
func KeepMinDaysOff(schedules []Schedule, n int) []Schedule {
	if n <= 0 {
		return schedules
	}

	var kept []Schedule
	for _, s := range schedules {
		w := weekOf(s)
		busy := 0
		for _, d := range []course.Day{course.Monday, course.Tuesday, course.Wednesday, course.Thursday, course.Friday} {
			if len(w[d.Index()]) > 0 {
				busy++
			}
		}
		if 5-busy >= n {
			kept = append(kept, s)
		}
	}
	return kept
}
