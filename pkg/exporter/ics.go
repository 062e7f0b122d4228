// Package exporter writes a generated schedule to calendar and spreadsheet
// formats.
package exporter

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/planner"
)

// termWeeks is how many weekly repeats each meeting event carries, roughly
// one semester.
const termWeeks = 12

// GenerateICS writes the schedule as an ICS calendar. Meetings are weekly,
// so each one becomes a recurring event in the week starting at weekStart
// (any time in that week works; it is rolled back to Monday). Asynchronous
// meetings produce no events.
func GenerateICS(s planner.Schedule, weekStart time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	loc, err := time.LoadLocation("America/Toronto")
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}
	monday := startOfWeek(weekStart.In(loc))

	for _, sec := range s.Sections {
		for i, m := range sec.Meetings {
			if m.Asynchronous() {
				continue
			}
			for _, d := range m.Days {
				day := monday.AddDate(0, 0, d.Index())
				start := day.Add(time.Duration(m.Start) * time.Minute)
				end := day.Add(time.Duration(m.End) * time.Minute)

				event := cal.AddEvent(fmt.Sprintf("%s-%s-%d", sec.ID, d, i))
				event.SetCreatedTime(time.Now())
				event.SetDtStampTime(time.Now())
				event.SetModifiedAt(time.Now())
				event.SetStartAt(start)
				event.SetEndAt(end)
				event.SetSummary(fmt.Sprintf("%s %s", sec.Course, sec.Component))
				event.SetLocation(m.Location)
				event.SetDescription(fmt.Sprintf("Section: %s", sec.ID))
				event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;COUNT=%d", termWeeks))
			}
		}
	}

	return cal.SerializeTo(w)
}

// startOfWeek rolls a time back to midnight on its Monday.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	day := t.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}
