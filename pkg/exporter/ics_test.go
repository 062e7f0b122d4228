package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/course"
	"github.com/ASHRREAL/guelph-schedule-generator/pkg/planner"
)

func testSchedule() planner.Schedule {
	return planner.Schedule{Sections: []course.Section{
		{
			Course:    "CIS*2750",
			Component: course.Lecture,
			ID:        "CIS*2750*0101",
			Meetings: []course.Meeting{
				{Days: []course.Day{course.Monday, course.Wednesday}, Start: 510, End: 560, Location: "ROZH, Room 104"},
			},
			Seats: -1,
		},
		{
			Course:    "CIS*1300",
			Component: course.DistanceEd,
			ID:        "CIS*1300*DE01",
			Meetings:  []course.Meeting{{Location: "ONLINE"}},
			Seats:     -1,
		},
	}}
}

func TestGenerateICS(t *testing.T) {
	var buf bytes.Buffer
	// 2026-01-12 is a Monday (noon UTC keeps it Monday in Toronto too).
	weekStart := time.Date(2026, 1, 12, 12, 0, 0, 0, time.UTC)
	if err := GenerateICS(testSchedule(), weekStart, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "SUMMARY:CIS*2750 LEC") {
		t.Errorf("expected ICS to contain the course summary, got:\n%s", output)
	}
	if !strings.Contains(output, "LOCATION:ROZH\\, Room 104") && !strings.Contains(output, "LOCATION:ROZH, Room 104") {
		t.Errorf("expected ICS to contain the room location, got:\n%s", output)
	}

	// 12-Jan-2026 08:30 in Toronto is 13:30 UTC.
	if !strings.Contains(output, "DTSTART:20260112T133000Z") {
		t.Errorf("expected Monday start time in UTC, got:\n%s", output)
	}
	// The Wednesday repeat of the same meeting.
	if !strings.Contains(output, "DTSTART:20260114T133000Z") {
		t.Errorf("expected Wednesday start time in UTC, got:\n%s", output)
	}

	if !strings.Contains(output, "RRULE:FREQ=WEEKLY;COUNT=12") {
		t.Errorf("expected weekly recurrence, got:\n%s", output)
	}
	if strings.Contains(output, "CIS*1300") {
		t.Errorf("asynchronous sections must not produce events")
	}
}

func TestGenerateICSRollsBackToMonday(t *testing.T) {
	var buf bytes.Buffer
	// A Thursday in the same week must anchor to Monday the 12th.
	weekStart := time.Date(2026, 1, 15, 17, 30, 0, 0, time.UTC)
	if err := GenerateICS(testSchedule(), weekStart, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}
	if !strings.Contains(buf.String(), "DTSTART:20260112T133000Z") {
		t.Errorf("weekStart should roll back to the Monday of its week")
	}
}
