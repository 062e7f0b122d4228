package planner

import (
	"errors"
	"testing"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/course"
)

func mtg(days []course.Day, start, end course.Minutes) course.Meeting {
	return course.Meeting{Days: days, Start: start, End: end}
}

func TestOverlaps(t *testing.T) {
	mon910 := mtg([]course.Day{course.Monday}, 540, 600)
	mon930 := mtg([]course.Day{course.Monday}, 570, 630)
	mon1011 := mtg([]course.Day{course.Monday}, 600, 660)
	tue910 := mtg([]course.Day{course.Tuesday}, 540, 600)
	monWed := mtg([]course.Day{course.Monday, course.Wednesday}, 540, 600)

	if !Overlaps(mon910, mon930) {
		t.Errorf("overlapping Monday meetings should conflict")
	}
	if Overlaps(mon910, tue910) {
		t.Errorf("same times on different days should not conflict")
	}
	if Overlaps(mon910, mon1011) {
		t.Errorf("back-to-back meetings must not conflict: [start, end) is half-open")
	}
	if !Overlaps(monWed, mon930) {
		t.Errorf("multi-day meeting should conflict on its shared day")
	}
}

func TestOverlapsSymmetry(t *testing.T) {
	pairs := [][2]course.Meeting{
		{mtg([]course.Day{course.Monday}, 540, 600), mtg([]course.Day{course.Monday}, 570, 630)},
		{mtg([]course.Day{course.Monday}, 540, 600), mtg([]course.Day{course.Tuesday}, 540, 600)},
		{mtg([]course.Day{course.Friday}, 480, 540), mtg([]course.Day{course.Friday}, 540, 600)},
	}
	for _, p := range pairs {
		if Overlaps(p[0], p[1]) != Overlaps(p[1], p[0]) {
			t.Errorf("Overlaps must be symmetric for %v vs %v", p[0], p[1])
		}
	}
}

func TestOverlapsSelf(t *testing.T) {
	m := mtg([]course.Day{course.Wednesday}, 600, 660)
	if !Overlaps(m, m) {
		t.Errorf("a non-empty meeting must overlap itself")
	}
}

func TestOverlapsAsynchronous(t *testing.T) {
	async := course.Meeting{}
	m := mtg([]course.Day{course.Monday}, 540, 600)
	if Overlaps(async, m) || Overlaps(m, async) || Overlaps(async, async) {
		t.Errorf("asynchronous meetings must never conflict")
	}
}

func TestTimeWindowValidate(t *testing.T) {
	if err := (TimeWindow{}).Validate(); err != nil {
		t.Errorf("unbounded window should validate, got %v", err)
	}
	if err := (TimeWindow{Earliest: 540, Latest: 1020}).Validate(); err != nil {
		t.Errorf("9:00-17:00 window should validate, got %v", err)
	}

	err := (TimeWindow{Earliest: 1020, Latest: 540}).Validate()
	if err == nil {
		t.Fatalf("inverted window must fail validation")
	}
	var iw *InvalidWindowError
	if !errors.As(err, &iw) {
		t.Errorf("expected *InvalidWindowError, got %T", err)
	}
}

func TestTimeWindowContains(t *testing.T) {
	w := TimeWindow{Earliest: 540, Latest: 1020}

	in := mtg([]course.Day{course.Monday}, 540, 600)
	early := mtg([]course.Day{course.Monday}, 480, 540)
	late := mtg([]course.Day{course.Monday}, 1000, 1080)
	async := course.Meeting{}

	if !w.Contains(in) {
		t.Errorf("meeting inside the window should pass")
	}
	if w.Contains(early) {
		t.Errorf("meeting before the earliest bound should fail")
	}
	if w.Contains(late) {
		t.Errorf("meeting past the latest bound should fail")
	}
	if !w.Contains(async) {
		t.Errorf("asynchronous meetings always fit")
	}
	if !(TimeWindow{}).Contains(early) {
		t.Errorf("unbounded window should pass everything")
	}
}
