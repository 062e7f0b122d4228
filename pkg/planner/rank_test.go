package planner

import (
	"reflect"
	"testing"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/course"
)

// Three schedules with distinct gap and day profiles.
func rankFixture() []Schedule {
	// Two days, 120 min of gaps.
	gappy := Schedule{Sections: []course.Section{
		sec("A*1000", course.Lecture, "A*1000*0101", mtg([]course.Day{course.Monday}, 540, 600)),
		sec("B*1000", course.Lecture, "B*1000*0101", mtg([]course.Day{course.Monday}, 720, 780)),
		sec("C*1000", course.Lecture, "C*1000*0101", mtg([]course.Day{course.Wednesday}, 540, 600)),
	}}
	// Two days, no gaps.
	tight := Schedule{Sections: []course.Section{
		sec("A*1000", course.Lecture, "A*1000*0102", mtg([]course.Day{course.Monday}, 540, 600)),
		sec("B*1000", course.Lecture, "B*1000*0102", mtg([]course.Day{course.Monday}, 600, 660)),
		sec("C*1000", course.Lecture, "C*1000*0102", mtg([]course.Day{course.Wednesday}, 540, 600)),
	}}
	// Three days, no gaps.
	spread := Schedule{Sections: []course.Section{
		sec("A*1000", course.Lecture, "A*1000*0103", mtg([]course.Day{course.Monday}, 540, 600)),
		sec("B*1000", course.Lecture, "B*1000*0103", mtg([]course.Day{course.Tuesday}, 540, 600)),
		sec("C*1000", course.Lecture, "C*1000*0103", mtg([]course.Day{course.Wednesday}, 540, 600)),
	}}
	return []Schedule{gappy, tight, spread}
}

func firstIDs(ranked []Ranked) []string {
	ids := make([]string, len(ranked))
	for i, r := range ranked {
		ids[i] = r.Schedule.Sections[0].ID
	}
	return ids
}

func TestRankMinimalGaps(t *testing.T) {
	ranked := Rank(rankFixture(), MinimalGaps)
	// tight (0 gap, 2 days) before spread (0 gap, 3 days) before gappy (120).
	want := []string{"A*1000*0102", "A*1000*0103", "A*1000*0101"}
	if got := firstIDs(ranked); !reflect.DeepEqual(got, want) {
		t.Errorf("minimal-gaps order = %v, want %v", got, want)
	}
}

func TestRankFewerDays(t *testing.T) {
	ranked := Rank(rankFixture(), FewerDays)
	// tight (2 days, 0 gap) before gappy (2 days, 120 gap) before spread (3 days).
	want := []string{"A*1000*0102", "A*1000*0101", "A*1000*0103"}
	if got := firstIDs(ranked); !reflect.DeepEqual(got, want) {
		t.Errorf("fewer-days order = %v, want %v", got, want)
	}
}

func TestRankStableOnTies(t *testing.T) {
	a := Schedule{Sections: []course.Section{
		sec("A*1000", course.Lecture, "A*1000*0101", mtg([]course.Day{course.Monday}, 540, 600)),
	}}
	b := Schedule{Sections: []course.Section{
		sec("A*1000", course.Lecture, "A*1000*0102", mtg([]course.Day{course.Tuesday}, 540, 600)),
	}}

	ranked := Rank([]Schedule{a, b}, MinimalGaps)
	if ranked[0].Schedule.Sections[0].ID != "A*1000*0101" {
		t.Errorf("equal-score schedules must keep generation order")
	}
}

func TestRankIdempotent(t *testing.T) {
	once := Rank(rankFixture(), Balanced)

	schedules := make([]Schedule, len(once))
	for i, r := range once {
		schedules[i] = r.Schedule
	}
	twice := Rank(schedules, Balanced)

	if !reflect.DeepEqual(firstIDs(once), firstIDs(twice)) {
		t.Errorf("ranking an already-ranked list changed the order: %v vs %v",
			firstIDs(once), firstIDs(twice))
	}
}

func TestRankDropsNothing(t *testing.T) {
	in := rankFixture()
	for _, p := range Policies {
		if got := len(Rank(in, p)); got != len(in) {
			t.Errorf("policy %s dropped schedules: %d of %d survived", p.Name, got, len(in))
		}
	}
	if len(in) != 3 {
		t.Errorf("Rank must not modify its input, len = %d", len(in))
	}
}

func TestPolicyByName(t *testing.T) {
	for _, p := range Policies {
		got, err := PolicyByName(p.Name)
		if err != nil {
			t.Errorf("PolicyByName(%q) failed: %v", p.Name, err)
		}
		if got.Name != p.Name {
			t.Errorf("PolicyByName(%q) returned %q", p.Name, got.Name)
		}
	}
	if _, err := PolicyByName("chronological"); err == nil {
		t.Errorf("unknown policy name should fail")
	}
}

func TestRankLateStart(t *testing.T) {
	early := Schedule{Sections: []course.Section{
		sec("A*1000", course.Lecture, "A*1000*0101", mtg([]course.Day{course.Monday}, 480, 540)),
	}}
	late := Schedule{Sections: []course.Section{
		sec("A*1000", course.Lecture, "A*1000*0102", mtg([]course.Day{course.Monday}, 720, 780)),
	}}

	ranked := Rank([]Schedule{early, late}, LateStart)
	if ranked[0].Schedule.Sections[0].ID != "A*1000*0102" {
		t.Errorf("late-start should rank the noon schedule first")
	}
	ranked = Rank([]Schedule{early, late}, EarlyStart)
	if ranked[0].Schedule.Sections[0].ID != "A*1000*0101" {
		t.Errorf("early-start should rank the 8 AM schedule first")
	}
}
