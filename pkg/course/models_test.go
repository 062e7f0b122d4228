package course

import (
	"reflect"
	"testing"
)

func TestMeetingString(t *testing.T) {
	m := Meeting{Days: []Day{Monday, Wednesday}, Start: 510, End: 590}
	if got := m.String(); got != "M/W 8:30 AM - 9:50 AM" {
		t.Errorf("Meeting.String() = %q", got)
	}

	async := Meeting{}
	if got := async.String(); got != "asynchronous" {
		t.Errorf("asynchronous Meeting.String() = %q", got)
	}
	if !async.Asynchronous() {
		t.Errorf("meeting with no days should be asynchronous")
	}
}

func TestComponentOrdering(t *testing.T) {
	if !ComponentLess(Lecture, Lab) {
		t.Errorf("LEC should order before LAB")
	}
	if !ComponentLess(Seminar, Tutorial) {
		t.Errorf("SEM should order before TUT")
	}
	// Unknown components fall back to lexicographic order after known ones.
	if !ComponentLess(Lab, Component("ZZZ")) {
		t.Errorf("known components should order before unknown ones")
	}
	if !ComponentLess(Component("AAA"), Component("ZZZ")) {
		t.Errorf("unknown components should order lexicographically")
	}
}

func TestComponentList(t *testing.T) {
	c := Course{
		Code: "CIS*2750",
		Components: map[Component][]Section{
			Lab:     {{ID: "CIS*2750*0102"}},
			Lecture: {{ID: "CIS*2750*0101"}},
			Seminar: {{ID: "CIS*2750*0103"}},
		},
	}

	got := c.ComponentList()
	want := []Component{Lecture, Seminar, Lab}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComponentList() = %v, want %v", got, want)
	}
}

func TestDayIndex(t *testing.T) {
	for i, d := range Week {
		if d.Index() != i {
			t.Errorf("%s.Index() = %d, want %d", d, d.Index(), i)
		}
	}
	if Day("X").Index() != -1 {
		t.Errorf("unknown day should have index -1")
	}
}
