package course

import (
	"fmt"
	"strings"
)

// Day is a day-of-week code as used by the Guelph course data ("M", "T",
// "W", "Th", "F", "Sa", "Su").
type Day string

const (
	Monday    Day = "M"
	Tuesday   Day = "T"
	Wednesday Day = "W"
	Thursday  Day = "Th"
	Friday    Day = "F"
	Saturday  Day = "Sa"
	Sunday    Day = "Su"
)

// Week lists all days in calendar order. Metrics and rendering iterate this
// to keep per-day output deterministic.
var Week = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayIndex = map[Day]int{
	Monday: 0, Tuesday: 1, Wednesday: 2, Thursday: 3, Friday: 4, Saturday: 5, Sunday: 6,
}

// Index returns the calendar position of the day (Monday = 0), or -1 for an
// unknown code.
func (d Day) Index() int {
	if i, ok := dayIndex[d]; ok {
		return i
	}
	return -1
}

// Name returns the full English day name for display.
func (d Day) Name() string {
	switch d {
	case Monday:
		return "Monday"
	case Tuesday:
		return "Tuesday"
	case Wednesday:
		return "Wednesday"
	case Thursday:
		return "Thursday"
	case Friday:
		return "Friday"
	case Saturday:
		return "Saturday"
	case Sunday:
		return "Sunday"
	}
	return string(d)
}

// Minutes is a time of day expressed as minutes since midnight.
type Minutes int

// Clock formats the time as "h:mm AM/PM", matching how the registration
// site displays meeting times.
func (m Minutes) Clock() string {
	h := int(m) / 60
	min := int(m) % 60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, min, suffix)
}

// Component is a required category of meeting within a course. A valid
// schedule picks exactly one section per (course, component).
type Component string

const (
	Lecture     Component = "LEC"
	Seminar     Component = "SEM"
	Lab         Component = "LAB"
	Tutorial    Component = "TUT"
	Exam        Component = "EXAM"
	DistanceEd  Component = "DISTANCE EDUCATION"
	Fieldwork   Component = "FLD"
	Clinical    Component = "CLIN"
	Practicum   Component = "PRA"
	Workshop    Component = "WKS"
	Studio      Component = "STU"
	Independent Component = "IND"
	Research    Component = "RES"
)

// componentOrder fixes a canonical ordering for components so that slot
// processing, rendering, and tie-breaking are deterministic.
var componentOrder = map[Component]int{
	Lecture: 0, Seminar: 1, Lab: 2, Tutorial: 3, Exam: 4, Fieldwork: 5,
	Clinical: 6, Practicum: 7, Workshop: 8, Studio: 9, Independent: 10,
	Research: 11, DistanceEd: 12,
}

// Rank returns the canonical position of the component. Unknown components
// sort after the known ones, alphabetically via the caller.
func (c Component) Rank() int {
	if r, ok := componentOrder[c]; ok {
		return r
	}
	return len(componentOrder)
}

// ComponentLess orders components canonically (lectures before seminars
// before labs, and so on), falling back to lexicographic order for codes the
// catalog introduces that we do not know about.
func ComponentLess(a, b Component) bool {
	ra, rb := a.Rank(), b.Rank()
	if ra != rb {
		return ra < rb
	}
	return a < b
}

// Meeting is a single weekly time block: one or more days sharing the same
// start and end time. A meeting with no days and zero times is an
// asynchronous (distance education) block that occupies no timetable space.
type Meeting struct {
	Days     []Day
	Start    Minutes
	End      Minutes
	Location string
}

// Asynchronous reports whether the meeting has no scheduled timetable
// presence. Such meetings never conflict with anything.
func (m Meeting) Asynchronous() bool {
	return len(m.Days) == 0
}

// String renders the meeting like "M/W/F 8:30 AM - 9:20 AM".
func (m Meeting) String() string {
	if m.Asynchronous() {
		return "asynchronous"
	}
	days := make([]string, len(m.Days))
	for i, d := range m.Days {
		days[i] = string(d)
	}
	return fmt.Sprintf("%s %s - %s", strings.Join(days, "/"), m.Start.Clock(), m.End.Clock())
}

// Section is one concrete offering of a single component of a course. It is
// immutable once built by the catalog; schedules share sections by value and
// never modify them.
type Section struct {
	Course    string    // course code, e.g. "CIS*2750"
	Component Component // e.g. LEC
	ID        string    // full section id, e.g. "CIS*2750*0101"
	Meetings  []Meeting
	Seats     int // advisory only; -1 when unknown
}

// Label renders the section for display, e.g. "CIS*2750*0101 LEC".
func (s Section) Label() string {
	return fmt.Sprintf("%s %s", s.ID, s.Component)
}

// Course is a course code plus, per required component, the candidate
// sections a schedule may choose from.
type Course struct {
	Code       string
	Title      string
	Components map[Component][]Section
}

// ComponentList returns the course's components in canonical order.
func (c Course) ComponentList() []Component {
	comps := make([]Component, 0, len(c.Components))
	for comp := range c.Components {
		comps = append(comps, comp)
	}
	sortComponents(comps)
	return comps
}

func sortComponents(comps []Component) {
	// Insertion sort: component counts are tiny (a course rarely has more
	// than three components).
	for i := 1; i < len(comps); i++ {
		for j := i; j > 0 && ComponentLess(comps[j], comps[j-1]); j-- {
			comps[j], comps[j-1] = comps[j-1], comps[j]
		}
	}
}
