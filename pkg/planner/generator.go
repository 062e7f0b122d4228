package planner

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/course"
)

// ErrNoCourses is returned when a request carries no courses at all.
var ErrNoCourses = errors.New("no courses provided")

// UnsatisfiableError names a (course, component) pair that has zero candidate
// sections. The search never starts in that case: an empty candidate list can
// never be completed, and silently returning zero schedules would hide which
// course is the problem.
type UnsatisfiableError struct {
	Course    string
	Component course.Component
}

func (e *UnsatisfiableError) Error() string {
	return fmt.Sprintf("course %s has no candidate sections for component %s", e.Course, e.Component)
}

// Request describes one generation run. The zero TimeWindow means no bounds;
// Limit <= 0 means unlimited results.
type Request struct {
	Courses []course.Course
	Window  TimeWindow
	Limit   int
}

// Schedule is a complete, conflict-free selection of one section per
// (course, component) pair. It is immutable once emitted; its sections are
// shared with the owning catalog and with other schedules.
type Schedule struct {
	Sections []course.Section
}

// slot is one (course, component) choice point with its candidates in a
// stable order.
type slot struct {
	course     string
	component  course.Component
	candidates []course.Section
}

// Generate enumerates every valid schedule for the request via depth-first
// search with pruning.
//
// Processing order is fixed and documented because it defines the generation
// order (and therefore what a capped run returns): slots are sorted by
// ascending candidate count (most constrained first, which prunes earlier),
// breaking ties by course code and then canonical component order; within a
// slot, candidates are tried in ascending section-id order. Two runs over
// identical input always produce identical output.
//
// A nil error with zero schedules is a legitimate outcome: the search
// completed and nothing satisfied the constraints. Structural failures
// (no courses, an empty candidate list, an inverted window) are reported as
// errors before any searching happens.
func Generate(req Request) ([]Schedule, error) {
	if len(req.Courses) == 0 {
		return nil, ErrNoCourses
	}
	if err := req.Window.Validate(); err != nil {
		return nil, err
	}

	slots, err := buildSlots(req.Courses)
	if err != nil {
		return nil, err
	}

	g := &search{
		slots:  slots,
		window: req.Window,
		limit:  req.Limit,
		chosen: make([]course.Section, 0, len(slots)),
	}
	g.run(0)
	return g.found, nil
}

// buildSlots flattens the courses into choice points and fails fast on any
// empty candidate list.
func buildSlots(courses []course.Course) ([]slot, error) {
	var slots []slot
	for _, c := range courses {
		if len(c.Components) == 0 {
			return nil, &UnsatisfiableError{Course: c.Code}
		}
		for _, comp := range c.ComponentList() {
			candidates := c.Components[comp]
			if len(candidates) == 0 {
				return nil, &UnsatisfiableError{Course: c.Code, Component: comp}
			}
			ordered := make([]course.Section, len(candidates))
			copy(ordered, candidates)
			sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })
			slots = append(slots, slot{course: c.Code, component: comp, candidates: ordered})
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		if len(slots[i].candidates) != len(slots[j].candidates) {
			return len(slots[i].candidates) < len(slots[j].candidates)
		}
		if slots[i].course != slots[j].course {
			return slots[i].course < slots[j].course
		}
		return course.ComponentLess(slots[i].component, slots[j].component)
	})
	return slots, nil
}

type search struct {
	slots  []slot
	window TimeWindow
	limit  int

	chosen    []course.Section
	committed []course.Meeting
	found     []Schedule
}

func (g *search) capped() bool {
	return g.limit > 0 && len(g.found) >= g.limit
}

func (g *search) run(depth int) {
	if g.capped() {
		return
	}
	if depth == len(g.slots) {
		g.emit()
		return
	}

	sl := g.slots[depth]
	for _, cand := range sl.candidates {
		if !fitsWindow(cand, g.window) {
			continue
		}
		if g.conflicts(cand) {
			continue
		}

		g.chosen = append(g.chosen, cand)
		g.committed = append(g.committed, cand.Meetings...)
		g.run(depth + 1)
		g.committed = g.committed[:len(g.committed)-len(cand.Meetings)]
		g.chosen = g.chosen[:len(g.chosen)-1]

		if g.capped() {
			return
		}
	}
}

func (g *search) conflicts(cand course.Section) bool {
	for _, m := range cand.Meetings {
		if overlapsAny(g.committed, m) {
			return true
		}
	}
	return false
}

// emit copies the current assignment into a finished schedule. Sections are
// reordered by (course, component) for presentation; the slot order that
// drove the search is an implementation detail.
func (g *search) emit() {
	picked := make([]course.Section, len(g.chosen))
	copy(picked, g.chosen)
	sort.Slice(picked, func(i, j int) bool {
		if picked[i].Course != picked[j].Course {
			return picked[i].Course < picked[j].Course
		}
		return course.ComponentLess(picked[i].Component, picked[j].Component)
	})
	g.found = append(g.found, Schedule{Sections: picked})
}
