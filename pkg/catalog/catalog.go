// Package catalog loads the scraped per-term course datasets and converts
// them into the strict planner model in a single validation pass, so nothing
// downstream ever sees a malformed or partially-populated record.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/course"
)

// Term identifies one academic term with a scraped dataset.
type Term string

const (
	Summer2025 Term = "Summer 2025"
	Fall2025   Term = "Fall 2025"
	Winter2026 Term = "Winter 2026"
)

// termFiles maps each term to its dataset file, matching the scraper's
// output naming.
var termFiles = map[Term]string{
	Summer2025: "S25.json",
	Fall2025:   "F25.json",
	Winter2026: "W26.json",
}

// Terms lists the known terms, newest first.
func Terms() []Term {
	return []Term{Winter2026, Fall2025, Summer2025}
}

// ParseTerm resolves a user-supplied term name, accepting both the display
// name ("Winter 2026") and the file stem ("W26").
func ParseTerm(s string) (Term, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for t, file := range termFiles {
		stem := strings.TrimSuffix(file, ".json")
		if needle == strings.ToLower(string(t)) || needle == strings.ToLower(stem) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown term %q (expected one of Summer 2025, Fall 2025, Winter 2026)", s)
}

// Catalog is an immutable, validated set of courses for one term.
type Catalog struct {
	term         Term
	courses      map[string]course.Course
	descriptions map[string]string
	codes        []string
	index        *searchIndex
}

// NotFoundError lists requested course codes absent from the term's dataset.
type NotFoundError struct {
	Term  Term
	Codes []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("courses not found in %s: %s", e.Term, strings.Join(e.Codes, ", "))
}

// Load reads the dataset for a term from the data directory.
func Load(dir string, term Term) (*Catalog, error) {
	file, ok := termFiles[term]
	if !ok {
		return nil, fmt.Errorf("no dataset known for term %q", term)
	}
	path := filepath.Join(dir, file)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open course data for %s: %w", term, err)
	}
	defer f.Close()
	return Parse(term, f)
}

// Parse decodes and validates one term dataset. The JSON shape is the
// scraper's: course key -> {Title, Description, Sections: [{id, LEC|SEM|...:
// meeting | [meetings]}]}.
func Parse(term Term, r io.Reader) (*Catalog, error) {
	var raw map[string]rawCourse
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("could not decode course data for %s: %w", term, err)
	}

	c := &Catalog{
		term:         term,
		courses:      make(map[string]course.Course, len(raw)),
		descriptions: make(map[string]string, len(raw)),
	}
	for code, rc := range raw {
		converted, err := convertCourse(code, rc)
		if err != nil {
			return nil, fmt.Errorf("invalid record for %s in %s: %w", code, term, err)
		}
		c.courses[code] = converted
		c.descriptions[code] = rc.Description
		c.codes = append(c.codes, code)
	}
	sort.Strings(c.codes)
	c.index = buildIndex(c)
	return c, nil
}

// Term returns the catalog's term.
func (c *Catalog) Term() Term { return c.term }

// Len returns the number of courses in the catalog.
func (c *Catalog) Len() int { return len(c.courses) }

// Codes returns every course code, sorted.
func (c *Catalog) Codes() []string {
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// Course looks up one course by its (already normalized) code.
func (c *Catalog) Course(code string) (course.Course, bool) {
	crs, ok := c.courses[code]
	return crs, ok
}

// Courses resolves a list of user-supplied codes, normalizing each, and
// fails with a NotFoundError naming every code the term does not offer.
func (c *Catalog) Courses(codes []string) ([]course.Course, error) {
	var out []course.Course
	var missing []string
	for _, code := range codes {
		normalized := course.NormalizeCode(code)
		if normalized == "" {
			continue
		}
		crs, ok := c.courses[normalized]
		if !ok {
			missing = append(missing, normalized)
			continue
		}
		out = append(out, crs)
	}
	if len(missing) > 0 {
		return nil, &NotFoundError{Term: c.term, Codes: missing}
	}
	return out, nil
}

type rawCourse struct {
	Title       string                       `json:"Title"`
	Description string                       `json:"Description"`
	Sections    []map[string]json.RawMessage `json:"Sections"`
}

type rawMeeting struct {
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Date     []string `json:"date"`
	Location string   `json:"location"`
}

// convertCourse validates one raw course record into the strict model. A
// section record carries one entry per component it offers; the planner
// model splits those into per-component sections sharing the section id.
func convertCourse(code string, rc rawCourse) (course.Course, error) {
	if len(rc.Sections) == 0 {
		return course.Course{}, fmt.Errorf("no sections listed")
	}

	components := make(map[course.Component][]course.Section)
	for _, rawSec := range rc.Sections {
		var id string
		if msg, ok := rawSec["id"]; ok {
			if err := json.Unmarshal(msg, &id); err != nil {
				return course.Course{}, fmt.Errorf("section id is not a string: %w", err)
			}
		}
		if id == "" {
			return course.Course{}, fmt.Errorf("section without an id")
		}

		for key, msg := range rawSec {
			if key == "id" {
				continue
			}
			comp := course.Component(key)
			meetings, err := decodeMeetings(msg)
			if err != nil {
				return course.Course{}, fmt.Errorf("section %s component %s: %w", id, key, err)
			}
			if len(meetings) == 0 {
				continue
			}
			components[comp] = append(components[comp], course.Section{
				Course:    code,
				Component: comp,
				ID:        id,
				Meetings:  meetings,
				Seats:     -1,
			})
		}
	}

	if len(components) == 0 {
		return course.Course{}, fmt.Errorf("no usable meetings in any section")
	}
	for comp := range components {
		secs := components[comp]
		sort.Slice(secs, func(i, j int) bool { return secs[i].ID < secs[j].ID })
	}
	return course.Course{Code: code, Title: rc.Title, Components: components}, nil
}

// decodeMeetings accepts the scraper's meeting shape: a single object or an
// array of objects (a component can meet several times per week under one
// section).
func decodeMeetings(msg json.RawMessage) ([]course.Meeting, error) {
	var raws []rawMeeting
	trimmed := strings.TrimSpace(string(msg))
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(msg, &raws); err != nil {
			return nil, err
		}
	} else {
		var one rawMeeting
		if err := json.Unmarshal(msg, &one); err != nil {
			return nil, err
		}
		raws = []rawMeeting{one}
	}

	var meetings []course.Meeting
	for _, rm := range raws {
		m, err := convertMeeting(rm)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	return meetings, nil
}

func convertMeeting(rm rawMeeting) (course.Meeting, error) {
	var days []course.Day
	for _, tok := range rm.Date {
		d, err := course.ParseDay(tok)
		if err != nil {
			return course.Meeting{}, err
		}
		days = append(days, d)
	}

	// Distance-education entries arrive with no days and zero times; they
	// are kept as asynchronous meetings that occupy no timetable space.
	if len(days) == 0 && rm.Start == 0 && rm.End == 0 {
		return course.Meeting{Location: rm.Location}, nil
	}
	if len(days) == 0 {
		return course.Meeting{}, fmt.Errorf("timed meeting without days")
	}
	if rm.Start >= rm.End {
		return course.Meeting{}, fmt.Errorf("meeting start %d is not before end %d", rm.Start, rm.End)
	}
	if rm.Start < 0 || rm.End > 24*60 {
		return course.Meeting{}, fmt.Errorf("meeting times %d-%d out of range", rm.Start, rm.End)
	}

	return course.Meeting{
		Days:     days,
		Start:    course.Minutes(rm.Start),
		End:      course.Minutes(rm.End),
		Location: rm.Location,
	}, nil
}
