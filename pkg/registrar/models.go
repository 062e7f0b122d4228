package registrar

import "github.com/ASHRREAL/guelph-schedule-generator/pkg/catalog"

// State classifies a section's live registration status.
type State string

const (
	Available  State = "available"
	Full       State = "full"
	Waitlisted State = "waitlisted"
	Unknown    State = "unknown"
)

// SectionStatus is the live availability of one section as shown on the
// course search page. Advisory only: the planner never excludes a section
// because it is full.
type SectionStatus struct {
	SectionID string
	Term      catalog.Term
	State     State
	Details   string // raw cell text, e.g. "3 / 45"
	Seats     int    // open seats parsed from Details, -1 when not applicable
}
