package registrar

import (
	"testing"
	"time"
)

// TestLiveSectionStatus hits the real registration site. Run explicitly with
// go test -run Live (skipped under -short).
func TestLiveSectionStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping live registrar test in short mode")
	}

	client := NewClient()
	client.Cache = &Cache{Dir: t.TempDir(), TTL: time.Minute}

	statuses, err := client.SectionStatus("CIS*1500")
	if err != nil {
		t.Fatalf("SectionStatus failed: %v", err)
	}
	if len(statuses) == 0 {
		t.Fatalf("expected at least one section status")
	}

	for _, s := range statuses {
		if s.SectionID == "" {
			t.Errorf("section status with empty id: %+v", s)
		}
		if s.State == "" {
			t.Errorf("section %s has no state", s.SectionID)
		}
	}
	t.Logf("fetched %d section statuses", len(statuses))
}
