package registrar

import (
	"strings"
	"testing"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/catalog"
)

const statusPage = `
<html><body>
<div id="course-resultul">
  <h4>Winter 2026</h4>
  <ul>
    <li class="search-nestedaccordionitem">
      <a class="search-sectiondetailslink">CIS*2750*0101</a>
      <table class="search-sectiontable">
        <thead><tr><th>Time</th><th>Seats</th></tr></thead>
        <tbody><tr>
          <td>MWF 8:30</td>
          <td>
            <span class="search-seatsavailabletext" style="display: none">hidden</span>
            <span class="search-seatsavailabletext">3 / 45</span>
          </td>
        </tr></tbody>
      </table>
    </li>
    <li class="search-nestedaccordionitem">
      <a class="search-sectiondetailslink">CIS*2750*0102</a>
      <table class="search-sectiontable">
        <thead><tr><th>Time</th><th>Seats</th></tr></thead>
        <tbody><tr>
          <td>TTh 10:00</td>
          <td><span class="search-seatsavailabletext">0 / 45</span></td>
        </tr></tbody>
      </table>
    </li>
  </ul>
  <h4>Fall 2025</h4>
  <ul>
    <li class="search-nestedaccordionitem">
      <a class="search-sectiondetailslink">CIS*2750*0201</a>
      <table class="search-sectiontable">
        <thead><tr><th>Time</th><th>Waitlisted</th></tr></thead>
        <tbody><tr>
          <td>MWF 9:30</td>
          <td><span class="search-seatsavailabletext">7</span></td>
        </tr></tbody>
      </table>
    </li>
  </ul>
  <h4>Not A Term</h4>
  <ul>
    <li class="search-nestedaccordionitem">
      <a class="search-sectiondetailslink">JUNK*0000*0001</a>
    </li>
  </ul>
</div>
</body></html>`

func TestParseSectionStatuses(t *testing.T) {
	statuses, err := ParseSectionStatuses(strings.NewReader(statusPage))
	if err != nil {
		t.Fatalf("ParseSectionStatuses failed: %v", err)
	}
	if len(statuses) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(statuses))
	}

	byID := make(map[string]SectionStatus)
	for _, s := range statuses {
		byID[s.SectionID] = s
	}

	open := byID["CIS*2750*0101"]
	if open.State != Available || open.Seats != 3 || open.Details != "3 / 45" {
		t.Errorf("open section parsed wrong: %+v", open)
	}
	if open.Term != catalog.Winter2026 {
		t.Errorf("open section term = %q", open.Term)
	}

	full := byID["CIS*2750*0102"]
	if full.State != Full || full.Seats != 0 {
		t.Errorf("full section parsed wrong: %+v", full)
	}

	waitlisted := byID["CIS*2750*0201"]
	if waitlisted.State != Waitlisted {
		t.Errorf("waitlisted section parsed wrong: %+v", waitlisted)
	}
	if waitlisted.Term != catalog.Fall2025 {
		t.Errorf("waitlisted section term = %q", waitlisted.Term)
	}

	if _, ok := byID["JUNK*0000*0001"]; ok {
		t.Errorf("sections under non-term headers must be ignored")
	}
}

func TestParseSectionStatusesEmptyPage(t *testing.T) {
	statuses, err := ParseSectionStatuses(strings.NewReader("<html><body><p>No results found for your search</p></body></html>"))
	if err != nil {
		t.Fatalf("an empty page is not a parse error: %v", err)
	}
	if len(statuses) != 0 {
		t.Errorf("expected no statuses, got %d", len(statuses))
	}
}
