package catalog

import (
	"testing"
)

func TestSearchByCodeFragment(t *testing.T) {
	c := loadTestdata(t)

	matches := c.Search("CIS", 10)
	if len(matches) != 2 {
		t.Fatalf("expected CIS*1300 and CIS*1500, got %d matches", len(matches))
	}
	// Sorted by code for deterministic suggestions.
	if matches[0].Code != "CIS*1300" || matches[1].Code != "CIS*1500" {
		t.Errorf("matches out of order: %s, %s", matches[0].Code, matches[1].Code)
	}
}

func TestSearchByTitleWord(t *testing.T) {
	c := loadTestdata(t)

	matches := c.Search("calculus", 10)
	if len(matches) != 1 || matches[0].Code != "MATH*1200" {
		t.Fatalf("title search failed: %+v", matches)
	}
	if matches[0].Sections != 1 {
		t.Errorf("section count = %d, want 1", matches[0].Sections)
	}
}

func TestSearchExactCode(t *testing.T) {
	c := loadTestdata(t)

	matches := c.Search("CIS*1500", 10)
	if len(matches) != 1 || matches[0].Code != "CIS*1500" {
		t.Fatalf("exact code search failed: %+v", matches)
	}
	if matches[0].Sections != 2 {
		t.Errorf("CIS*1500 has 2 section records, got %d", matches[0].Sections)
	}
}

func TestSearchShortQuery(t *testing.T) {
	c := loadTestdata(t)
	if got := c.Search("c", 10); got != nil {
		t.Errorf("single-character queries should match nothing, got %d", len(got))
	}
}

func TestSearchLimit(t *testing.T) {
	c := loadTestdata(t)
	if got := c.Search("CIS", 1); len(got) != 1 {
		t.Errorf("limit should cap results, got %d", len(got))
	}
}
