package catalog

import (
	"sort"
	"strings"
)

// Match is one search hit with enough context to render a suggestion row.
type Match struct {
	Code        string
	Title       string
	Description string
	Sections    int
}

// searchIndex maps course-code fragments and title words to course codes so
// lookups stay fast on a full-term catalog of a few thousand courses.
type searchIndex struct {
	codeParts  map[string][]string
	titleWords map[string][]string
}

func buildIndex(c *Catalog) *searchIndex {
	idx := &searchIndex{
		codeParts:  make(map[string][]string),
		titleWords: make(map[string][]string),
	}

	for _, code := range c.codes {
		for _, part := range strings.Split(code, "*") {
			if part == "" {
				continue
			}
			idx.codeParts[part] = append(idx.codeParts[part], code)
		}

		title := strings.ToUpper(c.courses[code].Title)
		for _, word := range strings.Fields(title) {
			if len(word) < 3 {
				continue
			}
			idx.titleWords[word] = append(idx.titleWords[word], code)
		}
	}
	return idx
}

// Search returns up to limit courses whose code or title matches the query.
// Results are sorted by code so identical queries always return identical
// suggestion lists. Queries shorter than two characters match nothing.
func (c *Catalog) Search(query string, limit int) []Match {
	query = strings.ToUpper(strings.TrimSpace(query))
	if len(query) < 2 {
		return nil
	}

	matched := make(map[string]bool)
	if _, ok := c.courses[query]; ok {
		matched[query] = true
	}
	for part, codes := range c.index.codeParts {
		if strings.Contains(part, query) {
			for _, code := range codes {
				matched[code] = true
			}
		}
	}
	for word, codes := range c.index.titleWords {
		if strings.Contains(word, query) {
			for _, code := range codes {
				matched[code] = true
			}
		}
	}

	codes := make([]string, 0, len(matched))
	for code := range matched {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	if limit > 0 && len(codes) > limit {
		codes = codes[:limit]
	}

	matches := make([]Match, len(codes))
	for i, code := range codes {
		crs := c.courses[code]
		matches[i] = Match{
			Code:        code,
			Title:       crs.Title,
			Description: truncate(rawDescription(c, code), 100),
			Sections:    sectionCount(c, code),
		}
	}
	return matches
}

func rawDescription(c *Catalog, code string) string {
	return c.descriptions[code]
}

func sectionCount(c *Catalog, code string) int {
	seen := make(map[string]bool)
	for _, secs := range c.courses[code].Components {
		for _, s := range secs {
			seen[s.ID] = true
		}
	}
	return len(seen)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
