// Package registrar checks live section availability against the
// university's course search site. It is a collaborator of the planner, not
// part of it: the planner only reasons about the sections it is handed.
package registrar

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/course"
)

const searchURL = "https://colleague-ss.uoguelph.ca/Student/Courses/Search"

// Client fetches live section status pages. Results are cached on disk
// through an explicit store so repeated lookups within a few minutes do not
// hammer the registration site.
type Client struct {
	httpClient *http.Client
	Cache      *Cache
}

// NewClient creates a registrar client with the default cache location.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		Cache: DefaultCache(),
	}
}

// SectionStatus returns the live status of every listed section of the
// course, across all terms shown on the search page.
func (c *Client) SectionStatus(courseCode string) ([]SectionStatus, error) {
	code := course.NormalizeCode(courseCode)
	if code == "" {
		return nil, fmt.Errorf("course code cannot be empty")
	}

	if cached, ok := c.Cache.read(code); ok {
		return cached, nil
	}

	reqURL := fmt.Sprintf("%s?keyword=%s", searchURL, url.QueryEscape(code))
	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, err
	}

	// The site serves a reduced page to unknown clients
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch status for %s: %w", code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d when fetching status for %s", resp.StatusCode, code)
	}

	statuses, err := ParseSectionStatuses(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(statuses) == 0 {
		return nil, fmt.Errorf("no section status found for %s: the course may not be offered or the page layout changed", code)
	}

	c.Cache.write(code, statuses)
	return statuses, nil
}
