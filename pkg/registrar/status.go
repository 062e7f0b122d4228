package registrar

import (
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/catalog"
)

// ParseSectionStatuses extracts per-section seat availability from the
// course search results page. Sections are grouped under h4 term headers;
// each section row carries a table whose "Seats" (or "Waitlisted") column
// holds the live numbers.
func ParseSectionStatuses(r io.Reader) ([]SectionStatus, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var statuses []SectionStatus

	doc.Find("h4").Each(func(i int, header *goquery.Selection) {
		term, err := catalog.ParseTerm(header.Text())
		if err != nil {
			return // not a term header
		}

		list := header.NextAllFiltered("ul").First()
		if list.Length() == 0 {
			return
		}

		list.Find("li.search-nestedaccordionitem").Each(func(j int, item *goquery.Selection) {
			sectionID := strings.TrimSpace(item.Find("a.search-sectiondetailslink").First().Text())
			if sectionID == "" {
				return
			}

			table := item.Find("table.search-sectiontable").First()
			if table.Length() == 0 {
				return
			}

			var headers []string
			table.Find("thead tr th").Each(func(k int, th *goquery.Selection) {
				headers = append(headers, strings.TrimSpace(th.Text()))
			})

			var cells []*goquery.Selection
			table.Find("tbody tr").First().Find("td").Each(func(k int, td *goquery.Selection) {
				cells = append(cells, td)
			})

			col, waitlisted := -1, false
			for k, h := range headers {
				if h == "Seats" {
					col = k
					break
				}
				if h == "Waitlisted" {
					col, waitlisted = k, true
					break
				}
			}
			if col < 0 || col >= len(cells) {
				return
			}

			statuses = append(statuses, classify(sectionID, term, visibleSeatText(cells[col]), waitlisted))
		})
	})

	return statuses, nil
}

// visibleSeatText picks the seat span the site is actually displaying; the
// cell keeps alternate renderings hidden with inline display:none styles.
func visibleSeatText(cell *goquery.Selection) string {
	value := "N/A"
	cell.Find("span.search-seatsavailabletext").EachWithBreak(func(i int, span *goquery.Selection) bool {
		style, _ := span.Attr("style")
		if strings.Contains(style, "display: none") || strings.Contains(style, "display:none") {
			return true
		}
		value = strings.TrimSpace(span.Text())
		return false
	})
	return value
}

func classify(sectionID string, term catalog.Term, details string, waitlisted bool) SectionStatus {
	status := SectionStatus{SectionID: sectionID, Term: term, Details: details, Seats: -1}
	if waitlisted {
		status.State = Waitlisted
		return status
	}

	// The seats cell reads like "3 / 45".
	parts := strings.Split(details, "/")
	open, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		status.State = Unknown
		return status
	}

	status.Seats = open
	if open > 0 {
		status.State = Available
	} else {
		status.State = Full
	}
	return status
}
