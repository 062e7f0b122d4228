package exporter

import (
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/planner"
)

// csvRow is one meeting of one chosen section.
type csvRow struct {
	Course    string `csv:"course"`
	Component string `csv:"component"`
	Section   string `csv:"section"`
	Days      string `csv:"days"`
	Start     string `csv:"start"`
	End       string `csv:"end"`
	Location  string `csv:"location"`
}

// GenerateCSV writes the schedule as CSV, one row per meeting, in section
// order. Asynchronous meetings keep their row with empty day and time
// columns so online components still show up in the export.
func GenerateCSV(s planner.Schedule, w io.Writer) error {
	var rows []csvRow
	for _, sec := range s.Sections {
		for _, m := range sec.Meetings {
			row := csvRow{
				Course:    sec.Course,
				Component: string(sec.Component),
				Section:   sec.ID,
				Location:  m.Location,
			}
			if !m.Asynchronous() {
				days := make([]string, len(m.Days))
				for i, d := range m.Days {
					days[i] = string(d)
				}
				row.Days = strings.Join(days, "/")
				row.Start = m.Start.Clock()
				row.End = m.End.Clock()
			}
			rows = append(rows, row)
		}
	}
	return gocsv.Marshal(&rows, w)
}
