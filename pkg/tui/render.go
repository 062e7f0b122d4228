package tui

import (
	"fmt"
	"strings"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/course"
	"github.com/ASHRREAL/guelph-schedule-generator/pkg/planner"
)

// RenderSchedule formats one ranked schedule as a weekly block for terminal
// output. Shared by the plan command and the interactive flow.
func RenderSchedule(rank int, r planner.Ranked) string {
	var b strings.Builder

	header := fmt.Sprintf("#%d  %d days on campus, %s of gaps, score %.1f",
		rank, r.Metrics.DaysOnCampus, formatDuration(r.Metrics.TotalGap), r.Metrics.BalanceScore)
	b.WriteString(accentStyle.Render(header))
	b.WriteString("\n")

	type entry struct {
		start course.Minutes
		line  string
	}
	byDay := make(map[course.Day][]entry)
	var online []string

	for _, sec := range r.Schedule.Sections {
		for _, m := range sec.Meetings {
			if m.Asynchronous() {
				online = append(online, fmt.Sprintf("    %s (online)", sec.Label()))
				continue
			}
			line := fmt.Sprintf("    %s - %s  %s", m.Start.Clock(), m.End.Clock(), sec.Label())
			if m.Location != "" {
				line += dimStyle.Render("  @ " + m.Location)
			}
			for _, d := range m.Days {
				byDay[d] = append(byDay[d], entry{start: m.Start, line: line})
			}
		}
	}

	for _, d := range course.Week {
		entries := byDay[d]
		if len(entries) == 0 {
			continue
		}
		// Insertion sort by start time; a day has at most a handful of rows.
		for i := 1; i < len(entries); i++ {
			for j := i; j > 0 && entries[j].start < entries[j-1].start; j-- {
				entries[j], entries[j-1] = entries[j-1], entries[j]
			}
		}
		b.WriteString(fmt.Sprintf("  %s\n", d.Name()))
		for _, e := range entries {
			b.WriteString(e.line)
			b.WriteString("\n")
		}
	}

	for _, line := range online {
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func formatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}
