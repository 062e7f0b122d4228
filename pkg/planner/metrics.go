package planner

import (
	"sort"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/course"
)

// span is one occupied block on a single day.
type span struct {
	start course.Minutes
	end   course.Minutes
}

// week groups and sorts a schedule's meetings per day. Asynchronous meetings
// contribute nothing.
type week [7][]span

func weekOf(s Schedule) week {
	var w week
	for _, sec := range s.Sections {
		for _, m := range sec.Meetings {
			for _, d := range m.Days {
				if i := d.Index(); i >= 0 {
					w[i] = append(w[i], span{start: m.Start, end: m.End})
				}
			}
		}
	}
	for i := range w {
		day := w[i]
		sort.Slice(day, func(a, b int) bool {
			if day[a].start != day[b].start {
				return day[a].start < day[b].start
			}
			return day[a].end < day[b].end
		})
	}
	return w
}

// Metrics are the measured properties a ranking policy scores on. All times
// are minutes.
type Metrics struct {
	TotalGap      int     // idle time between consecutive classes, summed over days
	DaysOnCampus  int     // days with at least one scheduled meeting
	EarliestStart int     // earliest class start in the week (0 when no classes)
	LatestEnd     int     // latest class end in the week
	AvgFirstStart float64 // average of each active day's first start time
	CampusSpan    int     // sum over days of (last end - first start)
	ClassTime     int     // total scheduled minutes
	BalanceScore  float64 // composite comfort score, higher is better
}

// Measure computes the metrics for one schedule in a single pass over its
// weekly layout.
func Measure(s Schedule) Metrics {
	w := weekOf(s)

	var m Metrics
	m.EarliestStart = -1
	var firstStartSum int

	for _, day := range w {
		if len(day) == 0 {
			continue
		}
		m.DaysOnCampus++
		first, last := day[0], day[len(day)-1]
		firstStartSum += int(first.start)
		if m.EarliestStart < 0 || int(first.start) < m.EarliestStart {
			m.EarliestStart = int(first.start)
		}
		dayEnd := int(last.end)
		for _, sp := range day {
			if int(sp.end) > dayEnd {
				dayEnd = int(sp.end)
			}
			m.ClassTime += int(sp.end - sp.start)
		}
		if dayEnd > m.LatestEnd {
			m.LatestEnd = dayEnd
		}
		m.CampusSpan += dayEnd - int(first.start)

		for i := 1; i < len(day); i++ {
			gap := int(day[i].start) - int(day[i-1].end)
			if gap > 0 {
				m.TotalGap += gap
			}
		}
	}

	if m.EarliestStart < 0 {
		m.EarliestStart = 0
	}
	if m.DaysOnCampus > 0 {
		m.AvgFirstStart = float64(firstStartSum) / float64(m.DaysOnCampus)
	}
	m.BalanceScore = balanceScore(w)
	return m
}

// balanceScore is the original planner's composite comfort heuristic:
// moderate breaks around an hour score well, back-to-back classes, tiny
// gaps, huge gaps and very long days are penalized, and light weeks earn a
// bonus. Higher is better.
func balanceScore(w week) float64 {
	var score, penalties float64
	daysOnCampus := 0

	for _, day := range w {
		if len(day) == 0 {
			continue
		}
		daysOnCampus++

		dayStart := day[0].start
		dayEnd := day[0].end
		for _, sp := range day {
			if sp.end > dayEnd {
				dayEnd = sp.end
			}
		}
		if length := int(dayEnd - dayStart); length > 8*60 {
			penalties += float64(length-8*60) * 0.1
		}

		for i := 0; i < len(day)-1; i++ {
			gap := int(day[i+1].start) - int(day[i].end)
			switch {
			case gap == 0:
				penalties += 20
			case gap < 0:
				penalties += 100
			case gap < 15:
				penalties += 30
			case gap < 30:
				penalties += 10
			case gap <= 120:
				diff := float64(gap - 60)
				if diff < 0 {
					diff = -diff
				}
				score += 20 + 10*(1-diff/60)
			case gap <= 180:
				penalties += 5
			default:
				penalties += float64(gap) * 0.1
			}
		}
	}

	if daysOnCampus <= 3 {
		score += 50
	} else if daysOnCampus == 4 {
		score += 25
	}
	return score - penalties
}
