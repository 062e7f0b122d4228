package planner

import (
	"fmt"
	"sort"
)

// Metric names one measurable property a policy may score on.
type Metric string

const (
	MetricTotalGap      Metric = "total-gap"
	MetricDaysOnCampus  Metric = "days-on-campus"
	MetricAvgFirstStart Metric = "avg-first-start"
	MetricEarliestStart Metric = "earliest-start"
	MetricCampusSpan    Metric = "campus-span"
	MetricBalanceScore  Metric = "balance-score"
)

func (m Metric) value(v Metrics) float64 {
	switch m {
	case MetricTotalGap:
		return float64(v.TotalGap)
	case MetricDaysOnCampus:
		return float64(v.DaysOnCampus)
	case MetricAvgFirstStart:
		return v.AvgFirstStart
	case MetricEarliestStart:
		return float64(v.EarliestStart)
	case MetricCampusSpan:
		return float64(v.CampusSpan)
	case MetricBalanceScore:
		return v.BalanceScore
	}
	return 0
}

// Rule is one step of a policy's tie-break chain: compare schedules on a
// metric, ascending or descending.
type Rule struct {
	Metric     Metric
	Descending bool
}

// Policy is an explicit, auditable ordering: rules are applied in sequence
// and the first metric that differs decides. Schedules equal under every
// rule keep their generation order (the sort is stable), which together with
// the generator's determinism makes ranked output fully reproducible.
type Policy struct {
	Name  string
	Rules []Rule
}

// The built-in policies mirror the sort preferences of the original planner.
var (
	MinimalGaps = Policy{Name: "minimal-gaps", Rules: []Rule{
		{Metric: MetricTotalGap},
		{Metric: MetricDaysOnCampus},
	}}
	FewerDays = Policy{Name: "fewer-days", Rules: []Rule{
		{Metric: MetricDaysOnCampus},
		{Metric: MetricTotalGap},
	}}
	EarlyStart = Policy{Name: "early-start", Rules: []Rule{
		{Metric: MetricAvgFirstStart},
		{Metric: MetricTotalGap},
	}}
	LateStart = Policy{Name: "late-start", Rules: []Rule{
		{Metric: MetricAvgFirstStart, Descending: true},
		{Metric: MetricTotalGap},
	}}
	Compact = Policy{Name: "compact", Rules: []Rule{
		{Metric: MetricCampusSpan},
		{Metric: MetricTotalGap},
	}}
	Balanced = Policy{Name: "balanced", Rules: []Rule{
		{Metric: MetricBalanceScore, Descending: true},
	}}
)

// Policies lists every built-in policy in a stable order for menus and flag
// help.
var Policies = []Policy{Balanced, MinimalGaps, FewerDays, EarlyStart, LateStart, Compact}

// PolicyByName resolves a policy by its flag name.
func PolicyByName(name string) (Policy, error) {
	for _, p := range Policies {
		if p.Name == name {
			return p, nil
		}
	}
	return Policy{}, fmt.Errorf("unknown sort policy %q", name)
}

// Ranked pairs a schedule with its measured metrics so callers can display
// the numbers that drove the ordering.
type Ranked struct {
	Schedule Schedule
	Metrics  Metrics
}

// Rank orders schedules under the policy, best first. Nothing is dropped;
// the input slice is not modified. Ranking an already-ranked list again with
// the same policy returns it unchanged.
func Rank(schedules []Schedule, p Policy) []Ranked {
	ranked := make([]Ranked, len(schedules))
	for i, s := range schedules {
		ranked[i] = Ranked{Schedule: s, Metrics: Measure(s)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		for _, r := range p.Rules {
			vi, vj := r.Metric.value(ranked[i].Metrics), r.Metric.value(ranked[j].Metrics)
			if vi == vj {
				continue
			}
			if r.Descending {
				return vi > vj
			}
			return vi < vj
		}
		return false
	})
	return ranked
}
