package analytics

import (
	"sort"
	"time"

	"anshin-house-data/internal/domain"
	"anshin-house-data/internal/forms"
	"anshin-house-data/internal/labels"
)

// CategoryCount is one bar of a dashboard chart.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// MonthPoint is one bucket of the trend series.
type MonthPoint struct {
	Month             string `json:"month"` // "2026-09"
	Consultations     int    `json:"consultations"`
	UserRegistrations int    `json:"user_registrations"`
}

// Summary 集計ダッシュボード一式
type Summary struct {
	Window      string          `json:"window"`
	Total       int             `json:"total"`
	Routes      []CategoryCount `json:"routes"`
	Attributes  []CategoryCount `json:"attributes"`
	Genders     []CategoryCount `json:"genders"`
	AgeBrackets []CategoryCount `json:"age_brackets"`
	// Monthly is computed from the unfiltered dataset so the trend axis does
	// not shift when the window selector changes.
	Monthly []MonthPoint `json:"monthly"`
	// Top-3 free-text breakdowns for the two route categories that carry a
	// supplement field.
	GovernmentDetails []CategoryCount `json:"government_details"`
	OtherDetails      []CategoryCount `json:"other_details"`
}

const topDetailCount = 3

// Compute builds the full dashboard summary for the chosen window.
func Compute(cs []*domain.Consultation, users []*domain.EndUser, window string, now time.Time) *Summary {
	r := Resolve(window, now, cs)

	routeNames := labels.RouteNames()
	attrNames := labels.AttributeNames()
	routeCounts := make([]int, len(routeNames))
	attrCounts := make([]int, len(attrNames))
	genderCounts := map[string]int{}
	bracketCounts := map[string]int{}
	govTexts := newOrderedCounter()
	otherTexts := newOrderedCounter()

	total := 0
	for _, c := range cs {
		if !r.Contains(recordDate(c)) {
			continue
		}
		total++
		for i, set := range labels.RouteFlagValues(c) {
			if set {
				routeCounts[i]++
			}
		}
		for i, set := range labels.AttributeFlagValues(c) {
			if set {
				attrCounts[i]++
			}
		}
		genderCounts[labels.GenderBucket(c.Gender)]++
		if b := forms.AgeBracketOf(c, now); b != "" {
			bracketCounts[b]++
		}
		if c.RouteGovernment && c.RouteGovernmentText != "" {
			govTexts.add(c.RouteGovernmentText)
		}
		if c.RouteOther && c.RouteOtherText != "" {
			otherTexts.add(c.RouteOtherText)
		}
	}

	return &Summary{
		Window:            window,
		Total:             total,
		Routes:            namedCounts(routeNames, routeCounts),
		Attributes:        namedCounts(attrNames, attrCounts),
		Genders:           bucketCounts(labels.GenderNames, genderCounts),
		AgeBrackets:       bucketCounts(labels.AgeBrackets, bracketCounts),
		Monthly:           monthlySeries(cs, users, r),
		GovernmentDetails: govTexts.top(topDetailCount),
		OtherDetails:      otherTexts.top(topDetailCount),
	}
}

func namedCounts(names []string, counts []int) []CategoryCount {
	out := make([]CategoryCount, len(names))
	for i, n := range names {
		out[i] = CategoryCount{Name: n, Count: counts[i]}
	}
	return out
}

func bucketCounts(names []string, counts map[string]int) []CategoryCount {
	out := make([]CategoryCount, len(names))
	for i, n := range names {
		out[i] = CategoryCount{Name: n, Count: counts[n]}
	}
	return out
}

// monthlySeries buckets the whole dataset into r.Months calendar months
// starting at r.Start. Months with no records still appear with zero counts.
func monthlySeries(cs []*domain.Consultation, users []*domain.EndUser, r Range) []MonthPoint {
	byMonth := map[string]*MonthPoint{}
	points := make([]MonthPoint, 0, r.Months)
	m := r.Start
	for i := 0; i < r.Months; i++ {
		points = append(points, MonthPoint{Month: m.Format("2006-01")})
		m = m.AddDate(0, 1, 0)
	}
	for i := range points {
		byMonth[points[i].Month] = &points[i]
	}

	for _, c := range cs {
		if p, ok := byMonth[recordDate(c).Format("2006-01")]; ok {
			p.Consultations++
		}
	}
	for _, u := range users {
		if p, ok := byMonth[u.CreatedAt.Format("2006-01")]; ok {
			p.UserRegistrations++
		}
	}
	return points
}

// orderedCounter counts strings while remembering first-encounter order so
// ties rank deterministically.
type orderedCounter struct {
	counts map[string]int
	order  []string
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: map[string]int{}}
}

func (o *orderedCounter) add(s string) {
	if _, seen := o.counts[s]; !seen {
		o.order = append(o.order, s)
	}
	o.counts[s]++
}

func (o *orderedCounter) top(n int) []CategoryCount {
	ranked := make([]CategoryCount, 0, len(o.order))
	for _, s := range o.order {
		ranked = append(ranked, CategoryCount{Name: s, Count: o.counts[s]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
