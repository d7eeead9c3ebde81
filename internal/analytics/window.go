// Package analytics computes the dashboard figures: category tallies over a
// selectable time window and a month-bucketed trend series over the whole
// dataset.
package analytics

import (
	"time"

	"anshin-house-data/internal/domain"
)

// Window selectors.
const (
	WindowThisMonth = "this_month"
	WindowLastMonth = "last_month"
	Window3Months   = "3months"
	Window6Months   = "6months"
	Window12Months  = "12months"
	WindowAll       = "all"
)

// ValidWindow reports whether w is a known window selector.
func ValidWindow(w string) bool {
	switch w {
	case WindowThisMonth, WindowLastMonth, Window3Months, Window6Months, Window12Months, WindowAll:
		return true
	}
	return false
}

// Range is a half-open interval [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
	// Months is how many month buckets the trend series spans.
	Months int
}

// Resolve computes the window boundaries relative to now. The all-time
// window starts at the month of the earliest record rather than a fixed
// epoch, so a fresh installation does not chart decades of empty months.
func Resolve(window string, now time.Time, cs []*domain.Consultation) Range {
	thisMonth := monthStart(now)
	switch window {
	case WindowLastMonth:
		return Range{Start: thisMonth.AddDate(0, -1, 0), End: thisMonth, Months: 2}
	case Window3Months:
		return Range{Start: thisMonth.AddDate(0, -2, 0), End: thisMonth.AddDate(0, 1, 0), Months: 3}
	case Window6Months:
		return Range{Start: thisMonth.AddDate(0, -5, 0), End: thisMonth.AddDate(0, 1, 0), Months: 6}
	case Window12Months:
		return Range{Start: thisMonth.AddDate(0, -11, 0), End: thisMonth.AddDate(0, 1, 0), Months: 12}
	case WindowAll:
		start := thisMonth
		for _, c := range cs {
			if d := recordDate(c); d.Before(start) {
				start = monthStart(d)
			}
		}
		months := monthsBetween(start, thisMonth) + 1
		return Range{Start: start, End: thisMonth.AddDate(0, 1, 0), Months: months}
	default: // WindowThisMonth
		return Range{Start: thisMonth, End: thisMonth.AddDate(0, 1, 0), Months: 1}
	}
}

// Contains reports whether t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// recordDate is the date a consultation is bucketed under: the consultation
// date when recorded, otherwise the registration timestamp.
func recordDate(c *domain.Consultation) time.Time {
	if c.ConsultationDate != nil {
		return *c.ConsultationDate
	}
	return c.CreatedAt
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
