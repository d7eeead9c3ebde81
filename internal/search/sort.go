package search

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"anshin-house-data/internal/domain"
)

// Sort keys accepted by SortBy.
const (
	SortByName             = "name"
	SortByFurigana         = "furigana"
	SortByConsultationDate = "consultation_date"
	SortByCreatedAt        = "created_at"
	SortByStatus           = "status"
)

const (
	Asc  = "asc"
	Desc = "desc"
)

// collator compares strings in Japanese order rather than byte order.
// collate.Collator is not safe for concurrent use, so each SortBy call
// builds its own.
func newCollator() *collate.Collator {
	return collate.New(language.Japanese)
}

// SortBy sorts cs in place by (key, direction). String keys use Japanese
// collation; date keys compare parsed timestamps with nil last. The sort is
// stable: equal keys keep their incoming order.
func SortBy(cs []*domain.Consultation, key, direction string) {
	col := newCollator()
	desc := direction == Desc

	less := func(a, b *domain.Consultation) int {
		switch key {
		case SortByFurigana:
			return col.CompareString(a.Furigana, b.Furigana)
		case SortByConsultationDate:
			return compareDatePtr(a.ConsultationDate, b.ConsultationDate)
		case SortByCreatedAt:
			return compareDate(a.CreatedAt, b.CreatedAt)
		case SortByStatus:
			return statusRank(a.Status) - statusRank(b.Status)
		default: // SortByName
			return col.CompareString(a.Name, b.Name)
		}
	}

	sort.SliceStable(cs, func(i, j int) bool {
		c := less(cs[i], cs[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func compareDate(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

// nil dates sort after every real date regardless of direction being
// applied by the caller.
func compareDatePtr(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return compareDate(*a, *b)
}

func statusRank(s string) int {
	for i, v := range domain.AllStatuses {
		if v == s {
			return i
		}
	}
	return len(domain.AllStatuses)
}
