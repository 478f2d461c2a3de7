package analysis

import (
	"github.com/pable/soccerstats/internal/filter"
	"github.com/pable/soccerstats/internal/model"
)

// Summary describes a loaded table: its size, the categorical choices and the
// default bounds of the range filters.
type Summary struct {
	Players int
	Clubs   int
	Comps   int
	Bounds  []filter.Range
}

// Summarize builds the Summary of t.
func Summarize(t model.Table) Summary {
	return Summary{
		Players: t.Len(),
		Clubs:   len(filter.ClubOptions(t)) - 1,
		Comps:   len(filter.CompOptions(t)) - 1,
		Bounds:  filter.DefaultCriteria(t).Ranges,
	}
}
