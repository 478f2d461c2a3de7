// Package filter selects dashboard rows by name, club, competition, position and
// numeric ranges.
package filter

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/pable/soccerstats/internal/model"
)

// All is the sentinel selecting every club, competition or position.
const All = "all"

// Range is an inclusive bound on one stat column.
type Range struct {
	Column string  `validate:"required,statcolumn"`
	Min    float64 `validate:"ltefield=Max"`
	Max    float64
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Criteria is the set of active filters. The zero value matches every row.
type Criteria struct {
	Name     string  // case-insensitive substring of Player
	Club     string  // exact Squad, or All / ""
	Comp     string  // exact Comp, or All / ""
	Position string  // substring of Pos (e.g. "FW"), or All / ""
	Ranges   []Range `validate:"dive"`
}

// RangeColumns are the columns bounded by DefaultCriteria.
var RangeColumns = []string{model.ColAge, model.ColMP, model.ColGls, model.ColAst}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("statcolumn", func(fl validator.FieldLevel) bool {
		return model.IsStatColumn(fl.Field().String())
	})
	return v
}

// Validate rejects ranges on unknown columns and ranges with Min > Max.
func (c Criteria) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}
	return nil
}

// SetRange replaces the bound on column, adding it if absent.
func (c *Criteria) SetRange(column string, low, high float64) {
	for i := range c.Ranges {
		if c.Ranges[i].Column == column {
			c.Ranges[i].Min, c.Ranges[i].Max = low, high
			return
		}
	}
	c.Ranges = append(c.Ranges, Range{Column: column, Min: low, Max: high})
}

// RangeFor returns the bound set on column.
func (c Criteria) RangeFor(column string) (Range, bool) {
	return lo.Find(c.Ranges, func(r Range) bool { return r.Column == column })
}

// Predicate is a pure test on one row.
type Predicate func(model.Player) bool

// Predicates returns one predicate per active criterion.
func (c Criteria) Predicates() ([]Predicate, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var preds []Predicate
	if c.Name != "" {
		needle := strings.ToLower(c.Name)
		preds = append(preds, func(p model.Player) bool {
			return strings.Contains(strings.ToLower(p.Name), needle)
		})
	}
	if isActive(c.Club) {
		club := c.Club
		preds = append(preds, func(p model.Player) bool { return p.Squad == club })
	}
	if isActive(c.Comp) {
		comp := c.Comp
		preds = append(preds, func(p model.Player) bool { return p.Comp == comp })
	}
	if isActive(c.Position) {
		pos := c.Position
		preds = append(preds, func(p model.Player) bool { return strings.Contains(p.Pos, pos) })
	}
	for _, r := range c.Ranges {
		r := r // per-iteration copy; go.mod targets 1.21 loop semantics
		preds = append(preds, func(p model.Player) bool {
			v, _ := p.Stat(r.Column)
			return r.Contains(v)
		})
	}
	return preds, nil
}

func isActive(sel string) bool {
	return sel != "" && !strings.EqualFold(sel, All)
}

// Apply returns the rows of t matching every criterion, in source order.
// An empty result is not an error.
func Apply(t model.Table, c Criteria) (model.Table, error) {
	preds, err := c.Predicates()
	if err != nil {
		return model.Table{}, err
	}
	rows := lo.Filter(t.Rows(), func(p model.Player, _ int) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	})
	return model.NewTable(rows), nil
}

// Bounds returns the observed min and max of column over t. An empty table
// yields a zero range.
func Bounds(t model.Table, column string) (Range, error) {
	if !model.IsStatColumn(column) {
		return Range{}, fmt.Errorf("unknown stat column %q", column)
	}
	r := Range{Column: column}
	if t.Len() == 0 {
		return r, nil
	}
	r.Min, r.Max = math.Inf(1), math.Inf(-1)
	for _, p := range t.Rows() {
		v, _ := p.Stat(column)
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
	}
	return r, nil
}

// DefaultCriteria matches the whole table: no text filters and every range in
// RangeColumns set to its observed bounds.
func DefaultCriteria(t model.Table) Criteria {
	var c Criteria
	for _, col := range RangeColumns {
		r, _ := Bounds(t, col)
		c.Ranges = append(c.Ranges, r)
	}
	return c
}

// ClubOptions lists the club choices: All, then each distinct Squad in order of appearance.
func ClubOptions(t model.Table) []string {
	return options(t, func(p model.Player, _ int) string { return p.Squad })
}

// CompOptions lists the competition choices: All, then each distinct Comp.
func CompOptions(t model.Table) []string {
	return options(t, func(p model.Player, _ int) string { return p.Comp })
}

// PositionOptions lists the position choices: All, then the canonical positions.
func PositionOptions() []string {
	return append([]string{All}, lo.Map(model.Positions, func(p model.Position, _ int) string {
		return string(p)
	})...)
}

func options(t model.Table, field func(model.Player, int) string) []string {
	return append([]string{All}, lo.Uniq(lo.Map(t.Rows(), field))...)
}
