package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/soccerstats/internal/filter"
	"github.com/pable/soccerstats/internal/model"
)

// filterFlags holds the filter flags shared by the dashboard commands. Range
// flags left unset fall back to the bounds observed in the loaded table.
type filterFlags struct {
	name string
	club string
	comp string
	pos  string
	mins map[string]*float64
	maxs map[string]*float64
}

func addFilterFlags(cmd *cobra.Command) *filterFlags {
	f := &filterFlags{
		mins: make(map[string]*float64),
		maxs: make(map[string]*float64),
	}
	fl := cmd.Flags()
	fl.StringVar(&f.name, "name", "", "case-insensitive substring of the player name")
	fl.StringVar(&f.club, "club", filter.All, "exact club (Squad) or 'all'")
	fl.StringVar(&f.comp, "comp", filter.All, "exact competition or 'all'")
	fl.StringVar(&f.pos, "pos", filter.All, "position GK, DF, MF, FW or 'all'")
	for _, col := range filter.RangeColumns {
		f.mins[col] = new(float64)
		f.maxs[col] = new(float64)
		fl.Float64Var(f.mins[col], rangeFlag(col, "min"), 0, "lower bound on "+model.StatLabel(col))
		fl.Float64Var(f.maxs[col], rangeFlag(col, "max"), 0, "upper bound on "+model.StatLabel(col))
	}
	return f
}

func rangeFlag(column, side string) string {
	return strings.ToLower(column) + "-" + side
}

// criteria builds the filter criteria for t from the flags set on cmd.
func (f *filterFlags) criteria(cmd *cobra.Command, t model.Table) (filter.Criteria, error) {
	c := filter.DefaultCriteria(t)
	c.Name = f.name
	c.Club = f.club
	c.Comp = f.comp

	pos, err := parsePositionFilter(f.pos)
	if err != nil {
		return filter.Criteria{}, err
	}
	c.Position = pos

	for _, col := range filter.RangeColumns {
		r, _ := c.RangeFor(col)
		low, high := r.Min, r.Max
		if cmd.Flags().Changed(rangeFlag(col, "min")) {
			low = *f.mins[col]
		}
		if cmd.Flags().Changed(rangeFlag(col, "max")) {
			high = *f.maxs[col]
		}
		c.SetRange(col, low, high)
	}
	return c, c.Validate()
}

// filtered loads the table and applies the flag criteria.
func (f *filterFlags) filtered(cmd *cobra.Command) (model.Table, error) {
	t, err := loadTable()
	if err != nil {
		return model.Table{}, err
	}
	c, err := f.criteria(cmd, t)
	if err != nil {
		return model.Table{}, err
	}
	return filter.Apply(t, c)
}

func parsePositionFilter(s string) (string, error) {
	if s == "" || strings.EqualFold(s, filter.All) {
		return filter.All, nil
	}
	p, ok := model.ParsePosition(s)
	if !ok {
		return "", fmt.Errorf("unknown position %q (want one of %s)", s, strings.Join(filter.PositionOptions(), ", "))
	}
	return string(p), nil
}

// resolveStat matches a stat column name case-insensitively.
func resolveStat(s string) (string, error) {
	for _, col := range model.StatColumns {
		if strings.EqualFold(s, col) {
			return col, nil
		}
	}
	return "", fmt.Errorf("unknown stat %q (want one of %s)", s, strings.Join(model.StatColumns, ", "))
}
