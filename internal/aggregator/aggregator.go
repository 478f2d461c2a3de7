// Package aggregator merges per-competition player rows into one row per player.
package aggregator

import (
	"fmt"
	"strings"

	"github.com/pable/soccerstats/internal/dataset"
	"github.com/pable/soccerstats/internal/model"
)

// Strategy is how the values of one column are collapsed within a group.
type Strategy int

const (
	Key   Strategy = iota // part of the grouping key
	Sum                   // numeric sum
	Mean                  // arithmetic mean
	First                 // first value encountered
	Join                  // all values joined with JoinSep
)

// JoinSep separates joined values.
const JoinSep = ", "

func (s Strategy) String() string {
	switch s {
	case Key:
		return "key"
	case Sum:
		return "sum"
	case Mean:
		return "mean"
	case First:
		return "first"
	case Join:
		return "join"
	default:
		return "?"
	}
}

// Rule assigns a strategy to a column.
type Rule struct {
	Column   string
	Strategy Strategy
}

// Rules is the fixed aggregation table applied by the cleaner, in output column order.
// Nation and Age are part of the key; First keeps them unchanged.
var Rules = []Rule{
	{model.ColPlayer, Key},
	{model.ColNation, First},
	{model.ColAge, First},
	{model.ColPos, Key},
	{model.ColMP, Sum},
	{model.ColMin, Sum},
	{model.ColGls, Sum},
	{model.ColAst, Sum},
	{model.ColGA, Sum},
	{model.ColGls90, Mean},
	{model.ColAst90, Mean},
	{model.ColXG, Sum},
	{model.ColXAG, Sum},
	{model.ColComp, Join},
	{model.ColSquad, Join},
}

// Apply collapses the values of one column within a group.
// Key columns hold identical values in a group, so Key behaves like First.
func Apply(s Strategy, values []string) (string, error) {
	switch s {
	case Key, First:
		if len(values) == 0 {
			return "", nil
		}
		return values[0], nil
	case Sum:
		sum, _ := numeric(values)
		return dataset.FormatNumber(sum), nil
	case Mean:
		sum, n := numeric(values)
		if n == 0 {
			return "", nil
		}
		return dataset.FormatNumber(sum / float64(n)), nil
	case Join:
		return strings.Join(values, JoinSep), nil
	}
	return "", fmt.Errorf("unknown aggregation strategy %d", int(s))
}

// numeric sums the parseable values, skipping blanks and text.
func numeric(values []string) (sum float64, n int) {
	for _, v := range values {
		f, ok := dataset.Coerce(v)
		if !ok {
			continue
		}
		sum += f
		n++
	}
	return sum, n
}

// Stats summarises one aggregation run.
type Stats struct {
	InputRows     int
	OutputPlayers int
	MergedGroups  int // players built from more than one input row
}

// Aggregate groups in by the key columns and applies Rules to every other column.
// in must contain every column named in Rules. Groups are emitted in the order
// their key first appears.
func Aggregate(in *dataset.Frame) (*dataset.Frame, Stats, error) {
	if in == nil {
		return nil, Stats{}, fmt.Errorf("nil frame")
	}

	colIdx := make([]int, len(Rules))
	var keyIdx []int
	for i, r := range Rules {
		idx := in.Index(r.Column)
		if idx < 0 {
			return nil, Stats{}, &dataset.MissingColumnError{Column: r.Column}
		}
		colIdx[i] = idx
	}
	for _, c := range model.KeyColumns {
		keyIdx = append(keyIdx, in.Index(c))
	}

	type group struct {
		rows [][]string
	}
	var order []string
	groups := make(map[string]*group)
	for _, row := range in.Rows {
		k := groupKey(row, keyIdx)
		g, ok := groups[k]
		if !ok {
			g = &group{}
			groups[k] = g
			order = append(order, k)
		}
		g.rows = append(g.rows, row)
	}

	out := &dataset.Frame{Columns: make([]string, len(Rules))}
	for i, r := range Rules {
		out.Columns[i] = r.Column
	}

	stats := Stats{InputRows: in.Len()}
	values := make([]string, 0, 4)
	for _, k := range order {
		g := groups[k]
		if len(g.rows) > 1 {
			stats.MergedGroups++
		}
		merged := make([]string, len(Rules))
		for i, r := range Rules {
			values = values[:0]
			for _, row := range g.rows {
				values = append(values, row[colIdx[i]])
			}
			v, err := Apply(r.Strategy, values)
			if err != nil {
				return nil, Stats{}, fmt.Errorf("column %s: %w", r.Column, err)
			}
			merged[i] = v
		}
		out.Rows = append(out.Rows, merged)
	}
	stats.OutputPlayers = len(out.Rows)
	return out, stats, nil
}

// groupKey joins the key cells with NUL.
func groupKey(row []string, keyIdx []int) string {
	parts := make([]string, len(keyIdx))
	for i, idx := range keyIdx {
		parts[i] = row[idx]
	}
	return strings.Join(parts, "\x00")
}

// Clean runs the whole cleaner: load the raw file, aggregate, write the result.
// Nothing is written unless every step succeeds.
func Clean(rawPath, outPath string) (Stats, error) {
	in, err := dataset.ReadFrame(rawPath, model.Columns)
	if err != nil {
		return Stats{}, err
	}
	out, stats, err := Aggregate(in)
	if err != nil {
		return Stats{}, fmt.Errorf("aggregate: %w", err)
	}
	if err := dataset.WriteFrame(outPath, out); err != nil {
		return Stats{}, fmt.Errorf("write %s: %w", outPath, err)
	}
	return stats, nil
}
