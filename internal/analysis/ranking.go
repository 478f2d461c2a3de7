package analysis

import (
	"fmt"
	"sort"

	"github.com/pable/soccerstats/internal/model"
)

// TopN is the length of the ranking view.
const TopN = 10

// RankChoices are the statistics offered by the ranking view.
var RankChoices = []string{model.ColGls, model.ColAst, model.ColGA, model.ColXG, model.ColXAG}

// RankRow is one line of the ranking view.
type RankRow struct {
	Rank  int
	Name  string
	Squad string
	Value float64 // the ranked statistic
	Min   float64
	MP    float64
}

// Ranking is the result of Top.
type Ranking struct {
	Column string
	Rows   []RankRow
}

// Top returns the n rows of t with the highest value of column. Equal values
// keep their table order.
func Top(t model.Table, column string, n int) (Ranking, error) {
	if !model.IsStatColumn(column) {
		return Ranking{}, fmt.Errorf("unknown stat column %q", column)
	}
	if n < 0 {
		return Ranking{}, fmt.Errorf("negative ranking length %d", n)
	}

	rows := t.Rows()
	value := func(p model.Player) float64 {
		v, _ := p.Stat(column)
		return v
	}
	sort.SliceStable(rows, func(i, j int) bool { return value(rows[i]) > value(rows[j]) })
	if len(rows) > n {
		rows = rows[:n]
	}

	out := Ranking{Column: column, Rows: make([]RankRow, len(rows))}
	for i, p := range rows {
		out.Rows[i] = RankRow{
			Rank:  i + 1,
			Name:  p.Name,
			Squad: p.Squad,
			Value: value(p),
			Min:   p.Min,
			MP:    p.MP,
		}
	}
	return out, nil
}
