package analysis

import (
	"github.com/samber/lo"

	"github.com/pable/soccerstats/internal/model"
)

// GoalsMatrix holds total goals per position (rows) and team (columns).
// Cells[i][j] is the goals of Positions[i] at Teams[j].
type GoalsMatrix struct {
	Positions []model.Position
	Teams     []string
	Cells     [][]float64
}

// Max returns the largest cell, or 0 for an empty matrix.
func (m GoalsMatrix) Max() float64 {
	var best float64
	for _, row := range m.Cells {
		for _, v := range row {
			best = max(best, v)
		}
	}
	return best
}

// PositionTeamGoals sums goals by position and team over the rows whose Squad is
// one of teams. Rows always follow model.Positions and every cell is present, so
// a position without goals at a team reads 0. Columns follow the order in which
// teams first appear in the filtered rows. Rows whose Pos is not exactly one
// canonical abbreviation are left out.
func PositionTeamGoals(t model.Table, teams []string) GoalsMatrix {
	rows := lo.Filter(t.Rows(), func(p model.Player, _ int) bool {
		return lo.Contains(teams, p.Squad)
	})

	m := GoalsMatrix{
		Positions: append([]model.Position(nil), model.Positions...),
		Teams:     lo.Uniq(lo.Map(rows, func(p model.Player, _ int) string { return p.Squad })),
	}
	teamIdx := make(map[string]int, len(m.Teams))
	for j, team := range m.Teams {
		teamIdx[team] = j
	}
	posIdx := make(map[model.Position]int, len(m.Positions))
	for i, pos := range m.Positions {
		posIdx[pos] = i
	}

	m.Cells = make([][]float64, len(m.Positions))
	for i := range m.Cells {
		m.Cells[i] = make([]float64, len(m.Teams))
	}
	for _, p := range rows {
		i, ok := posIdx[model.Position(p.Pos)]
		if !ok {
			continue
		}
		m.Cells[i][teamIdx[p.Squad]] += p.Gls
	}
	return m
}
