package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/pable/soccerstats/internal/model"
)

// Coerce converts a numeric cell. Anything that is not a finite number becomes 0
// and ok is false.
func Coerce(s string) (v float64, ok bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// LoadResult describes a loaded cleaned file.
type LoadResult struct {
	Table   model.Table
	Coerced int // numeric cells replaced by 0
}

// LoadPlayers reads the cleaned file and coerces every numeric column.
func LoadPlayers(path string) (LoadResult, error) {
	f, err := ReadFrame(path, model.Columns)
	if err != nil {
		return LoadResult{}, err
	}
	players, coerced := PlayersFromFrame(f)
	return LoadResult{Table: model.NewTable(players), Coerced: coerced}, nil
}

// PlayersFromFrame converts cleaned rows into players. f must carry model.Columns.
func PlayersFromFrame(f *Frame) (players []model.Player, coerced int) {
	idx := make(map[string]int, len(f.Columns))
	for i, c := range f.Columns {
		idx[c] = i
	}
	num := func(row []string, col string) float64 {
		v, ok := Coerce(row[idx[col]])
		if !ok {
			coerced++
		}
		return v
	}

	players = make([]model.Player, 0, len(f.Rows))
	for _, row := range f.Rows {
		players = append(players, model.Player{
			Name:   row[idx[model.ColPlayer]],
			Nation: row[idx[model.ColNation]],
			Pos:    row[idx[model.ColPos]],
			Comp:   row[idx[model.ColComp]],
			Squad:  row[idx[model.ColSquad]],
			Age:    num(row, model.ColAge),
			MP:     num(row, model.ColMP),
			Min:    num(row, model.ColMin),
			Gls:    num(row, model.ColGls),
			Ast:    num(row, model.ColAst),
			GA:     num(row, model.ColGA),
			Gls90:  num(row, model.ColGls90),
			Ast90:  num(row, model.ColAst90),
			XG:     num(row, model.ColXG),
			XAG:    num(row, model.ColXAG),
		})
	}
	return players, coerced
}

// FrameFromPlayers is the inverse of PlayersFromFrame, used by exports.
func FrameFromPlayers(players []model.Player) *Frame {
	f := &Frame{Columns: append([]string(nil), model.Columns...)}
	for _, p := range players {
		f.Rows = append(f.Rows, []string{
			p.Name, p.Nation, FormatNumber(p.Age), p.Pos,
			FormatNumber(p.MP), FormatNumber(p.Min), FormatNumber(p.Gls), FormatNumber(p.Ast),
			FormatNumber(p.GA), FormatNumber(p.Gls90), FormatNumber(p.Ast90),
			FormatNumber(p.XG), FormatNumber(p.XAG),
			p.Comp, p.Squad,
		})
	}
	return f
}

// FormatNumber prints v with the fewest digits that parse back to v.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
