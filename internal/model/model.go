package model

import (
	"fmt"
	"strings"
)

// Column names shared by the raw and the cleaned files.
const (
	ColPlayer = "Player"
	ColNation = "Nation"
	ColAge    = "Age"
	ColPos    = "Pos"
	ColMP     = "MP"
	ColMin    = "Min"
	ColGls    = "Gls"
	ColAst    = "Ast"
	ColGA     = "G+A"
	ColGls90  = "Gls_90"
	ColAst90  = "Ast_90"
	ColXG     = "xG"
	ColXAG    = "xAG"
	ColComp   = "Comp"
	ColSquad  = "Squad"
)

// Columns is the whitelist kept by the cleaner, in output order.
var Columns = []string{
	ColPlayer, ColNation, ColAge, ColPos,
	ColMP, ColMin, ColGls, ColAst, ColGA, ColGls90, ColAst90, ColXG, ColXAG,
	ColComp, ColSquad,
}

// KeyColumns identify one player after merging.
var KeyColumns = []string{ColPlayer, ColNation, ColAge, ColPos}

// NumericColumns are coerced to numbers when the cleaned file is loaded.
var NumericColumns = []string{
	ColAge, ColMP, ColMin, ColGls, ColAst, ColGA, ColGls90, ColAst90, ColXG, ColXAG,
}

// StatColumns are the per-player statistics used by comparisons and radar profiles.
var StatColumns = []string{
	ColMP, ColMin, ColGls, ColAst, ColGA, ColGls90, ColAst90, ColXG, ColXAG,
}

// ---- Positions ----

// Position is a canonical position abbreviation.
type Position string

const (
	PosGK Position = "GK"
	PosDF Position = "DF"
	PosMF Position = "MF"
	PosFW Position = "FW"
)

// Positions lists the canonical positions in display order.
var Positions = []Position{PosGK, PosDF, PosMF, PosFW}

// Label returns the display name of p, or the raw abbreviation when p is not canonical.
func (p Position) Label() string {
	switch p {
	case PosGK:
		return "Goalkeeper"
	case PosDF:
		return "Defender"
	case PosMF:
		return "Midfielder"
	case PosFW:
		return "Forward"
	default:
		return string(p)
	}
}

// ParsePosition accepts an abbreviation or a label, case-insensitively.
func ParsePosition(s string) (Position, bool) {
	s = strings.TrimSpace(s)
	for _, p := range Positions {
		if strings.EqualFold(s, string(p)) || strings.EqualFold(s, p.Label()) {
			return p, true
		}
	}
	return "", false
}

// PosLabel renders a Pos cell for display. Multi-position cells such as "DF,MF"
// have each part translated.
func PosLabel(pos string) string {
	parts := strings.Split(pos, ",")
	for i, part := range parts {
		parts[i] = Position(strings.TrimSpace(part)).Label()
	}
	return strings.Join(parts, ", ")
}

// ---- Players ----

// Player is one merged row of the cleaned file.
type Player struct {
	Name   string
	Nation string
	Pos    string
	Comp   string // ", "-joined competitions
	Squad  string // ", "-joined squads

	Age   float64
	MP    float64
	Min   float64
	Gls   float64
	Ast   float64
	GA    float64
	Gls90 float64
	Ast90 float64
	XG    float64
	XAG   float64
}

// Stat returns the value of a numeric column by name.
func (p Player) Stat(column string) (float64, error) {
	switch column {
	case ColAge:
		return p.Age, nil
	case ColMP:
		return p.MP, nil
	case ColMin:
		return p.Min, nil
	case ColGls:
		return p.Gls, nil
	case ColAst:
		return p.Ast, nil
	case ColGA:
		return p.GA, nil
	case ColGls90:
		return p.Gls90, nil
	case ColAst90:
		return p.Ast90, nil
	case ColXG:
		return p.XG, nil
	case ColXAG:
		return p.XAG, nil
	}
	return 0, fmt.Errorf("unknown stat column %q", column)
}

// Vector returns the values of the given columns in order.
func (p Player) Vector(columns []string) ([]float64, error) {
	out := make([]float64, len(columns))
	for i, c := range columns {
		v, err := p.Stat(c)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// IsStatColumn reports whether column can be passed to Player.Stat.
func IsStatColumn(column string) bool {
	_, err := Player{}.Stat(column)
	return err == nil
}

// Table is the loaded dashboard dataset. It is never modified in place: filters
// and views return new values.
type Table struct {
	players []Player
}

// NewTable copies players into a Table.
func NewTable(players []Player) Table {
	return Table{players: append([]Player(nil), players...)}
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.players) }

// Rows returns a copy of the rows in source order.
func (t Table) Rows() []Player {
	return append([]Player(nil), t.players...)
}

// FindByName returns the first row whose name equals name exactly.
func (t Table) FindByName(name string) (Player, bool) {
	for _, p := range t.players {
		if p.Name == name {
			return p, true
		}
	}
	return Player{}, false
}

// Glossary describes each statistic column.
var Glossary = []struct{ Column, Description string }{
	{ColMP, "Total matches played."},
	{ColMin, "Total minutes played."},
	{ColGls, "Goals scored."},
	{ColAst, "Assists provided."},
	{ColGA, "Goals plus assists, overall attacking output."},
	{ColGls90, "Average goals per 90 minutes played."},
	{ColAst90, "Average assists per 90 minutes played."},
	{ColXG, "Expected goals: quality of the chances the player got."},
	{ColXAG, "Expected assisted goals: quality of the passes leading to shots."},
}

// StatLabel returns a descriptive label for a stat column.
func StatLabel(column string) string {
	switch column {
	case ColMP:
		return "Matches played"
	case ColMin:
		return "Minutes played"
	case ColGls:
		return "Goals"
	case ColAst:
		return "Assists"
	case ColGA:
		return "Goals + Assists"
	case ColGls90:
		return "Goals per 90"
	case ColAst90:
		return "Assists per 90"
	case ColXG:
		return "Expected goals (xG)"
	case ColXAG:
		return "Expected assists (xAG)"
	case ColAge:
		return "Age"
	default:
		return column
	}
}
