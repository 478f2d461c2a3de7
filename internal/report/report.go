package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/soccerstats/internal/analysis"
	"github.com/pable/soccerstats/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// num prints a stat without trailing zeros: 12, 0.45.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// rate prints a per-90 or expected-value stat with two decimals.
func rate(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// PrintPlayerTable prints the filtered players. Positions are shown with their labels.
func PrintPlayerTable(w io.Writer, t model.Table) {
	if t.Len() == 0 {
		fmt.Fprintln(w, "No players match the current filters.")
		return
	}
	table := newTable(w)
	table.Header("#", "PLAYER", "NATION", "AGE", "POS", "SQUAD", "COMP",
		"MP", "MIN", "GLS", "AST", "G+A", "GLS/90", "AST/90", "XG", "XAG")
	for i, p := range t.Rows() {
		table.Append(
			strconv.Itoa(i+1),
			p.Name,
			p.Nation,
			num(p.Age),
			model.PosLabel(p.Pos),
			p.Squad,
			p.Comp,
			num(p.MP),
			num(p.Min),
			num(p.Gls),
			num(p.Ast),
			num(p.GA),
			rate(p.Gls90),
			rate(p.Ast90),
			rate(p.XG),
			rate(p.XAG),
		)
	}
	table.Render()
	fmt.Fprintf(w, "\n(%d players)\n", t.Len())
}

// PrintComparison prints a head-to-head report: the per-category table, the
// verdict lines, the overall conclusion and both scores.
func PrintComparison(w io.Writer, c analysis.Comparison) {
	fmt.Fprintf(w, "\nComparison: %s vs %s\n\n", c.LeftName, c.RightName)

	table := newTable(w)
	table.Header("STAT", c.LeftName, c.RightName, "BETTER")
	for _, r := range c.Categories {
		better := "tie"
		switch r.Verdict {
		case analysis.LeftWins:
			better = c.LeftName
		case analysis.RightWins:
			better = c.RightName
		}
		table.Append(r.Label, num(r.Left), num(r.Right), better)
	}
	table.Render()

	fmt.Fprintln(w)
	for _, d := range c.Details() {
		fmt.Fprintf(w, "  %s\n", d)
	}
	fmt.Fprintf(w, "\nConclusion: %s\n", c.Summary())
	fmt.Fprintf(w, "Score of %s: %.2f/100\n", c.LeftName, c.LeftScore)
	fmt.Fprintf(w, "Score of %s: %.2f/100\n", c.RightName, c.RightScore)
}

// PrintRanking prints the top performers for one statistic.
func PrintRanking(w io.Writer, r analysis.Ranking) {
	fmt.Fprintf(w, "\nTop %d players by %s\n\n", len(r.Rows), model.StatLabel(r.Column))
	if len(r.Rows) == 0 {
		fmt.Fprintln(w, "No players.")
		return
	}
	table := newTable(w)
	table.Header("#", "PLAYER", "SQUAD", strings.ToUpper(model.StatLabel(r.Column)), "MIN", "MP")
	for _, row := range r.Rows {
		table.Append(
			strconv.Itoa(row.Rank),
			row.Name,
			row.Squad,
			num(row.Value),
			num(row.Min),
			num(row.MP),
		)
	}
	table.Render()
}

var heatShades = []*color.Color{
	color.New(color.FgHiBlack),
	color.New(color.FgYellow),
	color.New(color.FgHiRed),
	color.New(color.FgRed, color.Bold),
}

// shade picks a color for v relative to the matrix maximum.
func shade(v, maxV float64) *color.Color {
	if v <= 0 || maxV <= 0 {
		return heatShades[0]
	}
	idx := 1 + int(v/maxV*float64(len(heatShades)-1)-1e-9)
	if idx >= len(heatShades) {
		idx = len(heatShades) - 1
	}
	return heatShades[idx]
}

// PrintGoalsMatrix prints total goals per position and team. When colorize is
// set, cells are tinted by their share of the largest cell.
func PrintGoalsMatrix(w io.Writer, m analysis.GoalsMatrix, colorize bool) {
	if len(m.Teams) == 0 {
		fmt.Fprintln(w, "Select at least one team to build the goals matrix.")
		return
	}
	fmt.Fprintln(w, "\nGoals scored by position and team")
	fmt.Fprintln(w)

	header := []any{"POSITION"}
	for _, team := range m.Teams {
		header = append(header, team)
	}
	table := newTable(w)
	table.Header(header...)

	maxV := m.Max()
	for i, pos := range m.Positions {
		row := []any{pos.Label()}
		for _, v := range m.Cells[i] {
			cell := fmt.Sprintf("%.1f", v)
			if colorize {
				cell = shade(v, maxV).Sprint(cell)
			}
			row = append(row, cell)
		}
		table.Append(row...)
	}
	table.Render()
}

// PrintRadar prints a normalized profile as horizontal bars.
func PrintRadar(w io.Writer, r analysis.Radar) {
	const width = 30
	fmt.Fprintf(w, "\nProfile: %s\n\n", r.Name)
	for _, pt := range r.Points {
		n := int(pt.Scaled*width + 0.5)
		bar := strings.Repeat("█", n) + strings.Repeat("·", width-n)
		fmt.Fprintf(w, "  %-7s %s  %4.2f  (%s)\n", pt.Column, bar, pt.Scaled, num(pt.Value))
	}
}

// PrintSummary prints the size of the dataset and the default filter bounds.
func PrintSummary(w io.Writer, s analysis.Summary) {
	fmt.Fprintf(w, "\nPlayers: %d  |  Clubs: %d  |  Competitions: %d\n\n", s.Players, s.Clubs, s.Comps)
	table := newTable(w)
	table.Header("FILTER", "MIN", "MAX")
	for _, b := range s.Bounds {
		table.Append(model.StatLabel(b.Column), num(b.Min), num(b.Max))
	}
	table.Render()
}

// PrintGlossary explains every statistic column.
func PrintGlossary(w io.Writer) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("COLUMN", "MEANING")
	for _, g := range model.Glossary {
		table.Append(g.Column, g.Description)
	}
	table.Render()
}

// PrintQueryResult prints an ad-hoc query result.
func PrintQueryResult(w io.Writer, cols []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "(no rows)")
		return
	}
	table := newTable(w)
	colsAny := make([]any, len(cols))
	for i, c := range cols {
		colsAny[i] = c
	}
	table.Header(colsAny...)
	for _, row := range rows {
		rowAny := make([]any, len(row))
		for i, v := range row {
			rowAny[i] = v
		}
		table.Append(rowAny...)
	}
	table.Render()
	fmt.Fprintf(w, "\n(%d rows)\n", len(rows))
}
