package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pable/soccerstats/internal/analysis"
	"github.com/pable/soccerstats/internal/filter"
	"github.com/pable/soccerstats/internal/model"
	"github.com/pable/soccerstats/internal/report"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cHeader   = color.New(color.FgCyan, color.Bold)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive dashboard session",
	Long:  "Load the cleaned dataset once and explore it with filters and views. Type 'help' for available commands.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(_ *cobra.Command, _ []string) error {
	t, err := loadTable()
	if err != nil {
		return err
	}
	return newSession(t, os.Stdout, os.Stderr).run(os.Stdin)
}

// session is one REPL. Filter state lives here; every view is recomputed
// from the full table.
type session struct {
	table    model.Table
	criteria filter.Criteria
	out      io.Writer
	errOut   io.Writer
}

func newSession(t model.Table, out, errOut io.Writer) *session {
	return &session{table: t, criteria: filter.DefaultCriteria(t), out: out, errOut: errOut}
}

func (s *session) run(in io.Reader) error {
	cGreeting.Fprintln(s.out, "soccerstats shell")
	cMuted.Fprintf(s.out, "%d players loaded; type 'help' or 'exit'\n\n", s.table.Len())

	scanner := bufio.NewScanner(in)
	for {
		cPrompt.Fprint(s.out, "soccerstats")
		cMuted.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !s.exec(line) {
			return nil
		}
	}
	return scanner.Err()
}

// exec runs one command line. It returns false when the session should end.
func (s *session) exec(line string) bool {
	tokens := strings.Fields(line)
	cmd, args := strings.ToLower(tokens[0]), tokens[1:]
	rest := strings.Join(args, " ")

	var err error
	switch cmd {
	case "exit", "quit":
		return false
	case "help":
		s.help()
	case "search":
		s.criteria.Name = rest
		s.show()
	case "club":
		s.criteria.Club = orAll(rest)
		s.show()
	case "comp":
		s.criteria.Comp = orAll(rest)
		s.show()
	case "pos":
		var pos string
		if pos, err = parsePositionFilter(rest); err == nil {
			s.criteria.Position = pos
			s.show()
		}
	case "age", "mp", "gls", "ast":
		err = s.setRange(cmd, args)
	case "reset":
		s.criteria = filter.DefaultCriteria(s.table)
		cMuted.Fprintln(s.out, "filters reset")
	case "filters":
		s.printFilters()
	case "show", "list":
		s.show()
	case "compare":
		err = s.compare(rest)
	case "top":
		err = s.top(args)
	case "heatmap":
		s.heatmap(rest)
	case "radar":
		err = s.radar(rest)
	case "clubs":
		s.printOptions(filter.ClubOptions(s.table))
	case "comps":
		s.printOptions(filter.CompOptions(s.table))
	default:
		cWarn.Fprintf(s.errOut, "unknown command %q, type 'help'\n", cmd)
	}
	if err != nil {
		cError.Fprintf(s.errOut, "error: %v\n", err)
	}
	return true
}

func (s *session) help() {
	fmt.Fprintln(s.out)
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"search <text>", "filter by player name (empty clears)"},
		{"club <name|all>", "filter by club"},
		{"comp <name|all>", "filter by competition"},
		{"pos <GK|DF|MF|FW|all>", "filter by position"},
		{"age|mp|gls|ast <min> <max>", "set a numeric range"},
		{"reset", "restore the default filters"},
		{"filters", "print the active filters"},
		{"show", "list the filtered players"},
		{"compare <player> vs <player>", "head-to-head comparison"},
		{"top <stat>", "top 10 filtered players by a stat"},
		{"heatmap <team>[, <team>...]", "goals by position for the given teams"},
		{"radar <player>", "normalized profile of one player"},
		{"clubs / comps", "list the available clubs or competitions"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Fprint(s.out, "  ")
		cCmd.Fprintf(s.out, "%-32s", r.cmd)
		fmt.Fprintln(s.out, r.desc)
	}
	fmt.Fprintln(s.out)
}

func (s *session) filtered() (model.Table, error) {
	return filter.Apply(s.table, s.criteria)
}

func (s *session) show() {
	t, err := s.filtered()
	if err != nil {
		cError.Fprintf(s.errOut, "error: %v\n", err)
		return
	}
	report.PrintPlayerTable(s.out, t)
}

func (s *session) setRange(name string, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: %s <min> <max>", name)
	}
	low, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid min %q", args[0])
	}
	high, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid max %q", args[1])
	}
	if low > high {
		return fmt.Errorf("min %v is greater than max %v", low, high)
	}
	var column string
	for _, col := range filter.RangeColumns {
		if strings.EqualFold(col, name) {
			column = col
		}
	}
	s.criteria.SetRange(column, low, high)
	s.show()
	return nil
}

func (s *session) printFilters() {
	c := s.criteria
	printField := func(label, value string) {
		cHeader.Fprintf(s.out, "  %-12s", label)
		fmt.Fprintln(s.out, value)
	}
	name := c.Name
	if name == "" {
		name = "(any)"
	}
	printField("name", name)
	printField("club", orAll(c.Club))
	printField("comp", orAll(c.Comp))
	printField("position", orAll(c.Position))
	for _, r := range c.Ranges {
		printField(strings.ToLower(r.Column), fmt.Sprintf("%s to %s", num(r.Min), num(r.Max)))
	}
}

func (s *session) printOptions(opts []string) {
	for _, o := range opts {
		fmt.Fprintf(s.out, "  %s\n", o)
	}
}

func (s *session) compare(rest string) error {
	left, right, ok := strings.Cut(rest, " vs ")
	if !ok {
		return fmt.Errorf("usage: compare <player> vs <player>")
	}
	t, err := s.filtered()
	if err != nil {
		return err
	}
	a, err := findPlayer(t, strings.TrimSpace(left))
	if err != nil {
		return err
	}
	b, err := findPlayer(t, strings.TrimSpace(right))
	if err != nil {
		return err
	}
	c, err := analysis.ComparePlayers(a, b)
	if err != nil {
		return err
	}
	report.PrintComparison(s.out, c)
	return nil
}

func (s *session) top(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: top <stat>")
	}
	col, err := resolveStat(args[0])
	if err != nil {
		return err
	}
	t, err := s.filtered()
	if err != nil {
		return err
	}
	r, err := analysis.Top(t, col, analysis.TopN)
	if err != nil {
		return err
	}
	report.PrintRanking(s.out, r)
	return nil
}

func (s *session) heatmap(rest string) {
	var teams []string
	for _, team := range strings.Split(rest, ",") {
		if team = strings.TrimSpace(team); team != "" {
			teams = append(teams, team)
		}
	}
	t, err := s.filtered()
	if err != nil {
		cError.Fprintf(s.errOut, "error: %v\n", err)
		return
	}
	report.PrintGoalsMatrix(s.out, analysis.PositionTeamGoals(t, teams), !color.NoColor)
}

func (s *session) radar(name string) error {
	if name == "" {
		return fmt.Errorf("usage: radar <player>")
	}
	p, err := findPlayer(s.table, name)
	if err != nil {
		return err
	}
	report.PrintRadar(s.out, analysis.RadarProfile(p))
	return nil
}

func orAll(s string) string {
	if s == "" {
		return filter.All
	}
	return s
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
