package aggregator

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pable/soccerstats/internal/dataset"
	"github.com/pable/soccerstats/internal/model"
)

// rawRow builds a whitelist-ordered raw row.
type rawRow struct {
	player, nation, age, pos string
	mp, min, gls, ast, ga    string
	gls90, ast90, xg, xag    string
	comp, squad              string
}

func (r rawRow) cells() []string {
	return []string{
		r.player, r.nation, r.age, r.pos,
		r.mp, r.min, r.gls, r.ast, r.ga,
		r.gls90, r.ast90, r.xg, r.xag,
		r.comp, r.squad,
	}
}

func makeFrame(rows ...rawRow) *dataset.Frame {
	f := &dataset.Frame{Columns: append([]string(nil), model.Columns...)}
	for _, r := range rows {
		f.Rows = append(f.Rows, r.cells())
	}
	return f
}

// cell returns the named column of row i of f.
func cell(t *testing.T, f *dataset.Frame, i int, column string) string {
	t.Helper()
	idx := f.Index(column)
	if idx < 0 {
		t.Fatalf("column %s not in output", column)
	}
	return f.Rows[i][idx]
}

var (
	aliceLyon = rawRow{"Alice", "fr FRA", "24", "FW", "10", "900", "5", "2", "7", "0.5", "0.2", "4.5", "1.5", "fr Ligue 1", "Lyon"}
	aliceRoma = rawRow{"Alice", "fr FRA", "24", "FW", "6", "400", "3", "1", "4", "0.7", "0.1", "2.5", "0.5", "it Serie A", "Roma"}
	bob       = rawRow{"Bob", "eng ENG", "30", "DF", "20", "1800", "1", "3", "4", "0.05", "0.15", "0.8", "2.1", "eng Premier League", "Arsenal"}
)

func TestAggregate_SumsAndMeans(t *testing.T) {
	out, stats, err := Aggregate(makeFrame(aliceLyon, bob, aliceRoma))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 2 {
		t.Fatalf("expected 2 merged players, got %d", out.Len())
	}
	if stats.InputRows != 3 || stats.OutputPlayers != 2 || stats.MergedGroups != 1 {
		t.Errorf("stats: %+v", stats)
	}

	want := map[string]string{
		"MP": "16", "Min": "1300", "Gls": "8", "Ast": "3", "G+A": "11",
		"Gls_90": "0.6", "Ast_90": "0.15000000000000002", "xG": "7", "xAG": "2",
	}
	for col, w := range want {
		if got := cell(t, out, 0, col); got != w {
			t.Errorf("Alice %s: want %s, got %s", col, w, got)
		}
	}
}

func TestAggregate_JoinPreservesOrderAndDuplicates(t *testing.T) {
	second := aliceRoma
	second.squad = "Lyon"
	out, _, err := Aggregate(makeFrame(aliceLyon, aliceRoma, second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	squads := strings.Split(cell(t, out, 0, "Squad"), JoinSep)
	if strings.Join(squads, "|") != "Lyon|Roma|Lyon" {
		t.Errorf("Squad split: got %v", squads)
	}
	if got := cell(t, out, 0, "Comp"); got != "fr Ligue 1, it Serie A, it Serie A" {
		t.Errorf("Comp: got %q", got)
	}
}

func TestAggregate_NoDuplicateKeys(t *testing.T) {
	// Same name, different nation: two players.
	other := aliceRoma
	other.nation = "it ITA"
	// Same identity but positions differ: also two players.
	moved := aliceLyon
	moved.pos = "MF"
	out, _, err := Aggregate(makeFrame(aliceLyon, other, moved, aliceRoma, bob))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]bool)
	for i := range out.Rows {
		k := strings.Join([]string{
			cell(t, out, i, "Player"), cell(t, out, i, "Nation"),
			cell(t, out, i, "Age"), cell(t, out, i, "Pos"),
		}, "|")
		if seen[k] {
			t.Errorf("duplicate key %s", k)
		}
		seen[k] = true
	}
	if out.Len() != 4 {
		t.Errorf("expected 4 players, got %d", out.Len())
	}
}

func TestAggregate_KeyIsCaseSensitive(t *testing.T) {
	lower := aliceRoma
	lower.player = "alice"
	out, _, err := Aggregate(makeFrame(aliceLyon, lower))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 2 {
		t.Errorf("expected case-sensitive grouping (2 rows), got %d", out.Len())
	}
}

func TestAggregate_FirstAppearanceOrder(t *testing.T) {
	out, _, err := Aggregate(makeFrame(bob, aliceLyon, aliceRoma))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cell(t, out, 0, "Player") != "Bob" || cell(t, out, 1, "Player") != "Alice" {
		t.Errorf("expected Bob then Alice, got %s then %s",
			cell(t, out, 0, "Player"), cell(t, out, 1, "Player"))
	}
	if strings.Join(out.Columns, ",") != strings.Join(model.Columns, ",") {
		t.Errorf("column order: got %v", out.Columns)
	}
}

func TestAggregate_MissingColumn(t *testing.T) {
	f := makeFrame(aliceLyon)
	f.Columns = f.Columns[:len(f.Columns)-1]
	_, _, err := Aggregate(f)
	if !errors.Is(err, dataset.ErrSchema) {
		t.Fatalf("expected schema error, got %v", err)
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		s      Strategy
		values []string
		want   string
	}{
		{"sum ints", Sum, []string{"1", "2", "3"}, "6"},
		{"sum skips blanks", Sum, []string{"1.5", "", "x"}, "1.5"},
		{"sum of nothing", Sum, []string{"", ""}, "0"},
		{"mean", Mean, []string{"1", "2"}, "1.5"},
		{"mean skips blanks", Mean, []string{"4", ""}, "4"},
		{"mean of nothing", Mean, []string{""}, ""},
		{"first", First, []string{"a", "b"}, "a"},
		{"first empty group", First, nil, ""},
		{"join", Join, []string{"a", "b", "a"}, "a, b, a"},
	}
	for _, tc := range tests {
		got, err := Apply(tc.s, tc.values)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: want %q, got %q", tc.name, tc.want, got)
		}
	}

	if _, err := Apply(Strategy(99), []string{"1"}); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestRulesCoverWhitelist(t *testing.T) {
	if len(Rules) != len(model.Columns) {
		t.Fatalf("rules: %d, whitelist: %d", len(Rules), len(model.Columns))
	}
	for i, c := range model.Columns {
		if Rules[i].Column != c {
			t.Errorf("rule %d: want %s, got %s", i, c, Rules[i].Column)
		}
	}
	for _, c := range []string{"MP", "Min", "Gls", "Ast", "G+A", "xG", "xAG"} {
		if s, _ := ruleFor(c); s != Sum {
			t.Errorf("%s: want sum, got %v", c, s)
		}
	}
	for _, c := range []string{"Gls_90", "Ast_90"} {
		if s, _ := ruleFor(c); s != Mean {
			t.Errorf("%s: want mean, got %v", c, s)
		}
	}
	if _, ok := ruleFor("Rk"); ok {
		t.Error("Rk should have no rule")
	}
}

const rawCSV = `Rk,Player,Nation,Pos,Squad,Comp,Age,Born,MP,Starts,Min,90s,Gls,Ast,G+A,xG,xAG,Gls_90,Ast_90
1,Alice,fr FRA,FW,Lyon,fr Ligue 1,24,2000,10,9,900,10.0,5,2,7,4.5,1.5,0.5,0.2
2,Bob,eng ENG,DF,Arsenal,eng Premier League,30,1994,20,20,1800,20.0,1,3,4,0.8,2.1,0.05,0.15
3,Alice,fr FRA,FW,Roma,it Serie A,24,2000,6,4,400,4.4,3,1,4,2.5,0.5,0.7,0.1
`

func TestClean_WritesDeterministicOutput(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "raw.csv")
	if err := os.WriteFile(raw, []byte(rawCSV), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out", "cleaned.csv")

	if _, err := Clean(raw, out); err != nil {
		t.Fatalf("first Clean: %v", err)
	}
	first, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Clean(raw, out); err != nil {
		t.Fatalf("second Clean: %v", err)
	}
	second, _ := os.ReadFile(out)
	if !bytes.Equal(first, second) {
		t.Error("expected byte-identical output across runs")
	}

	wantHeader := strings.Join(model.Columns, ",")
	lines := strings.Split(strings.TrimSpace(string(first)), "\n")
	if lines[0] != wantHeader {
		t.Errorf("header: want %s, got %s", wantHeader, lines[0])
	}
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	wantAlice := `Alice,fr FRA,24,FW,16,1300,8,3,11,0.6,0.15000000000000002,7,2,"fr Ligue 1, it Serie A","Lyon, Roma"`
	if lines[1] != wantAlice {
		t.Errorf("Alice row:\nwant %s\ngot  %s", wantAlice, lines[1])
	}
}

func TestClean_SchemaErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "raw.csv")
	if err := os.WriteFile(raw, []byte("Player,Nation\nAlice,FRA\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "cleaned.csv")

	_, err := Clean(raw, out)
	if !errors.Is(err, dataset.ErrSchema) {
		t.Fatalf("expected schema error, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("expected no output file after schema error")
	}
}

func TestClean_MissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := Clean(filepath.Join(dir, "missing.csv"), filepath.Join(dir, "out.csv"))
	if !errors.Is(err, dataset.ErrLoad) {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestClean_HeaderOnlySource(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "raw.csv")
	header := strings.SplitN(rawCSV, "\n", 2)[0] + "\n"
	if err := os.WriteFile(raw, []byte(header), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "cleaned.csv")

	stats, err := Clean(raw, out)
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if stats.InputRows != 0 || stats.OutputPlayers != 0 {
		t.Errorf("unexpected stats %+v", stats)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if want := strings.Join(model.Columns, ",") + "\n"; string(got) != want {
		t.Errorf("output:\nwant %q\ngot  %q", want, got)
	}
}

// ruleFor returns the strategy assigned to column.
func ruleFor(column string) (Strategy, bool) {
	for _, r := range Rules {
		if r.Column == column {
			return r.Strategy, true
		}
	}
	return 0, false
}

func TestAggregate_BlankKeyCellsGroupTogether(t *testing.T) {
	blankA := rawRow{"", "", "", "", "1", "90", "1", "0", "1", "1", "0", "0.5", "0", "es La Liga", "Sevilla"}
	blankB := rawRow{"", "", "", "", "2", "180", "0", "1", "1", "0", "0.5", "0.2", "0.3", "it Serie A", "Roma"}
	out, stats, err := Aggregate(makeFrame(blankA, bob, blankB))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if stats.OutputPlayers != 2 || stats.MergedGroups != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if got := cell(t, out, 0, model.ColMP); got != "3" {
		t.Errorf("blank-key MP: want 3, got %s", got)
	}
	if got := cell(t, out, 0, model.ColSquad); got != "Sevilla, Roma" {
		t.Errorf("blank-key Squad: %s", got)
	}
}
