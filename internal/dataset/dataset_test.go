package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pable/soccerstats/internal/model"
)

const cleanedHeader = "Player,Nation,Age,Pos,MP,Min,Gls,Ast,G+A,Gls_90,Ast_90,xG,xAG,Comp,Squad\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadFrameSelectsWhitelist(t *testing.T) {
	path := writeFile(t, "raw.csv", "Rk,Player,Extra,Squad\n1,Alice,x,Lyon\n2,Bob,y,\"Paris, FC\"\n")

	f, err := ReadFrame(path, []string{"Squad", "Player"})
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if strings.Join(f.Columns, "|") != "Squad|Player" {
		t.Errorf("columns: got %v", f.Columns)
	}
	if f.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", f.Len())
	}
	if f.Rows[1][0] != "Paris, FC" || f.Rows[1][1] != "Bob" {
		t.Errorf("row 1: got %v", f.Rows[1])
	}
}

func TestReadFrameKeepsCellsVerbatim(t *testing.T) {
	path := writeFile(t, "raw.csv", "Player,Age\nAlice,025\nBob,NA\nCara,\n")

	f, err := ReadFrame(path, []string{"Player", "Age"})
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	want := []string{"025", "NA", ""}
	for i, w := range want {
		if f.Rows[i][1] != w {
			t.Errorf("row %d Age: want %q, got %q", i, w, f.Rows[i][1])
		}
	}
}

func TestReadFrameMissingFile(t *testing.T) {
	_, err := ReadFrame(filepath.Join(t.TempDir(), "nope.csv"), model.Columns)
	if !errors.Is(err, ErrLoad) {
		t.Fatalf("expected ErrLoad, got %v", err)
	}
}

func TestReadFrameMissingColumn(t *testing.T) {
	path := writeFile(t, "raw.csv", "Player,Nation\nAlice,FR\n")

	_, err := ReadFrame(path, []string{"Player", "Squad"})
	if !errors.Is(err, ErrSchema) {
		t.Fatalf("expected ErrSchema, got %v", err)
	}
	var mc *MissingColumnError
	if !errors.As(err, &mc) || mc.Column != "Squad" {
		t.Errorf("expected MissingColumnError for Squad, got %v", err)
	}
}

func TestWriteFrameCreatesDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "dir", "out.csv")
	f := &Frame{
		Columns: []string{"Player", "Squad"},
		Rows:    [][]string{{"Alice", "Lyon, Paris"}},
	}
	if err := WriteFrame(out, f); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "Player,Squad\nAlice,\"Lyon, Paris\"\n"
	if string(data) != want {
		t.Errorf("output:\nwant %q\ngot  %q", want, data)
	}

	entries, _ := os.ReadDir(filepath.Dir(out))
	if len(entries) != 1 {
		t.Errorf("expected only the output file, found %d entries", len(entries))
	}
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12", 12, true},
		{" 0.45 ", 0.45, true},
		{"", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"1,200", 0, false},
	}
	for _, tc := range tests {
		got, ok := Coerce(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("Coerce(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLoadPlayersCoercesNonNumericToZero(t *testing.T) {
	path := writeFile(t, "clean.csv", cleanedHeader+
		"Alice,FRA,24,FW,10,900,5,x,5,0.5,,1.2,NaN,Ligue 1,Lyon\n"+
		"Bob,ENG,n/a,DF,8,700,1,2,3,0.1,0.2,0.4,0.9,Premier League,Arsenal\n")

	res, err := LoadPlayers(path)
	if err != nil {
		t.Fatalf("LoadPlayers: %v", err)
	}
	if res.Table.Len() != 2 {
		t.Fatalf("expected 2 players, got %d", res.Table.Len())
	}
	alice := res.Table.Rows()[0]
	if alice.Ast != 0 || alice.Ast90 != 0 || alice.XAG != 0 {
		t.Errorf("Alice: expected coerced zeros, got Ast=%v Ast90=%v xAG=%v", alice.Ast, alice.Ast90, alice.XAG)
	}
	if alice.Gls != 5 || alice.XG != 1.2 {
		t.Errorf("Alice: Gls=%v xG=%v", alice.Gls, alice.XG)
	}
	if bob := res.Table.Rows()[1]; bob.Age != 0 {
		t.Errorf("Bob Age: want 0, got %v", bob.Age)
	}
	if res.Coerced != 4 {
		t.Errorf("Coerced: want 4, got %d", res.Coerced)
	}
}

func TestFrameFromPlayersRoundTrip(t *testing.T) {
	in := []model.Player{{
		Name: "Alice", Nation: "FRA", Pos: "FW", Comp: "Ligue 1", Squad: "Lyon",
		Age: 24, MP: 10, Min: 900, Gls: 5, Ast: 2, GA: 7, Gls90: 0.5, Ast90: 0.2, XG: 4.1, XAG: 1.9,
	}}
	path := filepath.Join(t.TempDir(), "players.csv")
	if err := WriteFrame(path, FrameFromPlayers(in)); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	res, err := LoadPlayers(path)
	if err != nil {
		t.Fatalf("LoadPlayers: %v", err)
	}
	if got := res.Table.Rows()[0]; got != in[0] {
		t.Errorf("round trip mismatch:\nwant %+v\ngot  %+v", in[0], got)
	}
}

func TestReadFrameHeaderOnly(t *testing.T) {
	path := writeFile(t, "header.csv", cleanedHeader)
	f, err := ReadFrame(path, model.Columns)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if f.Len() != 0 {
		t.Errorf("expected no rows, got %d", f.Len())
	}
	if strings.Join(f.Columns, ",") != strings.Join(model.Columns, ",") {
		t.Errorf("unexpected columns %v", f.Columns)
	}

	// The column check still applies without rows.
	path = writeFile(t, "short.csv", "Player,Nation\n")
	if _, err := ReadFrame(path, model.Columns); !errors.Is(err, ErrSchema) {
		t.Errorf("expected schema error, got %v", err)
	}
}

func TestReadFrameEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", "")
	if _, err := ReadFrame(path, model.Columns); !errors.Is(err, ErrLoad) {
		t.Errorf("expected load error, got %v", err)
	}
}

func TestReadFrameStripsBOM(t *testing.T) {
	path := writeFile(t, "bom.csv", "\ufeffPlayer,Squad\nAlice,Lyon\n")
	f, err := ReadFrame(path, []string{"Player", "Squad"})
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if f.Len() != 1 || f.Rows[0][0] != "Alice" {
		t.Errorf("unexpected rows %v", f.Rows)
	}
}

func TestEmptyTableReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := WriteFrame(path, FrameFromPlayers(nil)); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != cleanedHeader {
		t.Errorf("expected header only, got %q", data)
	}
	res, err := LoadPlayers(path)
	if err != nil {
		t.Fatalf("LoadPlayers: %v", err)
	}
	if res.Table.Len() != 0 || res.Coerced != 0 {
		t.Errorf("expected empty table, got %d rows, %d coerced", res.Table.Len(), res.Coerced)
	}
}
