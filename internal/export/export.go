// Package export writes a player table to CSV, JSON or XLSX.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xuri/excelize/v2"

	"github.com/pable/soccerstats/internal/dataset"
	"github.com/pable/soccerstats/internal/model"
)

// Format is an output file format.
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	XLSX Format = "xlsx"
)

// Formats lists the supported formats.
var Formats = []Format{CSV, JSON, XLSX}

// SheetName is the worksheet written by XLSX exports.
const SheetName = "Players"

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (want csv, json or xlsx)", s)
}

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Record is the JSON shape of one player. Field names follow the CSV header.
type Record struct {
	Player string  `json:"Player"`
	Nation string  `json:"Nation"`
	Age    float64 `json:"Age"`
	Pos    string  `json:"Pos"`
	MP     float64 `json:"MP"`
	Min    float64 `json:"Min"`
	Gls    float64 `json:"Gls"`
	Ast    float64 `json:"Ast"`
	GA     float64 `json:"G+A"`
	Gls90  float64 `json:"Gls_90"`
	Ast90  float64 `json:"Ast_90"`
	XG     float64 `json:"xG"`
	XAG    float64 `json:"xAG"`
	Comp   string  `json:"Comp"`
	Squad  string  `json:"Squad"`
}

func toRecord(p model.Player) Record {
	return Record{
		Player: p.Name, Nation: p.Nation, Age: p.Age, Pos: p.Pos,
		MP: p.MP, Min: p.Min, Gls: p.Gls, Ast: p.Ast, GA: p.GA,
		Gls90: p.Gls90, Ast90: p.Ast90, XG: p.XG, XAG: p.XAG,
		Comp: p.Comp, Squad: p.Squad,
	}
}

// Write exports t to path in the given format.
func Write(path string, format Format, t model.Table) error {
	switch format {
	case CSV:
		return dataset.WriteFrame(path, dataset.FrameFromPlayers(t.Rows()))
	case JSON:
		return writeJSON(path, t)
	case XLSX:
		return writeXLSX(path, t)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

func writeJSON(path string, t model.Table) error {
	records := make([]Record, 0, t.Len())
	for _, p := range t.Rows() {
		records = append(records, toRecord(p))
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal players: %w", err)
	}
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeXLSX(path string, t model.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(model.Columns))
	for i, c := range model.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, p := range t.Rows() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			p.Name, p.Nation, p.Age, p.Pos,
			p.MP, p.Min, p.Gls, p.Ast, p.GA,
			p.Gls90, p.Ast90, p.XG, p.XAG,
			p.Comp, p.Squad,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := ensureDir(path); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}
