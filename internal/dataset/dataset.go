// Package dataset reads and writes the flat CSV files exchanged by the cleaner
// and the dashboard.
package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var (
	// ErrLoad marks a missing, unreadable or malformed input file.
	ErrLoad = errors.New("load error")
	// ErrSchema marks an input file lacking a required column.
	ErrSchema = errors.New("schema error")
)

// MissingColumnError reports a required column absent from a file header.
type MissingColumnError struct {
	Path   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing column %q", e.Path, e.Column)
}

// Is makes errors.Is(err, ErrSchema) match.
func (e *MissingColumnError) Is(target error) bool {
	return target == ErrSchema
}

// Frame is a header-addressed table of raw string cells.
type Frame struct {
	Columns []string
	Rows    [][]string
}

// Index returns the position of column, or -1.
func (f *Frame) Index(column string) int {
	for i, c := range f.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// Len returns the number of data rows.
func (f *Frame) Len() int { return len(f.Rows) }

// utf8BOM is stripped from the start of input files.
var utf8BOM = []byte("\ufeff")

// ReadFrame loads a CSV file with a header row, keeping only the given columns in
// the given order. Every cell is kept verbatim as a string. A file holding only
// a header yields a Frame with no rows.
func ReadFrame(path string, columns []string) (*Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	// gota refuses a header without rows, so the header is checked here first.
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s is empty", ErrLoad, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header of %s: %w", ErrLoad, path, err)
	}
	if err := checkColumns(path, header, columns); err != nil {
		return nil, err
	}
	if _, err := r.Read(); err == io.EOF {
		return &Frame{Columns: append([]string(nil), columns...)}, nil
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrLoad, path, df.Err)
	}
	if err := checkColumns(path, df.Names(), columns); err != nil {
		return nil, err
	}

	selected := df.Select(columns)
	if selected.Err != nil {
		return nil, fmt.Errorf("%w: select columns of %s: %w", ErrSchema, path, selected.Err)
	}

	records := selected.Records()
	return &Frame{
		Columns: append([]string(nil), columns...),
		Rows:    records[1:],
	}, nil
}

// checkColumns returns a MissingColumnError for the first of columns absent from header.
func checkColumns(path string, header, columns []string) error {
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}
	for _, c := range columns {
		if !present[c] {
			return &MissingColumnError{Path: path, Column: c}
		}
	}
	return nil
}

// WriteFrame writes f as CSV to path. The parent directory is created if needed.
// The data goes to a temporary file that is renamed over path once complete, so a
// failed write leaves any previous file untouched.
func WriteFrame(path string, f *Frame) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".soccerstats-*.csv")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := csv.NewWriter(tmp)
	if err := w.Write(f.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(f.Rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
