package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
)

var (
	ErrHeaderMismatch = errors.New("table: existing file has a different column set")
	ErrEmptyTable     = errors.New("table: no data rows")
)

// ResultColumns is the column set of the averaged flight data table.
var ResultColumns = []string{
	"airfoil", "wingspan", "aspect_ratio", "taper_ratio",
	"flapping_period", "air_speed", "angle_of_attack",
	"lift", "induced_drag",
}

// StatusColumns is the column set used by sampling runs, which record the
// per-case outcome alongside the forces.
var StatusColumns = []string{
	"airfoil", "wingspan", "aspect_ratio", "taper_ratio",
	"flapping_period", "air_speed", "angle_of_attack",
	"lift", "induced_drag", "status", "error",
}

// Writer appends rows to a flat CSV file, creating it with a header row on
// first use. The column set is fixed for the life of the file: opening an
// existing file whose header differs fails with ErrHeaderMismatch.
type Writer struct {
	path    string
	columns []string
}

func NewWriter(path string, columns []string) (*Writer, error) {
	w := &Writer{path: path, columns: columns}
	if err := w.init(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Writer) init() error {
	if parent := filepath.Dir(w.path); parent != "." {
		if err := os.MkdirAll(parent, 0755); err != nil {
			return err
		}
	}
	existing, err := readHeader(w.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return w.writeRow(w.columns)
	case err != nil:
		return err
	case existing == nil:
		// file exists but is empty
		return w.writeRow(w.columns)
	case !slices.Equal(existing, w.columns):
		return fmt.Errorf("%w: %s has columns %v", ErrHeaderMismatch, w.path, existing)
	}
	return nil
}

// Append writes one data row. The file is opened and closed per call, so a
// row survives even if the process dies mid-sweep.
func (w *Writer) Append(cells []string) error {
	if len(cells) != len(w.columns) {
		return fmt.Errorf("table: row has %d cells, want %d", len(cells), len(w.columns))
	}
	return w.writeRow(cells)
}

func (w *Writer) writeRow(cells []string) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(f)
	if err := cw.Write(cells); err != nil {
		f.Close()
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (w *Writer) Path() string { return w.path }

func (w *Writer) Columns() []string { return w.columns }

// Cell formats a float for a table cell.
func Cell(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// ReadRows reads a table file, returning its header and data rows.
func ReadRows(path string) (header []string, rows [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, nil
	}
	return records[0], records[1:], nil
}

func readHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return header, nil
}
