package table

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ornilab/flapsweep/internal/solver"
)

// SeriesColumns is the column set of raw force series exports.
var SeriesColumns = []string{"time", "lift", "induced_drag", "side_force"}

// WriteSeries writes a force series as a flat CSV, one time step per row.
// Unlike result tables, a series export replaces any existing file.
func WriteSeries(path string, s *solver.ForceSeries) error {
	if parent := filepath.Dir(path); parent != "." {
		if err := os.MkdirAll(parent, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(SeriesColumns); err != nil {
		return err
	}
	for i := range s.Times {
		side := 0.0
		if i < len(s.SideForce) {
			side = s.SideForce[i]
		}
		row := []string{Cell(s.Times[i]), Cell(s.Lift[i]), Cell(s.InducedDrag[i]), Cell(side)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadSeries loads a series CSV written by WriteSeries. Rows that do not
// parse are skipped.
func ReadSeries(path string) (*solver.ForceSeries, error) {
	_, rows, err := ReadRows(path)
	if err != nil {
		return nil, err
	}

	s := &solver.ForceSeries{}
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		t, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			continue
		}
		lift, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			continue
		}
		drag, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			continue
		}
		s.Times = append(s.Times, t)
		s.Lift = append(s.Lift, lift)
		s.InducedDrag = append(s.InducedDrag, drag)
		if len(row) > 3 {
			if side, err := strconv.ParseFloat(row[3], 64); err == nil {
				s.SideForce = append(s.SideForce, side)
			}
		}
	}
	if s.Len() == 0 {
		return nil, ErrEmptyTable
	}
	return s, nil
}
