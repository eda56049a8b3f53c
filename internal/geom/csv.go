package geom

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var csvHeader = []string{"measure", "from", "to", "units", "display"}

// WriteCSV writes one row per side and diagonal of s. The display column is
// the ceiling-rounded conversion with the given scale.
func WriteCSV(w io.Writer, s Spec, scale float64) error {
	q := s.Vertices()
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	row := func(name string, from, to int, v float64) []string {
		return []string{
			name,
			strconv.Itoa(from),
			strconv.Itoa(to),
			strconv.FormatFloat(v, 'f', 2, 64),
			strconv.Itoa(ToDisplay(v, scale)),
		}
	}
	for i, v := range q.Sides() {
		if err := cw.Write(row("side", i, (i+1)%4, v)); err != nil {
			return fmt.Errorf("csv side %d: %w", i, err)
		}
	}
	for i, v := range q.Diagonals() {
		if err := cw.Write(row("diagonal", i, i+2, v)); err != nil {
			return fmt.Errorf("csv diagonal %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
