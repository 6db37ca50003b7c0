package field

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// ExportCSV writes the field as space-delimited plain text.
//
// 1-D fields export (x, value) rows, with x regenerated as a linear span
// over the axis extent. 2-D fields export the raw matrix, one row per
// first-axis cell. Higher ranks (and empty or 0-D fields) return
// ErrUnsupportedDim.
func (f *Field) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = ' '
	switch f.Dimensions() {
	case 1:
		n := f.matrix.Shape[0]
		x := make([]float64, n)
		lo, hi, _ := f.axes[0].Extent()
		if n == 1 {
			x[0] = lo
		} else {
			floats.Span(x, lo, hi)
		}
		record := make([]string, 2)
		for i := 0; i < n; i++ {
			record[0] = formatSample(x[i])
			record[1] = formatSample(f.matrix.Elements[i])
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	case 2:
		n0, n1 := f.matrix.Shape[0], f.matrix.Shape[1]
		record := make([]string, n1)
		for i := 0; i < n0; i++ {
			for j := 0; j < n1; j++ {
				record[j] = formatSample(f.matrix.Elements[i*n1+j])
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: got %d dimensions", ErrUnsupportedDim, f.Dimensions())
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSVFile writes ExportCSV output to the named file, creating or
// truncating it.
func (f *Field) ExportCSVFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.ExportCSV(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// formatSample renders one value in scientific notation with full
// float64 round-trip precision.
func formatSample(v float64) string {
	return strconv.FormatFloat(v, 'e', 17, 64)
}
