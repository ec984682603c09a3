package pgbench

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// header mirrors benchmarkTests.c's column layout: directory, file
// name, vertex count, max priority, edge count, then one duration column
// per solver (the source used wall-clock seconds per solver invocation;
// this reports milliseconds for finer resolution on the small test
// graphs this module's caps allow), and a disagreement flag the source
// had no equivalent for since it never cross-checked W1/W2/W3.
var header = []string{
	"Directory", "File", "Vertices", "MaxPriority", "Edges",
	"SolveA (ms)", "SolveB (ms)", "SolveC (ms)", "Disagreement", "Error",
}

const sheetName = "Benchmark"

// WriteReport writes results as one spreadsheet row each, in the order
// given, to w.
func WriteReport(w io.Writer, results []Result) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return err
		}
	}

	for i, r := range results {
		row := i + 2
		values := []interface{}{
			r.Directory,
			r.FileName,
			r.Vertices,
			r.MaxPriority,
			r.EdgeCount,
			float64(r.DurationA.Microseconds()) / 1000.0,
			float64(r.DurationB.Microseconds()) / 1000.0,
			float64(r.DurationC.Microseconds()) / 1000.0,
			r.Disagreement,
			errString(r.Err),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
