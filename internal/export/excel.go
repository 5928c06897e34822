package export

import (
	"github.com/petebray/monzoreport/internal/report"
	"github.com/petebray/monzoreport/internal/types"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	// DefaultFilename is the spreadsheet written into the working
	// directory
	DefaultFilename = "monzo_transactions.xlsx"

	// SheetName is the single sheet holding the report
	SheetName = "Transactions"

	// columnWidth is the fixed display width applied to every column,
	// roughly 140px
	columnWidth = 20.0
)

// Writer writes a report grid to a single-sheet xlsx workbook
type Writer struct {
	filename string
	logger   types.Logger
}

// NewWriter creates a writer targeting filename, falling back to
// DefaultFilename when empty
func NewWriter(filename string, logger types.Logger) *Writer {
	if filename == "" {
		filename = DefaultFilename
	}
	return &Writer{filename: filename, logger: logger}
}

// Write serializes the grid as a header row plus data rows, sets the
// fixed column widths and saves the workbook, overwriting any
// previous report. Returns the path written.
func (w *Writer) Write(grid *report.Grid) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", SheetName)

	if err := f.SetSheetRow(SheetName, "A1", &grid.Headers); err != nil {
		return "", errors.Wrap(err, "failed to write header row")
	}

	for i, row := range grid.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", errors.Wrap(err, "failed to compute row coordinate")
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return "", errors.Wrapf(err, "failed to write row %d", i)
		}
	}

	if grid.Columns() > 0 {
		last, err := excelize.ColumnNumberToName(grid.Columns())
		if err != nil {
			return "", errors.Wrap(err, "failed to compute last column")
		}
		if err := f.SetColWidth(SheetName, "A", last, columnWidth); err != nil {
			return "", errors.Wrap(err, "failed to set column widths")
		}
	}

	if err := f.SaveAs(w.filename); err != nil {
		return "", errors.Wrap(err, "failed to save workbook")
	}

	if w.logger != nil {
		w.logger.Debug("report written", "path", w.filename, "rows", len(grid.Rows), "columns", grid.Columns())
	}

	return w.filename, nil
}
