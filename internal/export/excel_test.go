package export

import (
	"path/filepath"
	"testing"

	"github.com/petebray/monzoreport/internal/report"
	"github.com/petebray/monzoreport/pkg/monzo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildTestGrid(t *testing.T) *report.Grid {
	t.Helper()
	txns := []*monzo.Transaction{
		{Amount: -500, Description: "Coffee Shop", Category: "eating_out"},
		{Amount: -1250, Description: "Supermarket", Category: "groceries"},
	}
	return report.BuildGrid(report.Categorize(txns, report.DefaultCategories()))
}

func TestWriter_Write(t *testing.T) {
	grid := buildTestGrid(t)
	path := filepath.Join(t.TempDir(), "monzo_transactions.xlsx")

	writer := NewWriter(path, nil)
	written, err := writer.Write(grid)

	require.NoError(t, err)
	assert.Equal(t, path, written)

	// Read the workbook back and check the layout survived
	f, err := excelize.OpenFile(written)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Equal(t, []string{SheetName}, sheets)

	header, err := f.GetCellValue(SheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Eating Out", header)

	amountHeader, err := f.GetCellValue(SheetName, "B1")
	require.NoError(t, err)
	assert.Equal(t, "£ Eating Out", amountHeader)

	first, err := f.GetCellValue(SheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Coffee Shop", first)

	subtotal, err := f.GetCellValue(SheetName, "A3")
	require.NoError(t, err)
	assert.Equal(t, "∑ Eating Out", subtotal)

	// Grand-total row sits below the deepest category
	total, err := f.GetCellValue(SheetName, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Total Expenditure", total)

	totalAmount, err := f.GetCellValue(SheetName, "B4")
	require.NoError(t, err)
	assert.Equal(t, "£17.50", totalAmount)
}

func TestWriter_FixedColumnWidths(t *testing.T) {
	grid := buildTestGrid(t)
	path := filepath.Join(t.TempDir(), "report.xlsx")

	_, err := NewWriter(path, nil).Write(grid)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	// Every column gets the same width, independent of content
	for _, col := range []string{"A", "B", "N"} {
		width, err := f.GetColWidth(SheetName, col)
		require.NoError(t, err)
		assert.InDelta(t, 20.0, width, 0.01)
	}
}

func TestWriter_OverwritesPreviousReport(t *testing.T) {
	grid := buildTestGrid(t)
	path := filepath.Join(t.TempDir(), "report.xlsx")

	writer := NewWriter(path, nil)

	_, err := writer.Write(grid)
	require.NoError(t, err)

	_, err = writer.Write(grid)
	require.NoError(t, err)
}

func TestNewWriter_DefaultFilename(t *testing.T) {
	writer := NewWriter("", nil)
	assert.Equal(t, DefaultFilename, writer.filename)
}

func TestNopViewer(t *testing.T) {
	assert.NoError(t, NopViewer{}.Open("anything.xlsx"))
}
