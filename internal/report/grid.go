package report

import "fmt"

const (
	// totalLabel is the label on the grand-total row
	totalLabel = "Total Expenditure"

	// subtotalPrefix marks the per-category subtotal row
	subtotalPrefix = "∑ "
)

// Grid is the rectangular cell matrix written to the report artifact.
// Every category contributes a description column and an amount
// column; the final row holds the grand total.
type Grid struct {
	Headers []string
	Rows    [][]string
	Total   float64
}

// Columns returns the number of columns in the grid
func (g *Grid) Columns() int {
	return len(g.Headers)
}

// column is the pair of cell lists one category contributes
type column struct {
	descriptions []string
	amounts      []string
}

// BuildGrid lays the summary out as two columns per category in
// enumeration order. Each category ends with a subtotal row; shorter
// categories are padded with empty cells so the grid stays
// rectangular.
func BuildGrid(s *Summary) *Grid {
	categories := s.Categories()

	headers := make([]string, 0, 2*len(categories))
	columns := make([]column, 0, len(categories))
	maxRows := 0

	for _, category := range categories {
		col := column{}
		for _, e := range s.Expenses(category) {
			col.descriptions = append(col.descriptions, e.Description)
			col.amounts = append(col.amounts, FormatGBP(e.Amount))
		}

		col.descriptions = append(col.descriptions, subtotalPrefix+category)
		col.amounts = append(col.amounts, FormatGBP(s.CategoryTotal(category)))

		if len(col.descriptions) > maxRows {
			maxRows = len(col.descriptions)
		}

		headers = append(headers, category, "£ "+category)
		columns = append(columns, col)
	}

	rows := make([][]string, 0, maxRows+1)
	for i := 0; i < maxRows; i++ {
		row := make([]string, 0, len(headers))
		for _, col := range columns {
			row = append(row, cellAt(col.descriptions, i), cellAt(col.amounts, i))
		}
		rows = append(rows, row)
	}

	// Grand-total row spans the full width, first two cells only
	total := s.GrandTotal()
	totalRow := make([]string, len(headers))
	if len(totalRow) > 1 {
		totalRow[0] = totalLabel
		totalRow[1] = FormatGBP(total)
	}
	rows = append(rows, totalRow)

	return &Grid{
		Headers: headers,
		Rows:    rows,
		Total:   total,
	}
}

// cellAt returns the value at index i, or the empty string once the
// column has run out of entries
func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

// FormatGBP renders a major-unit amount with the currency symbol and
// two decimal places
func FormatGBP(amount float64) string {
	return fmt.Sprintf("£%.2f", amount)
}
