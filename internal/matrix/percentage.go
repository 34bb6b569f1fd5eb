package matrix

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ColumnPercentage converts each column independently to its share of the
// column total, scaled to 0-100. Columns summing to zero stay all-zero
// instead of dividing by zero. Row and column order are preserved.
func ColumnPercentage(m *Matrix) *Matrix {
	out := New(m.rows, m.cols)
	for j := range m.cols {
		total := decimal.Zero
		for i := range m.rows {
			total = total.Add(m.cells[i][j])
		}
		if !total.IsPositive() {
			continue
		}
		for i := range m.rows {
			out.cells[i][j] = m.cells[i][j].Mul(hundred).Div(total)
		}
	}
	return out
}
