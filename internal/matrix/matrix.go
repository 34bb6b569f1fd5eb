// Package matrix builds the country-bucket × club aggregation matrices that
// drive every dashboard visualization: money in/out, players in/out, their
// column-percentage variants, and the per-season breakdown.
package matrix

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/transferlens/transferlens/internal/model"
)

// Matrix is a dense country-bucket × club table of decimal values. Columns
// are the externally supplied club ids in their given order; a requested
// column is never dropped, even when every cell in it is zero.
type Matrix struct {
	rows   []string
	cols   []int64
	rowIdx map[string]int
	colIdx map[int64]int
	cells  [][]decimal.Decimal
}

// New creates a zero-filled matrix with the given row and column order.
func New(rows []string, cols []int64) *Matrix {
	m := &Matrix{
		rows:   append([]string(nil), rows...),
		cols:   append([]int64(nil), cols...),
		rowIdx: make(map[string]int, len(rows)),
		colIdx: make(map[int64]int, len(cols)),
	}
	for i, r := range m.rows {
		m.rowIdx[r] = i
	}
	for j, c := range m.cols {
		m.colIdx[c] = j
	}
	m.cells = make([][]decimal.Decimal, len(m.rows))
	for i := range m.cells {
		m.cells[i] = make([]decimal.Decimal, len(m.cols))
	}
	return m
}

// Rows returns the ordered row labels.
func (m *Matrix) Rows() []string {
	return m.rows
}

// Cols returns the ordered column club ids.
func (m *Matrix) Cols() []int64 {
	return m.cols
}

// Empty reports whether the matrix has no rows. An empty matrix still
// carries its full column set.
func (m *Matrix) Empty() bool {
	return len(m.rows) == 0
}

// Value returns the cell for a row label and club id, zero when either is
// not present.
func (m *Matrix) Value(row string, col int64) decimal.Decimal {
	i, ok := m.rowIdx[row]
	if !ok {
		return decimal.Zero
	}
	j, ok := m.colIdx[col]
	if !ok {
		return decimal.Zero
	}
	return m.cells[i][j]
}

// At returns the cell at row index i, column index j.
func (m *Matrix) At(i, j int) decimal.Decimal {
	return m.cells[i][j]
}

// ColumnSum returns the sum of a column, zero for unknown ids.
func (m *Matrix) ColumnSum(col int64) decimal.Decimal {
	j, ok := m.colIdx[col]
	if !ok {
		return decimal.Zero
	}
	sum := decimal.Zero
	for i := range m.rows {
		sum = sum.Add(m.cells[i][j])
	}
	return sum
}

// RowSum returns the sum of a row, zero for unknown labels.
func (m *Matrix) RowSum(row string) decimal.Decimal {
	i, ok := m.rowIdx[row]
	if !ok {
		return decimal.Zero
	}
	sum := decimal.Zero
	for j := range m.cols {
		sum = sum.Add(m.cells[i][j])
	}
	return sum
}

func (m *Matrix) add(row string, col int64, v decimal.Decimal) {
	i, okRow := m.rowIdx[row]
	j, okCol := m.colIdx[col]
	if !okRow || !okCol {
		return
	}
	m.cells[i][j] = m.cells[i][j].Add(v)
}

// sentinelBuckets are the non-country row labels.
var sentinelBuckets = map[string]bool{
	model.BucketWithoutClub: true,
	model.BucketRetired:     true,
	model.BucketUnknown:     true,
}

// OrderedRows sorts the country labels alphabetically and pins the requested
// sentinel buckets to the bottom, in the order given by extras. Sentinel
// buckets not named in extras are dropped (exact-match filter): every matrix
// builder names exactly the special rows it carries.
func OrderedRows(labels []string, extras ...string) []string {
	present := make(map[string]bool, len(labels))
	var core []string
	for _, l := range labels {
		if sentinelBuckets[l] {
			present[l] = true
			continue
		}
		core = append(core, l)
	}
	sort.Strings(core)

	for _, e := range extras {
		if present[e] {
			core = append(core, e)
		}
	}
	return core
}
