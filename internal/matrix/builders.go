package matrix

import (
	"github.com/shopspring/decimal"

	"github.com/transferlens/transferlens/internal/model"
)

var one = decimal.NewFromInt(1)

// moneyExcluded lists the buckets that never appear as rows of a money
// matrix: a fee cannot originate from or flow to "no club" or retirement.
// Unknown is kept — long-tail clubs still move real money.
var moneyExcluded = map[string]bool{
	model.BucketWithoutClub: true,
	model.BucketRetired:     true,
}

// accumulator gathers cell values before row order is known.
type accumulator struct {
	cols   []int64
	colSet map[int64]bool
	cells  map[string]map[int64]decimal.Decimal
}

func newAccumulator(cols []int64) *accumulator {
	colSet := make(map[int64]bool, len(cols))
	for _, c := range cols {
		colSet[c] = true
	}
	return &accumulator{
		cols:   cols,
		colSet: colSet,
		cells:  make(map[string]map[int64]decimal.Decimal),
	}
}

func (a *accumulator) add(row string, col int64, v decimal.Decimal) {
	byCol, ok := a.cells[row]
	if !ok {
		byCol = make(map[int64]decimal.Decimal)
		a.cells[row] = byCol
	}
	byCol[col] = byCol[col].Add(v)
}

// build materializes the matrix: rows ordered via OrderedRows with the given
// sentinel extras, columns exactly the requested club ids, missing
// combinations zero-filled.
func (a *accumulator) build(extras ...string) *Matrix {
	labels := make([]string, 0, len(a.cells))
	for row := range a.cells {
		labels = append(labels, row)
	}

	m := New(OrderedRows(labels, extras...), a.cols)
	for row, byCol := range a.cells {
		for col, v := range byCol {
			m.add(row, col, v)
		}
	}
	return m
}

// MoneyIn sums incoming-transfer fees per origin country for each buying
// club. Rows are from_country (Without Club and Retired excluded, Unknown
// kept); columns are the buying clubs restricted to clubIDs. Zero-fee
// transfers (free, loan, unparsable) do not contribute at all.
func MoneyIn(clubIDs []int64, transfers []model.EnrichedTransfer) *Matrix {
	agg := newAccumulator(clubIDs)
	for _, t := range transfers {
		if !agg.colSet[t.ToClubID] {
			continue
		}
		if !t.FeeEUR.IsPositive() {
			continue
		}
		if moneyExcluded[t.FromCountry] {
			continue
		}
		agg.add(t.FromCountry, t.ToClubID, t.FeeEUR)
	}
	return agg.build(model.BucketUnknown)
}

// MoneyOut sums outgoing-transfer fees per destination country for each
// selling club. Rows are to_country (same exclusions as MoneyIn); columns
// are the selling clubs.
func MoneyOut(clubIDs []int64, transfers []model.EnrichedTransfer) *Matrix {
	agg := newAccumulator(clubIDs)
	for _, t := range transfers {
		if !agg.colSet[t.FromClubID] {
			continue
		}
		if !t.FeeEUR.IsPositive() {
			continue
		}
		if moneyExcluded[t.ToCountry] {
			continue
		}
		agg.add(t.ToCountry, t.FromClubID, t.FeeEUR)
	}
	return agg.build(model.BucketUnknown)
}

// PlayersIn counts players received per origin country for each buying club,
// regardless of fee. A player arriving from "no club" is meaningful here, so
// every sentinel bucket is kept.
func PlayersIn(clubIDs []int64, transfers []model.EnrichedTransfer) *Matrix {
	agg := newAccumulator(clubIDs)
	for _, t := range transfers {
		if !agg.colSet[t.ToClubID] {
			continue
		}
		agg.add(t.FromCountry, t.ToClubID, one)
	}
	return agg.build(model.BucketWithoutClub, model.BucketRetired, model.BucketUnknown)
}

// PlayersOut counts players sent per destination country for each selling
// club, regardless of fee. Without Club captures players released without a
// new club, Retired captures retirements.
func PlayersOut(clubIDs []int64, transfers []model.EnrichedTransfer) *Matrix {
	agg := newAccumulator(clubIDs)
	for _, t := range transfers {
		if !agg.colSet[t.FromClubID] {
			continue
		}
		agg.add(t.ToCountry, t.FromClubID, one)
	}
	return agg.build(model.BucketWithoutClub, model.BucketRetired, model.BucketUnknown)
}
