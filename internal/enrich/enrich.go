// Package enrich derives the analysis columns of the transfer ledger:
// numeric EUR fee and the country bucket of each side.
package enrich

import (
	"github.com/transferlens/transferlens/internal/clubs"
	"github.com/transferlens/transferlens/internal/fees"
	"github.com/transferlens/transferlens/internal/model"
	"github.com/transferlens/transferlens/internal/quality"
)

// Transfers enriches every raw transfer. The transform is pure and total:
// each input row yields exactly one output row, malformed fees become zero,
// and unmatched clubs land in the Unknown bucket. Malformed fees are
// recorded on the collector (which may be nil).
func Transfers(raw []model.Transfer, countries map[int64]string, q *quality.Collector) []model.EnrichedTransfer {
	out := make([]model.EnrichedTransfer, 0, len(raw))
	for _, t := range raw {
		fee, ok := fees.ParseChecked(t.TransferFee)
		if !ok {
			q.Add(quality.KindMalformedFee, t.TransferFee)
		}
		out = append(out, model.EnrichedTransfer{
			Transfer:    t,
			FeeEUR:      fee,
			FromCountry: clubs.ClassifyCountry(t.FromClubID, t.FromClubName, countries),
			ToCountry:   clubs.ClassifyCountry(t.ToClubID, t.ToClubName, countries),
		})
	}
	return out
}
