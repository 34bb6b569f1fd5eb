package matrix

import "github.com/transferlens/transferlens/internal/model"

// SeasonMatrices groups the four core matrices for one season.
type SeasonMatrices struct {
	MoneyIn    *Matrix
	MoneyOut   *Matrix
	PlayersIn  *Matrix
	PlayersOut *Matrix
}

// PerSeason partitions the enriched transfers by season label and builds the
// four matrices per partition, so a client can re-aggregate any season
// subset without re-running club resolution or fee parsing.
func PerSeason(clubIDs []int64, transfers []model.EnrichedTransfer) map[string]SeasonMatrices {
	bySeason := make(map[string][]model.EnrichedTransfer)
	for _, t := range transfers {
		bySeason[t.Season] = append(bySeason[t.Season], t)
	}

	out := make(map[string]SeasonMatrices, len(bySeason))
	for season, ts := range bySeason {
		out[season] = SeasonMatrices{
			MoneyIn:    MoneyIn(clubIDs, ts),
			MoneyOut:   MoneyOut(clubIDs, ts),
			PlayersIn:  PlayersIn(clubIDs, ts),
			PlayersOut: PlayersOut(clubIDs, ts),
		}
	}
	return out
}
