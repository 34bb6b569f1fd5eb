// Package stats computes per-club performance and money aggregates: games
// played and won, win percentage, transfer spend and earnings.
package stats

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/transferlens/transferlens/internal/model"
	"github.com/transferlens/transferlens/internal/seasons"
)

// TopClubsByGames ranks clubs by total appearances (home + away) and returns
// the top n ids that pass the known filter. Ties break on the lower id so
// the selection is deterministic.
func TopClubsByGames(games []model.Game, known func(int64) bool, topN int) []int64 {
	counts := make(map[int64]int)
	for _, g := range games {
		counts[g.HomeClubID]++
		counts[g.AwayClubID]++
	}

	ids := make([]int64, 0, len(counts))
	for id := range counts {
		if id != 0 && known(id) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if topN > 0 && len(ids) > topN {
		ids = ids[:topN]
	}
	return ids
}

// Calculate builds one statistics record per requested club over the games
// and enriched transfers, optionally restricted to the selected "YY/YY"
// seasons. Games carry the season as its starting year, so the selection is
// mapped through the same century rule as season sorting.
func Calculate(clubIDs []int64, games []model.Game, transfers []model.EnrichedTransfer, selectedSeasons []string) []model.TeamStatistics {
	if len(selectedSeasons) > 0 {
		games = seasons.FilterGames(games, selectedSeasons)
		transfers = seasons.FilterTransfers(transfers, selectedSeasons)
	}

	out := make([]model.TeamStatistics, 0, len(clubIDs))
	for _, id := range clubIDs {
		rec := calculateOne(id, games, transfers)
		out = append(out, rec)
	}
	return out
}

// CalculatePerSeason breaks a single club's statistics out by season, one
// record per requested label. Seasons without games or transfers still
// produce a zero-filled record; labels that do not parse are skipped.
func CalculatePerSeason(clubID int64, games []model.Game, transfers []model.EnrichedTransfer, seasonLabels []string) []model.TeamStatistics {
	var out []model.TeamStatistics
	for _, label := range seasonLabels {
		if _, err := seasons.FirstYear(label); err != nil {
			continue
		}

		seasonGames := seasons.FilterGames(games, []string{label})
		seasonTransfers := seasons.FilterTransfers(transfers, []string{label})

		rec := calculateOne(clubID, seasonGames, seasonTransfers)
		rec.Season = label
		out = append(out, rec)
	}
	return out
}

func calculateOne(clubID int64, games []model.Game, transfers []model.EnrichedTransfer) model.TeamStatistics {
	var played, won int
	for _, g := range games {
		switch clubID {
		case g.HomeClubID:
			played++
			if g.HomeClubGoals > g.AwayClubGoals {
				won++
			}
		case g.AwayClubID:
			played++
			if g.AwayClubGoals > g.HomeClubGoals {
				won++
			}
		}
	}

	spent := decimal.Zero
	earned := decimal.Zero
	for _, t := range transfers {
		if t.ToClubID == clubID {
			spent = spent.Add(t.FeeEUR)
		}
		if t.FromClubID == clubID {
			earned = earned.Add(t.FeeEUR)
		}
	}

	return model.TeamStatistics{
		ClubID:      clubID,
		GamesPlayed: played,
		GamesWon:    won,
		WinPct:      winPct(won, played),
		MoneySpent:  spent,
		MoneyEarned: earned,
	}
}

// winPct returns wins/played*100 rounded to 2 decimals, 0 when no games.
func winPct(won, played int) float64 {
	if played == 0 {
		return 0
	}
	return math.Round(float64(won)/float64(played)*100*100) / 100
}
