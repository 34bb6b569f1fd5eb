package stats

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transferlens/transferlens/internal/model"
)

func game(home, away int64, hg, ag, season int) model.Game {
	return model.Game{
		HomeClubID:    home,
		AwayClubID:    away,
		HomeClubGoals: hg,
		AwayClubGoals: ag,
		Season:        season,
	}
}

func paid(from, to int64, fee, season string) model.EnrichedTransfer {
	d, _ := decimal.NewFromString(fee)
	return model.EnrichedTransfer{
		Transfer: model.Transfer{FromClubID: from, ToClubID: to, Season: season},
		FeeEUR:   d,
	}
}

func TestTopClubsByGames(t *testing.T) {
	games := []model.Game{
		game(1, 2, 1, 0, 2020),
		game(1, 3, 2, 2, 2020),
		game(2, 1, 0, 3, 2020),
		game(3, 2, 1, 1, 2021),
	}
	all := func(int64) bool { return true }

	got := TopClubsByGames(games, all, 2)
	// Clubs 1 and 2 both played 3 games, club 3 only 2.
	assert.Equal(t, []int64{1, 2}, got)
}

func TestTopClubsByGames_TiesBreakOnLowerID(t *testing.T) {
	games := []model.Game{
		game(5, 9, 0, 0, 2020),
		game(9, 5, 0, 0, 2020),
	}
	got := TopClubsByGames(games, func(int64) bool { return true }, 0)
	assert.Equal(t, []int64{5, 9}, got)
}

func TestTopClubsByGames_UnknownFilteredOut(t *testing.T) {
	games := []model.Game{
		game(1, 2, 0, 0, 2020),
		game(0, 2, 0, 0, 2020),
	}
	known := func(id int64) bool { return id != 2 }
	got := TopClubsByGames(games, known, 10)
	assert.Equal(t, []int64{1}, got, "id 0 and unresolved ids never rank")
}

func TestCalculate(t *testing.T) {
	games := []model.Game{
		game(1, 2, 2, 1, 2020), // club 1 wins at home
		game(2, 1, 0, 0, 2020), // draw
		game(3, 1, 2, 0, 2020), // club 1 loses away
	}
	transfers := []model.EnrichedTransfer{
		paid(5, 1, "10000000", "20/21"),
		paid(1, 6, "4000000", "20/21"),
		paid(1, 7, "0", "20/21"),
	}

	recs := Calculate([]int64{1}, games, transfers, nil)
	require.Len(t, recs, 1)

	r := recs[0]
	assert.Equal(t, int64(1), r.ClubID)
	assert.Equal(t, 3, r.GamesPlayed)
	assert.Equal(t, 1, r.GamesWon)
	assert.InDelta(t, 33.33, r.WinPct, 1e-9)
	assert.Equal(t, "10000000", r.MoneySpent.String())
	assert.Equal(t, "4000000", r.MoneyEarned.String())
}

func TestCalculate_NoGamesMeansZeroWinPct(t *testing.T) {
	recs := Calculate([]int64{1}, nil, nil, nil)
	require.Len(t, recs, 1)
	assert.Zero(t, recs[0].WinPct)
	assert.True(t, recs[0].MoneySpent.IsZero())
}

func TestCalculate_SeasonSelection(t *testing.T) {
	games := []model.Game{
		game(1, 2, 1, 0, 2020),
		game(1, 2, 1, 0, 2021),
	}
	transfers := []model.EnrichedTransfer{
		paid(5, 1, "1000000", "20/21"),
		paid(5, 1, "9000000", "21/22"),
	}

	recs := Calculate([]int64{1}, games, transfers, []string{"20/21"})
	require.Len(t, recs, 1)
	assert.Equal(t, 1, recs[0].GamesPlayed)
	assert.Equal(t, "1000000", recs[0].MoneySpent.String())
}

func TestCalculatePerSeason(t *testing.T) {
	games := []model.Game{
		game(1, 2, 3, 0, 2020),
		game(2, 1, 1, 1, 2021),
	}
	transfers := []model.EnrichedTransfer{
		paid(5, 1, "2000000", "20/21"),
	}

	recs := CalculatePerSeason(1, games, transfers, []string{"20/21", "21/22", "22/23"})
	require.Len(t, recs, 3)

	assert.Equal(t, "20/21", recs[0].Season)
	assert.Equal(t, 1, recs[0].GamesWon)
	assert.Equal(t, "2000000", recs[0].MoneySpent.String())

	assert.Equal(t, "21/22", recs[1].Season)
	assert.Equal(t, 1, recs[1].GamesPlayed)
	assert.Equal(t, 0, recs[1].GamesWon)

	// Season with no activity still gets a zero-filled record.
	assert.Equal(t, "22/23", recs[2].Season)
	assert.Zero(t, recs[2].GamesPlayed)
	assert.True(t, recs[2].MoneySpent.IsZero())
}

func TestCalculatePerSeason_SkipsUnparsableLabels(t *testing.T) {
	recs := CalculatePerSeason(1, nil, nil, []string{"bogus", "20/21"})
	require.Len(t, recs, 1)
	assert.Equal(t, "20/21", recs[0].Season)
}
