package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transferlens/transferlens/internal/clubs"
	"github.com/transferlens/transferlens/internal/matrix"
	"github.com/transferlens/transferlens/internal/model"
	"github.com/transferlens/transferlens/internal/pipeline"
)

func testResolver() *clubs.Resolver {
	return clubs.NewResolver([]model.ResolvedClub{
		{ID: 11, Name: "Arsenal FC", Country: "England"},
		{ID: 12, Name: "Real Madrid", Country: "Spain"},
	})
}

func testTransfers() []model.EnrichedTransfer {
	fee := decimal.NewFromInt(35000000)
	return []model.EnrichedTransfer{
		{
			Transfer:    model.Transfer{FromClubID: 12, ToClubID: 11, Season: "20/21"},
			FeeEUR:      fee,
			FromCountry: "Spain",
			ToCountry:   "England",
		},
	}
}

func testResult() *pipeline.Result {
	ids := []int64{11, 12}
	transfers := testTransfers()
	res := &pipeline.Result{
		Resolver:   testResolver(),
		Transfers:  transfers,
		TopClubIDs: ids,
		MoneyIn:    matrix.MoneyIn(ids, transfers),
		MoneyOut:   matrix.MoneyOut(ids, transfers),
		PlayersIn:  matrix.PlayersIn(ids, transfers),
		PlayersOut: matrix.PlayersOut(ids, transfers),
		PerSeason:  matrix.PerSeason(ids, transfers),
		Seasons:    []string{"20/21"},
		TeamStats: []model.TeamStatistics{
			{
				ClubID:      11,
				GamesPlayed: 2,
				GamesWon:    1,
				WinPct:      50,
				MoneySpent:  decimal.NewFromInt(35000000),
				MoneyEarned: decimal.Zero,
			},
		},
	}
	res.MoneyInPct = matrix.ColumnPercentage(res.MoneyIn)
	res.MoneyOutPct = matrix.ColumnPercentage(res.MoneyOut)
	res.PlayersInPct = matrix.ColumnPercentage(res.PlayersIn)
	res.PlayersOutPct = matrix.ColumnPercentage(res.PlayersOut)
	return res
}

func TestWriteMatrixCSV(t *testing.T) {
	res := testResult()

	var sb strings.Builder
	err := WriteMatrixCSV(&sb, res.MoneyIn, res.Resolver.Name)
	require.NoError(t, err)

	assert.Equal(t,
		"country,Arsenal FC (11),Real Madrid (12)\n"+
			"Spain,35000000,0\n",
		sb.String())
}

func TestWriteMatrixCSV_UnknownColumnFallsBackToID(t *testing.T) {
	m := matrix.New([]string{"Spain"}, []int64{77})

	var sb strings.Builder
	err := WriteMatrixCSV(&sb, m, testResolver().Name)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sb.String(), "country,77\n"))
}

func TestWriteStatsCSV(t *testing.T) {
	res := testResult()

	var sb strings.Builder
	err := WriteStatsCSV(&sb, res.TeamStats, res.Resolver.Name)
	require.NoError(t, err)

	assert.Equal(t,
		StatsHeader+"\n"+
			"11,Arsenal FC,,2,1,50,35000000,0\n",
		sb.String())
}

func TestWriteClubsCSV(t *testing.T) {
	var sb strings.Builder
	err := WriteClubsCSV(&sb, testResolver().All())
	require.NoError(t, err)

	assert.Equal(t,
		ClubsHeader+"\n"+
			"11,Arsenal FC,England\n"+
			"12,Real Madrid,Spain\n",
		sb.String())
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteAll(dir, testResult()))

	for _, name := range []string{
		"money_in.csv", "money_out.csv", "players_in.csv", "players_out.csv",
		"money_in_pct.csv", "money_out_pct.csv", "players_in_pct.csv", "players_out_pct.csv",
		"team_stats.csv", "clubs.csv",
		filepath.Join("seasons", "20-21", "money_in.csv"),
		filepath.Join("seasons", "20-21", "players_out.csv"),
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "money_in_pct.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Spain,100,0")
}

func TestSeasonDirName(t *testing.T) {
	assert.Equal(t, "20-21", SeasonDirName("20/21"))
	assert.Equal(t, "99-00", SeasonDirName("99/00"))
}
