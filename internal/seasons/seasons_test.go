package seasons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transferlens/transferlens/internal/model"
)

func TestFirstYear_CenturyRule(t *testing.T) {
	cases := map[string]int{
		"90/91": 1990,
		"98/99": 1998,
		"99/00": 1999,
		"00/01": 2000,
		"20/21": 2020,
		"25/26": 2025,
		// The boundary: 89 is below 90, so it lands in the 2000s window.
		// No season is ever interpreted as pre-1990.
		"89/90": 2089,
	}
	for label, want := range cases {
		got, err := FirstYear(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got, label)
	}
}

func TestFirstYear_Unparsable(t *testing.T) {
	for _, label := range []string{"", "2021", "xx/yy", "1999/00", "-1/00"} {
		_, err := FirstYear(label)
		assert.Error(t, err, label)
	}
}

func TestSortChronologically(t *testing.T) {
	got := SortChronologically([]string{"99/00", "00/01", "89/90", "90/91"})
	// 90/91 -> 1990, 99/00 -> 1999, 00/01 -> 2000, 89/90 -> 2089.
	assert.Equal(t, []string{"90/91", "99/00", "00/01", "89/90"}, got)
}

func TestSortChronologically_UnparsableLast(t *testing.T) {
	in := []string{"bogus", "20/21", "19/20"}
	got := SortChronologically(in)
	assert.Equal(t, []string{"19/20", "20/21", "bogus"}, got)
	assert.Equal(t, []string{"bogus", "20/21", "19/20"}, in, "input must not be mutated")
}

func TestYears_SkipsUnparsable(t *testing.T) {
	assert.Equal(t, []int{2020, 1999}, Years([]string{"20/21", "n/a", "99/00"}))
}

func transferIn(season string) model.EnrichedTransfer {
	return model.EnrichedTransfer{Transfer: model.Transfer{Season: season}}
}

func TestFilterTransfers(t *testing.T) {
	all := []model.EnrichedTransfer{transferIn("19/20"), transferIn("20/21"), transferIn("21/22")}

	got := FilterTransfers(all, []string{"20/21", "21/22"})
	require.Len(t, got, 2)
	assert.Equal(t, "20/21", got[0].Season)
	assert.Equal(t, "21/22", got[1].Season)

	assert.Len(t, all, 3, "input must not be mutated")
}

func TestFilterTransfers_EmptySelectionKeepsAll(t *testing.T) {
	all := []model.EnrichedTransfer{transferIn("19/20"), transferIn("20/21")}
	assert.Len(t, FilterTransfers(all, nil), 2)
	assert.Len(t, FilterTransfers(all, []string{}), 2)
}

func TestFilterGames(t *testing.T) {
	all := []model.Game{
		{HomeClubID: 1, AwayClubID: 2, Season: 2019},
		{HomeClubID: 1, AwayClubID: 2, Season: 2020},
		{HomeClubID: 1, AwayClubID: 2, Season: 1999},
	}

	got := FilterGames(all, []string{"20/21", "99/00"})
	require.Len(t, got, 2)
	assert.Equal(t, 2020, got[0].Season)
	assert.Equal(t, 1999, got[1].Season)

	assert.Len(t, FilterGames(all, nil), 3, "empty selection keeps all")
}

func TestFilterGames_UnparsableSelectionKeepsNothing(t *testing.T) {
	all := []model.Game{{HomeClubID: 1, AwayClubID: 2, Season: 2020}}
	// A selection that names no real season selects no games; it does not
	// fall back to keeping everything.
	assert.Empty(t, FilterGames(all, []string{"bogus", "n/a"}))
}

func TestDistinct(t *testing.T) {
	all := []model.EnrichedTransfer{
		transferIn("20/21"), transferIn("19/20"), transferIn("20/21"), transferIn("99/00"),
	}
	assert.Equal(t, []string{"99/00", "19/20", "20/21"}, Distinct(all))
}
