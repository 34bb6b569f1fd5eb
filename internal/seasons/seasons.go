// Package seasons handles the "YY/YY" season label format: chronological
// ordering, year mapping, and season filtering.
package seasons

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/transferlens/transferlens/internal/model"
)

// sentinelKey sorts unparsable labels after every valid season.
const sentinelKey = 9999

// FirstYear maps a "YY/YY" label to the four-digit year the season starts
// in. Two-digit years 90-99 are the 1990s and 00-89 are 2000 onward, so no
// label ever resolves before 1990 and "89/90" means 2089, not 1989.
func FirstYear(label string) (int, error) {
	part, _, ok := strings.Cut(label, "/")
	if !ok {
		return 0, fmt.Errorf("season %q: missing separator", label)
	}
	yy, err := strconv.Atoi(part)
	if err != nil {
		return 0, fmt.Errorf("season %q: %w", label, err)
	}
	if yy < 0 || yy > 99 {
		return 0, fmt.Errorf("season %q: first year out of range", label)
	}
	if yy >= 90 {
		return 1900 + yy, nil
	}
	return 2000 + yy, nil
}

func sortKey(label string) int {
	year, err := FirstYear(label)
	if err != nil {
		return sentinelKey
	}
	return year
}

// SortChronologically returns the labels ordered by starting year, with
// unparsable labels last. The input slice is not modified.
func SortChronologically(labels []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)
	sort.SliceStable(out, func(i, j int) bool {
		return sortKey(out[i]) < sortKey(out[j])
	})
	return out
}

// Years maps season labels to their starting years, skipping labels that do
// not parse. Used to filter the games table, which keys seasons by year.
func Years(labels []string) []int {
	years := make([]int, 0, len(labels))
	for _, label := range labels {
		year, err := FirstYear(label)
		if err != nil {
			continue
		}
		years = append(years, year)
	}
	return years
}

// FilterTransfers returns the transfers whose season is in the selection. An
// empty selection keeps everything. The input slice is never mutated; a
// fresh slice is returned when filtering applies.
func FilterTransfers(transfers []model.EnrichedTransfer, selected []string) []model.EnrichedTransfer {
	if len(selected) == 0 {
		return transfers
	}
	keep := make(map[string]bool, len(selected))
	for _, s := range selected {
		keep[s] = true
	}
	out := make([]model.EnrichedTransfer, 0, len(transfers))
	for _, t := range transfers {
		if keep[t.Season] {
			out = append(out, t)
		}
	}
	return out
}

// FilterGames returns the games whose season is in the selection. Games key
// seasons by starting year, so the labels go through the same century rule
// as sorting. An empty selection keeps everything.
func FilterGames(games []model.Game, selected []string) []model.Game {
	if len(selected) == 0 {
		return games
	}
	keep := make(map[int]bool, len(selected))
	for _, y := range Years(selected) {
		keep[y] = true
	}
	out := make([]model.Game, 0, len(games))
	for _, g := range games {
		if keep[g.Season] {
			out = append(out, g)
		}
	}
	return out
}

// Distinct returns the unique season labels present in the transfers, in
// chronological order.
func Distinct(transfers []model.EnrichedTransfer) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, t := range transfers {
		if seen[t.Season] {
			continue
		}
		seen[t.Season] = true
		labels = append(labels, t.Season)
	}
	return SortChronologically(labels)
}
