// Package export renders pipeline results as CSV files under the output
// directory.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/transferlens/transferlens/internal/matrix"
	"github.com/transferlens/transferlens/internal/model"
	"github.com/transferlens/transferlens/internal/pipeline"
)

// StatsHeader is the CSV header for team_stats.csv.
const StatsHeader = "club_id,club_name,season,games_played,games_won,win_pct,money_spent,money_earned"

// ClubsHeader is the CSV header for the resolved club table.
const ClubsHeader = "club_id,name,country"

// WriteAll writes every artifact of a pipeline run under dir: the four
// aggregate matrices and their column-percentage views, per-season matrix
// trees, the team statistics table and the resolved club table.
func WriteAll(dir string, res *pipeline.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	matrices := map[string]*matrix.Matrix{
		"money_in.csv":        res.MoneyIn,
		"money_out.csv":       res.MoneyOut,
		"players_in.csv":      res.PlayersIn,
		"players_out.csv":     res.PlayersOut,
		"money_in_pct.csv":    res.MoneyInPct,
		"money_out_pct.csv":   res.MoneyOutPct,
		"players_in_pct.csv":  res.PlayersInPct,
		"players_out_pct.csv": res.PlayersOutPct,
	}
	for name, m := range matrices {
		if err := writeFile(filepath.Join(dir, name), func(w io.Writer) error {
			return WriteMatrixCSV(w, m, res.Resolver.Name)
		}); err != nil {
			return err
		}
	}

	for season, sm := range res.PerSeason {
		seasonDir := filepath.Join(dir, "seasons", SeasonDirName(season))
		if err := os.MkdirAll(seasonDir, 0o755); err != nil {
			return fmt.Errorf("creating season dir %s: %w", season, err)
		}
		seasonMatrices := map[string]*matrix.Matrix{
			"money_in.csv":    sm.MoneyIn,
			"money_out.csv":   sm.MoneyOut,
			"players_in.csv":  sm.PlayersIn,
			"players_out.csv": sm.PlayersOut,
		}
		for name, m := range seasonMatrices {
			if err := writeFile(filepath.Join(seasonDir, name), func(w io.Writer) error {
				return WriteMatrixCSV(w, m, res.Resolver.Name)
			}); err != nil {
				return err
			}
		}
	}

	if err := writeFile(filepath.Join(dir, "team_stats.csv"), func(w io.Writer) error {
		return WriteStatsCSV(w, res.TeamStats, res.Resolver.Name)
	}); err != nil {
		return err
	}

	return writeFile(filepath.Join(dir, "clubs.csv"), func(w io.Writer) error {
		return WriteClubsCSV(w, res.Resolver.All())
	})
}

// SeasonDirName maps a "YY/YY" label to a filesystem-safe directory name.
func SeasonDirName(season string) string {
	return strings.ReplaceAll(season, "/", "-")
}

// WriteMatrixCSV writes a matrix with country rows and one column per club,
// labelled "Name (id)" via the nameFor lookup.
func WriteMatrixCSV(w io.Writer, m *matrix.Matrix, nameFor func(int64) string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := make([]string, 0, len(m.Cols())+1)
	header = append(header, "country")
	for _, id := range m.Cols() {
		header = append(header, columnLabel(id, nameFor))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, country := range m.Rows() {
		row := make([]string, 0, len(m.Cols())+1)
		row = append(row, country)
		for j := range m.Cols() {
			row = append(row, m.At(i, j).String())
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %q: %w", country, err)
		}
	}
	return cw.Error()
}

func columnLabel(id int64, nameFor func(int64) string) string {
	name := nameFor(id)
	if name == "" {
		return strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf("%s (%d)", name, id)
}

// WriteStatsCSV writes team statistics, one row per record. The season cell
// stays empty for whole-selection records.
func WriteStatsCSV(w io.Writer, recs []model.TeamStatistics, nameFor func(int64) string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(StatsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range recs {
		row := []string{
			strconv.FormatInt(r.ClubID, 10),
			nameFor(r.ClubID),
			r.Season,
			strconv.Itoa(r.GamesPlayed),
			strconv.Itoa(r.GamesWon),
			strconv.FormatFloat(r.WinPct, 'f', -1, 64),
			r.MoneySpent.String(),
			r.MoneyEarned.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing club %d: %w", r.ClubID, err)
		}
	}
	return cw.Error()
}

// WriteClubsCSV writes the resolved club table.
func WriteClubsCSV(w io.Writer, clubs []model.ResolvedClub) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(ClubsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, c := range clubs {
		row := []string{strconv.FormatInt(c.ID, 10), c.Name, c.Country}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing club %d: %w", c.ID, err)
		}
	}
	return cw.Error()
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}
