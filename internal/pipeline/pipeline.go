// Package pipeline runs the full analysis: load the dataset, resolve club
// identities, enrich the ledger, pick the top clubs, and build every
// aggregate the exporters render.
package pipeline

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/transferlens/transferlens/internal/clubreport"
	"github.com/transferlens/transferlens/internal/clubs"
	"github.com/transferlens/transferlens/internal/config"
	"github.com/transferlens/transferlens/internal/dataset"
	"github.com/transferlens/transferlens/internal/enrich"
	"github.com/transferlens/transferlens/internal/matrix"
	"github.com/transferlens/transferlens/internal/model"
	"github.com/transferlens/transferlens/internal/quality"
	"github.com/transferlens/transferlens/internal/seasons"
	"github.com/transferlens/transferlens/internal/stats"
)

// Result is everything one pipeline run produces.
type Result struct {
	Resolver   *clubs.Resolver
	Transfers  []model.EnrichedTransfer
	Games      []model.Game
	TopClubIDs []int64

	MoneyIn    *matrix.Matrix
	MoneyOut   *matrix.Matrix
	PlayersIn  *matrix.Matrix
	PlayersOut *matrix.Matrix

	MoneyInPct    *matrix.Matrix
	MoneyOutPct   *matrix.Matrix
	PlayersInPct  *matrix.Matrix
	PlayersOutPct *matrix.Matrix

	PerSeason map[string]matrix.SeasonMatrices
	Seasons   []string

	TeamStats []model.TeamStatistics

	Quality *quality.Collector
}

// Run executes the pipeline described by cfg. Extra identity sources are
// optional, but once configured they must load: a configured path that
// cannot be read is an error, not a silent skip.
func Run(cfg *config.Config, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	q := quality.NewCollector()

	ds, err := dataset.Load(cfg.Datasets.BasePath)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	logger.Info("dataset loaded",
		zap.Int("clubs", len(ds.Clubs)),
		zap.Int("competitions", len(ds.Competitions)),
		zap.Int("transfers", len(ds.Transfers)),
		zap.Int("games", len(ds.Games)))

	resolver, err := buildResolver(cfg, ds, q, logger)
	if err != nil {
		return nil, err
	}

	enriched := enrich.Transfers(ds.Transfers, resolver.CountryMap(), q)
	transfers := seasons.FilterTransfers(enriched, cfg.Analysis.Seasons)
	games := seasons.FilterGames(ds.Games, cfg.Analysis.Seasons)
	if n := len(cfg.Analysis.Seasons); n > 0 {
		logger.Info("season selection applied",
			zap.Int("seasons", n),
			zap.Int("transfers", len(transfers)),
			zap.Int("games", len(games)))
	}

	topIDs := stats.TopClubsByGames(games, resolver.Has, cfg.Analysis.TopN)
	logger.Info("top clubs selected", zap.Int("count", len(topIDs)))

	seasonLabels := seasons.Distinct(transfers)
	for _, label := range seasonLabels {
		if _, err := seasons.FirstYear(label); err != nil {
			q.Add(quality.KindUnparsableSeason, label)
		}
	}

	res := &Result{
		Resolver:   resolver,
		Transfers:  transfers,
		Games:      games,
		TopClubIDs: topIDs,
		MoneyIn:    matrix.MoneyIn(topIDs, transfers),
		MoneyOut:   matrix.MoneyOut(topIDs, transfers),
		PlayersIn:  matrix.PlayersIn(topIDs, transfers),
		PlayersOut: matrix.PlayersOut(topIDs, transfers),
		PerSeason:  matrix.PerSeason(topIDs, transfers),
		Seasons:    seasonLabels,
		TeamStats:  stats.Calculate(topIDs, games, transfers, nil),
		Quality:    q,
	}
	res.MoneyInPct = matrix.ColumnPercentage(res.MoneyIn)
	res.MoneyOutPct = matrix.ColumnPercentage(res.MoneyOut)
	res.PlayersInPct = matrix.ColumnPercentage(res.PlayersIn)
	res.PlayersOutPct = matrix.ColumnPercentage(res.PlayersOut)

	if q.Total() > 0 {
		logger.Warn("data-quality findings recorded",
			zap.Int("malformed_fees", q.Count(quality.KindMalformedFee)),
			zap.Int("unmatched_clubs", q.Count(quality.KindUnmatchedClub)),
			zap.Int("unparsable_seasons", q.Count(quality.KindUnparsableSeason)),
			zap.Int("no_competition", q.Count(quality.KindNoCompetition)))
	}
	return res, nil
}

// buildResolver merges the primary club table with the optional name-only
// sources, in precedence order: primary, ranking file, club report.
func buildResolver(cfg *config.Config, ds *dataset.Dataset, q *quality.Collector, logger *zap.Logger) (*clubs.Resolver, error) {
	knownComps := make(map[string]bool, len(ds.Competitions))
	for _, c := range ds.Competitions {
		knownComps[c.ID] = true
	}
	for _, c := range ds.Clubs {
		if !knownComps[c.DomesticCompetitionID] {
			q.Add(quality.KindNoCompetition, c.Name)
		}
	}

	primary := clubs.Preprocess(ds.Clubs, ds.Competitions)
	candidates := clubs.CandidatesFromTransfers(ds.Transfers)
	tables := [][]model.ResolvedClub{primary}

	if path := cfg.Datasets.RankingFile; path != "" {
		ranked, err := dataset.LoadRankings(path)
		if err != nil {
			return nil, fmt.Errorf("loading ranking file: %w", err)
		}
		matched := reconcile(candidates, ranked, q)
		logger.Info("ranking file reconciled",
			zap.String("path", path),
			zap.Int("matched", len(matched)),
			zap.Int("unmatched", len(ranked)-len(matched)))
		tables = append(tables, matched)
	}

	if path := cfg.Datasets.ClubReport; path != "" {
		named, err := loadClubReport(path)
		if err != nil {
			return nil, err
		}
		matched := reconcile(candidates, named, q)
		logger.Info("club report reconciled",
			zap.String("path", path),
			zap.Int("matched", len(matched)),
			zap.Int("unmatched", len(named)-len(matched)))
		tables = append(tables, matched)
	}

	return clubs.NewResolver(clubs.Merge(tables...)), nil
}

func reconcile(candidates []clubs.Candidate, named []model.NamedClub, q *quality.Collector) []model.ResolvedClub {
	matched, unmatched := clubs.ReconcileNamed(candidates, named)
	for _, u := range unmatched {
		q.Add(quality.KindUnmatchedClub, u.Name)
	}
	return matched
}

func loadClubReport(path string) ([]model.NamedClub, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening club report: %w", err)
	}
	defer f.Close()

	named, err := clubreport.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing club report: %w", err)
	}
	return named, nil
}
