package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/transferlens/transferlens/internal/model"
)

// ClubsHeader is the CSV header for clubs.csv.
const ClubsHeader = "club_id,name,pretty_name,domestic_competition_id"

const (
	clubFields  = 4
	colClubID   = 0
	colClubName = 1
	colPretty   = 2
	colClubComp = 3
)

// CompetitionsHeader is the CSV header for competitions.csv.
const CompetitionsHeader = "competition_id,country_name"

const (
	compFields     = 2
	colCompID      = 0
	colCompCountry = 1
)

// TransfersHeader is the CSV header for transfers.csv.
const TransfersHeader = "player_id,player_name,transfer_season,transfer_fee,from_club_id,from_club_name,to_club_id,to_club_name"

const (
	transferFields  = 8
	colPlayerID     = 0
	colPlayerName   = 1
	colSeason       = 2
	colFee          = 3
	colFromClubID   = 4
	colFromClubName = 5
	colToClubID     = 6
	colToClubName   = 7
)

// GamesHeader is the CSV header for games.csv.
const GamesHeader = "home_club_id,away_club_id,home_club_goals,away_club_goals,season"

const (
	gameFields    = 5
	colHomeID     = 0
	colAwayID     = 1
	colHomeGoals  = 2
	colAwayGoals  = 3
	colGameSeason = 4
)

// RankingsHeader is the CSV header for an external ranking file.
const RankingsHeader = "rank,club_name,country,points"

const (
	rankingFields  = 4
	colRank        = 0
	colRankName    = 1
	colRankCountry = 2
	colRankPoints  = 3
)

// ReadClubs reads all clubs from a clubs.csv reader.
func ReadClubs(r io.Reader) ([]model.Club, error) {
	records, err := readAll(r, clubFields)
	if err != nil {
		return nil, err
	}

	var clubs []model.Club
	for i, rec := range records {
		id, err := parseOptionalID(rec[colClubID])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing club_id %q: %w", i+2, rec[colClubID], err)
		}
		clubs = append(clubs, model.Club{
			ID:                    id,
			Name:                  rec[colClubName],
			PrettyName:            rec[colPretty],
			DomesticCompetitionID: rec[colClubComp],
		})
	}
	return clubs, nil
}

// ReadCompetitions reads all competitions from a competitions.csv reader.
func ReadCompetitions(r io.Reader) ([]model.Competition, error) {
	records, err := readAll(r, compFields)
	if err != nil {
		return nil, err
	}

	var comps []model.Competition
	for _, rec := range records {
		comps = append(comps, model.Competition{
			ID:          rec[colCompID],
			CountryName: rec[colCompCountry],
		})
	}
	return comps, nil
}

// ReadTransfers reads all transfer records from a transfers.csv reader. The
// fee column is kept as raw text; parsing it is the enrichment step's job.
func ReadTransfers(r io.Reader) ([]model.Transfer, error) {
	records, err := readAll(r, transferFields)
	if err != nil {
		return nil, err
	}

	var transfers []model.Transfer
	for i, rec := range records {
		fromID, err := parseOptionalID(rec[colFromClubID])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing from_club_id %q: %w", i+2, rec[colFromClubID], err)
		}
		toID, err := parseOptionalID(rec[colToClubID])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing to_club_id %q: %w", i+2, rec[colToClubID], err)
		}
		transfers = append(transfers, model.Transfer{
			PlayerID:     rec[colPlayerID],
			PlayerName:   rec[colPlayerName],
			Season:       rec[colSeason],
			TransferFee:  rec[colFee],
			FromClubID:   fromID,
			FromClubName: rec[colFromClubName],
			ToClubID:     toID,
			ToClubName:   rec[colToClubName],
		})
	}
	return transfers, nil
}

// ReadGames reads all games from a games.csv reader. The season column holds
// the starting calendar year of the season, e.g. 2020 for 20/21.
func ReadGames(r io.Reader) ([]model.Game, error) {
	records, err := readAll(r, gameFields)
	if err != nil {
		return nil, err
	}

	var games []model.Game
	for i, rec := range records {
		homeID, err := parseOptionalID(rec[colHomeID])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing home_club_id %q: %w", i+2, rec[colHomeID], err)
		}
		awayID, err := parseOptionalID(rec[colAwayID])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing away_club_id %q: %w", i+2, rec[colAwayID], err)
		}
		homeGoals, err := strconv.Atoi(rec[colHomeGoals])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing home_club_goals %q: %w", i+2, rec[colHomeGoals], err)
		}
		awayGoals, err := strconv.Atoi(rec[colAwayGoals])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing away_club_goals %q: %w", i+2, rec[colAwayGoals], err)
		}
		season, err := strconv.Atoi(rec[colGameSeason])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing season %q: %w", i+2, rec[colGameSeason], err)
		}
		games = append(games, model.Game{
			HomeClubID:    homeID,
			AwayClubID:    awayID,
			HomeClubGoals: homeGoals,
			AwayClubGoals: awayGoals,
			Season:        season,
		})
	}
	return games, nil
}

// ReadRankings reads an external ranking file and returns its clubs as
// name/country pairs for reconciliation. Rank and points are validated but
// not carried further.
func ReadRankings(r io.Reader) ([]model.NamedClub, error) {
	records, err := readAll(r, rankingFields)
	if err != nil {
		return nil, err
	}

	var clubs []model.NamedClub
	for i, rec := range records {
		if _, err := strconv.Atoi(rec[colRank]); err != nil {
			return nil, fmt.Errorf("row %d: parsing rank %q: %w", i+2, rec[colRank], err)
		}
		clubs = append(clubs, model.NamedClub{
			Name:    rec[colRankName],
			Country: rec[colRankCountry],
		})
	}
	return clubs, nil
}

// readAll reads an entire CSV stream, enforces the field count and strips
// the header row.
func readAll(r io.Reader, fields int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

// parseOptionalID parses a club id column where an empty cell means the club
// side is absent (a free agent, a retirement, an unknown counterparty).
func parseOptionalID(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
