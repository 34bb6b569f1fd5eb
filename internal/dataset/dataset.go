// Package dataset loads the transfer-market CSV tables from disk.
package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/transferlens/transferlens/internal/model"
)

// File names of the required tables inside the dataset directory.
const (
	ClubsFile        = "clubs.csv"
	CompetitionsFile = "competitions.csv"
	TransfersFile    = "transfers.csv"
	GamesFile        = "games.csv"
)

// Dataset holds the four core tables after loading.
type Dataset struct {
	Clubs        []model.Club
	Competitions []model.Competition
	Transfers    []model.Transfer
	Games        []model.Game
}

// Load reads all required tables from basePath. A missing or malformed
// table is an error; there is no point running the pipeline on a partial
// dataset.
func Load(basePath string) (*Dataset, error) {
	var ds Dataset

	if err := loadTable(basePath, ClubsFile, &ds.Clubs, ReadClubs); err != nil {
		return nil, err
	}
	if err := loadTable(basePath, CompetitionsFile, &ds.Competitions, ReadCompetitions); err != nil {
		return nil, err
	}
	if err := loadTable(basePath, TransfersFile, &ds.Transfers, ReadTransfers); err != nil {
		return nil, err
	}
	if err := loadTable(basePath, GamesFile, &ds.Games, ReadGames); err != nil {
		return nil, err
	}

	return &ds, nil
}

// LoadRankings reads an optional external ranking file by full path.
func LoadRankings(path string) ([]model.NamedClub, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ranking file: %w", err)
	}
	defer f.Close()

	clubs, err := ReadRankings(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return clubs, nil
}

func loadTable[T any](basePath, name string, dst *[]T, read func(r io.Reader) ([]T, error)) error {
	f, err := os.Open(filepath.Join(basePath, name))
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	rows, err := read(f)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = rows
	return nil
}
