package model

// Game represents a row in games.csv.
type Game struct {
	HomeClubID    int64
	AwayClubID    int64
	HomeClubGoals int
	AwayClubGoals int
	Season        int // four-digit year the season starts in
}
