package model

// Country buckets that are not real countries. They always render at the
// bottom of a matrix, in this order.
const (
	BucketWithoutClub = "Without Club"
	BucketRetired     = "Retired"
	BucketUnknown     = "Unknown"
)

// Club represents a row in clubs.csv, the primary club table.
type Club struct {
	ID                    int64
	Name                  string
	PrettyName            string // optional display name
	DomesticCompetitionID string
}

// Competition represents a row in competitions.csv. Used only to resolve a
// club's country via its domestic competition.
type Competition struct {
	ID          string
	CountryName string
}

// ResolvedClub is a club with its country bucket attached. The resolved club
// table maps each club id to exactly one name and one country.
type ResolvedClub struct {
	ID      int64
	Name    string
	Country string
}

// NamedClub is a club known only by name, from a ranking file or the
// free-text club report. It has no id until reconciled against the ledger.
type NamedClub struct {
	Name    string
	Country string
}
