// Package clubs builds the authoritative club id -> name/country lookup from
// the primary club table plus name-only sources (ranking files, free-text
// reports), reconciled against the transfer ledger.
package clubs

import (
	"github.com/transferlens/transferlens/internal/model"
)

// Preprocess attaches a country bucket to every club in the primary table via
// its domestic competition (left join). Clubs whose competition is missing
// resolve to Unknown; that is the normal fallback, not an error.
func Preprocess(primary []model.Club, competitions []model.Competition) []model.ResolvedClub {
	countryByComp := make(map[string]string, len(competitions))
	for _, c := range competitions {
		if _, ok := countryByComp[c.ID]; !ok {
			countryByComp[c.ID] = c.CountryName
		}
	}

	out := make([]model.ResolvedClub, 0, len(primary))
	for _, c := range primary {
		country := countryByComp[c.DomesticCompetitionID]
		if country == "" {
			country = model.BucketUnknown
		}
		out = append(out, model.ResolvedClub{ID: c.ID, Name: c.Name, Country: country})
	}
	return out
}

// Candidate is a club id/name pair observed in the transfer ledger.
type Candidate struct {
	ID   int64
	Name string
}

// CandidatesFromTransfers collects every distinct club id/name pair appearing
// on either side of the ledger, deduplicated by id (first occurrence wins).
func CandidatesFromTransfers(transfers []model.Transfer) []Candidate {
	seen := make(map[int64]bool)
	var out []Candidate
	add := func(id int64, name string) {
		if id == 0 || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, Candidate{ID: id, Name: name})
	}
	for _, t := range transfers {
		add(t.FromClubID, t.FromClubName)
		add(t.ToClubID, t.ToClubName)
	}
	return out
}

// ReconcileNamed resolves name-only club records against ledger candidates by
// canonical-name equality. This is a closed-world inner join: entries whose
// canonical name never appears in the ledger are dropped and returned
// separately for diagnostics, never guessed at.
func ReconcileNamed(candidates []Candidate, named []model.NamedClub) (matched []model.ResolvedClub, unmatched []model.NamedClub) {
	byCanonical := make(map[string]Candidate, len(candidates))
	for _, c := range candidates {
		key := CanonicalName(c.Name)
		if _, ok := byCanonical[key]; !ok {
			byCanonical[key] = c
		}
	}

	for _, n := range named {
		cand, ok := byCanonical[CanonicalName(n.Name)]
		if !ok {
			unmatched = append(unmatched, n)
			continue
		}
		country := n.Country
		if country == "" {
			country = model.BucketUnknown
		}
		matched = append(matched, model.ResolvedClub{ID: cand.ID, Name: cand.Name, Country: country})
	}
	return matched, unmatched
}

// Merge concatenates club tables and deduplicates by id, keeping the first
// occurrence. Callers pass tables in precedence order: primary table first,
// then ranking-derived, then report-derived.
func Merge(tables ...[]model.ResolvedClub) []model.ResolvedClub {
	seen := make(map[int64]bool)
	var out []model.ResolvedClub
	for _, table := range tables {
		for _, c := range table {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			out = append(out, c)
		}
	}
	return out
}

// Resolver provides in-memory lookup over the merged club table. It is the
// single source every downstream component resolves club identity through.
type Resolver struct {
	clubs []model.ResolvedClub
	byID  map[int64]model.ResolvedClub
}

// NewResolver creates a Resolver from a merged club table.
func NewResolver(clubs []model.ResolvedClub) *Resolver {
	byID := make(map[int64]model.ResolvedClub, len(clubs))
	for _, c := range clubs {
		if _, ok := byID[c.ID]; !ok {
			byID[c.ID] = c
		}
	}
	return &Resolver{clubs: clubs, byID: byID}
}

// All returns the resolved club table.
func (r *Resolver) All() []model.ResolvedClub {
	return r.clubs
}

// Get returns a resolved club by id.
func (r *Resolver) Get(id int64) (model.ResolvedClub, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// Has reports whether an id exists in the resolved table.
func (r *Resolver) Has(id int64) bool {
	_, ok := r.byID[id]
	return ok
}

// Name returns the canonical display name for an id, or "" if unknown.
func (r *Resolver) Name(id int64) string {
	return r.byID[id].Name
}

// Country returns the country bucket for an id, Unknown for ids outside the
// resolved table.
func (r *Resolver) Country(id int64) string {
	c, ok := r.byID[id]
	if !ok {
		return model.BucketUnknown
	}
	return c.Country
}

// CountryMap returns the id -> country lookup used by ClassifyCountry.
func (r *Resolver) CountryMap() map[int64]string {
	m := make(map[int64]string, len(r.byID))
	for id, c := range r.byID {
		m[id] = c.Country
	}
	return m
}
