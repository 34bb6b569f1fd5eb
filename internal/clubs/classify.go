package clubs

import (
	"strings"

	"github.com/transferlens/transferlens/internal/model"
)

// ClassifyCountry maps one side of a transfer to its country bucket. A club
// id found in the resolved table wins over any name heuristic. Otherwise the
// name decides: free-agent markers bucket to Without Club, retirement
// markers to Retired, everything else to Unknown. The same function is
// applied to both sides of every transfer.
func ClassifyCountry(clubID int64, clubName string, countries map[int64]string) string {
	if clubID != 0 {
		if country, ok := countries[clubID]; ok {
			return country
		}
	}

	name := strings.ToLower(strings.TrimSpace(clubName))
	if name != "" {
		if strings.Contains(name, "without club") || strings.Contains(name, "no club") {
			return model.BucketWithoutClub
		}
		if strings.Contains(name, "retired") {
			return model.BucketRetired
		}
	}

	return model.BucketUnknown
}
