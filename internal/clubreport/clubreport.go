// Package clubreport parses plain-text club reports: hand-maintained lists
// of club names grouped under country headings, used as an extra identity
// source alongside the main dataset.
//
// Format:
//
//	# comment
//	England:
//	Arsenal FC
//	Chelsea FC
//
//	Spain:
//	Córdoba CF
package clubreport

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/transferlens/transferlens/internal/model"
)

// Header is the CSV header for the converted report.
const Header = "club_name,country"

// Parse reads a club report and returns one entry per club line. Club lines
// before any country heading bucket to Unknown; blank lines and # comments
// are skipped.
func Parse(r io.Reader) ([]model.NamedClub, error) {
	var (
		clubs   []model.NamedClub
		country = model.BucketUnknown
		lineNo  int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if name, ok := strings.CutSuffix(line, ":"); ok {
			country = strings.TrimSpace(name)
			if country == "" {
				return nil, fmt.Errorf("line %d: empty country heading", lineNo)
			}
			continue
		}

		clubs = append(clubs, model.NamedClub{Name: line, Country: country})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading club report: %w", err)
	}
	return clubs, nil
}

// WriteCSV writes the parsed report as CSV (including header), the exchange
// format the rest of the pipeline reads.
func WriteCSV(w io.Writer, clubs []model.NamedClub) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, c := range clubs {
		if err := cw.Write([]string{c.Name, c.Country}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
