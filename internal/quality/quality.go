// Package quality collects data-quality findings during a pipeline run:
// malformed fees, unparsable season labels, club names that could not be
// reconciled. Findings never interrupt the pipeline; they are counted,
// logged, and optionally written out as a CSV report.
package quality

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Kind identifies a class of data-quality finding.
type Kind string

const (
	KindMalformedFee     Kind = "malformed_fee"
	KindUnparsableSeason Kind = "unparsable_season"
	KindUnmatchedClub    Kind = "unmatched_club"
	KindNoCompetition    Kind = "no_competition"
)

// Finding is one recorded data oddity.
type Finding struct {
	Kind   Kind
	Detail string
}

// Collector accumulates findings for a single run. A nil Collector is valid
// and discards everything.
type Collector struct {
	findings []Finding
	counts   map[Kind]int
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{counts: make(map[Kind]int)}
}

// Add records one finding.
func (c *Collector) Add(kind Kind, detail string) {
	if c == nil {
		return
	}
	c.findings = append(c.findings, Finding{Kind: kind, Detail: detail})
	c.counts[kind]++
}

// Count returns how many findings of a kind were recorded.
func (c *Collector) Count(kind Kind) int {
	if c == nil {
		return 0
	}
	return c.counts[kind]
}

// Total returns the number of findings across all kinds.
func (c *Collector) Total() int {
	if c == nil {
		return 0
	}
	return len(c.findings)
}

// Findings returns every recorded finding in order.
func (c *Collector) Findings() []Finding {
	if c == nil {
		return nil
	}
	return c.findings
}

// Header is the CSV header for quality-report.csv.
const Header = "kind,detail"

// WriteReport writes the findings as CSV, header included.
func (c *Collector) WriteReport(w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, f := range c.Findings() {
		if err := cw.Write([]string{string(f.Kind), f.Detail}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// Save writes the report to <dir>/quality-report.csv.
func (c *Collector) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating report dir: %w", err)
	}

	path := filepath.Join(dir, "quality-report.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating quality report: %w", err)
	}
	defer f.Close()

	if err := c.WriteReport(f); err != nil {
		return fmt.Errorf("writing quality report: %w", err)
	}
	return nil
}
