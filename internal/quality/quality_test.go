package quality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counts(t *testing.T) {
	c := NewCollector()
	c.Add(KindMalformedFee, "garbage")
	c.Add(KindMalformedFee, "€€")
	c.Add(KindUnmatchedClub, "Chelsea FC")

	assert.Equal(t, 2, c.Count(KindMalformedFee))
	assert.Equal(t, 1, c.Count(KindUnmatchedClub))
	assert.Equal(t, 0, c.Count(KindUnparsableSeason))
	assert.Equal(t, 3, c.Total())
	assert.Len(t, c.Findings(), 3)
}

func TestCollector_NilIsSafe(t *testing.T) {
	var c *Collector
	c.Add(KindMalformedFee, "ignored")
	assert.Equal(t, 0, c.Total())
	assert.Nil(t, c.Findings())
}

func TestWriteReport(t *testing.T) {
	c := NewCollector()
	c.Add(KindUnmatchedClub, "Chelsea FC")

	var sb strings.Builder
	require.NoError(t, c.WriteReport(&sb))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "unmatched_club,Chelsea FC", lines[1])
}

func TestSave(t *testing.T) {
	c := NewCollector()
	c.Add(KindMalformedFee, "garbage")

	dir := t.TempDir()
	require.NoError(t, c.Save(dir))
	assert.FileExists(t, dir+"/quality-report.csv")
}
