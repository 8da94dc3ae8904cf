package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spboyer/storysheet/internal/metrics"
	"github.com/spboyer/storysheet/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_JSON(t *testing.T) {
	dir := t.TempDir()
	_, err := runRoot(t, dir, "export", "-o", "m.csv")
	require.NoError(t, err)
	_, err = runRoot(t, dir, "record", "m.csv", "--task", "1", "--time", "10", "--errors", "2")
	require.NoError(t, err)
	_, err = runRoot(t, dir, "record", "m.csv", "--task", "2", "--time", "20", "--comments", "fine")
	require.NoError(t, err)

	out, err := runRoot(t, dir, "summary", "m.csv", "-f", "json")
	require.NoError(t, err)

	var got []metrics.StorySummary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)

	assert.Equal(t, models.GroupA, got[0].Story)
	assert.Equal(t, 24, got[0].Steps)
	assert.Equal(t, 2, got[0].Measured)
	assert.InDelta(t, 15.0, got[0].MeanSeconds, 1e-9)
	assert.InDelta(t, 5.0, got[0].StdDevSeconds, 1e-9)
	assert.Equal(t, 2, got[0].TotalErrors)
	assert.Equal(t, 1, got[0].StepsWithComment)

	assert.Equal(t, models.GroupB, got[1].Story)
	assert.Equal(t, 20, got[1].Steps)
	assert.Equal(t, 0, got[1].Measured)
}

func TestSummary_Table(t *testing.T) {
	dir := t.TempDir()
	_, err := runRoot(t, dir)
	require.NoError(t, err)

	out, err := runRoot(t, dir, "summary", "StoryMeasurements.xlsx")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Story "))
	assert.Contains(t, lines[1], "──")
	assert.True(t, strings.HasPrefix(lines[2], "Story 1"))
	assert.Contains(t, lines[2], "0 (0%)")
	assert.True(t, strings.HasPrefix(lines[3], "Story 2"))
}

func TestSummary_BadFormat(t *testing.T) {
	_, err := runRoot(t, t.TempDir(), "summary", "x.xlsx", "-f", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestPrintSummaryTable_AlignsWideNames(t *testing.T) {
	var buf bytes.Buffer
	printSummaryTable(&buf, []metrics.StorySummary{
		{Story: "買い物", Steps: 3},
		{Story: "Sharing", Steps: 12, Measured: 12, MeanSeconds: 1234.5},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	// "買い物" is three double-width runes, as wide as "Sharing" padded to 7
	assert.True(t, strings.HasPrefix(lines[2], "買い物   "))
	assert.Contains(t, lines[3], "1,234.5")
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "abcd", padRight("abcd", 2))
	assert.Equal(t, "日本 ", padRight("日本", 5))
}
