package readme

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"leetstats/lib/stats"

	"github.com/stretchr/testify/require"
)

// pulls the glyph run out of the `...` span of a rendered bar
func barGlyphs(t *testing.T, bar string) string {
	parts := strings.Split(bar, "`")
	require.Len(t, parts, 3, "bar: %q", bar)
	return parts[1]
}

func TestProgressBarWidth(t *testing.T) {
	const total = 830
	lastFilled := -1

	for solved := 0; solved <= total; solved += 83 {
		glyphs := barGlyphs(t, ProgressBar(solved, total, 20))
		require.Equal(t, 20, utf8.RuneCountInString(glyphs))

		filled := strings.Count(glyphs, "█")
		require.GreaterOrEqual(t, filled, lastFilled, "solved=%d", solved)
		lastFilled = filled
	}
}

func TestProgressBarBounds(t *testing.T) {
	full := ProgressBar(900, 830, 20)
	require.Equal(t, "`"+strings.Repeat("█", 20)+"` 100.0%", full)

	empty := ProgressBar(0, 830, 20)
	require.Equal(t, "`"+strings.Repeat("░", 20)+"` 0.0%", empty)

	// a non-positive denominator degrades to an empty bar
	require.Equal(t, empty, ProgressBar(10, 0, 20))
	require.Equal(t, empty, ProgressBar(10, -5, 20))
}

func TestRender(t *testing.T) {
	rec := stats.Record{
		Username:         "somebody",
		Ranking:          "54,321",
		TotalSolved:      500,
		EasySolved:       300,
		MediumSolved:     150,
		HardSolved:       50,
		ContestRating:    "1850.46",
		ContestsAttended: "12",
		TopPercentage:    "15.68%",
	}
	now := time.Date(2024, 7, 19, 6, 30, 0, 0, time.UTC)

	doc := Render(rec, DefaultTotals, now)

	for _, expected := range []string{
		"[somebody](https://leetcode.com/somebody/)",
		"img.shields.io/badge/LeetCode-somebody-orange",
		"| 🏅 **Ranking** | #54,321 |",
		"| ✅ **Total Solved** | **500** |",
		"| 🟢 Easy | 300 | " + ProgressBar(300, DefaultTotals.Easy, DefaultBarLength) + " |",
		"| 🟡 Medium | 150 | " + ProgressBar(150, DefaultTotals.Medium, DefaultBarLength) + " |",
		"| 🔴 Hard | 50 | " + ProgressBar(50, DefaultTotals.Hard, DefaultBarLength) + " |",
		"| 📊 **Contest Rating** | 1850.46 |",
		"| 🎪 **Contests Attended** | 12 |",
		"| 📐 **Top Percentage** | 15.68% |",
		"Last updated: 2024-07-19 06:30:00 UTC",
		"<!-- LEETCODE_STATS_START -->",
		"<!-- LEETCODE_STATS_END -->",
	} {
		require.Contains(t, doc, expected)
	}
}

func TestRenderTimestampIsUtc(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	now := time.Date(2024, 7, 19, 6, 30, 0, 0, loc)

	doc := Render(stats.Record{}, DefaultTotals, now)
	require.Contains(t, doc, "Last updated: 2024-07-18 21:30:00 UTC")
}
