// Package readme renders a stats record into the markdown document
// that gets written over the target README.
package readme

import (
	"fmt"
	"math"
	"strings"
	"time"

	"leetstats/lib/stats"
)

// Totals holds the approximate number of problems on the platform per
// difficulty tier. They are static estimates used only as progress-bar
// denominators and go stale as new problems are published.
type Totals struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

var DefaultTotals = Totals{
	Easy:   830,
	Medium: 1750,
	Hard:   750,
}

const DefaultBarLength = 20

const timestampLayout = "2006-01-02 15:04:05 UTC"

// 1:  username (badge)
// 2:  username (link text)
// 3:  username (link target)
// 4:  ranking
// 5:  total solved
// 6:  easy solved
// 7:  easy progress bar
// 8:  medium solved
// 9:  medium progress bar
// 10: hard solved
// 11: hard progress bar
// 12: contest rating
// 13: contests attended
// 14: top percentage
// 15: last-updated timestamp
const documentTemplate = `# 📊 LeetCode Stats Tracker

![LeetCode Stats](https://img.shields.io/badge/LeetCode-%s-orange?style=for-the-badge&logo=leetcode)

## 🏆 Profile Statistics

| Metric | Value |
|--------|-------|
| 👤 **Username** | [%s](https://leetcode.com/%s/) |
| 🏅 **Ranking** | #%s |
| ✅ **Total Solved** | **%d** |

## 📈 Problem Solving Progress

| Difficulty | Solved | Progress |
|------------|--------|----------|
| 🟢 Easy | %d | %s |
| 🟡 Medium | %d | %s |
| 🔴 Hard | %d | %s |

## 🎯 Contest Statistics

| Metric | Value |
|--------|-------|
| 📊 **Contest Rating** | %s |
| 🎪 **Contests Attended** | %s |
| 📐 **Top Percentage** | %s |

---

<p align="center">
  <i>🤖 This README is automatically updated daily via GitHub Actions</i><br>
  <sub>Last updated: %s</sub>
</p>

<!-- LEETCODE_STATS_START -->
<!-- Auto-generated content - Do not edit manually -->
<!-- LEETCODE_STATS_END -->
`

// Render produces the full document. `now` is the only
// non-deterministic input, it is taken as a parameter so rendering
// stays a pure function.
func Render(rec stats.Record, totals Totals, now time.Time) string {
	return fmt.Sprintf(
		documentTemplate,

		rec.Username,
		rec.Username, rec.Username,
		rec.Ranking,
		rec.TotalSolved,

		rec.EasySolved, ProgressBar(rec.EasySolved, totals.Easy, DefaultBarLength),
		rec.MediumSolved, ProgressBar(rec.MediumSolved, totals.Medium, DefaultBarLength),
		rec.HardSolved, ProgressBar(rec.HardSolved, totals.Hard, DefaultBarLength),

		rec.ContestRating,
		rec.ContestsAttended,
		rec.TopPercentage,

		now.UTC().Format(timestampLayout),
	)
}

// ProgressBar renders `length` glyphs representing solved/total,
// capped at 100%, followed by a one-decimal percentage label.
func ProgressBar(solved, total, length int) string {
	percentage := 0.0
	if total > 0 {
		percentage = math.Min(float64(solved)/float64(total), 1.0)
	}
	filled := int(float64(length) * percentage)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
	return fmt.Sprintf("`%s` %.1f%%", bar, percentage*100)
}
