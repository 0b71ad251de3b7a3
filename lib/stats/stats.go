// Package stats flattens a fetched user profile into the record the
// readme renderer consumes. Extraction is total: missing or reshaped
// upstream data degrades to a sentinel, never to a failure.
package stats

import (
	"fmt"
	"strconv"
	"strings"

	"leetstats/lib/scrapers/leetcode"
)

// sentinel for fields the API had no value for
const NotAvailable = "N/A"

// Record is the flat, display-ready form of a user's statistics. It is
// built fresh each run and never mutated afterwards.
type Record struct {
	Username string
	// formatted with thousands separators, or N/A
	Ranking      string
	TotalSolved  int
	EasySolved   int
	MediumSolved int
	HardSolved   int
	// rounded to 2 decimals, or N/A
	ContestRating    string
	ContestsAttended string
	// "<value>%" with 2 decimals, or N/A
	TopPercentage string
}

// Extract reduces the profile response to a Record. It accepts any
// shape including nil and substitutes a default for every absent field.
func Extract(data *leetcode.UserProfile) Record {
	rec := Record{
		Username:         NotAvailable,
		Ranking:          NotAvailable,
		ContestRating:    NotAvailable,
		ContestsAttended: NotAvailable,
		TopPercentage:    NotAvailable,
	}
	if data == nil {
		return rec
	}

	if user := data.MatchedUser; user != nil {
		if user.Username != "" {
			rec.Username = user.Username
		}
		if user.Profile != nil && user.Profile.Ranking != nil {
			rec.Ranking = groupThousands(*user.Profile.Ranking)
		}
		if user.SubmitStats != nil {
			for _, item := range user.SubmitStats.AcSubmissionNum {
				switch item.Difficulty {
				case "All":
					rec.TotalSolved = item.Count
				case "Easy":
					rec.EasySolved = item.Count
				case "Medium":
					rec.MediumSolved = item.Count
				case "Hard":
					rec.HardSolved = item.Count
				}
			}
		}
	}

	if contest := data.UserContestRanking; contest != nil {
		rec.ContestRating = fmt.Sprintf("%.2f", contest.Rating)
		rec.ContestsAttended = strconv.Itoa(contest.AttendedContestsCount)
		// a zero percentile is indistinguishable from an absent one
		// upstream and stays N/A
		if contest.TopPercentage != 0 {
			rec.TopPercentage = fmt.Sprintf("%.2f%%", contest.TopPercentage)
		}
	}

	return rec
}

func groupThousands(n int) string {
	digits := strconv.Itoa(n)
	if n < 0 {
		return digits
	}

	var out strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		out.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if out.Len() > 0 {
			out.WriteByte(',')
		}
		out.WriteString(digits[i : i+3])
	}
	return out.String()
}
