package stats

import (
	"testing"

	"leetstats/lib/scrapers/leetcode"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func intptr(n int) *int {
	return &n
}

func TestExtract(t *testing.T) {
	data := &leetcode.UserProfile{
		MatchedUser: &leetcode.MatchedUser{
			Username: "somebody",
			SubmitStats: &leetcode.SubmitStats{
				AcSubmissionNum: []leetcode.SubmissionCount{
					{Difficulty: "All", Count: 500, Submissions: 812},
					{Difficulty: "Easy", Count: 300, Submissions: 401},
					{Difficulty: "Medium", Count: 150, Submissions: 311},
					{Difficulty: "Hard", Count: 50, Submissions: 100},
				},
			},
			Profile: &leetcode.Profile{Ranking: intptr(1234567)},
		},
		UserContestRanking: &leetcode.ContestRanking{
			AttendedContestsCount: 12,
			Rating:                1850.456,
			GlobalRanking:         3000,
			TopPercentage:         15.678,
		},
	}

	expected := Record{
		Username:         "somebody",
		Ranking:          "1,234,567",
		TotalSolved:      500,
		EasySolved:       300,
		MediumSolved:     150,
		HardSolved:       50,
		ContestRating:    "1850.46",
		ContestsAttended: "12",
		TopPercentage:    "15.68%",
	}

	diff := cmp.Diff(expected, Extract(data))
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestExtractMissingContestRanking(t *testing.T) {
	rec := Extract(&leetcode.UserProfile{
		MatchedUser: &leetcode.MatchedUser{Username: "somebody"},
	})

	require.Equal(t, NotAvailable, rec.ContestRating)
	require.Equal(t, NotAvailable, rec.ContestsAttended)
	require.Equal(t, NotAvailable, rec.TopPercentage)
}

func TestExtractAggregateEntryOnly(t *testing.T) {
	rec := Extract(&leetcode.UserProfile{
		MatchedUser: &leetcode.MatchedUser{
			Username: "somebody",
			SubmitStats: &leetcode.SubmitStats{
				AcSubmissionNum: []leetcode.SubmissionCount{
					{Difficulty: "All", Count: 1500},
					// unknown tags are skipped
					{Difficulty: "Impossible", Count: 9000},
				},
			},
		},
	})

	require.Equal(t, 1500, rec.TotalSolved)
	require.Equal(t, 0, rec.EasySolved)
	require.Equal(t, 0, rec.MediumSolved)
	require.Equal(t, 0, rec.HardSolved)
}

func TestExtractNothing(t *testing.T) {
	expected := Record{
		Username:         NotAvailable,
		Ranking:          NotAvailable,
		ContestRating:    NotAvailable,
		ContestsAttended: NotAvailable,
		TopPercentage:    NotAvailable,
	}

	diff := cmp.Diff(expected, Extract(nil))
	if diff != "" {
		t.Fatal(diff)
	}
	diff = cmp.Diff(expected, Extract(&leetcode.UserProfile{}))
	if diff != "" {
		t.Fatal(diff)
	}
}

// a literal zero percentile can't be told apart from an absent one
// upstream, so it stays N/A
func TestExtractZeroPercentile(t *testing.T) {
	rec := Extract(&leetcode.UserProfile{
		UserContestRanking: &leetcode.ContestRanking{
			AttendedContestsCount: 3,
			Rating:                1500,
			TopPercentage:         0,
		},
	})

	require.Equal(t, "1500.00", rec.ContestRating)
	require.Equal(t, "3", rec.ContestsAttended)
	require.Equal(t, NotAvailable, rec.TopPercentage)
}

func TestGroupThousands(t *testing.T) {
	testCases := []struct {
		n        int
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{54321, "54,321"},
		{1234567, "1,234,567"},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expected, groupThousands(tc.n), "n=%d", tc.n)
	}
}
