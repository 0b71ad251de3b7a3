package leetcode

import (
	"context"
	"fmt"
)

const userProfileQuery = `query getUserProfile($username: String!) {
  matchedUser(username: $username) {
    username
    submitStats: submitStatsGlobal {
      acSubmissionNum {
        difficulty
        count
        submissions
      }
    }
    profile {
      ranking
      reputation
      starRating
    }
  }
  userContestRanking(username: $username) {
    attendedContestsCount
    rating
    globalRanking
    topPercentage
  }
}`

// UserProfile is the `data` object of the getUserProfile query. Both
// top-level objects are null for usernames the platform doesn't know,
// and userContestRanking is null for users who never entered a contest.
type UserProfile struct {
	MatchedUser        *MatchedUser    `json:"matchedUser"`
	UserContestRanking *ContestRanking `json:"userContestRanking"`
}

type MatchedUser struct {
	Username    string       `json:"username"`
	SubmitStats *SubmitStats `json:"submitStats"`
	Profile     *Profile     `json:"profile"`
}

type SubmitStats struct {
	AcSubmissionNum []SubmissionCount `json:"acSubmissionNum"`
}

// SubmissionCount is one entry of the accepted-submission breakdown.
// Difficulty is "All", "Easy", "Medium" or "Hard".
type SubmissionCount struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}

type Profile struct {
	Ranking    *int    `json:"ranking"`
	Reputation int     `json:"reputation"`
	StarRating float64 `json:"starRating"`
}

type ContestRanking struct {
	AttendedContestsCount int     `json:"attendedContestsCount"`
	Rating                float64 `json:"rating"`
	GlobalRanking         int     `json:"globalRanking"`
	TopPercentage         float64 `json:"topPercentage"`
}

func (c *Client) GetUserProfile(ctx context.Context, username string) (*UserProfile, error) {
	res := &UserProfile{}
	err := c.graphqlQuery(
		ctx,
		"getUserProfile",
		userProfileQuery,
		map[string]string{"username": username},
		map[string]string{"referer": fmt.Sprintf("%s/%s/", c.baseUrl, username)},
		res,
	)
	return res, err
}
