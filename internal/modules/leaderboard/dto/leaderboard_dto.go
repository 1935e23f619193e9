package dto

import "anoa.com/clubrank/internal/ranking"

// LeaderboardResponse wraps one computed leaderboard view. Entries carry
// windowed points and a rank equal to their 1-based sorted position.
type LeaderboardResponse struct {
	Leaderboard  []ranking.Entry `json:"leaderboard"`
	TimeFrame    string          `json:"time_frame"`
	TotalMembers int             `json:"total_members"`
}
