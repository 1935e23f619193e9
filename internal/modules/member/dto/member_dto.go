package dto

import (
	"time"

	"github.com/google/uuid"
)

// AddPointsInput is the simple "add points by name" form: the member is
// created on their first contribution if they don't exist yet.
type AddPointsInput struct {
	Name   string `json:"name" binding:"required,min=1,max=100"`
	Action string `json:"action" binding:"required"`
}

// ContributionInput records a contribution against an existing member.
// Date is optional (YYYY-MM-DD); it defaults to now.
type ContributionInput struct {
	Action      string  `json:"action" binding:"required"`
	Date        string  `json:"date,omitempty"`
	Description *string `json:"description,omitempty"`
	EventName   *string `json:"event_name,omitempty"`
}

// ContributionResult reports the updated totals after a contribution.
type ContributionResult struct {
	MemberID     uuid.UUID `json:"member_id"`
	Name         string    `json:"name"`
	PointsAdded  int       `json:"points_added"`
	TotalPoints  int       `json:"total_points"`
	Level        string    `json:"level"`
	BadgesEarned []string  `json:"badges_earned"`
}

// ActionStats aggregates a member's contributions of one action kind.
type ActionStats struct {
	Count       int `json:"count"`
	TotalPoints int `json:"total_points"`
}

// ContributionResponse mirrors a stored contribution row.
type ContributionResponse struct {
	Action      string    `json:"action"`
	Points      int       `json:"points"`
	Description *string   `json:"description,omitempty"`
	EventName   *string   `json:"event_name,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// MemberProfileResponse is the full member view: standing, progress toward
// the next level and a breakdown of their contribution history.
type MemberProfileResponse struct {
	ID                  uuid.UUID              `json:"id"`
	Name                string                 `json:"name"`
	Email               *string                `json:"email,omitempty"`
	Points              int                    `json:"points"`
	Level               string                 `json:"level"`
	Badges              []string               `json:"badges"`
	Rank                int                    `json:"rank"`
	NextLevelPoints     *int                   `json:"next_level_points"`
	Progress            int                    `json:"progress"`
	TotalContributions  int                    `json:"total_contributions"`
	ContributionsByType map[string]ActionStats `json:"contributions_by_type"`
	RecentContributions []ContributionResponse `json:"recent_contributions"`
	JoinDate            time.Time              `json:"join_date"`
	LastActive          time.Time              `json:"last_active"`
}

// MemberSummary is a compact row for member listings.
type MemberSummary struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  *string   `json:"email,omitempty"`
	Points int       `json:"points"`
	Level  string    `json:"level"`
	Badges []string  `json:"badges"`
}

type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalItems  int64 `json:"total_items"`
	Limit       int   `json:"limit"`
}

type PaginatedMembersResponse struct {
	Data []MemberSummary `json:"data"`
	Meta PaginationMeta  `json:"meta"`
}
