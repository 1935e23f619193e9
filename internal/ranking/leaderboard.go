package ranking

import "sort"

// DefaultLeaderboardLimit caps leaderboard pages when the caller does not
// ask for a specific size.
const DefaultLeaderboardLimit = 100

// topContributorDivisor defines the dynamic Top Contributor cutoff: the top
// 1/20th (5%) of the ranked population, with at least one member qualifying.
const topContributorDivisor = 20

// MemberHistory is the aggregator's input: one member with their full
// contribution history and lifetime total, as loaded from the store.
type MemberHistory struct {
	ID            string
	Name          string
	TotalPoints   int
	Contributions []Contribution
}

// Entry is one leaderboard row. Points, Level and Badges reflect the
// requested window, not lifetime standing; Rank is the 1-based position in
// the sorted output.
type Entry struct {
	MemberID    string   `json:"id"`
	Name        string   `json:"name"`
	Points      int      `json:"points"`
	TotalPoints int      `json:"total_points"`
	Level       Level    `json:"level"`
	Badges      []string `json:"badges"`
	Rank        int      `json:"rank"`
}

// BuildLeaderboard filters every member's contributions to the window,
// recomputes their windowed totals, level and badges, ranks them and
// applies the population-wide Top Contributor badge. Members with zero
// windowed points do not rank. Truncation to limit happens last so the
// top-5% math always sees the full filtered population.
func BuildLeaderboard(members []MemberHistory, w Window, limit int) []Entry {
	entries := make([]Entry, 0, len(members))

	for _, m := range members {
		var windowed []Contribution
		points := 0
		for _, c := range m.Contributions {
			if w.Contains(c.RecordedAt) {
				windowed = append(windowed, c)
				points += c.Points
			}
		}
		if points == 0 {
			continue
		}

		entries = append(entries, Entry{
			MemberID:    m.ID,
			Name:        m.Name,
			Points:      points,
			TotalPoints: m.TotalPoints,
			Level:       LevelFor(points),
			Badges:      BadgesFor(points, windowed),
		})
	}

	// Stable sort keeps tied members in store iteration order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	applyTopContributor(entries)

	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	return entries
}

// applyTopContributor grants the Top Contributor badge to everyone at or
// above the top-5% point cutoff and strips it from everyone below. The
// badge is view-scoped: it is recomputed per leaderboard, never persisted.
func applyTopContributor(entries []Entry) {
	if len(entries) == 0 {
		return
	}

	cutoffIndex := len(entries) / topContributorDivisor
	if cutoffIndex < 1 {
		cutoffIndex = 1
	}
	cutoffPoints := entries[cutoffIndex-1].Points

	for i := range entries {
		if entries[i].Points >= cutoffPoints {
			entries[i].Badges = appendBadge(entries[i].Badges, BadgeTopContributor)
		} else {
			entries[i].Badges = removeBadge(entries[i].Badges, BadgeTopContributor)
		}
	}
}
