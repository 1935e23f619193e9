package ranking

// RankAmong returns a member's 1-based standing within a population of
// point totals: one plus the number of members with strictly more points.
// Members with equal points computed independently share the same rank.
//
// Note this intentionally differs from leaderboard ranks, which are the
// 1-based position after sorting (ties get successive ranks there, matching
// pagination).
func RankAmong(points int, allPoints []int) int {
	rank := 1
	for _, p := range allPoints {
		if p > points {
			rank++
		}
	}
	return rank
}
