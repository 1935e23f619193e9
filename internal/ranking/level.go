package ranking

import "math"

// Level is the coarse membership tier, determined solely by point total.
type Level string

const (
	LevelBronze   Level = "Bronze Member"
	LevelSilver   Level = "Silver Member"
	LevelGold     Level = "Gold Member"
	LevelPlatinum Level = "Platinum Member"
)

// Level thresholds. Bronze is the floor; a member holds the highest level
// whose threshold their points reach.
const (
	PointsBronze   = 0
	PointsSilver   = 51
	PointsGold     = 151
	PointsPlatinum = 300
)

var levelOrder = []struct {
	Level     Level
	Threshold int
}{
	{LevelBronze, PointsBronze},
	{LevelSilver, PointsSilver},
	{LevelGold, PointsGold},
	{LevelPlatinum, PointsPlatinum},
}

// LevelFor returns the highest level whose threshold is <= points.
func LevelFor(points int) Level {
	level := LevelBronze
	for _, entry := range levelOrder {
		if points >= entry.Threshold {
			level = entry.Level
		}
	}
	return level
}

// ThresholdOf returns the entry threshold of a level. Unknown levels are
// treated as Bronze.
func ThresholdOf(level Level) int {
	for _, entry := range levelOrder {
		if entry.Level == level {
			return entry.Threshold
		}
	}
	return PointsBronze
}

// NextLevelThreshold returns the point threshold of the next level, or
// false when the level is already Platinum.
func NextLevelThreshold(level Level) (int, bool) {
	for i, entry := range levelOrder {
		if entry.Level == level {
			if i+1 < len(levelOrder) {
				return levelOrder[i+1].Threshold, true
			}
			return 0, false
		}
	}
	return 0, false
}

// ProgressToNextLevel returns how far a member has advanced from their
// current level toward the next one, as a percentage in [0, 100].
// Members at the maximum level are always at 100.
func ProgressToNextLevel(points int, level Level) int {
	next, ok := NextLevelThreshold(level)
	if !ok {
		return 100
	}

	base := ThresholdOf(level)
	if next == base {
		return 100
	}

	progress := int(math.Round(100 * float64(points-base) / float64(next-base)))
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
