package ranking

import "testing"

func levelIndex(l Level) int {
	switch l {
	case LevelBronze:
		return 0
	case LevelSilver:
		return 1
	case LevelGold:
		return 2
	case LevelPlatinum:
		return 3
	}
	return -1
}

func TestLevelForThresholds(t *testing.T) {
	cases := []struct {
		points int
		want   Level
	}{
		{0, LevelBronze},
		{50, LevelBronze},
		{51, LevelSilver},
		{150, LevelSilver},
		{151, LevelGold},
		{299, LevelGold},
		{300, LevelPlatinum},
		{1000, LevelPlatinum},
	}

	for _, tc := range cases {
		if got := LevelFor(tc.points); got != tc.want {
			t.Errorf("LevelFor(%d) = %q, want %q", tc.points, got, tc.want)
		}
	}
}

func TestLevelForMonotonic(t *testing.T) {
	prev := levelIndex(LevelFor(0))
	for p := 1; p <= 500; p++ {
		cur := levelIndex(LevelFor(p))
		if cur < prev {
			t.Fatalf("LevelFor not monotonic at %d points: went from %d to %d", p, prev, cur)
		}
		prev = cur
	}
}

func TestNextLevelThreshold(t *testing.T) {
	if next, ok := NextLevelThreshold(LevelBronze); !ok || next != PointsSilver {
		t.Errorf("NextLevelThreshold(Bronze) = %d, %v", next, ok)
	}
	if next, ok := NextLevelThreshold(LevelGold); !ok || next != PointsPlatinum {
		t.Errorf("NextLevelThreshold(Gold) = %d, %v", next, ok)
	}
	if _, ok := NextLevelThreshold(LevelPlatinum); ok {
		t.Error("NextLevelThreshold(Platinum) should report no next level")
	}
}

func TestProgressToNextLevel(t *testing.T) {
	cases := []struct {
		points int
		want   int
	}{
		{0, 0},
		{51, 0},   // just reached Silver, no progress toward Gold yet
		{101, 50}, // halfway through Silver
		{300, 100},
		{999, 100},
	}

	for _, tc := range cases {
		level := LevelFor(tc.points)
		if got := ProgressToNextLevel(tc.points, level); got != tc.want {
			t.Errorf("ProgressToNextLevel(%d, %q) = %d, want %d", tc.points, level, got, tc.want)
		}
	}
}

func TestProgressToNextLevelBounds(t *testing.T) {
	for p := 0; p <= 600; p++ {
		got := ProgressToNextLevel(p, LevelFor(p))
		if got < 0 || got > 100 {
			t.Fatalf("ProgressToNextLevel(%d) = %d, out of [0,100]", p, got)
		}
	}
	if got := ProgressToNextLevel(PointsPlatinum, LevelPlatinum); got != 100 {
		t.Errorf("progress at Platinum threshold = %d, want 100", got)
	}
}
