package ranking

import (
	"fmt"
	"sort"
	"testing"
	"time"
)

func memberWithPoints(id string, points int, at time.Time) MemberHistory {
	// build the total out of attend_event contributions (10 points each)
	n := points / 10
	contributions := make([]Contribution, 0, n)
	for i := 0; i < n; i++ {
		contributions = append(contributions, Contribution{
			Action:     ActionAttendEvent,
			Points:     10,
			RecordedAt: at,
		})
	}
	return MemberHistory{ID: id, Name: id, TotalPoints: points, Contributions: contributions}
}

func TestBuildLeaderboardExcludesZeroWindowedPoints(t *testing.T) {
	inWindow := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	outOfWindow := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	members := []MemberHistory{
		memberWithPoints("active", 100, inWindow),
		memberWithPoints("dormant", 300, outOfWindow),
	}

	w, err := ResolveWindow(TimeFrameCustom, "2025-03-01", "2025-03-31", inWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := BuildLeaderboard(members, w, 0)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].MemberID != "active" {
		t.Errorf("expected the active member, got %q", entries[0].MemberID)
	}
	if entries[0].TotalPoints != 100 {
		t.Errorf("TotalPoints = %d, want lifetime total 100", entries[0].TotalPoints)
	}
}

func TestBuildLeaderboardAllWindowMatchesLifetimeOrder(t *testing.T) {
	at := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	members := []MemberHistory{
		memberWithPoints("a", 120, at),
		memberWithPoints("b", 480, at),
		memberWithPoints("c", 250, at),
	}

	entries := BuildLeaderboard(members, Window{}, 0)

	wantOrder := []string{"b", "c", "a"}
	points := []int{480, 250, 120}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, id := range wantOrder {
		if entries[i].MemberID != id {
			t.Errorf("position %d = %q, want %q", i, entries[i].MemberID, id)
		}
		if entries[i].Points != points[i] {
			t.Errorf("position %d points = %d, want %d", i, entries[i].Points, points[i])
		}
		if entries[i].Rank != i+1 {
			t.Errorf("position %d rank = %d, want %d", i, entries[i].Rank, i+1)
		}
	}
}

func TestBuildLeaderboardWindowedLevelAndBadges(t *testing.T) {
	inWindow := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	outOfWindow := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// 5 lead events outside the window, 2 inside: the windowed view must
	// show 100 points (Silver) and no organizer badge.
	contributions := make([]Contribution, 0, 7)
	for i := 0; i < 5; i++ {
		contributions = append(contributions, Contribution{Action: ActionLeadEvent, Points: 50, RecordedAt: outOfWindow})
	}
	for i := 0; i < 2; i++ {
		contributions = append(contributions, Contribution{Action: ActionLeadEvent, Points: 50, RecordedAt: inWindow})
	}

	members := []MemberHistory{{
		ID:            "m1",
		Name:          "m1",
		TotalPoints:   350,
		Contributions: contributions,
	}}

	w, err := ResolveWindow(TimeFrameCustom, "2025-03-01", "2025-03-31", inWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := BuildLeaderboard(members, w, 0)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Points != 100 {
		t.Errorf("windowed points = %d, want 100", entries[0].Points)
	}
	if entries[0].Level != LevelSilver {
		t.Errorf("windowed level = %q, want Silver", entries[0].Level)
	}
	for _, b := range entries[0].Badges {
		if b == BadgeEventOrganizer {
			t.Error("organizer badge granted from out-of-window contributions")
		}
	}
}

func TestBuildLeaderboardTopContributorCutoff(t *testing.T) {
	at := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	// 21 members: cutoff index = max(1, 21/20) = 1, so only the single
	// highest scorer is a Top Contributor.
	members := make([]MemberHistory, 0, 21)
	for i := 0; i < 21; i++ {
		members = append(members, memberWithPoints(fmt.Sprintf("m%02d", i), (i+1)*10, at))
	}

	entries := BuildLeaderboard(members, Window{}, 0)
	if len(entries) != 21 {
		t.Fatalf("expected 21 entries, got %d", len(entries))
	}

	for i, e := range entries {
		has := false
		for _, b := range e.Badges {
			if b == BadgeTopContributor {
				has = true
			}
		}
		if i == 0 && !has {
			t.Error("top scorer should hold the Top Contributor badge")
		}
		if i > 0 && has {
			t.Errorf("entry at rank %d should not hold the Top Contributor badge", e.Rank)
		}
	}
}

func TestBuildLeaderboardTruncatesAfterBadges(t *testing.T) {
	at := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	// 40 members, limit 5: the top-5% cutoff (index 2) must come from the
	// full population, not from the truncated page.
	members := make([]MemberHistory, 0, 40)
	for i := 0; i < 40; i++ {
		members = append(members, memberWithPoints(fmt.Sprintf("m%02d", i), (i+1)*10, at))
	}

	entries := BuildLeaderboard(members, Window{}, 5)
	if len(entries) != 5 {
		t.Fatalf("expected 5 entries after truncation, got %d", len(entries))
	}

	topContributors := 0
	for _, e := range entries {
		for _, b := range e.Badges {
			if b == BadgeTopContributor {
				topContributors++
			}
		}
	}
	if topContributors != 2 {
		t.Errorf("expected 2 Top Contributors from a population of 40, got %d", topContributors)
	}

	if !sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	}) {
		t.Error("entries not sorted by windowed points descending")
	}
}

func TestBuildLeaderboardTiesKeepInputOrder(t *testing.T) {
	at := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	members := []MemberHistory{
		memberWithPoints("first", 100, at),
		memberWithPoints("second", 100, at),
		memberWithPoints("third", 100, at),
	}

	entries := BuildLeaderboard(members, Window{}, 0)
	wantOrder := []string{"first", "second", "third"}
	for i, id := range wantOrder {
		if entries[i].MemberID != id {
			t.Errorf("tie position %d = %q, want %q", i, entries[i].MemberID, id)
		}
		if entries[i].Rank != i+1 {
			t.Errorf("tie rank at position %d = %d, want successive ranks", i, entries[i].Rank)
		}
	}
}

func TestBuildLeaderboardEmptyPopulation(t *testing.T) {
	entries := BuildLeaderboard(nil, Window{}, 0)
	if len(entries) != 0 {
		t.Errorf("expected empty leaderboard, got %d entries", len(entries))
	}
}
