package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"anoa.com/clubrank/internal/entity"
	"anoa.com/clubrank/internal/ranking"
	"anoa.com/clubrank/pkg/apperror"
	"github.com/google/uuid"
)

// fakeMemberRepo serves a fixed population. Only the methods the
// leaderboard service touches are meaningful.
type fakeMemberRepo struct {
	members []entity.Member
}

func (f *fakeMemberRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	return nil, apperror.ErrMemberNotFound
}

func (f *fakeMemberRepo) FindByName(ctx context.Context, name string) (*entity.Member, error) {
	return nil, apperror.ErrMemberNotFound
}

func (f *fakeMemberRepo) List(ctx context.Context, page, limit int) ([]entity.Member, int64, error) {
	return f.members, int64(len(f.members)), nil
}

func (f *fakeMemberRepo) ListWithContributions(ctx context.Context) ([]entity.Member, error) {
	return f.members, nil
}

func (f *fakeMemberRepo) CountWithPointsGreaterThan(ctx context.Context, points int) (int64, error) {
	return 0, nil
}

func (f *fakeMemberRepo) Create(ctx context.Context, member *entity.Member) error { return nil }

func (f *fakeMemberRepo) AppendContribution(ctx context.Context, member *entity.Member, contribution *entity.Contribution, expectedVersion int) error {
	return nil
}

func (f *fakeMemberRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func testMember(name string, points int, recordedAt time.Time) entity.Member {
	n := points / 10
	contributions := make([]entity.Contribution, 0, n)
	for i := 0; i < n; i++ {
		contributions = append(contributions, entity.Contribution{
			Action:     string(ranking.ActionAttendEvent),
			Points:     10,
			RecordedAt: recordedAt,
		})
	}
	return entity.Member{
		ID:            uuid.New(),
		Name:          name,
		Points:        points,
		Level:         string(ranking.LevelFor(points)),
		Contributions: contributions,
	}
}

func newTestLeaderboardService(repo *fakeMemberRepo, now time.Time) *leaderboardService {
	return &leaderboardService{
		members: repo,
		now:     func() time.Time { return now },
	}
}

func TestGetLeaderboardDefaultsToAll(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	old := now.AddDate(-1, 0, 0)
	repo := &fakeMemberRepo{members: []entity.Member{
		testMember("veteran", 200, old),
		testMember("rookie", 50, now),
	}}
	svc := newTestLeaderboardService(repo, now)

	res, err := svc.GetLeaderboard(context.Background(), "", "", "", 0)
	if err != nil {
		t.Fatalf("GetLeaderboard failed: %v", err)
	}
	if res.TimeFrame != ranking.TimeFrameAll {
		t.Errorf("time frame = %q, want %q", res.TimeFrame, ranking.TimeFrameAll)
	}
	if len(res.Leaderboard) != 2 {
		t.Fatalf("entries = %d, want 2", len(res.Leaderboard))
	}
	if res.Leaderboard[0].Name != "veteran" || res.Leaderboard[0].Rank != 1 {
		t.Errorf("top entry = %q rank %d, want veteran at rank 1", res.Leaderboard[0].Name, res.Leaderboard[0].Rank)
	}
	if res.TotalMembers != 2 {
		t.Errorf("total members = %d, want 2", res.TotalMembers)
	}
}

func TestGetLeaderboardWeekWindowFilters(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeMemberRepo{members: []entity.Member{
		testMember("dormant", 300, now.AddDate(0, -2, 0)),
		testMember("active", 40, now.AddDate(0, 0, -2)),
	}}
	svc := newTestLeaderboardService(repo, now)

	res, err := svc.GetLeaderboard(context.Background(), ranking.TimeFrameWeek, "", "", 0)
	if err != nil {
		t.Fatalf("GetLeaderboard failed: %v", err)
	}
	if len(res.Leaderboard) != 1 {
		t.Fatalf("entries = %d, want 1 (zero windowed points excluded)", len(res.Leaderboard))
	}
	entry := res.Leaderboard[0]
	if entry.Name != "active" {
		t.Errorf("entry = %q, want the active member", entry.Name)
	}
	if entry.Points != 40 || entry.TotalPoints != 40 {
		t.Errorf("points = %d/%d, want 40/40", entry.Points, entry.TotalPoints)
	}
}

func TestGetLeaderboardCustomWindowErrors(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc := newTestLeaderboardService(&fakeMemberRepo{}, now)

	_, err := svc.GetLeaderboard(context.Background(), ranking.TimeFrameCustom, "2025-01-01", "", 0)
	if !errors.Is(err, apperror.ErrMissingBounds) {
		t.Errorf("missing end: got %v, want ErrMissingBounds", err)
	}

	_, err = svc.GetLeaderboard(context.Background(), ranking.TimeFrameCustom, "bad-date", "2025-01-31", 0)
	if !errors.Is(err, apperror.ErrInvalidDate) {
		t.Errorf("bad start: got %v, want ErrInvalidDate", err)
	}
}

func TestGetLeaderboardAppliesLimit(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	members := make([]entity.Member, 0, 10)
	for i := 0; i < 10; i++ {
		members = append(members, testMember(string(rune('a'+i)), (i+1)*10, now))
	}
	svc := newTestLeaderboardService(&fakeMemberRepo{members: members}, now)

	res, err := svc.GetLeaderboard(context.Background(), ranking.TimeFrameAll, "", "", 3)
	if err != nil {
		t.Fatalf("GetLeaderboard failed: %v", err)
	}
	if len(res.Leaderboard) != 3 {
		t.Errorf("entries = %d, want 3", len(res.Leaderboard))
	}
	if res.Leaderboard[0].Points != 100 {
		t.Errorf("top points = %d, want 100", res.Leaderboard[0].Points)
	}
}
