package service

import (
	"context"
	"strings"
	"time"

	"anoa.com/clubrank/internal/entity"
	leaderboardDto "anoa.com/clubrank/internal/modules/leaderboard/dto"
	memberRepo "anoa.com/clubrank/internal/modules/member/repository"
	"anoa.com/clubrank/internal/ranking"
)

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, timeFrame, startDate, endDate string, limit int) (*leaderboardDto.LeaderboardResponse, error)
}

type leaderboardService struct {
	members memberRepo.MemberRepository
	now     func() time.Time
}

func NewLeaderboardService(members memberRepo.MemberRepository) LeaderboardService {
	return &leaderboardService{
		members: members,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// GetLeaderboard resolves the requested window, loads the full population
// with histories and hands everything to the pure aggregator. Window
// validation errors pass through untouched so callers see them as 400s,
// never masked as server errors.
func (s *leaderboardService) GetLeaderboard(ctx context.Context, timeFrame, startDate, endDate string, limit int) (*leaderboardDto.LeaderboardResponse, error) {
	if timeFrame == "" {
		timeFrame = ranking.TimeFrameAll
	}

	window, err := ranking.ResolveWindow(timeFrame, startDate, endDate, s.now())
	if err != nil {
		return nil, err
	}

	members, err := s.members.ListWithContributions(ctx)
	if err != nil {
		return nil, err
	}

	entries := ranking.BuildLeaderboard(toHistories(members), window, limit)

	return &leaderboardDto.LeaderboardResponse{
		Leaderboard:  entries,
		TimeFrame:    timeFrame,
		TotalMembers: len(entries),
	}, nil
}

func toHistories(members []entity.Member) []ranking.MemberHistory {
	histories := make([]ranking.MemberHistory, 0, len(members))
	for _, m := range members {
		contributions := make([]ranking.Contribution, 0, len(m.Contributions))
		for _, c := range m.Contributions {
			action, err := ranking.ParseAction(c.Action)
			if err != nil {
				action = ranking.Action(strings.ToLower(strings.TrimSpace(c.Action)))
			}
			contributions = append(contributions, ranking.Contribution{
				Action:     action,
				Points:     c.Points,
				RecordedAt: c.RecordedAt,
			})
		}
		histories = append(histories, ranking.MemberHistory{
			ID:            m.ID.String(),
			Name:          m.Name,
			TotalPoints:   m.Points,
			Contributions: contributions,
		})
	}
	return histories
}
