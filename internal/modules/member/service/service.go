package service

import (
	"context"
	"errors"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"anoa.com/clubrank/internal/entity"
	eventsService "anoa.com/clubrank/internal/modules/events/service"
	"anoa.com/clubrank/internal/modules/member/dto"
	"anoa.com/clubrank/internal/modules/member/repository"
	"anoa.com/clubrank/internal/ranking"
	"anoa.com/clubrank/pkg/apperror"
	"github.com/google/uuid"
)

// maxUpdateRetries bounds how often a contribution is replayed when the
// versioned member update loses a race.
const maxUpdateRetries = 3

const recentContributionsLimit = 10

type MemberService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*dto.MemberProfileResponse, error)
	ListMembers(ctx context.Context, page, limit int) (*dto.PaginatedMembersResponse, error)
	RecordContribution(ctx context.Context, memberID uuid.UUID, input dto.ContributionInput) (*dto.ContributionResult, error)
	AddPointsByName(ctx context.Context, input dto.AddPointsInput) (*dto.ContributionResult, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error
}

type memberService struct {
	repo   repository.MemberRepository
	events eventsService.Publisher
}

func NewMemberService(repo repository.MemberRepository, events eventsService.Publisher) MemberService {
	return &memberService{
		repo:   repo,
		events: events,
	}
}

func (s *memberService) RecordContribution(ctx context.Context, memberID uuid.UUID, input dto.ContributionInput) (*dto.ContributionResult, error) {
	action, err := ranking.ParseAction(input.Action)
	if err != nil {
		return nil, err
	}

	recordedAt := time.Now().UTC()
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return nil, apperror.ErrInvalidDate
		}
		recordedAt = parsed
	}

	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		member, err := s.repo.FindByID(ctx, memberID)
		if err != nil {
			return nil, err
		}

		result, err := s.apply(ctx, member, action, recordedAt, input.Description, input.EventName)
		if errors.Is(err, apperror.ErrConcurrentUpdate) {
			continue
		}
		return result, err
	}

	return nil, apperror.ErrConcurrentUpdate
}

func (s *memberService) AddPointsByName(ctx context.Context, input dto.AddPointsInput) (*dto.ContributionResult, error) {
	action, err := ranking.ParseAction(input.Action)
	if err != nil {
		return nil, err
	}
	points, err := ranking.PointsFor(action)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	now := time.Now().UTC()

	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		member, err := s.repo.FindByName(ctx, name)
		if errors.Is(err, apperror.ErrMemberNotFound) {
			// first contribution creates the member
			first := ranking.Contribution{Action: action, Points: points, RecordedAt: now}
			created := &entity.Member{
				Name:         name,
				Points:       points,
				Level:        string(ranking.LevelFor(points)),
				Badges:       ranking.BadgesFor(points, []ranking.Contribution{first}),
				LastActiveAt: now,
				Contributions: []entity.Contribution{
					{Action: string(action), Points: points, RecordedAt: now},
				},
			}
			if err := s.repo.Create(ctx, created); err != nil {
				return nil, err
			}
			return &dto.ContributionResult{
				MemberID:     created.ID,
				Name:         created.Name,
				PointsAdded:  points,
				TotalPoints:  points,
				Level:        created.Level,
				BadgesEarned: created.Badges,
			}, nil
		}
		if err != nil {
			return nil, err
		}

		result, err := s.apply(ctx, member, action, now, nil, nil)
		if errors.Is(err, apperror.ErrConcurrentUpdate) {
			continue
		}
		return result, err
	}

	return nil, apperror.ErrConcurrentUpdate
}

// apply recomputes points, level and badges for one appended contribution
// and writes everything back as a single versioned update.
func (s *memberService) apply(ctx context.Context, member *entity.Member, action ranking.Action, recordedAt time.Time, description, eventName *string) (*dto.ContributionResult, error) {
	points, err := ranking.PointsFor(action)
	if err != nil {
		return nil, err
	}

	history := toEngineContributions(member.Contributions)
	history = append(history, ranking.Contribution{Action: action, Points: points, RecordedAt: recordedAt})

	newPoints := member.Points + points
	newLevel := ranking.LevelFor(newPoints)
	newBadges := ranking.BadgesFor(newPoints, history)
	earned := diffBadges(member.Badges, newBadges)
	previousLevel := member.Level

	row := &entity.Contribution{
		MemberID:    member.ID,
		Action:      string(action),
		Points:      points,
		Description: description,
		EventName:   eventName,
		RecordedAt:  recordedAt,
	}

	expectedVersion := member.Version
	member.Points = newPoints
	member.Level = string(newLevel)
	member.Badges = newBadges

	if err := s.repo.AppendContribution(ctx, member, row, expectedVersion); err != nil {
		return nil, err
	}

	if string(newLevel) != previousLevel && s.events != nil {
		event := eventsService.LevelUpEvent{
			MemberID:      member.ID,
			Name:          member.Name,
			PreviousLevel: previousLevel,
			NewLevel:      string(newLevel),
			TotalPoints:   newPoints,
			OccurredAt:    time.Now().UTC(),
		}
		if err := s.events.PublishLevelUp(ctx, event); err != nil {
			log.Printf("failed to publish level-up event for member %s: %v", member.ID, err)
		}
	}

	return &dto.ContributionResult{
		MemberID:     member.ID,
		Name:         member.Name,
		PointsAdded:  points,
		TotalPoints:  newPoints,
		Level:        string(newLevel),
		BadgesEarned: earned,
	}, nil
}

func (s *memberService) GetProfile(ctx context.Context, id uuid.UUID) (*dto.MemberProfileResponse, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	greater, err := s.repo.CountWithPointsGreaterThan(ctx, member.Points)
	if err != nil {
		return nil, err
	}
	rank := int(greater) + 1

	level := ranking.Level(member.Level)
	var nextLevelPoints *int
	if next, ok := ranking.NextLevelThreshold(level); ok {
		nextLevelPoints = &next
	}
	progress := ranking.ProgressToNextLevel(member.Points, level)

	byType := make(map[string]dto.ActionStats)
	for _, c := range member.Contributions {
		action, err := ranking.ParseAction(c.Action)
		if err != nil {
			continue
		}
		stats := byType[string(action)]
		stats.Count++
		stats.TotalPoints += c.Points
		byType[string(action)] = stats
	}

	recent := make([]entity.Contribution, len(member.Contributions))
	copy(recent, member.Contributions)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].RecordedAt.After(recent[j].RecordedAt)
	})
	if len(recent) > recentContributionsLimit {
		recent = recent[:recentContributionsLimit]
	}

	recentResponses := make([]dto.ContributionResponse, 0, len(recent))
	for _, c := range recent {
		recentResponses = append(recentResponses, dto.ContributionResponse{
			Action:      c.Action,
			Points:      c.Points,
			Description: c.Description,
			EventName:   c.EventName,
			Timestamp:   c.RecordedAt,
		})
	}

	return &dto.MemberProfileResponse{
		ID:                  member.ID,
		Name:                member.Name,
		Email:               member.Email,
		Points:              member.Points,
		Level:               member.Level,
		Badges:              member.Badges,
		Rank:                rank,
		NextLevelPoints:     nextLevelPoints,
		Progress:            progress,
		TotalContributions:  len(member.Contributions),
		ContributionsByType: byType,
		RecentContributions: recentResponses,
		JoinDate:            member.JoinedAt,
		LastActive:          member.LastActiveAt,
	}, nil
}

func (s *memberService) ListMembers(ctx context.Context, page, limit int) (*dto.PaginatedMembersResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	members, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.MemberSummary, 0, len(members))
	for _, m := range members {
		summaries = append(summaries, dto.MemberSummary{
			ID:     m.ID,
			Name:   m.Name,
			Email:  m.Email,
			Points: m.Points,
			Level:  m.Level,
			Badges: m.Badges,
		})
	}

	return &dto.PaginatedMembersResponse{
		Data: summaries,
		Meta: dto.PaginationMeta{
			CurrentPage: page,
			TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
			TotalItems:  total,
			Limit:       limit,
		},
	}, nil
}

func (s *memberService) DeleteMember(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// toEngineContributions normalizes stored rows into the engine's typed
// form. Unrecognized action strings keep their points but never count
// toward action badges.
func toEngineContributions(rows []entity.Contribution) []ranking.Contribution {
	out := make([]ranking.Contribution, 0, len(rows))
	for _, row := range rows {
		action, err := ranking.ParseAction(row.Action)
		if err != nil {
			action = ranking.Action(strings.ToLower(strings.TrimSpace(row.Action)))
		}
		out = append(out, ranking.Contribution{
			Action:     action,
			Points:     row.Points,
			RecordedAt: row.RecordedAt,
		})
	}
	return out
}

func diffBadges(before, after []string) []string {
	seen := make(map[string]struct{}, len(before))
	for _, b := range before {
		seen[b] = struct{}{}
	}

	earned := make([]string, 0)
	for _, b := range after {
		if _, ok := seen[b]; !ok {
			earned = append(earned, b)
		}
	}
	return earned
}
