package repository

import (
	"context"
	"errors"
	"time"

	"anoa.com/clubrank/internal/entity"
	"anoa.com/clubrank/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository owns Member and Contribution persistence. The ranking
// engine only ever sees what this store hands out.
type MemberRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)
	FindByName(ctx context.Context, name string) (*entity.Member, error)
	List(ctx context.Context, page, limit int) ([]entity.Member, int64, error)
	ListWithContributions(ctx context.Context) ([]entity.Member, error)
	CountWithPointsGreaterThan(ctx context.Context, points int) (int64, error)
	Create(ctx context.Context, member *entity.Member) error
	AppendContribution(ctx context.Context, member *entity.Member, contribution *entity.Contribution, expectedVersion int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	var member entity.Member
	err := r.db.WithContext(ctx).
		Preload("Contributions", func(db *gorm.DB) *gorm.DB {
			return db.Order("recorded_at ASC")
		}).
		First(&member, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByName(ctx context.Context, name string) (*entity.Member, error) {
	var member entity.Member
	err := r.db.WithContext(ctx).
		Preload("Contributions", func(db *gorm.DB) *gorm.DB {
			return db.Order("recorded_at ASC")
		}).
		First(&member, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) List(ctx context.Context, page, limit int) ([]entity.Member, int64, error) {
	var members []entity.Member
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.Member{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).
		Order("points DESC").
		Limit(limit).
		Offset(offset).
		Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// ListWithContributions loads the whole population with full histories for
// the leaderboard aggregator. Members are ordered by lifetime points so
// windowed ties keep a deterministic relative order.
func (r *memberRepository) ListWithContributions(ctx context.Context) ([]entity.Member, error) {
	var members []entity.Member
	err := r.db.WithContext(ctx).
		Preload("Contributions", func(db *gorm.DB) *gorm.DB {
			return db.Order("recorded_at ASC")
		}).
		Order("points DESC").
		Find(&members).Error
	return members, err
}

func (r *memberRepository) CountWithPointsGreaterThan(ctx context.Context, points int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Member{}).
		Where("points > ?", points).
		Count(&count).Error
	return count, err
}

func (r *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// AppendContribution inserts the contribution row and writes the
// recomputed totals in one transaction. The member row update is guarded
// by the version column; a concurrent writer winning the race surfaces as
// ErrConcurrentUpdate so the caller can reload and retry.
func (r *memberRepository) AppendContribution(ctx context.Context, member *entity.Member, contribution *entity.Contribution, expectedVersion int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(contribution).Error; err != nil {
			return err
		}

		result := tx.Model(&entity.Member{}).
			Where("id = ? AND version = ?", member.ID, expectedVersion).
			Select("Points", "Level", "Badges", "Version", "LastActiveAt").
			Updates(entity.Member{
				Points:       member.Points,
				Level:        member.Level,
				Badges:       member.Badges,
				Version:      expectedVersion + 1,
				LastActiveAt: time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperror.ErrConcurrentUpdate
		}
		return nil
	})
}

func (r *memberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Select("Contributions").
		Delete(&entity.Member{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.ErrMemberNotFound
	}
	return nil
}
