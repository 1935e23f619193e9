package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Member is a club member with their denormalized standing. Points, Level
// and Badges are derived from the contribution history and updated in the
// same transaction that appends a contribution; Version guards that
// read-modify-write against concurrent updates.
type Member struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:100;uniqueIndex:idx_member_name_email,priority:1;not null" json:"name"`
	Email        *string   `gorm:"size:100;uniqueIndex:idx_member_name_email,priority:2" json:"email,omitempty"`
	Points       int       `gorm:"default:0;index" json:"points"`
	Level        string    `gorm:"size:50;default:'Bronze Member'" json:"level"`
	Badges       []string  `gorm:"serializer:json" json:"badges"`
	Version      int       `gorm:"default:0" json:"-"`
	JoinedAt     time.Time `gorm:"autoCreateTime" json:"join_date"`
	LastActiveAt time.Time `json:"last_active"`

	Contributions []Contribution `gorm:"constraint:OnDelete:CASCADE" json:"contributions,omitempty"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Contribution is one immutable point-earning record. Rows are only ever
// appended, never mutated or deleted (they go away with their member).
type Contribution struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	MemberID    uuid.UUID `gorm:"type:uuid;index:idx_contrib_member_date,priority:1;not null" json:"member_id"`
	Action      string    `gorm:"size:50;not null" json:"action"`
	Points      int       `gorm:"not null" json:"points"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	EventName   *string   `gorm:"size:200" json:"event_name,omitempty"`
	RecordedAt  time.Time `gorm:"index:idx_contrib_member_date,priority:2;index:idx_contrib_date" json:"timestamp"`
}
