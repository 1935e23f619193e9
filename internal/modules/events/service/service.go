package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// LevelUpChannel is the redis pub/sub channel carrying level-up events for
// the whole club.
const LevelUpChannel = "club_events:level_up"

// LevelUpEvent is published whenever a recorded contribution pushes a
// member across a level threshold.
type LevelUpEvent struct {
	MemberID      uuid.UUID `json:"member_id"`
	Name          string    `json:"name"`
	PreviousLevel string    `json:"previous_level"`
	NewLevel      string    `json:"new_level"`
	TotalPoints   int       `json:"total_points"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishLevelUp(ctx context.Context, event LevelUpEvent) error
}

type redisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher returns a Publisher backed by redis pub/sub. A nil
// client turns publishing into a no-op.
func NewRedisPublisher(client *redis.Client) Publisher {
	return &redisPublisher{client: client}
}

func (p *redisPublisher) PublishLevelUp(ctx context.Context, event LevelUpEvent) error {
	if p.client == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.client.Publish(ctx, LevelUpChannel, payload).Err()
}
