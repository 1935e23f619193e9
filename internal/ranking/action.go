package ranking

import (
	"strings"
	"time"

	"anoa.com/clubrank/pkg/apperror"
)

// Action is a recognized club contribution category. Each action carries a
// fixed point value; anything else is rejected at the boundary.
type Action string

const (
	ActionAttendEvent      Action = "attend_event"
	ActionVolunteerTask    Action = "volunteer_task"
	ActionLeadEvent        Action = "lead_event"
	ActionUploadDocs       Action = "upload_docs"
	ActionBringSponsorship Action = "bring_sponsorship"
)

var actionPoints = map[Action]int{
	ActionAttendEvent:      10,
	ActionVolunteerTask:    20,
	ActionLeadEvent:        50,
	ActionUploadDocs:       15,
	ActionBringSponsorship: 100,
}

// Actions lists all recognized actions in a stable order.
func Actions() []Action {
	return []Action{
		ActionAttendEvent,
		ActionVolunteerTask,
		ActionLeadEvent,
		ActionUploadDocs,
		ActionBringSponsorship,
	}
}

// ParseAction normalizes a raw action string (stored rows and request
// payloads may carry arbitrary casing/whitespace) into an Action.
func ParseAction(raw string) (Action, error) {
	action := Action(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := actionPoints[action]; !ok {
		return "", apperror.ErrInvalidAction
	}
	return action, nil
}

// PointsFor returns the fixed point value of an action. This is the
// validation gate for every contribution-accepting operation.
func PointsFor(action Action) (int, error) {
	points, ok := actionPoints[action]
	if !ok {
		return 0, apperror.ErrInvalidAction
	}
	return points, nil
}

// Contribution is the engine's view of a single recorded contribution.
type Contribution struct {
	Action     Action
	Points     int
	RecordedAt time.Time
}
