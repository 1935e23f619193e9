package ranking

import (
	"time"

	"anoa.com/clubrank/pkg/apperror"
)

// Time frames accepted by the leaderboard.
const (
	TimeFrameAll    = "all"
	TimeFrameWeek   = "week"
	TimeFrameMonth  = "month"
	TimeFrameYear   = "year"
	TimeFrameCustom = "custom"
)

const dateLayout = "2006-01-02"

// Window is a resolved date range. A zero From or To means that side is
// unbounded; To is exclusive so a custom end date can cover its whole day.
type Window struct {
	From time.Time
	To   time.Time
}

// ResolveWindow turns a time frame plus optional custom bounds into a
// concrete Window. Unknown frames fall back to the unbounded window, like
// an omitted frame. Custom frames require both bounds.
func ResolveWindow(timeFrame, startDate, endDate string, now time.Time) (Window, error) {
	switch timeFrame {
	case TimeFrameWeek:
		return Window{From: now.AddDate(0, 0, -7)}, nil
	case TimeFrameMonth:
		return Window{From: now.AddDate(0, 0, -30)}, nil
	case TimeFrameYear:
		return Window{From: now.AddDate(0, 0, -365)}, nil
	case TimeFrameCustom:
		if startDate == "" || endDate == "" {
			return Window{}, apperror.ErrMissingBounds
		}
		start, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return Window{}, apperror.ErrInvalidDate
		}
		end, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return Window{}, apperror.ErrInvalidDate
		}
		// end date is inclusive through the end of its day
		return Window{From: start, To: end.AddDate(0, 0, 1)}, nil
	default:
		return Window{}, nil
	}
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && !t.Before(w.To) {
		return false
	}
	return true
}
