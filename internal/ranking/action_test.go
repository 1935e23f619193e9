package ranking

import (
	"errors"
	"testing"

	"anoa.com/clubrank/pkg/apperror"
)

func TestPointsForFixedValues(t *testing.T) {
	want := map[Action]int{
		ActionAttendEvent:      10,
		ActionVolunteerTask:    20,
		ActionLeadEvent:        50,
		ActionUploadDocs:       15,
		ActionBringSponsorship: 100,
	}

	for action, points := range want {
		got, err := PointsFor(action)
		if err != nil {
			t.Fatalf("PointsFor(%q) returned error: %v", action, err)
		}
		if got != points {
			t.Errorf("PointsFor(%q) = %d, want %d", action, got, points)
		}
	}
}

func TestPointsForUnknownAction(t *testing.T) {
	if _, err := PointsFor(Action("hack_mainframe")); !errors.Is(err, apperror.ErrInvalidAction) {
		t.Errorf("expected ErrInvalidAction, got %v", err)
	}
}

func TestParseActionNormalizes(t *testing.T) {
	cases := []string{"lead_event", "LEAD_EVENT", "  Lead_Event  "}
	for _, raw := range cases {
		action, err := ParseAction(raw)
		if err != nil {
			t.Fatalf("ParseAction(%q) returned error: %v", raw, err)
		}
		if action != ActionLeadEvent {
			t.Errorf("ParseAction(%q) = %q, want %q", raw, action, ActionLeadEvent)
		}
	}

	if _, err := ParseAction("unknown"); !errors.Is(err, apperror.ErrInvalidAction) {
		t.Errorf("expected ErrInvalidAction for unknown action, got %v", err)
	}
}
