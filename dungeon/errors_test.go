package dungeon

import "testing"

func TestErrorStringCoversEveryValue(t *testing.T) {
	cases := map[Error]string{
		Success:                     "Success",
		SeparateRoomsFailed:         "SeparateRoomsFailed",
		TriangulationFailed:         "TriangulationFailed",
		GateSearchFailed:            "GateSearchFailed",
		RouteSearchFailed:           "RouteSearchFailed",
		GoalPointIsOutsideGoalRange: "GoalPointIsOutsideGoalRange",
	}
	for e, want := range cases {
		if got := e.String(); got != want {
			t.Errorf("Error(%d).String() = %q, want %q", e, got, want)
		}
	}
}

func TestErrorUnknownValue(t *testing.T) {
	if got := Error(255).String(); got != "Unknown" {
		t.Errorf("Error(255).String() = %q, want %q", got, "Unknown")
	}
}

func TestErrorImplementsErrorInterface(t *testing.T) {
	var err error = SeparateRoomsFailed
	if err.Error() != "SeparateRoomsFailed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "SeparateRoomsFailed")
	}
}
