package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestRuntimeConfigSeed(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MovePause != DefaultMovePause {
		t.Errorf("MovePause = %v, expected %v", cfg.MovePause, DefaultMovePause)
	}
	if cfg.ResolveSeed() == 0 {
		t.Error("ResolveSeed() should never return 0 for an unset seed")
	}

	cfg.Seed = 42
	if cfg.ResolveSeed() != 42 {
		t.Errorf("ResolveSeed() = %d, expected 42", cfg.ResolveSeed())
	}
}

func TestActionIsMove(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsMove() {
			t.Errorf("%s should be a move", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionConfirm, ActionBack, ActionRestart, ActionQuit} {
		if a.IsMove() {
			t.Errorf("%s should not be a move", a)
		}
	}
}
