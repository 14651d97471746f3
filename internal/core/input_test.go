package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)
	if !f.Has(ActionJump) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should not be reported")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.SetPointer(10, 4)
	f.DT = 0.016

	f.Clear()
	if f.Has(ActionPause) || f.HasPointer || f.DT != 0 {
		t.Errorf("Clear should reset everything, got %+v", f)
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.SetPointer(3, 7)

	clone := f.Clone()
	clone.Set(ActionJump)

	if f.Has(ActionJump) {
		t.Error("mutating the clone must not affect the original")
	}
	if !clone.Has(ActionRight) || clone.PointerX != 3 || !clone.HasPointer {
		t.Errorf("clone lost state: %+v", clone)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionJump, "Jump"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
