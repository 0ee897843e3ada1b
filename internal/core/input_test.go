package core

import "testing"

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionReveal)
	f.SetPointer(3, 4)

	f.Clear()

	if f.Has(ActionReveal) {
		t.Error("Clear should drop actions")
	}
	if f.Pointer != nil {
		t.Error("Clear should drop the pointer")
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFlag)
	f.SetPointer(7, 2)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionFlag) {
		t.Error("clone lost its action after the original was cleared")
	}
	if c.Pointer == nil || *c.Pointer != (Point{X: 7, Y: 2}) {
		t.Errorf("clone pointer = %v, want (7,2)", c.Pointer)
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionReveal.String() != "Reveal" || ActionFlag.String() != "Flag" {
		t.Errorf("unexpected names %q %q", ActionReveal, ActionFlag)
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, want Unknown", Action(99))
	}
}
