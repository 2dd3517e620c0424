package scene

import "testing"

func TestShakeSettles(t *testing.T) {
	n := New("layer")
	n.Run(Shake(0.5, 6))

	moved := false
	for i := 0; i < 60; i++ {
		n.Update(1.0 / 60.0)
		o := n.Offset()
		if o.X > 6 || o.X < -6 || o.Y > 6 || o.Y < -6 {
			t.Fatalf("offset %+v exceeds amplitude", o)
		}
		if o != (Vec{}) {
			moved = true
		}
	}

	if !moved {
		t.Error("shake never displaced the node")
	}
	if n.Offset() != (Vec{}) {
		t.Errorf("offset after shake = %+v, expected zero", n.Offset())
	}
	if n.HasActions() {
		t.Error("shake should finish")
	}
}

func TestAnimateLoopsUntilRemoved(t *testing.T) {
	n := New("hero")
	n.RunWithKey("flap", Animate(3, 0.1))

	n.Update(0.1)
	if n.Frame() != 1 {
		t.Errorf("frame = %d, expected 1", n.Frame())
	}
	n.Update(0.2)
	if n.Frame() != 0 {
		t.Errorf("frame = %d, expected wrap to 0", n.Frame())
	}

	// Re-running with the same key replaces the action
	n.RunWithKey("flap", Animate(3, 0.1))
	if len(n.actions) != 1 {
		t.Errorf("expected one action, got %d", len(n.actions))
	}

	n.RemoveAllActions()
	n.Update(1)
	if n.HasActions() || n.Frame() != 0 {
		t.Error("removed actions must not run")
	}
}

func TestUpdateReachesDescendants(t *testing.T) {
	root := New("scene")
	child := New("ground")
	root.AddChild(child)
	child.Run(Shake(0.1, 2))

	root.Update(0.05)
	if child.Offset() == (Vec{}) {
		t.Error("child action did not run")
	}
}
