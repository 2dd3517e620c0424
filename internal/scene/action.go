package scene

import "math"

// Action is a behavior attached to a node and advanced once per host tick.
type Action interface {
	// Step advances the action by dt seconds and reports whether it finished.
	Step(n *Node, dt float64) bool
}

type runningAction struct {
	key    string
	action Action
}

// Run attaches an action to the node.
func (n *Node) Run(a Action) {
	n.actions = append(n.actions, runningAction{action: a})
}

// RunWithKey attaches an action, replacing any running action with the same key.
func (n *Node) RunWithKey(key string, a Action) {
	n.RemoveAction(key)
	n.actions = append(n.actions, runningAction{key: key, action: a})
}

// RemoveAction cancels the action registered under key.
func (n *Node) RemoveAction(key string) {
	kept := n.actions[:0]
	for _, ra := range n.actions {
		if key == "" || ra.key != key {
			kept = append(kept, ra)
		}
	}
	n.actions = kept
}

// RemoveAllActions cancels every action running on the node.
func (n *Node) RemoveAllActions() {
	n.actions = nil
}

// HasActions reports whether any action is running on the node.
func (n *Node) HasActions() bool {
	return len(n.actions) > 0
}

// Update advances the actions of n and all its descendants.
func (n *Node) Update(dt float64) {
	n.Walk(func(node *Node) bool {
		node.stepActions(dt)
		return true
	})
}

func (n *Node) stepActions(dt float64) {
	if !n.HasActions() {
		return
	}
	current := n.actions
	n.actions = nil
	var kept []runningAction
	for _, ra := range current {
		if !ra.action.Step(n, dt) {
			kept = append(kept, ra)
		}
	}
	// actions started from inside Step were appended to n.actions
	n.actions = append(kept, n.actions...)
}

// shake jitters the node's visual offset and settles it back to zero.
type shake struct {
	duration  float64
	amplitude float64
	elapsed   float64
}

// Shake returns a one-shot action that displaces the node horizontally and
// vertically with a decaying oscillation for duration seconds.
func Shake(duration, amplitude float64) Action {
	return &shake{duration: duration, amplitude: amplitude}
}

func (s *shake) Step(n *Node, dt float64) bool {
	s.elapsed += dt
	if s.elapsed >= s.duration {
		n.SetOffset(Vec{})
		return true
	}
	decay := 1 - s.elapsed/s.duration
	phase := s.elapsed * 2 * math.Pi * 12
	n.SetOffset(Vec{
		X: s.amplitude * decay * math.Sin(phase),
		Y: s.amplitude * decay * math.Cos(phase*1.3),
	})
	return false
}

// animate cycles the node's frame index forever.
type animate struct {
	frames   int
	perFrame float64
	elapsed  float64
}

// Animate returns a looping action that advances the node's frame every
// perFrame seconds, wrapping after frames frames.
func Animate(frames int, perFrame float64) Action {
	return &animate{frames: max(frames, 1), perFrame: perFrame}
}

func (a *animate) Step(n *Node, dt float64) bool {
	if a.perFrame <= 0 {
		return false
	}
	a.elapsed += dt
	for a.elapsed >= a.perFrame {
		a.elapsed -= a.perFrame
		n.SetFrame((n.Frame() + 1) % a.frames)
	}
	return false
}
