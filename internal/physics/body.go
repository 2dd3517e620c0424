package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/hoppy/internal/scene"
)

// Body is the hero's simulated body. It satisfies the game loop's body handle.
type Body struct {
	body       *cp.Body
	node       *scene.Node
	moment     float64
	responsive bool
}

// Velocity returns the linear velocity.
func (b *Body) Velocity() (dx, dy float64) {
	v := b.body.Velocity()
	return v.X, v.Y
}

// SetVelocity sets the linear velocity.
func (b *Body) SetVelocity(dx, dy float64) {
	b.body.SetVelocity(dx, dy)
}

// ApplyImpulse applies a linear impulse through the center of gravity.
func (b *Body) ApplyImpulse(dx, dy float64) {
	b.body.ApplyImpulseAtWorldPoint(cp.Vector{X: dx, Y: dy}, b.body.Position())
}

// ApplyAngularImpulse changes angular velocity by j divided by the moment.
// It has no effect while rotation is disabled.
func (b *Body) ApplyAngularImpulse(j float64) {
	m := b.body.Moment()
	if !b.RotationEnabled() || m <= 0 {
		return
	}
	b.body.SetAngularVelocity(b.body.AngularVelocity() + j/m)
}

// Rotation returns the body angle in radians.
func (b *Body) Rotation() float64 {
	return b.body.Angle()
}

// SetRotation sets the body angle in radians.
func (b *Body) SetRotation(rad float64) {
	b.body.SetAngle(rad)
	b.node.SetRotation(rad)
}

// AngularVelocity returns the angular velocity in rad/s.
func (b *Body) AngularVelocity() float64 {
	return b.body.AngularVelocity()
}

// SetAngularVelocity sets the angular velocity in rad/s.
func (b *Body) SetAngularVelocity(w float64) {
	b.body.SetAngularVelocity(w)
}

// SetRotationEnabled locks or unlocks rotation by switching the moment of
// inertia between infinity and its configured value.
func (b *Body) SetRotationEnabled(enabled bool) {
	if enabled {
		b.body.SetMoment(b.moment)
		return
	}
	b.body.SetMoment(math.Inf(1))
}

// RotationEnabled reports whether the body can rotate.
func (b *Body) RotationEnabled() bool {
	return !math.IsInf(b.body.Moment(), 1)
}

// SetCollisionResponse toggles whether contacts other than the ground push the body.
func (b *Body) SetCollisionResponse(enabled bool) {
	b.responsive = enabled
}

// CollisionResponse reports whether obstacle contacts push the body.
func (b *Body) CollisionResponse() bool {
	return b.responsive
}

// Position returns the body position in scene space.
func (b *Body) Position() scene.Vec {
	p := b.body.Position()
	return scene.Vec{X: p.X, Y: p.Y}
}

func (b *Body) syncNode() {
	b.node.SetScenePosition(b.Position())
	b.node.SetRotation(b.body.Angle())
}
