// Package physics runs the scene's rigid-body simulation on Chipmunk2D
// (github.com/jakecoffman/cp). Nodes carrying a scene.Collider get a body:
// dynamic colliders are simulated and written back to their node, all other
// colliders follow their node's scene position every step.
package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/hoppy/internal/scene"
)

const (
	collisionHero cp.CollisionType = iota + 1
	collisionGround
	collisionProp
)

// ContactFunc receives contact-begin notifications between two tagged nodes.
// The ground is reported as a node named "ground".
type ContactFunc func(a, b *scene.Node)

// World owns the Chipmunk space and the node↔body bindings.
type World struct {
	space   *cp.Space
	ground  *scene.Node
	bodies  map[*scene.Node]*binding
	hero    *Body
	contact ContactFunc
}

type binding struct {
	body  *cp.Body
	shape *cp.Shape
	seen  bool
}

// NewWorld creates a world with the given vertical gravity and an infinite
// ground surface at groundY.
func NewWorld(gravity, groundY float64) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	w := &World{
		space:  space,
		ground: scene.New("ground"),
		bodies: make(map[*scene.Node]*binding),
	}

	const reach = 1e5
	seg := space.AddShape(cp.NewSegment(space.StaticBody, cp.Vector{X: -reach, Y: groundY}, cp.Vector{X: reach, Y: groundY}, 0))
	seg.SetFriction(1)
	seg.SetElasticity(0)
	seg.SetCollisionType(collisionGround)
	seg.UserData = w.ground

	handler := space.NewWildcardCollisionHandler(collisionHero)
	handler.BeginFunc = w.begin
	handler.PreSolveFunc = w.preSolve
	return w
}

// OnContact registers the contact-begin callback.
func (w *World) OnContact(fn ContactFunc) {
	w.contact = fn
}

// AddHero creates the dynamic body for the hero node.
func (w *World) AddHero(node *scene.Node, mass, moment, radius float64) *Body {
	body := w.space.AddBody(cp.NewBody(mass, moment))
	p := node.ScenePosition()
	body.SetPosition(cp.Vector{X: p.X, Y: p.Y})
	body.SetAngle(node.SceneRotation())

	shape := w.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetFriction(0.7)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionHero)
	shape.UserData = node

	w.hero = &Body{body: body, node: node, moment: moment, responsive: true}
	w.bodies[node] = &binding{body: body, shape: shape}
	return w.hero
}

// Sync creates bodies for new collider nodes under root, removes bodies of
// nodes that left the tree, and moves node-driven bodies to their node.
func (w *World) Sync(root *scene.Node) {
	for _, b := range w.bodies {
		b.seen = false
	}

	root.Walk(func(n *scene.Node) bool {
		c := n.Collider()
		if c == nil || c.Dynamic {
			if b, ok := w.bodies[n]; ok {
				b.seen = true
			}
			return true
		}
		b, ok := w.bodies[n]
		if !ok {
			b = w.addProp(n, c)
		}
		b.seen = true
		p := n.ScenePosition()
		b.body.SetPosition(cp.Vector{X: p.X, Y: p.Y})
		b.body.SetAngle(n.SceneRotation())
		return true
	})

	for n, b := range w.bodies {
		if b.seen {
			continue
		}
		w.space.RemoveShape(b.shape)
		w.space.RemoveBody(b.body)
		delete(w.bodies, n)
	}
}

func (w *World) addProp(n *scene.Node, c *scene.Collider) *binding {
	body := w.space.AddBody(cp.NewKinematicBody())
	var shape *cp.Shape
	switch c.Shape {
	case scene.ShapeCircle:
		shape = cp.NewCircle(body, c.Radius, cp.Vector{})
	default:
		shape = cp.NewBox(body, c.Width, c.Height, 0)
	}
	w.space.AddShape(shape)
	shape.SetSensor(c.Sensor)
	shape.SetCollisionType(collisionProp)
	shape.UserData = n

	b := &binding{body: body, shape: shape}
	w.bodies[n] = b
	return b
}

// Step advances the simulation by dt and writes the hero's pose back to its node.
// Contact callbacks run synchronously inside Step.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
	if w.hero != nil {
		w.hero.syncNode()
	}
}

func (w *World) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Shapes()
	na, _ := a.UserData.(*scene.Node)
	nb, _ := b.UserData.(*scene.Node)
	if na == nil || nb == nil {
		return true
	}
	if w.contact != nil {
		w.contact(na, nb)
	}
	return w.responds(a, b)
}

func (w *World) preSolve(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Shapes()
	return w.responds(a, b)
}

// responds reports whether a hero contact should produce a collision response.
// A hero with its response disabled still rests on the ground.
func (w *World) responds(a, b *cp.Shape) bool {
	if w.hero == nil || w.hero.CollisionResponse() {
		return true
	}
	return a.UserData == w.ground || b.UserData == w.ground
}
