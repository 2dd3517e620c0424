// Package scene is a small retained scene graph: nodes with a position and
// rotation relative to their parent, per-node actions advanced by the host,
// and named templates that can be instantiated at runtime.
//
// Scene space is y-up with the origin at the bottom-left corner of the screen.
package scene

import (
	"math"
	"slices"

	"github.com/vovakirdan/hoppy/internal/core"
)

// Vec is a point or displacement in some node's coordinate space.
type Vec struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Rotate returns v rotated counter-clockwise by rad.
func (v Vec) Rotate(rad float64) Vec {
	if rad == 0 {
		return v
	}
	sin, cos := math.Sincos(rad)
	return Vec{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Kind tells the renderer how to draw a node.
type Kind int

const (
	KindContainer Kind = iota // no visual of its own
	KindSprite                // filled rectangle of Size
	KindLabel                 // Text centered on the position
	KindButton                // Text inside a box
)

// Node is an element of the scene graph.
type Node struct {
	name     string
	kind     Kind
	position Vec
	rotation float64
	size     Vec
	text     string
	fill     rune
	color    core.Color
	hidden   bool
	frame    int
	offset   Vec
	collider *Collider

	parent   *Node
	children []*Node
	actions  []runningAction
}

// New creates a container node.
func New(name string) *Node {
	return &Node{name: name, kind: KindContainer}
}

// NewSprite creates a rectangular sprite of w x h centered on its position.
func NewSprite(name string, w, h float64, fill rune, color core.Color) *Node {
	return &Node{name: name, kind: KindSprite, size: Vec{w, h}, fill: fill, color: color}
}

// NewLabel creates a text label.
func NewLabel(name, text string, color core.Color) *Node {
	return &Node{name: name, kind: KindLabel, text: text, color: color}
}

// NewButton creates a boxed text control.
func NewButton(name, text string, color core.Color) *Node {
	return &Node{name: name, kind: KindButton, text: text, color: color}
}

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// Kind returns how the node is drawn.
func (n *Node) Kind() Kind { return n.kind }

// Position returns the position in the parent's space.
func (n *Node) Position() Vec { return n.position }

// SetPosition sets the position in the parent's space.
func (n *Node) SetPosition(p Vec) { n.position = p }

// Rotation returns the rotation relative to the parent, in radians.
func (n *Node) Rotation() float64 { return n.rotation }

// SetRotation sets the rotation relative to the parent, in radians.
func (n *Node) SetRotation(r float64) { n.rotation = r }

// Size returns the sprite or box size.
func (n *Node) Size() Vec { return n.size }

// Text returns the label text.
func (n *Node) Text() string { return n.text }

// SetText sets the label text.
func (n *Node) SetText(s string) { n.text = s }

// Fill returns the rune a sprite is filled with.
func (n *Node) Fill() rune { return n.fill }

// Color returns the draw color.
func (n *Node) Color() core.Color { return n.color }

// Hidden reports whether the node and its subtree are skipped when drawing.
func (n *Node) Hidden() bool { return n.hidden }

// SetHidden hides or reveals the node.
func (n *Node) SetHidden(h bool) { n.hidden = h }

// Frame returns the current animation frame.
func (n *Node) Frame() int { return n.frame }

// SetFrame sets the current animation frame.
func (n *Node) SetFrame(f int) { n.frame = f }

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Collider returns the node's physics shape, or nil.
func (n *Node) Collider() *Collider { return n.collider }

// SetCollider attaches a physics shape to the node.
func (n *Node) SetCollider(c *Collider) { n.collider = c }

// Offset is a transient visual displacement set by actions such as Shake.
// It is applied when drawing only and never affects coordinate conversion.
func (n *Node) Offset() Vec { return n.offset }

// SetOffset sets the visual displacement.
func (n *Node) SetOffset(o Vec) { n.offset = o }

// MoveBy shifts the node's position by d.
func (n *Node) MoveBy(d Vec) { n.position = n.position.Add(d) }

// Children returns a snapshot of the node's children, safe to iterate while
// children are added or removed.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// AddChild attaches c to n, detaching it from any previous parent.
func (n *Node) AddChild(c *Node) {
	c.RemoveFromParent()
	c.parent = n
	n.children = append(n.children, c)
}

// RemoveFromParent detaches the node. It is a no-op for root nodes.
func (n *Node) RemoveFromParent() {
	p := n.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
}

// ChildNamed returns the first direct child with the given name.
func (n *Node) ChildNamed(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Find searches the subtree for a node with the given name, excluding n
// itself. Direct children are checked before descending.
func (n *Node) Find(name string) *Node {
	if c := n.ChildNamed(name); c != nil {
		return c
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children() {
		c.Walk(fn)
	}
}

// Root returns the top-most ancestor.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}
