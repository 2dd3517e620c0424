package scene

// ShapeKind selects the collision shape of a Collider.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
)

// Collider marks a node as taking part in physics. The physics world creates
// a body for every node carrying one.
type Collider struct {
	Shape   ShapeKind
	Width   float64 // box only
	Height  float64 // box only
	Radius  float64 // circle only
	Sensor  bool    // reports contacts without a collision response
	Dynamic bool    // simulated by the physics engine; otherwise driven by the node
}

// BoxCollider returns a node-driven box collider.
func BoxCollider(w, h float64) *Collider {
	return &Collider{Shape: ShapeBox, Width: w, Height: h}
}

// SensorCollider returns a node-driven box that only reports contacts.
func SensorCollider(w, h float64) *Collider {
	return &Collider{Shape: ShapeBox, Width: w, Height: h, Sensor: true}
}
