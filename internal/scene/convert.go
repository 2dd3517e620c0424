package scene

// ConvertToScene converts a point expressed in n's coordinate space to scene
// space (the coordinate space of the root node).
func (n *Node) ConvertToScene(p Vec) Vec {
	for a := n; a.parent != nil; a = a.parent {
		p = a.position.Add(p.Rotate(a.rotation))
	}
	return p
}

// ConvertFromScene converts a scene-space point into n's coordinate space.
func (n *Node) ConvertFromScene(p Vec) Vec {
	var chain []*Node
	for a := n; a.parent != nil; a = a.parent {
		chain = append(chain, a)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		a := chain[i]
		p = p.Sub(a.position).Rotate(-a.rotation)
	}
	return p
}

// ScenePosition returns the node's position in scene space.
func (n *Node) ScenePosition() Vec {
	if n.parent == nil {
		return n.position
	}
	return n.parent.ConvertToScene(n.position)
}

// SetScenePosition places the node at a scene-space point.
func (n *Node) SetScenePosition(p Vec) {
	if n.parent == nil {
		n.position = p
		return
	}
	n.position = n.parent.ConvertFromScene(p)
}

// SceneRotation returns the node's rotation accumulated up to the root.
func (n *Node) SceneRotation() float64 {
	r := 0.0
	for a := n; a.parent != nil; a = a.parent {
		r += a.rotation
	}
	return r
}
