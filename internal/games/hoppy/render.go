package hoppy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/hoppy/internal/core"
	"github.com/vovakirdan/hoppy/internal/scene"
)

// Hero sprites, one per flap animation frame.
var (
	flyingFrames  = []string{"(•ᴥ•)", "(•ᴥ•)ˊ", "(•ᴥ•)ˎ"}
	risingFrames  = []string{"(˘ᴥ˘)", "(˘ᴥ˘)ˊ", "(˘ᴥ˘)ˎ"}
	divingFrames  = []string{"(°ᴥ°)", "(°ᴥ°)ˊ", "(°ᴥ°)ˎ"}
	deadHeroFrame = "(×ᴥ×)"
)

// viewport maps scene units (y up) to screen cells (y down).
type viewport struct {
	sx, sy float64
	height float64
}

func newViewport(sceneW, sceneH float64, screenW, screenH int) viewport {
	return viewport{
		sx:     float64(screenW) / sceneW,
		sy:     float64(screenH) / sceneH,
		height: sceneH,
	}
}

func (v viewport) cell(p scene.Vec) (int, int) {
	return int(math.Floor(p.X * v.sx)), int(math.Floor((v.height - p.Y) * v.sy))
}

// rect returns the cells covered by a box centered on c. Non-empty boxes
// always cover at least one cell.
func (v viewport) rect(c, size scene.Vec) core.Rect {
	x0 := math.Floor((c.X - size.X/2) * v.sx)
	x1 := math.Ceil((c.X + size.X/2) * v.sx)
	y0 := math.Floor((v.height - (c.Y + size.Y/2)) * v.sy)
	y1 := math.Ceil((v.height - (c.Y - size.Y/2)) * v.sy)
	return core.NewRect(int(x0), int(y0), max(1, int(x1-x0)), max(1, int(y1-y0)))
}

// Render draws the scene to the screen buffer.
func (g *Game) Render(s *core.Screen) {
	s.Clear()
	if g.root == nil {
		return
	}
	v := newViewport(g.cfg.Scene.Width, g.cfg.Scene.Height, s.Width(), s.Height())

	g.root.Walk(func(n *scene.Node) bool {
		if n.Hidden() {
			return false
		}
		switch n.Kind() {
		case scene.KindSprite:
			if n.Name() == NodeHero {
				g.drawHero(s, v, n)
			} else {
				drawSprite(s, v, n)
			}
		case scene.KindLabel:
			drawLabel(s, v, n)
		case scene.KindButton:
			g.drawRestart(s, v, n)
		}
		return true
	})
}

// shakeOffset sums the render offsets of n and its ancestors.
func shakeOffset(n *scene.Node) scene.Vec {
	var off scene.Vec
	for a := n; a != nil; a = a.Parent() {
		off = off.Add(a.Offset())
	}
	return off
}

func drawSprite(s *core.Screen, v viewport, n *scene.Node) {
	r := v.rect(n.ScenePosition().Add(shakeOffset(n)), n.Size())
	s.FillRect(r, n.Fill(), n.Color())

	switch n.Name() {
	case "tile":
		s.FillRect(core.NewRect(r.X, r.Y, r.W, 1), GrassChar, core.ColorGrass)
	case "top":
		s.FillRect(core.NewRect(r.X, r.Bottom()-1, r.W, 1), LeafChar, core.ColorLeaf)
	case "bottom":
		s.FillRect(core.NewRect(r.X, r.Y, r.W, 1), LeafChar, core.ColorLeaf)
	}
}

func (g *Game) drawHero(s *core.Screen, v viewport, n *scene.Node) {
	glyph := heroGlyph(n.Rotation(), n.Frame(), g.loop.State() == StateGameOver)
	x, y := v.cell(n.ScenePosition().Add(shakeOffset(n)))
	s.DrawText(x-len([]rune(glyph))/2, y, glyph, n.Color())
}

// heroGlyph picks the sprite for the hero's pose.
func heroGlyph(rot float64, frame int, dead bool) string {
	if dead {
		return deadHeroFrame
	}
	frames := flyingFrames
	switch deg := core.Degrees(rot); {
	case deg > 10:
		frames = risingFrames
	case deg < -10:
		frames = divingFrames
	}
	return frames[frame%len(frames)]
}

func drawLabel(s *core.Screen, v viewport, n *scene.Node) {
	x, y := v.cell(n.ScenePosition().Add(shakeOffset(n)))
	text := n.Text()
	s.DrawText(x-len([]rune(text))/2, y, text, n.Color())
}

func (g *Game) drawRestart(s *core.Screen, v viewport, n *scene.Node) {
	x, y := v.cell(n.ScenePosition().Add(shakeOffset(n)))

	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", g.loop.Score()),
		"[R] " + n.Text(),
	}
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	box := core.NewRect(x-w/2-2, y-len(lines)/2-1, w+4, len(lines)+2)
	s.FillRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, n.Color())
	for i, l := range lines {
		s.DrawText(x-len([]rune(l))/2, box.Y+1+i, l, n.Color())
	}
}
