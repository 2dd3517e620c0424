// Package hoppy implements Hoppy, a one-button scroller: tap to hop the bunny
// through gaps between carrots, touch anything else and the run is over.
package hoppy

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/hoppy/internal/config"
	"github.com/vovakirdan/hoppy/internal/core"
	"github.com/vovakirdan/hoppy/internal/scene"
)

// Node and template names the loop relies on.
const (
	NodeHero      = "hero"
	NodeGround    = "groundLayer"
	NodeObstacles = "obstacleLayer"
	NodeScore     = "scoreLabel"
	NodeRestart   = "restartButton"
	NodeGoal      = "goal"

	TemplateObstacle = "Obstacle"
)

// Sound effect names.
const (
	SoundFlap  = "flap"
	SoundGoal  = "goal"
	SoundDeath = "death"
)

// ErrMissingNode is returned when the scene lacks a node the loop needs.
var ErrMissingNode = errors.New("hoppy: missing scene node")

// State is the state of one run.
type State int

const (
	StateActive State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game over"
	}
	return "active"
}

// HeroBody is the simulated body of the hero. Angles are in radians.
type HeroBody interface {
	Velocity() (dx, dy float64)
	SetVelocity(dx, dy float64)
	ApplyImpulse(dx, dy float64)
	ApplyAngularImpulse(j float64)
	Rotation() float64
	SetRotation(rad float64)
	AngularVelocity() float64
	SetAngularVelocity(w float64)
	SetRotationEnabled(enabled bool)
	SetCollisionResponse(enabled bool)
}

// SoundPlayer plays named sound effects.
type SoundPlayer interface {
	Play(name string)
}

// Random yields uniform values in [min, max].
type Random interface {
	Float64Range(min, max float64) float64
}

// Scene bundles the scene graph the loop drives.
type Scene struct {
	Root    *scene.Node
	Body    HeroBody
	Library *scene.Library
}

// Loop is the per-frame game logic of a single run.
type Loop struct {
	cfg   config.HoppyConfig
	diff  *config.DifficultyManager
	sound SoundPlayer
	rng   Random

	root      *scene.Node
	hero      *scene.Node
	ground    *scene.Node
	obstacles *scene.Node
	label     *scene.Node
	restart   *scene.Node
	body      HeroBody
	library   *scene.Library

	state      State
	score      int
	ticks      int
	sinceTouch float64
	spawnTimer float64
}

// NewLoop resolves the nodes and template the loop needs from sc.
func NewLoop(cfg config.HoppyConfig, sc Scene, sound SoundPlayer, rng Random) (*Loop, error) {
	if sc.Root == nil {
		return nil, fmt.Errorf("hoppy: root: %w", ErrMissingNode)
	}
	if sc.Body == nil {
		return nil, fmt.Errorf("hoppy: hero body: %w", ErrMissingNode)
	}
	if sc.Library == nil {
		return nil, fmt.Errorf("hoppy: template library: %w", ErrMissingNode)
	}

	l := &Loop{
		cfg:     cfg,
		diff:    config.NewDifficultyManager(cfg.Difficulty),
		sound:   sound,
		rng:     rng,
		root:    sc.Root,
		body:    sc.Body,
		library: sc.Library,
	}

	refs := []struct {
		name string
		dst  **scene.Node
	}{
		{NodeHero, &l.hero},
		{NodeGround, &l.ground},
		{NodeObstacles, &l.obstacles},
		{NodeScore, &l.label},
		{NodeRestart, &l.restart},
	}
	for _, r := range refs {
		n := sc.Root.Find(r.name)
		if n == nil {
			return nil, fmt.Errorf("hoppy: %s: %w", r.name, ErrMissingNode)
		}
		*r.dst = n
	}

	if _, err := sc.Library.Lookup(TemplateObstacle); err != nil {
		return nil, fmt.Errorf("hoppy: %w", err)
	}

	if l.sound == nil {
		l.sound = nopSound{}
	}
	return l, nil
}

// State returns the run state.
func (l *Loop) State() State { return l.state }

// Score returns the number of goals passed.
func (l *Loop) Score() int { return l.score }

// Ticks returns the number of active ticks simulated.
func (l *Loop) Ticks() int { return l.ticks }

// RestartVisible reports whether the restart control is shown.
func (l *Loop) RestartVisible() bool { return !l.restart.Hidden() }

// Tap hops the hero. Ignored once the run is over.
func (l *Loop) Tap() {
	if l.state != StateActive {
		return
	}
	p := l.cfg.Physics
	dx, _ := l.body.Velocity()
	l.body.SetVelocity(dx, 0)
	l.body.ApplyImpulse(0, p.FlapImpulse)
	l.body.ApplyAngularImpulse(p.FlapSpin)
	l.sound.Play(SoundFlap)
	l.sinceTouch = 0
}

// Tick advances the run by dt seconds. Ignored once the run is over.
func (l *Loop) Tick(dt float64) {
	if l.state != StateActive {
		return
	}
	p := l.cfg.Physics

	dx, dy := l.body.Velocity()
	if dy > p.MaxRiseSpeed {
		l.body.SetVelocity(dx, p.MaxRiseSpeed)
	}

	if l.sinceTouch > p.DiveDelay {
		l.body.ApplyAngularImpulse(p.DiveTorque * dt)
	}

	rot := l.body.Rotation()
	if c := core.ClampF(rot, core.Radians(p.MinRotation), core.Radians(p.MaxRotation)); c != rot {
		l.body.SetRotation(c)
	}
	spin := l.body.AngularVelocity()
	if c := core.ClampF(spin, -p.MaxSpin, p.MaxSpin); c != spin {
		l.body.SetAngularVelocity(c)
	}

	l.sinceTouch += dt

	speed := l.diff.ScrollSpeed(p.ScrollSpeed, l.score, l.ticks)
	shift := scene.Vec{X: -speed * dt}
	l.scrollGround(shift)
	l.scrollObstacles(shift, dt)

	l.ticks++
}

func (l *Loop) scrollGround(shift scene.Vec) {
	l.ground.MoveBy(shift)

	w := l.cfg.Ground.TileWidth
	for _, tile := range l.ground.Children() {
		pos := tile.ScenePosition()
		if pos.X <= -w/2 {
			tile.SetScenePosition(scene.Vec{X: l.cfg.Scene.Width/2 + w, Y: pos.Y})
		}
	}
}

func (l *Loop) scrollObstacles(shift scene.Vec, dt float64) {
	l.obstacles.MoveBy(shift)

	for _, o := range l.obstacles.Children() {
		if o.ScenePosition().X <= 0 {
			o.RemoveFromParent()
		}
	}

	oc := l.cfg.Obstacles
	l.spawnTimer += dt
	// Summing a 1/60 step drifts just short of round intervals.
	if l.spawnTimer+1e-9 >= l.diff.SpawnInterval(oc.SpawnInterval, l.score, l.ticks) {
		l.spawnObstacle()
		l.spawnTimer = 0
	}
}

func (l *Loop) spawnObstacle() {
	oc := l.cfg.Obstacles
	o, err := l.library.Instantiate(TemplateObstacle)
	if err != nil {
		// the template was resolved in NewLoop
		return
	}
	l.obstacles.AddChild(o)
	o.SetScenePosition(scene.Vec{X: oc.SpawnX, Y: l.rng.Float64Range(oc.MinY, oc.MaxY)})
}

// OnContact handles a contact between two nodes. A goal scores; anything
// else ends the run. Ignored once the run is over.
func (l *Loop) OnContact(a, b *scene.Node) {
	if l.state != StateActive {
		return
	}
	if isGoal(a) || isGoal(b) {
		l.score++
		l.label.SetText(strconv.Itoa(l.score))
		l.sound.Play(SoundGoal)
		return
	}
	l.gameOver()
}

func (l *Loop) gameOver() {
	p := l.cfg.Physics
	l.state = StateGameOver

	l.body.SetRotationEnabled(false)
	l.body.SetAngularVelocity(0)
	l.hero.RemoveAllActions()
	l.restart.SetHidden(false)

	l.body.SetRotation(core.Radians(p.DeathRotation))
	l.body.SetCollisionResponse(false)

	for _, n := range l.root.Children() {
		n.Run(scene.Shake(p.ShakeDuration, p.ShakeAmplitude))
	}
	l.sound.Play(SoundDeath)
}

func isGoal(n *scene.Node) bool {
	return n != nil && n.Name() == NodeGoal
}

type nopSound struct{}

func (nopSound) Play(string) {}
