package hoppy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/hoppy/internal/config"
	"github.com/vovakirdan/hoppy/internal/core"
	"github.com/vovakirdan/hoppy/internal/physics"
	"github.com/vovakirdan/hoppy/internal/scene"
)

// Visual characters for rendering
const (
	GroundChar = '▓'
	GrassChar  = '▀'
	CarrotChar = '█'
	LeafChar   = '▒'
)

const flapKey = "flap"

// Game hosts one Hoppy scene at a time: the node tree, its physics world and
// the loop driving them. A restart replaces all three.
type Game struct {
	cfg     config.HoppyConfig
	sound   SoundPlayer
	runtime core.RuntimeConfig
	rng     *rand.Rand

	root  *scene.Node
	world *physics.World
	loop  *Loop
	runID string
}

// New creates a game using the given tuning. A nil sound player mutes the game.
func New(cfg config.HoppyConfig, sound SoundPlayer) *Game {
	if sound == nil {
		sound = nopSound{}
	}
	return &Game{cfg: cfg, sound: sound}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "hoppy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Hoppy Bunny"
}

// Reset seeds the game and builds a fresh scene instance.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	g.runtime = rc
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	return g.build()
}

// build discards the current scene instance and creates a new one.
func (g *Game) build() error {
	root, lib := g.buildScene()

	world := physics.NewWorld(g.cfg.Scene.Gravity, g.cfg.Ground.TileHeight)
	hc := g.cfg.Hero
	body := world.AddHero(root.Find(NodeHero), hc.Mass, hc.Moment, hc.Radius)

	loop, err := NewLoop(g.cfg, Scene{Root: root, Body: body, Library: lib}, g.sound, randomSource{g.rng})
	if err != nil {
		return fmt.Errorf("hoppy: build scene: %w", err)
	}
	world.OnContact(loop.OnContact)
	world.Sync(root)

	g.root = root
	g.world = world
	g.loop = loop
	g.runID = uuid.New().String()
	return nil
}

func (g *Game) buildScene() (*scene.Node, *scene.Library) {
	cfg := g.cfg
	root := scene.New("root")

	obstacles := scene.New(NodeObstacles)
	root.AddChild(obstacles)

	ground := scene.New(NodeGround)
	gc := cfg.Ground
	for i := 0; i < gc.Tiles; i++ {
		tile := scene.NewSprite("tile", gc.TileWidth, gc.TileHeight, GroundChar, core.ColorGround)
		tile.SetPosition(scene.Vec{X: gc.TileWidth/2 + float64(i)*gc.TileWidth, Y: gc.TileHeight / 2})
		ground.AddChild(tile)
	}
	root.AddChild(ground)

	hc := cfg.Hero
	hero := scene.NewSprite(NodeHero, hc.Radius*2, hc.Radius*2, '@', core.ColorHero)
	hero.SetPosition(scene.Vec{X: hc.X, Y: hc.Y})
	hero.SetCollider(&scene.Collider{Shape: scene.ShapeCircle, Radius: hc.Radius, Dynamic: true})
	hero.RunWithKey(flapKey, scene.Animate(len(flyingFrames), cfg.Physics.FlapFrameSeconds))
	root.AddChild(hero)

	score := scene.NewLabel(NodeScore, "0", core.ColorScore)
	score.SetPosition(scene.Vec{X: cfg.Scene.Width / 2, Y: cfg.Scene.Height * 0.9})
	root.AddChild(score)

	restart := scene.NewButton(NodeRestart, "restart", core.ColorDanger)
	restart.SetPosition(scene.Vec{X: cfg.Scene.Width / 2, Y: cfg.Scene.Height / 2})
	restart.SetHidden(true)
	root.AddChild(restart)

	lib := scene.NewLibrary()
	lib.Register(TemplateObstacle, g.obstacleTemplate)
	return root, lib
}

// obstacleTemplate builds a carrot pair around a goal sensor. The node's
// origin is the center of the gap.
func (g *Game) obstacleTemplate() *scene.Node {
	oc := g.cfg.Obstacles
	o := scene.New("obstacle")

	offset := oc.Gap/2 + oc.Length/2
	top := scene.NewSprite("top", oc.Width, oc.Length, CarrotChar, core.ColorCarrot)
	top.SetPosition(scene.Vec{Y: offset})
	top.SetCollider(scene.BoxCollider(oc.Width, oc.Length))
	o.AddChild(top)

	bottom := scene.NewSprite("bottom", oc.Width, oc.Length, CarrotChar, core.ColorCarrot)
	bottom.SetPosition(scene.Vec{Y: -offset})
	bottom.SetCollider(scene.BoxCollider(oc.Width, oc.Length))
	o.AddChild(bottom)

	goal := scene.New(NodeGoal)
	goal.SetPosition(scene.Vec{X: oc.Width/2 + oc.GoalWidth/2})
	goal.SetCollider(scene.SensorCollider(oc.GoalWidth, oc.Gap))
	o.AddChild(goal)
	return o
}

// Step advances the scene by one fixed timestep.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.loop.State() == StateGameOver && g.loop.RestartVisible() {
		// A failed rebuild leaves the finished scene in place.
		if err := g.build(); err == nil {
			return core.StepResult{State: g.State(), Restarted: true}
		}
	}

	if in.Has(core.ActionJump) {
		g.loop.Tap()
	}

	dt := g.cfg.Scene.FixedStep
	g.loop.Tick(dt)
	g.world.Sync(g.root)
	g.world.Step(dt)
	g.root.Update(dt)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.loop.Score(),
		GameOver: g.loop.State() == StateGameOver,
		RunID:    g.runID,
	}
}

// Ticks returns the number of active ticks of the current run.
func (g *Game) Ticks() int {
	return g.loop.Ticks()
}

// Loop exposes the running scene's loop.
func (g *Game) Loop() *Loop {
	return g.loop
}

// Root exposes the running scene's root node.
func (g *Game) Root() *scene.Node {
	return g.root
}

// randomSource adapts math/rand to the loop's Random.
type randomSource struct {
	r *rand.Rand
}

func (s randomSource) Float64Range(min, max float64) float64 {
	return min + s.r.Float64()*(max-min)
}
