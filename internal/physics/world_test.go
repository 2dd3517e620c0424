package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/hoppy/internal/scene"
)

const step = 1.0 / 60

func newHeroScene(y float64) (*scene.Node, *scene.Node) {
	root := scene.New("root")
	hero := scene.New("hero")
	hero.SetPosition(scene.Vec{X: 80, Y: y})
	root.AddChild(hero)
	return root, hero
}

func TestHeroFallsUnderGravity(t *testing.T) {
	root, hero := newHeroScene(300)
	w := NewWorld(-800, -1000)
	body := w.AddHero(hero, 1, 1, 12)

	for i := 0; i < 30; i++ {
		w.Sync(root)
		w.Step(step)
	}

	_, vy := body.Velocity()
	if vy >= 0 {
		t.Errorf("vy = %v, want negative", vy)
	}
	if hero.Position().Y >= 300 {
		t.Errorf("hero y = %v, want below 300", hero.Position().Y)
	}
}

func TestGroundContactReported(t *testing.T) {
	root, hero := newHeroScene(110)
	w := NewWorld(-800, 90)
	w.AddHero(hero, 1, 1, 12)

	var hits []string
	w.OnContact(func(a, b *scene.Node) {
		hits = append(hits, a.Name()+"/"+b.Name())
	})

	for i := 0; i < 60; i++ {
		w.Sync(root)
		w.Step(step)
	}

	if len(hits) == 0 {
		t.Fatal("no contact reported")
	}
	for _, h := range hits {
		if h != "hero/ground" && h != "ground/hero" {
			t.Errorf("contact = %q, want hero with ground", h)
		}
	}
	if y := hero.Position().Y; y < 90 {
		t.Errorf("hero sank into the ground: y = %v", y)
	}
}

func TestSyncTracksColliderNodes(t *testing.T) {
	root, hero := newHeroScene(300)
	w := NewWorld(-800, -1000)
	w.AddHero(hero, 1, 1, 12)

	layer := scene.New("obstacles")
	root.AddChild(layer)
	pipe := scene.New("top")
	pipe.SetCollider(scene.BoxCollider(40, 200))
	layer.AddChild(pipe)
	plain := scene.New("decor")
	layer.AddChild(plain)

	w.Sync(root)
	if got := len(w.bodies); got != 2 {
		t.Fatalf("bodies = %d, want 2", got)
	}

	pipe.RemoveFromParent()
	w.Sync(root)
	if got := len(w.bodies); got != 1 {
		t.Fatalf("bodies after removal = %d, want 1", got)
	}
}

func TestSensorContactReported(t *testing.T) {
	root, hero := newHeroScene(300)
	w := NewWorld(0, -1000)
	w.AddHero(hero, 1, 1, 12)

	goal := scene.New("goal")
	goal.SetCollider(scene.SensorCollider(8, 100))
	goal.SetPosition(scene.Vec{X: 80, Y: 300})
	root.AddChild(goal)

	var names []string
	w.OnContact(func(a, b *scene.Node) {
		names = append(names, a.Name(), b.Name())
	})

	w.Sync(root)
	w.Step(step)

	found := false
	for _, n := range names {
		if n == "goal" {
			found = true
		}
	}
	if !found {
		t.Fatalf("contacts = %v, want one involving goal", names)
	}
	if y := hero.Position().Y; math.Abs(y-300) > 1e-6 {
		t.Errorf("sensor pushed hero to y = %v", y)
	}
}

func TestCollisionResponseToggle(t *testing.T) {
	run := func(responsive bool) float64 {
		root, hero := newHeroScene(50)
		w := NewWorld(-800, -1000)
		body := w.AddHero(hero, 1, 1, 12)
		body.SetCollisionResponse(responsive)

		block := scene.New("bottom")
		block.SetCollider(scene.BoxCollider(200, 40))
		root.AddChild(block)

		for i := 0; i < 90; i++ {
			w.Sync(root)
			w.Step(step)
		}
		return hero.Position().Y
	}

	if y := run(true); y < 20 {
		t.Errorf("responsive hero fell through the block: y = %v", y)
	}
	if y := run(false); y > 0 {
		t.Errorf("non-responsive hero was held up by the block: y = %v", y)
	}
}

func TestRotationLock(t *testing.T) {
	_, hero := newHeroScene(300)
	w := NewWorld(0, -1000)
	body := w.AddHero(hero, 1, 2, 12)

	body.ApplyAngularImpulse(1)
	if got := body.AngularVelocity(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("angular velocity = %v, want 0.5", got)
	}

	body.SetRotationEnabled(false)
	if body.RotationEnabled() {
		t.Fatal("rotation still enabled")
	}
	body.SetAngularVelocity(0)
	body.ApplyAngularImpulse(5)
	if got := body.AngularVelocity(); got != 0 {
		t.Errorf("locked body spun: %v", got)
	}

	body.SetRotationEnabled(true)
	body.ApplyAngularImpulse(2)
	if got := body.AngularVelocity(); math.Abs(got-1) > 1e-9 {
		t.Errorf("angular velocity after unlock = %v, want 1", got)
	}
}

func TestImpulseChangesVelocity(t *testing.T) {
	_, hero := newHeroScene(300)
	w := NewWorld(0, -1000)
	body := w.AddHero(hero, 2, 1, 12)

	body.ApplyImpulse(0, 250)
	if _, vy := body.Velocity(); math.Abs(vy-125) > 1e-9 {
		t.Errorf("vy = %v, want 125", vy)
	}

	body.SetRotation(0.3)
	if hero.Rotation() != 0.3 {
		t.Errorf("node rotation = %v, want 0.3", hero.Rotation())
	}
}
