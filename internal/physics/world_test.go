package physics

import (
	"testing"

	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/components"
	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/engine"
	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/geom"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Springless ball: points exist for impulses and projection, but nothing
// pulls them around between steps.
func newBallBody(name string, pos rl.Vector3, radius float32, material components.Material) *components.SoftBody {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos

	body := components.NewSoftBody(material)
	body.Radius = radius
	body.MoveSpeed = 10
	g.AddComponent(body)

	body.BuildFromMesh(geom.GenSphere(radius, 6, 8), 1, 0, 0, 0)
	return body
}

func TestBroadPhaseSkipsDistantBodies(t *testing.T) {
	w := NewWorld()
	mover := newBallBody("mover", rl.Vector3{}, 0.5, components.MaterialElastic)
	mover.Velocity = rl.Vector3{X: 1}
	other := newBallBody("other", rl.Vector3{X: 10}, 0.5, components.MaterialElastic)

	w.Register(mover)
	w.Register(other)
	w.StepOnce()

	if w.Detector.NarrowTests != 0 {
		t.Errorf("Distant bodies reached the narrow phase: %d triangle tests", w.Detector.NarrowTests)
	}
}

func TestRegisterDeregister(t *testing.T) {
	w := NewWorld()
	a := newBallBody("a", rl.Vector3{}, 0.5, components.MaterialElastic)

	w.Register(a)
	w.Register(a)
	if len(w.Bodies()) != 1 {
		t.Fatalf("Duplicate registration: %d bodies", len(w.Bodies()))
	}

	w.Deregister(a)
	if len(w.Bodies()) != 0 {
		t.Fatalf("Deregister left %d bodies", len(w.Bodies()))
	}
	w.Deregister(a) // absent body is a no-op
}

func TestBrittleMoverBreaks(t *testing.T) {
	w := NewWorld()
	mover := newBallBody("ball", rl.Vector3{}, 0.5, components.MaterialBrittle)
	mover.BreakSpeed = 10
	mover.Velocity = rl.Vector3{X: 20}
	struck := newBallBody("pin", rl.Vector3{X: 0.8}, 0.5, components.MaterialElastic)

	var breaks, impacts int
	w.OnBreak.AddListener(func(e BreakEvent) {
		breaks++
		if e.Body != mover {
			t.Error("Break event names the wrong body")
		}
	})
	w.OnImpact.AddListener(func(ImpactEvent) { impacts++ })

	w.Register(mover)
	w.Register(struck)
	w.StepOnce()

	if !mover.Broken {
		t.Fatal("Brittle body above its break speed did not break")
	}
	if breaks != 1 {
		t.Errorf("Expected exactly one break event, got %d", breaks)
	}
	if impacts != 0 {
		t.Errorf("A break must not also raise an impact event, got %d", impacts)
	}
	if len(w.Bodies()) != 1 {
		t.Errorf("Broken body still registered: %d bodies", len(w.Bodies()))
	}

	// Terminal: further steps leave the wreck alone
	pos := mover.GetGameObject().Transform.Position
	w.StepOnce()
	if mover.GetGameObject().Transform.Position != pos {
		t.Error("Broken body kept moving")
	}
}

func TestBrittleMoverBelowThresholdDeforms(t *testing.T) {
	w := NewWorld()
	mover := newBallBody("ball", rl.Vector3{}, 0.5, components.MaterialBrittle)
	mover.BreakSpeed = 10
	mover.Velocity = rl.Vector3{X: 2}
	struck := newBallBody("pin", rl.Vector3{X: 0.8}, 0.5, components.MaterialElastic)

	var breaks, impacts int
	w.OnBreak.AddListener(func(BreakEvent) { breaks++ })
	w.OnImpact.AddListener(func(ImpactEvent) { impacts++ })

	w.Register(mover)
	w.Register(struck)
	w.StepOnce()

	if mover.Broken || breaks != 0 {
		t.Fatal("Brittle body below its break speed must stay intact")
	}
	if impacts != 1 {
		t.Errorf("Expected one impact event, got %d", impacts)
	}
}

func TestImpactPushesAndExcitesStruckBody(t *testing.T) {
	w := NewWorld()
	mover := newBallBody("ball", rl.Vector3{}, 0.5, components.MaterialElastic)
	mover.Velocity = rl.Vector3{X: 5}
	struck := newBallBody("pin", rl.Vector3{X: 0.8}, 0.5, components.MaterialElastic)

	w.Register(mover)
	w.Register(struck)
	w.StepOnce()

	// The push arrives as a body-velocity change away from the contact,
	// so the struck body carries its own motion into the next steps
	if struck.Velocity.X <= 0 {
		t.Errorf("Struck body gained no push velocity: %v", struck.Velocity)
	}
	w.StepOnce()
	if struck.GetGameObject().Transform.Position.X <= 0.8 {
		t.Error("Pushed body did not move away from the contact")
	}

	var excited bool
	for _, p := range struck.Net.Points {
		if p.Velocity != (rl.Vector3{}) {
			excited = true
			break
		}
	}
	if !excited {
		t.Error("Struck network received no impulse")
	}

	var recoil bool
	for _, p := range mover.Net.Points {
		if p.Velocity != (rl.Vector3{}) {
			recoil = true
			break
		}
	}
	if !recoil {
		t.Error("Mover network received no symmetric impulse")
	}
}

func TestTinMoverKeepsDent(t *testing.T) {
	w := NewWorld()
	mover := newBallBody("can", rl.Vector3{}, 0.5, components.MaterialTin)
	mover.Velocity = rl.Vector3{X: 5}
	mover.DentDepth = 0.05
	mover.DentRadius = 0.3
	wall := newBallBody("wall", rl.Vector3{X: 0.8}, 0.5, components.MaterialElastic)

	before := mover.Mesh.Clone()
	w.Register(mover)
	w.Register(wall)
	w.StepOnce()

	var dented, untouched bool
	for i, v := range mover.Mesh.Vertices {
		delta := rl.Vector3Length(rl.Vector3Subtract(v, before.Vertices[i]))
		if before.Vertices[i].X > 0.2 && delta > 1e-5 {
			dented = true
		}
		if before.Vertices[i].X < -0.2 && delta < 1e-6 {
			untouched = true
		}
	}
	if !dented {
		t.Error("No vertex near the contact was displaced")
	}
	if !untouched {
		t.Error("Vertices far from the contact should keep their positions")
	}
}

func TestStepAccumulatesFixedSteps(t *testing.T) {
	w := NewWorld()
	body := newBallBody("ball", rl.Vector3{}, 0.5, components.MaterialElastic)
	body.LinearDamping = 0
	body.Velocity = rl.Vector3{X: 1.2}
	w.Register(body)

	// 2.5 fixed steps: two run now, the remainder carries over
	w.Step(2.5 * w.FixedStep)
	x := body.GetGameObject().Transform.Position.X
	want := 2 * w.FixedStep * 1.2
	if x < want-1e-4 || x > want+1e-4 {
		t.Errorf("After 2.5 steps of frame time: moved %v, want %v", x, want)
	}

	w.Step(0.5 * w.FixedStep)
	x = body.GetGameObject().Transform.Position.X
	want = 3 * w.FixedStep * 1.2
	if x < want-1e-4 || x > want+1e-4 {
		t.Errorf("Carried remainder did not trigger the third step: %v, want %v", x, want)
	}
}
