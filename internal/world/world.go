package world

import (
	"log"

	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/audio"
	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/components"
	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/config"
	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/engine"
	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/geom"
	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/physics"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	laneLength = 18.0
	laneWidth  = 1.05

	ballRadius = 0.108
	pinHeight  = 0.38
	pinSpacing = 0.3046

	ballStartZ = -laneLength/2 + 1
	pinBaseZ   = laneLength/2 - 2
)

// World assembles the bowling scene: one ball, ten pins in the standard
// triangle, a physics registry driving them, and audio wired to the
// collision events.
type World struct {
	Scene   *engine.Scene
	Physics *physics.World

	// OnReset fires after every re-rack; the HUD and scorekeeping hang off
	// it. Listeners survive resets.
	OnReset engine.Event

	cfg  config.Config
	ball *components.SoftBody
	pins []*components.SoftBody

	impactSound  uint64
	breakSound   uint64
	hasImpactSnd bool
	hasBreakSnd  bool

	pinMesh   *geom.Mesh
	pinPoints []rl.Vector3
}

func New(cfg config.Config) *World {
	return &World{
		Scene:   engine.NewScene("lane"),
		Physics: physics.NewWorld(),
		cfg:     cfg,
	}
}

// Initialize builds the scene from scratch. Safe to call again through
// Reset.
func (w *World) Initialize() {
	// Pin geometry and its voxel point cloud are shared templates; every
	// pin clones the mesh so vertex buffers stay exclusively owned.
	if w.pinMesh == nil {
		w.pinMesh = geom.GenPin(pinHeight, 12)
		w.pinPoints = geom.Voxelize(w.pinMesh, w.cfg.Pin.VoxelSize)
		if len(w.pinPoints) == 0 {
			log.Printf("world: pin voxelization produced no points, falling back to mesh vertices")
		}
	}

	w.spawnBall()
	w.spawnPins()

	w.Physics.OnImpact.AddListener(func(e physics.ImpactEvent) {
		if w.hasImpactSnd {
			audio.PlayAt(w.impactSound, e.Contact)
		}
	})
	w.Physics.OnBreak.AddListener(func(e physics.BreakEvent) {
		log.Printf("world: %s broke at speed %.1f", e.Body.GetGameObject().Name, e.Speed)
		if w.hasBreakSnd {
			audio.PlayAt(w.breakSound, e.Contact)
		}
	})

	w.Scene.Start()
}

func (w *World) spawnBall() {
	g := engine.NewGameObject("ball")
	g.Tags = append(g.Tags, "ball")
	g.Transform.Position = rl.Vector3{Y: ballRadius, Z: ballStartZ}

	b := components.NewSoftBody(components.ParseMaterial(w.cfg.Ball.Material))
	w.applyTuning(b, w.cfg.Ball)
	b.Radius = ballRadius
	b.Height = 0 // sphere: capsule degenerates to the bounding sphere
	g.AddComponent(b)

	b.BuildFromMesh(geom.GenSphere(ballRadius, 12, 16),
		w.cfg.Ball.Mass, w.cfg.Ball.Stiffness, w.cfg.Ball.Damping, w.cfg.Ball.ConnectDistance)

	w.Scene.AddGameObject(g)
	w.Physics.Register(b)
	w.ball = b
}

func (w *World) spawnPins() {
	w.pins = w.pins[:0]
	idx := 0
	for row := 0; row < 4; row++ {
		for i := 0; i <= row; i++ {
			x := (float32(i) - float32(row)/2) * pinSpacing
			z := float32(pinBaseZ) + float32(row)*pinSpacing*0.866
			w.spawnPin(idx, rl.Vector3{X: x, Z: z})
			idx++
		}
	}
}

func (w *World) spawnPin(idx int, pos rl.Vector3) {
	g := engine.NewGameObject("pin")
	g.Tags = append(g.Tags, "pin")
	g.Transform.Position = pos

	b := components.NewSoftBody(components.ParseMaterial(w.cfg.Pin.Material))
	w.applyTuning(b, w.cfg.Pin)
	b.Radius = geom.PinRadius(pinHeight)
	b.Height = pinHeight
	g.AddComponent(b)

	b.Mesh = w.pinMesh.Clone()
	matrix := g.Transform.Matrix()
	if len(w.pinPoints) > 0 {
		worldPts := make([]rl.Vector3, len(w.pinPoints))
		for i, p := range w.pinPoints {
			worldPts[i] = rl.Vector3Transform(p, matrix)
		}
		b.BuildFromPoints(worldPts,
			w.cfg.Pin.Mass, w.cfg.Pin.Stiffness, w.cfg.Pin.Damping, w.cfg.Pin.ConnectDistance)
	} else {
		b.BuildFromMesh(b.Mesh,
			w.cfg.Pin.Mass, w.cfg.Pin.Stiffness, w.cfg.Pin.Damping, w.cfg.Pin.ConnectDistance)
	}

	w.Scene.AddGameObject(g)
	w.Physics.Register(b)
	w.pins = append(w.pins, b)
}

func (w *World) applyTuning(b *components.SoftBody, t config.BodyTuning) {
	b.BreakSpeed = t.BreakSpeed
	b.DentDepth = t.DentDepth
	b.DentRadius = t.DentRadius
	b.ImpulseRadius = t.ImpulseRadius
	b.MoveSpeed = t.MoveSpeed
	b.PointMass = t.Mass
	b.LinearDamping = t.LinearDamping
}

// LoadSounds hooks the impact and break sound effects up; either path may
// fail quietly (no audio device, missing asset) and the game keeps running.
func (w *World) LoadSounds(impactPath, breakPath string) {
	w.impactSound, w.hasImpactSnd = audio.LoadSound(impactPath)
	w.breakSound, w.hasBreakSnd = audio.LoadSound(breakPath)
}

// Throw launches the ball down the lane.
func (w *World) Throw(speed float32) {
	if w.ball == nil || w.ball.Broken {
		log.Printf("world: no ball to throw")
		return
	}
	w.ball.Velocity = rl.Vector3{Z: speed}
}

// Ball returns the current ball body (nil before Initialize).
func (w *World) Ball() *components.SoftBody {
	return w.ball
}

// Pins returns the pin bodies in rack order.
func (w *World) Pins() []*components.SoftBody {
	return w.pins
}

// Reset tears the rack down and rebuilds it, then fires OnReset.
func (w *World) Reset() {
	for _, b := range w.Physics.Bodies() {
		w.Physics.Deregister(b)
	}
	w.Physics.OnImpact.RemoveAllListeners()
	w.Physics.OnBreak.RemoveAllListeners()
	w.Scene.Clear()
	w.ball = nil
	w.Initialize()
	w.OnReset.Invoke()
}

// Update ticks per-frame component logic, advances physics by one frame of
// wall time and refreshes audio spatialization.
func (w *World) Update(frameDt float32) {
	w.Scene.Update(frameDt)
	w.Physics.Step(frameDt)
	audio.Update()
}

// Draw renders the lane and every body, broken wrecks included. Must run
// inside BeginMode3D.
func (w *World) Draw() {
	rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: laneWidth, Y: laneLength}, rl.NewColor(189, 154, 104, 255))

	objects := w.Scene.FindByTag("pin")
	objects = append(objects, w.Scene.FindByTag("ball")...)
	for _, g := range objects {
		if b := engine.GetComponent[*components.SoftBody](g); b != nil {
			drawBody(b)
		}
	}
}

var lightDir = rl.Vector3Normalize(rl.Vector3{X: -0.4, Y: -1, Z: 0.3})

func drawBody(b *components.SoftBody) {
	g := b.GetGameObject()
	if g == nil || b.Mesh == nil {
		return
	}

	base := rl.RayWhite
	if g.HasTag("ball") {
		base = rl.NewColor(120, 40, 160, 255)
	}
	if b.Broken {
		base = rl.Gray
	}

	matrix := g.Transform.Matrix()
	for i := 0; i < b.Mesh.TriangleCount(); i++ {
		v0, v1, v2 := b.Mesh.Triangle(i)
		w0 := rl.Vector3Transform(v0, matrix)
		w1 := rl.Vector3Transform(v1, matrix)
		w2 := rl.Vector3Transform(v2, matrix)

		n := rl.Vector3CrossProduct(rl.Vector3Subtract(w1, w0), rl.Vector3Subtract(w2, w0))
		n = rl.Vector3Normalize(n)
		shade := 0.35 + 0.65*maxf(0, -rl.Vector3DotProduct(n, lightDir))

		c := rl.NewColor(
			uint8(float32(base.R)*shade),
			uint8(float32(base.G)*shade),
			uint8(float32(base.B)*shade),
			base.A,
		)
		rl.DrawTriangle3D(w0, w1, w2, c)
	}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
