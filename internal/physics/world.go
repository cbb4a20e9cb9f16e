package physics

import (
	"log"

	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/components"
	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/engine"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultFixedStep is the simulation step the driver slices frame time into.
const DefaultFixedStep = float32(1.0 / 120.0)

// pushFraction scales the velocity change a struck body receives per contact,
// relative to the mover's nominal move speed.
const pushFraction = 0.25

// maxAccumulated caps the time debt after a stall so the driver cannot
// spiral trying to catch up.
const maxAccumulated = float32(0.25)

// ImpactEvent is raised once per resolved non-breaking contact.
type ImpactEvent struct {
	Mover   *components.SoftBody
	Struck  *components.SoftBody
	Contact rl.Vector3
	Speed   float32
}

// BreakEvent is raised exactly once when a brittle body shatters.
type BreakEvent struct {
	Body    *components.SoftBody
	Contact rl.Vector3
	Speed   float32
}

// World drives every registered deformable body at a fixed timestep:
// per body, rigid motion offset, then spring integration, then mesh
// projection, then collision against the other registered bodies.
//
// Within one body that ordering is guaranteed. Across bodies it is not:
// bodies resolve in registration order, and two bodies that would mutually
// collide in the same step see each other's partially updated state. Known
// limitation, acceptable at this scale.
type World struct {
	FixedStep float32
	Detector  Detector

	OnImpact engine.EventWithArg[ImpactEvent]
	OnBreak  engine.EventWithArg[BreakEvent]

	bodies      []*components.SoftBody
	accumulated float32
}

func NewWorld() *World {
	return &World{FixedStep: DefaultFixedStep}
}

// Register adds a body to the simulation. Registering twice is a no-op.
func (w *World) Register(b *components.SoftBody) {
	if b == nil {
		log.Printf("physics: Register called with nil body")
		return
	}
	for _, have := range w.bodies {
		if have == b {
			return
		}
	}
	w.bodies = append(w.bodies, b)
}

// Deregister removes a body; it stops simulating and colliding immediately.
func (w *World) Deregister(b *components.SoftBody) {
	for i, have := range w.bodies {
		if have == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

// Bodies returns a snapshot of the registry.
func (w *World) Bodies() []*components.SoftBody {
	out := make([]*components.SoftBody, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Step consumes a frame delta and runs as many fixed steps as it covers,
// carrying the remainder into the next call.
func (w *World) Step(frameDt float32) {
	if frameDt <= 0 {
		return
	}
	w.accumulated += frameDt
	if w.accumulated > maxAccumulated {
		w.accumulated = maxAccumulated
	}
	for w.accumulated >= w.FixedStep {
		w.stepOnce(w.FixedStep)
		w.accumulated -= w.FixedStep
	}
}

// StepOnce runs exactly one fixed step, bypassing the accumulator. Tests and
// offline tools use it for deterministic stepping.
func (w *World) StepOnce() {
	w.stepOnce(w.FixedStep)
}

func (w *World) stepOnce(dt float32) {
	// Snapshot: the response policy may deregister bodies mid-iteration.
	bodies := w.Bodies()

	for _, b := range bodies {
		b.Advance(dt)
	}

	// A body counts as a mover only if it was moving when the pass began;
	// push velocity gained during the pass takes effect next step, so one
	// contact cannot chain through the whole rack within a single step.
	wasMoving := make([]bool, len(bodies))
	for i, b := range bodies {
		wasMoving[i] = b.Velocity != (rl.Vector3{})
	}

	for mi, mover := range bodies {
		if mover.Broken || !wasMoving[mi] {
			continue
		}
		speed := rl.Vector3Length(mover.Velocity)
		moverSphere := boundingSphereOf(mover)

		for _, struck := range bodies {
			if struck == mover || struck.Broken {
				continue
			}
			if !moverSphere.Overlaps(boundingSphereOf(struck)) {
				continue
			}
			base, top, capRadius := struck.Capsule()
			if !CapsuleOverlap(mover.Center(), mover.Radius, base, top, capRadius) {
				continue
			}
			hit, contact := w.Detector.SphereVsMesh(mover.Center(), mover.Radius, worldTriangles(struck))
			if !hit {
				continue
			}
			w.resolveImpact(mover, struck, contact, speed)
			if mover.Broken {
				break
			}
		}
	}
}

// resolveImpact applies the material response policy for one confirmed
// contact, evaluated from the mover's side:
//
//  1. brittle mover above its break speed shatters: terminal, deregistered,
//     one break event, nothing else;
//  2. the struck body is pushed rigidly away from the contact: a body-level
//     velocity change at a fraction of the mover's nominal move speed, which
//     also makes the struck body a mover in the following steps;
//  3. the struck network takes an impulse opposite to the mover's velocity;
//  4. the mover's own network takes the symmetric impulse;
//  5. a tin mover keeps a permanent dent at the contact;
//  6. one impact event.
func (w *World) resolveImpact(mover, struck *components.SoftBody, contact rl.Vector3, speed float32) {
	if mover.Material == components.MaterialBrittle && speed > mover.BreakSpeed {
		mover.Broken = true
		w.Deregister(mover)
		w.OnBreak.Invoke(BreakEvent{Body: mover, Contact: contact, Speed: speed})
		return
	}

	away := rl.Vector3Subtract(struck.Center(), contact)
	if l := rl.Vector3Length(away); l > 0 {
		kick := rl.Vector3Scale(away, mover.MoveSpeed*pushFraction/l)
		struck.Velocity = rl.Vector3Add(struck.Velocity, kick)
	}

	magnitude := speed * mover.PointMass
	struck.ApplyImpact(contact, rl.Vector3Negate(mover.Velocity), magnitude)
	mover.ApplyImpact(contact, mover.Velocity, magnitude)

	if mover.Material == components.MaterialTin {
		mover.Dent(contact)
	}

	w.OnImpact.Invoke(ImpactEvent{Mover: mover, Struck: struck, Contact: contact, Speed: speed})
}

// boundingSphereOf wraps a body's capsule extents in a conservative sphere.
func boundingSphereOf(b *components.SoftBody) BoundingSphere {
	center, radius := b.Bounds()
	return BoundingSphere{Center: center, Radius: radius}
}

// worldTriangles adapts a body's world-space mesh for the narrow phase.
func worldTriangles(b *components.SoftBody) []Triangle {
	raw := b.WorldTriangles()
	tris := make([]Triangle, len(raw))
	for i, t := range raw {
		tris[i] = Triangle{V0: t[0], V1: t[1], V2: t[2]}
	}
	return tris
}
