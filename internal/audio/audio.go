package audio

import (
	"math"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Listener represents the audio listener position and orientation
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// Source represents a loaded sound that can be fired at world positions
type Source struct {
	ID          uint64
	Position    rl.Vector3
	Sound       rl.Sound
	Volume      float32
	MaxDistance float32
	playing     bool
}

// Manager handles audio playback
type Manager struct {
	mu       sync.Mutex
	listener Listener
	sources  map[uint64]*Source
	nextID   uint64
}

var globalManager *Manager

// Init initializes the audio system
func Init() {
	rl.InitAudioDevice()
	globalManager = &Manager{
		sources: make(map[uint64]*Source),
	}
}

// Close shuts down the audio system
func Close() {
	if globalManager == nil {
		return
	}
	globalManager.mu.Lock()
	for _, src := range globalManager.sources {
		rl.UnloadSound(src.Sound)
	}
	globalManager.sources = nil
	globalManager.mu.Unlock()
	rl.CloseAudioDevice()
}

// SetListener updates the listener position and orientation
func SetListener(pos, forward, up rl.Vector3) {
	if globalManager == nil {
		return
	}
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()

	globalManager.listener.Position = pos

	fwdLen := rl.Vector3Length(forward)
	if fwdLen > 0.001 {
		globalManager.listener.Forward = rl.Vector3Scale(forward, 1.0/fwdLen)
	} else {
		globalManager.listener.Forward = rl.Vector3{X: 0, Y: 0, Z: -1}
	}

	right := rl.Vector3CrossProduct(up, globalManager.listener.Forward)
	rightLen := rl.Vector3Length(right)
	if rightLen > 0.001 {
		globalManager.listener.Right = rl.Vector3Scale(right, 1.0/rightLen)
	} else {
		globalManager.listener.Right = rl.Vector3{X: 1, Y: 0, Z: 0}
	}
}

// LoadSound loads audio from a file and returns a source ID
func LoadSound(path string) (uint64, bool) {
	if globalManager == nil {
		return 0, false
	}

	sound := rl.LoadSound(path)
	if !rl.IsSoundValid(sound) {
		return 0, false
	}

	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()

	id := globalManager.nextID
	globalManager.nextID++

	globalManager.sources[id] = &Source{
		ID:          id,
		Sound:       sound,
		Volume:      1.0,
		MaxDistance: 30.0,
	}

	return id, true
}

// PlayAt fires a one-shot playback of the source at a world position.
// Restarts the sound if it is already playing.
func PlayAt(id uint64, pos rl.Vector3) {
	if globalManager == nil {
		return
	}
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()

	if src, ok := globalManager.sources[id]; ok {
		src.Position = pos
		rl.PlaySound(src.Sound)
		src.playing = true
	}
}

// SetSourceVolume sets the base volume for a source
func SetSourceVolume(id uint64, volume float32) {
	if globalManager == nil {
		return
	}
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()

	if src, ok := globalManager.sources[id]; ok {
		src.Volume = volume
	}
}

// Update recalculates spatial volume and pan for everything playing
func Update() {
	if globalManager == nil {
		return
	}
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()

	listener := globalManager.listener

	for _, src := range globalManager.sources {
		if !src.playing {
			continue
		}
		if !rl.IsSoundPlaying(src.Sound) {
			src.playing = false
			continue
		}

		toSource := rl.Vector3Subtract(src.Position, listener.Position)
		distance := rl.Vector3Length(toSource)

		// Linear falloff
		var volume float32 = 0
		if distance < src.MaxDistance {
			volume = src.Volume * (1.0 - distance/src.MaxDistance)
		}

		var pan float32 = 0.5 // center
		if distance > 0.001 {
			direction := rl.Vector3Scale(toSource, 1.0/distance)
			rightDot := rl.Vector3DotProduct(direction, listener.Right)
			// rightDot: -1 = full left, +1 = full right
			pan = 0.5 + rightDot*0.5
			if pan < 0.0 {
				pan = 0.0
			} else if pan > 1.0 {
				pan = 1.0
			}

			// Sounds behind the listener come through slightly quieter
			frontDot := rl.Vector3DotProduct(direction, listener.Forward)
			if frontDot < 0 {
				volume *= 0.7 + 0.3*float32(math.Abs(float64(frontDot)))
			}
		}

		rl.SetSoundVolume(src.Sound, volume)
		rl.SetSoundPan(src.Sound, pan)
	}
}
