package main

import (
	"fmt"

	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/audio"
	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/config"
	"github.com/MuhammadEmad-AI/bowling-physiscs-vr/internal/world"
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	cfg := config.Load("assets/tuning.toml")

	rl.InitWindow(1280, 720, "Soft-Body Bowling")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	audio.Init()
	defer audio.Close()

	w := world.New(cfg)
	w.Initialize()
	w.LoadSounds("assets/sfx/impact.wav", "assets/sfx/break.wav")

	camera := rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 2.2, Z: -11.5},
		Target:     rl.Vector3{X: 0, Y: 0.4, Z: 4},
		Up:         rl.Vector3{Y: 1},
		Fovy:       50,
		Projection: rl.CameraPerspective,
	}

	throwSpeed := cfg.ThrowSpeed
	w.OnReset.AddListener(func() {
		throwSpeed = cfg.ThrowSpeed
	})

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeySpace) {
			w.Throw(throwSpeed)
		}
		if rl.IsKeyPressed(rl.KeyR) {
			w.Reset()
		}

		w.Update(rl.GetFrameTime())

		forward := rl.Vector3Subtract(camera.Target, camera.Position)
		audio.SetListener(camera.Position, forward, camera.Up)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(24, 24, 32, 255))

		rl.BeginMode3D(camera)
		w.Draw()
		rl.EndMode3D()

		throwSpeed = gui.Slider(rl.NewRectangle(90, 16, 220, 24),
			"Speed", fmt.Sprintf("%.1f m/s", throwSpeed), throwSpeed, 2, 25)
		if gui.Button(rl.NewRectangle(400, 16, 100, 24), "Reset (R)") {
			w.Reset()
		}
		rl.DrawText("SPACE to throw", 16, 52, 18, rl.LightGray)
		rl.DrawFPS(16, 690)

		rl.EndDrawing()
	}
}
