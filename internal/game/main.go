package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio unavailable, running silent: %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SNAKE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(
		float32(Palette.BgTop.R)/255.0,
		float32(Palette.BgTop.G)/255.0,
		float32(Palette.BgTop.B)/255.0,
		1.0,
	)

	cfg := DefaultConfig()
	sim := NewGame(cfg, seed)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}

	particles := NewParticleSystem(MaxParticles, seed^0xBEAD)
	input := NewInput()

	// Reusable render buffers.
	var snakeBuf, entBuf, quadBuf, uiBuf []float32
	var glowBuf, normBuf []float32

	half := float64(cfg.Grid) / 2

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		for _, cmd := range input.PollCommands(window) {
			sim.HandleInput(cmd)
		}
		if sim.QuitRequested() {
			window.SetShouldClose(true)
			continue
		}

		sim.Step(dt)

		// Display events drive particles and sound; the core never
		// calls back into either.
		for _, ev := range sim.DrainEvents() {
			cx := float64(ev.X) + half
			cy := float64(ev.Y) + half
			switch ev.Type {
			case EventFoodEaten:
				particles.SpawnBurst(cx, cy, ev.Col, 18)
				PlaySound(SoundEat)
			case EventSpecialEaten:
				particles.SpawnBurst(cx, cy, ev.Col, 26)
				PlaySound(SoundSpecial)
			case EventPowerUpSpawned:
				particles.SpawnBurst(cx, cy, ev.Col, 6)
			case EventPowerUpCollected:
				particles.SpawnBurst(cx, cy, ev.Col, 20)
				PlaySound(SoundPower)
			case EventLifeLost:
				particles.SpawnBurst(cx, cy, ev.Col, 30)
				PlaySound(SoundHurt)
			case EventLevelUp:
				PlaySound(SoundLevelUp)
			case EventGameOver:
				PlaySound(SoundGameOver)
			case EventStarted:
				particles.Clear()
				PlaySound(SoundMenuSelect)
			}
		}
		particles.Update(dt)

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		snap := sim.Snapshot()

		rend.BeginFrame(fbW, fbH)
		rend.DrawBackground()

		quadBuf = ObstacleQuads(snap, quadBuf)
		rend.DrawQuads(quadBuf, cfg, fbW, fbH)

		entBuf = EntitySprites(snap, cfg, entBuf)
		rend.DrawCells(entBuf, cfg, fbW, fbH)

		snakeBuf = SnakeSprites(snap, cfg, snakeBuf)
		rend.DrawCells(snakeBuf, cfg, fbW, fbH)

		glowBuf, normBuf = particles.ParticleRenderData(glowBuf, normBuf)
		rend.DrawSprites(normBuf, cfg, fbW, fbH)
		rend.DrawGlowSprites(glowBuf, cfg, fbW, fbH)

		uiBuf = RenderHUD(rend, snap, cfg, fbW, fbH, uiBuf)

		window.SwapBuffers()
	}
}
