// Package game runs the tank-on-terrain main loop.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/tankterrain/internal/assets"
	"github.com/Faultbox/tankterrain/internal/config"
	"github.com/Faultbox/tankterrain/internal/engine/camera"
	"github.com/Faultbox/tankterrain/internal/engine/debug"
	"github.com/Faultbox/tankterrain/internal/engine/input"
	"github.com/Faultbox/tankterrain/internal/engine/renderer"
	"github.com/Faultbox/tankterrain/internal/engine/window"
	"github.com/Faultbox/tankterrain/internal/game/world"
	"github.com/Faultbox/tankterrain/pkg/math"
)

// Game is the main game instance.
type Game struct {
	log      *zap.Logger
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	assets   *assets.Manager
	shots    *debug.Screenshots
	capture  bool

	world  *world.World
	chase  *camera.ChaseCamera
	orbit  *camera.OrbitCamera
	active camera.Camera // chase or orbit
}

// New opens the window and builds the world described by cfg.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Game, error) {
	g := &Game{
		log:    log,
		input:  input.New(),
		assets: assets.NewManager(cfg.Terrain.CacheDir),
		shots:  debug.NewScreenshots("screenshots", "tank"),
	}

	var err error
	g.world, err = world.Load(ctx, cfg, g.assets)
	if err != nil {
		return nil, err
	}

	g.window, err = window.New(window.Config{
		Title:      "Tank Terrain",
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	// GL functions are only available once the context exists.
	width, height := g.window.Size()
	g.renderer, err = renderer.New(width, height)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	if err := g.renderer.LoadTerrain(g.world.Terrain.RenderData(), g.world.Ground); err != nil {
		g.Close()
		return nil, err
	}

	lens := camera.Lens{
		FovY:   cfg.Camera.FovY,
		Aspect: g.window.Aspect(),
		Near:   cfg.Camera.Near,
		Far:    cfg.Camera.Far,
	}
	off := cfg.Camera.Offset
	g.chase = camera.NewChaseCamera(math.Vec3{X: off.X, Y: off.Y, Z: off.Z}, lens)
	g.chase.Target = g.world.Tank
	g.chase.Update()

	g.orbit = camera.NewOrbitCamera(lens)
	g.orbit.FitToBounds(g.world.Bounds())
	g.active = g.chase

	return g, nil
}

// Run drives the loop until the window closes or Escape is pressed.
func (g *Game) Run() error {
	g.running = true

	frames := 0
	fpsTimer := time.Now()

	g.log.Info("starting game loop")

	for g.running {
		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		g.world.Step(readControls(g.input))
		g.chase.Update()

		boxes := make([]renderer.Box, 0, 3)
		for _, p := range g.world.Tank.Parts() {
			boxes = append(boxes, renderer.Box{Model: p.Model, Color: p.Color})
		}
		g.renderer.Draw(g.active.View(), g.active.Projection(), boxes)
		if g.capture {
			g.screenshot()
			g.capture = false
		}
		g.window.SwapBuffers()

		frames++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			pos := g.world.Tank.Position()
			g.log.Debug("frame stats",
				zap.Int("fps", frames),
				zap.Float32("tank_x", pos.X),
				zap.Float32("tank_y", pos.Y),
				zap.Float32("tank_z", pos.Z))
			frames = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			g.renderer.Resize(event.Width, event.Height)
			aspect := g.window.Aspect()
			g.chase.SetAspect(aspect)
			g.orbit.SetAspect(aspect)

		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				g.running = false
			case sdl.SCANCODE_C:
				g.toggleCamera()
			case sdl.SCANCODE_F12:
				g.capture = true
			}

		case input.EventMouseDrag:
			g.orbit.Turn(float32(event.DX), float32(event.DY))

		case input.EventMouseWheel:
			g.orbit.Zoom(float32(event.DY))
		}
	}
}

func (g *Game) toggleCamera() {
	if g.active == g.chase {
		g.orbit.Center = g.world.Tank.Position()
		g.active = g.orbit
		g.log.Info("camera switched", zap.String("mode", "orbit"))
		return
	}
	g.active = g.chase
	g.log.Info("camera switched", zap.String("mode", "chase"))
}

func (g *Game) screenshot() {
	width, height := g.window.Size()
	path, err := g.shots.Save(g.renderer.ReadPixels(width, height), width, height)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the renderer, window, and cached assets.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
	g.assets.Close()
}
