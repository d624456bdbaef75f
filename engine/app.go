package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gyre/anim"
	"github.com/lixenwraith/gyre/audio"
	"github.com/lixenwraith/gyre/command"
	"github.com/lixenwraith/gyre/core"
	"github.com/lixenwraith/gyre/field"
	"github.com/lixenwraith/gyre/parameter"
	"github.com/lixenwraith/gyre/render"
	"github.com/lixenwraith/gyre/status"
	"github.com/lixenwraith/gyre/style"
	"github.com/lixenwraith/gyre/view"
)

// Config is the application state an App starts from
type Config struct {
	Variant     core.FieldVariant
	Style       core.StyleID
	Orientation core.Orientation
}

// App wires the ring field, animation engine, styling, view control,
// audio and renderer behind the external command surface. All shared
// state mutation happens on the frame thread inside Tick; producers
// only push onto the command queue.
type App struct {
	screen tcell.Screen
	queue  *command.Queue

	store    *field.Store
	engine   *anim.Engine
	clock    *anim.Clock
	camera   *render.Camera
	renderer *render.Renderer
	styles   *style.Applicator
	views    *view.Controller
	sound    *audio.Service

	registry   *status.Registry
	statFrames *atomic.Int64
	statRings  *atomic.Int64
	statFPS    *status.AtomicFloat

	// FPS sampling window
	fpsCount int
	fpsSince time.Time

	lastTick time.Time
	quit     bool
}

// NewApp builds the field and assembles the frame pipeline
func NewApp(screen tcell.Screen, sound *audio.Service, cfg Config) (*App, error) {
	if !cfg.Variant.Valid() {
		return nil, fmt.Errorf("invalid field variant %d", cfg.Variant)
	}

	width, height := screen.Size()

	store := field.NewStore()
	clock := anim.NewClock()
	engine := anim.NewEngine(store)
	camera := render.NewCamera()
	registry := status.NewRegistry()

	a := &App{
		screen:     screen,
		queue:      command.NewQueue(),
		store:      store,
		engine:     engine,
		clock:      clock,
		camera:     camera,
		renderer:   render.NewRenderer(width, height, camera),
		styles:     style.NewApplicator(),
		sound:      sound,
		registry:   registry,
		statFrames: registry.Ints.Get("engine.frames"),
		statRings:  registry.Ints.Get("field.rings"),
		statFPS:    registry.Floats.Get("engine.fps"),
		fpsSince:   time.Now(),
		lastTick:   time.Now(),
	}
	a.views = view.NewController(store, engine, clock, camera)

	a.buildField(cfg.Variant)
	if err := a.SetVisualStyle(cfg.Style); err != nil {
		return nil, err
	}
	if err := a.ResetView(cfg.Orientation); err != nil {
		return nil, err
	}
	return a, nil
}

// buildField (re)creates all rings with fresh shared geometry
func (a *App) buildField(variant core.FieldVariant) {
	a.store.Rebuild(field.BuildConfig{
		Variant:  variant,
		Geometry: render.NewTorusMesh(),
	})
	a.statRings.Store(int64(len(a.store.Rings())))
}

// Queue returns the command queue input producers push onto
func (a *App) Queue() *command.Queue {
	return a.queue
}

// Registry exposes the metrics facade
func (a *App) Registry() *status.Registry {
	return a.registry
}

// ===== EXTERNAL COMMAND SURFACE =====
// Malformed enum values are rejected here, never inside the frame loop.

// SetAnimationMode switches the active animation; no-op if already
// active (the audio track is not restarted either)
func (a *App) SetAnimationMode(m core.AnimMode) error {
	if !m.Valid() {
		return fmt.Errorf("invalid animation mode %d", m)
	}
	if a.engine.SetMode(m) {
		a.sound.PlayMode(m)
	}
	return nil
}

// SetVisualStyle replaces every ring's material with the style's scheme
func (a *App) SetVisualStyle(s core.StyleID) error {
	if !s.Valid() {
		return fmt.Errorf("invalid style %d", s)
	}
	if !a.store.Built() {
		return nil
	}
	return a.styles.Apply(s, a.store.Rings())
}

// ResetView restarts the clock, drops the mode to none, reassigns the
// base orientation and re-poses the camera
func (a *App) ResetView(o core.Orientation) error {
	if err := a.views.Reset(o); err != nil {
		return err
	}
	a.sound.PlayMode(core.ModeNone)
	return nil
}

// RebuildField switches the axis-table variant, disposing and
// recreating every ring and the shared geometry
func (a *App) RebuildField(v core.FieldVariant) error {
	if !v.Valid() {
		return fmt.Errorf("invalid field variant %d", v)
	}
	a.buildField(v)
	if err := a.styles.Apply(a.styles.Current(), a.store.Rings()); err != nil {
		return err
	}
	return a.views.Reset(a.views.Orientation())
}

// SetVolume forwards to the audio subsystem
func (a *App) SetVolume(level float64) {
	a.sound.SetVolume(level)
}

// ToggleMute forwards to the audio subsystem
func (a *App) ToggleMute() bool {
	return a.sound.ToggleMute()
}

// ===== FRAME TICK =====

// Tick runs one frame: drain commands, animate, render.
// Returns false once a quit command has been applied.
func (a *App) Tick(now time.Time) bool {
	a.applyCommands()
	if a.quit {
		return false
	}

	dt := now.Sub(a.lastTick).Seconds()
	a.lastTick = now
	a.camera.Update(dt)

	a.engine.Step(a.clock.Seconds())

	a.sampleFPS(now)
	a.statFrames.Add(1)

	a.renderer.Frame(a.screen, a.store.Rings(), render.Status{
		Mode:        a.engine.Mode(),
		Style:       a.styles.Current(),
		Variant:     a.store.Variant(),
		Orientation: a.views.Orientation(),
		Volume:      a.sound.Level(),
		Muted:       a.sound.Muted(),
		FPS:         a.statFPS.Get(),
		Rings:       int(a.statRings.Load()),
	})
	a.screen.Show()
	return true
}

// applyCommands drains the queue and applies each command in order.
// Command errors cannot occur from the key map; they are dropped here
// rather than crashing the loop.
func (a *App) applyCommands() {
	for _, cmd := range a.queue.Consume() {
		switch cmd.Kind {
		case command.KindSetMode:
			_ = a.SetAnimationMode(cmd.Mode)
		case command.KindSetStyle:
			_ = a.SetVisualStyle(cmd.Style)
		case command.KindCycleStyle:
			_ = a.SetVisualStyle(a.styles.Current().Next())
		case command.KindResetView:
			_ = a.ResetView(cmd.Orientation)
		case command.KindCycleView:
			_ = a.ResetView(a.views.Orientation().Next())
		case command.KindVolumeDelta:
			a.sound.AdjustVolume(cmd.Delta)
		case command.KindToggleMute:
			a.sound.ToggleMute()
		case command.KindResize:
			a.renderer.Resize(cmd.Width, cmd.Height)
			a.screen.Sync()
		case command.KindQuit:
			a.quit = true
		}
	}
}

// sampleFPS publishes the smoothed frame rate once per sampling window.
// The HUD reads it back from the registry.
func (a *App) sampleFPS(now time.Time) {
	a.fpsCount++
	if w := now.Sub(a.fpsSince); w >= parameter.FPSSampleWindow {
		a.statFPS.Set(float64(a.fpsCount) / w.Seconds())
		a.fpsCount = 0
		a.fpsSince = now
	}
}

// Teardown halts audio and disposes all field resources.
// The loop must already be stopped; the screen finalizer runs last in
// main so a crash report still prints cleanly.
func (a *App) Teardown() {
	_ = a.sound.Stop()
	a.store.Dispose()
}
