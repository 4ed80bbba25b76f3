// Package game implements the client main loop: input, cube ticks and
// rendering, once per frame.
package game

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cub3r/internal/config"
	"github.com/Faultbox/cub3r/internal/controls"
	"github.com/Faultbox/cub3r/internal/engine/camera"
	"github.com/Faultbox/cub3r/internal/engine/input"
	"github.com/Faultbox/cub3r/internal/engine/lighting"
	"github.com/Faultbox/cub3r/internal/engine/model"
	"github.com/Faultbox/cub3r/internal/engine/picking"
	"github.com/Faultbox/cub3r/internal/engine/renderer"
	"github.com/Faultbox/cub3r/internal/engine/screenshot"
	"github.com/Faultbox/cub3r/internal/engine/window"
	"github.com/Faultbox/cub3r/internal/logger"
	"github.com/Faultbox/cub3r/internal/puzzle"
	"github.com/Faultbox/cub3r/internal/storage"
	"github.com/Faultbox/cub3r/pkg/math"
)

const title = "cub3r"

// orbitStep is the camera turn per arrow key press, in radians.
var orbitStep = math.Radians(5)

// Game is the client instance.
type Game struct {
	cfg     *config.Config
	running bool
	log     *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	light    renderer.Light
	shots    *screenshot.Saver

	// pickExtent is the half-size of the whole cube for mouse picking.
	pickExtent float32

	cube   *puzzle.Cube
	player *puzzle.Player

	db       *storage.DB
	recorder *storage.Recorder

	solved  bool
	moves   int
	capture bool // Save the next rendered frame
}

// New creates the window, uploads the piece meshes and prepares the cube.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg: cfg,
		log: logger.Named("game"),
	}
	g.log.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Float32("step", cfg.Puzzle.Step),
	)

	// Moves are parsed first so a typo fails before a window opens
	var moves []puzzle.Move
	if cfg.Puzzle.Moves != "" {
		var err error
		moves, err = puzzle.ParseMoves(cfg.Puzzle.Moves)
		if err != nil {
			return nil, fmt.Errorf("invalid start moves: %w", err)
		}
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    4,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context from the window
	width, height := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		Background: cfg.Graphics.Background,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	opts := model.DefaultBuildOptions()
	opts.Size = cfg.Puzzle.PieceScale
	opts.Spacing = cfg.Puzzle.Spacing
	for id, mesh := range model.BuildCube(opts) {
		if err := g.renderer.UploadMesh(id, mesh); err != nil {
			g.Close()
			return nil, fmt.Errorf("failed to upload piece %d: %w", id, err)
		}
	}

	g.pickExtent = 1 + opts.Spacing + opts.Size/2
	g.shots = screenshot.New(filepath.Join(config.ConfigDir(), "screenshots"), title)

	g.input = input.New()
	g.camera = camera.NewOrbitCamera(cfg.Camera.Distance, cfg.Camera.Yaw, cfg.Camera.Pitch, cfg.Camera.FOV)
	g.light = renderer.Light{
		Direction: lighting.SunDirection(cfg.Lighting.Longitude, cfg.Lighting.Latitude).Array(),
		Ambient:   cfg.Lighting.Ambient,
		Diffuse:   cfg.Lighting.Diffuse,
	}

	g.cube = puzzle.New(puzzle.WithStep(cfg.Puzzle.Step))
	g.player = puzzle.NewPlayer(g.cube)
	g.player.Enqueue(moves...)

	if cfg.Storage.Enabled {
		g.openStorage()
	}

	g.solved = true
	g.log.Info("game initialized", zap.Int("queued_moves", len(moves)))
	return g, nil
}

// openStorage starts recording. The client still runs without it.
func (g *Game) openStorage() {
	db, err := storage.Open(g.cfg.DBPath())
	if err != nil {
		g.log.Warn("session recording disabled", zap.Error(err))
		return
	}
	rec, err := storage.NewRecorder(db, "gl")
	if err != nil {
		db.Close()
		g.log.Warn("session recording disabled", zap.Error(err))
		return
	}
	rec.Attach(g.cube)
	g.db = db
	g.recorder = rec
}

// Run starts the main loop and returns when the window closes.
func (g *Game) Run() error {
	g.running = true

	var frameBudget time.Duration
	if g.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(g.cfg.Graphics.FPSLimit)
	}

	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting game loop")

	for g.running {
		frameStart := time.Now()

		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		// 2. Advance the cube one step
		g.update()

		// 3. Render
		g.render()
		if g.capture {
			g.capture = false
			g.saveScreenshot()
		}

		// 4. Present
		g.window.SwapBuffers()

		if frameBudget > 0 {
			if elapsed := time.Since(frameStart); elapsed < frameBudget {
				time.Sleep(frameBudget - elapsed)
			}
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			// Window size is in points, the viewport wants pixels
			g.renderer.Resize(g.window.DrawableSize())
		case input.EventKeyDown:
			if action, ok := controls.Client.Lookup(event.Key, event.Shift); ok {
				g.handleAction(action)
			}
		case input.EventMouseDrag:
			g.camera.HandleDrag(event.DX, event.DY)
		case input.EventMouseWheel:
			g.camera.HandleZoom(event.DY)
		case input.EventClick:
			g.handleClick(event)
		}
	}
}

func (g *Game) handleAction(a controls.Action) {
	switch a.Kind {
	case controls.Turn:
		// Rejections are logged by the cube
		_ = g.cube.Apply(a.Move)
	case controls.Undo:
		g.cube.Undo()
	case controls.Reset:
		if err := g.player.Reset(); err != nil {
			g.log.Debug("reset ignored", zap.Error(err))
		}
	case controls.Quit:
		g.running = false
	case controls.Orbit:
		g.camera.Orbit(a.Yaw*orbitStep, a.Pitch*orbitStep)
	case controls.Screenshot:
		g.capture = true
	}
}

// handleClick turns the face under the cursor: clockwise for the left
// button, anticlockwise for the right.
func (g *Game) handleClick(e input.Event) {
	w, h := g.window.Size()
	x, y := picking.ScreenToNDC(e.X, e.Y, float32(w), float32(h))
	ray := picking.PerspectiveRay(x, y, g.camera.Position(), g.camera.Center, math.AxisY, g.camera.FOV, g.renderer.Aspect())

	face, ok := picking.PickFace(ray, g.pickExtent)
	if !ok {
		return
	}
	turn := puzzle.Clockwise
	if e.Right {
		turn = puzzle.Anticlockwise
	}
	_ = g.cube.Apply(puzzle.Move{Face: face, Turn: turn})
}

func (g *Game) saveScreenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.shots.Save(pixels, w, h)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

func (g *Game) update() {
	g.player.Tick()
	g.cube.Tick()

	if g.cube.IsAnimating() {
		return
	}
	solved := g.cube.IsSolved()
	moves := len(g.cube.History())
	if solved == g.solved && moves == g.moves {
		return
	}
	g.solved, g.moves = solved, moves

	switch {
	case solved:
		g.window.SetTitle(title + " (solved)")
		if moves > 0 {
			g.log.Info("cube solved", zap.Int("moves", moves))
		}
	default:
		g.window.SetTitle(fmt.Sprintf("%s - %d moves", title, moves))
	}
}

func (g *Game) render() {
	view := g.camera.ViewMatrix()
	projection := g.camera.ProjectionMatrix(g.renderer.Aspect())

	g.renderer.Begin(view, projection, g.light)
	for _, p := range g.cube.Pieces() {
		g.renderer.Draw(p)
	}
	g.renderer.End()
}

// Close releases the recorder, renderer and window.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.recorder != nil {
		if err := g.recorder.Close(); err != nil {
			g.log.Warn("failed to end session", zap.Error(err))
		}
		g.recorder = nil
	}
	if g.db != nil {
		g.db.Close()
		g.db = nil
	}
	if g.renderer != nil {
		g.renderer.Close()
		g.renderer = nil
	}
	if g.window != nil {
		g.window.Close()
		g.window = nil
	}
}
