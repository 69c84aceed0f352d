//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifepad/internal/render"
	"lifepad/internal/ui"
	"lifepad/pkg/life"
)

// updateTPS is the input polling rate of the window, not the simulation
// rate; the board only advances when the fixed-step timer says so.
const updateTPS = 60

// maxSimTPS caps the +/- speed keys at the update rate, past which extra
// ticks could not be delivered anyway.
const maxSimTPS = updateTPS

// Game adapts a life.Simulation to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	sim     *life.Simulation
	painter *render.GridPainter
	hud     *ui.HUD
	ticker  *FixedStep

	onColor  color.Color
	offColor color.Color

	seed    int64
	showHUD bool
}

// NewGame constructs the GUI front end around the provided simulation.
func NewGame(cfg *Config, sim *life.Simulation) *Game {
	w, h := sim.Dimensions()
	return &Game{
		cfg:      cfg,
		sim:      sim,
		painter:  render.NewGridPainter(w, h),
		hud:      ui.NewHUD(),
		ticker:   NewFixedStep(cfg.TPS),
		onColor:  color.White,
		offColor: color.Black,
		seed:     cfg.Seed,
		showHUD:  true,
	}
}

// Update handles input and advances the simulation on its fixed tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.TogglePaused()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.sim.SetPaused(false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.sim.Paused() {
		g.sim.SingleStep()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.cfg.Populate(g.sim, g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = time.Now().UnixNano()
		g.cfg.Populate(g.sim, g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) && g.ticker.TPS() < maxSimTPS {
		g.ticker.SetTPS(g.ticker.TPS() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.ticker.SetTPS(g.ticker.TPS() - 1)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.toggleCellAtCursor()
	}

	if g.ticker.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

// toggleCellAtCursor flips the cell under the mouse. Presses outside the
// board are ignored.
func (g *Game) toggleCellAtCursor() {
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 {
		return
	}
	x, y := mx/g.cfg.Cell, my/g.cfg.Cell
	w, h := g.sim.Dimensions()
	if x >= w || y >= h {
		return
	}
	g.sim.ToggleCell(x, y)
}

// Draw renders the board and the status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.cfg.Cell)
	if g.showHUD {
		g.hud.Draw(screen, ui.Status{
			Generation: g.sim.Generation(),
			Population: g.sim.Population(),
			TPS:        g.ticker.TPS(),
			Paused:     g.sim.Paused(),
		})
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.sim.Dimensions()
	return w * g.cfg.Cell, h * g.cfg.Cell
}

// Run opens the window and drives the game loop until the user quits.
func Run(cfg *Config, sim *life.Simulation) error {
	game := NewGame(cfg, sim)
	ebiten.SetWindowTitle("lifepad")
	ebiten.SetWindowSize(cfg.Width*cfg.Cell, cfg.Height*cfg.Cell)
	ebiten.SetTPS(updateTPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
