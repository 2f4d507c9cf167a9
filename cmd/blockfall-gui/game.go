package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

const (
	cellSize    = 24
	fieldOrigin = 16

	ScreenWidth  = 960
	ScreenHeight = 600
)

var (
	emptyColor = color.RGBA{R: 30, G: 30, B: 40, A: 255}
	solidColor = color.RGBA{R: 90, G: 170, B: 90, A: 255}
	pieceColor = color.RGBA{R: 230, G: 200, B: 60, A: 255}
)

// cellOrigin returns the screen position of visible grid cell (x, y).
func cellOrigin(x, y int) (float64, float64) {
	return float64(fieldOrigin + (x-1)*cellSize), float64(fieldOrigin + (y-tetris.HiddenRows)*cellSize)
}

// Game implements ebiten.Game, driving one session with an ImGui overlay.
type Game struct {
	scheduler    *engine.Scheduler
	imguiBackend *debugui_ebiten.ImguiBackend
	frameTimer   *debugui.FrameTimer
	showDebug    bool

	emptyCell *ebiten.Image
	solidCell *ebiten.Image
	pieceCell *ebiten.Image
}

func NewGame(cfg *config.Config, backend *debugui_ebiten.ImguiBackend, logger *log.Logger) *Game {
	session := tetris.NewSession(cfg.SessionOptions(0, logger)...)
	scheduler := engine.NewScheduler(session)

	g := &Game{
		scheduler:    scheduler,
		imguiBackend: backend,
		frameTimer:   debugui.NewFrameTimer(),
		showDebug:    true,
		emptyCell:    newCell(emptyColor),
		solidCell:    newCell(solidColor),
		pieceCell:    newCell(pieceColor),
	}

	inputState := &debugui.ImguiInputState{}
	gravity := &engine.GravitySystem{
		Interval:         cfg.Timing.Fall,
		SoftDropInterval: cfg.Timing.SoftDrop,
	}
	performance := debugui.NewPerformanceStats(120)
	inspector := &debugui.SessionInspector{Session: session}

	imguiSystem := &debugui.ImguiSystem{InputState: inputState}
	imguiSystem.Add(func() {
		if g.showDebug {
			performance.Render(scheduler, g.frameTimer.GetDeltaTime())
			inspector.Render()
		}
	})

	scheduler.Register(imguiSystem)
	scheduler.Register(&KeyboardSystem{Keys: EbitenKeys{}, Gravity: gravity, InputState: inputState})
	scheduler.Register(gravity)
	return g
}

func newCell(c color.Color) *ebiten.Image {
	img := ebiten.NewImage(cellSize-1, cellSize-1)
	img.Fill(c)
	return img
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showDebug = !g.showDebug
	}

	// Begin ImGui frame before executing systems
	g.imguiBackend.BeginFrame()

	g.scheduler.Once(1.0 / float64(ebiten.TPS()))

	// End ImGui frame after systems complete
	g.imguiBackend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	session := g.scheduler.Session()
	grid := session.Grid()
	composite := session.Composite()

	for y := tetris.HiddenRows; y < tetris.Height-1; y++ {
		for x := 1; x < tetris.Width-1; x++ {
			cell := g.emptyCell
			switch {
			case grid.At(x, y) == tetris.Solid:
				cell = g.solidCell
			case composite.At(x, y) == tetris.Solid:
				cell = g.pieceCell
			}

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(cellOrigin(x, y))
			screen.DrawImage(cell, op)
		}
	}

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
