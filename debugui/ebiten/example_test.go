package ebiten_test

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

// Game implements ebiten.Game and drives a session with an ImGui overlay.
type Game struct {
	scheduler    *engine.Scheduler
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.imguiBackend.BeginFrame()

	// Execute all systems (including ImguiSystem)
	g.scheduler.Once(1.0 / 60.0)

	// End ImGui frame after systems complete
	g.imguiBackend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the playfield to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create Ebiten window and ImGui backend
	imguiBackend := debugui_ebiten.NewImguiBackend("Blockfall ImGui Example", 1280, 720)

	session := tetris.NewSession()
	scheduler := engine.NewScheduler(session)

	// Register windows with the ImGui system
	imguiSystem := &debugui.ImguiSystem{InputState: &debugui.ImguiInputState{}}
	imguiSystem.Add((&debugui.SessionInspector{Session: session}).Render)

	scheduler.Register(&engine.GravitySystem{Interval: time.Second})
	scheduler.Register(imguiSystem)

	game := &Game{
		scheduler:    scheduler,
		imguiBackend: imguiBackend,
	}

	// Run the game
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
