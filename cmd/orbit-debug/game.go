package main

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/orbitcam/ecs"
	"github.com/plus3/orbitcam/ecs/debugui"
	debugui_ebiten "github.com/plus3/orbitcam/ecs/debugui/ebiten"
	"github.com/plus3/orbitcam/orbit"
	"github.com/plus3/orbitcam/wire"
)

const lineWidth = 1.5

var background = color.RGBA{24, 24, 28, 255}

// Game implements ebiten.Game: input and the scheduler run in Update, the
// wireframe and the ImGui overlay in Draw.
type Game struct {
	app        *orbit.App
	backend    *ecs.Singleton[debugui_ebiten.ImguiBackend]
	imguiInput *ecs.Singleton[debugui.ImguiInputState]
	texts      *ecs.View[struct{ *orbit.TextOverlay }]

	cursor    mgl32.Vec2
	hasCursor bool

	width, height int
}

func NewGame(app *orbit.App, backend *ecs.Singleton[debugui_ebiten.ImguiBackend]) *Game {
	return &Game{
		app:        app,
		backend:    backend,
		imguiInput: ecs.NewSingleton[debugui.ImguiInputState](app.Storage),
		texts:      ecs.NewView[struct{ *orbit.TextOverlay }](app.Storage),
	}
}

func (g *Game) Update() error {
	input := g.readMouse()

	g.backend.Get().BeginFrame()
	g.app.Frame(1/float64(ebiten.TPS()), input)
	g.backend.Get().EndFrame()

	return nil
}

// readMouse turns cursor positions into per-frame motion. Input is dropped
// while ImGui has the mouse so dragging a window does not turn the camera.
func (g *Game) readMouse() orbit.MouseInput {
	x, y := ebiten.CursorPosition()
	cursor := mgl32.Vec2{float32(x), float32(y)}

	var motion mgl32.Vec2
	if g.hasCursor {
		motion = cursor.Sub(g.cursor)
	}
	g.cursor = cursor
	g.hasCursor = true

	if state := g.imguiInput.Get(); state != nil && state.WantCaptureMouse {
		return orbit.MouseInput{}
	}

	return orbit.MouseInput{
		Motion: motion,
		Left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	if projector, ok := wire.FromStorage(g.app.Storage, g.width, g.height); ok {
		for _, s := range wire.Scene(g.app.Storage, projector) {
			vector.StrokeLine(screen, s.A.X(), s.A.Y(), s.B.X(), s.B.Y(), lineWidth, s.Color.RGBA(), true)
		}
	}

	for text := range g.texts.Values() {
		ebitenutil.DebugPrintAt(screen, text.Text, int(text.Left), int(text.Top))
	}

	g.backend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	g.backend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
