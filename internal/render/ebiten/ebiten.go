package ebiten

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/corridor/internal/render"
	"chosenoffset.com/corridor/internal/render/scene"
)

// whiteSubImage is the solid source texture for filled triangles.
var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	for _, k := range keyToEbitenKeys(key) {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	for _, k := range keyToEbitenKeys(key) {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// IsKeyJustReleased returns whether the specified key was just released this frame.
func (m *EbitenInputManager) IsKeyJustReleased(key render.Key) bool {
	released := false
	for _, k := range keyToEbitenKeys(key) {
		if inpututil.IsKeyJustReleased(k) {
			released = true
		}
	}
	// Left and right shift count as one key
	return released && !m.IsKeyPressed(key)
}

// GetCursorPosition returns the current cursor position.
func (m *EbitenInputManager) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// IsMouseButtonJustPressed returns whether the specified mouse button was just pressed this frame.
func (m *EbitenInputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(mouseButtonToEbiten(button))
}

// keyToEbitenKeys converts a render.Key to the ebiten keys that produce it.
func keyToEbitenKeys(key render.Key) []ebiten.Key {
	switch key {
	case render.KeyUp:
		return []ebiten.Key{ebiten.KeyArrowUp}
	case render.KeyW:
		return []ebiten.Key{ebiten.KeyW}
	case render.KeyShift:
		return []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}
	case render.KeySpace:
		return []ebiten.Key{ebiten.KeySpace}
	case render.KeyEscape:
		return []ebiten.Key{ebiten.KeyEscape}
	default:
		return nil
	}
}

// mouseButtonToEbiten converts a render.MouseButton to an ebiten.MouseButton.
func mouseButtonToEbiten(button render.MouseButton) ebiten.MouseButton {
	switch button {
	case render.MouseButtonLeft:
		return ebiten.MouseButtonLeft
	case render.MouseButtonRight:
		return ebiten.MouseButtonRight
	case render.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct {
	fovY, near, far float64
}

// NewEngine creates a new Ebiten-based game engine with the given lens.
func NewEngine(fovY, near, far float64) render.Engine {
	return &EbitenEngine{fovY: fovY, near: near, far: far}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	ebiten.SetCursorShape(ebiten.CursorShapeCrosshair)

	sc := scene.New()
	sc.SetLens(e.fovY, e.near, e.far)
	return ebiten.RunGame(&gameAdapter{game: game, scene: sc})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game     render.Game
	scene    *scene.Scene
	vertices []ebiten.Vertex
	indices  []uint16
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	a.scene.Reset(bounds.Dx(), bounds.Dy())
	a.game.Draw(a.scene)

	screen.Fill(a.scene.BackgroundColor())
	for _, prim := range a.scene.Resolve() {
		switch prim.Kind {
		case scene.KindPolygon:
			a.fillPolygon(screen, prim.Points, prim.Color)
		case scene.KindCircle:
			vector.DrawFilledCircle(screen, float32(prim.Center.X), float32(prim.Center.Y), float32(prim.Radius), prim.Color, true)
		}
	}

	for _, label := range a.scene.Labels() {
		ebitenutil.DebugPrintAt(screen, label.Text, label.X, label.Y)
	}
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}

// fillPolygon draws a convex outline as a triangle fan.
func (a *gameAdapter) fillPolygon(dst *ebiten.Image, pts []scene.Point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}

	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	alpha := float32(clr.A) / 0xff

	a.vertices = a.vertices[:0]
	a.indices = a.indices[:0]
	for _, p := range pts {
		a.vertices = append(a.vertices, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: alpha,
		})
	}
	for i := 1; i < len(pts)-1; i++ {
		a.indices = append(a.indices, 0, uint16(i), uint16(i+1))
	}

	dst.DrawTriangles(a.vertices, a.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
