// Package terminal runs the game in a text terminal with tcell. Frames are
// rasterized in software and shown with half-block characters.
package terminal

import (
	"errors"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/corridor/internal/render"
	"chosenoffset.com/corridor/internal/render/scene"
)

// Engine implements render.Engine on a tcell screen.
type Engine struct {
	tps             int
	title           string
	fovY, near, far float64

	newScreen func() (tcell.Screen, error)
	screen    tcell.Screen
	input     *InputManager
	scene     *scene.Scene
	canvas    *Canvas
}

// NewEngine creates a terminal engine ticking tps times per second.
// The input manager is shared so the game can be built before the loop starts.
func NewEngine(input *InputManager, tps int, fovY, near, far float64) *Engine {
	return &Engine{
		tps:   tps,
		fovY:  fovY,
		near:  near,
		far:   far,
		input: input,

		newScreen: tcell.NewScreen,
	}
}

// SetWindowSize is a no-op; the terminal decides its own size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle sets the terminal title.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// SetWindowResizable is a no-op; terminals always resize.
func (e *Engine) SetWindowResizable(resizable bool) {}

// RunGame runs the tick loop until the game quits or Ctrl-C is pressed.
func (e *Engine) RunGame(game render.Game) error {
	screen, err := e.newScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	if e.title != "" {
		screen.SetTitle(e.title)
	}

	e.screen = screen
	e.scene = scene.New()
	e.scene.SetLens(e.fovY, e.near, e.far)
	e.resize()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(e.tps))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				e.resize()
			}
			e.input.HandleEvent(ev, time.Now())

		case now := <-ticker.C:
			e.input.Advance(now)
			if err := game.Update(); err != nil {
				if errors.Is(err, render.ErrQuit) {
					return nil
				}
				return err
			}
			e.draw(game)
		}
	}
}

func (e *Engine) resize() {
	cols, rows := e.screen.Size()
	e.input.SetScreenSize(cols, rows)
	w, h := e.canvasSize(cols, rows)
	e.canvas = NewCanvas(w, h)
}

// canvasSize reserves the bottom row for the overlay text
func (e *Engine) canvasSize(cols, rows int) (int, int) {
	if rows > 1 {
		rows--
	}
	return cols, rows * 2
}

func (e *Engine) draw(game render.Game) {
	w, h := e.canvas.Size()
	lw, lh := game.Layout(w, h)
	e.input.SetLogicalSize(lw, lh)

	e.scene.Reset(w, h)
	game.Draw(e.scene)

	e.canvas.Fill(e.scene.BackgroundColor())
	for _, prim := range e.scene.Resolve() {
		switch prim.Kind {
		case scene.KindPolygon:
			e.canvas.FillPolygon(prim.Points, prim.Color)
		case scene.KindCircle:
			e.canvas.FillCircle(prim.Center.X, prim.Center.Y, prim.Radius, prim.Color)
		}
	}

	e.screen.Clear()
	for row := 0; row < h/2; row++ {
		for col := 0; col < w; col++ {
			top := e.canvas.At(col, row*2)
			bottom := e.canvas.At(col, row*2+1)
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			e.screen.SetContent(col, row, '▀', nil, style)
		}
	}

	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	// Labels stack upward from the reserved bottom row
	_, rows := e.screen.Size()
	for i, label := range e.scene.Labels() {
		e.drawText(0, rows-1-i, label.Text, textStyle)
	}

	e.screen.Show()
}

func (e *Engine) drawText(x, y int, text string, style tcell.Style) {
	if y < 0 {
		return
	}
	for _, r := range text {
		e.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
