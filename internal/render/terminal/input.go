package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/corridor/internal/render"
)

// holdWindow is how long a key counts as held after its last press event.
// Terminals report presses and auto-repeats but never releases; the window
// must outlast the usual auto-repeat delay.
const holdWindow = 550 * time.Millisecond

// InputManager implements render.InputManager from tcell events.
// Events are recorded with HandleEvent and folded into per-tick state by
// Advance, both on the tick goroutine.
type InputManager struct {
	lastSeen map[render.Key]time.Time
	pressed  map[render.Key]bool
	previous map[render.Key]bool

	cols, rows       int // Screen size in cells
	width, height    int // Logical size the cursor is scaled to
	cursorX, cursorY int

	buttonDown   bool
	pendingClick bool
	clicked      bool
}

// NewInputManager creates an input manager for a logical viewport
func NewInputManager(width, height int) *InputManager {
	return &InputManager{
		lastSeen: make(map[render.Key]time.Time),
		pressed:  make(map[render.Key]bool),
		previous: make(map[render.Key]bool),
		width:    width,
		height:   height,
		cursorX:  width / 2,
		cursorY:  height / 2,
	}
}

// SetScreenSize records the terminal size in cells for cursor scaling
func (m *InputManager) SetScreenSize(cols, rows int) {
	m.cols = cols
	m.rows = rows
}

// SetLogicalSize records the viewport size the cursor is reported in
func (m *InputManager) SetLogicalSize(width, height int) {
	m.width = width
	m.height = height
}

// HandleEvent records a key or mouse event at time now
func (m *InputManager) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, ok := keyFromEvent(ev)
		if !ok {
			return
		}
		m.lastSeen[key] = now
		// Shift only arrives as a modifier of another key
		if ev.Modifiers()&tcell.ModShift != 0 {
			m.lastSeen[render.KeyShift] = now
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		m.cursorX, m.cursorY = m.scaleCursor(col, row)

		down := ev.Buttons()&tcell.Button1 != 0
		if down && !m.buttonDown {
			m.pendingClick = true
		}
		m.buttonDown = down
	}
}

// Advance folds recorded events into the key state for the tick at now
func (m *InputManager) Advance(now time.Time) {
	m.previous, m.pressed = m.pressed, m.previous
	for key := range m.pressed {
		delete(m.pressed, key)
	}
	for key, seen := range m.lastSeen {
		if now.Sub(seen) < holdWindow {
			m.pressed[key] = true
		}
	}

	m.clicked = m.pendingClick
	m.pendingClick = false
}

// IsKeyPressed returns whether the key is held
func (m *InputManager) IsKeyPressed(key render.Key) bool {
	return m.pressed[key]
}

// IsKeyJustPressed returns whether the key became held this tick
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	return m.pressed[key] && !m.previous[key]
}

// IsKeyJustReleased returns whether the key stopped being held this tick
func (m *InputManager) IsKeyJustReleased(key render.Key) bool {
	return !m.pressed[key] && m.previous[key]
}

// GetCursorPosition returns the cursor in logical coordinates
func (m *InputManager) GetCursorPosition() (x, y int) {
	return m.cursorX, m.cursorY
}

// IsMouseButtonJustPressed returns whether the left button went down this tick
func (m *InputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return button == render.MouseButtonLeft && m.clicked
}

// scaleCursor maps a cell to the logical coordinate of its center
func (m *InputManager) scaleCursor(col, row int) (int, int) {
	if m.cols <= 0 || m.rows <= 0 {
		return col, row
	}
	x := (float64(col) + 0.5) * float64(m.width) / float64(m.cols)
	y := (float64(row) + 0.5) * float64(m.height) / float64(m.rows)
	return int(x), int(y)
}

func keyFromEvent(ev *tcell.EventKey) (render.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyEscape:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return render.KeyW, true
		case ' ':
			return render.KeySpace, true
		}
	}
	return 0, false
}
