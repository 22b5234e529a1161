package game

import (
	"errors"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/corridor/internal/config"
	"chosenoffset.com/corridor/internal/render"
	"chosenoffset.com/corridor/internal/world"
	"chosenoffset.com/corridor/internal/world/maploader"
)

// fakeInput is an InputManager driven by the test between ticks.
type fakeInput struct {
	pressed      map[render.Key]bool
	justPressed  map[render.Key]bool
	justReleased map[render.Key]bool
	clicked      bool
	x, y         int
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		pressed:      make(map[render.Key]bool),
		justPressed:  make(map[render.Key]bool),
		justReleased: make(map[render.Key]bool),
		x:            460,
		y:            300,
	}
}

func (f *fakeInput) press(key render.Key) {
	f.pressed[key] = true
	f.justPressed[key] = true
}

func (f *fakeInput) release(key render.Key) {
	f.pressed[key] = false
	f.justReleased[key] = true
}

// endTick clears edge state the way a backend does between ticks.
func (f *fakeInput) endTick() {
	f.justPressed = make(map[render.Key]bool)
	f.justReleased = make(map[render.Key]bool)
	f.clicked = false
}

func (f *fakeInput) IsKeyPressed(key render.Key) bool      { return f.pressed[key] }
func (f *fakeInput) IsKeyJustPressed(key render.Key) bool  { return f.justPressed[key] }
func (f *fakeInput) IsKeyJustReleased(key render.Key) bool { return f.justReleased[key] }
func (f *fakeInput) GetCursorPosition() (int, int)         { return f.x, f.y }
func (f *fakeInput) IsMouseButtonJustPressed(b render.MouseButton) bool {
	return b == render.MouseButtonLeft && f.clicked
}

type fakeSound struct{ shots int }

func (s *fakeSound) PlayShot() { s.shots++ }

// recordingFrame counts what the game draws.
type recordingFrame struct {
	background color.Color
	camera     render.Camera
	cameraSet  bool
	boxes      int
	spheres    []mgl64.Vec3
	planes     int
	texts      []string
}

func (f *recordingFrame) Size() (int, int)                                 { return 920, 600 }
func (f *recordingFrame) Background(clr color.Color)                       { f.background = clr }
func (f *recordingFrame) AmbientLight(level float64)                       {}
func (f *recordingFrame) DirectionalLight(level float64, dir mgl64.Vec3)   {}
func (f *recordingFrame) SetCamera(cam render.Camera)                      { f.camera, f.cameraSet = cam, true }
func (f *recordingFrame) Box(center, size mgl64.Vec3, clr color.Color)     { f.boxes++ }
func (f *recordingFrame) Plane(c mgl64.Vec3, w, d float64, clr color.Color) { f.planes++ }
func (f *recordingFrame) Text(str string, x, y int)                        { f.texts = append(f.texts, str) }
func (f *recordingFrame) Sphere(center mgl64.Vec3, radius float64, clr color.Color) {
	f.spheres = append(f.spheres, center)
}

func newTestGame(rows []string) (*Game, *fakeInput, *fakeSound) {
	cfg := config.DefaultConfig()
	w := world.New(maploader.Parse(rows, cfg.Map.CellSize), cfg)
	input := newFakeInput()
	sound := &fakeSound{}
	return New(w, input, sound, cfg), input, sound
}

func TestKeyEventsToggleFlags(t *testing.T) {
	g, input, _ := newTestGame([]string{"p"})
	player := g.World.Player

	input.press(render.KeyUp)
	input.press(render.KeyShift)
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	input.endTick()

	if !player.IsMovingForward || !player.IsRunning {
		t.Fatalf("Expected forward and run flags set, got %v %v", player.IsMovingForward, player.IsRunning)
	}

	// Flags persist while the keys are held
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !player.IsMovingForward {
		t.Error("Expected forward flag to persist")
	}

	input.release(render.KeyUp)
	input.release(render.KeyShift)
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if player.IsMovingForward || player.IsRunning {
		t.Error("Expected flags cleared on release")
	}
}

func TestForwardMovesPlayerEachTick(t *testing.T) {
	g, input, _ := newTestGame([]string{"p"})
	player := g.World.Player
	player.Heading = 0
	startZ := player.Z

	input.press(render.KeyUp)
	g.Update()
	input.endTick()
	g.Update()

	if player.Z != startZ-20 {
		t.Errorf("Expected two walking steps to z=%.1f, got %.1f", startZ-20, player.Z)
	}
	if g.Camera.Eye.Z() != player.Z+50 {
		t.Errorf("Expected camera to follow the player, got eye z=%.1f", g.Camera.Eye.Z())
	}
}

func TestClickFiresProjectile(t *testing.T) {
	g, input, sound := newTestGame([]string{"p"})

	input.clicked = true
	g.Update()
	input.endTick()

	if len(g.World.Projectiles) != 1 {
		t.Fatalf("Expected 1 projectile, got %d", len(g.World.Projectiles))
	}
	if sound.shots != 1 {
		t.Errorf("Expected 1 shot sound, got %d", sound.shots)
	}

	input.press(render.KeySpace)
	g.Update()
	if len(g.World.Projectiles) != 2 {
		t.Errorf("Expected space to fire too, got %d projectiles", len(g.World.Projectiles))
	}
}

func TestInputWithoutPlayerIsIgnored(t *testing.T) {
	g, input, sound := newTestGame([]string{"XeX"})

	input.press(render.KeyUp)
	input.clicked = true
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if len(g.World.Projectiles) != 0 || sound.shots != 0 {
		t.Error("Expected no projectile or sound without a player")
	}
	if g.HasCamera {
		t.Error("Expected no player camera")
	}

	frame := &recordingFrame{}
	g.Draw(frame)
	if frame.cameraSet {
		t.Error("Expected the default camera to be left in place")
	}
	if len(frame.texts) != 1 || frame.texts[0] != "no player on this map" {
		t.Errorf("Expected missing player notice, got %v", frame.texts)
	}
}

func TestEscapeQuits(t *testing.T) {
	g, input, _ := newTestGame([]string{"p"})
	input.press(render.KeyEscape)

	if err := g.Update(); !errors.Is(err, render.ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
}

func TestDrawEmitsScene(t *testing.T) {
	g, input, _ := newTestGame([]string{
		"XXX",
		"XpX",
		"XeX",
	})
	input.clicked = true
	g.Update()

	frame := &recordingFrame{}
	g.Draw(frame)

	if frame.background != skyColor {
		t.Errorf("Expected sky background, got %v", frame.background)
	}
	if !frame.cameraSet || frame.camera != g.Camera {
		t.Error("Expected the player camera")
	}
	if frame.planes != 1 {
		t.Errorf("Expected 1 floor plane, got %d", frame.planes)
	}
	if frame.boxes != 7 {
		t.Errorf("Expected 7 wall boxes, got %d", frame.boxes)
	}
	// One projectile and one enemy
	if len(frame.spheres) != 2 {
		t.Fatalf("Expected 2 spheres, got %d", len(frame.spheres))
	}
	if frame.spheres[1].Y() != -50 {
		t.Errorf("Expected enemy resting on the floor at y=-50, got %.1f", frame.spheres[1].Y())
	}
}

func TestLayoutIsLogicalSize(t *testing.T) {
	g, _, _ := newTestGame([]string{"p"})
	w, h := g.Layout(1920, 1080)
	if w != 920 || h != 600 {
		t.Errorf("Expected 920x600, got %dx%d", w, h)
	}
}
