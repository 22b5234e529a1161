// Package scene projects immediate-mode 3D primitives into flat, depth-sorted
// 2D shapes that any backend able to fill polygons and circles can draw.
package scene

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/corridor/internal/render"
	"chosenoffset.com/corridor/internal/render/lighting"
)

// Kind is the 2D shape of a resolved primitive
type Kind int

const (
	KindPolygon Kind = iota
	KindCircle
)

// Point is a screen-space position in pixels
type Point struct {
	X, Y float64
}

// Primitive is a shaded shape ready to fill
type Primitive struct {
	Kind   Kind
	Points []Point // Convex outline for polygons
	Center Point   // Circle center
	Radius float64 // Circle radius in pixels
	Color  color.RGBA
	Depth  float64 // View distance, larger is farther
	layer  int
}

// Label is an overlay string
type Label struct {
	Text string
	X, Y int
}

type shapeKind int

const (
	shapeBox shapeKind = iota
	shapeSphere
	shapePlane
)

type shape struct {
	kind   shapeKind
	center mgl64.Vec3
	size   mgl64.Vec3 // Box extents, or plane width/depth in X/Z
	radius float64
	clr    color.Color
}

// Ground planes are drawn underneath everything else.
const (
	layerGround = iota
	layerSolid
)

// Box corners are indexed by bits: 1 = +x, 2 = +y, 4 = +z.
var boxFaces = [6]struct {
	corners [4]int
	normal  mgl64.Vec3
}{
	{[4]int{0, 2, 6, 4}, mgl64.Vec3{-1, 0, 0}},
	{[4]int{1, 5, 7, 3}, mgl64.Vec3{1, 0, 0}},
	{[4]int{0, 1, 5, 4}, mgl64.Vec3{0, -1, 0}},
	{[4]int{2, 6, 7, 3}, mgl64.Vec3{0, 1, 0}},
	{[4]int{0, 2, 3, 1}, mgl64.Vec3{0, 0, -1}},
	{[4]int{4, 5, 7, 6}, mgl64.Vec3{0, 0, 1}},
}

var _ render.Frame = (*Scene)(nil)

// Scene collects one frame of primitives. It implements render.Frame.
type Scene struct {
	width, height int
	background    color.RGBA
	lights        *lighting.Manager
	camera        render.Camera
	fovY          float64 // Radians
	near, far     float64
	shapes        []shape
	labels        []Label
}

// New creates a scene with a 60 degree lens.
func New() *Scene {
	s := &Scene{
		lights: lighting.NewManager(),
		fovY:   mgl64.DegToRad(60),
		near:   10,
		far:    10000,
	}
	s.Reset(0, 0)
	return s
}

// DefaultCamera looks at the origin from the distance where the frame height
// spans the 60 degree lens.
func DefaultCamera(height int) render.Camera {
	eyeZ := (float64(height) / 2) / math.Tan(math.Pi/6)
	return render.Camera{
		Eye:    mgl64.Vec3{0, 0, eyeZ},
		Target: mgl64.Vec3{0, 0, 0},
		Up:     mgl64.Vec3{0, 1, 0},
	}
}

// SetLens sets the vertical field of view in degrees and the clip range.
func (s *Scene) SetLens(fovYDegrees, near, far float64) {
	s.fovY = mgl64.DegToRad(fovYDegrees)
	s.near = near
	s.far = far
}

// Reset clears the scene for a new frame of the given size.
func (s *Scene) Reset(width, height int) {
	s.width = width
	s.height = height
	s.background = color.RGBA{0, 0, 0, 255}
	s.lights.Reset()
	s.camera = DefaultCamera(height)
	s.shapes = s.shapes[:0]
	s.labels = s.labels[:0]
}

// Size returns the frame size in pixels.
func (s *Scene) Size() (width, height int) {
	return s.width, s.height
}

// Background sets the clear color.
func (s *Scene) Background(clr color.Color) {
	s.background = color.RGBAModel.Convert(clr).(color.RGBA)
}

// BackgroundColor returns the clear color.
func (s *Scene) BackgroundColor() color.RGBA {
	return s.background
}

// AmbientLight sets the ambient light level.
func (s *Scene) AmbientLight(level float64) {
	s.lights.SetAmbientLight(level)
}

// DirectionalLight adds a directional light.
func (s *Scene) DirectionalLight(level float64, direction mgl64.Vec3) {
	s.lights.AddDirectionalLight(level, direction)
}

// SetCamera sets the viewpoint.
func (s *Scene) SetCamera(cam render.Camera) {
	s.camera = cam
}

// Box adds an axis-aligned box.
func (s *Scene) Box(center, size mgl64.Vec3, clr color.Color) {
	s.shapes = append(s.shapes, shape{kind: shapeBox, center: center, size: size, clr: clr})
}

// Sphere adds a sphere.
func (s *Scene) Sphere(center mgl64.Vec3, radius float64, clr color.Color) {
	s.shapes = append(s.shapes, shape{kind: shapeSphere, center: center, radius: radius, clr: clr})
}

// Plane adds a horizontal plane.
func (s *Scene) Plane(center mgl64.Vec3, width, depth float64, clr color.Color) {
	s.shapes = append(s.shapes, shape{kind: shapePlane, center: center, size: mgl64.Vec3{width, 0, depth}, clr: clr})
}

// Text adds an overlay label.
func (s *Scene) Text(str string, x, y int) {
	s.labels = append(s.labels, Label{Text: str, X: x, Y: y})
}

// Labels returns the overlay labels in insertion order.
func (s *Scene) Labels() []Label {
	return s.labels
}

// Resolve projects every shape and returns the visible primitives in
// drawing order: ground first, then far to near.
func (s *Scene) Resolve() []Primitive {
	if s.width <= 0 || s.height <= 0 {
		return nil
	}

	p := projector{
		view:   mgl64.LookAtV(s.camera.Eye, s.camera.Target, s.camera.Up),
		proj:   mgl64.Perspective(s.fovY, float64(s.width)/float64(s.height), s.near, s.far),
		near:   s.near,
		width:  float64(s.width),
		height: float64(s.height),
		focal:  1 / math.Tan(s.fovY/2),
	}

	var out []Primitive
	for _, sh := range s.shapes {
		switch sh.kind {
		case shapeBox:
			out = s.resolveBox(p, sh, out)
		case shapePlane:
			out = s.resolvePlane(p, sh, out)
		case shapeSphere:
			out = s.resolveSphere(p, sh, out)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].layer != out[j].layer {
			return out[i].layer < out[j].layer
		}
		return out[i].Depth > out[j].Depth
	})

	return out
}

func (s *Scene) resolveBox(p projector, sh shape, out []Primitive) []Primitive {
	half := sh.size.Mul(0.5)
	var corners [8]mgl64.Vec3
	for i := range corners {
		offset := mgl64.Vec3{-half.X(), -half.Y(), -half.Z()}
		if i&1 != 0 {
			offset[0] = half.X()
		}
		if i&2 != 0 {
			offset[1] = half.Y()
		}
		if i&4 != 0 {
			offset[2] = half.Z()
		}
		corners[i] = sh.center.Add(offset)
	}

	for _, face := range boxFaces {
		faceCenter := sh.center.Add(mul3(face.normal, half))
		if face.normal.Dot(s.camera.Eye.Sub(faceCenter)) <= 0 {
			continue
		}
		world := []mgl64.Vec3{
			corners[face.corners[0]],
			corners[face.corners[1]],
			corners[face.corners[2]],
			corners[face.corners[3]],
		}
		if prim, ok := p.polygon(world); ok {
			prim.Color = s.lights.Shade(sh.clr, face.normal)
			prim.layer = layerSolid
			out = append(out, prim)
		}
	}
	return out
}

func (s *Scene) resolvePlane(p projector, sh shape, out []Primitive) []Primitive {
	hw, hd := sh.size.X()/2, sh.size.Z()/2
	world := []mgl64.Vec3{
		sh.center.Add(mgl64.Vec3{-hw, 0, -hd}),
		sh.center.Add(mgl64.Vec3{hw, 0, -hd}),
		sh.center.Add(mgl64.Vec3{hw, 0, hd}),
		sh.center.Add(mgl64.Vec3{-hw, 0, hd}),
	}
	if prim, ok := p.polygon(world); ok {
		prim.Color = s.lights.Shade(sh.clr, mgl64.Vec3{0, -1, 0})
		prim.layer = layerGround
		out = append(out, prim)
	}
	return out
}

func (s *Scene) resolveSphere(p projector, sh shape, out []Primitive) []Primitive {
	v := p.view.Mul4x1(sh.center.Vec4(1)).Vec3()
	depth := -v.Z()
	if depth <= p.near {
		return out
	}
	out = append(out, Primitive{
		Kind:   KindCircle,
		Center: p.toScreen(v),
		Radius: sh.radius * p.focal / depth * p.height / 2,
		Color:  s.lights.Shade(sh.clr, s.camera.Eye.Sub(sh.center)),
		Depth:  depth,
		layer:  layerSolid,
	})
	return out
}

type projector struct {
	view, proj    mgl64.Mat4
	near          float64
	width, height float64
	focal         float64
}

// polygon transforms a world-space outline to view space, clips it against
// the near plane and projects what is left.
func (p projector) polygon(world []mgl64.Vec3) (Primitive, bool) {
	viewPts := make([]mgl64.Vec3, len(world))
	for i, w := range world {
		viewPts[i] = p.view.Mul4x1(w.Vec4(1)).Vec3()
	}

	clipped := clipNear(viewPts, p.near)
	if len(clipped) < 3 {
		return Primitive{}, false
	}

	prim := Primitive{Kind: KindPolygon, Points: make([]Point, len(clipped))}
	for i, v := range clipped {
		prim.Points[i] = p.toScreen(v)
		prim.Depth += -v.Z()
	}
	prim.Depth /= float64(len(clipped))
	return prim, true
}

func (p projector) toScreen(v mgl64.Vec3) Point {
	clip := p.proj.Mul4x1(v.Vec4(1))
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return Point{
		X: (ndcX + 1) / 2 * p.width,
		Y: (1 + ndcY) / 2 * p.height,
	}
}

// clipNear keeps the part of a view-space polygon in front of z = -near.
func clipNear(pts []mgl64.Vec3, near float64) []mgl64.Vec3 {
	inside := func(v mgl64.Vec3) bool { return v.Z() <= -near }

	var out []mgl64.Vec3
	for i := range pts {
		cur := pts[i]
		next := pts[(i+1)%len(pts)]
		if inside(cur) {
			out = append(out, cur)
		}
		if inside(cur) != inside(next) {
			t := (-near - cur.Z()) / (next.Z() - cur.Z())
			out = append(out, cur.Add(next.Sub(cur).Mul(t)))
		}
	}
	return out
}

func mul3(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}
