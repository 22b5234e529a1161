package terminal

import (
	"image"
	"image/color"
	"math"

	"chosenoffset.com/corridor/internal/render/scene"
)

// Canvas is a software raster target. Each terminal cell shows two
// vertically stacked pixels, so the canvas is twice as tall as the screen.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a canvas of the given pixel size
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Size returns the canvas size in pixels
func (c *Canvas) Size() (width, height int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// At returns the pixel at (x, y)
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Fill sets every pixel to clr
func (c *Canvas) Fill(clr color.RGBA) {
	b := c.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c.img.SetRGBA(x, y, clr)
		}
	}
}

// FillPolygon fills a convex polygon, sampling at pixel centers
func (c *Canvas) FillPolygon(pts []scene.Point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}

	w, h := c.Size()
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	startY := clampInt(int(math.Ceil(minY-0.5)), 0, h)
	endY := clampInt(int(math.Ceil(maxY-0.5)), 0, h)
	for y := startY; y < endY; y++ {
		sy := float64(y) + 0.5
		left, right := math.Inf(1), math.Inf(-1)
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if (a.Y <= sy) == (b.Y <= sy) {
				continue
			}
			x := a.X + (sy-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			left = math.Min(left, x)
			right = math.Max(right, x)
		}
		if left > right {
			continue
		}
		c.span(y, left, right, w, clr)
	}
}

// FillCircle fills a circle, sampling at pixel centers
func (c *Canvas) FillCircle(cx, cy, r float64, clr color.RGBA) {
	if r <= 0 {
		return
	}

	w, h := c.Size()
	startY := clampInt(int(math.Ceil(cy-r-0.5)), 0, h)
	endY := clampInt(int(math.Ceil(cy+r-0.5)), 0, h)
	for y := startY; y < endY; y++ {
		dy := float64(y) + 0.5 - cy
		if dy*dy > r*r {
			continue
		}
		dx := math.Sqrt(r*r - dy*dy)
		c.span(y, cx-dx, cx+dx, w, clr)
	}
}

// span fills the pixels of row y whose centers lie in [left, right)
func (c *Canvas) span(y int, left, right float64, w int, clr color.RGBA) {
	startX := clampInt(int(math.Ceil(left-0.5)), 0, w)
	endX := clampInt(int(math.Ceil(right-0.5)), 0, w)
	for x := startX; x < endX; x++ {
		c.img.SetRGBA(x, y, clr)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
