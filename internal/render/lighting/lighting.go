package lighting

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DirectionalLight is a light with parallel rays, like the sun
type DirectionalLight struct {
	Intensity float64    // Light intensity (0.0 to 1.0)
	Direction mgl64.Vec3 // Direction the light travels
}

// Manager handles the lights of one frame
type Manager struct {
	ambientLight float64 // Global ambient light level (0.0 = pitch black, 1.0 = fully lit)
	directional  []DirectionalLight
}

// NewManager creates a new lighting manager with full ambient light,
// so unlit scenes render their flat colors.
func NewManager() *Manager {
	return &Manager{
		ambientLight: 1.0,
	}
}

// Reset restores full ambient light and removes directional lights
func (m *Manager) Reset() {
	m.ambientLight = 1.0
	m.directional = m.directional[:0]
}

// SetAmbientLight sets the global ambient light level
func (m *Manager) SetAmbientLight(level float64) {
	m.ambientLight = level
}

// GetAmbientLight returns the current ambient light level
func (m *Manager) GetAmbientLight() float64 {
	return m.ambientLight
}

// AddDirectionalLight adds a directional light. A zero direction is ignored.
func (m *Manager) AddDirectionalLight(intensity float64, direction mgl64.Vec3) {
	if direction.Len() == 0 {
		return
	}
	m.directional = append(m.directional, DirectionalLight{
		Intensity: intensity,
		Direction: direction.Normalize(),
	})
}

// GetDirectionalLights returns the active directional lights
func (m *Manager) GetDirectionalLights() []DirectionalLight {
	return m.directional
}

// Shade returns base lit by ambient light plus every directional light
// hitting a surface with the given outward normal.
func (m *Manager) Shade(base color.Color, normal mgl64.Vec3) color.RGBA {
	level := m.ambientLight
	if normal.Len() > 0 {
		n := normal.Normalize()
		for _, light := range m.directional {
			if d := n.Dot(light.Direction.Mul(-1)); d > 0 {
				level += light.Intensity * d
			}
		}
	}
	level = math.Max(0, math.Min(1, level))

	c := color.RGBAModel.Convert(base).(color.RGBA)
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * level)),
		G: uint8(math.Round(float64(c.G) * level)),
		B: uint8(math.Round(float64(c.B) * level)),
		A: c.A,
	}
}
