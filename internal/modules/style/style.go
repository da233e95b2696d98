package style

import (
	"fmt"

	"watchface-monitor/internal/modules/devices"
)

// DisplayWidth is the fixed width, in px, of preview images in the report.
const DisplayWidth = 80

// fallbackRadius is used when the reference width cannot serve as a ratio basis.
const fallbackRadius = 4

// Style is the display geometry of a device's preview images.
type Style struct {
	Width    int
	Height   int
	Radius   float64 // unrounded; Corner formats it to 2 decimals
	fallback bool
}

// Size returns the CSS width and height declarations.
func (s Style) Size() string {
	return fmt.Sprintf("width: %dpx; height: %dpx;", s.Width, s.Height)
}

// Corner returns the CSS border-radius declaration.
func (s Style) Corner() string {
	if s.fallback {
		return fmt.Sprintf("border-radius: %dpx;", fallbackRadius)
	}
	return fmt.Sprintf("border-radius: %.2fpx;", s.Radius)
}

// String returns the full inline style.
func (s Style) String() string {
	return s.Size() + " " + s.Corner()
}

// Compute scales a device's reference geometry to the given display width.
// The corner radius is scaled by its ratio to the reference width so that
// rounding stays proportional across resolutions.
func Compute(width, height, radius, displayWidth int) Style {
	if width <= 0 {
		return Style{Width: displayWidth, Radius: fallbackRadius, fallback: true}
	}
	ratio := float64(radius) / float64(width)
	return Style{
		Width:  displayWidth,
		Height: int(float64(displayWidth) * float64(height) / float64(width)),
		Radius: ratio * float64(displayWidth),
	}
}

// Calculator computes display styles from a device table.
type Calculator struct {
	devices      *devices.Registry
	displayWidth int
}

// NewCalculator creates a Calculator over the given device table using DisplayWidth.
func NewCalculator(reg *devices.Registry) *Calculator {
	return &Calculator{devices: reg, displayWidth: DisplayWidth}
}

// For returns the display style for a device. Unknown devices get a 1x1
// reference with the default corner radius.
func (c *Calculator) For(id string) Style {
	w, h, r := 1, 1, devices.DefaultCornerRadius
	if d, ok := c.devices.Lookup(id); ok {
		w, h, r = d.Width, d.Height, d.CornerRadius
	}
	return Compute(w, h, r, c.displayWidth)
}
