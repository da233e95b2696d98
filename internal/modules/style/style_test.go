package style

import (
	"fmt"
	"testing"

	"watchface-monitor/internal/models"
	"watchface-monitor/internal/modules/devices"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_For(t *testing.T) {
	c := NewCalculator(devices.Default())

	tests := []struct {
		id     string
		height int
		css    string
	}{
		{"p65", 95, "width: 80px; height: 95px; border-radius: 18.89px;"},
		{"o66", 196, "width: 80px; height: 196px; border-radius: 84.15px;"},
		{"n67", 114, "width: 80px; height: 114px; border-radius: 11.43px;"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			s := c.For(tt.id)
			assert.Equal(t, DisplayWidth, s.Width)
			assert.Equal(t, tt.height, s.Height)
			assert.Equal(t, tt.css, s.String())
		})
	}
}

func TestCalculator_ForMatchesFormula(t *testing.T) {
	reg := devices.Default()
	c := NewCalculator(reg)

	for _, id := range reg.IDs() {
		d, _ := reg.Lookup(id)
		s := c.For(id)

		assert.Equal(t, DisplayWidth*d.Height/d.Width, s.Height, id)
		want := fmt.Sprintf("border-radius: %.2fpx;", float64(d.CornerRadius)/float64(d.Width)*DisplayWidth)
		assert.Equal(t, want, s.Corner(), id)
	}
}

func TestCompute_CornerRounding(t *testing.T) {
	tests := []struct {
		name        string
		w, h, r, dw int
		want        string
	}{
		{name: "half rounds to even down", w: 640, h: 640, r: 1, dw: 80, want: "border-radius: 0.12px;"},
		{name: "exact half to even up", w: 512, h: 512, r: 3, dw: 64, want: "border-radius: 0.38px;"},
		{name: "exact half to even down", w: 512, h: 512, r: 5, dw: 64, want: "border-radius: 0.62px;"},
		{name: "below half", w: 256, h: 256, r: 1, dw: 80, want: "border-radius: 0.31px;"},
		{name: "zero radius", w: 400, h: 400, r: 0, dw: 80, want: "border-radius: 0.00px;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Compute(tt.w, tt.h, tt.r, tt.dw)
			assert.Equal(t, tt.want, s.Corner())
		})
	}
}

func TestCalculator_SquareCornerDevice(t *testing.T) {
	reg, err := devices.New(models.Device{ID: "sq", Name: "Square", Width: 400, Height: 400, CornerRadius: 0})
	require.NoError(t, err)

	s := NewCalculator(reg).For("sq")
	assert.Equal(t, "width: 80px; height: 80px; border-radius: 0.00px;", s.String())
}

func TestCalculator_UnknownDevice(t *testing.T) {
	s := NewCalculator(devices.Default()).For("zz9")

	assert.Equal(t, s.Width, s.Height)
	assert.Equal(t, "width: 80px; height: 80px;", s.Size())
	assert.Equal(t, "border-radius: 320.00px;", s.Corner())
}

func TestCompute_NonPositiveWidth(t *testing.T) {
	for _, w := range []int{0, -10} {
		s := Compute(w, 100, 30, DisplayWidth)
		assert.Equal(t, "border-radius: 4px;", s.Corner())
		assert.Equal(t, 0, s.Height)
	}
}

func TestCompute_CustomDisplayWidth(t *testing.T) {
	s := Compute(200, 400, 50, 100)

	assert.Equal(t, "width: 100px; height: 200px;", s.Size())
	assert.Equal(t, "border-radius: 25.00px;", s.Corner())
}
