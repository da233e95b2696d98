package devices

import (
	"fmt"
	"os"

	"watchface-monitor/internal/models"

	"gopkg.in/yaml.v3"
)

// DefaultCornerRadius is the raw corner radius assumed for unknown devices and
// for file entries without a cornerRadius key.
const DefaultCornerRadius = 4

// Registry is an immutable table of device reference dimensions, keyed by identifier.
type Registry struct {
	order   []string
	devices map[string]models.Device
}

var builtin = []models.Device{
	{ID: "p65", Name: "REDMI Watch 6", Width: 432, Height: 514, CornerRadius: 102},
	{ID: "o66", Name: "Xiaomi Band 10", Width: 212, Height: 520, CornerRadius: 223},
	{ID: "n67", Name: "Xiaomi Band 9 Pro", Width: 336, Height: 480, CornerRadius: 48},
}

// Default returns the built-in device table.
func Default() *Registry {
	r, err := New(builtin...)
	if err != nil {
		panic("invalid built-in device table: " + err.Error())
	}
	return r
}

// New builds a Registry from the given devices.
//
// Parameters:
//   - devices: Devices in table order. Identifiers must be unique and non-empty,
//     reference width and height must be positive and the corner radius must
//     not be negative. A zero radius means square corners.
//
// Returns:
//   - The registry, or an error describing the first invalid device.
func New(devices ...models.Device) (*Registry, error) {
	r := &Registry{devices: make(map[string]models.Device, len(devices))}
	for _, d := range devices {
		if d.ID == "" {
			return nil, fmt.Errorf("device %q: empty identifier", d.Name)
		}
		if _, dup := r.devices[d.ID]; dup {
			return nil, fmt.Errorf("device %s: duplicate identifier", d.ID)
		}
		if d.Width <= 0 || d.Height <= 0 {
			return nil, fmt.Errorf("device %s: reference dimensions must be positive, got %dx%d", d.ID, d.Width, d.Height)
		}
		if d.CornerRadius < 0 {
			return nil, fmt.Errorf("device %s: corner radius must not be negative, got %d", d.ID, d.CornerRadius)
		}
		r.order = append(r.order, d.ID)
		r.devices[d.ID] = d
	}
	return r, nil
}

type fileDevice struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	CornerRadius *int   `yaml:"cornerRadius"`
}

type file struct {
	Devices []fileDevice `yaml:"devices"`
}

// LoadFile reads a device table from a YAML file.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read device file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse device file: %w", err)
	}

	devices := make([]models.Device, 0, len(f.Devices))
	for _, d := range f.Devices {
		radius := DefaultCornerRadius
		if d.CornerRadius != nil {
			radius = *d.CornerRadius
		}
		devices = append(devices, models.Device{
			ID:           d.ID,
			Name:         d.Name,
			Width:        d.Width,
			Height:       d.Height,
			CornerRadius: radius,
		})
	}
	return New(devices...)
}

// Lookup returns the device registered under id.
func (r *Registry) Lookup(id string) (models.Device, bool) {
	d, ok := r.devices[id]
	return d, ok
}

// DisplayName returns the device's name, or the identifier itself for unknown
// devices and devices without a name.
func (r *Registry) DisplayName(id string) string {
	if d, ok := r.devices[id]; ok && d.Name != "" {
		return d.Name
	}
	return id
}

// IDs returns the registered identifiers in table order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}
