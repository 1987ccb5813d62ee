// Package param describes plugin parameters and holds their runtime values.
package param

import (
	"fmt"
	"math"
)

// Descriptor is one declared parameter. Its position in the declaring
// sequence is its parameter index.
type Descriptor struct {
	Name         string
	ShortName    string
	Units        string
	Output       bool
	Bypass       bool
	Steps        int
	DefaultValue float64 // normalized (0-1)
}

// Automatable reports whether the host may write this parameter.
// Output parameters are written by the plugin only (meters, levels).
func (d Descriptor) Automatable() bool {
	return !d.Output
}

// Discrete reports whether the parameter has a finite number of steps
func (d Descriptor) Discrete() bool {
	return d.Steps > 0
}

// Clamp limits a normalized value to 0-1 and snaps it to the step grid
// of discrete parameters. NaN maps to the default value.
func (d Descriptor) Clamp(value float64) float64 {
	if math.IsNaN(value) {
		return d.DefaultValue
	}
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	if d.Steps > 0 {
		steps := float64(d.Steps)
		value = math.Round(value*steps) / steps
	}
	return value
}

// FormatValue returns a display string for a normalized value
func (d Descriptor) FormatValue(normalized float64) string {
	var s string
	if d.Steps > 0 {
		s = fmt.Sprintf("%.0f", math.Round(d.Clamp(normalized)*float64(d.Steps)))
	} else {
		s = fmt.Sprintf("%.2f", normalized)
	}
	if d.Units != "" {
		s += " " + d.Units
	}
	return s
}
