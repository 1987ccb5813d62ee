// Package descriptor validates raw bus and parameter declarations and binds
// them into an immutable, indexed plugin interface.
package descriptor

import (
	"github.com/justyntemme/plugbind/pkg/framework/bus"
	"github.com/justyntemme/plugbind/pkg/framework/param"
)

// Record field names, as written by plugin configuration files.
const (
	FieldStereo       = "stereo"
	FieldOutput       = "output"
	FieldName         = "name"
	FieldDefaultValue = "defaultValue"
	FieldShortName    = "shortName"
	FieldUnits        = "units"
	FieldSteps        = "steps"
	FieldBypass       = "bypass"
)

// RawBus is an untyped bus record as produced by a configuration loader.
// Unknown keys are ignored.
type RawBus map[string]any

// RawParameter is an untyped parameter record as produced by a configuration
// loader. Unknown keys are ignored.
type RawParameter map[string]any

// BusRecord converts a typed bus into its raw record
func BusRecord(b bus.Descriptor) RawBus {
	raw := RawBus{
		FieldStereo: b.Stereo,
		FieldOutput: b.Output,
	}
	if b.Name != "" {
		raw[FieldName] = b.Name
	}
	return raw
}

// ParameterRecord converts a typed parameter into its raw record
func ParameterRecord(p param.Descriptor) RawParameter {
	return RawParameter{
		FieldName:         p.Name,
		FieldShortName:    p.ShortName,
		FieldUnits:        p.Units,
		FieldOutput:       p.Output,
		FieldBypass:       p.Bypass,
		FieldSteps:        p.Steps,
		FieldDefaultValue: p.DefaultValue,
	}
}

// Records converts typed declarations into raw records
func Records(buses []bus.Descriptor, params []param.Descriptor) ([]RawBus, []RawParameter) {
	rawBuses := make([]RawBus, len(buses))
	for i, b := range buses {
		rawBuses[i] = BusRecord(b)
	}
	rawParams := make([]RawParameter, len(params))
	for i, p := range params {
		rawParams[i] = ParameterRecord(p)
	}
	return rawBuses, rawParams
}
