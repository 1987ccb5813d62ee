package descriptor

import (
	"encoding/json"
	"math"

	"github.com/justyntemme/plugbind/pkg/framework/bus"
	"github.com/justyntemme/plugbind/pkg/framework/param"
)

// Validator checks raw descriptors against engine limits. The zero value
// has no limits. A Validator holds no mutable state and may be shared.
type Validator struct {
	MaxBuses      int // 0 means unlimited
	MaxParameters int // 0 means unlimited
}

// NewValidator creates a validator without limits
func NewValidator() *Validator {
	return &Validator{}
}

// WithMaxBuses limits the number of declared buses
func (v *Validator) WithMaxBuses(n int) *Validator {
	v.MaxBuses = n
	return v
}

// WithMaxParameters limits the number of declared parameters
func (v *Validator) WithMaxParameters(n int) *Validator {
	v.MaxParameters = n
	return v
}

// Validate checks raw buses and parameters without engine limits.
// See Validator.Validate.
func Validate(rawBuses []RawBus, rawParameters []RawParameter) (*Interface, error) {
	return NewValidator().Validate(rawBuses, rawParameters)
}

// Validate checks raw buses and parameters and binds them into an
// Interface. Checks run in a fixed order and stop at the first violation:
// empty bus list, limits, bus fields, parameter fields, default ranges,
// duplicate names. On error no Interface is returned.
func (v *Validator) Validate(rawBuses []RawBus, rawParameters []RawParameter) (*Interface, error) {
	if len(rawBuses) == 0 {
		return nil, ErrNoBuses
	}
	if v.MaxBuses > 0 && len(rawBuses) > v.MaxBuses {
		return nil, &ConfigError{Kind: KindTooManyBuses, Limit: v.MaxBuses}
	}
	if v.MaxParameters > 0 && len(rawParameters) > v.MaxParameters {
		return nil, &ConfigError{Kind: KindTooManyParameters, Limit: v.MaxParameters}
	}

	buses := make([]bus.Descriptor, len(rawBuses))
	for i, raw := range rawBuses {
		b, err := parseBus(i, raw)
		if err != nil {
			return nil, err
		}
		buses[i] = b
	}

	params := make([]param.Descriptor, len(rawParameters))
	for i, raw := range rawParameters {
		p, err := parseParameter(i, raw)
		if err != nil {
			return nil, err
		}
		params[i] = p
	}

	for _, p := range params {
		if p.DefaultValue < 0 || p.DefaultValue > 1 {
			return nil, &ConfigError{Kind: KindDefaultValueOutOfRange, Name: p.Name, Value: p.DefaultValue}
		}
	}

	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		if _, dup := seen[p.Name]; dup {
			return nil, &ConfigError{Kind: KindDuplicateParameterName, Name: p.Name}
		}
		seen[p.Name] = struct{}{}
	}

	return newInterface(buses, params), nil
}

func parseBus(index int, raw RawBus) (bus.Descriptor, error) {
	stereo, ok := raw[FieldStereo].(bool)
	if !ok {
		return bus.Descriptor{}, invalidBusField(index, FieldStereo)
	}
	output, ok := raw[FieldOutput].(bool)
	if !ok {
		return bus.Descriptor{}, invalidBusField(index, FieldOutput)
	}
	d := bus.Descriptor{Stereo: stereo, Output: output}
	if v, present := raw[FieldName]; present {
		if d.Name, ok = v.(string); !ok {
			return bus.Descriptor{}, invalidBusField(index, FieldName)
		}
	}
	return d, nil
}

func parseParameter(index int, raw RawParameter) (param.Descriptor, error) {
	var p param.Descriptor

	name, ok := raw[FieldName].(string)
	if !ok || name == "" {
		return p, invalidParameterField(index, FieldName)
	}
	p.Name = name

	if p.Output, ok = raw[FieldOutput].(bool); !ok {
		return p, invalidParameterField(index, FieldOutput)
	}

	def, ok := toFloat(raw[FieldDefaultValue])
	if !ok || math.IsNaN(def) || math.IsInf(def, 0) {
		return p, invalidParameterField(index, FieldDefaultValue)
	}
	p.DefaultValue = def

	p.ShortName = name
	if v, present := raw[FieldShortName]; present {
		s, ok := v.(string)
		if !ok {
			return p, invalidParameterField(index, FieldShortName)
		}
		if s != "" {
			p.ShortName = s
		}
	}

	if v, present := raw[FieldUnits]; present {
		if p.Units, ok = v.(string); !ok {
			return p, invalidParameterField(index, FieldUnits)
		}
	}

	if v, present := raw[FieldSteps]; present {
		steps, ok := toInt(v)
		if !ok || steps < 0 {
			return p, invalidParameterField(index, FieldSteps)
		}
		p.Steps = steps
	}

	if v, present := raw[FieldBypass]; present {
		if p.Bypass, ok = v.(bool); !ok {
			return p, invalidParameterField(index, FieldBypass)
		}
	}

	return p, nil
}

// toFloat accepts every Go numeric kind plus json.Number
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// toInt accepts integers and integral floats
func toInt(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
