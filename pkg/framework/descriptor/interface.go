package descriptor

import (
	"github.com/justyntemme/plugbind/pkg/framework/bus"
	"github.com/justyntemme/plugbind/pkg/framework/param"
)

// Interface is the validated binding of a plugin's buses and parameters.
// Indices equal declaration positions and never change. An Interface is
// immutable and may be read from any goroutine without synchronization.
type Interface struct {
	buses  []bus.Descriptor
	params []param.Descriptor
	roles  []bus.Role
	layout bus.Layout

	busIndexByRole   map[bus.Role]int
	paramIndexByName map[string]int
}

func newInterface(buses []bus.Descriptor, params []param.Descriptor) *Interface {
	iface := &Interface{
		buses:            buses,
		params:           params,
		roles:            bus.Roles(buses),
		layout:           bus.NewLayout(buses),
		busIndexByRole:   make(map[bus.Role]int, len(buses)),
		paramIndexByName: make(map[string]int, len(params)),
	}
	for i, r := range iface.roles {
		iface.busIndexByRole[r] = i
	}
	for i, p := range params {
		iface.paramIndexByName[p.Name] = i
	}
	return iface
}

// NumBuses returns the number of declared buses
func (f *Interface) NumBuses() int {
	return len(f.buses)
}

// NumParameters returns the number of declared parameters
func (f *Interface) NumParameters() int {
	return len(f.params)
}

// Bus returns the bus at index
func (f *Interface) Bus(index int) (bus.Descriptor, bool) {
	if index < 0 || index >= len(f.buses) {
		return bus.Descriptor{}, false
	}
	return f.buses[index], true
}

// Parameter returns the parameter at index
func (f *Interface) Parameter(index int) (param.Descriptor, bool) {
	if index < 0 || index >= len(f.params) {
		return param.Descriptor{}, false
	}
	return f.params[index], true
}

// Buses returns a copy of the buses in index order
func (f *Interface) Buses() []bus.Descriptor {
	out := make([]bus.Descriptor, len(f.buses))
	copy(out, f.buses)
	return out
}

// Parameters returns a copy of the parameters in index order
func (f *Interface) Parameters() []param.Descriptor {
	out := make([]param.Descriptor, len(f.params))
	copy(out, f.params)
	return out
}

// Role returns the role of the bus at index
func (f *Interface) Role(index int) (bus.Role, bool) {
	if index < 0 || index >= len(f.roles) {
		return bus.Role{}, false
	}
	return f.roles[index], true
}

// BusIndex resolves a role such as "first output bus" to a bus index
func (f *Interface) BusIndex(role bus.Role) (int, bool) {
	i, ok := f.busIndexByRole[role]
	return i, ok
}

// ParamIndex resolves a parameter name to its index. Names are case-sensitive.
func (f *Interface) ParamIndex(name string) (int, bool) {
	i, ok := f.paramIndexByName[name]
	return i, ok
}

// Layout returns the channel layout of the buses
func (f *Interface) Layout() bus.Layout {
	l := f.layout
	l.ChannelOffset = make([]int, len(f.layout.ChannelOffset))
	copy(l.ChannelOffset, f.layout.ChannelOffset)
	return l
}

// Defaults returns the default value of every parameter in index order
func (f *Interface) Defaults() []float64 {
	out := make([]float64, len(f.params))
	for i, p := range f.params {
		out[i] = p.DefaultValue
	}
	return out
}

// NewValues creates a runtime value table seeded with the defaults
func (f *Interface) NewValues() *param.Values {
	return param.NewValues(f.params)
}

// Records returns raw records that validate to an equal Interface
func (f *Interface) Records() ([]RawBus, []RawParameter) {
	return Records(f.buses, f.params)
}

// Equal reports whether both interfaces declare the same buses and
// parameters in the same order.
func (f *Interface) Equal(other *Interface) bool {
	if f == nil || other == nil {
		return f == other
	}
	if len(f.buses) != len(other.buses) || len(f.params) != len(other.params) {
		return false
	}
	for i := range f.buses {
		if f.buses[i] != other.buses[i] {
			return false
		}
	}
	for i := range f.params {
		if f.params[i] != other.params[i] {
			return false
		}
	}
	return true
}
