// Package process maps a plugin interface's bus layout onto flat channel
// buffers as delivered by a host.
package process

import (
	"fmt"

	"github.com/justyntemme/plugbind/pkg/framework/bus"
	"github.com/justyntemme/plugbind/pkg/framework/descriptor"
)

// BusBuffers represents audio buffers for a single bus
type BusBuffers struct {
	Channels [][]float32
	Bus      bus.Descriptor
	Role     bus.Role
}

// Buses splits flat input and output channel arrays into per-bus views.
// Create it once per binding and call Bind every block; Bind does not
// allocate.
type Buses struct {
	layout  bus.Layout
	buses   []BusBuffers
	inputs  []int // bus indices of input buses, by ordinal
	outputs []int // bus indices of output buses, by ordinal
}

// NewBuses prepares per-bus views for an interface
func NewBuses(iface *descriptor.Interface) *Buses {
	b := &Buses{
		layout: iface.Layout(),
		buses:  make([]BusBuffers, iface.NumBuses()),
	}
	for i, d := range iface.Buses() {
		role, _ := iface.Role(i)
		b.buses[i] = BusBuffers{Bus: d, Role: role}
		if d.Output {
			b.outputs = append(b.outputs, i)
		} else {
			b.inputs = append(b.inputs, i)
		}
	}
	return b
}

// Bind points every bus view at its channels within in and out. The
// channel counts must match the layout.
func (b *Buses) Bind(in, out [][]float32) error {
	if len(in) != b.layout.NumChannelsIn {
		return fmt.Errorf("expected %d input channels, got %d", b.layout.NumChannelsIn, len(in))
	}
	if len(out) != b.layout.NumChannelsOut {
		return fmt.Errorf("expected %d output channels, got %d", b.layout.NumChannelsOut, len(out))
	}

	for i := range b.buses {
		src := in
		if b.buses[i].Bus.Output {
			src = out
		}
		first := b.layout.ChannelOffset[i]
		n := b.buses[i].Bus.ChannelCount()
		b.buses[i].Channels = src[first : first+n : first+n]
	}
	return nil
}

// Bus returns the buffers of the bus at index
func (b *Buses) Bus(index int) [][]float32 {
	if index >= 0 && index < len(b.buses) {
		return b.buses[index].Channels
	}
	return nil
}

// ByRole returns the buffers of the bus with a role, e.g. bus.Output(0)
func (b *Buses) ByRole(role bus.Role) [][]float32 {
	list := b.inputs
	if role.Direction == bus.DirectionOutput {
		list = b.outputs
	}
	if role.Ordinal >= 0 && role.Ordinal < len(list) {
		return b.buses[list[role.Ordinal]].Channels
	}
	return nil
}

// GetMainInput returns the first input bus buffers
func (b *Buses) GetMainInput() [][]float32 {
	return b.ByRole(bus.Input(0))
}

// GetMainOutput returns the first output bus buffers
func (b *Buses) GetMainOutput() [][]float32 {
	return b.ByRole(bus.Output(0))
}

// InputBusCount returns the number of input buses
func (b *Buses) InputBusCount() int {
	return len(b.inputs)
}

// OutputBusCount returns the number of output buses
func (b *Buses) OutputBusCount() int {
	return len(b.outputs)
}
