// Package bus describes plugin audio buses and their channel layout.
package bus

import "fmt"

// Direction represents the bus direction
type Direction int32

const (
	// DirectionInput represents input bus
	DirectionInput Direction = 0
	// DirectionOutput represents output bus
	DirectionOutput Direction = 1
)

// String returns "input" or "output".
func (d Direction) String() string {
	if d == DirectionOutput {
		return "output"
	}
	return "input"
}

// Descriptor is one declared audio bus. Its position in the declaring
// sequence is its bus index.
type Descriptor struct {
	Name   string // optional display name, e.g. "Audio out"
	Stereo bool
	Output bool
}

// Direction returns the bus direction
func (d Descriptor) Direction() Direction {
	if d.Output {
		return DirectionOutput
	}
	return DirectionInput
}

// ChannelCount returns 2 for stereo buses and 1 for mono buses
func (d Descriptor) ChannelCount() int {
	if d.Stereo {
		return 2
	}
	return 1
}

// Role names a bus by direction and ordinal, e.g. the first output bus is
// Role{DirectionOutput, 0}.
type Role struct {
	Direction Direction
	Ordinal   int
}

// Input returns the role of the n-th input bus
func Input(n int) Role { return Role{Direction: DirectionInput, Ordinal: n} }

// Output returns the role of the n-th output bus
func Output(n int) Role { return Role{Direction: DirectionOutput, Ordinal: n} }

func (r Role) String() string {
	return fmt.Sprintf("%s#%d", r.Direction, r.Ordinal)
}

// Roles assigns a role to every bus in declaration order.
func Roles(buses []Descriptor) []Role {
	roles := make([]Role, len(buses))
	var ins, outs int
	for i, b := range buses {
		if b.Output {
			roles[i] = Output(outs)
			outs++
		} else {
			roles[i] = Input(ins)
			ins++
		}
	}
	return roles
}

// Layout is the channel layout derived from a bus list
type Layout struct {
	NumBusesIn     int
	NumBusesOut    int
	NumChannelsIn  int
	NumChannelsOut int

	// ChannelOffset[i] is the first channel of bus i within the flat
	// channel array of its direction.
	ChannelOffset []int
}

// NewLayout computes the channel layout for buses
func NewLayout(buses []Descriptor) Layout {
	l := Layout{ChannelOffset: make([]int, len(buses))}
	for i, b := range buses {
		if b.Output {
			l.ChannelOffset[i] = l.NumChannelsOut
			l.NumChannelsOut += b.ChannelCount()
			l.NumBusesOut++
		} else {
			l.ChannelOffset[i] = l.NumChannelsIn
			l.NumChannelsIn += b.ChannelCount()
			l.NumBusesIn++
		}
	}
	return l
}

// BusCount returns the number of buses in a direction
func (l Layout) BusCount(direction Direction) int {
	if direction == DirectionOutput {
		return l.NumBusesOut
	}
	return l.NumBusesIn
}

// ChannelCount returns the total channels in a direction
func (l Layout) ChannelCount(direction Direction) int {
	if direction == DirectionOutput {
		return l.NumChannelsOut
	}
	return l.NumChannelsIn
}
