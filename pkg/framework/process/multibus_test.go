package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/plugbind/pkg/framework/bus"
	"github.com/justyntemme/plugbind/pkg/framework/descriptor"
)

func channels(n int) [][]float32 {
	ch := make([][]float32, n)
	for i := range ch {
		ch[i] = []float32{float32(i)}
	}
	return ch
}

func TestBusesBind(t *testing.T) {
	iface, err := descriptor.Validate([]descriptor.RawBus{
		{"stereo": true, "output": false},
		{"stereo": false, "output": false},
		{"stereo": true, "output": true},
	}, nil)
	require.NoError(t, err)

	b := NewBuses(iface)
	assert.Equal(t, 2, b.InputBusCount())
	assert.Equal(t, 1, b.OutputBusCount())

	in, out := channels(3), channels(2)
	require.NoError(t, b.Bind(in, out))

	main := b.GetMainInput()
	require.Len(t, main, 2)
	assert.Equal(t, float32(0), main[0][0])
	assert.Equal(t, float32(1), main[1][0])

	aux := b.ByRole(bus.Input(1))
	require.Len(t, aux, 1)
	assert.Equal(t, float32(2), aux[0][0])

	assert.Len(t, b.GetMainOutput(), 2)
	assert.Equal(t, b.Bus(2), b.GetMainOutput())

	assert.Nil(t, b.ByRole(bus.Output(1)))
	assert.Nil(t, b.Bus(7))
}

func TestBusesBindChannelMismatch(t *testing.T) {
	iface, err := descriptor.Validate([]descriptor.RawBus{
		{"stereo": false, "output": false},
		{"stereo": false, "output": true},
	}, nil)
	require.NoError(t, err)

	b := NewBuses(iface)
	assert.EqualError(t, b.Bind(channels(2), channels(1)), "expected 1 input channels, got 2")
	assert.EqualError(t, b.Bind(channels(1), nil), "expected 1 output channels, got 0")
}

func TestBusesBindDoesNotAllocate(t *testing.T) {
	iface, err := descriptor.Validate([]descriptor.RawBus{
		{"stereo": true, "output": false},
		{"stereo": true, "output": true},
	}, nil)
	require.NoError(t, err)

	b := NewBuses(iface)
	in, out := channels(2), channels(2)

	allocs := testing.AllocsPerRun(100, func() {
		_ = b.Bind(in, out)
	})
	assert.Zero(t, allocs)
}
