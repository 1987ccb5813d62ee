package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/justyntemme/plugbind/pkg/framework/bus"
)

func drawBuses(t *rapid.T) []RawBus {
	n := rapid.IntRange(1, 8).Draw(t, "numBuses")
	buses := make([]RawBus, n)
	for i := range buses {
		buses[i] = RawBus{
			FieldStereo: rapid.Bool().Draw(t, "stereo"),
			FieldOutput: rapid.Bool().Draw(t, "output"),
		}
	}
	return buses
}

func drawParameters(t *rapid.T) []RawParameter {
	names := rapid.SliceOfNDistinct(
		rapid.StringMatching(`[A-Za-z][A-Za-z0-9 ]{0,11}`), 0, 12, rapid.ID[string],
	).Draw(t, "names")

	params := make([]RawParameter, len(names))
	for i, name := range names {
		params[i] = RawParameter{
			FieldName:         name,
			FieldOutput:       rapid.Bool().Draw(t, "output"),
			FieldDefaultValue: rapid.Float64Range(0, 1).Draw(t, "default"),
		}
	}
	return params
}

func TestValidate_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		buses := drawBuses(t)
		params := drawParameters(t)

		a, err := Validate(buses, params)
		require.NoError(t, err)
		b, err := Validate(buses, params)
		require.NoError(t, err)

		assert.True(t, a.Equal(b))
		assert.Equal(t, a.Defaults(), b.Defaults())
		assert.Equal(t, a.Layout(), b.Layout())
		for i := 0; i < a.NumBuses(); i++ {
			ra, _ := a.Role(i)
			rb, _ := b.Role(i)
			assert.Equal(t, ra, rb)
		}
	})
}

func TestValidate_IndicesMatchPositions(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		buses := drawBuses(t)
		params := drawParameters(t)

		iface, err := Validate(buses, params)
		require.NoError(t, err)

		require.Equal(t, len(buses), iface.NumBuses())
		require.Equal(t, len(params), iface.NumParameters())

		for i, raw := range buses {
			b, ok := iface.Bus(i)
			require.True(t, ok)
			assert.Equal(t, raw[FieldStereo], b.Stereo)
			assert.Equal(t, raw[FieldOutput], b.Output)

			role, ok := iface.Role(i)
			require.True(t, ok)
			assert.Equal(t, b.Direction(), role.Direction)

			idx, ok := iface.BusIndex(role)
			require.True(t, ok)
			assert.Equal(t, i, idx)
		}

		for i, raw := range params {
			idx, ok := iface.ParamIndex(raw[FieldName].(string))
			require.True(t, ok)
			assert.Equal(t, i, idx)
		}

		layout := iface.Layout()
		assert.Equal(t, len(buses), layout.NumBusesIn+layout.NumBusesOut)
		_, ok := iface.BusIndex(bus.Input(layout.NumBusesIn))
		assert.False(t, ok)
	})
}

func TestValidate_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		iface, err := Validate(drawBuses(t), drawParameters(t))
		require.NoError(t, err)

		again, err := Validate(iface.Records())
		require.NoError(t, err)
		assert.True(t, iface.Equal(again))
	})
}

func TestValidate_RejectsOutOfRangeDefaults(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.OneOf(
			rapid.Float64Range(-1e6, -1e-9),
			rapid.Float64Range(1+1e-9, 1e6),
		).Draw(t, "value")

		params := drawParameters(t)
		params = append(params, RawParameter{
			FieldName:         "__out_of_range",
			FieldOutput:       false,
			FieldDefaultValue: value,
		})

		_, err := Validate(drawBuses(t), params)
		assert.ErrorIs(t, err, ErrDefaultValueOutOfRange)
	})
}
