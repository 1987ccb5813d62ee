package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	p := New("Master tune").
		ShortName("Tune").
		Units("st").
		Default(0.5).
		Build()

	assert.Equal(t, "Master tune", p.Name)
	assert.Equal(t, "Tune", p.ShortName)
	assert.Equal(t, "st", p.Units)
	assert.Equal(t, 0.5, p.DefaultValue)
	assert.True(t, p.Automatable())
	assert.False(t, p.Discrete())

	level := New("Level").Output().Build()
	assert.Equal(t, "Level", level.ShortName)
	assert.False(t, level.Automatable())

	bypass := New("Bypass").Bypass().Build()
	assert.True(t, bypass.Bypass)
	assert.True(t, bypass.Discrete())
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		param Descriptor
		in    float64
		want  string
	}{
		{New("Cutoff").Units("Hz").Build(), 0.5, "0.50 Hz"},
		{New("Q").Build(), 0, "0.00"},
		{New("Mode").Steps(3).Build(), 2.0 / 3.0, "2"},
		{New("Mode").Steps(3).Build(), 1.2, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.param.FormatValue(tt.in))
		})
	}
}
