package state

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/plugbind/pkg/framework/param"
)

func newValues() *param.Values {
	return param.NewValues([]param.Descriptor{
		param.New("Cutoff").Default(0.5).Build(),
		param.New("Q").Build(),
		param.New("Level").Output().Build(),
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	src := newValues()
	src.Set(0, 0.8)
	src.Set(1, 0.3)
	src.Set(2, 0.9)

	var buf bytes.Buffer
	require.NoError(t, NewManager(src).Save(&buf))

	dst := newValues()
	require.NoError(t, NewManager(dst).Load(&buf))

	got := dst.Snapshot()
	assert.Equal(t, 0.8, got[0])
	assert.Equal(t, 0.3, got[1])
	assert.Equal(t, 0.0, got[2], "output parameters are not restored")
}

func TestLoadSkipsUnknownIndices(t *testing.T) {
	big := param.NewValues([]param.Descriptor{
		param.New("A").Build(),
		param.New("B").Build(),
		param.New("C").Build(),
		param.New("D").Build(),
	})
	big.Set(0, 0.1)
	big.Set(3, 0.4)

	var buf bytes.Buffer
	require.NoError(t, NewManager(big).Save(&buf))

	small := param.NewValues([]param.Descriptor{param.New("A").Build()})
	require.NoError(t, NewManager(small).Load(&buf))
	assert.Equal(t, []float64{0.1}, small.Snapshot())
}

func TestLoadErrors(t *testing.T) {
	t.Run("bad_magic", func(t *testing.T) {
		err := NewManager(newValues()).Load(bytes.NewReader([]byte("VST3GO\x01\x00\x00\x00")))
		assert.EqualError(t, err, "invalid state format")
	})

	t.Run("newer_version", func(t *testing.T) {
		var buf bytes.Buffer
		buf.WriteString(magic)
		binary.Write(&buf, binary.LittleEndian, uint32(2))

		err := NewManager(newValues()).Load(&buf)
		assert.ErrorContains(t, err, "newer than supported")
	})

	t.Run("truncated", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewManager(newValues()).Save(&buf))
		data := buf.Bytes()[:buf.Len()-4]

		err := NewManager(newValues()).Load(bytes.NewReader(data))
		assert.ErrorContains(t, err, "read parameter 2")
	})

	t.Run("truncated_leaves_values_unchanged", func(t *testing.T) {
		var buf bytes.Buffer
		buf.WriteString(magic)
		binary.Write(&buf, binary.LittleEndian, uint32(1))
		binary.Write(&buf, binary.LittleEndian, uint32(2))
		binary.Write(&buf, binary.LittleEndian, uint32(0))
		binary.Write(&buf, binary.LittleEndian, 0.9)
		binary.Write(&buf, binary.LittleEndian, uint32(1))

		dst := newValues()
		err := NewManager(dst).Load(&buf)
		assert.ErrorContains(t, err, "read parameter 1")
		assert.Equal(t, []float64{0.5, 0, 0}, dst.Snapshot())
	})

	t.Run("empty", func(t *testing.T) {
		err := NewManager(newValues()).Load(bytes.NewReader(nil))
		assert.ErrorContains(t, err, "read state header")
	})
}
