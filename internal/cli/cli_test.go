package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestListCommand(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "comp")
	assert.Contains(t, out, "filter")
	assert.Contains(t, out, "synth_simple")
	assert.Contains(t, out, "Fx|Filter")
}

func TestShowCommand(t *testing.T) {
	out, _, err := execute(t, "show", "filter", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "bw_example_fxpp_ap2 1.0.0")
	assert.Contains(t, out, "input#0")
	assert.Contains(t, out, "output#0")
	assert.Contains(t, out, "1 in / 1 out channels")
	assert.Contains(t, out, "Cutoff")
	assert.Contains(t, out, "0.50")
}

func TestShowBusNames(t *testing.T) {
	out, _, err := execute(t, "show", "synth_simple", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "Audio out")
	assert.Contains(t, out, "0 in / 1 out channels")
}

func TestShowUnknown(t *testing.T) {
	_, _, err := execute(t, "show", "reverb")
	assert.EqualError(t, err, `unknown plugin "reverb" (see 'plugbind list')`)
}

func TestShowRequiresArgument(t *testing.T) {
	_, _, err := execute(t, "show")
	assert.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	out, errOut, err := execute(t, "check", "--log-level", "info")
	require.NoError(t, err)

	assert.Contains(t, out, "ok  filter")
	assert.Contains(t, out, "ok  synth_simple   1 buses, 11 parameters")
	assert.Contains(t, errOut, "[INFO] [comp]")
}

func TestCheckSingle(t *testing.T) {
	out, errOut, err := execute(t, "check", "filter")
	require.NoError(t, err)

	assert.Contains(t, out, "ok  filter")
	assert.NotContains(t, out, "comp")
	assert.Empty(t, errOut, "warn level hides publish messages")
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "list", "--log-level", "loud")
	assert.EqualError(t, err, `unknown log level "loud"`)
}
