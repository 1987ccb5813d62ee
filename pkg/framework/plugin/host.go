package plugin

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/justyntemme/plugbind/pkg/framework/debug"
	"github.com/justyntemme/plugbind/pkg/framework/descriptor"
	"github.com/justyntemme/plugbind/pkg/framework/param"
	"github.com/justyntemme/plugbind/pkg/framework/process"
	"github.com/justyntemme/plugbind/pkg/framework/state"
)

// ErrNotLoaded is returned by state operations before the first Load.
var ErrNotLoaded = errors.New("plugin: no binding loaded")

// Binding pairs a validated interface with its runtime state. Buses is
// owned by the audio thread.
type Binding struct {
	Interface *descriptor.Interface
	Values    *param.Values
	Buses     *process.Buses
}

// Host owns the binding currently in use by a plugin instance. Loads are
// serialized; Current is lock-free so the audio thread can read it every
// block and finish processing against the binding it already holds.
type Host struct {
	info      Info
	validator *descriptor.Validator
	logger    *debug.Logger

	mu      sync.Mutex // serializes Load
	current atomic.Pointer[Binding]
}

// NewHost creates a host for a plugin. A nil validator applies no engine
// limits; a nil logger uses debug.Default.
func NewHost(info Info, validator *descriptor.Validator, logger *debug.Logger) *Host {
	if validator == nil {
		validator = descriptor.NewValidator()
	}
	if logger == nil {
		logger = debug.Default()
	}
	return &Host{
		info:      info,
		validator: validator,
		logger:    logger,
	}
}

// Info returns the plugin metadata
func (h *Host) Info() Info {
	return h.info
}

// Current returns the published binding, or nil before the first Load.
func (h *Host) Current() *Binding {
	return h.current.Load()
}

// Load validates a descriptor set and publishes it. Values of parameters
// that keep their name and direction carry over from the previous binding;
// others start at their defaults. On error the previous binding stays
// published.
func (h *Host) Load(rawBuses []descriptor.RawBus, rawParameters []descriptor.RawParameter) (*Binding, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	iface, err := h.validator.Validate(rawBuses, rawParameters)
	if err != nil {
		h.logger.Error("%s: rejected descriptor: %v", h.info.Name, err)
		return nil, err
	}

	next := &Binding{
		Interface: iface,
		Values:    iface.NewValues(),
		Buses:     process.NewBuses(iface),
	}

	prev := h.current.Load()
	var carried []carry
	if prev != nil {
		carried = carryValues(prev, next)
		h.logger.Debug("%s: carried %d of %d parameter values", h.info.Name, len(carried), iface.NumParameters())
	}

	h.current.Store(next)

	// Writers still holding prev may have changed it since the copy.
	if n := recarryValues(prev, next, carried); n > 0 {
		h.logger.Debug("%s: re-carried %d values written during publish", h.info.Name, n)
	}

	layout := iface.Layout()
	h.logger.Info("%s: published %d buses (%d in/%d out channels), %d parameters",
		h.info.Name, iface.NumBuses(), layout.NumChannelsIn, layout.NumChannelsOut, iface.NumParameters())

	return next, nil
}

// carry records one value copied from prev index to next index.
type carry struct {
	prev, next int
	value      float64
}

func carryValues(prev, next *Binding) []carry {
	var carried []carry
	for i, p := range next.Interface.Parameters() {
		j, ok := prev.Interface.ParamIndex(p.Name)
		if !ok {
			continue
		}
		old, _ := prev.Interface.Parameter(j)
		if old.Output != p.Output {
			continue
		}
		v, _ := prev.Values.Get(j)
		next.Values.Set(i, v)
		carried = append(carried, carry{prev: j, next: i, value: v})
	}
	return carried
}

// recarryValues copies values that changed in prev after carryValues ran.
// Values that did not change in prev are left alone so writes already made
// to next win.
func recarryValues(prev, next *Binding, carried []carry) int {
	n := 0
	for _, c := range carried {
		v, _ := prev.Values.Get(c.prev)
		if v == c.value {
			continue
		}
		next.Values.Set(c.next, v)
		n++
	}
	return n
}

// SaveState writes the current parameter values
func (h *Host) SaveState(w io.Writer) error {
	b := h.current.Load()
	if b == nil {
		return ErrNotLoaded
	}
	return state.NewManager(b.Values).Save(w)
}

// LoadState restores parameter values into the current binding
func (h *Host) LoadState(r io.Reader) error {
	b := h.current.Load()
	if b == nil {
		return ErrNotLoaded
	}
	if err := state.NewManager(b.Values).Load(r); err != nil {
		h.logger.Warn("%s: state not restored: %v", h.info.Name, err)
		return err
	}
	return nil
}
