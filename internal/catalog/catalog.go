// Package catalog holds the descriptor sets of the bundled example plugins.
package catalog

import (
	"sort"

	"github.com/justyntemme/plugbind/pkg/framework/bus"
	"github.com/justyntemme/plugbind/pkg/framework/descriptor"
	"github.com/justyntemme/plugbind/pkg/framework/param"
	"github.com/justyntemme/plugbind/pkg/framework/plugin"
)

// Entry is one example plugin declaration in raw form
type Entry struct {
	Info       plugin.Info
	Buses      []descriptor.RawBus
	Parameters []descriptor.RawParameter
}

// Validate binds the entry with the default validator
func (e Entry) Validate() (*descriptor.Interface, error) {
	return descriptor.Validate(e.Buses, e.Parameters)
}

var entries = map[string]func() Entry{
	"filter":       filter,
	"synth_simple": synthSimple,
	"comp":         comp,
}

// Names returns the catalog entry names in sorted order
func Names() []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a fresh copy of the named entry
func Lookup(name string) (Entry, bool) {
	fn, ok := entries[name]
	if !ok {
		return Entry{}, false
	}
	return fn(), true
}

func filter() Entry {
	return Entry{
		Info: plugin.Info{
			ID:       "com.orastron.bw_example_fxpp_ap2",
			Name:     "bw_example_fxpp_ap2",
			Version:  "1.0.0",
			Vendor:   "Orastron",
			Website:  "https://www.orastron.com/",
			Category: "Fx|Filter",
		},
		Buses: []descriptor.RawBus{
			{"stereo": false, "output": false},
			{"stereo": false, "output": true},
		},
		Parameters: []descriptor.RawParameter{
			{"name": "Cutoff", "output": false, "defaultValue": 0.5},
			{"name": "Q", "output": false, "defaultValue": 0.0},
		},
	}
}

func synthSimple() Entry {
	p := func(name, short, units string, output bool, def float64) descriptor.RawParameter {
		return descriptor.RawParameter{
			"name":         name,
			"shortName":    short,
			"units":        units,
			"output":       output,
			"defaultValue": def,
		}
	}
	return Entry{
		Info: plugin.Info{
			ID:       "com.orastron.bw_example_synth_simple",
			Name:     "bw_example_synth_simple",
			Version:  "1.0.0",
			Vendor:   "Orastron",
			Website:  "https://www.orastron.com/",
			Category: "Instrument|Synth",
		},
		Buses:      busRecords(bus.NewBuilder().WithMonoOutput().Named("Audio out").Build()),
		Parameters: []descriptor.RawParameter{
			p("Volume", "Volume", "", false, 0.5),
			p("Master tune", "Master tune", "st", false, 0.5),
			p("Portamento", "Portamento", "s", false, 0),
			p("Pulse width", "PW", "%", false, 0.5),
			p("Cutoff", "Cutoff", "Hz", false, 1),
			p("Q", "Q", "", false, 0),
			p("Attack", "Attack", "s", false, 0),
			p("Decay", "Decay", "s", false, 0),
			p("Sustain", "Sustain", "%", false, 1),
			p("Release", "Release", "s", false, 0),
			p("Level", "Level", "", true, 0),
		},
	}
}

func comp() Entry {
	buses, params := descriptor.Records(bus.EffectMono(), []param.Descriptor{
		param.New("Threshold").Units("dBFS").Default(1).Build(),
		param.New("Ratio").Build(),
		param.New("Attack").Units("s").Build(),
		param.New("Release").Units("s").Build(),
		param.New("Gain").Units("dB").Build(),
	})
	return Entry{
		Info: plugin.Info{
			ID:       "com.orastron.bw_example_fx_comp",
			Name:     "bw_example_fx_comp",
			Version:  "1.0.0",
			Vendor:   "Orastron",
			Website:  "https://www.orastron.com/",
			Category: "Fx|Dynamics",
		},
		Buses:      buses,
		Parameters: params,
	}
}

func busRecords(buses []bus.Descriptor) []descriptor.RawBus {
	raw, _ := descriptor.Records(buses, nil)
	return raw
}
