// Package state saves and restores parameter values by stable index.
package state

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/justyntemme/plugbind/pkg/framework/param"
)

const magic = "PLGBND"

// Manager handles parameter state saving and loading
type Manager struct {
	version uint32
	values  *param.Values
}

// NewManager creates a state manager for a value table
func NewManager(values *param.Values) *Manager {
	return &Manager{
		version: 1,
		values:  values,
	}
}

// Save writes the parameter values to a writer
func (m *Manager) Save(w io.Writer) error {
	// Write magic header
	if _, err := w.Write([]byte(magic)); err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, m.version); err != nil {
		return err
	}

	count := uint32(m.values.Len())
	if err := binary.Write(w, binary.LittleEndian, count); err != nil {
		return err
	}

	for i, value := range m.values.Snapshot() {
		if err := binary.Write(w, binary.LittleEndian, uint32(i)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, value); err != nil {
			return err
		}
	}

	return nil
}

// Load reads parameter values from a reader. Unknown indices and output
// parameters are skipped. On error no value is changed.
func (m *Manager) Load(r io.Reader) error {
	header := make([]byte, len(magic))
	if _, err := io.ReadFull(r, header); err != nil {
		return fmt.Errorf("read state header: %w", err)
	}
	if string(header) != magic {
		return fmt.Errorf("invalid state format")
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return fmt.Errorf("read state version: %w", err)
	}
	if version > m.version {
		return fmt.Errorf("state version %d is newer than supported version %d", version, m.version)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("read parameter count: %w", err)
	}

	type entry struct {
		index uint32
		value float64
	}
	entries := make([]entry, 0, min(count, 1024))

	for i := uint32(0); i < count; i++ {
		var e entry
		if err := binary.Read(r, binary.LittleEndian, &e.index); err != nil {
			return fmt.Errorf("read parameter %d: %w", i, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &e.value); err != nil {
			return fmt.Errorf("read parameter %d: %w", i, err)
		}
		entries = append(entries, e)
	}

	// Nothing is applied until the whole stream has parsed.
	for _, e := range entries {
		d, ok := m.values.Descriptor(int(e.index))
		if !ok || d.Output {
			continue
		}
		m.values.Set(int(e.index), e.value)
	}

	return nil
}
