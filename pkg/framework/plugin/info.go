// Package plugin binds validated plugin interfaces to a running host.
package plugin

import (
	"fmt"
	"strconv"
	"strings"
)

// Info contains plugin metadata
type Info struct {
	ID       string // Unique plugin identifier (e.g., "com.example.myplugin")
	Name     string // Display name
	Version  string // Semantic version (e.g., "1.0.0")
	Vendor   string // Company/developer name
	Website  string
	Category string // Plugin category (e.g., "Fx|Filter", "Instrument")
}

// Validate checks that the metadata is usable by a host
func (i Info) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("plugin ID cannot be empty")
	}
	if i.Name == "" {
		return fmt.Errorf("plugin %s: name cannot be empty", i.ID)
	}

	parts := strings.Split(i.Version, ".")
	if len(parts) != 3 {
		return fmt.Errorf("plugin %s: version %q is not major.minor.patch", i.ID, i.Version)
	}
	for _, p := range parts {
		if _, err := strconv.ParseUint(p, 10, 32); err != nil {
			return fmt.Errorf("plugin %s: version %q is not major.minor.patch", i.ID, i.Version)
		}
	}
	return nil
}

func (i Info) String() string {
	return fmt.Sprintf("%s %s (%s)", i.Name, i.Version, i.ID)
}
