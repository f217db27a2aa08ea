package catalog

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceDevMap/pkg/devmap"
)

// Config controls which files a Catalog reads and how strictly it checks them.
type Config struct {
	// Validation
	RequireAlignment bool // Run devmap.ValidateSLRAlignment on every loaded family (default: true)

	// File selection
	Extensions []string // File extensions LoadDir picks up (default: .yaml, .yml, .json)

	// Family filtering
	OnlyFamilies []string // If set, families outside this list are skipped while loading

	families map[devmap.Family]bool
}

// DefaultConfig returns a Config suitable for most callers.
func DefaultConfig() *Config {
	return &Config{
		RequireAlignment: true,
		Extensions:       []string{".yaml", ".yml", ".json"},
		OnlyFamilies:     nil,
	}
}

// Validate normalizes extensions and resolves the family filter.
func (c *Config) Validate() error {
	if len(c.Extensions) == 0 {
		c.Extensions = DefaultConfig().Extensions
	}
	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Extensions[i] = ext
	}

	c.families = nil
	if len(c.OnlyFamilies) > 0 {
		c.families = make(map[devmap.Family]bool, len(c.OnlyFamilies))
		for _, tag := range c.OnlyFamilies {
			f, err := devmap.ParseFamily(tag)
			if err != nil {
				return fmt.Errorf("catalog: family filter: %w", err)
			}
			c.families[f] = true
		}
	}
	return nil
}

// ShouldLoadFamily reports whether f passes the OnlyFamilies filter.
func (c *Config) ShouldLoadFamily(f devmap.Family) bool {
	if c.families == nil {
		return true
	}
	return c.families[f]
}

// ShouldLoadFile reports whether path has one of the configured extensions.
func (c *Config) ShouldLoadFile(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range c.Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
