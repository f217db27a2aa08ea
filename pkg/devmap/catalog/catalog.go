// Package catalog loads device map descriptions from YAML or JSON files and
// keeps the validated descriptors for lookup by family.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v2"

	"github.com/OpenTraceLab/OpenTraceDevMap/pkg/devmap"
)

// ErrDuplicateFamily is returned when a file describes a family that an
// earlier file already provided.
var ErrDuplicateFamily = errors.New("duplicate family")

// ErrDuplicateKey is returned when a JSON object repeats a key.
var ErrDuplicateKey = errors.New("duplicate key")

// Catalog is an in-memory set of validated descriptors, at most one per
// family. Loading takes the write lock; lookups may run concurrently.
type Catalog struct {
	mu          sync.RWMutex
	cfg         *Config
	descriptors map[devmap.Family]*devmap.Descriptor
	sources     map[devmap.Family]string
}

// New creates an empty catalog. A nil config means DefaultConfig.
func New(cfg *Config) (*Catalog, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Catalog{
		cfg:         cfg,
		descriptors: make(map[devmap.Family]*devmap.Descriptor),
		sources:     make(map[devmap.Family]string),
	}, nil
}

// Decode turns the contents of a description file into the generic form
// accepted by devmap.ParseRoot. Files ending in .json are read with
// encoding/json (numbers kept exact); everything else is YAML. A mapping
// that repeats a key is rejected in both formats.
func Decode(name string, data []byte) (any, error) {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		raw, err := decodeJSON(data)
		if err != nil {
			return nil, fmt.Errorf("catalog: decode %s: %w", name, err)
		}
		return raw, nil
	}
	var raw any
	if err := yaml.UnmarshalStrict(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", name, err)
	}
	return raw, nil
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	raw, err := decodeJSONValue(dec, "")
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after top-level value")
	}
	return raw, nil
}

// decodeJSONValue reads one value token by token so that repeated object
// keys can be seen; json.Unmarshal keeps the last one silently.
func decodeJSONValue(dec *json.Decoder, path string) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		m := make(map[string]any)
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key := kt.(string)
			sub := key
			if path != "" {
				sub = path + "." + key
			}
			if _, dup := m[key]; dup {
				return nil, fmt.Errorf("%w %s", ErrDuplicateKey, sub)
			}
			v, err := decodeJSONValue(dec, sub)
			if err != nil {
				return nil, err
			}
			m[key] = v
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return m, nil
	case '[':
		s := make([]any, 0)
		for dec.More() {
			v, err := decodeJSONValue(dec, fmt.Sprintf("%s[%d]", path, len(s)))
			if err != nil {
				return nil, err
			}
			s = append(s, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unexpected %v", delim)
}

// ParseFile reads and validates a single description file without adding it
// to any catalog.
func ParseFile(path string) (*devmap.Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	raw, err := Decode(path, data)
	if err != nil {
		return nil, err
	}
	root, err := devmap.ParseRoot(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return root, nil
}

// LoadFile parses one file and adds every family it describes. Either all of
// the file's families are added or none are.
func (c *Catalog) LoadFile(path string) error {
	root, err := ParseFile(path)
	if err != nil {
		return err
	}
	return c.add(path, root)
}

// LoadFiles loads the given files in order, stopping at the first failure.
func (c *Catalog) LoadFiles(paths ...string) error {
	for _, path := range paths {
		if err := c.LoadFile(path); err != nil {
			return err
		}
	}
	return nil
}

// LoadDir recursively loads every file under root whose extension is listed
// in the config.
func (c *Catalog) LoadDir(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if !c.cfg.ShouldLoadFile(path) {
			return nil
		}
		return c.LoadFile(path)
	})
}

// Descriptor returns the descriptor loaded for f.
func (c *Catalog) Descriptor(f devmap.Family) (*devmap.Descriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.descriptors[f]
	return d, ok
}

// Source returns the file a family was loaded from, or "" if it is not loaded.
func (c *Catalog) Source(f devmap.Family) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sources[f]
}

// Families lists the loaded families in the fixed family order.
func (c *Catalog) Families() []devmap.Family {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []devmap.Family
	for _, f := range devmap.Families() {
		if _, ok := c.descriptors[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Len is the number of loaded families.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.descriptors)
}

// Root assembles the loaded descriptors into a single root collection.
func (c *Catalog) Root() (*devmap.Root, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ds := make([]*devmap.Descriptor, 0, len(c.descriptors))
	for _, f := range devmap.Families() {
		if d, ok := c.descriptors[f]; ok {
			ds = append(ds, d)
		}
	}
	return devmap.NewRoot(ds...)
}

func (c *Catalog) add(path string, root *devmap.Root) error {
	var keep []*devmap.Descriptor
	for _, f := range root.Families() {
		if !c.cfg.ShouldLoadFamily(f) {
			continue
		}
		d, _ := root.Descriptor(f)
		if c.cfg.RequireAlignment {
			if err := devmap.ValidateSLRAlignment(d); err != nil {
				return fmt.Errorf("catalog: %s: %w", path, err)
			}
		}
		keep = append(keep, d)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range keep {
		if prev, dup := c.sources[d.Family()]; dup {
			return fmt.Errorf("catalog: %s: %w %s (already loaded from %s)", path, ErrDuplicateFamily, d.Family(), prev)
		}
	}
	for _, d := range keep {
		c.descriptors[d.Family()] = d
		c.sources[d.Family()] = path
	}
	return nil
}
