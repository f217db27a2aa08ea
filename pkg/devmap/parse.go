package devmap

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// Parse validates raw against the shape of family and returns the typed
// descriptor. raw is the output of a generic decoder: nested maps (string or
// interface keys), slices and integer scalars.
//
// Within each mapping every mandatory key is checked for presence before any
// unknown key is reported and before values are type-checked. The first
// failure is returned as a *FieldError naming the full path.
func Parse(raw any, family Family) (*Descriptor, error) {
	schema, ok := schemas[family]
	if !ok {
		return nil, fmt.Errorf("devmap: %w %q", ErrUnknownFamily, string(family))
	}
	tree, err := walkBlock(string(family), raw, schema)
	if err != nil {
		return nil, err
	}
	return buildDescriptor(family, tree), nil
}

// walkBlock validates one mapping. Validated values are uint64, []uint64,
// map[string]any and []map[string]any (nil entries for absent blocks).
func walkBlock(path string, raw any, b *block) (map[string]any, error) {
	m, err := asMapping(path, raw)
	if err != nil {
		return nil, err
	}
	for _, f := range b.fields {
		if _, ok := m[f.name]; !ok {
			return nil, fieldErr(join(path, f.name), ErrSchemaMismatch, "mandatory field missing")
		}
	}
	if len(m) > len(b.fields) {
		var unknown []string
		for key := range m {
			if _, ok := b.field(key); !ok {
				unknown = append(unknown, key)
			}
		}
		sort.Strings(unknown)
		return nil, fieldErr(join(path, unknown[0]), ErrUnknownField, "allowed fields are %v", b.names())
	}

	out := make(map[string]any, len(b.fields))
	for _, f := range b.fields {
		v, err := walkField(join(path, f.name), m[f.name], f)
		if err != nil {
			return nil, err
		}
		out[f.name] = v
	}
	return out, nil
}

func walkField(path string, raw any, f field) (any, error) {
	switch f.kind {
	case kindInt:
		return asUint(path, raw)
	case kindInts:
		items, err := asSequence(path, raw, f.kind)
		if err != nil {
			return nil, err
		}
		out := make([]uint64, len(items))
		for i, item := range items {
			n, err := asUint(index(path, i), item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case kindBlock:
		return walkBlock(path, raw, f.elem)
	case kindList:
		items, err := asSequence(path, raw, f.kind)
		if err != nil {
			return nil, err
		}
		out := make([]map[string]any, len(items))
		for i, item := range items {
			if item == nil && f.nullable {
				continue
			}
			entry, err := walkBlock(index(path, i), item, f.elem)
			if err != nil {
				return nil, err
			}
			out[i] = entry
		}
		return out, nil
	}
	return nil, fmt.Errorf("devmap: %s: unhandled field kind %d", path, f.kind)
}

func asMapping(path string, raw any) (map[string]any, error) {
	switch m := raw.(type) {
	case map[string]any:
		return m, nil
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return nil, fieldErr(path, ErrTypeMismatch, "mapping key %v is %T, want string", k, k)
			}
			out[key] = v
		}
		return out, nil
	case nil:
		return nil, fieldErr(path, ErrTypeMismatch, "got null, want %s", kindBlock)
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, fieldErr(path, ErrTypeMismatch, "got %s, want %s", describe(raw), kindBlock)
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, nil
}

func asSequence(path string, raw any, want kind) ([]any, error) {
	switch s := raw.(type) {
	case []any:
		return s, nil
	case nil:
		return nil, fieldErr(path, ErrTypeMismatch, "got null, want %s", want)
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fieldErr(path, ErrTypeMismatch, "got %s, want %s", describe(raw), want)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

// asUint accepts any Go integer, a json.Number holding an integer, or a float
// with an integral value. Negative values are rejected.
func asUint(path string, raw any) (uint64, error) {
	switch n := raw.(type) {
	case int:
		return signed(path, int64(n))
	case int8:
		return signed(path, int64(n))
	case int16:
		return signed(path, int64(n))
	case int32:
		return signed(path, int64(n))
	case int64:
		return signed(path, n)
	case uint:
		return uint64(n), nil
	case uint8:
		return uint64(n), nil
	case uint16:
		return uint64(n), nil
	case uint32:
		return uint64(n), nil
	case uint64:
		return n, nil
	case float32:
		return integral(path, float64(n))
	case float64:
		return integral(path, n)
	case json.Number:
		if v, err := strconv.ParseUint(string(n), 10, 64); err == nil {
			return v, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fieldErr(path, ErrTypeMismatch, "number %q is not an integer", string(n))
		}
		return integral(path, f)
	case nil:
		return 0, fieldErr(path, ErrTypeMismatch, "got null, want %s", kindInt)
	}
	return 0, fieldErr(path, ErrTypeMismatch, "got %s, want %s", describe(raw), kindInt)
}

func signed(path string, n int64) (uint64, error) {
	if n < 0 {
		return 0, fieldErr(path, ErrTypeMismatch, "negative value %d", n)
	}
	return uint64(n), nil
}

func integral(path string, f float64) (uint64, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f):
		return 0, fieldErr(path, ErrTypeMismatch, "%v is not an integer", f)
	case f < 0:
		return 0, fieldErr(path, ErrTypeMismatch, "negative value %v", f)
	case f >= 1<<64:
		return 0, fieldErr(path, ErrTypeMismatch, "%v overflows 64 bits", f)
	}
	return uint64(f), nil
}

func describe(raw any) string {
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Map:
		return "mapping"
	case reflect.Slice, reflect.Array:
		return "sequence"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	}
	return fmt.Sprintf("%T", raw)
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func index(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func buildDescriptor(family Family, tree map[string]any) *Descriptor {
	jtag := tree["jtag"].(map[string]any)
	device := jtag["device"].(map[string]any)
	slrs := jtag["slrs"].([]map[string]any)
	regs := tree["registers"].(map[string]any)["slrs"].([]map[string]any)

	d := &Descriptor{
		family: family,
		cntl:   device["cntl"].([]uint64),
		jtag:   make([]*JTAGSLR, len(slrs)),
		regs:   make([]RegistersSLR, len(regs)),
	}
	for i, entry := range slrs {
		if entry == nil {
			continue
		}
		s := &JTAGSLR{family: family, values: make(map[string][]uint64, len(entry))}
		for name, v := range entry {
			s.values[name] = v.([]uint64)
		}
		d.jtag[i] = s
	}
	for i, entry := range regs {
		for name, v := range entry {
			*d.regs[i].ref(name) = v.(uint64)
		}
	}
	return d
}
