package animation

import (
	"fmt"
	"sort"
	"strings"
)

// Attribute keys understood by the built-in kinds.
const (
	KeyPosition = "position"
	KeyRotation = "rotation"
	KeyScale    = "scale_factor"
	KeyOpacity  = "opacity"
	KeyColor    = "color"
)

// Value is an attribute value: one component for scalars, two for
// positions, three for RGB colours.
type Value []float64

// Scalar wraps a single number.
func Scalar(v float64) Value {
	return Value{v}
}

// Vec2 wraps a 2D vector.
func Vec2(x, y float64) Value {
	return Value{x, y}
}

// Float returns the first component, or 0 for an empty value.
func (v Value) Float() float64 {
	if len(v) == 0 {
		return 0
	}
	return v[0]
}

// XY returns the first two components.
func (v Value) XY() (float64, float64) {
	switch len(v) {
	case 0:
		return 0, 0
	case 1:
		return v[0], 0
	}
	return v[0], v[1]
}

// Clone returns an independent copy.
func (v Value) Clone() Value {
	if v == nil {
		return nil
	}
	out := make(Value, len(v))
	copy(out, v)
	return out
}

// Equal reports component-wise bit equality.
func (v Value) Equal(o Value) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// Lerp interpolates component-wise. The a*(1-t) + b*t form returns a
// exactly at t=0 and b exactly at t=1.
func Lerp(a, b Value, t float64) (Value, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d components", ErrValueShape, len(a), len(b))
	}
	out := make(Value, len(a))
	for i := range a {
		out[i] = a[i]*(1-t) + b[i]*t
	}
	return out, nil
}

// Snapshot is an immutable attribute name -> value mapping captured at one
// instant.
type Snapshot struct {
	values map[string]Value
}

// NewSnapshot copies values into a new snapshot.
func NewSnapshot(values map[string]Value) Snapshot {
	s := Snapshot{values: make(map[string]Value, len(values))}
	for k, v := range values {
		s.values[k] = v.Clone()
	}
	return s
}

// Get returns a copy of the value stored under key.
func (s Snapshot) Get(key string) (Value, bool) {
	v, ok := s.values[key]
	if !ok {
		return nil, false
	}
	return v.Clone(), true
}

// With returns a new snapshot with key set to v.
func (s Snapshot) With(key string, v Value) Snapshot {
	out := NewSnapshot(s.values)
	out.values[key] = v.Clone()
	return out
}

// Len is the number of attributes.
func (s Snapshot) Len() int {
	return len(s.values)
}

// Keys returns attribute names in sorted order.
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SameKeys returns ErrKeyMismatch unless both snapshots govern exactly the
// same attributes.
func (s Snapshot) SameKeys(o Snapshot) error {
	a, b := s.Keys(), o.Keys()
	if strings.Join(a, ",") != strings.Join(b, ",") {
		return fmt.Errorf("%w: [%s] vs [%s]", ErrKeyMismatch, strings.Join(a, " "), strings.Join(b, " "))
	}
	return nil
}

// Equal reports whether both snapshots hold bit-identical values.
func (s Snapshot) Equal(o Snapshot) bool {
	if len(s.values) != len(o.values) {
		return false
	}
	for k, v := range s.values {
		ov, ok := o.values[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// LerpSnapshot interpolates every attribute of two snapshots with the same keys.
func LerpSnapshot(from, to Snapshot, t float64) (Snapshot, error) {
	if err := from.SameKeys(to); err != nil {
		return Snapshot{}, err
	}
	out := Snapshot{values: make(map[string]Value, len(from.values))}
	for k, a := range from.values {
		v, err := Lerp(a, to.values[k], t)
		if err != nil {
			return Snapshot{}, fmt.Errorf("%s: %w", k, err)
		}
		out.values[k] = v
	}
	return out, nil
}

// Capture reads keys from target into a snapshot.
func Capture(target Target, keys []string) (Snapshot, error) {
	values := make(map[string]Value, len(keys))
	for _, k := range keys {
		v, err := target.Get(k)
		if err != nil {
			return Snapshot{}, fmt.Errorf("capture %s: %w", k, err)
		}
		values[k] = v
	}
	return NewSnapshot(values), nil
}

// Restore writes every attribute of s onto target in key order.
func Restore(target Target, s Snapshot) error {
	for _, k := range s.Keys() {
		if err := target.Set(k, s.values[k].Clone()); err != nil {
			return fmt.Errorf("set %s: %w", k, err)
		}
	}
	return nil
}
