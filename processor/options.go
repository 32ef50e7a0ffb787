package processor

import (
	"fmt"
	"math"
	"sort"
)

// Options maps option names to values.
type Options map[string]any

// Clone returns a shallow copy. A nil bag clones to an empty one.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Keys returns the option names in sorted order.
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether name is set.
func (o Options) Has(name string) bool {
	_, ok := o[name]
	return ok
}

// Get returns the named value or an error wrapping ErrOptionNotFound.
func (o Options) Get(name string) (any, error) {
	v, ok := o[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrOptionNotFound, name)
	}
	return v, nil
}

// Float returns the named option as float64. Any integer or float kind
// is accepted.
func (o Options) Float(name string) (float64, error) {
	v, err := o.Get(name)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("%w: %q is %T, want number", ErrOptionType, name, v)
	}
}

// Int returns the named option as int. Floats are accepted only when they
// hold an integral value.
func (o Options) Int(name string) (int, error) {
	v, err := o.Get(name)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case int:
		return x, nil
	case int32:
		return int(x), nil
	case int64:
		return int(x), nil
	case uint:
		return int(x), nil
	case uint32:
		return int(x), nil
	case uint64:
		return int(x), nil
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) {
			return int(x), nil
		}
	case float32:
		if f := float64(x); f == math.Trunc(f) && !math.IsInf(f, 0) {
			return int(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q is %v (%T), want integer", ErrOptionType, name, v, v)
}

// Bool returns the named option as bool.
func (o Options) Bool(name string) (bool, error) {
	v, err := o.Get(name)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q is %T, want bool", ErrOptionType, name, v)
	}
	return b, nil
}

// FloatOr returns the named float, or def when the option is unset.
func (o Options) FloatOr(name string, def float64) (float64, error) {
	if !o.Has(name) {
		return def, nil
	}
	return o.Float(name)
}

// IntOr returns the named int, or def when the option is unset.
func (o Options) IntOr(name string, def int) (int, error) {
	if !o.Has(name) {
		return def, nil
	}
	return o.Int(name)
}

// BoolOr returns the named bool, or def when the option is unset.
func (o Options) BoolOr(name string, def bool) (bool, error) {
	if !o.Has(name) {
		return def, nil
	}
	return o.Bool(name)
}

// only fails with ErrUnknownOption if o holds a name outside allowed.
func (o Options) only(allowed ...string) error {
	for _, k := range o.Keys() {
		found := false
		for _, a := range allowed {
			if k == a {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %q (allowed: %v)", ErrUnknownOption, k, allowed)
		}
	}
	return nil
}
