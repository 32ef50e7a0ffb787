package processor

import (
	"fmt"

	"github.com/cwbudde/algo-volume/volume"
)

// DefaultFuncName labels a Func built without an explicit name.
const DefaultFuncName = "func processor"

// TransformFunc is an arbitrary volume transform. It receives a copy of the
// processor's option bag.
type TransformFunc func(v *volume.Volume, opts Options) (*volume.Volume, error)

// Func adapts a TransformFunc to the Processor contract.
type Func struct {
	Base
	fn TransformFunc
}

// NewFunc wraps fn. An empty name becomes DefaultFuncName.
func NewFunc(fn TransformFunc, name string, opts Options) (*Func, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil transform function", ErrInvalidArgument)
	}
	if name == "" {
		name = DefaultFuncName
	}
	return &Func{Base: *NewBase(name, opts), fn: fn}, nil
}

// Apply returns fn(v, options) unchanged, including its error.
func (p *Func) Apply(v *volume.Volume) (*volume.Volume, error) {
	return p.fn(v, p.opts.Clone())
}
