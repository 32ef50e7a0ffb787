package processor

import (
	"errors"

	"github.com/cwbudde/algo-volume/volume"
)

// Errors returned by processors and the registry.
var (
	ErrNotImplemented  = errors.New("processor: apply not implemented")
	ErrOptionNotFound  = errors.New("processor: option not found")
	ErrOptionType      = errors.New("processor: option has wrong type")
	ErrUnknownOption   = errors.New("processor: unknown option")
	ErrInvalidArgument = errors.New("processor: invalid argument")
	ErrUnknownKind     = errors.New("processor: unknown kind")
	ErrDuplicateKind   = errors.New("processor: kind already registered")
)

// Processor transforms one volume into another.
type Processor interface {
	// Name returns a descriptive label.
	Name() string

	// Options returns a copy of the option bag.
	Options() Options

	// Option returns a single option, or an error wrapping
	// ErrOptionNotFound.
	Option(name string) (any, error)

	// Apply returns the transformed volume. The input is not modified.
	Apply(v *volume.Volume) (*volume.Volume, error)
}

// Base carries the name and option bag shared by all processors.
// Concrete processors embed it and override Apply.
type Base struct {
	name string
	opts Options
}

// NewBase returns a Base holding a copy of opts.
func NewBase(name string, opts Options) *Base {
	return &Base{name: name, opts: opts.Clone()}
}

// Name returns the processor's label.
func (b *Base) Name() string {
	return b.name
}

// Options returns a copy of the option bag.
func (b *Base) Options() Options {
	return b.opts.Clone()
}

// Option returns the named option.
func (b *Base) Option(name string) (any, error) {
	return b.opts.Get(name)
}

// SetOptions replaces the whole option bag with a copy of opts.
// Values are validated on the next Apply.
func (b *Base) SetOptions(opts Options) {
	b.opts = opts.Clone()
}

// Apply always fails with ErrNotImplemented.
func (b *Base) Apply(*volume.Volume) (*volume.Volume, error) {
	return nil, ErrNotImplemented
}
