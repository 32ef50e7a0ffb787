package processor

import "github.com/cwbudde/algo-volume/volume"

// Copy is the identity transform.
type Copy struct {
	Base
}

// NewCopy returns a Copy named "copy".
func NewCopy() *Copy {
	return &Copy{Base: *NewBase("copy", nil)}
}

// Apply returns an independent clone of v, so callers may modify the
// result without affecting the input.
func (p *Copy) Apply(v *volume.Volume) (*volume.Volume, error) {
	if v == nil {
		return nil, volume.ErrNilVolume
	}
	return v.Clone(), nil
}
