package volume

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReadRaw decodes a headerless little-endian float32 volume of the given
// shape from r.
func ReadRaw(r io.Reader, shape Shape) (*Volume, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	buf := make([]float32, shape.Len())
	if err := binary.Read(r, binary.LittleEndian, buf); err != nil {
		return nil, fmt.Errorf("volume: read %s raw volume: %w", shape, err)
	}
	v := &Volume{shape: shape, data: make([]float64, len(buf))}
	for i, s := range buf {
		v.data[i] = float64(s)
	}
	return v, nil
}

// WriteRaw encodes v to w as headerless little-endian float32 samples.
// Values outside the float32 range saturate to ±Inf.
func WriteRaw(w io.Writer, v *Volume) error {
	if v == nil {
		return ErrNilVolume
	}
	buf := make([]float32, len(v.data))
	for i, s := range v.data {
		buf[i] = float32(s)
	}
	if err := binary.Write(w, binary.LittleEndian, buf); err != nil {
		return fmt.Errorf("volume: write raw volume: %w", err)
	}
	return nil
}
