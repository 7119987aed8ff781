package column

import (
	"encoding/binary"
	"unsafe"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/fxp"
)

var (
	Error = errs.Class("column")

	ErrWidth = Error.New("invalid width")
	ErrRadix = Error.New("invalid radix")
	ErrSize  = Error.New("invalid size")
)

// Header layout.
const (
	widthOff   = 0
	radixOff   = 1
	scaleOff   = 2
	countOff   = 6
	headerSize = 14
)

// repWidth returns the byte width of the representation type.
func repWidth[Rep fxp.Representation]() int {
	var z Rep

	return int(unsafe.Sizeof(z))
}

// Column is a homogeneous vector of fixed-point values sharing one scale.
// Values holds the raw representations.
type Column[Rep fxp.Representation, Rad fxp.Radix] struct {
	Scale  fxp.Scale
	Values []Rep
}

// Len returns the number of values in the column.
func (c *Column[Rep, Rad]) Len() int {
	return len(c.Values)
}

// At returns the value at index i.
func (c *Column[Rep, Rad]) At(i int) fxp.Fixed[Rep, Rad] {
	return fxp.FromScaled[Rad](fxp.Scaled[Rep]{
		Value: c.Values[i],
		Scale: c.Scale,
	})
}

// Append adds f to the column, rescaling it to the column scale first.
func (c *Column[Rep, Rad]) Append(f fxp.Fixed[Rep, Rad]) {
	c.Values = append(c.Values, f.Rescale(c.Scale).Scaled().Value)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c *Column[Rep, Rad]) MarshalBinary() (data []byte, err error) {
	var rad Rad

	w := repWidth[Rep]()

	data = make([]byte, headerSize, headerSize+w*len(c.Values))
	data[widthOff] = byte(w)
	data[radixOff] = byte(rad.Base())
	binary.LittleEndian.PutUint32(data[scaleOff:], uint32(int32(c.Scale)))
	binary.LittleEndian.PutUint64(data[countOff:], uint64(len(c.Values)))

	var buf [8]byte
	if w == 4 {
		for _, v := range c.Values {
			binary.LittleEndian.PutUint32(buf[:4], uint32(int32(v)))
			data = append(data, buf[:4]...)
		}
	} else {
		for _, v := range c.Values {
			binary.LittleEndian.PutUint64(buf[:8], uint64(int64(v)))
			data = append(data, buf[:8]...)
		}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. A block for a
// different width or radix returns ErrWidth or ErrRadix. A payload that does
// not match the declared count returns ErrSize.
func (c *Column[Rep, Rad]) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	var rad Rad

	w := repWidth[Rep]()

	if len(data) < headerSize {
		return oops.Trace(ErrSize)
	}
	if int(data[widthOff]) != w {
		return oops.Trace(ErrWidth)
	}
	if int64(data[radixOff]) != rad.Base() {
		return oops.Trace(ErrRadix)
	}

	scale := fxp.Scale(int32(binary.LittleEndian.Uint32(data[scaleOff:])))
	count := binary.LittleEndian.Uint64(data[countOff:])

	payload := data[headerSize:]
	if len(payload)%w != 0 || uint64(len(payload)/w) != count {
		return oops.Trace(ErrSize)
	}

	values := make([]Rep, 0, count)
	if w == 4 {
		for off := 0; off < len(payload); off += 4 {
			values = append(values, Rep(int32(binary.LittleEndian.Uint32(payload[off:]))))
		}
	} else {
		for off := 0; off < len(payload); off += 8 {
			values = append(values, Rep(int64(binary.LittleEndian.Uint64(payload[off:]))))
		}
	}

	c.Scale = scale
	c.Values = values

	return nil
}
