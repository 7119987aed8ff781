package column

import (
	"encoding/binary"
	"io"

	"github.com/calebcase/oops"

	"github.com/calebcase/fxp"
)

// chunkValues is the number of values read per chunk while decoding a block
// payload.
const chunkValues = 1024

// Decoder reads a stream of column blocks.
type Decoder[Rep fxp.Representation, Rad fxp.Radix] struct {
	r   io.Reader
	col *Column[Rep, Rad]
	err error
	buf []byte
}

func NewDecoder[Rep fxp.Representation, Rad fxp.Radix](r io.Reader) *Decoder[Rep, Rad] {
	d := &Decoder[Rep, Rad]{
		r: r,
	}

	return d
}

// Next reads the next column block from the stream. It returns false at the
// end of the stream or on the first error. After Next returns false, Err
// separates the two.
func (d *Decoder[Rep, Rad]) Next() bool {
	if d.err != nil {
		return false
	}

	var rad Rad

	w := repWidth[Rep]()

	var header [headerSize]byte
	_, err := io.ReadFull(d.r, header[:])
	if err == io.EOF {
		return false
	}
	if err != nil {
		d.err = Error.Wrap(err)

		return false
	}

	if int(header[widthOff]) != w {
		d.err = oops.Trace(ErrWidth)

		return false
	}
	if int64(header[radixOff]) != rad.Base() {
		d.err = oops.Trace(ErrRadix)

		return false
	}

	scale := fxp.Scale(int32(binary.LittleEndian.Uint32(header[scaleOff:])))
	count := binary.LittleEndian.Uint64(header[countOff:])

	// The count comes off the wire, so the values grow chunk by chunk
	// rather than trusting it for one allocation.
	capHint := count
	if capHint > chunkValues {
		capHint = chunkValues
	}

	if d.buf == nil {
		d.buf = make([]byte, chunkValues*8)
	}

	values := make([]Rep, 0, capHint)
	for remaining := count; remaining > 0; {
		n := remaining
		if n > chunkValues {
			n = chunkValues
		}

		chunk := d.buf[:int(n)*w]
		_, err = io.ReadFull(d.r, chunk)
		if err != nil {
			d.err = Error.Wrap(err)

			return false
		}

		if w == 4 {
			for off := 0; off < len(chunk); off += 4 {
				values = append(values, Rep(int32(binary.LittleEndian.Uint32(chunk[off:]))))
			}
		} else {
			for off := 0; off < len(chunk); off += 8 {
				values = append(values, Rep(int64(binary.LittleEndian.Uint64(chunk[off:]))))
			}
		}

		remaining -= n
	}

	d.col = &Column[Rep, Rad]{
		Scale:  scale,
		Values: values,
	}

	return true
}

// Column returns the last decoded column.
func (d *Decoder[Rep, Rad]) Column() *Column[Rep, Rad] {
	return d.col
}

// Err returns the first error encountered while decoding.
func (d *Decoder[Rep, Rad]) Err() error {
	return d.err
}
