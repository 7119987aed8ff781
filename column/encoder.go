package column

import (
	"io"

	"github.com/calebcase/fxp"
)

// Encoder writes column blocks to a stream.
type Encoder[Rep fxp.Representation, Rad fxp.Radix] struct {
	w io.Writer
}

func NewEncoder[Rep fxp.Representation, Rad fxp.Radix](w io.Writer) *Encoder[Rep, Rad] {
	e := &Encoder[Rep, Rad]{
		w: w,
	}

	return e
}

// Encode writes one column block to the stream.
func (e *Encoder[Rep, Rad]) Encode(c *Column[Rep, Rad]) (err error) {
	data, err := c.MarshalBinary()
	if err != nil {
		return err
	}

	_, err = e.w.Write(data)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}
