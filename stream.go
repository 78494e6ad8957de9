package urlenc

import (
	"fmt"
	"io"
)

// Decoder reads form-urlencoded data from an [io.Reader] and decodes it into
// an ordered [Params] list.
type Decoder struct {
	r io.Reader
}

// NewDecoder creates a new [Decoder] that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the remaining form-urlencoded data from the underlying
// [io.Reader] and parses it with [ParseParams].
func (d *Decoder) Decode() (Params, error) {
	body, err := io.ReadAll(d.r)
	if err != nil {
		return nil, fmt.Errorf("urlenc: failed to read body: %w", err)
	}
	return ParseParams(string(body))
}

// Encoder writes form-urlencoded data to an [io.Writer].
type Encoder struct {
	w io.Writer
}

// NewEncoder creates a new [Encoder] that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the form encoding of params to the underlying [io.Writer].
func (e *Encoder) Encode(params Params) error {
	_, err := io.WriteString(e.w, params.Encode())
	return err
}

// EncodeValue marshals v with [Marshal] and writes the resulting form
// encoding to the underlying [io.Writer].
func (e *Encoder) EncodeValue(v interface{}) error {
	params, err := Marshal(v)
	if err != nil {
		return err
	}
	return e.Encode(params)
}
