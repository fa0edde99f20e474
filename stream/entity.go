package stream

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/deepx-core/deepx-go/srm"
	"github.com/deepx-core/deepx-go/tensor"
)

// entity is anything with the WriteTo method Tensor and srm.Matrix
// already implement, so SerializeToString works against either without a
// type switch. ParseFromString takes a readEntity, whose ReadFrom accepts
// an io.Reader: Tensor satisfies it, while srm.Matrix (whose ReadFrom
// takes a *bufio.Reader) goes through the *SRM* helpers below.
type entity interface {
	WriteTo(w io.Writer) (int64, error)
}

type readEntity interface {
	ReadFrom(r io.Reader) (int64, error)
}

// SerializeToString renders e's wire format into a string, the Go
// analogue of SerializeToString/std::string out-param style the original
// entity classes expose.
func SerializeToString(e entity) (string, error) {
	var buf bytes.Buffer
	if _, err := e.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ParseFromString replaces e's contents by decoding s, a copying parse:
// e owns a fresh backing buffer independent of s.
func ParseFromString(e readEntity, s string) error {
	_, err := e.ReadFrom(strings.NewReader(s))
	return err
}

// ParseFromArray replaces e's contents by decoding b, a copying parse
// identical to ParseFromString but over a byte slice.
func ParseFromArray(e readEntity, b []byte) error {
	_, err := e.ReadFrom(bytes.NewReader(b))
	return err
}

// ParseViewFromString decodes s into a new owning Tensor[T] and returns
// it wrapped as a view (IsView() == true, Resize forbidden), the closest
// Go equivalent of the original's zero-copy parse: the POD grammar here
// encodes values one at a time rather than as a reinterpretable native
// array, so an actual zero-copy cast over s's bytes is not possible the
// way it is for a flat memcpy-able buffer. Callers get the same
// read-only call-surface contract (no Resize) without the
// zero-copy guarantee.
func ParseViewFromString[T tensor.Elem](s string) (*tensor.Tensor[T], error) {
	var tmp tensor.Tensor[T]
	if err := ParseFromString(&tmp, s); err != nil {
		return nil, err
	}
	return tensor.View[T](tmp.Shape(), tmp.Data()), nil
}

// ParseViewFromArray is ParseViewFromString over a byte slice.
func ParseViewFromArray[T tensor.Elem](b []byte) (*tensor.Tensor[T], error) {
	var tmp tensor.Tensor[T]
	if err := ParseFromArray(&tmp, b); err != nil {
		return nil, err
	}
	return tensor.View[T](tmp.Shape(), tmp.Data()), nil
}

// SerializeSRMToString is SerializeToString specialized for
// srm.Matrix, whose ReadFrom needs a *bufio.Reader to peek the
// legacy-format tag and so cannot satisfy the plain io.Reader-based
// readEntity interface above.
func SerializeSRMToString[T tensor.Float, I srm.Integer](m *srm.Matrix[T, I]) (string, error) {
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ParseSRMFromString replaces m's contents by decoding s.
func ParseSRMFromString[T tensor.Float, I srm.Integer](m *srm.Matrix[T, I], s string) error {
	_, err := m.ReadFrom(bufio.NewReader(strings.NewReader(s)))
	return err
}

// ParseSRMFromArray replaces m's contents by decoding b.
func ParseSRMFromArray[T tensor.Float, I srm.Integer](m *srm.Matrix[T, I], b []byte) error {
	_, err := m.ReadFrom(bufio.NewReader(bytes.NewReader(b)))
	return err
}
