package tensor

import (
	"io"

	"github.com/deepx-core/deepx-go/pod"
	"github.com/deepx-core/deepx-go/shape"
)

// WriteTo serializes the tensor as: rank (int32), each dimension (int32),
// then the element count (int32) followed by the elements themselves. It
// mirrors the teacher's persistence.go framing (dimensions, then payload)
// adapted to the POD grammar used throughout this module.
func (t *Tensor[T]) WriteTo(w io.Writer) (int64, error) {
	var total int

	dims := t.shape.Dims()
	n, err := pod.WriteValue(w, int32(len(dims)))
	total += n
	if err != nil {
		return int64(total), err
	}
	for _, d := range dims {
		n, err = pod.WriteValue(w, int32(d))
		total += n
		if err != nil {
			return int64(total), err
		}
	}

	n, err = pod.WriteSlice(w, t.data)
	total += n
	return int64(total), err
}

// ReadFrom deserializes a tensor previously written by WriteTo into the
// receiver, replacing its shape and storage. It panics if the receiver is a
// view, matching Resize's contract.
func (t *Tensor[T]) ReadFrom(r io.Reader) (int64, error) {
	if t.view {
		panic("tensor: cannot read_from into a view")
	}

	var total int
	var rank int32
	n, err := pod.ReadValue(r, &rank)
	total += n
	if err != nil {
		return int64(total), err
	}

	dims := make([]int, rank)
	for i := range dims {
		var d int32
		n, err = pod.ReadValue(r, &d)
		total += n
		if err != nil {
			return int64(total), err
		}
		dims[i] = int(d)
	}

	data, n, err := pod.ReadSlice[T](r)
	total += n
	if err != nil {
		return int64(total), err
	}

	t.shape = shape.New(dims...)
	t.data = data
	return int64(total), nil
}
