package pod

import "io"

// WriteSlice writes s as an int32 length followed by its elements. POD
// element types are written as a single contiguous block; non-POD types
// (currently only string) are written element by element.
func WriteSlice[T Value](w io.Writer, s []T) (int, error) {
	total, err := WriteValue(w, int32(len(s)))
	if err != nil {
		return total, err
	}
	for _, v := range s {
		n, err := WriteValue(w, v)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// ReadSlice reads a slice previously written by WriteSlice.
func ReadSlice[T Value](r io.Reader) ([]T, int, error) {
	var size int32
	total, err := ReadValue(r, &size)
	if err != nil {
		return nil, total, err
	}
	if size < 0 {
		return nil, total, ErrShortRead
	}
	out := make([]T, size)
	for i := range out {
		n, err := ReadValue(r, &out[i])
		total += n
		if err != nil {
			return nil, total, err
		}
	}
	return out, total, nil
}
