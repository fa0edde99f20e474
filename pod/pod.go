// Package pod implements the little-endian, length-prefixed binary grammar
// shared by Tensor, SparseRowMatrix and the stream layer: any POD scalar
// writes its raw bytes, strings are length-prefixed, and slices of POD
// elements are written as a single block.
//
// The grammar and byte layout are ported from persistence.go's
// binary.LittleEndian framing in the teacher repo and from
// include/deepx_core/common/stream.h in the original sources.
package pod

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrShortRead is returned when a stream yields fewer bytes than a value's
// fixed encoding requires.
var ErrShortRead = errors.New("pod: short read")

// Value is the set of concrete types the POD grammar knows how to encode.
// ~int is included for convenience (encoded as int64) even though the
// on-disk formats below otherwise favour explicitly sized types.
type Value interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint16 | ~uint32 | ~uint64 | ~int | ~string
}

// WriteValue writes v to w using the POD grammar, returning the number of
// bytes written.
func WriteValue[T Value](w io.Writer, v T) (int, error) {
	switch x := any(v).(type) {
	case float32:
		return writeFixed(w, math.Float32bits(x))
	case float64:
		return writeFixed(w, math.Float64bits(x))
	case int32:
		return writeFixed(w, uint32(x))
	case int64:
		return writeFixed(w, uint64(x))
	case uint16:
		return writeFixed(w, x)
	case uint32:
		return writeFixed(w, x)
	case uint64:
		return writeFixed(w, x)
	case int:
		return writeFixed(w, uint64(x))
	case string:
		return writeString(w, x)
	default:
		panic(fmt.Sprintf("pod: unsupported value type %T", v))
	}
}

// ReadValue reads a value of type T from r using the POD grammar.
func ReadValue[T Value](r io.Reader, out *T) (int, error) {
	switch p := any(out).(type) {
	case *float32:
		var bits uint32
		n, err := readFixed(r, &bits)
		*p = math.Float32frombits(bits)
		return n, err
	case *float64:
		var bits uint64
		n, err := readFixed(r, &bits)
		*p = math.Float64frombits(bits)
		return n, err
	case *int32:
		var x uint32
		n, err := readFixed(r, &x)
		*p = int32(x)
		return n, err
	case *int64:
		var x uint64
		n, err := readFixed(r, &x)
		*p = int64(x)
		return n, err
	case *uint16:
		return readFixed(r, p)
	case *uint32:
		return readFixed(r, p)
	case *uint64:
		return readFixed(r, p)
	case *int:
		var x uint64
		n, err := readFixed(r, &x)
		*p = int(x)
		return n, err
	case *string:
		s, n, err := readString(r)
		*p = s
		return n, err
	default:
		panic(fmt.Sprintf("pod: unsupported value type %T", out))
	}
}

func writeFixed[T any](w io.Writer, v T) (int, error) {
	var buf [8]byte
	n := sizeOf(v)
	switch x := any(v).(type) {
	case uint16:
		binary.LittleEndian.PutUint16(buf[:2], x)
	case uint32:
		binary.LittleEndian.PutUint32(buf[:4], x)
	case uint64:
		binary.LittleEndian.PutUint64(buf[:8], x)
	}
	return w.Write(buf[:n])
}

func readFixed[T any](r io.Reader, out *T) (int, error) {
	n := sizeOf(*out)
	buf := make([]byte, n)
	read, err := io.ReadFull(r, buf)
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			err = ErrShortRead
		}
		return read, err
	}
	switch p := any(out).(type) {
	case *uint16:
		*p = binary.LittleEndian.Uint16(buf)
	case *uint32:
		*p = binary.LittleEndian.Uint32(buf)
	case *uint64:
		*p = binary.LittleEndian.Uint64(buf)
	}
	return read, nil
}

func sizeOf(v any) int {
	switch v.(type) {
	case uint16:
		return 2
	case uint32:
		return 4
	case uint64:
		return 8
	default:
		panic(fmt.Sprintf("pod: sizeOf unsupported type %T", v))
	}
}

func writeString(w io.Writer, s string) (int, error) {
	total, err := WriteValue(w, int32(len(s)))
	if err != nil {
		return total, err
	}
	n, err := io.WriteString(w, s)
	total += n
	return total, err
}

func readString(r io.Reader) (string, int, error) {
	var size int32
	total, err := ReadValue(r, &size)
	if err != nil {
		return "", total, err
	}
	if size < 0 {
		return "", total, fmt.Errorf("pod: negative string size %d", size)
	}
	buf := make([]byte, size)
	n, err := io.ReadFull(r, buf)
	total += n
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			err = ErrShortRead
		}
		return "", total, err
	}
	return string(buf), total, nil
}
