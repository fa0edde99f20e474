package srm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/deepx-core/deepx-go/pod"
	"github.com/deepx-core/deepx-go/tensor"
)

// magic tags the current on-disk format, letting readers distinguish it
// from the legacy pre-magic layout on the fly. The value is carried over
// unchanged from sparse_row_matrix.h's version constant.
const magic = 0x0a0c72e7

// WriteTo serializes the matrix as: magic (int32), col (int32), then the
// row map — itself magic-tagged (int32) + size (uint64) per
// pod.WriteMapHeader, matching sparse_row_matrix.h's
// operator<<(..., row_map_) going through the generic HashMap encoding —
// followed by (id, row values) pairs, then the initializer type and its
// two parameters.
func (m *Matrix[T, I]) WriteTo(w io.Writer) (int64, error) {
	var total int

	n, err := pod.WriteValue(w, int32(magic))
	total += n
	if err != nil {
		return int64(total), err
	}
	n, err = pod.WriteValue(w, int32(m.col))
	total += n
	if err != nil {
		return int64(total), err
	}
	n, err = pod.WriteMapHeader(w, len(m.rows))
	total += n
	if err != nil {
		return int64(total), err
	}
	for id, row := range m.rows {
		n, err = pod.WriteValue(w, id)
		total += n
		if err != nil {
			return int64(total), err
		}
		n, err = pod.WriteSlice(w, row)
		total += n
		if err != nil {
			return int64(total), err
		}
	}

	n, err = pod.WriteValue(w, int32(m.initType))
	total += n
	if err != nil {
		return int64(total), err
	}
	n, err = pod.WriteValue(w, m.param1)
	total += n
	if err != nil {
		return int64(total), err
	}
	n, err = pod.WriteValue(w, m.param2)
	total += n
	return int64(total), err
}

// ReadFrom deserializes a matrix previously written by WriteTo, or a
// legacy pre-magic encoding (a flat value array plus a row-id-to-offset
// map, per original_source's backward-compatibility branch of
// operator>>), detected by peeking the leading 4 bytes. It replaces the
// receiver's contents.
func (m *Matrix[T, I]) ReadFrom(r *bufio.Reader) (int64, error) {
	peek, err := r.Peek(4)
	if err != nil {
		return 0, err
	}
	var tag int32
	if _, err := pod.ReadValue(bufferReader(peek), &tag); err != nil {
		return 0, err
	}

	if tag == magic {
		return m.readCurrent(r)
	}
	return m.readLegacy(r)
}

func (m *Matrix[T, I]) readCurrent(r *bufio.Reader) (int64, error) {
	var total int

	var tag int32
	n, err := pod.ReadValue(r, &tag)
	total += n
	if err != nil {
		return int64(total), err
	}

	var col int32
	n, err = pod.ReadValue(r, &col)
	total += n
	if err != nil {
		return int64(total), err
	}

	count, _, n, err := pod.ReadMapHeader(r)
	total += n
	if err != nil {
		return int64(total), err
	}

	rows := make(map[I][]T, count)
	for k := uint64(0); k < count; k++ {
		var id I
		n, err = pod.ReadValue(r, &id)
		total += n
		if err != nil {
			return int64(total), err
		}
		row, n, err := pod.ReadSlice[T](r)
		total += n
		if err != nil {
			return int64(total), err
		}
		rows[id] = row
	}

	var initType int32
	n, err = pod.ReadValue(r, &initType)
	total += n
	if err != nil {
		return int64(total), err
	}
	var p1, p2 T
	n, err = pod.ReadValue(r, &p1)
	total += n
	if err != nil {
		return int64(total), err
	}
	n, err = pod.ReadValue(r, &p2)
	total += n
	if err != nil {
		return int64(total), err
	}

	m.col = int(col)
	m.rows = rows
	m.initType = tensor.InitType(initType)
	m.param1 = p1
	m.param2 = p2
	return int64(total), nil
}

// readLegacy mirrors the pre-magic backward-compatibility layout: a flat
// value array holding every row's elements back to back, a map from row
// id to that row's starting offset in the flat array, and then the
// initializer fields.
func (m *Matrix[T, I]) readLegacy(r io.Reader) (int64, error) {
	var total int

	var rank int32
	n, err := pod.ReadValue(r, &rank)
	total += n
	if err != nil {
		return int64(total), err
	}
	dims := make([]int32, rank)
	for i := range dims {
		n, err = pod.ReadValue(r, &dims[i])
		total += n
		if err != nil {
			return int64(total), err
		}
	}
	col := 0
	if len(dims) > 1 {
		col = int(dims[1])
	}

	flat, n, err := pod.ReadSlice[T](r)
	total += n
	if err != nil {
		return int64(total), err
	}

	var offsetCount int32
	n, err = pod.ReadValue(r, &offsetCount)
	total += n
	if err != nil {
		return int64(total), err
	}
	if offsetCount < 0 {
		return int64(total), fmt.Errorf("srm: negative legacy row count %d", offsetCount)
	}
	offsets := make(map[I]uint64, offsetCount)
	for k := int32(0); k < offsetCount; k++ {
		var id I
		n, err = pod.ReadValue(r, &id)
		total += n
		if err != nil {
			return int64(total), err
		}
		var off uint64
		n, err = pod.ReadValue(r, &off)
		total += n
		if err != nil {
			return int64(total), err
		}
		offsets[id] = off
	}

	var initType int32
	n, err = pod.ReadValue(r, &initType)
	total += n
	if err != nil {
		return int64(total), err
	}
	var p1, p2 T
	n, err = pod.ReadValue(r, &p1)
	total += n
	if err != nil {
		return int64(total), err
	}
	n, err = pod.ReadValue(r, &p2)
	total += n
	if err != nil {
		return int64(total), err
	}

	rows := make(map[I][]T, len(offsets))
	for id, off := range offsets {
		row := make([]T, col)
		copy(row, flat[off:int(off)+col])
		rows[id] = row
	}

	m.col = col
	m.rows = rows
	m.initType = tensor.InitType(initType)
	m.param1 = p1
	m.param2 = p2
	return int64(total), nil
}

// bufferReader adapts a byte slice to io.Reader for the tiny fixed-size
// peek-and-decode used to inspect the leading magic tag.
type bufferReaderType struct {
	b   []byte
	pos int
}

func bufferReader(b []byte) *bufferReaderType {
	return &bufferReaderType{b: b}
}

func (r *bufferReaderType) Read(p []byte) (int, error) {
	if r.pos >= len(r.b) {
		return 0, io.EOF
	}
	n := copy(p, r.b[r.pos:])
	r.pos += n
	return n, nil
}
