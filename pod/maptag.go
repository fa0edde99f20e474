package pod

import (
	"bufio"
	"fmt"
	"io"
)

// MapMagic tags the current-format unordered_map/unordered_set/SRM
// row-map encoding: magic (int32, doubling as the version field) followed
// by a uint64 entry count, ported verbatim from hash_map_io.h's header
// ("int version = 0x0a0c72e7; os << version; os << size"). Absence of the
// magic in the leading 4 bytes signals the legacy bare-int32-size layout.
// stream.WriteMap/ReadMap and srm.Matrix's row-map encoding share this
// header rather than each re-deriving it.
const MapMagic = 0x0a0c72e7

// WriteMapHeader writes the magic-tagged header preceding a map/set's
// entries: magic (int32) then size (uint64).
func WriteMapHeader(w io.Writer, size int) (int, error) {
	var total int
	n, err := WriteValue(w, int32(MapMagic))
	total += n
	if err != nil {
		return total, err
	}
	n, err = WriteValue(w, uint64(size))
	total += n
	return total, err
}

// IsMapMagic peeks the leading 4 bytes of r and reports whether they equal
// MapMagic. The peek does not consume any bytes.
func IsMapMagic(r *bufio.Reader) (bool, error) {
	peek, err := r.Peek(4)
	if err != nil {
		return false, err
	}
	tag := int32(peek[0]) | int32(peek[1])<<8 | int32(peek[2])<<16 | int32(peek[3])<<24
	return tag == MapMagic, nil
}

// ReadMapHeader consumes the header preceding a map/set's entries and
// returns the entry count, dispatching on whether the current
// (magic-tagged, uint64 size) or legacy (bare int32 size) layout is
// present.
func ReadMapHeader(r *bufio.Reader) (size uint64, current bool, n int, err error) {
	current, err = IsMapMagic(r)
	if err != nil {
		return 0, false, 0, err
	}

	var total int
	if current {
		var tag int32
		m, err := ReadValue(r, &tag)
		total += m
		if err != nil {
			return 0, current, total, err
		}
		var sz uint64
		m, err = ReadValue(r, &sz)
		total += m
		if err != nil {
			return 0, current, total, err
		}
		return sz, current, total, nil
	}

	var sz int32
	m, err := ReadValue(r, &sz)
	total += m
	if err != nil {
		return 0, current, total, err
	}
	if sz < 0 {
		return 0, current, total, fmt.Errorf("pod: negative legacy map size %d", sz)
	}
	return uint64(sz), current, total, nil
}
