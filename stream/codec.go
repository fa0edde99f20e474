package stream

import (
	"bufio"
	"io"

	"github.com/deepx-core/deepx-go/pod"
)

// WriteMap serializes m as: magic (int32, doubling as the version field),
// size (uint64), then each (key, value) pair in the grammar
// pod.WriteValue already implements. Map iteration order is randomized
// by Go itself; callers that need a stable on-disk byte layout should
// sort keys before writing elsewhere. The header is pod.WriteMapHeader,
// shared with srm.Matrix's own row-map encoding.
func WriteMap[K comparable, V pod.Value](w io.Writer, m map[K]V, writeKey func(io.Writer, K) (int, error)) (int64, error) {
	var total int

	n, err := pod.WriteMapHeader(w, len(m))
	total += n
	if err != nil {
		return int64(total), err
	}
	for k, v := range m {
		n, err = writeKey(w, k)
		total += n
		if err != nil {
			return int64(total), err
		}
		n, err = pod.WriteValue(w, v)
		total += n
		if err != nil {
			return int64(total), err
		}
	}
	return int64(total), nil
}

// ReadMap deserializes a map previously written by WriteMap, or a legacy
// pre-magic encoding consisting of just a bare size followed by pairs,
// via pod.ReadMapHeader.
func ReadMap[K comparable, V pod.Value](r *bufio.Reader, readKey func(io.Reader) (K, int, error)) (map[K]V, int64, error) {
	size, _, total, err := pod.ReadMapHeader(r)
	if err != nil {
		return nil, int64(total), err
	}

	out := make(map[K]V, size)
	for i := uint64(0); i < size; i++ {
		k, n, err := readKey(r)
		total += n
		if err != nil {
			return nil, int64(total), err
		}
		var v V
		n, err = pod.ReadValue(r, &v)
		total += n
		if err != nil {
			return nil, int64(total), err
		}
		out[k] = v
	}
	return out, int64(total), nil
}

// WriteSet serializes keys as: magic (int32, doubling as the version
// field), size (uint64), then each key. It shares its wire format with a
// map whose values are elided, matching unordered_set's layout in the
// original grammar.
func WriteSet[K comparable](w io.Writer, keys []K, writeKey func(io.Writer, K) (int, error)) (int64, error) {
	var total int

	n, err := pod.WriteMapHeader(w, len(keys))
	total += n
	if err != nil {
		return int64(total), err
	}
	for _, k := range keys {
		n, err = writeKey(w, k)
		total += n
		if err != nil {
			return int64(total), err
		}
	}
	return int64(total), nil
}

// ReadSet deserializes a set previously written by WriteSet, or its
// legacy un-tagged layout, via pod.ReadMapHeader.
func ReadSet[K comparable](r *bufio.Reader, readKey func(io.Reader) (K, int, error)) (map[K]struct{}, int64, error) {
	size, _, total, err := pod.ReadMapHeader(r)
	if err != nil {
		return nil, int64(total), err
	}

	out := make(map[K]struct{}, size)
	for i := uint64(0); i < size; i++ {
		k, n, err := readKey(r)
		total += n
		if err != nil {
			return nil, int64(total), err
		}
		out[k] = struct{}{}
	}
	return out, int64(total), nil
}
