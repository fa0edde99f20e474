package stream

import (
	"compress/gzip"
	"io"
)

// GunzipInputStream wraps an input stream and transparently decompresses
// it on the fly via the standard DEFLATE format used by compress/gzip.
// Its own State latches bad on a corrupt header or truncated stream, the
// same sticky-failure convention as BufferedInputStream.
type GunzipInputStream struct {
	State
	r *gzip.Reader
}

// NewGunzipInputStream opens r as a gzip member. It fails immediately
// (IsOK() == false) if r's header is not a valid gzip stream.
func NewGunzipInputStream(r io.Reader) *GunzipInputStream {
	g := &GunzipInputStream{}
	gr, err := gzip.NewReader(r)
	if err != nil {
		g.Fail(err)
		return g
	}
	g.r = gr
	return g
}

// Read implements io.Reader.
func (g *GunzipInputStream) Read(p []byte) (int, error) {
	if !g.IsOK() {
		return 0, ErrBad
	}
	n, err := g.r.Read(p)
	if err != nil && err != io.EOF {
		g.Fail(err)
	}
	return n, err
}

// Close releases the underlying gzip reader's resources.
func (g *GunzipInputStream) Close() error {
	if g.r == nil {
		return nil
	}
	return g.r.Close()
}
