package digest

import "hash"

// Hash adapts a chunked algorithm to the standard hash.Hash interface,
// the same interface the teacher's Calc type implements. As with Calc's
// Sum, this Sum is destructive: it finalizes and resets the underlying
// state rather than copying it first, so callers that need the classic
// "Sum doesn't disturb further Writes" behavior should call Digest once
// and stop, or keep a separate Hash per checkpoint.
type Hash struct {
	c *chunked
}

var _ hash.Hash = (*Hash)(nil)

func newHash(algo compressor) *Hash {
	return &Hash{c: newChunked(algo)}
}

// Write folds p into the running digest. It never returns an error.
func (h *Hash) Write(p []byte) (int, error) {
	h.c.update(p)
	return len(p), nil
}

// Sum finalizes the digest, appends it to b, and resets the state for
// reuse. See the destructive-Sum note on Hash.
func (h *Hash) Sum(b []byte) []byte {
	d := h.c.digest()
	h.c.reset()
	return append(b, d...)
}

// Reset restores the zero/IV state, discarding any buffered input.
func (h *Hash) Reset() {
	h.c.reset()
}

// Size returns the digest length in bytes.
func (h *Hash) Size() int {
	return h.c.algo.digestSize()
}

// BlockSize returns the chunk length in bytes.
func (h *Hash) BlockSize() int {
	return h.c.algo.chunkSize()
}

// Digest finalizes the state and returns the digest directly, without
// going through the hash.Hash Write/Sum protocol. This is the API shape
// spec'd by the chunked-digest framework (update/digest), kept alongside
// the hash.Hash adapter for ecosystem interop.
func (h *Hash) Digest() []byte {
	return h.c.digest()
}

func compute(algo compressor, data []byte) []byte {
	c := newChunked(algo)
	c.update(data)
	return c.digest()
}
