// Package digest implements the chunked message-digest framework and its
// SHA-1 / SHA-2 instantiations. The framework owns buffering, message
// length accounting, padding, and the incremental update/finalize
// protocol; each algorithm supplies only its IV, per-chunk compression
// function, and output truncation.
package digest

import "encoding/binary"

// compressor is the capability set a chunked algorithm must expose:
// reset to its initial state, absorb one full chunk, and emit a final
// digest. Chunk and digest sizes are queried rather than fixed as Go
// generic parameters (Go has no const-generic array lengths); each
// concrete compressor still monomorphizes to a plain value type with no
// virtual dispatch inside its own hot compression loop.
type compressor interface {
	chunkSize() int
	digestSize() int
	reset()
	absorbChunk(chunk []byte)
	sum(dst []byte) []byte
}

// chunked is the generic incremental state: an inner compressor, the
// cumulative message length in bits, and a partially filled chunk
// buffer. It never reallocates once constructed.
type chunked struct {
	algo compressor
	ml   uint64
	buf  []byte
	fill int
}

func newChunked(algo compressor) *chunked {
	return &chunked{algo: algo, buf: make([]byte, algo.chunkSize())}
}

// update folds input of any length into the running state.
func (c *chunked) update(input []byte) {
	c.ml += 8 * uint64(len(input))

	if c.fill > 0 {
		n := copy(c.buf[c.fill:], input)
		c.fill += n
		input = input[n:]
		if c.fill < len(c.buf) {
			return
		}
		c.algo.absorbChunk(c.buf)
		c.fill = 0
	}

	chunkLen := len(c.buf)
	for len(input) >= chunkLen {
		c.algo.absorbChunk(input[:chunkLen])
		input = input[chunkLen:]
	}

	if len(input) > 0 {
		c.fill = copy(c.buf, input)
	}
}

// digest finalizes the state (padding, length field, last chunk(s)) and
// returns the algorithm's output. Calling it again on the same chunked
// value is not meaningful. The hash.Hash adapter in digest.go resets the
// state after each Sum, so its Sum is destructive as well.
func (c *chunked) digest() []byte {
	chunkLen := len(c.buf)

	c.buf[c.fill] = 0x80
	c.fill++

	if c.fill+8 > chunkLen {
		for i := c.fill; i < chunkLen; i++ {
			c.buf[i] = 0
		}
		c.algo.absorbChunk(c.buf)
		c.fill = 0
	}

	for i := c.fill; i < chunkLen-8; i++ {
		c.buf[i] = 0
	}
	binary.BigEndian.PutUint64(c.buf[chunkLen-8:], c.ml)
	c.algo.absorbChunk(c.buf)

	return c.algo.sum(nil)
}

func (c *chunked) reset() {
	c.algo.reset()
	c.ml = 0
	c.fill = 0
	for i := range c.buf {
		c.buf[i] = 0
	}
}
