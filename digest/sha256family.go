package digest

import (
	"encoding/binary"
	"math/bits"

	simdsha256 "github.com/minio/sha256-simd"
)

const sha2_32ChunkSize = 64

var sha256IV = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var sha224IV = [8]uint32{
	0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
	0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
}

var sha2_32K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// sha2_32State is the shared 32-bit SHA-2 compressor (SHA-224/SHA-256).
// The variants differ only in IV and the number of output words.
type sha2_32State struct {
	h        [8]uint32
	iv       [8]uint32
	outWords int
}

func newSHA2_32(iv [8]uint32, outWords int) *sha2_32State {
	s := &sha2_32State{iv: iv, outWords: outWords}
	s.reset()
	return s
}

func (s *sha2_32State) reset()         { s.h = s.iv }
func (s *sha2_32State) chunkSize() int  { return sha2_32ChunkSize }
func (s *sha2_32State) digestSize() int { return s.outWords * 4 }

func (s *sha2_32State) absorbChunk(chunk []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(chunk[i*4:])
	}
	for i := 16; i < 64; i++ {
		s0 := bits.RotateLeft32(w[i-15], -7) ^ bits.RotateLeft32(w[i-15], -18) ^ (w[i-15] >> 3)
		s1 := bits.RotateLeft32(w[i-2], -17) ^ bits.RotateLeft32(w[i-2], -19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, h := s.h[0], s.h[1], s.h[2], s.h[3], s.h[4], s.h[5], s.h[6], s.h[7]

	for i := 0; i < 64; i++ {
		s1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
		ch := (e & f) ^ (^e & g)
		temp1 := h + s1 + ch + sha2_32K[i] + w[i]
		s0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		temp2 := s0 + maj

		h, g, f = g, f, e
		e = d + temp1
		d, c, b = c, b, a
		a = temp1 + temp2
	}

	s.h[0] += a
	s.h[1] += b
	s.h[2] += c
	s.h[3] += d
	s.h[4] += e
	s.h[5] += f
	s.h[6] += g
	s.h[7] += h
}

func (s *sha2_32State) sum(dst []byte) []byte {
	out := make([]byte, s.outWords*4)
	for i := 0; i < s.outWords; i++ {
		binary.BigEndian.PutUint32(out[i*4:], s.h[i])
	}
	return append(dst, out...)
}

// NewSHA256 returns a fresh SHA-256 hash.Hash.
func NewSHA256() *Hash { return newHash(newSHA2_32(sha256IV, 8)) }

// NewSHA224 returns a fresh SHA-224 hash.Hash.
func NewSHA224() *Hash { return newHash(newSHA2_32(sha224IV, 7)) }

// SHA256 computes the SHA-256 digest of data in one call.
func SHA256(data []byte) [32]byte {
	var out [32]byte
	copy(out[:], compute(newSHA2_32(sha256IV, 8), data))
	return out
}

// SHA224 computes the SHA-224 digest of data in one call.
func SHA224(data []byte) [28]byte {
	var out [28]byte
	copy(out[:], compute(newSHA2_32(sha224IV, 7), data))
	return out
}

// sha256Accelerated reports whether the host has a hardware-accelerated
// SHA-256 implementation (AVX512/SHA-NI) available through sha256-simd.
// The pure-Go compressor above remains the reference implementation
// conformance tests are checked against; this is purely a speed path.
var sha256Accelerated = simdsha256.Accelerated()

// SHA256Fast computes the SHA-256 digest of data, using the host's
// accelerated implementation when available and falling back to the
// plain Go compressor otherwise. Output is bit-identical to SHA256 in
// both cases; callers that only care about throughput (e.g. hashing
// large inputs for a tool's progress display) should prefer this over
// SHA256.
func SHA256Fast(data []byte) [32]byte {
	if sha256Accelerated {
		return simdsha256.Sum256(data)
	}
	return SHA256(data)
}
