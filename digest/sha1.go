package digest

import (
	"encoding/binary"
	"math/bits"
)

const (
	sha1ChunkSize  = 64
	sha1DigestSize = 20
)

var sha1IV = [5]uint32{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0}

const (
	sha1K0 = 0x5A827999
	sha1K1 = 0x6ED9EBA1
	sha1K2 = 0x8F1BBCDC
	sha1K3 = 0xCA62C1D6
)

type sha1State struct {
	h [5]uint32
}

func newSHA1() *sha1State {
	s := &sha1State{}
	s.reset()
	return s
}

func (s *sha1State) reset()          { s.h = sha1IV }
func (s *sha1State) chunkSize() int  { return sha1ChunkSize }
func (s *sha1State) digestSize() int { return sha1DigestSize }

func (s *sha1State) absorbChunk(chunk []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(chunk[i*4:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := s.h[0], s.h[1], s.h[2], s.h[3], s.h[4]

	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = (b & c) | (^b & d)
			k = sha1K0
		case i < 40:
			f = b ^ c ^ d
			k = sha1K1
		case i < 60:
			f = (b & c) | (b & d) | (c & d)
			k = sha1K2
		default:
			f = b ^ c ^ d
			k = sha1K3
		}

		temp := bits.RotateLeft32(a, 5) + f + e + k + w[i]
		e = d
		d = c
		c = bits.RotateLeft32(b, 30)
		b = a
		a = temp
	}

	s.h[0] += a
	s.h[1] += b
	s.h[2] += c
	s.h[3] += d
	s.h[4] += e
}

func (s *sha1State) sum(dst []byte) []byte {
	var out [sha1DigestSize]byte
	for i, v := range s.h {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	return append(dst, out[:]...)
}

// NewSHA1 returns a fresh SHA-1 hash.Hash.
func NewSHA1() *Hash {
	return newHash(newSHA1())
}

// SHA1(data) computes the SHA-1 digest of data in one call.
func SHA1(data []byte) [sha1DigestSize]byte {
	var out [sha1DigestSize]byte
	copy(out[:], compute(newSHA1(), data))
	return out
}
