package digest

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

const sha2_64ChunkSize = 128

var sha512IV = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

var sha384IV = [8]uint64{
	0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
	0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
}

var sha512_224IV = [8]uint64{
	0x8c3d37c819544da2, 0x73e1996689dcd4d6, 0x1dfab7ae32ff9c82, 0x679dd514582f9fcf,
	0x0f6d2b697bd44da8, 0x77e36f7304c48942, 0x3f9d85a86a1d36c8, 0x1112e6ad91d692a1,
}

var sha512_256IV = [8]uint64{
	0x22312194fc2bf72c, 0x9f555fa3c84c64c2, 0x2393b86b6f53b151, 0x963877195940eabd,
	0x96283ee2a88effe3, 0xbe5e1e2553863992, 0x2b0199fc2c85b8aa, 0x0eb72ddc81c52ca2,
}

// sha512IVGenSeed is SHA-512's own IV with every limb XORed against
// 0xA5A5A5A5A5A5A5A5 (FIPS 180-4 §5.3.6), the seed used to derive IVs
// for new SHA-512/t variants by hashing the literal string "SHA-512/t".
var sha512IVGenSeed = func() [8]uint64 {
	var iv [8]uint64
	for i, v := range sha512IV {
		iv[i] = v ^ 0xA5A5A5A5A5A5A5A5
	}
	return iv
}()

var sha2_64K = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

// sha2_64State is the shared 64-bit SHA-2 compressor underlying
// SHA-384/512/512-224/512-256 and the SHA-512 IV-generation variant.
// Variants differ only in IV and how many (possibly partial) output
// words they emit.
type sha2_64State struct {
	h        [8]uint64
	iv       [8]uint64
	outBytes int
}

func newSHA2_64(iv [8]uint64, outBytes int) *sha2_64State {
	s := &sha2_64State{iv: iv, outBytes: outBytes}
	s.reset()
	return s
}

func (s *sha2_64State) reset()         { s.h = s.iv }
func (s *sha2_64State) chunkSize() int  { return sha2_64ChunkSize }
func (s *sha2_64State) digestSize() int { return s.outBytes }

func (s *sha2_64State) absorbChunk(chunk []byte) {
	var w [80]uint64
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint64(chunk[i*8:])
	}
	for i := 16; i < 80; i++ {
		s0 := bits.RotateLeft64(w[i-15], -1) ^ bits.RotateLeft64(w[i-15], -8) ^ (w[i-15] >> 7)
		s1 := bits.RotateLeft64(w[i-2], -19) ^ bits.RotateLeft64(w[i-2], -61) ^ (w[i-2] >> 6)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, h := s.h[0], s.h[1], s.h[2], s.h[3], s.h[4], s.h[5], s.h[6], s.h[7]

	for i := 0; i < 80; i++ {
		s1 := bits.RotateLeft64(e, -14) ^ bits.RotateLeft64(e, -18) ^ bits.RotateLeft64(e, -41)
		ch := (e & f) ^ (^e & g)
		temp1 := h + s1 + ch + sha2_64K[i] + w[i]
		s0 := bits.RotateLeft64(a, -28) ^ bits.RotateLeft64(a, -34) ^ bits.RotateLeft64(a, -39)
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

func (s *sha2_64State) sum(dst []byte) []byte {
	out := make([]byte, s.outBytes)
	fullWords := s.outBytes / 8
	rem := s.outBytes % 8

	for i := 0; i < fullWords; i++ {
		binary.BigEndian.PutUint64(out[i*8:], s.h[i])
	}
	if rem > 0 {
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], s.h[fullWords])
		copy(out[fullWords*8:], tmp[:rem])
	}
	return append(dst, out...)
}

// NewSHA512 returns a fresh SHA-512 hash.Hash.
func NewSHA512() *Hash { return newHash(newSHA2_64(sha512IV, 64)) }

// NewSHA384 returns a fresh SHA-384 hash.Hash.
func NewSHA384() *Hash { return newHash(newSHA2_64(sha384IV, 48)) }

// NewSHA512_224 returns a fresh SHA-512/224 hash.Hash.
func NewSHA512_224() *Hash { return newHash(newSHA2_64(sha512_224IV, 28)) }

// NewSHA512_256 returns a fresh SHA-512/256 hash.Hash.
func NewSHA512_256() *Hash { return newHash(newSHA2_64(sha512_256IV, 32)) }

// SHA512 computes the SHA-512 digest of data in one call.
func SHA512(data []byte) [64]byte {
	var out [64]byte
	copy(out[:], compute(newSHA2_64(sha512IV, 64), data))
	return out
}

// SHA384 computes the SHA-384 digest of data in one call.
func SHA384(data []byte) [48]byte {
	var out [48]byte
	copy(out[:], compute(newSHA2_64(sha384IV, 48), data))
	return out
}

// SHA512_224 computes the SHA-512/224 digest of data in one call.
func SHA512_224(data []byte) [28]byte {
	var out [28]byte
	copy(out[:], compute(newSHA2_64(sha512_224IV, 28), data))
	return out
}

// SHA512_256 computes the SHA-512/256 digest of data in one call.
func SHA512_256(data []byte) [32]byte {
	var out [32]byte
	copy(out[:], compute(newSHA2_64(sha512_256IV, 32), data))
	return out
}

// DeriveSHA512tIV derives the 8-word IV for a new SHA-512/t variant by
// hashing the literal ASCII string "SHA-512/<t>" with the SHA-512
// IV-generation compressor (FIPS 180-4 §5.3.6). The returned words are
// the variant's IV as-is; truncation to t bits happens only when the
// variant emits its digest.
func DeriveSHA512tIV(t int) [8]uint64 {
	c := newChunked(newSHA2_64(sha512IVGenSeed, 64))
	c.update([]byte(fmt.Sprintf("SHA-512/%d", t)))
	digest := c.digest()

	var iv [8]uint64
	for i := range iv {
		iv[i] = binary.BigEndian.Uint64(digest[i*8:])
	}
	return iv
}
