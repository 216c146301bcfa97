package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"log"
	"strings"

	"github.com/nazrhom/cryptonum/bigint"
	"github.com/pborman/options"
	"golang.org/x/xerrors"
)

func runModExp() {
	opts := &struct {
		Base     string       `getopt:"-b --base      Base operand, hex"`
		Exponent string       `getopt:"-e --exponent  Exponent operand, hex"`
		Modulus  string       `getopt:"-m --modulus   Modulus operand, hex; must be odd and its bit length a multiple of 32"`
		Help     options.Help `getopt:"-h --help      Display help"`
	}{}

	options.RegisterAndParse(opts)

	if opts.Base == "" || opts.Exponent == "" || opts.Modulus == "" {
		log.Fatal("--base, --exponent and --modulus are all required")
	}

	modulusBytes, err := decodeHexOperand(opts.Modulus)
	if err != nil {
		log.Fatal(err)
	}
	if len(modulusBytes)%4 != 0 {
		log.Fatalf("modulus must be a whole number of 32-bit limbs (%d bytes is not a multiple of 4)", len(modulusBytes))
	}
	if modulusBytes[len(modulusBytes)-1]&1 == 0 {
		log.Fatal("modulus must be odd: Montgomery arithmetic requires an odd modulus")
	}
	modulusBits := len(modulusBytes) * 8

	modulus, err := hexToUBigInt(opts.Modulus, modulusBits)
	if err != nil {
		log.Fatal(err)
	}
	base, err := hexToUBigInt(opts.Base, modulusBits)
	if err != nil {
		log.Fatal(err)
	}
	exponentBytes, err := decodeHexOperand(opts.Exponent)
	if err != nil {
		log.Fatal(err)
	}

	result := modExp(base, modulus, exponentBits(exponentBytes))
	fmt.Println(ubigintToHex(result))
}

// modExp computes base^exponent mod modulus via left-to-right
// square-and-multiply over the Montgomery representation bigint's
// ConvertMontgomery/MultiplyMontgomery/ReduceMontgomery implement —
// the textbook RSA encrypt/decrypt/sign primitive.
func modExp(base, modulus *bigint.UBigInt, bits []bool) *bigint.UBigInt {
	one := bigint.New(modulus.Bits())
	one.SetU32(1)

	baseMont := base.ConvertMontgomery(modulus)
	resultMont := one.ConvertMontgomery(modulus)

	for _, bit := range bits {
		resultMont = resultMont.MultiplyMontgomery(resultMont, modulus)
		if bit {
			resultMont = resultMont.MultiplyMontgomery(baseMont, modulus)
		}
	}

	resultMont.ReduceMontgomery(modulus)

	result := bigint.New(modulus.Bits())
	result.Set(resultMont)
	return result
}

// exponentBits unpacks a big-endian byte slice into its bits, most
// significant first, skipping any leading zero bits so the
// square-and-multiply loop above does no wasted initial squarings.
func exponentBits(raw []byte) []bool {
	var out []bool
	started := false
	for _, b := range raw {
		for i := 7; i >= 0; i-- {
			bit := (b>>uint(i))&1 == 1
			if !started {
				if !bit {
					continue
				}
				started = true
			}
			out = append(out, bit)
		}
	}
	if len(out) == 0 {
		out = []bool{false}
	}
	return out
}

func decodeHexOperand(s string) ([]byte, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"))
	if err != nil {
		return nil, xerrors.Errorf("decoding hex operand %q: %w", s, err)
	}
	return raw, nil
}

// hexToUBigInt decodes a big-endian hex operand into a UBigInt with the
// given bit capacity, little-endian limb order.
func hexToUBigInt(s string, bits int) (*bigint.UBigInt, error) {
	raw, err := decodeHexOperand(s)
	if err != nil {
		return nil, err
	}

	u := bigint.New(bits)
	limbs := u.Limbs()
	for i := 0; i < len(raw); i++ {
		byteIdx := len(raw) - 1 - i
		limbIdx := i / 4
		if limbIdx >= len(limbs) {
			return nil, xerrors.Errorf("operand %q exceeds %d-bit capacity", s, bits)
		}
		limbs[limbIdx] |= uint32(raw[byteIdx]) << (uint(i%4) * 8)
	}
	return u, nil
}

// ubigintToHex renders a UBigInt's numeric value as a minimal big-endian
// hex string (no leading zero bytes, except for the value zero itself).
func ubigintToHex(u *bigint.UBigInt) string {
	limbs := u.Limbs()
	raw := make([]byte, len(limbs)*4)
	for i, limb := range limbs {
		binary.LittleEndian.PutUint32(raw[i*4:], limb)
	}
	for l, r := 0, len(raw)-1; l < r; l, r = l+1, r-1 {
		raw[l], raw[r] = raw[r], raw[l]
	}

	i := 0
	for i < len(raw)-1 && raw[i] == 0 {
		i++
	}
	return hex.EncodeToString(raw[i:])
}
