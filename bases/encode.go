package bases

import (
	"math/bits"
	"strings"

	"github.com/shabbyrobe/go-num"
)

// Encode returns the representation of v. Signed values are encoded as the
// unsigned value with the same bit pattern, so -1 as an int8 encodes like 255.
// Zero encodes as the alphabet's first character.
func Encode[T Integer](a *Alphabet, v T) (string, error) {
	n, _ := width[T]()
	u := uint64(v) & mask(n)
	if n <= bits.UintSize {
		return a.encodeNarrow(uint(u)), nil
	}
	return a.encodeWide(num.U128From64(u), typeName[T]())
}

// Encode128 is Encode for 128-bit integers.
func Encode128[T Int128](a *Alphabet, v T) (string, error) {
	return a.encodeWide(to128(v), typeName[T]())
}

func (a *Alphabet) encodeNarrow(v uint) string {
	radix := uint(len(a.digits))
	var stack []rune
	// at least once, so 0 yields the zero digit
	for {
		stack = append(stack, a.digits[v%radix])
		v /= radix
		if v == 0 {
			break
		}
	}
	return joinReversed(stack)
}

func (a *Alphabet) encodeWide(v num.U128, typ string) (string, error) {
	radix := uint64(len(a.digits))
	var stack []rune
	for {
		q, rW := v.QuoRem64(radix)
		r := rW.AsUint64()
		if r >= radix {
			return "", &RangeError{Type: typ}
		}
		stack = append(stack, a.digits[int(r)])
		v = q
		if v.IsZero() {
			break
		}
	}
	return joinReversed(stack), nil
}

func joinReversed(stack []rune) string {
	var b strings.Builder
	b.Grow(len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		b.WriteRune(stack[i])
	}
	return b.String()
}
