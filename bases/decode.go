package bases

import (
	"math"
	"unicode/utf8"

	"github.com/shabbyrobe/go-num"
)

// Decode returns the value represented by rep.
//
// Digits are accumulated most significant first in a uint64. The result must
// lie in the range of T: decoding the representation of 255 as an int8 fails
// with a *RangeError even though 255 is the bit pattern of -1. Use
// DecodeBits to reinterpret bit patterns. The empty string decodes to 0.
func Decode[T Integer](a *Alphabet, rep string) (T, error) {
	n, signed := width[T]()
	typ := typeName[T]()
	acc, err := a.accumulate(rep, typ)
	if err != nil {
		return 0, err
	}
	max := mask(n)
	if signed {
		max >>= 1
	}
	if acc > max {
		return 0, &RangeError{Rep: rep, Type: typ}
	}
	return T(acc), nil
}

// DecodeBits returns the value whose bit pattern is represented by rep. The
// decoded value must fit the unsigned type of T's width; signed types are
// then reinterpreted in two's complement, so DecodeBits inverts Encode over
// the full range of T.
func DecodeBits[T Integer](a *Alphabet, rep string) (T, error) {
	n, _ := width[T]()
	typ := typeName[T]()
	acc, err := a.accumulate(rep, typ)
	if err != nil {
		return 0, err
	}
	if acc > mask(n) {
		return 0, &RangeError{Rep: rep, Type: typ}
	}
	return T(acc), nil
}

// Decode128 is Decode for 128-bit integers.
func Decode128[T Int128](a *Alphabet, rep string) (T, error) {
	var zero T
	typ := typeName[T]()
	acc, err := a.accumulate128(rep, typ)
	if err != nil {
		return zero, err
	}
	if isSigned128[T]() && acc.GreaterThan(maxI128) {
		return zero, &RangeError{Rep: rep, Type: typ}
	}
	return from128[T](acc), nil
}

// DecodeBits128 is DecodeBits for 128-bit integers.
func DecodeBits128[T Int128](a *Alphabet, rep string) (T, error) {
	var zero T
	acc, err := a.accumulate128(rep, typeName[T]())
	if err != nil {
		return zero, err
	}
	return from128[T](acc), nil
}

// lookup returns the digit value of c, which was decoded from size bytes.
// Invalid UTF-8 never matches, even when the alphabet holds U+FFFD.
func (a *Alphabet) lookup(c rune, size int) (uint64, bool) {
	if c == utf8.RuneError && size <= 1 {
		return 0, false
	}
	v, ok := a.values[c]
	return uint64(v), ok
}

func (a *Alphabet) accumulate(rep, typ string) (uint64, error) {
	radix := uint64(len(a.digits))
	limit, rem := uint64(math.MaxUint64)/radix, uint64(math.MaxUint64)%radix
	var acc uint64
	overflow := false
	for i := 0; i < len(rep); {
		c, size := utf8.DecodeRuneInString(rep[i:])
		i += size
		d, ok := a.lookup(c, size)
		if !ok {
			return 0, &UnknownCharacterError{Char: c}
		}
		// unknown characters take precedence over overflow
		if overflow || acc > limit || (acc == limit && d > rem) {
			overflow = true
			continue
		}
		acc = acc*radix + d
	}
	if overflow {
		return 0, &RangeError{Rep: rep, Type: typ}
	}
	return acc, nil
}

func (a *Alphabet) accumulate128(rep, typ string) (num.U128, error) {
	radix := uint64(len(a.digits))
	limit, remW := num.MaxU128.QuoRem64(radix)
	rem := remW.AsUint64()
	var acc num.U128
	overflow := false
	for i := 0; i < len(rep); {
		c, size := utf8.DecodeRuneInString(rep[i:])
		i += size
		d, ok := a.lookup(c, size)
		if !ok {
			return num.U128{}, &UnknownCharacterError{Char: c}
		}
		if overflow || acc.GreaterThan(limit) || (acc.Equal(limit) && d > rem) {
			overflow = true
			continue
		}
		acc = acc.Mul64(radix).Add64(d)
	}
	if overflow {
		return num.U128{}, &RangeError{Rep: rep, Type: typ}
	}
	return acc, nil
}
