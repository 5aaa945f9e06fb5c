package bases

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/shabbyrobe/go-num"
)

// Integer is the set of native integer types that can be encoded and
// decoded. int, uint and uintptr are the pointer-sized pair.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Int128 is the set of 128-bit integer types.
type Int128 interface {
	num.U128 | num.I128
}

var maxI128 = num.U128FromRaw(math.MaxInt64, math.MaxUint64)

// width returns the size of T in bits and whether T is signed.
func width[T Integer]() (int, bool) {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8, ^zero < 0
}

// mask returns the largest unsigned value held in n bits, n <= 64.
func mask(n int) uint64 {
	if n >= 64 {
		return math.MaxUint64
	}
	return 1<<uint(n) - 1
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// to128 returns the bit pattern of v as an unsigned value.
func to128[T Int128](v T) num.U128 {
	switch x := any(v).(type) {
	case num.I128:
		hi, lo := x.Raw()
		return num.U128FromRaw(hi, lo)
	default:
		return any(v).(num.U128)
	}
}

// from128 reinterprets u as T.
func from128[T Int128](u num.U128) T {
	var out T
	switch p := any(&out).(type) {
	case *num.U128:
		*p = u
	case *num.I128:
		hi, lo := u.Raw()
		*p = num.I128FromRaw(hi, lo)
	}
	return out
}

func isSigned128[T Int128]() bool {
	var zero T
	_, ok := any(zero).(num.I128)
	return ok
}
