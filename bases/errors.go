package bases

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrRange matches every *RangeError through errors.Is.
	ErrRange = errors.New("bases: value out of range")
	// ErrInvalidUTF8 is returned when an alphabet source is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("bases: alphabet is not valid UTF-8")
)

// DuplicateCharacterError is returned by New when a character appears more
// than once. Positions are zero-based character offsets, not byte offsets.
type DuplicateCharacterError struct {
	Char   rune
	First  int
	Second int
}

func (e *DuplicateCharacterError) Error() string {
	return fmt.Sprintf("bases: duplicate character %q at positions %d and %d", e.Char, e.First, e.Second)
}

// UnknownCharacterError is returned when decoding meets a character that is
// not part of the alphabet.
type UnknownCharacterError struct {
	Char rune
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("bases: character %q not in alphabet", e.Char)
}

// RangeError reports a value that cannot be represented by the requested
// integer type.
type RangeError struct {
	// Rep is the representation being decoded, empty when encoding.
	Rep  string
	Type string
}

func (e *RangeError) Error() string {
	if e.Rep == "" {
		return fmt.Sprintf("bases: digit out of range for %s", e.Type)
	}
	return fmt.Sprintf("bases: %q out of range for %s", e.Rep, e.Type)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// RadixError is returned by New for alphabets with fewer than two characters,
// and by ToBase and FromBase for radixes without a well-known alphabet.
type RadixError struct {
	Radix int
}

func (e *RadixError) Error() string {
	return fmt.Sprintf("bases: unsupported radix %d", e.Radix)
}
