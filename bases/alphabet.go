package bases

import (
	"unicode/utf8"

	"github.com/zxfonline/based/log"
)

// Alphabet is a numeral system with single-character digits. The value of a
// character is its index in the alphabet. An Alphabet is never modified after
// New returns and is safe for concurrent use.
type Alphabet struct {
	digits []rune
	values map[rune]int
}

// New creates an alphabet from s.
//
// It fails with ErrInvalidUTF8 if s is not valid UTF-8, with a *RadixError
// if s holds fewer than two characters (radix 1 would never terminate when
// encoding), and with a *DuplicateCharacterError if a character repeats.
func New(s string) (*Alphabet, error) {
	if !utf8.ValidString(s) {
		log.Debugf("bases: rejected alphabet %q: invalid UTF-8", s)
		return nil, ErrInvalidUTF8
	}
	digits := []rune(s)
	if len(digits) < 2 {
		err := &RadixError{Radix: len(digits)}
		log.Debugf("bases: rejected alphabet %q: %v", s, err)
		return nil, err
	}
	values := make(map[rune]int, len(digits))
	for i, c := range digits {
		if first, ok := values[c]; ok {
			err := &DuplicateCharacterError{Char: c, First: first, Second: i}
			log.Debugf("bases: rejected alphabet %q: %v", s, err)
			return nil, err
		}
		values[c] = i
	}
	log.Tracef("bases: built radix %d alphabet %q", len(digits), s)
	return &Alphabet{digits: digits, values: values}, nil
}

// MustNew is like New but panics on error.
func MustNew(s string) *Alphabet {
	a, err := New(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String renders the alphabet as its defining character sequence.
func (a *Alphabet) String() string {
	return string(a.digits)
}

// Radix returns the number of digits.
func (a *Alphabet) Radix() int {
	return len(a.digits)
}

// Zero returns the digit with value 0.
func (a *Alphabet) Zero() rune {
	return a.digits[0]
}

// Digit returns the character for digit value v.
func (a *Alphabet) Digit(v int) (rune, bool) {
	if v < 0 || v >= len(a.digits) {
		return 0, false
	}
	return a.digits[v], true
}

// Value returns the digit value of c.
func (a *Alphabet) Value(c rune) (int, bool) {
	v, ok := a.values[c]
	return v, ok
}
