// Package bases implements numeral systems whose digits are single
// characters, and converts between their representations and integers of
// every width from 8 to 128 bits.
package bases

import (
	"regexp"
	"strings"
)

// Known alphabets:
const (
	Numerals         = "0123456789"
	LettersLowercase = "abcdefghijklmnopqrstuvwxyz"
	LettersUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Base57Alphabet drops 0, 1, l, o and O from base-62 so tokens survive
	// being read aloud or typed by hand.
	Base57Alphabet = "23456789abcdefghijkmnpqrstuvwxyzABCDEFGHIJKLMNPQRSTUVWXYZ"
)

/*
	2=01
	...
	10=0123456789
	11=0123456789a
	...
	16=0123456789abcdef
	26=abcdefghijklmnopqrstuvwxyz
	32=0123456789ABCDEFGHJKMNPQRSTVWXYZ
	36=0123456789abcdefghijklmnopqrstuvwxyz
	52=abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ
	57=23456789abcdefghijkmnpqrstuvwxyzABCDEFGHIJKLMNPQRSTUVWXYZ
	58=123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ
	62=0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ
	64=ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/

	57 is this package's own token alphabet, not a standard one.
*/
var knownAlphabets = make(map[int]*Alphabet)

func init() {
	// base-1 makes no sense, start at 2
	for i := 2; i <= 10; i++ {
		knownAlphabets[i] = MustNew(Numerals[0:i])
	}

	// lowercase hex style from 11 to 16
	for i := 11; i <= 16; i++ {
		knownAlphabets[i] = MustNew(Numerals + LettersLowercase[0:i-10])
	}

	knownAlphabets[26] = MustNew(LettersLowercase)
	knownAlphabets[36] = MustNew(Numerals + LettersLowercase)
	knownAlphabets[52] = MustNew(LettersLowercase + LettersUppercase)
	knownAlphabets[57] = MustNew(Base57Alphabet)
	knownAlphabets[62] = MustNew(Numerals + LettersLowercase + LettersUppercase)

	// positional only, no padding or byte grouping as in RFC 4648
	knownAlphabets[64] = MustNew(LettersUppercase + LettersLowercase + Numerals + "+/")

	// Flickr style base-58, lowercase first to stay consistent with base-62.
	knownAlphabets[58] = MustNew(regexp.MustCompile("[0OlI]").ReplaceAllString(Numerals+LettersLowercase+LettersUppercase, ""))

	// Crockford base-32
	knownAlphabets[32] = MustNew(Numerals + regexp.MustCompile("[ILOU]").ReplaceAllString(strings.ToUpper(LettersLowercase), ""))
}

// Known returns the well-known alphabet for radix.
func Known(radix int) (*Alphabet, bool) {
	a, ok := knownAlphabets[radix]
	return a, ok
}

// ToBase encodes v with the well-known alphabet for radix.
func ToBase(v uint64, radix int) (string, error) {
	a, ok := Known(radix)
	if !ok {
		return "", &RadixError{Radix: radix}
	}
	return Encode(a, v)
}

// FromBase decodes rep with the well-known alphabet for radix.
func FromBase(rep string, radix int) (uint64, error) {
	a, ok := Known(radix)
	if !ok {
		return 0, &RadixError{Radix: radix}
	}
	return Decode[uint64](a, rep)
}
