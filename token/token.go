// Package token formats 128-bit values as fixed-width, prefixed tokens in a
// custom alphabet, e.g. for exposing database keys or UUIDs in URLs.
package token

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shabbyrobe/go-num"

	"github.com/zxfonline/based/bases"
	"github.com/zxfonline/based/log"
	"github.com/zxfonline/based/random"
)

var (
	// ErrPrefix is returned when a token lacks the codec's prefix.
	ErrPrefix = errors.New("token: missing prefix")
	// ErrLength is returned when a token body has the wrong number of digits.
	ErrLength = errors.New("token: invalid length")
)

// Codec formats and parses tokens. It is safe for concurrent use.
type Codec struct {
	alphabet *bases.Alphabet
	prefix   string
	width    int
}

// NewCodec creates a codec whose tokens are prefix followed by exactly as
// many digits as the largest 128-bit value needs.
func NewCodec(alphabet *bases.Alphabet, prefix string) *Codec {
	max, err := bases.Encode128(alphabet, num.MaxU128)
	if err != nil {
		// digits of a valid alphabet always index it
		panic(err)
	}
	return &Codec{
		alphabet: alphabet,
		prefix:   prefix,
		width:    utf8.RuneCountInString(max),
	}
}

// Alphabet returns the codec's alphabet.
func (c *Codec) Alphabet() *bases.Alphabet {
	return c.alphabet
}

// Prefix returns the codec's prefix.
func (c *Codec) Prefix() string {
	return c.prefix
}

// Width returns the number of digits following the prefix.
func (c *Codec) Width() int {
	return c.width
}

// Format returns the token for v, left-padded with the zero digit.
func (c *Codec) Format(v num.U128) string {
	digits, err := bases.Encode128(c.alphabet, v)
	if err != nil {
		panic(err)
	}

	builder := &strings.Builder{}
	builder.WriteString(c.prefix)
	for i := c.width - utf8.RuneCountInString(digits); i > 0; i-- {
		builder.WriteRune(c.alphabet.Zero())
	}
	builder.WriteString(digits)
	return builder.String()
}

// Parse returns the value of token.
func (c *Codec) Parse(token string) (num.U128, error) {
	if !strings.HasPrefix(token, c.prefix) {
		return num.U128{}, ErrPrefix
	}
	body := token[len(c.prefix):]
	if utf8.RuneCountInString(body) != c.width {
		return num.U128{}, errors.Wrapf(ErrLength, "expected %d digits", c.width)
	}
	v, err := bases.Decode128[num.U128](c.alphabet, body)
	if err != nil {
		return num.U128{}, errors.Wrap(err, "unable to decode token")
	}
	return v, nil
}

// FromUUID returns the token for id.
func (c *Codec) FromUUID(id uuid.UUID) string {
	var hi, lo uint64
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(id[i])
		lo = lo<<8 | uint64(id[8+i])
	}
	return c.Format(num.U128FromRaw(hi, lo))
}

// ToUUID parses token back into the UUID it was made from.
func (c *Codec) ToUUID(token string) (uuid.UUID, error) {
	v, err := c.Parse(token)
	if err != nil {
		return uuid.Nil, err
	}
	var id uuid.UUID
	hi, lo := v.Raw()
	for i := 7; i >= 0; i-- {
		id[i] = byte(hi)
		id[8+i] = byte(lo)
		hi >>= 8
		lo >>= 8
	}
	return id, nil
}

// New returns a token for a cryptographically random value.
func (c *Codec) New() (string, error) {
	v, err := random.U128()
	if err != nil {
		log.WithFields(log.Fields{"prefix": c.prefix}).Errorf("token: unable to generate random value: %v", err)
		return "", err
	}
	token := c.Format(v)
	log.WithFields(log.Fields{"prefix": c.prefix, "width": c.width}).Trace("token: generated")
	return token, nil
}
