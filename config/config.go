// Package config provides value types that let callers embed alphabets and
// token settings in their own YAML or text configuration. Reading the
// configuration is left to the caller.
package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/zxfonline/based/bases"
	"github.com/zxfonline/based/token"
)

// Alphabet is a *bases.Alphabet that decodes from a YAML scalar or text. An
// unquoted decimal integer without a leading zero selects a well-known
// alphabet by radix; any other scalar, quoted "36" included, is the alphabet.
type Alphabet struct {
	*bases.Alphabet
}

func (a Alphabet) MarshalText() ([]byte, error) {
	if a.Alphabet == nil {
		return nil, nil
	}
	return []byte(a.String()), nil
}

func (a *Alphabet) UnmarshalText(text []byte) error {
	alphabet, err := bases.New(string(text))
	if err != nil {
		return errors.Wrap(err, "invalid alphabet")
	}
	a.Alphabet = alphabet
	return nil
}

func (a Alphabet) MarshalYAML() (interface{}, error) {
	if a.Alphabet == nil {
		return nil, nil
	}
	return a.String(), nil
}

func (a *Alphabet) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return errors.Wrap(err, "alphabet must be a string or a radix")
	}
	// only a plain decimal integer selects a radix; 012 or 01 are alphabets
	var raw interface{}
	if err := unmarshal(&raw); err == nil && !strings.HasPrefix(s, "0") {
		if _, isInt := raw.(int); isInt {
			radix, err := strconv.Atoi(s)
			if err == nil {
				known, ok := bases.Known(radix)
				if !ok {
					return errors.Wrap(&bases.RadixError{Radix: radix}, "invalid alphabet")
				}
				a.Alphabet = known
				return nil
			}
		}
	}
	return a.UnmarshalText([]byte(s))
}

// Token describes a token codec.
type Token struct {
	Alphabet Alphabet `yaml:"alphabet" json:"alphabet"`
	Prefix   string   `yaml:"prefix" json:"prefix"`
}

// Codec builds the codec described by t.
func (t Token) Codec() (*token.Codec, error) {
	if t.Alphabet.Alphabet == nil {
		return nil, errors.New("token alphabet not set")
	}
	return token.NewCodec(t.Alphabet.Alphabet, t.Prefix), nil
}
