package config

import (
	"encoding/json"
	"testing"

	"github.com/shabbyrobe/go-num"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/zxfonline/based/bases"
)

func TestUnmarshalYAML(t *testing.T) {
	var cfg struct {
		Users  Token    `yaml:"users"`
		Orders Token    `yaml:"orders"`
		Extra  Alphabet `yaml:"extra"`
	}
	doc := `
users:
  alphabet: "23456789abcdefghijkmnpqrstuvwxyzABCDEFGHIJKLMNPQRSTUVWXYZ"
  prefix: usr_
orders:
  alphabet: 36
  prefix: ord_
extra: "αβγδ"
`
	require.NoError(t, yaml.Unmarshal([]byte(doc), &cfg))

	assert.Equal(t, bases.Base57Alphabet, cfg.Users.Alphabet.String())
	assert.Equal(t, "usr_", cfg.Users.Prefix)
	assert.Equal(t, 36, cfg.Orders.Alphabet.Radix())
	assert.Equal(t, 4, cfg.Extra.Radix())

	codec, err := cfg.Users.Codec()
	require.NoError(t, err)
	v, err := codec.Parse(codec.Format(num.U128From64(60)))
	require.NoError(t, err)
	assert.Equal(t, num.U128From64(60), v)
}

func TestUnmarshalYAMLErrors(t *testing.T) {
	testCases := []string{
		`alphabet: "abca"`,
		`alphabet: "a"`,
		`alphabet: 99`,
		`alphabet: [1, 2]`,
	}
	for _, doc := range testCases {
		var tok Token
		assert.Error(t, yaml.Unmarshal([]byte(doc), &tok), doc)
	}

	var tok Token
	_, err := tok.Codec()
	assert.Error(t, err)
}

func TestDigitOnlyAlphabets(t *testing.T) {
	testCases := []struct {
		doc      string
		alphabet string
	}{
		{`alphabet: 012`, "012"},
		{`alphabet: 01`, "01"},
		{`alphabet: 0123`, "0123"},
		{`alphabet: 0123456789`, "0123456789"},
		{`alphabet: "36"`, "36"},
		{`alphabet: 16`, "0123456789abcdef"},
	}
	for _, tc := range testCases {
		var tok Token
		require.NoError(t, yaml.Unmarshal([]byte(tc.doc), &tok), tc.doc)
		assert.Equal(t, tc.alphabet, tok.Alphabet.String(), tc.doc)
	}

	var tok Token
	require.NoError(t, yaml.Unmarshal([]byte(`alphabet: 012`), &tok))
	v, err := bases.Decode[int](tok.Alphabet.Alphabet, "21")
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestDuplicateSurfaces(t *testing.T) {
	var a Alphabet
	err := yaml.Unmarshal([]byte(`"abcb"`), &a)
	var dup *bases.DuplicateCharacterError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, 'b', dup.Char)
	assert.Equal(t, 1, dup.First)
	assert.Equal(t, 3, dup.Second)
}

func TestMarshalRoundTrip(t *testing.T) {
	in := Token{Alphabet: Alphabet{bases.MustNew("0123456789")}, Prefix: "n_"}

	out, err := yaml.Marshal(in)
	require.NoError(t, err)
	var back Token
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, "0123456789", back.Alphabet.String())
	assert.Equal(t, "n_", back.Prefix)

	js, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"alphabet":"0123456789","prefix":"n_"}`, string(js))
	var fromJSON Token
	require.NoError(t, json.Unmarshal(js, &fromJSON))
	assert.Equal(t, "0123456789", fromJSON.Alphabet.String())
}
