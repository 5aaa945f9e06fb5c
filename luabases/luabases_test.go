package luabases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
)

func TestScript(t *testing.T) {
	L := NewState()
	defer L.Close()

	require.NoError(t, L.DoString(`
local bases = require("bases")
local json = require("json")

local a = bases.new("23456789abcdefghijkmnpqrstuvwxyzABCDEFGHIJKLMNPQRSTUVWXYZ")
rep = bases.encode(a, 60)
val = bases.decode(a, "35")
zero = bases.encode(a, 0)
empty = bases.decode(a, "")
bad, msg = bases.decode(a, "35[")
str = a:String()
radix = a:Radix()
hex = bases.encode("0123456789abcdef", 255)
out = json.encode({rep = rep, val = val})
`))

	assert.Equal(t, lua.LString("35"), L.GetGlobal("rep"))
	assert.Equal(t, lua.LNumber(60), L.GetGlobal("val"))
	assert.Equal(t, lua.LString("2"), L.GetGlobal("zero"))
	assert.Equal(t, lua.LNumber(0), L.GetGlobal("empty"))
	assert.Equal(t, lua.LNil, L.GetGlobal("bad"))
	assert.Contains(t, L.GetGlobal("msg").String(), "not in alphabet")
	assert.Equal(t, lua.LString("23456789abcdefghijkmnpqrstuvwxyzABCDEFGHIJKLMNPQRSTUVWXYZ"), L.GetGlobal("str"))
	assert.Equal(t, "57", L.GetGlobal("radix").String())
	assert.Equal(t, lua.LString("ff"), L.GetGlobal("hex"))
	assert.JSONEq(t, `{"rep":"35","val":60}`, L.GetGlobal("out").String())
}

func TestKnownAndErrors(t *testing.T) {
	L := NewState()
	defer L.Close()

	require.NoError(t, L.DoString(`
local bases = require("bases")
local b36 = bases.known(36)
z = bases.encode(b36, 35)
none, nomsg = bases.known(99)
dup, dupmsg = bases.new("abca")
`))
	assert.Equal(t, lua.LString("z"), L.GetGlobal("z"))
	assert.Equal(t, lua.LNil, L.GetGlobal("none"))
	assert.Contains(t, L.GetGlobal("nomsg").String(), "99")
	assert.Equal(t, lua.LNil, L.GetGlobal("dup"))
	assert.Contains(t, L.GetGlobal("dupmsg").String(), "duplicate")

	assert.Error(t, L.DoString(`require("bases").encode("01", 1.5)`))
	assert.Error(t, L.DoString(`require("bases").encode({}, 1)`))
	assert.Error(t, L.DoString(`require("bases").encode("00", 1)`))
}

func TestNegativeRoundTrip(t *testing.T) {
	L := NewState()
	defer L.Close()

	require.NoError(t, L.DoString(`
local bases = require("bases")
local hex = bases.known(16)
minus = bases.encode(hex, -1)
back = bases.decode(hex, minus)
low = bases.decode(hex, bases.encode(hex, -9007199254740992))
huge, hugemsg = bases.decode(hex, "7fffffffffffffff")
wide, widemsg = bases.decode(hex, "10000000000000000")
`))
	assert.Equal(t, lua.LString("ffffffffffffffff"), L.GetGlobal("minus"))
	assert.Equal(t, lua.LNumber(-1), L.GetGlobal("back"))
	assert.Equal(t, lua.LNumber(-9007199254740992), L.GetGlobal("low"))
	assert.Equal(t, lua.LNil, L.GetGlobal("huge"))
	assert.Contains(t, L.GetGlobal("hugemsg").String(), "out of range")
	assert.Equal(t, lua.LNil, L.GetGlobal("wide"))
	assert.Contains(t, L.GetGlobal("widemsg").String(), "out of range")
}
