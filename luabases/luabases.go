// Package luabases exposes alphabets to Lua scripts running on gopher-lua.
//
//	local bases = require("bases")
//	local a = bases.new("0123456789abcdef")
//	print(bases.encode(a, 255))      -- ff
//	print(bases.decode(a, "ff"))     -- 255
//	print(a:String(), a:Radix())
//
// Failures are returned Lua style as nil plus a message.
package luabases

import (
	"math"

	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"
	luar "layeh.com/gopher-luar"

	"github.com/zxfonline/based/bases"
	"github.com/zxfonline/based/log"
)

// ModuleName is the name scripts require.
const ModuleName = "bases"

// maxExact is the largest integer a Lua number holds exactly.
const maxExact = 1 << 53

// NewState creates a state with the base, table, string and math libraries
// plus the json and bases modules.
func NewState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true, IncludeGoStackTrace: true})
	for _, pair := range []struct {
		n string
		f lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage}, // Must be first
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(pair.f),
			NRet:    0,
			Protect: true,
		}, lua.LString(pair.n)); err != nil {
			panic(err)
		}
	}
	luajson.Preload(L)
	Preload(L)
	return L
}

// Preload makes the module available to require.
func Preload(L *lua.LState) {
	L.PreloadModule(ModuleName, Loader)
}

// Loader pushes the module table.
func Loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"new":    newAlphabet,
		"known":  known,
		"encode": encode,
		"decode": decode,
	})
	L.Push(mod)
	return 1
}

func fail(L *lua.LState, err error) int {
	log.Debugf("luabases: %v", err)
	L.Push(lua.LNil)
	L.Push(lua.LString(err.Error()))
	return 2
}

func newAlphabet(L *lua.LState) int {
	a, err := bases.New(L.CheckString(1))
	if err != nil {
		return fail(L, err)
	}
	L.Push(luar.New(L, a))
	return 1
}

func known(L *lua.LState) int {
	radix := L.CheckInt(1)
	a, ok := bases.Known(radix)
	if !ok {
		return fail(L, &bases.RadixError{Radix: radix})
	}
	L.Push(luar.New(L, a))
	return 1
}

// checkAlphabet accepts an alphabet userdata or its defining string.
func checkAlphabet(L *lua.LState, n int) *bases.Alphabet {
	switch v := L.Get(n).(type) {
	case *lua.LUserData:
		if a, ok := v.Value.(*bases.Alphabet); ok {
			return a
		}
	case lua.LString:
		a, err := bases.New(string(v))
		if err != nil {
			L.ArgError(n, err.Error())
			return nil
		}
		return a
	}
	L.ArgError(n, "alphabet expected")
	return nil
}

func encode(L *lua.LState) int {
	a := checkAlphabet(L, 1)
	n := float64(L.CheckNumber(2))
	if n != math.Trunc(n) || math.Abs(n) > maxExact {
		L.ArgError(2, "integer expected")
		return 0
	}
	rep, err := bases.Encode(a, int64(n))
	if err != nil {
		return fail(L, err)
	}
	L.Push(lua.LString(rep))
	return 1
}

func decode(L *lua.LState) int {
	a := checkAlphabet(L, 1)
	// bit patterns, so negative numbers written by encode read back
	v, err := bases.DecodeBits[int64](a, L.CheckString(2))
	if err != nil {
		return fail(L, err)
	}
	if v > maxExact || v < -maxExact {
		return fail(L, &bases.RangeError{Rep: L.CheckString(2), Type: "number"})
	}
	L.Push(lua.LNumber(v))
	return 1
}
