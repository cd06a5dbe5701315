package luadef

import (
	lua "github.com/Shopify/go-lua"

	"github.com/louisbranch/stellarforge/internal/galaxy/fixed"
)

// fixedValue is the userdata wrapper for fixed-precision literals built by
// the f(num, denom) shortcut.
type fixedValue struct {
	Value fixed.Value
}

// vector is the userdata wrapper for the v(x, y, z) position shortcut.
type vector struct {
	X, Y, Z float64
}

// registerValueConstructors publishes the f and v shortcuts scripts use for
// fixed-precision and vector literals.
func registerValueConstructors(state *lua.State) {
	state.Register("f", func(state *lua.State) int {
		num := lua.CheckInteger(state, 1)
		denom := lua.CheckInteger(state, 2)
		if denom == 0 {
			lua.ArgumentError(state, 2, "fixed denominator cannot be zero")
			return 0
		}
		state.PushUserData(fixedValue{Value: fixed.FromRat(int64(num), int64(denom))})
		return 1
	})
	state.Register("v", func(state *lua.State) int {
		x := lua.CheckNumber(state, 1)
		y := lua.CheckNumber(state, 2)
		z := lua.CheckNumber(state, 3)
		state.PushUserData(vector{X: x, Y: y, Z: z})
		return 1
	})
}

// checkFixedOrNumber accepts a fixed userdata or a plain number argument,
// the two datatypes the numeric setters take.
func checkFixedOrNumber(state *lua.State, index int) fixed.Value {
	switch state.TypeOf(index) {
	case lua.TypeNumber:
		n, _ := state.ToNumber(index)
		return fixed.FromFloat(n)
	case lua.TypeUserData:
		if v, ok := state.ToUserData(index).(fixedValue); ok {
			return v.Value
		}
	}
	lua.Errorf(state, "bad datatype, expected fixed or float, got %s", lua.TypeNameOf(state, index))
	return fixed.Zero
}

// checkVector requires a vector userdata argument.
func checkVector(state *lua.State, index int) vector {
	if v, ok := state.ToUserData(index).(vector); ok {
		return v
	}
	lua.ArgumentError(state, index, "vector expected")
	return vector{}
}
