package interpreter

import "time"

// defineBuiltins binds the two native callables spec.md §6 requires into
// the globals environment: `clock` (a wall-clock string) and `unixClock`
// (milliseconds since epoch, as a Lox Number).
func defineBuiltins(globals *Environment) {
	globals.Define("clock", &NativeFunction{
		name: "clock",
		fn: func() interface{} {
			return time.Now().Format("15:04:05")
		},
	})
	globals.Define("unixClock", &NativeFunction{
		name: "unixClock",
		fn: func() interface{} {
			return float64(time.Now().UnixMilli())
		},
	})
}
