package interpreter

import (
	"strconv"
	"strings"
)

// Runtime values are represented with Go's empty interface:
//
//	float64        -> Number
//	string         -> String
//	bool           -> Bool
//	nil            -> Nil
//	*Instance      -> Instance
//	Callable       -> Function, Class, or a native built-in
//
// This mirrors spec.md §3's LiteralValue sum type without introducing a
// wrapper struct for every literal kind, matching the teacher corpus's
// habit of using Go's own type system (interfaces + type switches) instead
// of hand-rolled tagged unions.

// isTruthy implements spec.md §4.4: only nil and false are falsey.
func isTruthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements spec.md's `==`: same-variant componentwise equality,
// numbers compared with IEEE-754 `==` (so NaN == NaN is false), different
// variants always unequal.
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// stringify renders a runtime value for `print` and string concatenation,
// per spec.md §6 and the Open Question resolved in SPEC_FULL.md: integral
// floats print without a trailing ".0"; everything else uses the shortest
// round-trip decimal. Grounded on original_source/rust-lox's interpreter.rs
// formatting routine.
func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(val)
	case string:
		return val
	case *Instance:
		return val.String()
	case Callable:
		return val.String()
	default:
		return ""
	}
}

func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// strconv's 'g' verb already omits a trailing ".0" for whole numbers
	// (it prints "3", not "3.0"), except it may fall back to exponential
	// notation for very large/small magnitudes; in that case fall back to
	// the plain decimal round-trip form.
	if !strings.ContainsAny(s, "eE") {
		return s
	}
	s = strconv.FormatFloat(f, 'f', -1, 64)
	return s
}
