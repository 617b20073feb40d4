package strutil

import "fmt"

// ToString renders an arbitrary value as a string, preferring the value's
// own notion of its text form: strings and byte slices pass through,
// fmt.Stringer and error implementations are consulted, everything else
// falls back to the fmt "%v" representation. Nil renders as the empty
// string.
func ToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	case error:
		return t.Error()
	default:
		return fmt.Sprintf("%v", v)
	}
}
