// Package normalize flattens provider-specific value encodings. Several OSINT
// providers wrap field values in tagged nodes of the form
// {type, proper_key, value} and encode booleans as numbers, tokens, or
// localized strings; everything downstream works on the plain values produced
// here.
package normalize

import "strings"

// Value recursively unwraps tagged value nodes and normalizes containers.
// Any object carrying a "value" key is replaced by the normalized value;
// all other object keys and array elements are normalized in place.
// Plain values pass through unchanged, so Value is idempotent.
func Value(v any) any {
	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Value(item)
		}
		return out
	case map[string]any:
		if inner, ok := val["value"]; ok {
			return Value(inner)
		}
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Value(item)
		}
		return out
	default:
		return v
	}
}

// Object normalizes v and returns it as a map when the result is one.
func Object(v any) (map[string]any, bool) {
	m, ok := Value(v).(map[string]any)
	return m, ok
}

var trueTokens = map[string]bool{
	"true": true, "1": true, "yes": true, "y": true,
	"found": true, "valid": true, "是": true,
}

var falseTokens = map[string]bool{
	"false": true, "0": true, "no": true, "n": true, "none": true,
	"not_found": true, "invalid": true, "否": true,
}

// Bool coerces any provider value to a boolean. The mapping is total: numbers
// other than 1 are false, recognized string tokens map to their polarity,
// unmatched non-empty strings are true, and anything else is true when
// non-nil. Bool never fails.
func Bool(v any) bool {
	if b, known := Flag(v); known {
		return b
	}
	switch val := v.(type) {
	case string:
		return val != ""
	case nil:
		return false
	default:
		return true
	}
}

// Flag performs the tri-valued coercion used for flag detection: it reports
// the boolean meaning of v plus whether v carried one at all. Strings outside
// the token sets and non-scalar values are unknown rather than guessed.
func Flag(v any) (value, known bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case float64:
		return val == 1, true
	case int:
		return val == 1, true
	case int64:
		return val == 1, true
	case string:
		tok := strings.ToLower(strings.TrimSpace(val))
		if trueTokens[tok] {
			return true, true
		}
		if falseTokens[tok] {
			return false, true
		}
		return false, false
	default:
		return false, false
	}
}
