package report

import (
	"encoding/json"
	"strings"
)

// maxDecodeAttempts bounds the repeated re-parse of a single string node.
// The stored procedures occasionally return double-encoded JSON in text
// columns; three rounds cover every double/triple wrapping seen upstream
// while guaranteeing termination on garbage.
const maxDecodeAttempts = 3

// DeepDecode replaces every string that parses as a JSON object or array
// with its decoded form, recursively into array elements and object field
// values. Strings that never resolve to JSON pass through unchanged, as do
// primitive values.
func DeepDecode(v any) any {
	switch val := v.(type) {
	case string:
		decoded, ok := decodeString(val)
		if !ok {
			return v
		}
		return DeepDecode(decoded)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = DeepDecode(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = DeepDecode(item)
		}
		return out
	default:
		return v
	}
}

// decodeString attempts the bounded re-parse of one string node. The
// second return value is false when the string never resolved to a
// non-string JSON value.
func decodeString(s string) (any, bool) {
	var current any = s
	for i := 0; i < maxDecodeAttempts; i++ {
		str, ok := current.(string)
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(str)
		if !looksLikeJSON(trimmed) {
			break
		}
		var parsed any
		if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
			break
		}
		current = parsed
	}
	if _, stillString := current.(string); stillString {
		return nil, false
	}
	return current, true
}

func looksLikeJSON(s string) bool {
	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		return true
	}
	// a JSON string literal may wrap yet another encoded document
	return len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)
}
