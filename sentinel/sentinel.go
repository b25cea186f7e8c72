// Package sentinel recognizes catalog values that still await translation.
//
// A pending value is the marker followed by the source-language text:
//
//	"[TODO: Translate] 模型列表"
package sentinel

import "strings"

// Marker is the prefix of every untranslated catalog value, including the
// single space that separates it from the source text.
const Marker = "[TODO: Translate] "

// IsPending reports whether v is a string starting with Marker.
func IsPending(v any) bool {
	s, ok := v.(string)
	return ok && strings.HasPrefix(s, Marker)
}

// ExtractSource returns the source text embedded in a pending value. A value
// without the marker is returned unchanged; the bare marker yields "".
func ExtractSource(s string) string {
	return strings.TrimPrefix(s, Marker)
}

// Source combines IsPending and ExtractSource.
func Source(v any) (string, bool) {
	if !IsPending(v) {
		return "", false
	}
	return ExtractSource(v.(string)), true
}
