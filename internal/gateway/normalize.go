package gateway

import "strings"

// bom is the UTF-8 byte-order mark as it shows up inside header tokens when
// an export carries one mid-document.
const bom = "\uFEFF"

// NormalizeKeys returns a copy of the row with every key trimmed, stripped of
// a leading byte-order mark and lowercased. Values pass through unchanged.
// Applying it twice is the same as applying it once.
func NormalizeKeys(row map[string]string) map[string]string {
	out := make(map[string]string, len(row))
	for k, v := range row {
		out[NormalizeKey(k)] = v
	}
	return out
}

// NormalizeKey canonicalizes a single lookup key.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	key = strings.TrimPrefix(key, bom)
	return strings.ToLower(key)
}
