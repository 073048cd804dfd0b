// Package fingerprint derives deterministic cache keys from a product set
// and an analysis settings object.
//
// The key gates calls to the remote analysis backend: identical logical
// inputs must yield byte-identical keys regardless of product-id order or
// settings key insertion order, and any content change must change the key.
package fingerprint

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Compute builds the cache key for a product set and settings object.
//
// The key has the shape "{count}|{sortedIDs join '-'}|{canonical settings}".
// The input slice is not mutated.
func Compute(productIDs []string, settings map[string]any) string {
	ids := make([]string, len(productIDs))
	copy(ids, productIDs)
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString(strconv.Itoa(len(ids)))
	b.WriteByte('|')
	b.WriteString(strings.Join(ids, "-"))
	b.WriteByte('|')
	b.WriteString(canonicalJSON(settings))
	return b.String()
}

// canonicalJSON serializes v with all object keys sorted at every nesting
// level, so semantically identical objects serialize identically.
//
// encoding/json already emits map keys in sorted order; round-tripping
// through a generic value converts any struct fields into maps first, which
// keeps the output independent of field declaration or insertion order.
func canonicalJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		// Unserializable settings degrade to an empty object rather than
		// failing the fingerprint; callers never see an error from keying.
		return "{}"
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return string(raw)
	}

	out, err := json.Marshal(generic)
	if err != nil {
		return string(raw)
	}
	return string(out)
}
