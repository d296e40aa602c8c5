// Package hash provides the 32-bit FNV-1a hash used for seeds and essay
// fingerprints.
package hash

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

const (
	offsetBasis uint32 = 0x811c9dc5
	prime       uint32 = 0x01000193
)

// FNV1a32 hashes s one UTF-16 code unit at a time, so fingerprints match the
// ones already stored by browser clients.
func FNV1a32(s string) uint32 {
	h := offsetBasis
	for _, u := range utf16.Encode([]rune(s)) {
		h ^= uint32(u)
		h *= prime
	}
	return h
}

// Base36 renders u as a lowercase base-36 string.
func Base36(u uint32) string {
	return strconv.FormatUint(uint64(u), 36)
}

// Normalize collapses whitespace runs to a single space and trims the ends.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Fingerprint returns the history key for a generated essay.
func Fingerprint(text string) string {
	return Base36(FNV1a32(Normalize(text)))
}

// SeedFromParts joins parts with "|" and hashes the result.
func SeedFromParts(parts ...any) uint32 {
	strs := make([]string, len(parts))
	for i, p := range parts {
		switch v := p.(type) {
		case string:
			strs[i] = v
		case fmt.Stringer:
			strs[i] = v.String()
		default:
			strs[i] = fmt.Sprint(v)
		}
	}
	return FNV1a32(strings.Join(strs, "|"))
}
