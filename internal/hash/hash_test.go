package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFNV1a32(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"", 0x811c9dc5},
		{"a", 0xe40c292c},
		{"foobar", 0xbf9cf968},
		{"alex|love|crush|like_you|0", 290980519},
		{"To you, — ’", 631135130},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FNV1a32(tt.in))
			assert.Equal(t, FNV1a32(tt.in), FNV1a32(tt.in))
		})
	}
}

func TestBase36(t *testing.T) {
	assert.Equal(t, "0", Base36(0))
	assert.Equal(t, "ztntfp", Base36(2166136261))
	assert.Equal(t, "1z141z3", Base36(0xffffffff))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a b c", Normalize("  a\n\n b\t\tc  "))
	assert.Equal(t, "", Normalize(" \n\t "))
}

func TestFingerprintIgnoresFormatting(t *testing.T) {
	a := Fingerprint("To you,\n\nHello there.\n\n— Alex")
	b := Fingerprint("To you, Hello   there. — Alex\n")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, Fingerprint("To you, Hello there. — Sam"))
}

func TestSeedFromParts(t *testing.T) {
	assert.Equal(t, uint32(290980519), SeedFromParts("alex", "love", "crush", "like_you", 0))
	assert.NotEqual(t, SeedFromParts("a", 1), SeedFromParts("a", 1, "fallback"))
}
