package simd

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

func TestMemchr(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   byte
		want     int
	}{
		{"empty haystack", "", 'a', -1},
		{"single byte hit", "a", 'a', 0},
		{"single byte miss", "b", 'a', -1},
		{"short haystack", "abcdef", 'd', 3},
		{"short haystack miss", "abcdef", 'z', -1},
		{"first of several", "abcabc", 'b', 1},
		{"hit in swar chunk", "0123456789abcdef", 'c', 12},
		{"hit at chunk boundary", "01234567x", 'x', 8},
		{"hit in tail", "0123456789abcdefg", 'g', 16},
		{"long miss", strings.Repeat("x", 1000), 'y', -1},
		{"long hit at end", strings.Repeat("x", 999) + "y", 'y', 999},
		{"nul byte", "ab\x00cd", 0, 2},
		{"high byte", "ab\xffcd", 0xff, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Memchr([]byte(tt.haystack), tt.needle); got != tt.want {
				t.Errorf("Memchr(%q, %#x) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

func TestMemchrAgainstStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 500; trial++ {
		n := rng.Intn(300)
		haystack := make([]byte, n)
		for i := range haystack {
			haystack[i] = byte(rng.Intn(8)) // small alphabet forces hits
		}
		needle := byte(rng.Intn(8))
		want := bytes.IndexByte(haystack, needle)
		if got := Memchr(haystack, needle); got != want {
			t.Fatalf("Memchr(%v, %d) = %d, want %d", haystack, needle, got, want)
		}
	}
}

func TestMemmem(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     int
	}{
		{"empty needle", "abc", "", 0},
		{"empty haystack", "", "a", -1},
		{"needle longer than haystack", "ab", "abc", -1},
		{"single byte needle", "abcabc", "c", 2},
		{"basic hit", "hello world", "world", 6},
		{"basic miss", "hello world", "worlds", -1},
		{"repeated pattern", "aaaaaabaaaa", "aab", 4},
		{"needle equals haystack", "needle", "needle", 0},
		{"hit at start", "abcdef", "abc", 0},
		{"hit at end", "abcdef", "def", 3},
		{"overlapping candidates", "aaab", "aab", 1},
		{"high bytes", "a\xff\xfeb", "\xff\xfe", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Memmem([]byte(tt.haystack), []byte(tt.needle)); got != tt.want {
				t.Errorf("Memmem(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

func TestMemmemAgainstStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 500; trial++ {
		haystack := make([]byte, rng.Intn(400))
		for i := range haystack {
			haystack[i] = byte('a' + rng.Intn(3))
		}
		needle := make([]byte, 1+rng.Intn(6))
		for i := range needle {
			needle[i] = byte('a' + rng.Intn(3))
		}
		want := bytes.Index(haystack, needle)
		if got := Memmem(haystack, needle); got != want {
			t.Fatalf("Memmem(%q, %q) = %d, want %d", haystack, needle, got, want)
		}
	}
}

func TestIsASCII(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", true},
		{"short ascii", "abc", true},
		{"short non-ascii", "ab\x80", false},
		{"long ascii", strings.Repeat("a", 100), true},
		{"non-ascii in swar chunk", strings.Repeat("a", 40) + "\xc3\xa9" + strings.Repeat("b", 40), false},
		{"non-ascii in tail", strings.Repeat("a", 64) + "x\xff", false},
		{"boundary byte 7f", "\x7f", true},
		{"boundary byte 80", "\x80", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsASCII([]byte(tt.input)); got != tt.want {
				t.Errorf("IsASCII(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
