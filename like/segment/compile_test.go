package segment

import (
	"bytes"
	"errors"
	"testing"
)

func TestCompileStructure(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		segments []string // debug layout per segment, '_' for wildcards
		leading  bool
		trailing bool
		minLen   int
	}{
		{
			name:     "plain literal",
			pattern:  "abc",
			segments: []string{`segment{"abc"}`},
			minLen:   3,
		},
		{
			name:     "empty pattern",
			pattern:  "",
			segments: []string{`segment{""}`},
			minLen:   0,
		},
		{
			name:     "prefix shape",
			pattern:  "abc%",
			segments: []string{`segment{"abc"}`, `segment{""}`},
			trailing: true,
			minLen:   3,
		},
		{
			name:     "suffix shape",
			pattern:  "%abc",
			segments: []string{`segment{""}`, `segment{"abc"}`},
			leading:  true,
			minLen:   3,
		},
		{
			name:     "contains shape",
			pattern:  "%abc%",
			segments: []string{`segment{""}`, `segment{"abc"}`, `segment{""}`},
			leading:  true,
			trailing: true,
			minLen:   3,
		},
		{
			name:     "underscores recorded by position",
			pattern:  "a_c__d",
			segments: []string{`segment{"a_c__d"}`},
			minLen:   6,
		},
		{
			name:     "wildcard run yields empty segments",
			pattern:  "a%%%b",
			segments: []string{`segment{"a"}`, `segment{""}`, `segment{""}`, `segment{"b"}`},
			minLen:   2,
		},
		{
			name:     "escapes become literals",
			pattern:  `10\%\_off%`,
			segments: []string{`segment{"10%_off"}`, `segment{""}`},
			trailing: true,
			minLen:   7,
		},
		{
			name:     "only wildcards",
			pattern:  "%",
			segments: []string{`segment{""}`, `segment{""}`},
			leading:  true,
			trailing: true,
			minLen:   0,
		},
		{
			name:     "escaped percent is not a boundary",
			pattern:  `a\%b`,
			segments: []string{`segment{"a%b"}`},
			minLen:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Compile([]byte(tt.pattern))
			if err != nil {
				t.Fatalf("Compile(%q) error: %v", tt.pattern, err)
			}
			segs := m.Segments()
			if len(segs) != len(tt.segments) {
				t.Fatalf("segment count = %d, want %d", len(segs), len(tt.segments))
			}
			for i := range segs {
				if got := segs[i].String(); got != tt.segments[i] {
					t.Errorf("segment %d = %s, want %s", i, got, tt.segments[i])
				}
				if want := len(segs[i].Literal) + len(segs[i].Underscores); segs[i].Length != want {
					t.Errorf("segment %d Length = %d, want %d", i, segs[i].Length, want)
				}
			}
			if m.LeadingWildcard() != tt.leading {
				t.Errorf("LeadingWildcard = %v, want %v", m.LeadingWildcard(), tt.leading)
			}
			if m.TrailingWildcard() != tt.trailing {
				t.Errorf("TrailingWildcard = %v, want %v", m.TrailingWildcard(), tt.trailing)
			}
			if m.MinLength() != tt.minLen {
				t.Errorf("MinLength = %d, want %d", m.MinLength(), tt.minLen)
			}
		})
	}
}

func TestCompileUnderscorePositions(t *testing.T) {
	m, err := Compile([]byte(`a_c%_x_`))
	if err != nil {
		t.Fatal(err)
	}
	segs := m.Segments()
	if len(segs) != 2 {
		t.Fatalf("segment count = %d, want 2", len(segs))
	}
	if !bytes.Equal(segs[0].Literal, []byte("ac")) {
		t.Errorf("segment 0 literal = %q, want %q", segs[0].Literal, "ac")
	}
	if len(segs[0].Underscores) != 1 || segs[0].Underscores[0] != 1 {
		t.Errorf("segment 0 underscores = %v, want [1]", segs[0].Underscores)
	}
	if !bytes.Equal(segs[1].Literal, []byte("x")) {
		t.Errorf("segment 1 literal = %q, want %q", segs[1].Literal, "x")
	}
	if len(segs[1].Underscores) != 2 || segs[1].Underscores[0] != 0 || segs[1].Underscores[1] != 2 {
		t.Errorf("segment 1 underscores = %v, want [0 2]", segs[1].Underscores)
	}
}

func TestCompileTrailingEscape(t *testing.T) {
	_, err := Compile([]byte(`abc\`))
	if err == nil {
		t.Fatal("Compile returned nil error for trailing escape")
	}
	if !errors.Is(err, ErrTrailingEscape) {
		t.Errorf("error %v does not unwrap to ErrTrailingEscape", err)
	}
	if !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("error %v does not unwrap to ErrInvalidPattern", err)
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile did not panic on invalid pattern")
		}
	}()
	MustCompile([]byte(`\`))
}
