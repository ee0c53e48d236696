package optimize

import (
	"math"
	"testing"
)

func TestContrastRatioSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"#000000", "#ffffff"},
		{"#111827", "#ffffff"},
		{"#1d4ed8", "#fef3c7"},
		{"#abc", "#123456"},
	}
	for _, pair := range pairs {
		a := ContrastRatio(pair[0], pair[1])
		b := ContrastRatio(pair[1], pair[0])
		if math.Abs(a-b) > 1e-12 {
			t.Fatalf("contrast(%s,%s)=%v but contrast(%s,%s)=%v", pair[0], pair[1], a, pair[1], pair[0], b)
		}
	}
}

func TestContrastRatioBounds(t *testing.T) {
	tests := []struct {
		c1, c2 string
	}{
		{"#000000", "#ffffff"},
		{"#ffffff", "#ffffff"},
		{"#808080", "#808080"},
		{"#ff0000", "#00ff00"},
	}
	for _, tc := range tests {
		ratio := ContrastRatio(tc.c1, tc.c2)
		if ratio < 1 || ratio > 21 {
			t.Fatalf("contrast(%s,%s)=%v outside [1,21]", tc.c1, tc.c2, ratio)
		}
	}
}

func TestContrastRatioBlackOnWhite(t *testing.T) {
	ratio := ContrastRatio("#000000", "#ffffff")
	if math.Abs(ratio-21) > 1e-9 {
		t.Fatalf("expected 21, got %v", ratio)
	}
}

func TestContrastRatioIdenticalColors(t *testing.T) {
	if ratio := ContrastRatio("#336699", "#336699"); ratio != 1 {
		t.Fatalf("expected 1 for identical colors, got %v", ratio)
	}
}

func TestContrastRatioShortHexForm(t *testing.T) {
	long := ContrastRatio("#aabbcc", "#112233")
	short := ContrastRatio("#abc", "#123")
	if math.Abs(long-short) > 1e-12 {
		t.Fatalf("#abc should expand to #aabbcc: got %v vs %v", short, long)
	}
}

func TestContrastRatioMalformedColors(t *testing.T) {
	malformed := []string{"", "red", "#12", "#12345", "#zzzzzz", "ffffff0"}
	for _, bad := range malformed {
		if ratio := ContrastRatio(bad, "#ffffff"); ratio != 1 {
			t.Fatalf("malformed color %q: expected minimum ratio 1, got %v", bad, ratio)
		}
	}
}

func TestContrastRatioAcceptsUnprefixedHex(t *testing.T) {
	with := ContrastRatio("#111827", "#ffffff")
	without := ContrastRatio("111827", "ffffff")
	if math.Abs(with-without) > 1e-12 {
		t.Fatalf("prefix handling mismatch: %v vs %v", with, without)
	}
}
