package optimize

import (
	"math"
	"strconv"
	"strings"
)

// ContrastRatio computes the WCAG contrast ratio between two hex colors.
// The result is symmetric and always within [1,21]. Malformed colors
// yield the minimum ratio so scores degrade instead of erroring.
func ContrastRatio(c1, c2 string) float64 {
	l1, ok1 := relativeLuminance(c1)
	l2, ok2 := relativeLuminance(c2)
	if !ok1 || !ok2 {
		return 1
	}
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	ratio := (l1 + 0.05) / (l2 + 0.05)
	if ratio < 1 {
		return 1
	}
	if ratio > 21 {
		return 21
	}
	return ratio
}

// relativeLuminance returns the WCAG relative luminance of an sRGB color.
func relativeLuminance(hex string) (float64, bool) {
	r, g, b, ok := parseHexColor(hex)
	if !ok {
		return 0, false
	}
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b), true
}

func linearize(channel float64) float64 {
	if channel <= 0.03928 {
		return channel / 12.92
	}
	return math.Pow((channel+0.055)/1.055, 2.4)
}

// parseHexColor accepts #rgb and #rrggbb forms and returns channels in
// [0,1].
func parseHexColor(raw string) (r, g, b float64, ok bool) {
	hex := strings.TrimPrefix(strings.TrimSpace(strings.ToLower(raw)), "#")
	switch len(hex) {
	case 3:
		hex = strings.Join([]string{
			hex[0:1] + hex[0:1],
			hex[1:2] + hex[1:2],
			hex[2:3] + hex[2:3],
		}, "")
	case 6:
	default:
		return 0, 0, 0, false
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	r = float64(value>>16&0xff) / 255
	g = float64(value>>8&0xff) / 255
	b = float64(value&0xff) / 255
	return r, g, b, true
}
