// Package recommend scores catalog templates against an invoice, customer
// and optional preferences, and derives per-recommendation style overrides.
package recommend

import (
	"fmt"
	"strings"

	"github.com/smallbiznis/docstudio/internal/docerr"
)

// Industry is an enumerated business vertical supplied by the caller.
type Industry string

const (
	IndustryHealthcare Industry = "healthcare"
	IndustryFinance    Industry = "finance"
	IndustryLegal      Industry = "legal"
	IndustryConsulting Industry = "consulting"
	IndustryCreative   Industry = "creative"
	IndustryMarketing  Industry = "marketing"
	IndustryDesign     Industry = "design"
)

// ParseIndustry normalizes a raw industry string. Unknown industries are
// reported rather than silently ignored.
func ParseIndustry(raw string) (Industry, bool) {
	switch Industry(strings.ToLower(strings.TrimSpace(raw))) {
	case IndustryHealthcare:
		return IndustryHealthcare, true
	case IndustryFinance:
		return IndustryFinance, true
	case IndustryLegal:
		return IndustryLegal, true
	case IndustryConsulting:
		return IndustryConsulting, true
	case IndustryCreative:
		return IndustryCreative, true
	case IndustryMarketing:
		return IndustryMarketing, true
	case IndustryDesign:
		return IndustryDesign, true
	default:
		return "", false
	}
}

// Urgency is how quickly the caller wants the invoice paid.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyNormal Urgency = "normal"
	UrgencyHigh   Urgency = "high"
)

// ParseUrgency normalizes a raw urgency string.
func ParseUrgency(raw string) (Urgency, bool) {
	switch Urgency(strings.ToLower(strings.TrimSpace(raw))) {
	case UrgencyLow:
		return UrgencyLow, true
	case UrgencyNormal, "":
		return UrgencyNormal, true
	case UrgencyHigh:
		return UrgencyHigh, true
	default:
		return "", false
	}
}

// Preferences are optional caller hints that shape scoring and overrides.
type Preferences struct {
	Industry         Industry
	BrandPersonality string
	PaymentUrgency   Urgency
}

// Weights are the base-score multipliers. ConversionRate is a fraction in
// [0,1]; Readability and BrandConsistency multiply 0-10 scores and stay
// within [0,10]; MobileFriendly scales the flat 10-point mobile bonus and
// is a fraction in [0,1].
type Weights struct {
	ConversionRate   float64
	Readability      float64
	BrandConsistency float64
	MobileFriendly   float64
}

// PaletteOverride is the color pair applied for a matched industry.
type PaletteOverride struct {
	Primary string
	Accent  string
}

// Config externalizes the scoring weights and the per-industry color
// tables so the scoring algorithm itself carries no business literals.
type Config struct {
	Weights          Weights
	IndustryPalettes map[Industry]PaletteOverride
}

// DefaultConfig returns the production scoring configuration.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			ConversionRate:   0.4,
			Readability:      3,
			BrandConsistency: 2,
			MobileFriendly:   1,
		},
		IndustryPalettes: map[Industry]PaletteOverride{
			IndustryHealthcare: {Primary: "#0f766e", Accent: "#14b8a6"},
			IndustryFinance:    {Primary: "#1e3a8a", Accent: "#b45309"},
			IndustryCreative:   {Primary: "#7c3aed", Accent: "#db2777"},
		},
	}
}

// Validate rejects weights outside their documented ranges.
func (c Config) Validate() error {
	if c.Weights.ConversionRate < 0 || c.Weights.ConversionRate > 1 {
		return &docerr.ConfigurationError{
			Field:   "weights.conversion_rate",
			Message: fmt.Sprintf("must be within [0,1], got %v", c.Weights.ConversionRate),
		}
	}
	if c.Weights.MobileFriendly < 0 || c.Weights.MobileFriendly > 1 {
		return &docerr.ConfigurationError{
			Field:   "weights.mobile_friendly",
			Message: fmt.Sprintf("must be within [0,1], got %v", c.Weights.MobileFriendly),
		}
	}
	if c.Weights.Readability < 0 || c.Weights.Readability > 10 {
		return &docerr.ConfigurationError{
			Field:   "weights.readability",
			Message: fmt.Sprintf("must be within [0,10], got %v", c.Weights.Readability),
		}
	}
	if c.Weights.BrandConsistency < 0 || c.Weights.BrandConsistency > 10 {
		return &docerr.ConfigurationError{
			Field:   "weights.brand_consistency",
			Message: fmt.Sprintf("must be within [0,10], got %v", c.Weights.BrandConsistency),
		}
	}
	return nil
}
