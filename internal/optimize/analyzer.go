// Package optimize scores a chosen (template, invoice) pair along four
// independent axes: readability, predicted payment conversion, brand
// consistency and accessibility compliance. All analyses clamp rather
// than error on extreme inputs.
package optimize

import (
	"github.com/smallbiznis/docstudio/internal/catalog/domain"
	"github.com/smallbiznis/docstudio/internal/invoicing"
)

const (
	minReadableFontSize = 12
	minContrastRatio    = 4.5
	minLineHeight       = 1.4
	highAmountThreshold = 10000
	minPaymentMethods   = 3
	minBrandColors      = 2
)

// Tier is a WCAG conformance level.
type Tier string

const (
	TierNone    Tier = "none"
	TierPartial Tier = "partial"
	TierAA      Tier = "AA"
	TierAAA     Tier = "AAA"
)

// SectionReport carries one axis score plus its ordered diagnostics.
// Issues and suggestions appear in the fixed check order, so fixtures can
// assert exact contents.
type SectionReport struct {
	Score       float64  `json:"score"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// AccessibilityReport classifies the design into a WCAG tier.
type AccessibilityReport struct {
	Tier          Tier     `json:"tier"`
	ContrastRatio float64  `json:"contrast_ratio"`
	Issues        []string `json:"issues"`
	Suggestions   []string `json:"suggestions"`
}

// Report is the four-part quality report used to justify or refine a
// template choice before rendering.
type Report struct {
	Readability   SectionReport       `json:"readability"`
	Conversion    SectionReport       `json:"conversion"`
	Branding      SectionReport       `json:"branding"`
	Accessibility AccessibilityReport `json:"accessibility"`
}

// Analyzer runs the four sub-analyses. It is stateless and safe for
// concurrent use.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze produces the quality report for an invoice rendered with the
// given template and style overrides. Sub-analyses run in a fixed order
// for deterministic diagnostics.
func (a *Analyzer) Analyze(inv invoicing.Invoice, tpl domain.Template, overrides domain.Customizations) Report {
	style := tpl.Style.Data()
	metrics := tpl.Metrics.Data()
	stats := tpl.UsageStats.Data()

	return Report{
		Readability:   analyzeReadability(style),
		Conversion:    analyzeConversion(inv, tpl, stats, overrides, style),
		Branding:      analyzeBranding(metrics, style),
		Accessibility: analyzeAccessibility(style),
	}
}

// analyzeReadability starts at a perfect 10 and subtracts per defect,
// clamping the result to [0,10].
func analyzeReadability(style domain.Style) SectionReport {
	report := SectionReport{Score: 10}

	if style.Fonts.Primary.Size < minReadableFontSize {
		report.Score -= 1
		report.Issues = append(report.Issues, "primary font size is below 12pt")
		report.Suggestions = append(report.Suggestions, "increase the primary font size to at least 12pt")
	}

	if ContrastRatio(style.Palette.Text, style.Palette.Background) < minContrastRatio {
		report.Score -= 2
		report.Issues = append(report.Issues, "text to background contrast is below 4.5:1")
		report.Suggestions = append(report.Suggestions, "darken the text color or lighten the background")
	}

	if style.Spacing.LineHeight < minLineHeight {
		report.Score -= 0.5
		report.Issues = append(report.Issues, "line height is below 1.4")
		report.Suggestions = append(report.Suggestions, "increase the line height to at least 1.4")
	}

	report.Score = clamp(report.Score, 0, 10)
	return report
}

// analyzeConversion starts from the template's historical payment rate on
// a 0-100 scale and subtracts known conversion drags, clamping at zero.
func analyzeConversion(inv invoicing.Invoice, tpl domain.Template, stats domain.UsageStats, overrides domain.Customizations, style domain.Style) SectionReport {
	report := SectionReport{Score: stats.PaymentRate * 100}

	if inv.TotalAmount > highAmountThreshold {
		report.Score -= 5
		report.Issues = append(report.Issues, "high invoice amounts historically convert more slowly")
		report.Suggestions = append(report.Suggestions, "offer installment options for high-value invoices")
	}

	if !DueDateProminent(overrides, style) {
		report.Score -= 3
		report.Issues = append(report.Issues, "due date is not visually prominent")
		report.Suggestions = append(report.Suggestions, "emphasize the due date with bold weight and a distinct color")
	}

	if len(tpl.PaymentMethods) < minPaymentMethods {
		report.Score -= 2
		report.Issues = append(report.Issues, "fewer than 3 payment methods are offered")
		report.Suggestions = append(report.Suggestions, "offer at least 3 payment methods to reduce friction")
	}

	if report.Score < 0 {
		report.Score = 0
	}
	return report
}

// DueDateProminent reports whether the merged overrides emphasize the due
// date: a bold weight plus a color different from the template default.
func DueDateProminent(overrides domain.Customizations, style domain.Style) bool {
	if overrides[domain.CustomDueDateWeight] != "bold" {
		return false
	}
	color := overrides[domain.CustomDueDateColor]
	return color != "" && color != style.Palette.Text
}

func analyzeBranding(metrics domain.Metrics, style domain.Style) SectionReport {
	report := SectionReport{Score: metrics.BrandConsistency}

	if style.Branding.LogoURL == "" {
		report.Score -= 1
		report.Issues = append(report.Issues, "no logo is configured")
		report.Suggestions = append(report.Suggestions, "add a company logo to strengthen brand recall")
	}

	if len(style.Branding.BrandColors) < minBrandColors {
		report.Score -= 0.5
		report.Issues = append(report.Issues, "fewer than 2 brand colors are declared")
		report.Suggestions = append(report.Suggestions, "declare at least 2 brand colors")
	}

	report.Score = clamp(report.Score, 0, 10)
	return report
}

// analyzeAccessibility classifies the contrast ratio into a WCAG tier,
// then downgrades one step when the primary font is small. The tier never
// drops below none.
func analyzeAccessibility(style domain.Style) AccessibilityReport {
	ratio := ContrastRatio(style.Palette.Text, style.Palette.Background)
	report := AccessibilityReport{
		Tier:          tierForContrast(ratio),
		ContrastRatio: ratio,
	}

	switch {
	case ratio < 3:
		report.Issues = append(report.Issues, "contrast ratio fails all WCAG levels")
		report.Suggestions = append(report.Suggestions, "raise the text to background contrast above 4.5:1")
	case ratio < minContrastRatio:
		report.Issues = append(report.Issues, "contrast ratio only meets WCAG for large text")
		report.Suggestions = append(report.Suggestions, "raise the text to background contrast above 4.5:1")
	}

	if style.Fonts.Primary.Size < minReadableFontSize {
		report.Tier = downgrade(report.Tier)
		report.Issues = append(report.Issues, "primary font size is below 12pt")
		report.Suggestions = append(report.Suggestions, "increase the primary font size to at least 12pt")
	}

	return report
}

func tierForContrast(ratio float64) Tier {
	switch {
	case ratio >= 7:
		return TierAAA
	case ratio >= 4.5:
		return TierAA
	case ratio >= 3:
		return TierPartial
	default:
		return TierNone
	}
}

func downgrade(tier Tier) Tier {
	switch tier {
	case TierAAA:
		return TierAA
	case TierAA:
		return TierPartial
	case TierPartial:
		return TierNone
	default:
		return TierNone
	}
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
