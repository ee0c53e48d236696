// Package domain contains the template catalog models.
package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Category is the coarse style family of a template. It drives both display
// grouping and the recommendation bonus rules.
type Category string

const (
	CategoryProfessional Category = "professional"
	CategoryCreative     Category = "creative"
	CategoryMinimal      Category = "minimal"
	CategoryBranded      Category = "branded"
	CategoryCustom       Category = "custom"
)

// ParseCategory normalizes a raw category string.
func ParseCategory(raw string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryProfessional:
		return CategoryProfessional, true
	case CategoryCreative:
		return CategoryCreative, true
	case CategoryMinimal:
		return CategoryMinimal, true
	case CategoryBranded:
		return CategoryBranded, true
	case CategoryCustom:
		return CategoryCustom, true
	default:
		return "", false
	}
}

// Position places a layout section on the page, in points from top-left.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Border struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
	Style string  `json:"style"`
}

// Section is a named region of the document layout.
type Section struct {
	Position Position `json:"position"`
	Size     Size     `json:"size"`
	Align    string   `json:"align"`
	Padding  float64  `json:"padding"`
	Border   *Border  `json:"border,omitempty"`
	Visible  bool     `json:"visible"`
}

// Layout names the fixed set of document sections.
type Layout struct {
	Header      Section `json:"header"`
	SellerInfo  Section `json:"seller_info"`
	BuyerInfo   Section `json:"buyer_info"`
	LineItems   Section `json:"line_items"`
	Totals      Section `json:"totals"`
	PaymentInfo Section `json:"payment_info"`
	Footer      Section `json:"footer"`
}

type Font struct {
	Family string  `json:"family"`
	Size   float64 `json:"size"`
	Weight string  `json:"weight"`
}

type Fonts struct {
	Primary   Font `json:"primary"`
	Secondary Font `json:"secondary"`
	Accent    Font `json:"accent"`
}

// Palette is the fixed color set of a template, hex-encoded.
type Palette struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
}

type Spacing struct {
	LineHeight float64 `json:"line_height"`
	SectionGap float64 `json:"section_gap"`
	Margin     float64 `json:"margin"`
}

type Branding struct {
	LogoURL     string   `json:"logo_url"`
	BrandColors []string `json:"brand_colors"`
}

// Style bundles the visual configuration of a template.
type Style struct {
	Fonts    Fonts    `json:"fonts"`
	Palette  Palette  `json:"palette"`
	Spacing  Spacing  `json:"spacing"`
	Branding Branding `json:"branding"`
}

// Metrics is the template's historical quality bundle. Readability and
// brand consistency are on a 0-10 scale, conversion rate on 0-100.
type Metrics struct {
	ReadabilityScore      float64 `json:"readability_score"`
	BrandConsistency      float64 `json:"brand_consistency"`
	PaymentConversionRate float64 `json:"payment_conversion_rate"`
	MobileFriendly        bool    `json:"mobile_friendly"`
}

// UsageStats tracks historical template performance. PaymentRate is the
// paid fraction in [0,1]; AvgPaymentDays is measured in days.
type UsageStats struct {
	TimesUsed      int64   `json:"times_used"`
	PaymentRate    float64 `json:"payment_rate"`
	AvgPaymentDays float64 `json:"avg_payment_time"`
}

// Template is a persisted catalog entry. Rows are immutable once loaded
// except through the explicit import path; Position is the catalog
// insertion order and serves as the recommendation tie-break key.
type Template struct {
	ID             snowflake.ID                   `gorm:"primaryKey"`
	Name           string                         `gorm:"type:text;not null"`
	Category       Category                       `gorm:"type:text;not null"`
	Position       int                            `gorm:"not null;uniqueIndex"`
	Layout         datatypes.JSONType[Layout]     `gorm:"type:jsonb"`
	Style          datatypes.JSONType[Style]      `gorm:"type:jsonb"`
	PaymentMethods datatypes.JSONSlice[string]    `gorm:"type:jsonb"`
	Metrics        datatypes.JSONType[Metrics]    `gorm:"column:ai_optimization;type:jsonb"`
	UsageStats     datatypes.JSONType[UsageStats] `gorm:"type:jsonb"`
	CreatedAt      time.Time                      `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time                      `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Template) TableName() string { return "document_templates" }

// Snapshot is an immutable, ordered view of the catalog. Engines read it
// without locking; imports swap in a fresh snapshot copy-on-write.
type Snapshot struct {
	Templates []Template
}

// Size returns the number of templates in the snapshot.
func (s Snapshot) Size() int { return len(s.Templates) }

// ByID returns the template with the given ID, if present.
func (s Snapshot) ByID(id snowflake.ID) (Template, bool) {
	for _, tpl := range s.Templates {
		if tpl.ID == id {
			return tpl, true
		}
	}
	return Template{}, false
}
