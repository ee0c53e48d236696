package domain

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
)

// Service exposes the template catalog. Load returns an immutable ordered
// snapshot; Import/Export are exact structural inverses of each other.
type Service interface {
	Load(ctx context.Context) (Snapshot, error)
	Get(ctx context.Context, id string) (Template, error)
	Import(ctx context.Context, raw []byte) (Template, error)
	Export(ctx context.Context, id string) ([]byte, error)
	RecordUsage(ctx context.Context, id snowflake.ID) error
}

// ParseID parses a snowflake template ID from its string form.
func ParseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

// TemplateJSON is the import/export wire form of a template. Pointer fields
// distinguish "absent" from "zero" so imports can fall back to the base
// template per missing field.
type TemplateJSON struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Category       string      `json:"category"`
	Position       *int        `json:"position,omitempty"`
	Layout         *Layout     `json:"layout,omitempty"`
	Style          *StyleJSON  `json:"style,omitempty"`
	PaymentMethods []string    `json:"payment_methods,omitempty"`
	Metrics        *Metrics    `json:"ai_optimization,omitempty"`
	UsageStats     *UsageStats `json:"usage_stats,omitempty"`
}

// StyleJSON mirrors Style with optional blocks for import fallback.
type StyleJSON struct {
	Fonts    *Fonts    `json:"fonts,omitempty"`
	Palette  *Palette  `json:"palette,omitempty"`
	Spacing  *Spacing  `json:"spacing,omitempty"`
	Branding *Branding `json:"branding,omitempty"`
}
