// Package seed installs the built-in template catalog on first boot.
package seed

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/smallbiznis/docstudio/internal/catalog/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EnsureDefaultTemplates seeds one template per category when the catalog
// is empty, so a fresh install can recommend immediately.
func EnsureDefaultTemplates(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&catalogdomain.Template{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, tpl := range defaultTemplates(node) {
			if err := tx.Create(&tpl).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func defaultTemplates(node *snowflake.Node) []catalogdomain.Template {
	base := catalogdomain.BaseStyle()

	professional := base
	professional.Branding.LogoURL = "https://assets.docstudio.dev/logos/default.svg"

	creative := base
	creative.Palette.Primary = "#7c3aed"
	creative.Palette.Accent = "#db2777"
	creative.Fonts.Accent = catalogdomain.Font{Family: "Poppins", Size: 18, Weight: "bold"}
	creative.Branding.BrandColors = []string{"#7c3aed", "#db2777", "#f59e0b"}

	minimal := base
	minimal.Palette.Primary = "#111827"
	minimal.Palette.Accent = "#6b7280"
	minimal.Spacing.SectionGap = 32
	minimal.Branding.BrandColors = []string{"#111827"}

	branded := base
	branded.Palette.Primary = "#be123c"
	branded.Branding.LogoURL = "https://assets.docstudio.dev/logos/branded.svg"
	branded.Branding.BrandColors = []string{"#be123c", "#fb7185", "#fda4af"}

	custom := base
	custom.Palette.Text = "#374151"

	entries := []struct {
		name     string
		category catalogdomain.Category
		style    catalogdomain.Style
		methods  []string
		metrics  catalogdomain.Metrics
		stats    catalogdomain.UsageStats
	}{
		{
			name:     "Classic Professional",
			category: catalogdomain.CategoryProfessional,
			style:    professional,
			methods:  []string{"card", "bank_transfer", "check"},
			metrics:  catalogdomain.Metrics{ReadabilityScore: 9.2, BrandConsistency: 8.8, PaymentConversionRate: 87.5, MobileFriendly: true},
			stats:    catalogdomain.UsageStats{TimesUsed: 1240, PaymentRate: 0.875, AvgPaymentDays: 18},
		},
		{
			name:     "Studio Creative",
			category: catalogdomain.CategoryCreative,
			style:    creative,
			methods:  []string{"card", "paypal"},
			metrics:  catalogdomain.Metrics{ReadabilityScore: 8.1, BrandConsistency: 9.4, PaymentConversionRate: 78.2, MobileFriendly: true},
			stats:    catalogdomain.UsageStats{TimesUsed: 610, PaymentRate: 0.782, AvgPaymentDays: 24},
		},
		{
			name:     "Clean Minimal",
			category: catalogdomain.CategoryMinimal,
			style:    minimal,
			methods:  []string{"card", "bank_transfer", "ach"},
			metrics:  catalogdomain.Metrics{ReadabilityScore: 9.6, BrandConsistency: 7.9, PaymentConversionRate: 84.1, MobileFriendly: true},
			stats:    catalogdomain.UsageStats{TimesUsed: 890, PaymentRate: 0.841, AvgPaymentDays: 16},
		},
		{
			name:     "Bold Branded",
			category: catalogdomain.CategoryBranded,
			style:    branded,
			methods:  []string{"card", "bank_transfer"},
			metrics:  catalogdomain.Metrics{ReadabilityScore: 8.4, BrandConsistency: 9.8, PaymentConversionRate: 80.6, MobileFriendly: false},
			stats:    catalogdomain.UsageStats{TimesUsed: 420, PaymentRate: 0.806, AvgPaymentDays: 21},
		},
		{
			name:     "Blank Custom",
			category: catalogdomain.CategoryCustom,
			style:    custom,
			methods:  []string{"card"},
			metrics:  catalogdomain.Metrics{ReadabilityScore: 7.5, BrandConsistency: 6.5, PaymentConversionRate: 70.0, MobileFriendly: false},
			stats:    catalogdomain.UsageStats{TimesUsed: 130, PaymentRate: 0.7, AvgPaymentDays: 27},
		},
	}

	templates := make([]catalogdomain.Template, 0, len(entries))
	for position, entry := range entries {
		templates = append(templates, catalogdomain.Template{
			ID:             node.Generate(),
			Name:           entry.name,
			Category:       entry.category,
			Position:       position,
			Layout:         datatypes.NewJSONType(catalogdomain.BaseLayout()),
			Style:          datatypes.NewJSONType(entry.style),
			PaymentMethods: datatypes.NewJSONSlice(entry.methods),
			Metrics:        datatypes.NewJSONType(entry.metrics),
			UsageStats:     datatypes.NewJSONType(entry.stats),
		})
	}
	return templates
}
