package seed

import (
	"testing"

	catalogdomain "github.com/smallbiznis/docstudio/internal/catalog/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:seedtest?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Exec(
		`CREATE TABLE IF NOT EXISTS document_templates (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			position INTEGER NOT NULL,
			layout TEXT,
			style TEXT,
			payment_methods TEXT,
			ai_optimization TEXT,
			usage_stats TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	).Error; err != nil {
		t.Fatalf("create document_templates: %v", err)
	}
	return db
}

func TestEnsureDefaultTemplates(t *testing.T) {
	db := setupSeedTestDB(t)

	if err := EnsureDefaultTemplates(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var templates []catalogdomain.Template
	if err := db.Order("position ASC").Find(&templates).Error; err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(templates) != 5 {
		t.Fatalf("expected 5 seeded templates, got %d", len(templates))
	}

	categories := map[catalogdomain.Category]bool{}
	for i, tpl := range templates {
		if tpl.Position != i {
			t.Fatalf("expected contiguous positions, got %d at index %d", tpl.Position, i)
		}
		categories[tpl.Category] = true
	}
	if len(categories) != 5 {
		t.Fatalf("expected one template per category, got %v", categories)
	}

	// Seeding an already populated catalog is a no-op.
	if err := EnsureDefaultTemplates(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	var count int64
	if err := db.Model(&catalogdomain.Template{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Fatalf("expected 5 templates after reseeding, got %d", count)
	}
}

func TestEnsureDefaultTemplatesNilDB(t *testing.T) {
	if err := EnsureDefaultTemplates(nil); err == nil {
		t.Fatalf("expected error for nil handle")
	}
}
