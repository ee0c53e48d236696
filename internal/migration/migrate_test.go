package migration

import (
	"database/sql"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openMigrationTestDB(t *testing.T) *sql.DB {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open("file:migrationtest?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db, err := gormDB.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	return db
}

func TestRunMigrations(t *testing.T) {
	db := openMigrationTestDB(t)

	if err := RunMigrations(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(1) FROM document_templates`).Scan(&count); err != nil {
		t.Fatalf("document_templates missing after migration: %v", err)
	}

	var applied int
	if err := db.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&applied); err != nil {
		t.Fatalf("schema_migrations missing: %v", err)
	}
	if applied == 0 {
		t.Fatalf("expected at least one recorded migration")
	}

	// Re-running is a no-op.
	if err := RunMigrations(db); err != nil {
		t.Fatalf("second run: %v", err)
	}
	var appliedAgain int
	if err := db.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&appliedAgain); err != nil {
		t.Fatalf("schema_migrations: %v", err)
	}
	if appliedAgain != applied {
		t.Fatalf("expected idempotent migrations, got %d then %d", applied, appliedAgain)
	}
}

func TestRunMigrationsNilDB(t *testing.T) {
	if err := RunMigrations(nil); err == nil {
		t.Fatalf("expected error for nil handle")
	}
}

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements("CREATE TABLE a (id INT);\n\nCREATE INDEX i ON a (id);\n")
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %v", stmts)
	}
}
