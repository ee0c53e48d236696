// Package repository persists catalog templates through gorm.
package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/docstudio/internal/catalog/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type templateRepository struct{}

// Provide constructs the catalog repository.
func Provide() domain.Repository {
	return templateRepository{}
}

func (templateRepository) List(ctx context.Context, db *gorm.DB) ([]domain.Template, error) {
	var templates []domain.Template
	err := db.WithContext(ctx).
		Order("position ASC").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (templateRepository) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Template, error) {
	var tpl domain.Template
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&tpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (templateRepository) Insert(ctx context.Context, db *gorm.DB, tpl *domain.Template) error {
	return db.WithContext(ctx).Create(tpl).Error
}

func (templateRepository) MaxPosition(ctx context.Context, db *gorm.DB) (int, error) {
	var max *int
	err := db.WithContext(ctx).
		Model(&domain.Template{}).
		Select("MAX(position)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

func (templateRepository) IncrementUsage(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	var tpl domain.Template
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&tpl).Error
	if err != nil {
		return err
	}

	stats := tpl.UsageStats.Data()
	stats.TimesUsed++
	tpl.UsageStats = datatypes.NewJSONType(stats)

	return db.WithContext(ctx).
		Model(&domain.Template{}).
		Where("id = ?", id).
		Update("usage_stats", tpl.UsageStats).Error
}
