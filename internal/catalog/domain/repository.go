package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context, db *gorm.DB) ([]Template, error)
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Template, error)
	Insert(ctx context.Context, db *gorm.DB, tpl *Template) error
	MaxPosition(ctx context.Context, db *gorm.DB) (int, error)
	IncrementUsage(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
