// Package service implements the template catalog.
package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/docstudio/internal/catalog/domain"
	"github.com/smallbiznis/docstudio/internal/docerr"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID *snowflake.Node
	repo  domain.Repository

	// snapshot is the current immutable catalog view. Imports build a new
	// snapshot and swap it in; readers never block.
	snapshot atomic.Pointer[domain.Snapshot]
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("catalog.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

// Load returns the catalog snapshot, reading it from the database on first
// use. The returned snapshot is ordered by catalog position, which is the
// recommendation tie-break key.
func (s *Service) Load(ctx context.Context) (domain.Snapshot, error) {
	if snap := s.snapshot.Load(); snap != nil {
		return *snap, nil
	}
	return s.refresh(ctx)
}

func (s *Service) refresh(ctx context.Context) (domain.Snapshot, error) {
	templates, err := s.repo.List(ctx, s.db)
	if err != nil {
		return domain.Snapshot{}, err
	}
	snap := domain.Snapshot{Templates: templates}
	s.snapshot.Store(&snap)
	return snap, nil
}

// Get looks a template up by its string ID.
func (s *Service) Get(ctx context.Context, id string) (domain.Template, error) {
	parsed, err := domain.ParseID(id)
	if err != nil {
		return domain.Template{}, &docerr.TemplateNotFoundError{ID: id}
	}

	snap, err := s.Load(ctx)
	if err != nil {
		return domain.Template{}, err
	}
	tpl, ok := snap.ByID(parsed)
	if !ok {
		return domain.Template{}, &docerr.TemplateNotFoundError{ID: id}
	}
	return tpl, nil
}

// Import validates and stores a template described by raw JSON. Missing
// style or layout blocks fall back to the base template. A malformed
// import fails with a ValidationError before any row is written, so the
// catalog is never partially mutated.
func (s *Service) Import(ctx context.Context, raw []byte) (domain.Template, error) {
	var payload domain.TemplateJSON
	if err := json.Unmarshal(raw, &payload); err != nil {
		return domain.Template{}, docerr.NewValidationError("template", "malformed_json", err.Error())
	}

	tpl, err := s.buildTemplate(payload)
	if err != nil {
		return domain.Template{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tpl.Position < 0 {
			max, err := s.repo.MaxPosition(ctx, tx)
			if err != nil {
				return err
			}
			tpl.Position = max + 1
		}
		return s.repo.Insert(ctx, tx, &tpl)
	})
	if err != nil {
		return domain.Template{}, err
	}

	s.log.Info("template imported",
		zap.String("template_id", tpl.ID.String()),
		zap.String("category", string(tpl.Category)),
	)

	if _, err := s.refresh(ctx); err != nil {
		return domain.Template{}, err
	}
	return tpl, nil
}

func (s *Service) buildTemplate(payload domain.TemplateJSON) (domain.Template, error) {
	if strings.TrimSpace(payload.ID) == "" {
		return domain.Template{}, docerr.NewValidationError("template.id", "required", "template id is required")
	}
	id, err := domain.ParseID(payload.ID)
	if err != nil {
		return domain.Template{}, docerr.NewValidationError("template.id", "invalid", "template id must be a valid snowflake")
	}
	if strings.TrimSpace(payload.Name) == "" {
		return domain.Template{}, docerr.NewValidationError("template.name", "required", "template name is required")
	}
	category, ok := domain.ParseCategory(payload.Category)
	if !ok {
		return domain.Template{}, docerr.NewValidationError("template.category", "unknown", "unknown template category "+payload.Category)
	}

	layout := domain.BaseLayout()
	if payload.Layout != nil {
		layout = *payload.Layout
	}

	style := mergeStyle(payload.Style)

	methods := payload.PaymentMethods
	if methods == nil {
		methods = []string{}
	}

	var metrics domain.Metrics
	if payload.Metrics != nil {
		metrics = *payload.Metrics
	}
	var stats domain.UsageStats
	if payload.UsageStats != nil {
		stats = *payload.UsageStats
	}

	position := -1
	if payload.Position != nil {
		position = *payload.Position
	}

	return domain.Template{
		ID:             id,
		Name:           strings.TrimSpace(payload.Name),
		Category:       category,
		Position:       position,
		Layout:         datatypes.NewJSONType(layout),
		Style:          datatypes.NewJSONType(style),
		PaymentMethods: datatypes.NewJSONSlice(methods),
		Metrics:        datatypes.NewJSONType(metrics),
		UsageStats:     datatypes.NewJSONType(stats),
	}, nil
}

// mergeStyle fills any missing style block from the base template.
func mergeStyle(payload *domain.StyleJSON) domain.Style {
	style := domain.BaseStyle()
	if payload == nil {
		return style
	}
	if payload.Fonts != nil {
		style.Fonts = *payload.Fonts
	}
	if payload.Palette != nil {
		style.Palette = *payload.Palette
	}
	if payload.Spacing != nil {
		style.Spacing = *payload.Spacing
	}
	if payload.Branding != nil {
		style.Branding = *payload.Branding
	}
	return style
}

// Export serializes a template to its import wire form. Export is the
// exact structural inverse of Import: re-importing the bytes reproduces
// the template.
func (s *Service) Export(ctx context.Context, id string) ([]byte, error) {
	tpl, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	layout := tpl.Layout.Data()
	styleData := tpl.Style.Data()
	style := domain.StyleJSON{
		Fonts:    &styleData.Fonts,
		Palette:  &styleData.Palette,
		Spacing:  &styleData.Spacing,
		Branding: &styleData.Branding,
	}
	metrics := tpl.Metrics.Data()
	stats := tpl.UsageStats.Data()
	position := tpl.Position

	payload := domain.TemplateJSON{
		ID:             tpl.ID.String(),
		Name:           tpl.Name,
		Category:       string(tpl.Category),
		Position:       &position,
		Layout:         &layout,
		Style:          &style,
		PaymentMethods: tpl.PaymentMethods,
		Metrics:        &metrics,
		UsageStats:     &stats,
	}
	return json.MarshalIndent(payload, "", "  ")
}

// RecordUsage increments the template's usage counter after a document is
// generated from it.
func (s *Service) RecordUsage(ctx context.Context, id snowflake.ID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.IncrementUsage(ctx, tx, id)
	})
	if err != nil {
		return err
	}
	_, err = s.refresh(ctx)
	return err
}
