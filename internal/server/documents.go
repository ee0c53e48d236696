package server

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/smallbiznis/docstudio/internal/catalog/domain"
	"github.com/smallbiznis/docstudio/internal/invoicing"
	"github.com/smallbiznis/docstudio/internal/observability/logger"
	"github.com/smallbiznis/docstudio/internal/optimize"
	"github.com/smallbiznis/docstudio/internal/personalize"
	"github.com/smallbiznis/docstudio/internal/render"
	"go.uber.org/zap"
)

type generateRequest struct {
	Invoice     invoicing.Invoice   `json:"invoice"`
	Customer    invoicing.Customer  `json:"customer"`
	Preferences *preferencesRequest `json:"preferences"`
	TemplateID  string              `json:"template_id"`
}

type generateResponse struct {
	Document        string                      `json:"document"`
	Recommendation  *recommendationResponse     `json:"recommendation,omitempty"`
	Personalization personalize.Personalization `json:"personalization"`
	Analysis        optimize.Report             `json:"analysis"`
	Metadata        render.Metadata             `json:"metadata"`
}

// GenerateDocument runs the full pipeline: recommend (unless a template
// is pinned), personalize, analyze, then hand the prepared content to the
// render collaborator. Rendering happens strictly after the synchronous
// computation and is never retried here.
func (s *Server) GenerateDocument(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	prefs, err := parsePreferences(req.Preferences)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	start := time.Now()

	var (
		tpl       catalogdomain.Template
		overrides catalogdomain.Customizations
		recResp   *recommendationResponse
	)

	if req.TemplateID != "" {
		tpl, err = s.catalogSvc.Get(ctx, req.TemplateID)
		if err != nil {
			s.engineMetrics.IncDocumentGenerated("invalid")
			AbortWithError(c, err)
			return
		}
		if err := invoicing.ValidateInvoice(req.Invoice); err != nil {
			s.engineMetrics.IncDocumentGenerated("invalid")
			AbortWithError(c, err)
			return
		}
		if err := invoicing.ValidateCustomer(req.Customer); err != nil {
			s.engineMetrics.IncDocumentGenerated("invalid")
			AbortWithError(c, err)
			return
		}
		overrides = catalogdomain.Customizations{}
	} else {
		snap, err := s.catalogSvc.Load(ctx)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		rec, err := s.recommender.Recommend(snap, req.Invoice, req.Customer, prefs)
		if err != nil {
			s.engineMetrics.IncDocumentGenerated("invalid")
			AbortWithError(c, err)
			return
		}
		if len(rec.Recommended) == 0 {
			s.engineMetrics.IncDocumentGenerated("invalid")
			AbortWithError(c, ErrNotFound)
			return
		}
		tpl = rec.Recommended[0].Template
		overrides = rec.Customizations
		resp := toRecommendationResponse(rec)
		recResp = &resp
	}

	personalization, err := s.personalizer.Personalize(req.Invoice, req.Customer)
	if err != nil {
		s.engineMetrics.IncDocumentGenerated("invalid")
		AbortWithError(c, err)
		return
	}

	report := s.analyzer.Analyze(req.Invoice, tpl, overrides)

	document, err := s.renderer.Render(ctx, buildRenderInput(tpl, overrides, req.Invoice, req.Customer, personalization))
	if err != nil {
		s.engineMetrics.IncDocumentGenerated("render_failed")
		AbortWithError(c, err)
		return
	}

	if err := s.catalogSvc.RecordUsage(ctx, tpl.ID); err != nil {
		// Usage stats are advisory; losing one increment must not fail
		// the generation.
		logger.FromContext(ctx).Warn("record template usage failed",
			zap.String("template_id", tpl.ID.String()),
			zap.Error(err),
		)
	}

	elapsed := time.Since(start)
	s.engineMetrics.IncDocumentGenerated("success")
	s.engineMetrics.ObserveGenerationDuration(elapsed)

	applied := overrides.Keys()
	sort.Strings(applied)

	c.JSON(http.StatusOK, gin.H{"data": generateResponse{
		Document:        string(document),
		Recommendation:  recResp,
		Personalization: personalization,
		Analysis:        report,
		Metadata: render.Metadata{
			TemplateUsed:          tpl.ID.String(),
			CustomizationsApplied: applied,
			GenerationTimeMs:      elapsed.Milliseconds(),
			FileSizeBytes:         len(document),
			Filename:              render.Filename(req.Invoice.InvoiceNumber, s.clk.Now()),
		},
	}})
}

func buildRenderInput(tpl catalogdomain.Template, overrides catalogdomain.Customizations, inv invoicing.Invoice, cust invoicing.Customer, personalization personalize.Personalization) render.Input {
	style := tpl.Style.Data()

	items := make([]render.LineItemView, 0, len(inv.LineItems))
	for _, item := range inv.LineItems {
		items = append(items, render.LineItemView{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	return render.Input{
		Template: render.TemplateView{
			ID:              tpl.ID.String(),
			Name:            tpl.Name,
			Category:        string(tpl.Category),
			PrimaryColor:    style.Palette.Primary,
			AccentColor:     style.Palette.Accent,
			BackgroundColor: style.Palette.Background,
			TextColor:       style.Palette.Text,
			FontFamily:      style.Fonts.Primary.Family,
			FontSize:        style.Fonts.Primary.Size,
			LineHeight:      style.Spacing.LineHeight,
			LogoURL:         style.Branding.LogoURL,
			PaymentMethods:  tpl.PaymentMethods,
		},
		Invoice: render.InvoiceView{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			TotalAmount:   inv.TotalAmount,
			CreatedAt:     inv.CreatedAt,
			DueAt:         personalization.AIRecommendation.OptimalDueDate,
		},
		Customer: render.CustomerView{Name: cust.Name},
		Items:    items,
		Personalization: render.PersonalizationView{
			Greeting:            personalization.Greeting,
			PaymentTermsMessage: personalization.PaymentTermsMessage,
			SpecialNotes:        personalization.SpecialNotes,
			PersonalizedMessage: personalization.AIRecommendation.PersonalizedMessage,
		},
		Overrides: overrides,
	}
}
