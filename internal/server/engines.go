package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/smallbiznis/docstudio/internal/catalog/domain"
	"github.com/smallbiznis/docstudio/internal/invoicing"
	"github.com/smallbiznis/docstudio/internal/recommend"
)

type preferencesRequest struct {
	Industry         string `json:"industry"`
	BrandPersonality string `json:"brand_personality"`
	PaymentUrgency   string `json:"payment_urgency"`
}

// parsePreferences converts the loosely typed request block into the
// engine's tagged enums. Unknown values are rejected, not ignored.
func parsePreferences(req *preferencesRequest) (*recommend.Preferences, error) {
	if req == nil {
		return nil, nil
	}

	prefs := recommend.Preferences{BrandPersonality: strings.TrimSpace(req.BrandPersonality)}

	if raw := strings.TrimSpace(req.Industry); raw != "" {
		industry, ok := recommend.ParseIndustry(raw)
		if !ok {
			return nil, newValidationError("preferences.industry", "unknown_industry", "unknown industry "+raw)
		}
		prefs.Industry = industry
	}

	urgency, ok := recommend.ParseUrgency(req.PaymentUrgency)
	if !ok {
		return nil, newValidationError("preferences.payment_urgency", "unknown_urgency", "unknown payment urgency "+req.PaymentUrgency)
	}
	prefs.PaymentUrgency = urgency

	return &prefs, nil
}

type recommendRequest struct {
	Invoice     invoicing.Invoice   `json:"invoice"`
	Customer    invoicing.Customer  `json:"customer"`
	Preferences *preferencesRequest `json:"preferences"`
}

type scoredTemplateResponse struct {
	templateSummary
	Score float64 `json:"score"`
}

type recommendationResponse struct {
	Recommended    []scoredTemplateResponse     `json:"recommended"`
	Reasoning      []string                     `json:"reasoning"`
	Customizations catalogdomain.Customizations `json:"customizations"`
}

func (s *Server) RecommendTemplates(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	prefs, err := parsePreferences(req.Preferences)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	snap, err := s.catalogSvc.Load(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	rec, err := s.recommender.Recommend(snap, req.Invoice, req.Customer, prefs)
	if err != nil {
		s.engineMetrics.IncRecommendation("invalid")
		AbortWithError(c, err)
		return
	}
	s.engineMetrics.IncRecommendation("success")

	c.JSON(http.StatusOK, gin.H{"data": toRecommendationResponse(rec)})
}

func toRecommendationResponse(rec recommend.Recommendation) recommendationResponse {
	resp := recommendationResponse{
		Recommended:    make([]scoredTemplateResponse, 0, len(rec.Recommended)),
		Reasoning:      rec.Reasoning,
		Customizations: rec.Customizations,
	}
	for _, scored := range rec.Recommended {
		resp.Recommended = append(resp.Recommended, scoredTemplateResponse{
			templateSummary: summarize(scored.Template),
			Score:           scored.Score,
		})
	}
	return resp
}

type personalizeRequest struct {
	Invoice  invoicing.Invoice  `json:"invoice"`
	Customer invoicing.Customer `json:"customer"`
}

func (s *Server) PersonalizeInvoice(c *gin.Context) {
	var req personalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	personalization, err := s.personalizer.Personalize(req.Invoice, req.Customer)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": personalization})
}

type analyzeRequest struct {
	Invoice        invoicing.Invoice            `json:"invoice"`
	TemplateID     string                       `json:"template_id"`
	Customizations catalogdomain.Customizations `json:"customizations"`
}

func (s *Server) AnalyzeTemplate(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := invoicing.ValidateInvoice(req.Invoice); err != nil {
		AbortWithError(c, err)
		return
	}

	tpl, err := s.catalogSvc.Get(c.Request.Context(), req.TemplateID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	cacheKey := tpl.ID.String() + "|" + req.Invoice.ID
	if len(req.Customizations) == 0 {
		if report, ok := s.analysisCache.Get(cacheKey); ok {
			s.engineMetrics.IncAnalysisCache("hit")
			c.JSON(http.StatusOK, gin.H{"data": report})
			return
		}
		s.engineMetrics.IncAnalysisCache("miss")
	}

	report := s.analyzer.Analyze(req.Invoice, tpl, req.Customizations)
	if len(req.Customizations) == 0 {
		s.analysisCache.Set(cacheKey, report, s.cfg.AnalysisCacheTTL)
	}
	c.JSON(http.StatusOK, gin.H{"data": report})
}
