package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/smallbiznis/docstudio/internal/catalog/domain"
)

type templateSummary struct {
	ID             string                   `json:"id"`
	Name           string                   `json:"name"`
	Category       catalogdomain.Category   `json:"category"`
	Position       int                      `json:"position"`
	PaymentMethods []string                 `json:"payment_methods"`
	Metrics        catalogdomain.Metrics    `json:"ai_optimization"`
	UsageStats     catalogdomain.UsageStats `json:"usage_stats"`
}

type templateResponse struct {
	templateSummary
	Layout catalogdomain.Layout `json:"layout"`
	Style  catalogdomain.Style  `json:"style"`
}

func summarize(tpl catalogdomain.Template) templateSummary {
	return templateSummary{
		ID:             tpl.ID.String(),
		Name:           tpl.Name,
		Category:       tpl.Category,
		Position:       tpl.Position,
		PaymentMethods: tpl.PaymentMethods,
		Metrics:        tpl.Metrics.Data(),
		UsageStats:     tpl.UsageStats.Data(),
	}
}

func (s *Server) ListTemplates(c *gin.Context) {
	snap, err := s.catalogSvc.Load(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	items := make([]templateSummary, 0, snap.Size())
	for _, tpl := range snap.Templates {
		items = append(items, summarize(tpl))
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (s *Server) GetTemplate(c *gin.Context) {
	tpl, err := s.catalogSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": templateResponse{
		templateSummary: summarize(tpl),
		Layout:          tpl.Layout.Data(),
		Style:           tpl.Style.Data(),
	}})
}

func (s *Server) ExportTemplate(c *gin.Context) {
	raw, err := s.catalogSvc.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

func (s *Server) ImportTemplate(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	tpl, err := s.catalogSvc.Import(c.Request.Context(), raw)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summarize(tpl)})
}
