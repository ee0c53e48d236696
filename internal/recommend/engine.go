package recommend

import (
	"sort"

	"github.com/smallbiznis/docstudio/internal/catalog/domain"
	"github.com/smallbiznis/docstudio/internal/invoicing"
)

// maxRecommendations caps the shortlist returned by Recommend.
const maxRecommendations = 3

const (
	shortTermsDays     = 15
	highValueThreshold = 10000
	fastPaymentDays    = 20
	shortTermsBonus    = 15
	highValueBonus     = 20
	industryMatchBonus = 25
	fastPaymentBonus   = 15
)

const (
	reasonShortTerms   = "professional template conveys urgency for short payment terms"
	reasonHighValue    = "professional appearance appropriate for high-value invoices"
	reasonFastPayments = "template historically results in faster payments"
)

// ScoredTemplate pairs a catalog template with its final score.
type ScoredTemplate struct {
	Template domain.Template `json:"template"`
	Score    float64         `json:"score"`
}

// Recommendation is the ranked shortlist plus derived style overrides.
// Reasoning covers the single top-scored template only.
type Recommendation struct {
	Recommended    []ScoredTemplate      `json:"recommended"`
	Reasoning      []string              `json:"reasoning"`
	Customizations domain.Customizations `json:"customizations"`
}

// Engine scores every catalog template against an invoice, customer and
// optional preference triple. It carries no state beyond its immutable
// configuration, so concurrent calls need no locking.
type Engine struct {
	cfg Config
}

// NewEngine validates the configuration and builds an engine.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Recommend ranks the snapshot's templates. The result holds at most
// three templates, sorted descending by score; equal scores keep catalog
// insertion order, which makes the ranking deterministic.
func (e *Engine) Recommend(snap domain.Snapshot, inv invoicing.Invoice, cust invoicing.Customer, prefs *Preferences) (Recommendation, error) {
	if err := invoicing.ValidateInvoice(inv); err != nil {
		return Recommendation{}, err
	}
	if err := invoicing.ValidateCustomer(cust); err != nil {
		return Recommendation{}, err
	}

	type candidate struct {
		tpl     domain.Template
		score   float64
		reasons []string
	}

	candidates := make([]candidate, 0, snap.Size())
	for _, tpl := range snap.Templates {
		score, reasons := e.scoreTemplate(tpl, inv, cust, prefs)
		candidates = append(candidates, candidate{tpl: tpl, score: score, reasons: reasons})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	limit := maxRecommendations
	if len(candidates) < limit {
		limit = len(candidates)
	}

	rec := Recommendation{
		Recommended:    make([]ScoredTemplate, 0, limit),
		Customizations: domain.Customizations{},
	}
	for _, cand := range candidates[:limit] {
		rec.Recommended = append(rec.Recommended, ScoredTemplate{Template: cand.tpl, Score: cand.score})
	}
	if limit > 0 {
		rec.Reasoning = candidates[0].reasons
		rec.Customizations = e.customize(inv, prefs)
	}
	return rec, nil
}

// scoreTemplate computes the base score and applies the bonus rules in
// their fixed order. Bonuses are additive, not mutually exclusive.
func (e *Engine) scoreTemplate(tpl domain.Template, inv invoicing.Invoice, cust invoicing.Customer, prefs *Preferences) (float64, []string) {
	metrics := tpl.Metrics.Data()
	stats := tpl.UsageStats.Data()
	w := e.cfg.Weights

	score := w.ConversionRate * metrics.PaymentConversionRate
	score += w.Readability * metrics.ReadabilityScore
	score += w.BrandConsistency * metrics.BrandConsistency
	if metrics.MobileFriendly {
		score += 10 * w.MobileFriendly
	}

	var reasons []string

	if cust.PaymentTerms <= shortTermsDays && tpl.Category == domain.CategoryProfessional {
		score += shortTermsBonus
		reasons = append(reasons, reasonShortTerms)
	}

	if inv.TotalAmount > highValueThreshold &&
		(tpl.Category == domain.CategoryProfessional || tpl.Category == domain.CategoryMinimal) {
		score += highValueBonus
		reasons = append(reasons, reasonHighValue)
	}

	if prefs != nil {
		if matched, reason := industryMatch(prefs.Industry, tpl.Category); matched {
			score += industryMatchBonus
			reasons = append(reasons, reason)
		}

		if prefs.PaymentUrgency == UrgencyHigh && stats.AvgPaymentDays < fastPaymentDays {
			score += fastPaymentBonus
			reasons = append(reasons, reasonFastPayments)
		}
	}

	return score, reasons
}

// industryMatch maps known verticals onto template categories.
func industryMatch(industry Industry, category domain.Category) (bool, string) {
	switch industry {
	case IndustryCreative, IndustryMarketing, IndustryDesign:
		if category == domain.CategoryCreative {
			return true, "creative template matches the " + string(industry) + " industry"
		}
	case IndustryFinance, IndustryLegal, IndustryConsulting:
		if category == domain.CategoryProfessional || category == domain.CategoryMinimal {
			return true, string(category) + " template suits the " + string(industry) + " industry"
		}
	}
	return false, ""
}
