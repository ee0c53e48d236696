package recommend

import (
	"strconv"

	"github.com/smallbiznis/docstudio/internal/catalog/domain"
	"github.com/smallbiznis/docstudio/internal/invoicing"
)

const (
	largeAmountThreshold = 50000

	highlightBackground = "#fef3c7"
	highlightBorder     = "#f59e0b"
	dueDateWarningColor = "#b91c1c"
	dueDateEmphasisSize = 16
	amountEmphasisSize  = 20
)

// customize derives the style override set for the top-ranked template.
// The three rules are independent; all apply when their conditions hold.
// The source template is never mutated.
func (e *Engine) customize(inv invoicing.Invoice, prefs *Preferences) domain.Customizations {
	overrides := domain.Customizations{}

	if prefs != nil {
		if palette, ok := e.cfg.IndustryPalettes[prefs.Industry]; ok {
			overrides[domain.CustomPrimaryColor] = palette.Primary
			overrides[domain.CustomAccentColor] = palette.Accent
		}

		if prefs.PaymentUrgency == UrgencyHigh {
			overrides[domain.CustomHighlightBackground] = highlightBackground
			overrides[domain.CustomHighlightBorder] = highlightBorder
			overrides[domain.CustomHighlightWeight] = "bold"
			overrides[domain.CustomDueDateWeight] = "bold"
			overrides[domain.CustomDueDateSize] = strconv.Itoa(dueDateEmphasisSize)
			overrides[domain.CustomDueDateColor] = dueDateWarningColor
		}
	}

	if inv.TotalAmount > largeAmountThreshold {
		overrides[domain.CustomAmountSize] = strconv.Itoa(amountEmphasisSize)
		overrides[domain.CustomAmountWeight] = "bold"
	}

	return overrides
}
