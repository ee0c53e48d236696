// Package invoicing holds the read-only invoice and customer records this
// engine consumes. They are produced by the surrounding billing system and
// never mutated here.
package invoicing

import (
	"strings"
	"time"

	"github.com/smallbiznis/docstudio/internal/docerr"
)

// Invoice is a generated financial document awaiting template selection.
type Invoice struct {
	ID            string     `json:"id"`
	InvoiceNumber string     `json:"invoice_number"`
	TotalAmount   float64    `json:"total_amount"`
	LineItems     []LineItem `json:"line_items"`
	CreatedAt     time.Time  `json:"created_at"`
}

type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// Customer carries recipient identity plus derived payment-behavior signals.
type Customer struct {
	ID                      string  `json:"id"`
	Name                    string  `json:"name"`
	PaymentTerms            int     `json:"payment_terms"`
	IsRepeatCustomer        bool    `json:"is_repeat_customer"`
	IsConsistentlyFastPayer bool    `json:"is_consistently_fast_payer"`
	AverageDaysToPay        float64 `json:"average_days_to_pay"`
	PreferredPaymentMethod  string  `json:"preferred_payment_method"`
	AverageInvoiceAmount    float64 `json:"average_invoice_amount"`
}

// ValidateInvoice fails fast on missing required fields so no partial
// scoring output is ever produced from a garbage invoice.
func ValidateInvoice(inv Invoice) error {
	if strings.TrimSpace(inv.ID) == "" {
		return docerr.NewValidationError("invoice.id", "required", "invoice id is required")
	}
	if strings.TrimSpace(inv.InvoiceNumber) == "" {
		return docerr.NewValidationError("invoice.invoice_number", "required", "invoice number is required")
	}
	if inv.CreatedAt.IsZero() {
		return docerr.NewValidationError("invoice.created_at", "required", "invoice creation time is required")
	}
	return nil
}

// ValidateCustomer fails fast on missing required customer fields.
func ValidateCustomer(cust Customer) error {
	if strings.TrimSpace(cust.ID) == "" {
		return docerr.NewValidationError("customer.id", "required", "customer id is required")
	}
	if strings.TrimSpace(cust.Name) == "" {
		return docerr.NewValidationError("customer.name", "required", "customer name is required")
	}
	if cust.PaymentTerms < 0 {
		return docerr.NewValidationError("customer.payment_terms", "invalid", "payment terms cannot be negative")
	}
	return nil
}
