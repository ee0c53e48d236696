// Package personalize derives recipient-specific text content from
// customer payment-history signals. It layers text onto a chosen template
// without touching its structural layout.
package personalize

import (
	"fmt"
	"time"

	"github.com/smallbiznis/docstudio/internal/invoicing"
)

const lateBufferDays = 5

// AIRecommendation is the derived guidance block attached to a
// personalization.
type AIRecommendation struct {
	SuggestedPaymentMethods []string  `json:"suggested_payment_methods"`
	OptimalDueDate          time.Time `json:"optimal_due_date"`
	PersonalizedMessage     string    `json:"personalized_message"`
	UpsellSuggestions       []string  `json:"upsell_suggestions"`
}

// Personalization is the recipient-specific content for one invoice.
type Personalization struct {
	Greeting            string           `json:"greeting"`
	PaymentTermsMessage string           `json:"payment_terms_message"`
	SpecialNotes        []string         `json:"special_notes"`
	AIRecommendation    AIRecommendation `json:"ai_recommendation"`
}

// Engine derives personalizations. It is stateless; concurrent calls are
// safe.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Personalize builds recipient-specific content for the invoice. Greeting
// precedence is default, then repeat customer, then consistently fast
// payer; the fast-payer greeting wins when both signals are set.
func (e *Engine) Personalize(inv invoicing.Invoice, cust invoicing.Customer) (Personalization, error) {
	if err := invoicing.ValidateInvoice(inv); err != nil {
		return Personalization{}, err
	}
	if err := invoicing.ValidateCustomer(cust); err != nil {
		return Personalization{}, err
	}

	return Personalization{
		Greeting:            greeting(cust),
		PaymentTermsMessage: paymentTermsMessage(cust),
		SpecialNotes:        specialNotes(inv, cust),
		AIRecommendation:    e.aiRecommendation(inv, cust),
	}, nil
}

// greeting applies the precedence rules in order; the last matching rule
// wins.
func greeting(cust invoicing.Customer) string {
	message := fmt.Sprintf("Dear %s,", cust.Name)
	if cust.IsRepeatCustomer {
		message = fmt.Sprintf("Dear %s, thank you for your continued business!", cust.Name)
	}
	if cust.IsConsistentlyFastPayer {
		message = fmt.Sprintf("Dear %s, we truly appreciate your consistently prompt payments!", cust.Name)
	}
	return message
}

func paymentTermsMessage(cust invoicing.Customer) string {
	message := fmt.Sprintf("Payment is due within %d days of the invoice date.", cust.PaymentTerms)
	if cust.PreferredPaymentMethod != "" {
		message += fmt.Sprintf(" For your convenience we accept payment via %s.", cust.PreferredPaymentMethod)
	}
	return message
}

// specialNotes evaluates two independent guards; both notes may appear.
func specialNotes(inv invoicing.Invoice, cust invoicing.Customer) []string {
	var notes []string

	if cust.AverageDaysToPay > float64(cust.PaymentTerms+lateBufferDays) {
		notes = append(notes, "Please note the due date on this invoice to avoid any late fees.")
	}

	if cust.AverageInvoiceAmount > 0 && inv.TotalAmount > 1.5*cust.AverageInvoiceAmount {
		notes = append(notes, "This invoice is larger than usual. Contact us if you would like to discuss a payment plan.")
	}

	return notes
}

func (e *Engine) aiRecommendation(inv invoicing.Invoice, cust invoicing.Customer) AIRecommendation {
	return AIRecommendation{
		SuggestedPaymentMethods: suggestedPaymentMethods(inv, cust),
		OptimalDueDate:          inv.CreatedAt.AddDate(0, 0, cust.PaymentTerms),
		PersonalizedMessage:     fmt.Sprintf("Thank you for your business, %s. We look forward to working with you again.", cust.Name),
		UpsellSuggestions:       upsellSuggestions(cust),
	}
}

// suggestedPaymentMethods puts the customer's preferred method first and
// steers large invoices towards bank transfer.
func suggestedPaymentMethods(inv invoicing.Invoice, cust invoicing.Customer) []string {
	methods := []string{}
	if cust.PreferredPaymentMethod != "" {
		methods = append(methods, cust.PreferredPaymentMethod)
	}
	if inv.TotalAmount > 10000 {
		methods = appendUnique(methods, "bank_transfer")
	}
	methods = appendUnique(methods, "card")
	methods = appendUnique(methods, "bank_transfer")
	return methods
}

func upsellSuggestions(cust invoicing.Customer) []string {
	suggestions := []string{
		"Ask about our bundled service packages.",
	}
	if cust.IsRepeatCustomer {
		suggestions = append(suggestions, "Switch to a recurring billing plan and simplify your invoices.")
	}
	if cust.IsConsistentlyFastPayer {
		suggestions = append(suggestions, "You may qualify for an early-payment discount on future invoices.")
	}
	return suggestions
}

func appendUnique(methods []string, method string) []string {
	for _, existing := range methods {
		if existing == method {
			return methods
		}
	}
	return append(methods, method)
}
