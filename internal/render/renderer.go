// Package render defines the collaborator contract that turns prepared
// content and style instructions into document bytes. The engine only
// prepares the instructions; rasterization happens behind the Renderer
// port.
package render

import (
	"context"
	"fmt"
	"time"
)

// Input is the deterministic content + style payload handed to a
// renderer. Overrides are flat style-key instructions layered onto the
// template's own style.
type Input struct {
	Template        TemplateView        `json:"template"`
	Invoice         InvoiceView         `json:"invoice"`
	Customer        CustomerView        `json:"customer"`
	Items           []LineItemView      `json:"items"`
	Personalization PersonalizationView `json:"personalization"`
	Overrides       map[string]string   `json:"overrides"`
}

type TemplateView struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	PrimaryColor    string   `json:"primary_color"`
	AccentColor     string   `json:"accent_color"`
	BackgroundColor string   `json:"background_color"`
	TextColor       string   `json:"text_color"`
	FontFamily      string   `json:"font_family"`
	FontSize        float64  `json:"font_size"`
	LineHeight      float64  `json:"line_height"`
	LogoURL         string   `json:"logo_url"`
	PaymentMethods  []string `json:"payment_methods"`
}

type InvoiceView struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	TotalAmount   float64   `json:"total_amount"`
	CreatedAt     time.Time `json:"created_at"`
	DueAt         time.Time `json:"due_at"`
}

type CustomerView struct {
	Name string `json:"name"`
}

type LineItemView struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

type PersonalizationView struct {
	Greeting            string   `json:"greeting"`
	PaymentTermsMessage string   `json:"payment_terms_message"`
	SpecialNotes        []string `json:"special_notes"`
	PersonalizedMessage string   `json:"personalized_message"`
}

// Renderer produces document bytes from a prepared input. Implementations
// may be slow and fallible; callers own cancellation and retry.
type Renderer interface {
	Render(ctx context.Context, input Input) ([]byte, error)
}

// Filename returns the output filename for a generated document.
func Filename(invoiceNumber string, at time.Time) string {
	return fmt.Sprintf("invoice_%s_%d.pdf", invoiceNumber, at.Unix())
}

// Metadata describes a completed generation.
type Metadata struct {
	TemplateUsed          string   `json:"template_used"`
	CustomizationsApplied []string `json:"customizations_applied"`
	GenerationTimeMs      int64    `json:"generation_time_ms"`
	FileSizeBytes         int      `json:"file_size_bytes"`
	Filename              string   `json:"filename"`
}
