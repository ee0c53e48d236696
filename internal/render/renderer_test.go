package render

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/smallbiznis/docstudio/internal/docerr"
)

func testInput() Input {
	return Input{
		Template: TemplateView{
			ID:              "1",
			Name:            "Classic Professional",
			Category:        "professional",
			PrimaryColor:    "#1d4ed8",
			AccentColor:     "#0f766e",
			BackgroundColor: "#ffffff",
			TextColor:       "#111827",
			FontFamily:      "Inter",
			FontSize:        14,
			LineHeight:      1.5,
			PaymentMethods:  []string{"card", "bank_transfer"},
		},
		Invoice: InvoiceView{
			ID:            "inv_1",
			InvoiceNumber: "INV-1001",
			TotalAmount:   1250.50,
			CreatedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			DueAt:         time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC),
		},
		Customer: CustomerView{Name: "Acme Corp"},
		Items: []LineItemView{
			{Description: "Consulting", Quantity: 10, UnitPrice: 125.05, Amount: 1250.50},
		},
		Personalization: PersonalizationView{
			Greeting:            "Dear Acme Corp,",
			PaymentTermsMessage: "Payment is due within 30 days of the invoice date.",
			PersonalizedMessage: "Thank you for your business, Acme Corp. We look forward to working with you again.",
		},
	}
}

func TestFilename(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	got := Filename("INV-1001", at)
	want := "invoice_INV-1001_1772366400.pdf"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestHTMLRendererBasicDocument(t *testing.T) {
	r, err := NewHTMLRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), testInput())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(out)
	for _, want := range []string{
		"INV-1001",
		"Dear Acme Corp,",
		"Consulting",
		"card, bank_transfer",
		"--primary: #1d4ed8",
		"Mar 1, 2026",
		"Mar 31, 2026",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered document missing %q", want)
		}
	}
}

func TestHTMLRendererAppliesOverrides(t *testing.T) {
	r, err := NewHTMLRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	input := testInput()
	input.Overrides = map[string]string{
		"primary_color":                "#0f766e",
		"payment_highlight_background": "#fef3c7",
		"payment_highlight_border":     "#f59e0b",
		"payment_highlight_weight":     "bold",
		"due_date_weight":              "bold",
		"due_date_size":                "16",
		"due_date_color":               "#b91c1c",
		"amount_weight":                "bold",
		"amount_size":                  "20",
	}

	out, err := r.Render(context.Background(), input)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(out)
	for _, want := range []string{
		"--primary: #0f766e",
		"background: #fef3c7",
		"border: 1px solid #f59e0b",
		"color: #b91c1c",
		"font-size: 16px",
		"font-size: 20px",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered document missing override %q", want)
		}
	}
	if strings.Contains(html, "--primary: #1d4ed8") {
		t.Fatalf("template primary color should be overridden")
	}
}

func TestHTMLRendererCancelledContext(t *testing.T) {
	r, err := NewHTMLRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var renderErr *docerr.RenderError
	_, err = r.Render(ctx, testInput())
	if !errors.As(err, &renderErr) {
		t.Fatalf("expected render error, got %v", err)
	}
}

func TestHTTPRendererPostsInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		w.Write([]byte("%PDF-1.7 fake"))
	}))
	defer srv.Close()

	r := NewHTTPRenderer(srv.URL, srv.Client())
	out, err := r.Render(context.Background(), testInput())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "%PDF-1.7 fake" {
		t.Fatalf("unexpected body %q", out)
	}
}

func TestHTTPRendererNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewHTTPRenderer(srv.URL, srv.Client())

	var renderErr *docerr.RenderError
	_, err := r.Render(context.Background(), testInput())
	if !errors.As(err, &renderErr) {
		t.Fatalf("expected render error, got %v", err)
	}
}
