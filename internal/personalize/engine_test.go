package personalize

import (
	"errors"
	"testing"
	"time"

	"github.com/smallbiznis/docstudio/internal/docerr"
	"github.com/smallbiznis/docstudio/internal/invoicing"
)

func testInvoice(total float64) invoicing.Invoice {
	return invoicing.Invoice{
		ID:            "inv_1",
		InvoiceNumber: "INV-1001",
		TotalAmount:   total,
		CreatedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func testCustomer() invoicing.Customer {
	return invoicing.Customer{
		ID:           "cust_1",
		Name:         "Acme Corp",
		PaymentTerms: 30,
	}
}

func TestGreetingPrecedence(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name   string
		repeat bool
		fast   bool
		want   string
	}{
		{"new customer", false, false, "Dear Acme Corp,"},
		{"repeat customer", true, false, "Dear Acme Corp, thank you for your continued business!"},
		{"fast payer", false, true, "Dear Acme Corp, we truly appreciate your consistently prompt payments!"},
		{"fast payer wins over repeat", true, true, "Dear Acme Corp, we truly appreciate your consistently prompt payments!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cust := testCustomer()
			cust.IsRepeatCustomer = tc.repeat
			cust.IsConsistentlyFastPayer = tc.fast

			p, err := engine.Personalize(testInvoice(500), cust)
			if err != nil {
				t.Fatalf("personalize: %v", err)
			}
			if p.Greeting != tc.want {
				t.Fatalf("expected greeting %q, got %q", tc.want, p.Greeting)
			}
		})
	}
}

func TestPaymentTermsMessage(t *testing.T) {
	engine := NewEngine()

	cust := testCustomer()
	p, err := engine.Personalize(testInvoice(500), cust)
	if err != nil {
		t.Fatalf("personalize: %v", err)
	}
	if p.PaymentTermsMessage != "Payment is due within 30 days of the invoice date." {
		t.Fatalf("unexpected terms message %q", p.PaymentTermsMessage)
	}

	cust.PreferredPaymentMethod = "bank_transfer"
	p, err = engine.Personalize(testInvoice(500), cust)
	if err != nil {
		t.Fatalf("personalize: %v", err)
	}
	want := "Payment is due within 30 days of the invoice date. For your convenience we accept payment via bank_transfer."
	if p.PaymentTermsMessage != want {
		t.Fatalf("expected %q, got %q", want, p.PaymentTermsMessage)
	}
}

func TestSpecialNotes(t *testing.T) {
	engine := NewEngine()

	t.Run("slow payer note", func(t *testing.T) {
		cust := testCustomer()
		cust.AverageDaysToPay = 40

		p, err := engine.Personalize(testInvoice(500), cust)
		if err != nil {
			t.Fatalf("personalize: %v", err)
		}
		if len(p.SpecialNotes) != 1 {
			t.Fatalf("expected 1 note, got %v", p.SpecialNotes)
		}
	})

	t.Run("no note within the grace buffer", func(t *testing.T) {
		cust := testCustomer()
		cust.AverageDaysToPay = 35

		p, err := engine.Personalize(testInvoice(500), cust)
		if err != nil {
			t.Fatalf("personalize: %v", err)
		}
		if len(p.SpecialNotes) != 0 {
			t.Fatalf("expected no notes, got %v", p.SpecialNotes)
		}
	})

	t.Run("oversized invoice note", func(t *testing.T) {
		cust := testCustomer()
		cust.AverageInvoiceAmount = 1000

		p, err := engine.Personalize(testInvoice(2000), cust)
		if err != nil {
			t.Fatalf("personalize: %v", err)
		}
		if len(p.SpecialNotes) != 1 {
			t.Fatalf("expected 1 note, got %v", p.SpecialNotes)
		}
	})

	t.Run("zero average never triggers the size note", func(t *testing.T) {
		cust := testCustomer()
		cust.AverageInvoiceAmount = 0

		p, err := engine.Personalize(testInvoice(1000000), cust)
		if err != nil {
			t.Fatalf("personalize: %v", err)
		}
		if len(p.SpecialNotes) != 0 {
			t.Fatalf("expected no notes, got %v", p.SpecialNotes)
		}
	})

	t.Run("both notes fire together", func(t *testing.T) {
		cust := testCustomer()
		cust.AverageDaysToPay = 50
		cust.AverageInvoiceAmount = 1000

		p, err := engine.Personalize(testInvoice(5000), cust)
		if err != nil {
			t.Fatalf("personalize: %v", err)
		}
		if len(p.SpecialNotes) != 2 {
			t.Fatalf("expected 2 notes, got %v", p.SpecialNotes)
		}
	})
}

func TestOptimalDueDate(t *testing.T) {
	engine := NewEngine()

	inv := testInvoice(500)
	p, err := engine.Personalize(inv, testCustomer())
	if err != nil {
		t.Fatalf("personalize: %v", err)
	}
	want := inv.CreatedAt.AddDate(0, 0, 30)
	if !p.AIRecommendation.OptimalDueDate.Equal(want) {
		t.Fatalf("expected due date %v, got %v", want, p.AIRecommendation.OptimalDueDate)
	}
}

func TestSuggestedPaymentMethods(t *testing.T) {
	engine := NewEngine()

	t.Run("preferred method leads", func(t *testing.T) {
		cust := testCustomer()
		cust.PreferredPaymentMethod = "paypal"

		p, err := engine.Personalize(testInvoice(500), cust)
		if err != nil {
			t.Fatalf("personalize: %v", err)
		}
		want := []string{"paypal", "card", "bank_transfer"}
		assertStrings(t, want, p.AIRecommendation.SuggestedPaymentMethods)
	})

	t.Run("large invoices steer to bank transfer", func(t *testing.T) {
		p, err := engine.Personalize(testInvoice(20000), testCustomer())
		if err != nil {
			t.Fatalf("personalize: %v", err)
		}
		want := []string{"bank_transfer", "card"}
		assertStrings(t, want, p.AIRecommendation.SuggestedPaymentMethods)
	})

	t.Run("preferred method is never duplicated", func(t *testing.T) {
		cust := testCustomer()
		cust.PreferredPaymentMethod = "bank_transfer"

		p, err := engine.Personalize(testInvoice(20000), cust)
		if err != nil {
			t.Fatalf("personalize: %v", err)
		}
		want := []string{"bank_transfer", "card"}
		assertStrings(t, want, p.AIRecommendation.SuggestedPaymentMethods)
	})
}

func TestUpsellSuggestions(t *testing.T) {
	engine := NewEngine()

	cust := testCustomer()
	cust.IsRepeatCustomer = true
	cust.IsConsistentlyFastPayer = true

	p, err := engine.Personalize(testInvoice(500), cust)
	if err != nil {
		t.Fatalf("personalize: %v", err)
	}
	if len(p.AIRecommendation.UpsellSuggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %v", p.AIRecommendation.UpsellSuggestions)
	}
}

func TestPersonalizeRejectsInvalidInput(t *testing.T) {
	engine := NewEngine()

	var validationErr *docerr.ValidationError

	_, err := engine.Personalize(invoicing.Invoice{}, testCustomer())
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = engine.Personalize(testInvoice(500), invoicing.Customer{})
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func assertStrings(t *testing.T, want, got []string) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
