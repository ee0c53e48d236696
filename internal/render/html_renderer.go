package render

import (
	"bytes"
	"context"
	"html/template"
	"time"

	"github.com/smallbiznis/docstudio/internal/docerr"
)

const documentHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Invoice.InvoiceNumber}}</title>
  <style>
    :root {
      --primary: {{.PrimaryColor}};
      --accent: {{.AccentColor}};
      --text: {{.Template.TextColor}};
      --background: {{.Template.BackgroundColor}};
      --font: "{{.Template.FontFamily}}";
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: var(--font), "Helvetica Neue", Arial, sans-serif;
      font-size: {{.Template.FontSize}}px;
      line-height: {{.Template.LineHeight}};
      color: var(--text);
      background: var(--background);
    }
    .invoice {
      max-width: 820px;
      margin: 0 auto;
    }
    .header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      border-bottom: 2px solid var(--primary);
      padding-bottom: 16px;
      margin-bottom: 24px;
    }
    .brand img {
      max-height: 48px;
    }
    .meta {
      text-align: right;
      font-size: 14px;
    }
    .meta .label {
      color: var(--accent);
      text-transform: uppercase;
      letter-spacing: 0.04em;
      font-size: 11px;
    }
    .due-date {
      {{if .DueDateEmphasized}}
      font-weight: {{.DueDateWeight}};
      font-size: {{.DueDateSize}}px;
      color: {{.DueDateColor}};
      {{end}}
    }
    .greeting {
      margin-bottom: 16px;
    }
    table {
      width: 100%;
      border-collapse: collapse;
      font-size: 14px;
    }
    th, td {
      padding: 10px;
      border-bottom: 1px solid #e5e7eb;
      text-align: left;
    }
    .totals {
      margin-top: 12px;
      display: flex;
      justify-content: flex-end;
      {{if .AmountEmphasized}}
      font-weight: {{.AmountWeight}};
      font-size: {{.AmountSize}}px;
      {{else}}
      font-size: 16px;
      {{end}}
    }
    .payment-info {
      margin-top: 24px;
      padding: 12px;
      {{if .HighlightPayment}}
      background: {{.HighlightBackground}};
      border: 1px solid {{.HighlightBorder}};
      font-weight: {{.HighlightWeight}};
      {{end}}
    }
    .notes {
      margin-top: 24px;
      font-size: 13px;
    }
    .footer {
      border-top: 1px solid #e5e7eb;
      margin-top: 24px;
      padding-top: 16px;
      font-size: 12px;
    }
  </style>
</head>
<body>
  <div class="invoice">
    <div class="header">
      <div class="brand">
        {{if .Template.LogoURL}}
        <img src="{{.Template.LogoURL}}" alt="Company logo" />
        {{end}}
        <div><strong>{{.Customer.Name}}</strong></div>
      </div>
      <div class="meta">
        <div class="label">Invoice</div>
        <div><strong>{{.Invoice.InvoiceNumber}}</strong></div>
        <div>Issued: {{formatDate .Invoice.CreatedAt}}</div>
        <div class="due-date">Due: {{formatDate .Invoice.DueAt}}</div>
      </div>
    </div>

    <div class="greeting">{{.Personalization.Greeting}}</div>

    <table>
      <thead>
        <tr><th>Description</th><th>Qty</th><th>Unit</th><th>Amount</th></tr>
      </thead>
      <tbody>
        {{range .Items}}
        <tr>
          <td>{{.Description}}</td>
          <td>{{.Quantity}}</td>
          <td>{{printf "%.2f" .UnitPrice}}</td>
          <td>{{printf "%.2f" .Amount}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="totals">
      Total <strong>{{printf "%.2f" .Invoice.TotalAmount}}</strong>
    </div>

    <div class="payment-info">
      {{.Personalization.PaymentTermsMessage}}
      {{if .Template.PaymentMethods}}
      <div>Accepted: {{range $i, $m := .Template.PaymentMethods}}{{if $i}}, {{end}}{{$m}}{{end}}</div>
      {{end}}
    </div>

    {{if .Personalization.SpecialNotes}}
    <div class="notes">
      {{range .Personalization.SpecialNotes}}
      <div>{{.}}</div>
      {{end}}
    </div>
    {{end}}

    <div class="footer">{{.Personalization.PersonalizedMessage}}</div>
  </div>
</body>
</html>`

// HTMLRenderer renders the prepared input into a self-contained HTML
// preview. It stands in for the external PDF collaborator in development
// and tests.
type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("document").Funcs(template.FuncMap{
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format("Jan 2, 2006")
		},
	}).Parse(documentHTMLTemplate)
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

type htmlContext struct {
	Input

	PrimaryColor string
	AccentColor  string

	HighlightPayment    bool
	HighlightBackground string
	HighlightBorder     string
	HighlightWeight     string

	DueDateEmphasized bool
	DueDateWeight     string
	DueDateSize       string
	DueDateColor      string

	AmountEmphasized bool
	AmountWeight     string
	AmountSize       string
}

// Render applies the style overrides and executes the HTML template.
func (r *HTMLRenderer) Render(ctx context.Context, input Input) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &docerr.RenderError{Err: err}
	}

	view := buildHTMLContext(input)
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return nil, &docerr.RenderError{Err: err}
	}
	return buf.Bytes(), nil
}

// buildHTMLContext folds the flat override keys into template-ready
// fields, falling back to the template's own style.
func buildHTMLContext(input Input) htmlContext {
	view := htmlContext{
		Input:        input,
		PrimaryColor: input.Template.PrimaryColor,
		AccentColor:  input.Template.AccentColor,
	}
	overrides := input.Overrides

	if color := overrides["primary_color"]; color != "" {
		view.PrimaryColor = color
	}
	if color := overrides["accent_color"]; color != "" {
		view.AccentColor = color
	}

	if background := overrides["payment_highlight_background"]; background != "" {
		view.HighlightPayment = true
		view.HighlightBackground = background
		view.HighlightBorder = overrides["payment_highlight_border"]
		view.HighlightWeight = overrides["payment_highlight_weight"]
	}

	if weight := overrides["due_date_weight"]; weight != "" {
		view.DueDateEmphasized = true
		view.DueDateWeight = weight
		view.DueDateSize = overrides["due_date_size"]
		view.DueDateColor = overrides["due_date_color"]
	}

	if weight := overrides["amount_weight"]; weight != "" {
		view.AmountEmphasized = true
		view.AmountWeight = weight
		view.AmountSize = overrides["amount_size"]
	}

	return view
}
