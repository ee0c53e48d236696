package domain

// Customizations is a flat mapping of style keys to override values. It is
// generated fresh per recommendation and layered onto a template at render
// time; the source template itself never mutates.
type Customizations map[string]string

// Style override keys understood by the renderer and the analyzer.
const (
	CustomPrimaryColor       = "primary_color"
	CustomAccentColor        = "accent_color"
	CustomHighlightBackground = "payment_highlight_background"
	CustomHighlightBorder    = "payment_highlight_border"
	CustomHighlightWeight    = "payment_highlight_weight"
	CustomDueDateWeight      = "due_date_weight"
	CustomDueDateSize        = "due_date_size"
	CustomDueDateColor       = "due_date_color"
	CustomAmountSize         = "amount_size"
	CustomAmountWeight       = "amount_weight"
)

// Keys returns the override keys. Map order is unspecified; callers that
// need determinism should sort the result.
func (c Customizations) Keys() []string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	return keys
}
