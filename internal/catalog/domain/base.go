package domain

// BaseStyle is the reference style every import falls back to for missing
// style blocks.
func BaseStyle() Style {
	return Style{
		Fonts: Fonts{
			Primary:   Font{Family: "Inter", Size: 14, Weight: "normal"},
			Secondary: Font{Family: "Inter", Size: 12, Weight: "normal"},
			Accent:    Font{Family: "Inter", Size: 16, Weight: "bold"},
		},
		Palette: Palette{
			Background: "#ffffff",
			Text:       "#111827",
			Primary:    "#1d4ed8",
			Secondary:  "#6b7280",
			Accent:     "#0f766e",
		},
		Spacing: Spacing{
			LineHeight: 1.5,
			SectionGap: 24,
			Margin:     32,
		},
		Branding: Branding{
			LogoURL:     "",
			BrandColors: []string{"#1d4ed8", "#0f766e"},
		},
	}
}

// BaseLayout is the reference section layout for imports that omit one.
func BaseLayout() Layout {
	return Layout{
		Header:      Section{Position: Position{X: 0, Y: 0}, Size: Size{Width: 612, Height: 90}, Align: "left", Padding: 16, Visible: true},
		SellerInfo:  Section{Position: Position{X: 0, Y: 90}, Size: Size{Width: 306, Height: 110}, Align: "left", Padding: 12, Visible: true},
		BuyerInfo:   Section{Position: Position{X: 306, Y: 90}, Size: Size{Width: 306, Height: 110}, Align: "right", Padding: 12, Visible: true},
		LineItems:   Section{Position: Position{X: 0, Y: 200}, Size: Size{Width: 612, Height: 380}, Align: "left", Padding: 12, Visible: true},
		Totals:      Section{Position: Position{X: 306, Y: 580}, Size: Size{Width: 306, Height: 80}, Align: "right", Padding: 12, Visible: true},
		PaymentInfo: Section{Position: Position{X: 0, Y: 660}, Size: Size{Width: 612, Height: 70}, Align: "left", Padding: 12, Visible: true},
		Footer:      Section{Position: Position{X: 0, Y: 730}, Size: Size{Width: 612, Height: 60}, Align: "center", Padding: 8, Visible: true},
	}
}
