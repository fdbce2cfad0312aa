package content

// Chart is a client-renderable dataset. The server only serves the numbers;
// drawing happens in the page.
type Chart struct {
	Kind   string    `json:"kind"` // pie, bar or line
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	XLabel string    `json:"x_label,omitempty"`
	YLabel string    `json:"y_label,omitempty"`
}

func hotColdPie() Chart {
	return Chart{
		Kind:   "pie",
		Title:  "Hot vs Cold Data Distribution",
		Labels: []string{"Hot Data", "Cold Data"},
		Values: []float64{30, 70},
	}
}

func reductionBar() Chart {
	return Chart{
		Kind:   "bar",
		Title:  "Dataset Size Reduction",
		Labels: []string{"Original", "Deduplicated", "Compressed"},
		Values: []float64{100, 70, 30},
		XLabel: "Stage",
		YLabel: "Relative Size (%)",
	}
}

func savingsLine() Chart {
	return Chart{
		Kind:   "line",
		Title:  "Storage Savings Across Datasets",
		Labels: []string{"1", "2", "3", "4", "5"},
		Values: []float64{90, 70, 55, 50, 48},
		XLabel: "Dataset Index",
		YLabel: "Storage Saved (%)",
	}
}
