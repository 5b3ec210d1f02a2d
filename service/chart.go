package service

import "loan-wizard/domain"

// NamedBreakdown pairs a series name with its amortization schedule.
type NamedBreakdown struct {
	Name      string
	Breakdown []domain.BreakdownEntry
}

// sampleAt returns the plotted value for one series at month m. Month 0
// reconstructs the pre-payment balance (first recorded balance plus that
// payment's principal). Months past the end of the schedule plot as 0: a
// finished series reads as debt-free, which is the intent.
func sampleAt(breakdown []domain.BreakdownEntry, m int) float64 {
	if len(breakdown) == 0 {
		return 0
	}
	if m == 0 {
		return breakdown[0].Balance + breakdown[0].PrincipalPaid
	}
	if m <= len(breakdown) {
		return breakdown[m-1].Balance
	}
	return 0
}

// BuildChart constructs the shared-axis chart over up to four series of
// differing lengths. The axis runs 0..maxMonths sampled at
// stride = max(1, maxMonths/25).
func BuildChart(series []NamedBreakdown) domain.Chart {
	maxMonths := 0
	for _, s := range series {
		if len(s.Breakdown) > maxMonths {
			maxMonths = len(s.Breakdown)
		}
	}

	stride := maxMonths / ChartMaxPoints
	if stride < 1 {
		stride = 1
	}

	var labels []int
	for m := 0; m <= maxMonths; m += stride {
		labels = append(labels, m)
	}

	chart := domain.Chart{Labels: labels}
	for _, s := range series {
		values := make([]float64, len(labels))
		for i, m := range labels {
			values[i] = sampleAt(s.Breakdown, m)
		}
		chart.Series = append(chart.Series, domain.ChartSeries{Name: s.Name, Values: values})
	}
	return chart
}

// BuildScenarioChart plots the three base scenarios.
func BuildScenarioChart(sc domain.Scenarios) domain.Chart {
	return BuildChart([]NamedBreakdown{
		{Name: "minimum", Breakdown: sc.Minimum.Breakdown},
		{Name: "recommended", Breakdown: sc.Recommended.Breakdown},
		{Name: "aggressive", Breakdown: sc.Aggressive.Breakdown},
	})
}

// BuildOverlayChart plots the three base scenarios plus the custom what-if
// plan as a fourth series.
func BuildOverlayChart(sc domain.Scenarios, custom []domain.BreakdownEntry) domain.Chart {
	return BuildChart([]NamedBreakdown{
		{Name: "minimum", Breakdown: sc.Minimum.Breakdown},
		{Name: "recommended", Breakdown: sc.Recommended.Breakdown},
		{Name: "aggressive", Breakdown: sc.Aggressive.Breakdown},
		{Name: "custom", Breakdown: custom},
	})
}
