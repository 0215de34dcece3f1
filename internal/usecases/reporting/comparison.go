package reporting

import (
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/seller-reports-api/internal/domain"
)

const changeLabelPrefix = "+ % change from "

// periodLength resolves the number of days covered by a period at a given instant.
type periodLength func(now time.Time) float64

func fixedDays(days float64) periodLength {
	return func(time.Time) float64 { return days }
}

func dayOfMonth(now time.Time) float64 {
	return float64(now.Day())
}

// dayOfYear counts Jan 1 as day 1.
func dayOfYear(now time.Time) float64 {
	return float64(now.YearDay())
}

// ComparisonSpec describes one historical baseline of a preset.
type ComparisonSpec struct {
	Label    string
	Days     periodLength
	Variance float64
	Decay    float64
}

func (c ComparisonSpec) ChangeLabel() string {
	if c.Label == "" {
		return changeLabelPrefix
	}
	return changeLabelPrefix + strings.ToLower(c.Label[:1]) + c.Label[1:]
}

type presetSpec struct {
	CurrentLabel string
	Days         periodLength
	Comparisons  []ComparisonSpec
}

var presetTable = map[domain.DatePreset]presetSpec{
	domain.PresetToday: {
		CurrentLabel: "Today so far",
		Days:         fixedDays(0.5),
		Comparisons: []ComparisonSpec{
			{Label: "Yesterday", Days: fixedDays(1), Variance: 0.12, Decay: 0.92},
			{Label: "Same day last week", Days: fixedDays(1), Variance: 0.12, Decay: 0.85},
			{Label: "Same day last year", Days: fixedDays(1), Variance: 0.15, Decay: 0.70},
		},
	},
	domain.PresetYesterday: {
		CurrentLabel: "Yesterday",
		Days:         fixedDays(1),
		Comparisons: []ComparisonSpec{
			{Label: "Day before", Days: fixedDays(1), Variance: 0.12, Decay: 0.93},
			{Label: "Same day last week", Days: fixedDays(1), Variance: 0.12, Decay: 0.87},
			{Label: "Same day last year", Days: fixedDays(1), Variance: 0.15, Decay: 0.72},
		},
	},
	domain.PresetLast7Days: {
		CurrentLabel: "This week so far",
		Days:         fixedDays(7),
		Comparisons: []ComparisonSpec{
			{Label: "Last week", Days: fixedDays(7), Variance: 0.12, Decay: 0.90},
			{Label: "Same week last year", Days: fixedDays(7), Variance: 0.15, Decay: 0.75},
		},
	},
	domain.PresetLast30Days: {
		CurrentLabel: "Last 30 days",
		Days:         fixedDays(30),
		Comparisons: []ComparisonSpec{
			{Label: "Previous 30 days", Days: fixedDays(30), Variance: 0.12, Decay: 0.88},
			{Label: "Same period last year", Days: fixedDays(30), Variance: 0.15, Decay: 0.73},
		},
	},
	domain.PresetMTD: {
		CurrentLabel: "Month to date",
		Days:         dayOfMonth,
		Comparisons: []ComparisonSpec{
			{Label: "Same period last month", Days: dayOfMonth, Variance: 0.12, Decay: 0.89},
			{Label: "Same period last year", Days: dayOfMonth, Variance: 0.15, Decay: 0.74},
		},
	},
	domain.PresetYTD: {
		CurrentLabel: "Year to date",
		Days:         dayOfYear,
		Comparisons: []ComparisonSpec{
			{Label: "Same period last year", Days: dayOfYear, Variance: 0.15, Decay: 0.76},
		},
	},
	domain.PresetCustom: {
		CurrentLabel: "Current period",
		Days:         fixedDays(1),
	},
}

// specFor never fails: unknown presets resolve to the default one.
func specFor(preset domain.DatePreset) presetSpec {
	if spec, ok := presetTable[preset]; ok {
		return spec
	}
	return presetTable[domain.DefaultPreset]
}

// Comparisons returns the baselines configured for a preset, in display order.
func Comparisons(preset domain.DatePreset) []ComparisonSpec {
	return specFor(preset).Comparisons
}

// Builder assembles the comparison table around a current-period measurement.
type Builder struct {
	synthesizer *Synthesizer
}

func NewBuilder(rnd RandomSource) *Builder {
	return &Builder{synthesizer: NewSynthesizer(rnd)}
}

// Build returns the current row, one row per baseline and one percent-change
// row per baseline, in that order.
func (b *Builder) Build(preset domain.DatePreset, current domain.SalesMetrics, now time.Time) ([]domain.ComparisonRow, error) {
	spec := specFor(preset)

	rows := make([]domain.ComparisonRow, 0, 1+2*len(spec.Comparisons))
	rows = append(rows, domain.ComparisonRow{Label: spec.CurrentLabel, Metrics: &current})

	baselines := make([]domain.SalesMetrics, 0, len(spec.Comparisons))
	for _, comparison := range spec.Comparisons {
		metrics, err := b.synthesizer.Generate(comparison.Days(now), comparison.Variance)
		if err != nil {
			return nil, errors.Wrapf(err, "generating baseline %q", comparison.Label)
		}

		baseline := metrics.Scale(comparison.Decay)
		baselines = append(baselines, baseline)
		rows = append(rows, domain.ComparisonRow{Label: comparison.Label, Metrics: &baseline})
	}

	for i, comparison := range spec.Comparisons {
		changes := percentChanges(current, baselines[i])
		rows = append(rows, domain.ComparisonRow{
			Label:           comparison.ChangeLabel(),
			Changes:         &changes,
			IsPercentChange: true,
		})
	}

	return rows, nil
}

// PercentChange returns nil when the baseline is zero or the result is not finite.
func PercentChange(current, baseline float64) *float64 {
	if baseline == 0 {
		return nil
	}

	change := (current - baseline) / baseline * 100
	if math.IsNaN(change) || math.IsInf(change, 0) {
		return nil
	}

	return &change
}

func percentChanges(current, baseline domain.SalesMetrics) domain.PercentChanges {
	return domain.PercentChanges{
		TotalOrderItems:     PercentChange(float64(current.TotalOrderItems), float64(baseline.TotalOrderItems)),
		UnitsOrdered:        PercentChange(float64(current.UnitsOrdered), float64(baseline.UnitsOrdered)),
		OrderedProductSales: PercentChange(current.OrderedProductSales, baseline.OrderedProductSales),
		AvgUnitsPerOrder:    PercentChange(current.AvgUnitsPerOrder, baseline.AvgUnitsPerOrder),
		AvgSalesPerOrder:    PercentChange(current.AvgSalesPerOrder, baseline.AvgSalesPerOrder),
	}
}
