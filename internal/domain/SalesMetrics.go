package domain

// SalesMetrics holds the five sales figures shown on the business report
type SalesMetrics struct {
	TotalOrderItems     int     `json:"total_order_items"`
	UnitsOrdered        int     `json:"units_ordered"`
	OrderedProductSales float64 `json:"ordered_product_sales"`
	AvgUnitsPerOrder    float64 `json:"avg_units_per_order"`
	AvgSalesPerOrder    float64 `json:"avg_sales_per_order"`
}

// HasOrders reports whether the period registered at least one order item.
func (m SalesMetrics) HasOrders() bool {
	return m.TotalOrderItems > 0
}

// Scale applies a decay factor to the volume metrics. Averages are kept as generated.
func (m SalesMetrics) Scale(factor float64) SalesMetrics {
	m.TotalOrderItems = floorInt(float64(m.TotalOrderItems) * factor)
	m.UnitsOrdered = floorInt(float64(m.UnitsOrdered) * factor)
	m.OrderedProductSales = m.OrderedProductSales * factor
	return m
}

// PercentChanges holds per-field percentage deltas. A nil field means the
// baseline was zero and the change is undefined.
type PercentChanges struct {
	TotalOrderItems     *float64 `json:"total_order_items"`
	UnitsOrdered        *float64 `json:"units_ordered"`
	OrderedProductSales *float64 `json:"ordered_product_sales"`
	AvgUnitsPerOrder    *float64 `json:"avg_units_per_order"`
	AvgSalesPerOrder    *float64 `json:"avg_sales_per_order"`
}

// ComparisonRow is one line of the sales comparison table. Metrics is set for
// absolute rows and Changes for percent-change rows.
type ComparisonRow struct {
	Label           string          `json:"label"`
	Metrics         *SalesMetrics   `json:"metrics,omitempty"`
	Changes         *PercentChanges `json:"changes,omitempty"`
	IsPercentChange bool            `json:"is_percent_change"`
}

func floorInt(v float64) int {
	if v < 0 {
		return 0
	}
	return int(v)
}
