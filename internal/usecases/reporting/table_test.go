package reporting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-reports-api/internal/domain"
)

func TestBuildTable(t *testing.T) {
	rows := []domain.ComparisonRow{
		{
			Label: "Yesterday",
			Metrics: &domain.SalesMetrics{
				TotalOrderItems:     1234,
				UnitsOrdered:        1500,
				OrderedProductSales: 92550,
				AvgUnitsPerOrder:    1500.0 / 1234.0,
				AvgSalesPerOrder:    75,
			},
		},
		{
			Label:           "+ % change from day before",
			IsPercentChange: true,
			Changes: &domain.PercentChanges{
				TotalOrderItems:     ptr(12.34),
				UnitsOrdered:        ptr(-5),
				OrderedProductSales: nil,
				AvgUnitsPerOrder:    ptr(0),
				AvgSalesPerOrder:    ptr(100),
			},
		},
	}

	table := BuildTable(rows)

	assert.Equal(t, []string{
		"Total order items",
		"Units ordered",
		"Ordered product sales",
		"Average units/order item",
		"Average sales/order item",
	}, table.Columns)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, "Yesterday", table.Rows[0].Label)
	assert.Equal(t, []string{"1,234", "1,500", "$92,550.00", "1.22", "$75.00"}, table.Rows[0].Cells)
	assert.False(t, table.Rows[0].IsPercentChange)

	assert.Equal(t, []string{"+12.3%", "-5.0%", "N/A", "0.0%", "+100.0%"}, table.Rows[1].Cells)
	assert.True(t, table.Rows[1].IsPercentChange)
}

func TestInsight(t *testing.T) {
	insight := Insight(domain.SalesMetrics{
		TotalOrderItems:     1234,
		UnitsOrdered:        1500,
		OrderedProductSales: 92550,
		AvgSalesPerOrder:    75,
	})

	assert.True(t, strings.HasPrefix(insight, "Your store is showing strong performance for the selected period."))
	assert.Contains(t, insight, "Total sales reached $92,550.00 with 1,234 order items and 1,500 units ordered.")
	assert.Contains(t, insight, "The average order value is $75.00, indicating healthy customer spending patterns.")
}
