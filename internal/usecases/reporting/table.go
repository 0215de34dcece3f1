package reporting

import (
	"github.com/vfg2006/seller-reports-api/internal/domain"
	"github.com/vfg2006/seller-reports-api/pkg/format"
)

var tableColumns = []string{
	"Total order items",
	"Units ordered",
	"Ordered product sales",
	"Average units/order item",
	"Average sales/order item",
}

// BuildTable renders comparison rows into display strings.
func BuildTable(rows []domain.ComparisonRow) domain.ReportTable {
	table := domain.ReportTable{
		Columns: append([]string(nil), tableColumns...),
		Rows:    make([]domain.ReportTableRow, 0, len(rows)),
	}

	for _, row := range rows {
		table.Rows = append(table.Rows, domain.ReportTableRow{
			Label:           row.Label,
			Cells:           cells(row),
			IsPercentChange: row.IsPercentChange,
		})
	}

	return table
}

func cells(row domain.ComparisonRow) []string {
	if row.IsPercentChange {
		changes := domain.PercentChanges{}
		if row.Changes != nil {
			changes = *row.Changes
		}
		return []string{
			format.Percent(changes.TotalOrderItems),
			format.Percent(changes.UnitsOrdered),
			format.Percent(changes.OrderedProductSales),
			format.Percent(changes.AvgUnitsPerOrder),
			format.Percent(changes.AvgSalesPerOrder),
		}
	}

	metrics := domain.SalesMetrics{}
	if row.Metrics != nil {
		metrics = *row.Metrics
	}
	return []string{
		format.Number(float64(metrics.TotalOrderItems)),
		format.Number(float64(metrics.UnitsOrdered)),
		format.Currency(metrics.OrderedProductSales),
		format.Number(metrics.AvgUnitsPerOrder),
		format.Currency(metrics.AvgSalesPerOrder),
	}
}
