package reporting

import (
	"fmt"

	"github.com/vfg2006/seller-reports-api/internal/domain"
	"github.com/vfg2006/seller-reports-api/pkg/format"
)

const insightTemplate = "Your store is showing strong performance for the selected period. " +
	"Total sales reached %s with %s order items and %s units ordered. " +
	"The average order value is %s, indicating healthy customer spending patterns. " +
	"Consider analyzing your top-performing products to identify opportunities for expansion."

// Insight summarizes the current period in one paragraph.
func Insight(current domain.SalesMetrics) string {
	return fmt.Sprintf(insightTemplate,
		format.Currency(current.OrderedProductSales),
		format.Number(float64(current.TotalOrderItems)),
		format.Number(float64(current.UnitsOrdered)),
		format.Currency(current.AvgSalesPerOrder),
	)
}
