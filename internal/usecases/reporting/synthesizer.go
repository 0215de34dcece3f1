package reporting

import (
	"fmt"
	"math"

	"github.com/vfg2006/seller-reports-api/internal/domain"
	"github.com/vfg2006/seller-reports-api/pkg/apiErrors"
)

const (
	baseOrdersPerDay  = 45.0
	baseUnitsPerOrder = 1.2
	baseOrderValue    = 75.0
)

// Synthesizer produces plausible sales figures for a period of a given length.
type Synthesizer struct {
	rnd RandomSource
}

func NewSynthesizer(rnd RandomSource) *Synthesizer {
	return &Synthesizer{rnd: rnd}
}

// Generate consumes exactly three draws from the random source: order volume,
// units per order and average order value, in that order.
func (s *Synthesizer) Generate(days, variance float64) (domain.SalesMetrics, error) {
	if math.IsNaN(days) || math.IsInf(days, 0) || days <= 0 {
		return domain.SalesMetrics{}, NewReportError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, fmt.Sprintf("days=%v", days))
	}
	if math.IsNaN(variance) || variance < 0 || variance >= 1 {
		return domain.SalesMetrics{}, NewReportError(ErrInvalidVariance, apiErrors.ErrInvalidRequest, fmt.Sprintf("variance=%v", variance))
	}

	randomFactor := 1 + (s.rnd.Float64()-0.5)*variance*2
	totalOrderItems := int(math.Floor(baseOrdersPerDay * days * randomFactor))
	unitsOrdered := int(math.Floor(float64(totalOrderItems) * baseUnitsPerOrder * (0.95 + s.rnd.Float64()*0.1)))
	avgSalesPerOrder := baseOrderValue * (0.9 + s.rnd.Float64()*0.2)

	metrics := domain.SalesMetrics{
		TotalOrderItems:     totalOrderItems,
		UnitsOrdered:        unitsOrdered,
		OrderedProductSales: float64(totalOrderItems) * avgSalesPerOrder,
		AvgSalesPerOrder:    avgSalesPerOrder,
	}
	if metrics.HasOrders() {
		metrics.AvgUnitsPerOrder = float64(unitsOrdered) / float64(totalOrderItems)
	}

	return metrics, nil
}
