package reporting

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/vfg2006/seller-reports-api/internal/domain"
	"github.com/vfg2006/seller-reports-api/pkg/format"
)

// buildGlobalSnapshot fills the home page cards. Sales comes from the
// synthesizer; the remaining cards are drawn from the same source so a seed
// reproduces the whole overview.
func buildGlobalSnapshot(rnd RandomSource, variance float64, now time.Time) ([]domain.SnapshotCard, error) {
	todaySoFar, err := NewSynthesizer(rnd).Generate(DaysForPreset(domain.PresetToday, now), variance)
	if err != nil {
		return nil, err
	}

	fbmUnshipped := intBetween(rnd, 0, 3)
	fbmPending := intBetween(rnd, 0, 2)
	fbaPending := intBetween(rnd, 0, 2)
	openOrders := fbmUnshipped + fbmPending + fbaPending + intBetween(rnd, 5, 15)
	buyerMessages := intBetween(rnd, 0, 4)
	featuredOffer := intBetween(rnd, 85, 99)
	featuredOfferAt := now.Add(-time.Duration(intBetween(rnd, 1, 3)) * 24 * time.Hour)
	feedbackScore := 4 + float64(intBetween(rnd, 0, 10))/10
	feedbackCount := intBetween(rnd, 50, 150)
	payments := math.Round(10000 + rnd.Float64()*10000)

	return []domain.SnapshotCard{
		{
			Label:    "Sales",
			Value:    format.Currency(todaySoFar.OrderedProductSales),
			Subtitle: CurrentLabel(domain.PresetToday),
			Rows: []domain.SnapshotCardRow{
				{Label: "FBM Unshipped", Value: "0"},
				{Label: "FBM Pending", Value: "0"},
				{Label: "FBA Pending", Value: "0"},
			},
		},
		{
			Label:    "Open Orders",
			Value:    strconv.Itoa(openOrders),
			Subtitle: "Total Count",
			Active:   true,
			Rows: []domain.SnapshotCardRow{
				{Label: "FBM Unshipped", Value: strconv.Itoa(fbmUnshipped)},
				{Label: "FBM Pending", Value: strconv.Itoa(fbmPending)},
				{Label: "FBA Pending", Value: strconv.Itoa(fbaPending)},
			},
		},
		{
			Label:    "Buyer Messages",
			Value:    strconv.Itoa(buyerMessages),
			Subtitle: "Cases requiring attention",
		},
		{
			Label:    "Featured Offer %",
			Value:    strconv.Itoa(featuredOffer) + "%",
			Subtitle: humanize.RelTime(featuredOfferAt, now, "ago", "from now"),
		},
		{
			Label:    "Seller Feedback",
			Value:    strconv.FormatFloat(feedbackScore, 'f', 1, 64),
			Subtitle: fmt.Sprintf("Past Year (%d)", feedbackCount),
		},
		{
			Label:    "Payments",
			Value:    "$" + format.Number(payments),
			Subtitle: "Total Balance",
		},
	}, nil
}

// intBetween draws an integer in [lo, hi].
func intBetween(rnd RandomSource, lo, hi int) int {
	return lo + int(rnd.Float64()*float64(hi-lo+1))
}
