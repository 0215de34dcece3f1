package reporting

import (
	"time"

	"github.com/vfg2006/seller-reports-api/internal/domain"
)

const labelDateLayout = "1/2/2006"

// DaysForPreset returns the length in days of the period a preset covers at now.
// Today counts as half a day.
func DaysForPreset(preset domain.DatePreset, now time.Time) float64 {
	return specFor(preset).Days(now)
}

// CurrentLabel is the label of the current-period row.
func CurrentLabel(preset domain.DatePreset) string {
	return specFor(preset).CurrentLabel
}

// PresetLabel is the text shown in the date selector.
func PresetLabel(preset domain.DatePreset, now time.Time) string {
	switch preset {
	case domain.PresetToday:
		return "Today - " + now.Format(labelDateLayout)
	case domain.PresetYesterday:
		return "Yesterday - " + now.AddDate(0, 0, -1).Format(labelDateLayout)
	case domain.PresetLast7Days:
		return "Last 7 days"
	case domain.PresetLast30Days:
		return "Last 30 days"
	case domain.PresetMTD:
		return "Month to date - " + now.Format(labelDateLayout)
	case domain.PresetYTD:
		return "Year to date - " + now.Format(labelDateLayout)
	case domain.PresetCustom:
		return "Custom"
	default:
		return PresetLabel(domain.DefaultPreset, now)
	}
}

func PresetOptions(now time.Time) []domain.PresetOption {
	options := make([]domain.PresetOption, 0, len(domain.AllPresets))
	for _, preset := range domain.AllPresets {
		options = append(options, domain.PresetOption{
			Value: preset,
			Label: PresetLabel(preset, now),
			Days:  DaysForPreset(preset, now),
		})
	}
	return options
}
