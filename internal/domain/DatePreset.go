package domain

import "strings"

// DatePreset identifies the date range selected on the report
type DatePreset string

const (
	PresetToday      DatePreset = "today"
	PresetYesterday  DatePreset = "yesterday"
	PresetLast7Days  DatePreset = "last7days"
	PresetLast30Days DatePreset = "last30days"
	PresetMTD        DatePreset = "mtd"
	PresetYTD        DatePreset = "ytd"
	PresetCustom     DatePreset = "custom"
)

// DefaultPreset is used whenever the requested preset is unknown.
const DefaultPreset = PresetToday

// AllPresets lists the presets in the order the date selector shows them.
var AllPresets = []DatePreset{
	PresetToday,
	PresetYesterday,
	PresetLast7Days,
	PresetLast30Days,
	PresetMTD,
	PresetYTD,
	PresetCustom,
}

func (p DatePreset) IsValid() bool {
	for _, preset := range AllPresets {
		if p == preset {
			return true
		}
	}
	return false
}

// ParseDatePreset normalizes the incoming value and falls back to DefaultPreset.
// The second return reports whether the value was recognized.
func ParseDatePreset(value string) (DatePreset, bool) {
	preset := DatePreset(strings.ToLower(strings.TrimSpace(value)))
	if preset.IsValid() {
		return preset, true
	}
	return DefaultPreset, false
}

// PresetOption describes a preset for UI selectors.
type PresetOption struct {
	Value DatePreset `json:"value"`
	Label string     `json:"label"`
	Days  float64    `json:"days"`
}
