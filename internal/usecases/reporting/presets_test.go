package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/seller-reports-api/internal/domain"
)

func TestDaysForPreset(t *testing.T) {
	tests := []struct {
		preset domain.DatePreset
		now    time.Time
		want   float64
	}{
		{preset: domain.PresetToday, now: fixedNow, want: 0.5},
		{preset: domain.PresetYesterday, now: fixedNow, want: 1},
		{preset: domain.PresetLast7Days, now: fixedNow, want: 7},
		{preset: domain.PresetLast30Days, now: fixedNow, want: 30},
		{preset: domain.PresetMTD, now: fixedNow, want: 15},
		{preset: domain.PresetYTD, now: fixedNow, want: 74},
		{preset: domain.PresetYTD, now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), want: 1},
		{preset: domain.PresetYTD, now: time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC), want: 366},
		{preset: domain.PresetMTD, now: time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC), want: 1},
		{preset: domain.PresetCustom, now: fixedNow, want: 1},
		{preset: domain.DatePreset("quarter"), now: fixedNow, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset)+"_"+tt.now.Format(time.DateOnly), func(t *testing.T) {
			assert.InDelta(t, tt.want, DaysForPreset(tt.preset, tt.now), 1e-9)
		})
	}
}

func TestPresetLabel(t *testing.T) {
	tests := []struct {
		preset domain.DatePreset
		want   string
	}{
		{preset: domain.PresetToday, want: "Today - 3/15/2026"},
		{preset: domain.PresetYesterday, want: "Yesterday - 3/14/2026"},
		{preset: domain.PresetLast7Days, want: "Last 7 days"},
		{preset: domain.PresetLast30Days, want: "Last 30 days"},
		{preset: domain.PresetMTD, want: "Month to date - 3/15/2026"},
		{preset: domain.PresetYTD, want: "Year to date - 3/15/2026"},
		{preset: domain.PresetCustom, want: "Custom"},
		{preset: domain.DatePreset(""), want: "Today - 3/15/2026"},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			assert.Equal(t, tt.want, PresetLabel(tt.preset, fixedNow))
		})
	}
}

func TestCurrentLabel(t *testing.T) {
	assert.Equal(t, "Today so far", CurrentLabel(domain.PresetToday))
	assert.Equal(t, "This week so far", CurrentLabel(domain.PresetLast7Days))
	assert.Equal(t, "Current period", CurrentLabel(domain.PresetCustom))
}

func TestPresetOptions(t *testing.T) {
	options := PresetOptions(fixedNow)

	assert.Len(t, options, len(domain.AllPresets))
	assert.Equal(t, domain.PresetToday, options[0].Value)
	assert.Equal(t, "Today - 3/15/2026", options[0].Label)
	assert.InDelta(t, 0.5, options[0].Days, 1e-9)
	assert.Equal(t, domain.PresetCustom, options[len(options)-1].Value)
}
