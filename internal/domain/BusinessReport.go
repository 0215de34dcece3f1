package domain

import "time"

// ReportTable is the formatted comparison table, ready for display.
type ReportTable struct {
	Columns []string         `json:"columns"`
	Rows    []ReportTableRow `json:"rows"`
}

type ReportTableRow struct {
	Label           string   `json:"label"`
	Cells           []string `json:"cells"`
	IsPercentChange bool     `json:"is_percent_change"`
}

// BusinessReport is the sales dashboard payload for one applied view state.
type BusinessReport struct {
	ID                 string             `json:"id"`
	Preset             DatePreset         `json:"preset"`
	PresetLabel        string             `json:"preset_label"`
	Days               float64            `json:"days"`
	FulfillmentChannel FulfillmentChannel `json:"fulfillment_channel"`
	ViewMode           ViewMode           `json:"view_mode"`
	Seed               int64              `json:"seed"`
	GeneratedAt        time.Time          `json:"generated_at"`
	Current            SalesMetrics       `json:"current"`
	Rows               []ComparisonRow    `json:"rows"`
	Table              ReportTable        `json:"table"`
	Insight            string             `json:"insight"`
}

// ReportRequest is what a caller asks the reporting service for. A nil Seed
// draws a fresh one; a nil AsOf uses the current time.
type ReportRequest struct {
	View ViewState
	Seed *int64
	AsOf *time.Time
}
