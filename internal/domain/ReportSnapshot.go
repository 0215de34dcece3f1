package domain

import "time"

// ReportSnapshot is a business report persisted by the snapshot scheduler.
type ReportSnapshot struct {
	ID          string          `json:"id"`
	Preset      DatePreset      `json:"preset"`
	Seed        int64           `json:"seed"`
	GeneratedAt time.Time       `json:"generated_at"`
	Report      *BusinessReport `json:"report"`
	CreatedAt   time.Time       `json:"created_at"`
}
