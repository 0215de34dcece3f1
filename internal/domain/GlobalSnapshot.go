package domain

import "time"

// SnapshotCardRow is a secondary line inside a snapshot card (e.g. "FBM Pending").
type SnapshotCardRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type SnapshotCard struct {
	Label    string            `json:"label"`
	Value    string            `json:"value"`
	Subtitle string            `json:"subtitle"`
	Rows     []SnapshotCardRow `json:"rows,omitempty"`
	Active   bool              `json:"active,omitempty"`
}

// GlobalSnapshot is the overview shown on the seller home page.
type GlobalSnapshot struct {
	Seed        int64          `json:"seed"`
	GeneratedAt time.Time      `json:"generated_at"`
	Cards       []SnapshotCard `json:"cards"`
}
