package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-reports-api/internal/domain"
)

func TestListSnapshotsQuery(t *testing.T) {
	tests := []struct {
		name     string
		preset   domain.DatePreset
		limit    int
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "filtered by preset",
			preset:   domain.PresetMTD,
			limit:    20,
			wantSQL:  "SELECT id, preset, seed, generated_at, payload, created_at FROM report_snapshots WHERE preset = $1 ORDER BY generated_at DESC LIMIT 20",
			wantArgs: []interface{}{"mtd"},
		},
		{
			name:    "all presets without limit",
			wantSQL: "SELECT id, preset, seed, generated_at, payload, created_at FROM report_snapshots ORDER BY generated_at DESC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := listSnapshotsQuery(tt.preset, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, len(tt.wantArgs), len(args))
			for i := range tt.wantArgs {
				assert.Equal(t, tt.wantArgs[i], args[i])
			}
		})
	}
}

func TestDeleteSnapshotsQuery(t *testing.T) {
	cutoff := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := deleteSnapshotsQuery(cutoff)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM report_snapshots WHERE generated_at < $1", query)
	require.Len(t, args, 1)
	assert.Equal(t, cutoff, args[0])
}

func TestReportSnapshotRepository_GuardClauses(t *testing.T) {
	repo := NewReportSnapshotRepository(nil)

	err := repo.Save(context.Background(), &domain.ReportSnapshot{ID: "abc"})
	assert.Error(t, err)

	deleted, err := repo.DeleteOlderThan(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
