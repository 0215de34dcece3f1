package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/seller-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-reports-api/internal/domain"
)

//go:generate mockgen -source=report_snapshot.go -destination=mocks/report_snapshot_mock.go -package=mocks

const (
	reportSnapshotsTable = "report_snapshots"

	uniqueViolation = "23505"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrSnapshotExists = errors.New("report snapshot already exists")

type ReportSnapshotRepository interface {
	Save(ctx context.Context, snapshot *domain.ReportSnapshot) error
	ListByPreset(ctx context.Context, preset domain.DatePreset, limit int) ([]*domain.ReportSnapshot, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type reportSnapshotRepository struct {
	conn postgres.Queryer
	now  func() time.Time
}

func NewReportSnapshotRepository(conn postgres.Queryer) ReportSnapshotRepository {
	return &reportSnapshotRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (r *reportSnapshotRepository) Save(ctx context.Context, snapshot *domain.ReportSnapshot) error {
	if snapshot == nil || snapshot.Report == nil {
		return errors.New("snapshot without report")
	}

	payload, err := json.Marshal(snapshot.Report)
	if err != nil {
		return errors.Wrap(err, "marshalling report payload")
	}

	query, args, err := squirrel.
		Insert(reportSnapshotsTable).
		Columns("id", "preset", "seed", "generated_at", "payload").
		Values(snapshot.ID, string(snapshot.Preset), snapshot.Seed, snapshot.GeneratedAt, payload).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building insert query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&snapshot.CreatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errors.Wrapf(ErrSnapshotExists, "id %s", snapshot.ID)
		}
		return errors.Wrap(err, "inserting report snapshot")
	}

	return nil
}

func (r *reportSnapshotRepository) ListByPreset(ctx context.Context, preset domain.DatePreset, limit int) ([]*domain.ReportSnapshot, error) {
	query, args, err := listSnapshotsQuery(preset, limit)
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying report snapshots")
	}
	defer rows.Close()

	snapshots := make([]*domain.ReportSnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating report snapshots")
	}

	return snapshots, nil
}

func (r *reportSnapshotRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, nil
	}

	cutoff := r.now().AddDate(0, 0, -days)

	query, args, err := deleteSnapshotsQuery(cutoff)
	if err != nil {
		return 0, fmt.Errorf("building delete query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "deleting old report snapshots")
	}

	return result.RowsAffected()
}

func listSnapshotsQuery(preset domain.DatePreset, limit int) (string, []interface{}, error) {
	builder := squirrel.
		Select("id", "preset", "seed", "generated_at", "payload", "created_at").
		From(reportSnapshotsTable).
		OrderBy("generated_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if preset != "" {
		builder = builder.Where(squirrel.Eq{"preset": string(preset)})
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder.ToSql()
}

func deleteSnapshotsQuery(cutoff time.Time) (string, []interface{}, error) {
	return squirrel.
		Delete(reportSnapshotsTable).
		Where(squirrel.Lt{"generated_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func scanSnapshot(rows *sql.Rows) (*domain.ReportSnapshot, error) {
	var (
		snapshot domain.ReportSnapshot
		preset   string
		payload  []byte
	)

	if err := rows.Scan(&snapshot.ID, &preset, &snapshot.Seed, &snapshot.GeneratedAt, &payload, &snapshot.CreatedAt); err != nil {
		return nil, errors.Wrap(err, "scanning report snapshot")
	}
	snapshot.Preset = domain.DatePreset(preset)

	snapshot.Report = &domain.BusinessReport{}
	if err := json.Unmarshal(payload, snapshot.Report); err != nil {
		return nil, errors.Wrapf(err, "decoding payload of snapshot %s", snapshot.ID)
	}

	return &snapshot, nil
}
