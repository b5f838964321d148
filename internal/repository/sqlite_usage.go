package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"usage-data/internal/domain"
)

// SQLiteUsageRepository implements UsageRepository over a device_usage table.
type SQLiteUsageRepository struct {
	db *sql.DB
}

// NewSQLiteUsageRepository creates the repository on an opened connection.
func NewSQLiteUsageRepository(db *sql.DB) *SQLiteUsageRepository {
	return &SQLiteUsageRepository{db: db}
}

var _ UsageRepository = (*SQLiteUsageRepository)(nil)

// created_at is stored as RFC3339 UTC text so that lexicographic ordering
// matches chronological ordering.
const createdAtLayout = time.RFC3339

func (r *SQLiteUsageRepository) CreateRecord(ctx context.Context, deviceName string, value float64) (*domain.UsageRecord, error) {
	createdAt := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO device_usage (device_name, value, created_at) VALUES (?, ?, ?)`,
		deviceName, value, createdAt.Format(createdAtLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting usage record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading assigned id: %w", err)
	}

	return &domain.UsageRecord{
		ID:         id,
		DeviceName: deviceName,
		Value:      value,
		CreatedAt:  createdAt,
	}, nil
}

func (r *SQLiteUsageRepository) ListRecords(ctx context.Context) ([]domain.UsageRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, device_name, value, created_at
		 FROM device_usage
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying usage records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.UsageRecord, 0)
	for rows.Next() {
		rec, err := scanUsageRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (r *SQLiteUsageRepository) GetRecord(ctx context.Context, id int64) (*domain.UsageRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, device_name, value, created_at FROM device_usage WHERE id = ?`, id,
	)
	rec, err := scanUsageRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

func (r *SQLiteUsageRepository) UpdateRecord(ctx context.Context, id int64, deviceName string, value float64) (*domain.UsageRecord, error) {
	// RETURNING keeps the update and the read of the final row in a single
	// statement, so the caller sees the row it actually wrote.
	row := r.db.QueryRowContext(ctx,
		`UPDATE device_usage SET device_name = ?, value = ?
		 WHERE id = ?
		 RETURNING id, device_name, value, created_at`,
		deviceName, value, id,
	)
	rec, err := scanUsageRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

func (r *SQLiteUsageRepository) DeleteRecord(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM device_usage WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting usage record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteUsageRepository) SumByDevice(ctx context.Context) ([]domain.DeviceTotal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT device_name, SUM(value) AS total
		 FROM device_usage
		 GROUP BY device_name
		 ORDER BY total DESC, device_name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying usage totals: %w", err)
	}
	defer rows.Close()

	totals := make([]domain.DeviceTotal, 0)
	for rows.Next() {
		var t domain.DeviceTotal
		if err := rows.Scan(&t.DeviceName, &t.Total); err != nil {
			return nil, fmt.Errorf("scanning usage total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUsageRecord(row rowScanner) (*domain.UsageRecord, error) {
	var rec domain.UsageRecord
	var createdAt string

	if err := row.Scan(&rec.ID, &rec.DeviceName, &rec.Value, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning usage record: %w", err)
	}

	ts, err := time.Parse(createdAtLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	rec.CreatedAt = ts

	return &rec, nil
}
