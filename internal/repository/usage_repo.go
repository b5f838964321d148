package repository

import (
	"context"
	"errors"

	"usage-data/internal/domain"
)

// ErrNotFound is returned when no record with the requested id exists.
// Callers distinguish it from storage faults; it is not a systemic error.
var ErrNotFound = errors.New("usage record not found")

// UsageRepository owns durable CRUD over device usage records and is the
// sole authority for id assignment (sequential, never reused).
type UsageRepository interface {
	// CreateRecord persists a new record and returns it with the assigned id
	// and creation timestamp.
	CreateRecord(ctx context.Context, deviceName string, value float64) (*domain.UsageRecord, error)

	// ListRecords returns all records, newest first (created_at DESC, id DESC).
	ListRecords(ctx context.Context) ([]domain.UsageRecord, error)

	// GetRecord returns the record with the given id, or ErrNotFound.
	GetRecord(ctx context.Context, id int64) (*domain.UsageRecord, error)

	// UpdateRecord replaces device_name and value on an existing record.
	// id and created_at are never changed. Returns ErrNotFound if the id
	// does not exist; no row is created.
	UpdateRecord(ctx context.Context, id int64, deviceName string, value float64) (*domain.UsageRecord, error)

	// DeleteRecord removes the record permanently, or returns ErrNotFound.
	DeleteRecord(ctx context.Context, id int64) error

	// SumByDevice groups current records by device_name and sums value per
	// group, ordered by total DESC with device_name ASC as tie-break.
	SumByDevice(ctx context.Context) ([]domain.DeviceTotal, error)
}
