package service

import (
	"context"
	"encoding/json"

	"usage-data/internal/domain"
	"usage-data/internal/repository"

	"go.uber.org/zap"
)

// ValidationError reports a request body that failed the validation gate.
// No mutation happens when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UsageInput is the client-supplied portion of a usage record. Pointers
// distinguish absent fields from zero values; Value decodes via json.Number
// so non-numeric payloads are rejected instead of coerced.
type UsageInput struct {
	DeviceName *string      `json:"device_name"`
	Value      *json.Number `json:"value"`
}

// UsageService validates client input and orchestrates the record store and
// the aggregation query.
type UsageService struct {
	repo   repository.UsageRepository
	logger *zap.Logger
}

func NewUsageService(repo repository.UsageRepository, logger *zap.Logger) *UsageService {
	return &UsageService{repo: repo, logger: logger}
}

// validate enforces the creation/update preconditions: device_name non-empty
// and value present and numeric-coercible.
func (s *UsageService) validate(in UsageInput) (string, float64, error) {
	if in.DeviceName == nil || *in.DeviceName == "" || in.Value == nil {
		return "", 0, &ValidationError{Message: "device_name and value required"}
	}
	value, err := in.Value.Float64()
	if err != nil {
		return "", 0, &ValidationError{Message: "value must be numeric"}
	}
	return *in.DeviceName, value, nil
}

func (s *UsageService) Create(ctx context.Context, in UsageInput) (*domain.UsageRecord, error) {
	deviceName, value, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	rec, err := s.repo.CreateRecord(ctx, deviceName, value)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("usage record created",
		zap.Int64("id", rec.ID),
		zap.String("device_name", rec.DeviceName),
	)
	return rec, nil
}

func (s *UsageService) List(ctx context.Context) ([]domain.UsageRecord, error) {
	return s.repo.ListRecords(ctx)
}

func (s *UsageService) Get(ctx context.Context, id int64) (*domain.UsageRecord, error) {
	return s.repo.GetRecord(ctx, id)
}

// Update replaces both mutable fields. Both must be supplied even if
// unchanged; a missing id is not-found, never an insert.
func (s *UsageService) Update(ctx context.Context, id int64, in UsageInput) (*domain.UsageRecord, error) {
	deviceName, value, err := s.validate(in)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateRecord(ctx, id, deviceName, value)
}

func (s *UsageService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteRecord(ctx, id); err != nil {
		return err
	}
	s.logger.Debug("usage record deleted", zap.Int64("id", id))
	return nil
}

// Report computes per-device totals over the store's current contents.
// It is recomputed on every call; there is no materialized view.
func (s *UsageService) Report(ctx context.Context) ([]domain.DeviceTotal, error) {
	return s.repo.SumByDevice(ctx)
}
