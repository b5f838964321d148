package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"usage-data/internal/repository"
	"usage-data/internal/service"

	"go.uber.org/zap"
)

// UsageHandler serves the device-usage CRUD endpoints and the report.
type UsageHandler struct {
	usage  *service.UsageService
	logger *zap.Logger
}

func NewUsageHandler(usage *service.UsageService, logger *zap.Logger) *UsageHandler {
	return &UsageHandler{
		usage:  usage,
		logger: logger,
	}
}

func (h *UsageHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var in service.UsageInput
	if err := readBodyJSON(r, 1<<20, &in); err != nil {
		writeError(w, http.StatusBadRequest, "validation", "invalid request body")
		return
	}

	rec, err := h.usage.Create(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, "CreateRecord", err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *UsageHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.usage.List(r.Context())
	if err != nil {
		h.writeServiceError(w, "ListRecords", err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *UsageHandler) GetRecord(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseRecordID(w, rawID)
	if !ok {
		return
	}

	rec, err := h.usage.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, "GetRecord", err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *UsageHandler) UpdateRecord(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseRecordID(w, rawID)
	if !ok {
		return
	}

	var in service.UsageInput
	if err := readBodyJSON(r, 1<<20, &in); err != nil {
		writeError(w, http.StatusBadRequest, "validation", "invalid request body")
		return
	}

	rec, err := h.usage.Update(r.Context(), id, in)
	if err != nil {
		h.writeServiceError(w, "UpdateRecord", err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *UsageHandler) DeleteRecord(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseRecordID(w, rawID)
	if !ok {
		return
	}

	if err := h.usage.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, "DeleteRecord", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": id})
}

func (h *UsageHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	totals, err := h.usage.Report(r.Context())
	if err != nil {
		h.writeServiceError(w, "GetReport", err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

// parseRecordID treats a non-integer id segment the same as an unknown id.
func parseRecordID(w http.ResponseWriter, rawID string) (int64, bool) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "not found")
		return 0, false
	}
	return id, true
}

func (h *UsageHandler) writeServiceError(w http.ResponseWriter, op string, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, "validation", verr.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "not found")
	default:
		h.logger.Error(op+" failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "storage", "storage failure")
	}
}
