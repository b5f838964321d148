package httpapi

import (
	"bytes"
	"fmt"
	"net/http"

	"usage-data/internal/domain"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var reportExportHeader = []string{
	"Device Name",
	"Total Usage",
}

// ExportReport serves the current aggregate report as an xlsx download.
func (h *UsageHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	totals, err := h.usage.Report(r.Context())
	if err != nil {
		h.writeServiceError(w, "ExportReport", err)
		return
	}

	fileBytes, err := generateReportWorkbook(totals)
	if err != nil {
		h.logger.Error("ExportReport workbook generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "storage", "failed to generate report export")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=usage-report.xlsx")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(fileBytes)
}

// generateReportWorkbook renders the aggregate rows into a single-sheet
// workbook, report order preserved.
func generateReportWorkbook(totals []domain.DeviceTotal) ([]byte, error) {
	f := excelize.NewFile()
	// Don't defer Close() before WriteTo: it needs the file open.

	sheetName := "Usage Report"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range reportExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 28)
	_ = f.SetColWidth(sheetName, "B", "B", 16)

	for i, row := range totals {
		nameCell, _ := excelize.CoordinatesToCellName(1, i+2)
		totalCell, _ := excelize.CoordinatesToCellName(2, i+2)
		if err := f.SetCellValue(sheetName, nameCell, row.DeviceName); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set cell %s: %w", nameCell, err)
		}
		if err := f.SetCellValue(sheetName, totalCell, row.Total); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set cell %s: %w", totalCell, err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	f.Close()

	return buf.Bytes(), nil
}
