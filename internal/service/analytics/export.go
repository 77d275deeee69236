package analytics

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"

	"github.com/breakdesk/breakdesk-backend-go/internal/domain/analytics"
	"github.com/breakdesk/breakdesk-backend-go/internal/domain/breaktype"
)

// Spreadsheet apps (Excel in particular) need the BOM to pick up
// UTF-8 cyrillic headers.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var exportHeader = []string{
	"Дата",
	"Команда",
	"Сотрудник",
	"Тип перерыва",
	"Время начала",
	"Время окончания",
	"Длительность (мин)",
}

// ExportCSV implements analytics.Service. Every session of the full
// retention window, one row each, most recent start first.
func (s *AnalyticsServiceImpl) ExportCSV(ctx context.Context) (analytics.Export, error) {
	all, _, err := s.collectWindow(ctx)
	if err != nil {
		return analytics.Export{}, err
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return analytics.Export{}, fmt.Errorf("failed to write export header: %w", err)
	}

	for _, bs := range all {
		endTime := ""
		if bs.EndTime != nil {
			endTime = bs.EndTime.Format("15:04")
		}

		row := []string{
			bs.StartTime.Format("02.01.2006"),
			bs.TeamName,
			bs.EmployeeName,
			breaktype.Label(bs.Type),
			bs.StartTime.Format("15:04"),
			endTime,
			strconv.Itoa(int(math.Round(float64(bs.Duration) / 60))),
		}
		if err := w.Write(row); err != nil {
			return analytics.Export{}, fmt.Errorf("failed to write export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return analytics.Export{}, fmt.Errorf("failed to flush export: %w", err)
	}

	return analytics.Export{
		Filename: fmt.Sprintf("break_report_%s.csv", s.now().Format("2006-01-02")),
		Content:  buf.Bytes(),
	}, nil
}
