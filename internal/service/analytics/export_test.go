package analytics

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService_ExportCSV(t *testing.T) {
	ctx := context.Background()
	svc, sessionRepo := newAnalyticsTestEnv(t)

	seedSession(t, ctx, sessionRepo, "sanan", "tea", time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC), 90)
	seedSession(t, ctx, sessionRepo, "murad", "lunch", time.Date(2026, 8, 27, 13, 0, 0, 0, time.UTC), 610)
	seedSession(t, ctx, sessionRepo, "islam", "smoke", time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC), 3600)

	export, err := svc.ExportCSV(ctx)
	require.NoError(t, err)

	assert.Equal(t, "break_report_2026-08-28.csv", export.Filename)

	// BOM prefix so spreadsheet apps decode the cyrillic headers.
	require.True(t, bytes.HasPrefix(export.Content, []byte{0xEF, 0xBB, 0xBF}))

	reader := csv.NewReader(bytes.NewReader(export.Content[3:]))
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{
		"Дата", "Команда", "Сотрудник", "Тип перерыва",
		"Время начала", "Время окончания", "Длительность (мин)",
	}, rows[0])

	// Most recent start first.
	assert.Equal(t, []string{"28.08.2026", "Operation Support", "Islam", "Перекур", "15:30", "16:30", "60"}, rows[1])
	assert.Equal(t, []string{"28.08.2026", "Technical Support", "Sanan", "Чай", "10:00", "10:01", "2"}, rows[2])
	assert.Equal(t, []string{"27.08.2026", "Technical Support", "Murad", "Обед", "13:00", "13:10", "10"}, rows[3])
}

func TestAnalyticsService_ExportCSV_EmptyWindow(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAnalyticsTestEnv(t)

	export, err := svc.ExportCSV(ctx)
	require.NoError(t, err)

	reader := csv.NewReader(bytes.NewReader(export.Content[3:]))
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}
