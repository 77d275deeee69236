package analytics

import "context"

// Service defines the aggregation and export operations over the
// rolling retention window.
type Service interface {
	// Summary scans the retention window and produces per-team or
	// per-employee rollups for the filtered view.
	Summary(ctx context.Context, filter Filter) (Summary, error)

	// ExportCSV renders every session of the full retention window as
	// a UTF-8 CSV table (BOM-prefixed, most recent start first).
	ExportCSV(ctx context.Context) (Export, error)
}
