package domain

import "context"

// ReportSink accepts tabular rows (header first) and returns an opaque
// reference to the written artifact. The core does not care about the file
// format behind it.
type ReportSink interface {
	Write(ctx context.Context, name string, rows [][]string) (string, error)
}
