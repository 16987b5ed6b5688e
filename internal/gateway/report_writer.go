package gateway

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"macenroll/internal/domain"
)

// CSVReportWriter serializes discrepancy rows back to delimited text.
type CSVReportWriter struct{}

// NewCSVReportWriter creates a new writer instance.
func NewCSVReportWriter() *CSVReportWriter {
	return &CSVReportWriter{}
}

// WriteReport renders the rows under the given header order and writes the
// result as UTF-8 text. Writing an empty row set is an ExportError; callers
// check emptiness first so that empty reports produce no file at all. A row
// lacking a header's key renders as an empty field.
func (w *CSVReportWriter) WriteReport(path string, headers []string, rows []map[string]string) error {
	if len(rows) == 0 {
		return &domain.ExportError{Path: path, Err: errors.New("empty report")}
	}

	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	for _, row := range rows {
		fields := make([]string, len(headers))
		for i, h := range headers {
			fields[i] = row[h]
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(fields, ","))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return &domain.ExportError{Path: path, Err: err}
	}
	return nil
}
