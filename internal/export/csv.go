// Package export writes stored feedback as CSV.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/feedback-collector/feedback-collector/internal/db/models"
)

const (
	// FileName is the suggested download name.
	FileName = "feedback_export.csv"
	// ContentType of the export.
	ContentType = "text/csv; charset=utf-8"
)

// Header is the first row of every export.
var Header = []string{"id", "name", "email", "rating", "comments", "date_submitted"} //nolint:gochecknoglobals

var crlf = []byte("\r\n") //nolint:gochecknoglobals

// WriteCSV writes the header and one row per entry, in the given order.
// Fields are quoted as needed (RFC 4180) and records end with CRLF.
// Carriage returns and newlines inside a field are written unchanged.
func WriteCSV(w io.Writer, entries []models.Feedback) error {
	rw := newRecordWriter(w)

	if err := rw.write(Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, e := range entries {
		row := []string{
			strconv.FormatUint(e.ID, 10),
			e.Name,
			e.Email,
			strconv.Itoa(e.Rating),
			e.Comments,
			e.DateSubmitted,
		}

		if err := rw.write(row); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", e.ID, err)
		}
	}

	return nil
}

// recordWriter encodes one record at a time with a LF writer and swaps the
// record terminator for CRLF. csv.Writer.UseCRLF would also rewrite the
// line breaks inside quoted fields and drop a lone '\r'.
type recordWriter struct {
	out io.Writer
	buf bytes.Buffer
	cw  *csv.Writer
}

func newRecordWriter(out io.Writer) *recordWriter {
	rw := &recordWriter{out: out}
	rw.cw = csv.NewWriter(&rw.buf)

	return rw
}

func (rw *recordWriter) write(record []string) error {
	rw.buf.Reset()

	if err := rw.cw.Write(record); err != nil {
		return err //nolint:wrapcheck
	}

	rw.cw.Flush()

	if err := rw.cw.Error(); err != nil {
		return err //nolint:wrapcheck
	}

	// csv.Writer ends each record with a single '\n'
	line := bytes.TrimSuffix(rw.buf.Bytes(), []byte("\n"))

	if _, err := rw.out.Write(line); err != nil {
		return err //nolint:wrapcheck
	}

	_, err := rw.out.Write(crlf)

	return err //nolint:wrapcheck
}
