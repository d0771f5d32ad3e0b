package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedback-collector/feedback-collector/internal/db/models"
)

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "id,name,email,rating,comments,date_submitted\r\n", buf.String())
}

func TestWriteCSV(t *testing.T) {
	entries := []models.Feedback{
		{ID: 2, Name: "Zoë", Email: "", Rating: 5, Comments: `He said "hi", then left`, DateSubmitted: "2024-05-01T10:00:01.000000Z"},
		{ID: 1, Name: "Ann", Email: "ann@example.com", Rating: 3, Comments: "line one\nline two", DateSubmitted: "2024-05-01T10:00:00.000000Z"},
		{ID: 3, Name: "Cid", Rating: 2, Comments: "a\rb", DateSubmitted: "2024-05-01T09:59:59.000000Z"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, entries))

	assert.Contains(t, buf.String(), `"He said ""hi"", then left"`)

	assert.Contains(t, buf.String(), "\"line one\nline two\"", "newline inside a field is kept as is")
	assert.Contains(t, buf.String(), "\"a\rb\"", "carriage return inside a field is kept")
	assert.True(t, strings.HasSuffix(buf.String(), "2024-05-01T09:59:59.000000Z\r\n"))
	assert.Equal(t, 4, strings.Count(buf.String(), "\r\n"), "every record ends with CRLF")

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"2", "Zoë", "", "5", `He said "hi", then left`, "2024-05-01T10:00:01.000000Z"}, rows[1])
	assert.Equal(t, []string{"1", "Ann", "ann@example.com", "3", "line one\nline two", "2024-05-01T10:00:00.000000Z"}, rows[2])
	assert.Equal(t, []string{"3", "Cid", "", "2", "a\rb", "2024-05-01T09:59:59.000000Z"}, rows[3])
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestWriteCSVWriterError(t *testing.T) {
	err := WriteCSV(failingWriter{}, []models.Feedback{{ID: 1, Name: "a", Rating: 1}})
	require.ErrorIs(t, err, errDiskFull)
}
