package xlsx

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWrite_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Table{
		Sheet:  "Owners",
		Header: []string{"ID", "Name"},
		Rows: [][]any{
			{1, "Ann Lee"},
			{2, "Bruno Díaz"},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Owners")
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"ID", "Name"},
		{"1", "Ann Lee"},
		{"2", "Bruno Díaz"},
	}, rows)
}

func TestServe_SetsAttachmentHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	err := Serve(rec, "pets.xlsx", Table{Sheet: "Pets", Header: []string{"ID"}, Rows: [][]any{{1}}})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="pets.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))
}

func TestServe_FailureLeavesResponseUntouched(t *testing.T) {
	rec := httptest.NewRecorder()
	err := Serve(rec, "pets.xlsx", Table{Sheet: "Bad:Sheet", Header: []string{"ID"}})
	require.Error(t, err)

	assert.Empty(t, rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
	assert.Zero(t, rec.Body.Len())
	assert.False(t, rec.Flushed)

	http.Error(rec, "internal error", http.StatusInternalServerError)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}
