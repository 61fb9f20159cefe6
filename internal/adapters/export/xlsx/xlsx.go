// Package xlsx exporta listados (owners, pets) a una planilla de una hoja.
package xlsx

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Table es una hoja: encabezado + filas en el mismo orden de columnas.
type Table struct {
	Sheet  string
	Header []string
	Rows   [][]any
}

// Write escribe la tabla como .xlsx en w.
func Write(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := t.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("xlsx: rename sheet: %w", err)
	}

	header := make([]any, 0, len(t.Header))
	for _, h := range t.Header {
		header = append(header, h)
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: write: %w", err)
	}
	return nil
}

// Serve responde la tabla como adjunto descargable. La planilla se arma
// completa antes de tocar los headers: si falla, w queda intacto y el
// caller puede responder el error.
func Serve(w http.ResponseWriter, filename string, t Table) error {
	var buf bytes.Buffer
	if err := Write(&buf, t); err != nil {
		return err
	}

	w.Header().Set("Content-Type", ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, err := buf.WriteTo(w)
	return err
}

func setRow(f *excelize.File, sheet string, n int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return fmt.Errorf("xlsx: cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("xlsx: row %d: %w", n, err)
	}
	return nil
}
