package render

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SummaryRow is one line of the batch summary spreadsheet: the
// beneficiary (or month) reference and its extracted credit value.
type SummaryRow struct {
	Codigo     int
	Referencia string
	UF         string
	Coef       string
	Valor      float64
}

// SummaryXLSX renders the batch summary spreadsheet bundled into every
// archive.
func SummaryXLSX(fundTitle string, rows []SummaryRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "resumo"
	f.SetSheetName("Sheet1", sheet)

	_ = f.SetCellValue(sheet, "A1", fundTitle)
	_ = f.SetCellValue(sheet, "A3", "CODIGO")
	_ = f.SetCellValue(sheet, "B3", "REFERENCIA")
	_ = f.SetCellValue(sheet, "C3", "UF")
	_ = f.SetCellValue(sheet, "D3", "COEF")
	_ = f.SetCellValue(sheet, "E3", "CREDITO BENEF.")
	for i, row := range rows {
		line := i + 4
		if row.Codigo != 0 {
			_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", line), row.Codigo)
		}
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", line), row.Referencia)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", line), row.UF)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", line), row.Coef)
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", line), row.Valor)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
