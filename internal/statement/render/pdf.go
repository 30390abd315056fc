package render

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"

	statement "daf-extratos/internal/statement/domain"
)

// A4 geometry in millimeters.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	leftMargin   = 20.0
	topMargin    = 20.0
	bottomMargin = 20.0

	rowHeight    = 6.0
	dateColWidth = 30.0
	valueWidth   = 35.0
)

// The DAF response opens with five summary items that are not statement
// rows. Fixed offset tied to the current upstream format.
const skippedOccurrences = 5

const fallbackBeneficiary = "Beneficiário não identificado"

// Alternating row fills: whitesmoke and lightgrey.
var rowFills = [2][3]int{{245, 245, 245}, {211, 211, 211}}

// StatementPDF renders a paginated statement for one DAF response.
// Continuation pages repeat neither the header block nor the column
// headers; that matches the layout this replaces.
func StatementPDF(resp statement.Response, fundTitle string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	usableWidth := pageWidth - 2*leftMargin
	y := topMargin

	pdf.SetFont("Arial", "B", 12)
	writeCell(pdf, leftMargin, y, usableWidth, "L", tr("Beneficiário: "+beneficiaryName(resp)))
	y += 12
	writeCell(pdf, leftMargin, y, usableWidth, "L", tr(fundTitle))
	y += 10

	pdf.SetFont("Arial", "B", 10)
	writeCell(pdf, leftMargin, y, dateColWidth, "L", "DATA")
	writeCell(pdf, leftMargin+dateColWidth, y, usableWidth-dateColWidth-valueWidth, "L", "PARCELA")
	writeCell(pdf, pageWidth-leftMargin-valueWidth, y, valueWidth, "R", "VALOR DISTRIBUIDO")
	y += rowHeight
	pdf.SetFont("Arial", "", 10)

	items := resp.Occurrences
	if len(items) > skippedOccurrences {
		items = items[skippedOccurrences:]
	} else {
		items = nil
	}

	rowIndex := 0
	for _, item := range items {
		label := strings.TrimSpace(item.BenefitName)
		if label == "" {
			continue
		}

		if y+rowHeight > pageHeight-bottomMargin {
			pdf.AddPage()
			y = topMargin
			pdf.SetFont("Arial", "", 10)
		}

		fill := rowFills[rowIndex%2]
		pdf.SetFillColor(fill[0], fill[1], fill[2])
		pdf.Rect(leftMargin, y, usableWidth, rowHeight, "F")

		row := statement.ClassifyRow(label)
		if row.Kind == statement.RowData {
			writeCell(pdf, leftMargin, y, dateColWidth, "L", tr(row.Date))
			writeCell(pdf, leftMargin+dateColWidth, y, usableWidth-dateColWidth-valueWidth, "L", tr(row.Parcela))
			writeCell(pdf, pageWidth-leftMargin-valueWidth, y, valueWidth, "R", tr(row.Value))
		} else {
			pdf.SetFont("Arial", "B", 10)
			writeCell(pdf, leftMargin, y, usableWidth, "L", tr(row.Label))
			pdf.SetFont("Arial", "", 10)
		}

		y += rowHeight
		rowIndex++
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func beneficiaryName(resp statement.Response) string {
	if len(resp.Occurrences) == 0 {
		return fallbackBeneficiary
	}
	name := strings.TrimSpace(resp.Occurrences[0].BenefitName)
	if name == "" {
		return fallbackBeneficiary
	}
	return name
}

func writeCell(pdf *gofpdf.Fpdf, x, y, width float64, align, text string) {
	pdf.SetXY(x, y)
	pdf.CellFormat(width, rowHeight, text, "", 0, align, false, 0, "")
}
