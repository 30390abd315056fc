package statement

import "strings"

// RowKind distinguishes tabular value rows from free-form section headers.
type RowKind int

const (
	// RowSectionHeader spans the whole row in bold.
	RowSectionHeader RowKind = iota
	// RowData splits into date, parcela description and value columns.
	RowData
)

// Row is one classified statement line.
type Row struct {
	Kind    RowKind
	Label   string
	Date    string
	Parcela string
	Value   string
}

// ClassifyRow interprets a trimmed occurrence label. A label with at
// least three whitespace-separated tokens whose last token ends in the
// credit/debit marker (C or D) is a data row: the last token is the
// value, and the first token is a date when it contains exactly two "."
// characters. Anything else is a section header.
func ClassifyRow(label string) Row {
	parts := strings.Fields(label)
	if len(parts) < 3 || !hasCreditDebitMarker(parts[len(parts)-1]) {
		return Row{Kind: RowSectionHeader, Label: label}
	}
	row := Row{Kind: RowData, Label: label, Value: parts[len(parts)-1]}
	if strings.Count(parts[0], ".") == 2 {
		row.Date = parts[0]
		row.Parcela = strings.Join(parts[1:len(parts)-1], " ")
	} else {
		row.Parcela = strings.Join(parts[:len(parts)-1], " ")
	}
	return row
}

func hasCreditDebitMarker(token string) bool {
	last := token[len(token)-1]
	return last == 'C' || last == 'D'
}
