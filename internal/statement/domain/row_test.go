package statement

import "testing"

func TestClassifyRowDatedDataRow(t *testing.T) {
	row := ClassifyRow("01.02.2024 PRIMEIRA PARCELA 1.000,00C")
	if row.Kind != RowData {
		t.Fatalf("expected data row, got %v", row.Kind)
	}
	if row.Date != "01.02.2024" {
		t.Fatalf("expected date 01.02.2024, got %q", row.Date)
	}
	if row.Parcela != "PRIMEIRA PARCELA" {
		t.Fatalf("expected parcela PRIMEIRA PARCELA, got %q", row.Parcela)
	}
	if row.Value != "1.000,00C" {
		t.Fatalf("expected value 1.000,00C, got %q", row.Value)
	}
}

func TestClassifyRowDatelessDataRow(t *testing.T) {
	row := ClassifyRow("SALDO ANTERIOR CONTA 10,00D")
	if row.Kind != RowData {
		t.Fatalf("expected data row, got %v", row.Kind)
	}
	if row.Date != "" {
		t.Fatalf("expected no date, got %q", row.Date)
	}
	if row.Parcela != "SALDO ANTERIOR CONTA" {
		t.Fatalf("expected parcela SALDO ANTERIOR CONTA, got %q", row.Parcela)
	}
	if row.Value != "10,00D" {
		t.Fatalf("expected value 10,00D, got %q", row.Value)
	}
}

func TestClassifyRowSectionHeader(t *testing.T) {
	row := ClassifyRow("RESUMO GERAL")
	if row.Kind != RowSectionHeader {
		t.Fatalf("expected section header, got %v", row.Kind)
	}
	if row.Label != "RESUMO GERAL" {
		t.Fatalf("expected full label, got %q", row.Label)
	}
}

func TestClassifyRowThreeTokensNoMarker(t *testing.T) {
	row := ClassifyRow("TOTAL DO PERIODO GERAL")
	if row.Kind != RowSectionHeader {
		t.Fatalf("expected section header without C/D marker, got %v", row.Kind)
	}
}
