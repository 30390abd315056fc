package statement

import "testing"

func TestCreditAmountParsesThousands(t *testing.T) {
	resp := Response{Occurrences: []Occurrence{
		{BenefitName: "RESUMO GERAL"},
		{BenefitName: "30.01.2026 CREDITO BENEF.FUNDOS 1.234,56C"},
	}}
	if got := CreditAmount(resp); got != 1234.56 {
		t.Fatalf("expected 1234.56, got %v", got)
	}
}

func TestCreditAmountSmallValue(t *testing.T) {
	resp := Response{Occurrences: []Occurrence{
		{BenefitName: "CREDITO BENEF. 56,00C"},
	}}
	if got := CreditAmount(resp); got != 56.00 {
		t.Fatalf("expected 56.00, got %v", got)
	}
}

func TestCreditAmountNoMarker(t *testing.T) {
	resp := Response{Occurrences: []Occurrence{
		{BenefitName: "30.01.2026 PRIMEIRA PARCELA 1.234,56C"},
	}}
	if got := CreditAmount(resp); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestCreditAmountEmptyResponse(t *testing.T) {
	if got := CreditAmount(Response{}); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestCreditAmountOnlyFirstMarkerItemConsulted(t *testing.T) {
	resp := Response{Occurrences: []Occurrence{
		{BenefitName: "CREDITO BENEF. SEM VALOR"},
		{BenefitName: "CREDITO BENEF. 99,99C"},
	}}
	if got := CreditAmount(resp); got != 0 {
		t.Fatalf("expected 0 when first marker item has no value, got %v", got)
	}
}

func TestCreditAmountDebitMarkerIgnored(t *testing.T) {
	resp := Response{Occurrences: []Occurrence{
		{BenefitName: "CREDITO BENEF. 1.000,00D"},
	}}
	if got := CreditAmount(resp); got != 0 {
		t.Fatalf("expected 0 for debit marker, got %v", got)
	}
}
