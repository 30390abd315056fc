package statement

import (
	"errors"
	"strings"
	"testing"
)

func TestMonthYearFromDate(t *testing.T) {
	mes, ano, err := MonthYearFromDate("10.03.2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mes != "MARÇO" || ano != "2026" {
		t.Fatalf("expected MARÇO/2026, got %s/%s", mes, ano)
	}
}

func TestMonthYearFromDateMalformed(t *testing.T) {
	if _, _, err := MonthYearFromDate("2026-03-10"); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("expected ErrInvalidMonth, got %v", err)
	}
}

func TestTwelveMonthsAccepted(t *testing.T) {
	ranges, err := TwelveMonths("2024-01", "2024-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranges) != 12 {
		t.Fatalf("expected 12 months, got %d", len(ranges))
	}
	if ranges[0].Label != "JANEIRO DE 2024" {
		t.Fatalf("expected JANEIRO DE 2024, got %q", ranges[0].Label)
	}
	if ranges[0].Start != "01.01.2024" || ranges[0].End != "31.01.2024" {
		t.Fatalf("unexpected january range: %s..%s", ranges[0].Start, ranges[0].End)
	}
	if ranges[1].End != "29.02.2024" {
		t.Fatalf("expected leap-year february end 29.02.2024, got %s", ranges[1].End)
	}
	if ranges[11].Start != "01.12.2024" || ranges[11].End != "31.12.2024" {
		t.Fatalf("unexpected december range: %s..%s", ranges[11].Start, ranges[11].End)
	}
}

func TestTwelveMonthsRejectedWithCount(t *testing.T) {
	_, err := TwelveMonths("2024-01", "2025-02")
	var spanErr *MonthSpanError
	if !errors.As(err, &spanErr) {
		t.Fatalf("expected MonthSpanError, got %v", err)
	}
	if spanErr.Months != 14 {
		t.Fatalf("expected 14 months in error, got %d", spanErr.Months)
	}
	if !strings.Contains(err.Error(), "14") {
		t.Fatalf("expected count in message, got %q", err.Error())
	}
}

func TestMonthsBetweenCrossesYear(t *testing.T) {
	ranges, err := MonthsBetween("2024-11", "2025-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranges) != 4 {
		t.Fatalf("expected 4 months, got %d", len(ranges))
	}
	if ranges[2].Label != "JANEIRO DE 2025" {
		t.Fatalf("expected JANEIRO DE 2025, got %q", ranges[2].Label)
	}
	if ranges[3].End != "28.02.2025" {
		t.Fatalf("expected 28.02.2025, got %s", ranges[3].End)
	}
}

func TestMonthsBetweenMalformed(t *testing.T) {
	if _, err := MonthsBetween("2024/01", "2024-12"); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("expected ErrInvalidMonth, got %v", err)
	}
}

func TestFundByTipo(t *testing.T) {
	fund, err := FundByTipo(" FPM ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fund.Code != FundCodeFPM {
		t.Fatalf("expected code 4, got %d", fund.Code)
	}
	if _, err := FundByTipo("icms"); !errors.Is(err, ErrInvalidFundType) {
		t.Fatalf("expected ErrInvalidFundType, got %v", err)
	}
}
