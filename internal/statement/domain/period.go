package statement

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var monthNamesPT = [12]string{
	"JANEIRO", "FEVEREIRO", "MARÇO", "ABRIL", "MAIO", "JUNHO",
	"JULHO", "AGOSTO", "SETEMBRO", "OUTUBRO", "NOVEMBRO", "DEZEMBRO",
}

// MonthRange is one calendar month of a batch: its statement label and
// the first/last day in the dd.mm.yyyy format the DAF API expects.
type MonthRange struct {
	Label string
	Start string
	End   string
}

// MonthYearFromDate extracts the Portuguese month name and the year from
// a dd.mm.yyyy date string.
func MonthYearFromDate(date string) (string, string, error) {
	parts := strings.Split(date, ".")
	if len(parts) != 3 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidMonth, date)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidMonth, date)
	}
	return monthNamesPT[month-1], parts[2], nil
}

// MonthsBetween expands an inclusive YYYY-MM range into per-month query
// ranges, honoring month lengths and leap years.
func MonthsBetween(monthStart, monthEnd string) ([]MonthRange, error) {
	startYear, startMonth, err := parseYearMonth(monthStart)
	if err != nil {
		return nil, err
	}
	endYear, endMonth, err := parseYearMonth(monthEnd)
	if err != nil {
		return nil, err
	}

	var ranges []MonthRange
	year, month := startYear, startMonth
	for year < endYear || (year == endYear && month <= endMonth) {
		first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1)
		ranges = append(ranges, MonthRange{
			Label: fmt.Sprintf("%s DE %d", monthNamesPT[month-1], year),
			Start: first.Format("02.01.2006"),
			End:   last.Format("02.01.2006"),
		})
		if month == 12 {
			month = 1
			year++
		} else {
			month++
		}
	}
	return ranges, nil
}

// TwelveMonths is MonthsBetween restricted to spans of exactly 12
// calendar months; any other span is a MonthSpanError carrying the
// actual count.
func TwelveMonths(monthStart, monthEnd string) ([]MonthRange, error) {
	ranges, err := MonthsBetween(monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	if len(ranges) != 12 {
		return nil, &MonthSpanError{Months: len(ranges)}
	}
	return ranges, nil
}

func parseYearMonth(value string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(value), "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMonth, value)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMonth, value)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMonth, value)
	}
	return year, month, nil
}
