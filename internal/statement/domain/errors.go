package statement

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFundType is returned for an unrecognized fund type string.
	ErrInvalidFundType = errors.New("statement: tipo de fundo inválido")
	// ErrInvalidMonth is returned when a YYYY-MM month reference cannot be parsed.
	ErrInvalidMonth = errors.New("statement: mês inválido")
)

// MonthSpanError is returned when a 12-month batch covers a different
// number of calendar months.
type MonthSpanError struct {
	Months int
}

func (e *MonthSpanError) Error() string {
	return fmt.Sprintf("o período deve ter exatamente 12 meses. Você selecionou %d mês(es)", e.Months)
}
