package application

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"daf-extratos/internal/observability/metrics"
	statement "daf-extratos/internal/statement/domain"
)

// Fetcher performs one DAF disbursement query. Upstream failure is an
// empty response, never an error.
type Fetcher interface {
	Consulta(ctx context.Context, codigoBeneficiario, codigoFundo int, dataInicio, dataFim string) statement.Response
}

// Clock abstracts time for archive naming.
type Clock interface {
	Now() time.Time
}

// ConsultaRequest is one summary consultation.
type ConsultaRequest struct {
	Codigo     int    `json:"codigo"`
	Nome       string `json:"nome"`
	UF         string `json:"uf"`
	DataInicio string `json:"data_inicio"`
	DataFim    string `json:"data_fim"`
}

// ConsultaResult carries the extracted credit per fund, rounded to two
// decimals.
type ConsultaResult struct {
	Municipio string  `json:"municipio"`
	Periodo   string  `json:"periodo"`
	FPM       float64 `json:"fpm"`
	Royalties float64 `json:"royalties"`
	Todos     float64 `json:"todos"`
}

// ConsultaService answers the three-fund summary consultation.
type ConsultaService struct {
	fetcher Fetcher
}

// NewConsultaService constructs a service.
func NewConsultaService(fetcher Fetcher) (*ConsultaService, error) {
	if fetcher == nil {
		return nil, errors.New("application: nil fetcher")
	}
	return &ConsultaService{fetcher: fetcher}, nil
}

// Summarize queries FPM, royalties and the all-funds aggregate for one
// municipality and period.
func (s *ConsultaService) Summarize(ctx context.Context, req ConsultaRequest) ConsultaResult {
	start := time.Now()
	defer func() {
		metrics.ObserveConsulta(metrics.ResultSuccess, time.Since(start))
	}()

	fpm := statement.CreditAmount(s.fetcher.Consulta(ctx, req.Codigo, statement.FundCodeFPM, req.DataInicio, req.DataFim))
	royalties := statement.CreditAmount(s.fetcher.Consulta(ctx, req.Codigo, statement.FundCodeRoyalties, req.DataInicio, req.DataFim))
	todos := statement.CreditAmount(s.fetcher.Consulta(ctx, req.Codigo, statement.FundCodeAll, req.DataInicio, req.DataFim))

	return ConsultaResult{
		Municipio: fmt.Sprintf("%s - %s", req.Nome, req.UF),
		Periodo:   fmt.Sprintf("%s até %s", req.DataInicio, req.DataFim),
		FPM:       round2(fpm),
		Royalties: round2(royalties),
		Todos:     round2(todos),
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
