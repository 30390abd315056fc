package application

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"daf-extratos/internal/catalog"
	"daf-extratos/internal/observability/metrics"
	statement "daf-extratos/internal/statement/domain"
	"daf-extratos/internal/statement/render"
)

const defaultConcurrency = 4

// Archive is one generated ZIP batch.
type Archive struct {
	Name string
	Data []byte
}

// TwelveMonthRequest describes a fixed 12-month batch for one
// municipality.
type TwelveMonthRequest struct {
	Tipo      string `json:"tipo"`
	Decendio  string `json:"decendio"`
	MesInicio string `json:"mes_inicio"`
	MesFim    string `json:"mes_fim"`
	Codigo    int    `json:"codigo"`
	Municipio string `json:"municipio"`
	UF        string `json:"uf"`
}

// BatchService generates statement archives.
type BatchService struct {
	fetcher     Fetcher
	lists       catalog.Lists
	clock       Clock
	logger      *log.Logger
	concurrency int
}

// BatchOption configures a BatchService.
type BatchOption func(*BatchService)

// WithConcurrency bounds the fetch+render fan-out. 1 keeps the batch
// strictly sequential.
func WithConcurrency(n int) BatchOption {
	return func(s *BatchService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewBatchService constructs a batch service.
func NewBatchService(fetcher Fetcher, lists catalog.Lists, clock Clock, logger *log.Logger, opts ...BatchOption) (*BatchService, error) {
	if fetcher == nil {
		return nil, errors.New("application: nil fetcher")
	}
	if clock == nil {
		return nil, errors.New("application: nil clock")
	}
	s := &BatchService{
		fetcher:     fetcher,
		lists:       lists,
		clock:       clock,
		logger:      logger,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

type batchResult struct {
	pdf    []byte
	amount float64
}

// GenerateLote builds the single-period archive: one statement per
// fixed-list municipality that had disbursements, plus the summary
// spreadsheet. Municipalities with an empty upstream response are
// skipped, never an error.
func (s *BatchService) GenerateLote(ctx context.Context, tipo, decendio, dataInicio, dataFim string) (*Archive, error) {
	start := s.clock.Now()
	fund, err := statement.FundByTipo(tipo)
	if err != nil {
		metrics.ObserveBatchGenerate("lote", metrics.ResultError, time.Since(start))
		return nil, err
	}
	mes, ano, err := statement.MonthYearFromDate(dataInicio)
	if err != nil {
		metrics.ObserveBatchGenerate("lote", metrics.ResultError, time.Since(start))
		return nil, err
	}

	municipios := s.lists.ForTipo(fund.Tipo)
	results := make([]*batchResult, len(municipios))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.concurrency)
	for i, m := range municipios {
		i, m := i, m
		group.Go(func() error {
			resp := s.fetcher.Consulta(groupCtx, m.Codigo, fund.Code, dataInicio, dataFim)
			if !resp.HasOccurrences() {
				s.logf("extrato lote %s: %s (%s) sem movimento, pulando", fund.Tipo, m.Municipio, m.UF)
				return nil
			}
			pdf, err := render.StatementPDF(resp, fund.Title)
			if err != nil {
				metrics.IncStatementRender("pdf", metrics.ResultError)
				return fmt.Errorf("render %s: %w", m.Municipio, err)
			}
			metrics.IncStatementRender("pdf", metrics.ResultSuccess)
			results[i] = &batchResult{pdf: pdf, amount: statement.CreditAmount(resp)}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		metrics.ObserveBatchGenerate("lote", metrics.ResultError, time.Since(start))
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := 0
	summary := make([]render.SummaryRow, 0, len(municipios))
	for i, m := range municipios {
		row := render.SummaryRow{Codigo: m.Codigo, Referencia: m.Municipio, UF: m.UF, Coef: m.Coef}
		if results[i] != nil {
			row.Valor = results[i].amount
			name := statementFileName(decendio, mes, ano, m, fund)
			if err := writeEntry(zw, name, results[i].pdf); err != nil {
				metrics.ObserveBatchGenerate("lote", metrics.ResultError, time.Since(start))
				return nil, err
			}
			entries++
		}
		summary = append(summary, row)
	}
	if err := s.writeSummary(zw, fund.Title, fmt.Sprintf("RESUMO_%s_%s.xlsx", mes, ano), summary); err != nil {
		metrics.ObserveBatchGenerate("lote", metrics.ResultError, time.Since(start))
		return nil, err
	}
	if err := zw.Close(); err != nil {
		metrics.ObserveBatchGenerate("lote", metrics.ResultError, time.Since(start))
		return nil, err
	}

	metrics.ObserveBatchGenerate("lote", metrics.ResultSuccess, time.Since(start))
	metrics.AddArchiveEntries("lote", entries)
	name := fmt.Sprintf("EXTRATOS_%s_%s_%s_%s_%s.zip",
		strings.ToUpper(fund.Tipo), mes, ano, decendio, start.Format("2006-01-02_15-04"))
	return &Archive{Name: sanitizeArchiveName(name), Data: buf.Bytes()}, nil
}

// Generate12M builds the 12-month archive for one municipality: one
// statement per month with disbursements. The span is validated to
// exactly 12 calendar months before any upstream call.
func (s *BatchService) Generate12M(ctx context.Context, req TwelveMonthRequest) (*Archive, error) {
	start := s.clock.Now()
	fund, err := statement.FundByTipo(req.Tipo)
	if err != nil {
		metrics.ObserveBatchGenerate("12m", metrics.ResultError, time.Since(start))
		return nil, err
	}
	months, err := statement.TwelveMonths(req.MesInicio, req.MesFim)
	if err != nil {
		metrics.ObserveBatchGenerate("12m", metrics.ResultError, time.Since(start))
		return nil, err
	}

	results := make([]*batchResult, len(months))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.concurrency)
	for i, month := range months {
		i, month := i, month
		group.Go(func() error {
			resp := s.fetcher.Consulta(groupCtx, req.Codigo, fund.Code, month.Start, month.End)
			if !resp.HasOccurrences() {
				s.logf("extrato 12m %s: %s sem movimento, pulando", req.Municipio, month.Label)
				return nil
			}
			pdf, err := render.StatementPDF(resp, fund.Title)
			if err != nil {
				metrics.IncStatementRender("pdf", metrics.ResultError)
				return fmt.Errorf("render %s: %w", month.Label, err)
			}
			metrics.IncStatementRender("pdf", metrics.ResultSuccess)
			results[i] = &batchResult{pdf: pdf, amount: statement.CreditAmount(resp)}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		metrics.ObserveBatchGenerate("12m", metrics.ResultError, time.Since(start))
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := 0
	summary := make([]render.SummaryRow, 0, len(months))
	for i, month := range months {
		row := render.SummaryRow{Referencia: month.Label, UF: req.UF}
		if results[i] != nil {
			row.Valor = results[i].amount
			name := sanitizeEntryName(fmt.Sprintf("%s Decêndio de %s - %s (%s).pdf",
				req.Decendio, month.Label, req.Municipio, req.UF))
			if err := writeEntry(zw, name, results[i].pdf); err != nil {
				metrics.ObserveBatchGenerate("12m", metrics.ResultError, time.Since(start))
				return nil, err
			}
			entries++
		}
		summary = append(summary, row)
	}
	summaryName := fmt.Sprintf("RESUMO_%s_ATE_%s.xlsx", req.MesInicio, req.MesFim)
	if err := s.writeSummary(zw, fund.Title, summaryName, summary); err != nil {
		metrics.ObserveBatchGenerate("12m", metrics.ResultError, time.Since(start))
		return nil, err
	}
	if err := zw.Close(); err != nil {
		metrics.ObserveBatchGenerate("12m", metrics.ResultError, time.Since(start))
		return nil, err
	}

	metrics.ObserveBatchGenerate("12m", metrics.ResultSuccess, time.Since(start))
	metrics.AddArchiveEntries("12m", entries)
	name := fmt.Sprintf("EXTRATO_12M_%s_%s_%s_ATE_%s_%s.zip",
		strings.ToUpper(fund.Tipo), req.Municipio, req.MesInicio, req.MesFim, start.Format("2006-01-02_15-04"))
	return &Archive{Name: sanitizeArchiveName(name), Data: buf.Bytes()}, nil
}

func (s *BatchService) writeSummary(zw *zip.Writer, fundTitle, name string, rows []render.SummaryRow) error {
	data, err := render.SummaryXLSX(fundTitle, rows)
	if err != nil {
		metrics.IncStatementRender("xlsx", metrics.ResultError)
		return err
	}
	metrics.IncStatementRender("xlsx", metrics.ResultSuccess)
	return writeEntry(zw, sanitizeEntryName(name), data)
}

func writeEntry(zw *zip.Writer, name string, data []byte) error {
	entry, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = entry.Write(data)
	return err
}

func statementFileName(decendio, mes, ano string, m catalog.Municipality, fund statement.Fund) string {
	name := fmt.Sprintf("%s Decêndio de %s DE %s - %s (%s)", decendio, mes, ano, m.Municipio, m.UF)
	if fund.Code == statement.FundCodeFPM && m.Coef != "" {
		name += fmt.Sprintf(" (%s Coef.)", m.Coef)
	}
	return sanitizeEntryName(name + ".pdf")
}

// Archive and entry names must be filesystem safe.
func sanitizeEntryName(name string) string {
	return strings.ReplaceAll(name, "/", "-")
}

func sanitizeArchiveName(name string) string {
	return strings.ReplaceAll(sanitizeEntryName(name), " ", "_")
}

func (s *BatchService) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
