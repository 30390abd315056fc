package bbadapter

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"daf-extratos/internal/observability/metrics"
	statement "daf-extratos/internal/statement/domain"
)

// DefaultTimeout bounds one DAF consulta call.
const DefaultTimeout = 60 * time.Second

// Browser-identity headers the DAF endpoint expects; requests without
// them are rejected upstream.
const (
	headerUserAgent = "Mozilla/5.0"
	headerOrigin    = "https://demonstrativos.apps.bb.com.br"
	headerReferer   = "https://demonstrativos.apps.bb.com.br/"
)

// Client is a minimal DAF demonstrativos REST client.
type Client struct {
	endpoint string
	client   *http.Client
	logger   *log.Logger
}

// NewClient constructs a DAF client. The transport skips TLS
// verification: the upstream certificate chain does not validate
// against default trust stores, and this transport talks to that one
// host only.
func NewClient(endpoint string, timeout time.Duration, logger *log.Logger) (*Client, error) {
	if endpoint == "" {
		return nil, errors.New("bbadapter: empty endpoint")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
		logger: logger,
	}, nil
}

type consultaPayload struct {
	CodigoBeneficiario int    `json:"codigoBeneficiario"`
	CodigoFundo        int    `json:"codigoFundo"`
	DataInicio         string `json:"dataInicio"`
	DataFim            string `json:"dataFim"`
}

// Consulta performs one disbursement query. Any transport failure,
// non-success status or undecodable body yields an empty response:
// upstream trouble is indistinguishable from "no disbursements for this
// period" by design.
func (c *Client) Consulta(ctx context.Context, codigoBeneficiario, codigoFundo int, dataInicio, dataFim string) statement.Response {
	start := time.Now()
	resp, result := c.consulta(ctx, codigoBeneficiario, codigoFundo, dataInicio, dataFim)
	metrics.ObserveUpstream(result, time.Since(start))
	return resp
}

func (c *Client) consulta(ctx context.Context, codigoBeneficiario, codigoFundo int, dataInicio, dataFim string) (statement.Response, string) {
	payload, err := json.Marshal(consultaPayload{
		CodigoBeneficiario: codigoBeneficiario,
		CodigoFundo:        codigoFundo,
		DataInicio:         dataInicio,
		DataFim:            dataFim,
	})
	if err != nil {
		return statement.Response{}, metrics.ResultError
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return statement.Response{}, metrics.ResultError
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", headerUserAgent)
	req.Header.Set("Origin", headerOrigin)
	req.Header.Set("Referer", headerReferer)

	httpResp, err := c.client.Do(req)
	if err != nil {
		c.logf("daf consulta beneficiario=%d fundo=%d: %v", codigoBeneficiario, codigoFundo, err)
		return statement.Response{}, metrics.ResultError
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		c.logf("daf consulta beneficiario=%d fundo=%d: http %d", codigoBeneficiario, codigoFundo, httpResp.StatusCode)
		return statement.Response{}, metrics.ResultEmpty
	}

	var resp statement.Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		c.logf("daf consulta beneficiario=%d fundo=%d: decode: %v", codigoBeneficiario, codigoFundo, err)
		return statement.Response{}, metrics.ResultError
	}
	return resp, metrics.ResultSuccess
}

func (c *Client) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
