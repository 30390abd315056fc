package bbadapter

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

func newTestLogger() *log.Logger {
	return log.New(os.Stderr, "", 0)
}

func TestConsultaPayloadAndHeaders(t *testing.T) {
	var gotPayload map[string]any
	var gotHeaders http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"quantidadeOcorrencia": [{"nomeBeneficio": "CREDITO BENEF. 56,00C"}]}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, time.Second, newTestLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	resp := client.Consulta(context.Background(), 4636, 4, "01.01.2026", "31.01.2026")
	if !resp.HasOccurrences() {
		t.Fatalf("expected occurrences")
	}
	if resp.Occurrences[0].BenefitName != "CREDITO BENEF. 56,00C" {
		t.Fatalf("unexpected occurrence: %q", resp.Occurrences[0].BenefitName)
	}

	if gotPayload["codigoBeneficiario"] != float64(4636) {
		t.Fatalf("unexpected codigoBeneficiario: %v", gotPayload["codigoBeneficiario"])
	}
	if gotPayload["codigoFundo"] != float64(4) {
		t.Fatalf("unexpected codigoFundo: %v", gotPayload["codigoFundo"])
	}
	if gotPayload["dataInicio"] != "01.01.2026" || gotPayload["dataFim"] != "31.01.2026" {
		t.Fatalf("unexpected dates: %v", gotPayload)
	}
	if gotHeaders.Get("User-Agent") != "Mozilla/5.0" {
		t.Fatalf("unexpected user agent: %q", gotHeaders.Get("User-Agent"))
	}
	if gotHeaders.Get("Origin") == "" || gotHeaders.Get("Referer") == "" {
		t.Fatalf("expected identity headers, got %v", gotHeaders)
	}
	if gotHeaders.Get("Content-Type") != "application/json" {
		t.Fatalf("unexpected content type: %q", gotHeaders.Get("Content-Type"))
	}
}

func TestConsultaNonSuccessIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, time.Second, newTestLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if resp := client.Consulta(context.Background(), 1, 0, "01.01.2026", "31.01.2026"); resp.HasOccurrences() {
		t.Fatalf("expected empty response on upstream failure")
	}
}

func TestConsultaTransportFailureIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := NewClient(server.URL, time.Second, newTestLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if resp := client.Consulta(context.Background(), 1, 0, "01.01.2026", "31.01.2026"); resp.HasOccurrences() {
		t.Fatalf("expected empty response when upstream is unreachable")
	}
}

func TestConsultaMalformedBodyIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, time.Second, newTestLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if resp := client.Consulta(context.Background(), 1, 0, "01.01.2026", "31.01.2026"); resp.HasOccurrences() {
		t.Fatalf("expected empty response for malformed body")
	}
}

func TestNewClientEmptyEndpoint(t *testing.T) {
	if _, err := NewClient("", time.Second, newTestLogger()); err == nil {
		t.Fatalf("expected error for empty endpoint")
	}
}
