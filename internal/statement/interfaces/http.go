package interfaces

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"daf-extratos/internal/catalog"
	"daf-extratos/internal/statement/application"
	statement "daf-extratos/internal/statement/domain"
)

// ConsultaHandler serves the three-fund summary consultation.
type ConsultaHandler struct {
	service *application.ConsultaService
}

// NewConsultaHandler constructs a handler.
func NewConsultaHandler(service *application.ConsultaService) (*ConsultaHandler, error) {
	if service == nil {
		return nil, errors.New("interfaces: nil consulta service")
	}
	return &ConsultaHandler{service: service}, nil
}

// ServeHTTP handles POST /consulta.
func (h *ConsultaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req application.ConsultaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErro(w, http.StatusBadRequest, "json inválido")
		return
	}
	result := h.service.Summarize(r.Context(), req)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

// ExtratosHandler serves the statement batch routes.
type ExtratosHandler struct {
	batch *application.BatchService
	lists catalog.Lists
}

// NewExtratosHandler constructs a handler.
func NewExtratosHandler(batch *application.BatchService, lists catalog.Lists) (*ExtratosHandler, error) {
	if batch == nil {
		return nil, errors.New("interfaces: nil batch service")
	}
	return &ExtratosHandler{batch: batch, lists: lists}, nil
}

// ServeHTTP routes /extratos/municipios, /extratos/gerar and
// /extratos-12m/gerar.
func (h *ExtratosHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/extratos/municipios" && r.Method == http.MethodGet:
		h.handleMunicipios(w, r)
	case r.URL.Path == "/extratos/gerar" && r.Method == http.MethodPost:
		h.handleGerar(w, r)
	case r.URL.Path == "/extratos-12m/gerar" && r.Method == http.MethodPost:
		h.handleGerar12M(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *ExtratosHandler) handleMunicipios(w http.ResponseWriter, r *http.Request) {
	tipo := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("tipo")))
	list := h.lists.ForTipo(tipo)
	if list == nil {
		// unknown tipo is an empty list, not an error
		list = []catalog.Municipality{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

func (h *ExtratosHandler) handleGerar(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tipo       string `json:"tipo"`
		Decendio   string `json:"decendio"`
		DataInicio string `json:"data_inicio"`
		DataFim    string `json:"data_fim"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErro(w, http.StatusBadRequest, "json inválido")
		return
	}
	archive, err := h.batch.GenerateLote(r.Context(), req.Tipo, req.Decendio, req.DataInicio, req.DataFim)
	if err != nil {
		respondBatchError(w, err)
		return
	}
	writeArchive(w, archive)
}

func (h *ExtratosHandler) handleGerar12M(w http.ResponseWriter, r *http.Request) {
	var req application.TwelveMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErro(w, http.StatusBadRequest, "json inválido")
		return
	}
	archive, err := h.batch.Generate12M(r.Context(), req)
	if err != nil {
		respondBatchError(w, err)
		return
	}
	writeArchive(w, archive)
}

func writeArchive(w http.ResponseWriter, archive *application.Archive) {
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archive.Name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive.Data)
}

func respondBatchError(w http.ResponseWriter, err error) {
	var spanErr *statement.MonthSpanError
	switch {
	case errors.Is(err, statement.ErrInvalidFundType):
		respondErro(w, http.StatusUnprocessableEntity, "Tipo inválido")
	case errors.As(err, &spanErr):
		respondErro(w, http.StatusUnprocessableEntity, spanErr.Error())
	case errors.Is(err, statement.ErrInvalidMonth):
		respondErro(w, http.StatusUnprocessableEntity, "Período inválido")
	default:
		respondErro(w, http.StatusInternalServerError, "falha ao gerar extrato")
	}
}

// respondErro keeps the {"erro": ...} payload shape existing clients
// parse, with a real error status code.
func respondErro(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"erro": message})
}
