package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"daf-extratos/internal/bbadapter"
	"daf-extratos/internal/catalog"
	"daf-extratos/internal/observability/metrics"
	"daf-extratos/internal/statement/application"
	statementinterfaces "daf-extratos/internal/statement/interfaces"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()
	logger := log.New(os.Stdout, "", log.LstdFlags)

	metrics.Init()

	municipios, err := catalog.LoadFile(cfg.MunicipiosPath)
	if err != nil {
		logger.Fatalf("catalog error: %v", err)
	}
	logger.Printf("catalog loaded: %d municipios", municipios.Len())

	lists, err := catalog.LoadLists(cfg.ListsConfigPath)
	if err != nil {
		logger.Fatalf("lists config error: %v", err)
	}

	dafClient, err := bbadapter.NewClient(cfg.DAFConsultaURL, cfg.DAFTimeout, logger)
	if err != nil {
		logger.Fatalf("daf client error: %v", err)
	}

	consultaService, err := application.NewConsultaService(dafClient)
	if err != nil {
		logger.Fatalf("consulta service error: %v", err)
	}
	batchService, err := application.NewBatchService(dafClient, lists, systemClock{}, logger,
		application.WithConcurrency(cfg.BatchConcurrency))
	if err != nil {
		logger.Fatalf("batch service error: %v", err)
	}

	searchHandler, err := catalog.NewSearchHandler(municipios)
	if err != nil {
		logger.Fatalf("search handler error: %v", err)
	}
	consultaHandler, err := statementinterfaces.NewConsultaHandler(consultaService)
	if err != nil {
		logger.Fatalf("consulta handler error: %v", err)
	}
	extratosHandler, err := statementinterfaces.NewExtratosHandler(batchService, lists)
	if err != nil {
		logger.Fatalf("extratos handler error: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/municipios", searchHandler)
	mux.Handle("/consulta", consultaHandler)
	mux.Handle("/extratos/municipios", extratosHandler)
	mux.Handle("/extratos/gerar", extratosHandler)
	mux.Handle("/extratos-12m/gerar", extratosHandler)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.FrontendDir))))
	mux.HandleFunc("/extratos", servePage(cfg.FrontendDir, "extratos.html"))
	mux.HandleFunc("/extratos-12m", servePage(cfg.FrontendDir, "extratos_12m.html"))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.ServeFile(w, r, filepath.Join(cfg.FrontendDir, "index.html"))
	})
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: loggingMiddleware(corsMiddleware(mux), logger)}
	logger.Printf("http listening on %s", cfg.HTTPAddr)
	logger.Fatal(server.ListenAndServe())
}

type config struct {
	HTTPAddr         string
	DAFConsultaURL   string
	DAFTimeout       time.Duration
	MunicipiosPath   string
	ListsConfigPath  string
	FrontendDir      string
	BatchConcurrency int
}

func loadConfig() config {
	return config{
		HTTPAddr:         getenvDefault("HTTP_ADDR", ":8080"),
		DAFConsultaURL:   getenvDefault("DAF_CONSULTA_URL", "https://demonstrativos.api.daf.bb.com.br/v1/demonstrativo/daf/consulta"),
		DAFTimeout:       getenvDuration("DAF_TIMEOUT", bbadapter.DefaultTimeout),
		MunicipiosPath:   getenvDefault("MUNICIPIOS_PATH", filepath.FromSlash("data/municipios.json")),
		ListsConfigPath:  getenvDefault("EXTRATOS_LISTS_CONFIG", ""),
		FrontendDir:      getenvDefault("FRONTEND_DIR", "web"),
		BatchConcurrency: getenvIntDefault("EXTRATOS_CONCURRENCY", 4),
	}
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvIntDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func servePage(dir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(dir, name))
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(next http.Handler, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		resp := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(resp, r)
		logger.Printf("http %s %s %d %s", r.Method, r.URL.Path, resp.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
