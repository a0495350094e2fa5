package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/yourorg/invoiceapp/internal/catalog"
	"github.com/yourorg/invoiceapp/internal/invoice"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	invCfg := invoice.LoadConfig()
	catCfg := catalog.LoadConfig()

	counter := invoice.NewFileCounterStore(invCfg.CounterPath, invCfg.CounterSeed)

	var archive invoice.Storage
	if invCfg.ArchiveDir != "" {
		dir, err := invoice.NewDirStorage(invCfg.ArchiveDir)
		if err != nil {
			logger.Error("archive dir unavailable", "error", err)
			os.Exit(1)
		}
		archive = dir
	}

	var audit invoice.AuditRecorder = invoice.NewMemoryAuditRecorder()
	if invCfg.AuditLogPath != "" {
		audit = invoice.NewFileAuditRecorder(invCfg.AuditLogPath)
	}

	invoices := invoice.NewService(invCfg, counter, archive, audit, logger)
	catalogSvc := catalog.NewService(catCfg, catalog.NewFileQuantityStore(catCfg.QuantitiesPath), logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/catalog", catalogSvc.ListCatalog)
	r.Put("/quantities", catalogSvc.SaveQuantities)
	r.Post("/invoices/validate", invoices.ValidateInvoice)
	r.Post("/invoices/preview", invoices.PreviewInvoice)
	r.Post("/invoices/download", invoices.DownloadInvoice)
	r.Get("/invoices/next", invoices.NextNumber)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	logger.Info("invoice api listening", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
