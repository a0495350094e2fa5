package invoice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Service wires config, validation, numbering, rendering, archive, and audit
// into HTTP handlers.
type Service struct {
	cfg       Config
	validator Validator
	counter   CounterStore
	storage   Storage
	audit     AuditRecorder
	logger    *slog.Logger
	renderer  Renderer
}

func NewService(cfg Config, counter CounterStore, storage Storage, audit AuditRecorder, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return Service{
		cfg:       cfg,
		validator: Validator{Config: cfg},
		counter:   counter,
		storage:   storage,
		audit:     audit,
		logger:    logger,
		renderer:  NewRenderer(cfg),
	}
}

// ValidateInvoice matches POST /invoices/validate
func (s Service) ValidateInvoice(w http.ResponseWriter, r *http.Request) {
	corrID := requestCorrID(r)
	logger := CorrelationLogger(s.logger, corrID)

	draft, err := decodeDraft(r.Body)
	if err != nil {
		logger.Warn("draft decode failed", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"code": "BAD_REQUEST", "message": err.Error()})
		return
	}
	s.applyDefaults(&draft)
	writeJSON(w, http.StatusOK, s.validator.Validate(draft))
}

// PreviewInvoice matches POST /invoices/preview. Preview is non-destructive:
// the counter is read but never advanced or persisted.
func (s Service) PreviewInvoice(w http.ResponseWriter, r *http.Request) {
	corrID := requestCorrID(r)
	logger := CorrelationLogger(s.logger, corrID)

	number, pdfBytes, ok := s.renderDraft(w, r, logger)
	if !ok {
		return
	}
	s.appendAudit(r.Context(), logger, corrID, "invoice.preview", number)
	writePDF(w, pdfBytes, "")
}

// DownloadInvoice matches POST /invoices/download. The counter advances only
// after the document rendered, and the document is only offered after the
// new counter value persisted.
func (s Service) DownloadInvoice(w http.ResponseWriter, r *http.Request) {
	corrID := requestCorrID(r)
	logger := CorrelationLogger(s.logger, corrID)

	number, pdfBytes, ok := s.renderDraft(w, r, logger)
	if !ok {
		return
	}

	if err := s.counter.Save(r.Context(), number+1); err != nil {
		logger.Error("counter save failed", "error", err, "number", number)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"code":      "COUNTER_SAVE_FAILED",
			"message":   "invoice number could not be persisted",
			"retryable": true,
		})
		return
	}

	name := fmt.Sprintf("invoice_%d.pdf", number)
	if s.storage != nil {
		if err := s.storage.PutObject(r.Context(), name, pdfBytes, "application/pdf"); err != nil {
			logger.Warn("archive pdf failed", "error", err)
		}
	}
	s.appendAudit(r.Context(), logger, corrID, "invoice.download", number)

	w.Header().Set("X-Invoice-Number", strconv.Itoa(number))
	writePDF(w, pdfBytes, name)
}

// NextNumber matches GET /invoices/next
func (s Service) NextNumber(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]int{"next": s.counter.Load(r.Context())})
}

// renderDraft is the shared preview/download path: decode, sanitize, number,
// render. On failure it has already written the response.
func (s Service) renderDraft(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int, []byte, bool) {
	draft, err := decodeDraft(r.Body)
	if err != nil {
		logger.Warn("draft decode failed", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"code": "BAD_REQUEST", "message": err.Error()})
		return 0, nil, false
	}
	s.applyDefaults(&draft)

	validation := s.validator.Validate(draft)
	if !validation.Valid {
		writeJSON(w, http.StatusBadRequest, map[string]any{"code": "VALIDATION_ERROR", "errors": validation.Errors})
		return 0, nil, false
	}

	number := s.counter.Load(r.Context())
	pdfBytes, err := s.renderer.Render(draft.Lines, number, draft.Meta())
	if err != nil {
		logger.Error("pdf render failed", "error", err, "number", number)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"code":      "INTERNAL_ERROR",
			"message":   "failed to render invoice",
			"retryable": true,
		})
		return 0, nil, false
	}
	return number, pdfBytes, true
}

func (s Service) applyDefaults(draft *InvoiceDraft) {
	if draft.Date.IsZero() {
		draft.Date = openapi_types.Date{Time: time.Now()}
	}
	if draft.TaxRate == nil {
		rate := decimal.NewFromFloat(s.cfg.DefaultTaxRate)
		draft.TaxRate = &rate
	}
}

func (s Service) appendAudit(ctx context.Context, logger *slog.Logger, corrID, action string, number int) {
	if s.audit == nil {
		return
	}
	entry := AuditLog{
		AuditID: uuid.NewString(),
		CorrID:  corrID,
		Action:  action,
		Number:  number,
		Ts:      time.Now().UTC(),
	}
	if _, err := HashChain(ctx, s.audit, entry); err != nil {
		logger.Warn("audit append failed", "error", err)
	}
}

func decodeDraft(body io.ReadCloser) (InvoiceDraft, error) {
	defer body.Close()
	var draft InvoiceDraft
	if err := json.NewDecoder(body).Decode(&draft); err != nil {
		return draft, fmt.Errorf("invalid JSON: %w", err)
	}
	return draft, nil
}

func requestCorrID(r *http.Request) string {
	if corr := r.Header.Get("X-Correlation-Id"); corr != "" {
		return corr
	}
	return uuid.NewString()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writePDF(w http.ResponseWriter, body []byte, filename string) {
	w.Header().Set("Content-Type", "application/pdf")
	if filename != "" {
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
