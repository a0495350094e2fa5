package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"
)

// Service serves the selection grid's data: filtered, priced inventory
// merged with the saved quantity map.
type Service struct {
	cfg        Config
	quantities QuantityStore
	logger     *slog.Logger
}

func NewService(cfg Config, quantities QuantityStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return Service{cfg: cfg, quantities: quantities, logger: logger}
}

// ListCatalog matches GET /catalog. Query params: color, type, q (description
// search), upcharge (percentage, defaults from config).
func (s Service) ListCatalog(w http.ResponseWriter, r *http.Request) {
	products, err := Load(s.cfg.InventoryPath)
	if err != nil {
		s.logger.Error("inventory load failed", "error", err, "path", s.cfg.InventoryPath)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"code": "INVENTORY_UNAVAILABLE", "message": "inventory could not be loaded"})
		return
	}

	upcharge := decimal.NewFromFloat(s.cfg.DefaultUpcharge)
	if raw := r.URL.Query().Get("upcharge"); raw != "" {
		upcharge, err = decimal.NewFromString(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"code": "BAD_REQUEST", "message": "upcharge must be a number"})
			return
		}
	}

	filter := Filter{
		Color:  r.URL.Query().Get("color"),
		Type:   r.URL.Query().Get("type"),
		Search: r.URL.Query().Get("q"),
	}
	saved := s.quantities.Load(r.Context())

	matched := filter.Apply(products)
	items := make([]Item, 0, len(matched))
	for _, p := range matched {
		items = append(items, Item{
			Product:   p,
			UnitPrice: Price(p.BasePrice, upcharge),
			Quantity:  saved[p.SKU],
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items":  items,
		"colors": Colors(products),
		"types":  Types(products),
	})
}

// SaveQuantities matches PUT /quantities
func (s Service) SaveQuantities(w http.ResponseWriter, r *http.Request) {
	quantities, err := decodeQuantities(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"code": "BAD_REQUEST", "message": err.Error()})
		return
	}
	for sku, qty := range quantities {
		if qty < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"code": "BAD_REQUEST", "message": fmt.Sprintf("quantity for %s must be non-negative", sku)})
			return
		}
	}
	if err := s.quantities.Save(r.Context(), quantities); err != nil {
		s.logger.Error("quantities save failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"code": "INTERNAL_ERROR", "message": "quantities could not be saved"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"saved": len(quantities)})
}

func decodeQuantities(body io.ReadCloser) (map[string]int, error) {
	defer body.Close()
	var payload struct {
		Quantities map[string]int `json:"quantities"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if payload.Quantities == nil {
		payload.Quantities = map[string]int{}
	}
	return payload.Quantities, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
