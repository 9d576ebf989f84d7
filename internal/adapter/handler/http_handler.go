package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/vitrine/stock-reserve/internal/core/domain"
	"github.com/vitrine/stock-reserve/internal/core/service"
)

// HTTPHandler is the checkout-facing boundary. Holder identity comes from
// the upstream auth layer via the X-User-ID header, falling back to the
// shopper's session key.
type HTTPHandler struct {
	svc          *service.ReservationService
	cleanupToken string
}

func NewHTTPHandler(svc *service.ReservationService, cleanupToken string) *HTTPHandler {
	return &HTTPHandler{svc: svc, cleanupToken: cleanupToken}
}

// Register wires all routes onto mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.HealthCheck)
	mux.HandleFunc("POST /reservations", h.CreateReservation)
	mux.HandleFunc("POST /reservations/{id}/extend", h.ExtendReservation)
	mux.HandleFunc("DELETE /reservations/{id}", h.CancelReservation)
	mux.HandleFunc("GET /reservations/mine", h.MyReservations)
	mux.HandleFunc("POST /reservations/cleanup", h.CleanupExpired)
	mux.HandleFunc("GET /reservations/audit", h.AuditTrail)
	mux.HandleFunc("GET /availability", h.CheckAvailability)
}

type createReservationRequest struct {
	VariantID  string `json:"variant_id"`
	Quantity   int    `json:"quantity"`
	SessionKey string `json:"session_key"`
}

type createReservationResponse struct {
	ReservationID  string    `json:"reservation_id"`
	ExpiresAt      time.Time `json:"expires_at"`
	Quantity       int       `json:"quantity"`
	VariantID      string    `json:"variant_id"`
	AvailableStock int       `json:"available_stock"`
}

func (h *HTTPHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.VariantID == "" {
		writeError(w, http.StatusBadRequest, "variant_id is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	holder := holderFrom(r, req.SessionKey)
	result, err := h.svc.Reserve(r.Context(), req.VariantID, req.Quantity, holder)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createReservationResponse{
		ReservationID:  result.Reservation.ID,
		ExpiresAt:      result.Reservation.ExpiresAt,
		Quantity:       result.Reservation.Quantity,
		VariantID:      result.Reservation.VariantID,
		AvailableStock: result.Available,
	})
}

type extendReservationRequest struct {
	Minutes int `json:"minutes"`
}

func (h *HTTPHandler) ExtendReservation(w http.ResponseWriter, r *http.Request) {
	// Body is optional; the default TTL applies when absent.
	var req extendReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ttl := time.Duration(req.Minutes) * time.Minute
	res, err := h.svc.Extend(r.Context(), r.PathValue("id"), ttl)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	minutes := req.Minutes
	if minutes <= 0 {
		minutes = int(h.svc.TTL().Minutes())
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"reservation_id": res.ID,
		"expires_at":     res.ExpiresAt,
		"message":        fmt.Sprintf("reservation extended by %d minutes", minutes),
	})
}

func (h *HTTPHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.Cancel(r.Context(), r.PathValue("id")); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "reservation cancelled"})
}

func (h *HTTPHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	variantID := r.URL.Query().Get("variant_id")
	if variantID == "" {
		writeError(w, http.StatusBadRequest, "variant_id is required")
		return
	}

	quantity := 1
	if q := r.URL.Query().Get("quantity"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid quantity")
			return
		}
		quantity = n
	}

	a, err := h.svc.CheckAvailability(r.Context(), variantID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"variant_id":         a.VariantID,
		"total_stock":        a.TotalStock,
		"reserved":           a.Reserved,
		"available":          a.Available,
		"is_available":       a.CanFulfill(quantity),
		"requested_quantity": quantity,
	})
}

type holderReservationView struct {
	ID              string    `json:"id"`
	VariantID       string    `json:"variant_id"`
	ProductName     string    `json:"product_name"`
	SKU             string    `json:"sku"`
	Quantity        int       `json:"quantity"`
	ExpiresAt       time.Time `json:"expires_at"`
	TimeLeftSeconds float64   `json:"time_left_seconds"`
}

func (h *HTTPHandler) MyReservations(w http.ResponseWriter, r *http.Request) {
	holder := holderFrom(r, r.URL.Query().Get("session_key"))

	list, err := h.svc.ListMine(r.Context(), holder)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	views := make([]holderReservationView, 0, len(list))
	now := time.Now().UTC()
	for _, d := range list {
		views = append(views, holderReservationView{
			ID:              d.ID,
			VariantID:       d.VariantID,
			ProductName:     d.ProductName,
			SKU:             d.SKU,
			Quantity:        d.Quantity,
			ExpiresAt:       d.ExpiresAt,
			TimeLeftSeconds: d.ExpiresAt.Sub(now).Seconds(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"reservations": views})
}

func (h *HTTPHandler) CleanupExpired(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		writeError(w, http.StatusForbidden, "cleanup requires a trusted caller")
		return
	}

	count, err := h.svc.CleanupExpired(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("%d expired reservations removed", count),
		"count":   count,
	})
}

func (h *HTTPHandler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		writeError(w, http.StatusForbidden, "audit trail requires a trusted caller")
		return
	}

	variantID := r.URL.Query().Get("variant_id")
	if variantID == "" {
		writeError(w, http.StatusBadRequest, "variant_id is required")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.svc.AuditTrail(r.Context(), variantID, limit)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	type auditView struct {
		ReservationID string    `json:"reservation_id,omitempty"`
		VariantID     string    `json:"variant_id"`
		Action        string    `json:"action"`
		Quantity      int       `json:"quantity"`
		Holder        string    `json:"holder"`
		Notes         string    `json:"notes"`
		Timestamp     time.Time `json:"timestamp"`
	}
	views := make([]auditView, 0, len(entries))
	for _, e := range entries {
		views = append(views, auditView{
			ReservationID: e.ReservationID,
			VariantID:     e.VariantID,
			Action:        string(e.Action),
			Quantity:      e.Quantity,
			Holder:        e.Holder.Key(),
			Notes:         e.Notes,
			Timestamp:     e.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": views})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// authorized gates operational endpoints behind the configured token. An
// empty token leaves them open, for development and trusted networks.
func (h *HTTPHandler) authorized(r *http.Request) bool {
	if h.cleanupToken == "" {
		return true
	}
	return r.Header.Get("Authorization") == "Bearer "+h.cleanupToken
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, err error) {
	var insufficient *domain.InsufficientStockError
	switch {
	case errors.As(err, &insufficient):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":     fmt.Sprintf("insufficient stock, available: %d", insufficient.Available),
			"available": insufficient.Available,
		})
	case errors.Is(err, domain.ErrVariantNotFound):
		writeError(w, http.StatusNotFound, "variant not found")
	case errors.Is(err, domain.ErrReservationNotFound):
		writeError(w, http.StatusNotFound, "reservation not found")
	case errors.Is(err, domain.ErrAlreadyConverted):
		writeError(w, http.StatusConflict, "reservation already converted to an order")
	case errors.Is(err, domain.ErrInvalidQuantity):
		writeError(w, http.StatusBadRequest, "quantity must be greater than zero")
	case errors.Is(err, domain.ErrMissingHolder):
		writeError(w, http.StatusBadRequest, "session_key or authenticated user required")
	case errors.Is(err, domain.ErrMissingOrderID):
		writeError(w, http.StatusBadRequest, "order_id is required")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func holderFrom(r *http.Request, sessionKey string) domain.Holder {
	return domain.Holder{
		UserID:     r.Header.Get("X-User-ID"),
		SessionKey: sessionKey,
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
