package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	customerdomain "github.com/rmaluf/storefront-orders/internal/customer/domain"
	"github.com/rmaluf/storefront-orders/internal/order/application"
	"github.com/rmaluf/storefront-orders/internal/order/domain"
	"github.com/rmaluf/storefront-orders/pkg/idempotency"
)

// IdempotencyChecker is satisfied by the Redis-backed idempotency store. A
// nil checker disables the duplicate guard.
type IdempotencyChecker interface {
	Seen(ctx context.Context, key string) (bool, error)
}

type Handler struct {
	log     *slog.Logger
	service *application.Service
	idem    IdempotencyChecker
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service, idem IdempotencyChecker) *Handler {
	return &Handler{
		log:     log,
		service: service,
		idem:    idem,
		tracer:  otel.Tracer("order-http"),
	}
}

type createOrderReq struct {
	CustomerID string               `json:"customer_id"`
	Products   []domain.LineRequest `json:"products"`
}

type orderResponse struct {
	ID         string            `json:"id"`
	CustomerID string            `json:"customer_id"`
	TotalCents int64             `json:"total_cents"`
	Items      []domain.LineItem `json:"items"`
	CreatedAt  time.Time         `json:"created_at"`
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.createOrder)
	r.Get("/{id}", h.getOrder)
	return r
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CreateOrder")
	defer span.End()

	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if h.idem != nil {
		if key := r.Header.Get("Idempotency-Key"); key != "" {
			seen, err := h.idem.Seen(ctx, idempotency.RequestKey("orders", key))
			if err != nil {
				h.log.Error("idempotency check failed", "err", err)
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			if seen {
				writeError(w, http.StatusConflict, "duplicate request")
				return
			}
		}
	}

	order, err := h.service.CreateOrder(ctx, req.CustomerID, req.Products)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toResponse(order))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetOrder")
	defer span.End()

	order, err := h.service.GetOrder(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toResponse(order))
}

func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	var (
		pnf *domain.ProductNotFoundError
		ins *domain.InsufficientStockError
	)
	switch {
	case errors.Is(err, customerdomain.ErrNotFound), errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &pnf):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &ins):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.log.Error("order request failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func toResponse(order domain.Order) orderResponse {
	return orderResponse{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		TotalCents: order.TotalCents,
		Items:      order.Items,
		CreatedAt:  order.CreatedAt,
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
