package pools

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"poolbalance/internal/observability"
	"poolbalance/internal/store"
	"poolbalance/internal/store/model"
	"poolbalance/internal/validator"
)

var tracer = otel.Tracer("pools")

const msgNotFound = "Pool not found"

type Handler struct {
	store     store.Pool
	validator *validator.Validator
}

func NewHandler(s store.Pool) *Handler {
	v := validator.NewValidator()
	v.Register(validator.NewPoolValidationRules()...)
	return &Handler{store: s, validator: v}
}

// Create handles POST /api/pools
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger := h.start(r, "create")
	defer span.End()

	var in CreateRequest
	if err := render.DecodeJSON(r.Body, &in); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "create", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if err := h.validator.Struct(in); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "create", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	pool, err := h.store.Create(ctx, in.toModel())
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "create", "failed to store pool", err, http.StatusInternalServerError, w)
		return
	}

	h.done(ctx, span, "create")
	span.SetAttributes(attribute.String("pool.id", pool.ID.String()))
	logger.Info("pool created",
		zap.String("pool_id", pool.ID.String()),
		zap.String("name", pool.Name),
		zap.Float64("volume_liters", pool.VolumeLiters),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, pool)
}

// List handles GET /api/pools
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger := h.start(r, "list")
	defer span.End()

	pools, err := h.store.List(ctx)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "list", "failed to list pools", err, http.StatusInternalServerError, w)
		return
	}
	if pools == nil {
		pools = model.PoolList{}
	}

	h.done(ctx, span, "list")
	span.SetAttributes(attribute.Int("pools.count", len(pools)))

	render.JSON(w, r, pools)
}

// Get handles GET /api/pools/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger := h.start(r, "get")
	defer span.End()

	id, err := poolID(r)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "get", msgNotFound, err, http.StatusNotFound, w)
		return
	}

	pool, err := h.store.Get(ctx, id)
	if err != nil {
		status, msg := errorResponse(err)
		observability.RecordError(ctx, span, logger, errorCounter, "get", msg, err, status, w)
		return
	}

	h.done(ctx, span, "get")
	render.JSON(w, r, pool)
}

// Delete handles DELETE /api/pools/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger := h.start(r, "delete")
	defer span.End()

	id, err := poolID(r)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "delete", msgNotFound, err, http.StatusNotFound, w)
		return
	}

	if err := h.store.Delete(ctx, id); err != nil {
		status, msg := errorResponse(err)
		observability.RecordError(ctx, span, logger, errorCounter, "delete", msg, err, status, w)
		return
	}

	h.done(ctx, span, "delete")
	logger.Info("pool deleted",
		zap.String("pool_id", id.String()),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	render.JSON(w, r, map[string]string{"message": "Pool deleted successfully"})
}

func (h *Handler) start(r *http.Request, op string) (context.Context, trace.Span, *zap.Logger) {
	ctx := r.Context()
	ctx, span := tracer.Start(ctx, "pools."+op,
		trace.WithAttributes(
			attribute.String("request.id", observability.RequestIDFromContext(ctx)),
		),
	)
	return ctx, span, observability.LoggerWithTrace(ctx)
}

func (h *Handler) done(ctx context.Context, span trace.Span, op string) {
	opsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
	span.SetStatus(codes.Ok, "")
}

func poolID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse pool id %q: %w", raw, err)
	}
	return id, nil
}

func errorResponse(err error) (int, string) {
	if errors.Is(err, store.ErrRecordNotFound) {
		return http.StatusNotFound, msgNotFound
	}
	return http.StatusInternalServerError, "internal error"
}
