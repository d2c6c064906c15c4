package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"poolbalance/internal/dosage"
	"poolbalance/internal/handlers"
	"poolbalance/internal/observability"
	"poolbalance/internal/store"
	"poolbalance/internal/store/model"
	"poolbalance/internal/validator"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// ProfileGetter resolves stored pool profiles. It is only used to fill in
// a missing volume from pool_id.
type ProfileGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Pool, error)
}

type Handler struct {
	profiles  ProfileGetter
	language  string
	validator *validator.Validator
}

// NewHandler returns calculation handlers. profiles may be nil, in which
// case pool_id is never resolved. language is the notes language used when
// a request does not name a supported one.
func NewHandler(profiles ProfileGetter, language string) *Handler {
	if !dosage.SupportedLanguage(language) {
		language = dosage.DefaultLanguage
	}
	return &Handler{
		profiles:  profiles,
		language:  language,
		validator: validator.NewValidator(),
	}
}

// ---------------------------------------------------------------------------
// Handler: single calculation
// ---------------------------------------------------------------------------

// Calculate handles POST /api/calculate
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.calculate",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var in CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "calculate", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	req, err := h.resolve(ctx, in)
	if err != nil {
		status, msg := errorResponse(err)
		observability.RecordError(ctx, span, logger, errorCounter, opName(in.CalculationType), msg, err, status, w)
		return
	}

	span.SetAttributes(
		attribute.String("dosage.kind", req.CalculationType),
		attribute.String("dosage.product", req.ProductType),
		attribute.Float64("dosage.current", req.CurrentValue),
		attribute.Float64("dosage.target", req.TargetValue),
		attribute.Float64("dosage.volume_liters", req.VolumeLiters),
	)

	start := time.Now()
	result, err := dosage.Calculate(req)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		status, msg := errorResponse(err)
		observability.RecordError(ctx, span, logger, errorCounter, req.CalculationType, msg, err, status, w)
		return
	}

	record(ctx, req, result, elapsed)

	span.AddEvent("calculation.complete", trace.WithAttributes(
		attribute.Float64("amount", result.Amount),
		attribute.String("unit", string(result.Unit)),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("dosage calculation completed",
		zap.String("kind", req.CalculationType),
		zap.String("product", req.ProductType),
		zap.Float64("current", req.CurrentValue),
		zap.Float64("target", req.TargetValue),
		zap.Float64("volume_liters", req.VolumeLiters),
		zap.Float64("amount", result.Amount),
		zap.String("unit", string(result.Unit)),
		zap.String("pool_id", req.PoolID),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, result)
}

// ---------------------------------------------------------------------------
// Handler: batch of independent calculations (one child span each)
// ---------------------------------------------------------------------------

// Batch handles POST /api/calculate/batch. Every entry is validated and
// computed on its own; the first failing entry rejects the whole batch.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.batch",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var in BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if len(in.Calculations) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "no calculations provided", fmt.Errorf("calculations array is empty"), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.Int("batch.size", len(in.Calculations)))

	results := make([]dosage.Result, 0, len(in.Calculations))

	for i, entry := range in.Calculations {
		stepCtx, stepSpan := tracer.Start(ctx, fmt.Sprintf("calculator.batch.step.%d.%s", i, opName(entry.CalculationType)),
			trace.WithAttributes(
				attribute.Int("batch.step.index", i),
				attribute.String("batch.step.kind", entry.CalculationType),
				attribute.String("batch.step.product", entry.ProductType),
			),
		)

		stepStart := time.Now()
		req, err := h.resolve(stepCtx, entry)
		var result dosage.Result
		if err == nil {
			result, err = dosage.Calculate(req)
		}
		stepElapsed := float64(time.Since(stepStart).Microseconds()) / 1000.0

		if err != nil {
			stepSpan.RecordError(err)
			stepSpan.SetStatus(codes.Error, err.Error())
			stepSpan.End()

			status, msg := errorResponse(err)
			observability.RecordError(ctx, span, logger, errorCounter, opName(entry.CalculationType),
				fmt.Sprintf("calculation %d: %s", i, msg), err, status, w)
			return
		}

		record(ctx, req, result, stepElapsed)

		stepSpan.AddEvent("step.complete", trace.WithAttributes(
			attribute.Float64("amount", result.Amount),
			attribute.String("unit", string(result.Unit)),
		))
		stepSpan.SetStatus(codes.Ok, "")
		stepSpan.End()

		logger.Debug("batch step completed",
			zap.Int("step", i),
			zap.String("kind", req.CalculationType),
			zap.Float64("amount", result.Amount),
			zap.String("unit", string(result.Unit)),
			zap.Float64("duration_ms", stepElapsed),
		)

		results = append(results, result)
	}

	span.AddEvent("batch.complete", trace.WithAttributes(
		attribute.Int("total_steps", len(results)),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("batch calculation completed",
		zap.Int("calculations", len(results)),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, BatchResponse{Results: results})
}

// resolve turns the wire request into an engine request, filling the
// volume from the referenced profile when it is missing.
func (h *Handler) resolve(ctx context.Context, in CalculationRequest) (dosage.Request, error) {
	kind, err := dosage.ParseKind(in.CalculationType)
	if err != nil {
		return dosage.Request{}, err
	}

	if in.PoolVolumeLiters == nil && in.PoolID != "" {
		volume, err := h.profileVolume(ctx, in.PoolID)
		if err != nil {
			return dosage.Request{}, err
		}
		in.PoolVolumeLiters = &volume
	}

	if err := h.validator.Struct(in); err != nil {
		return dosage.Request{}, fmt.Errorf("%w: %v", dosage.ErrInvalidInput, err)
	}

	language := strings.ToLower(in.Language)
	if !dosage.SupportedLanguage(language) {
		language = h.language
	}

	return dosage.Request{
		CalculationType: string(kind),
		CurrentValue:    *in.CurrentValue,
		TargetValue:     *in.TargetValue,
		VolumeLiters:    *in.PoolVolumeLiters,
		ProductType:     in.ProductType,
		Concentration:   in.ProductConcentration,
		PoolID:          in.PoolID,
		Language:        language,
	}, nil
}

func (h *Handler) profileVolume(ctx context.Context, poolID string) (float64, error) {
	if h.profiles == nil {
		return 0, fmt.Errorf("%w: pool_volume_liters is required", dosage.ErrInvalidInput)
	}

	id, err := uuid.Parse(poolID)
	if err != nil {
		return 0, fmt.Errorf("%w: pool_id %q is not a valid identifier", dosage.ErrInvalidInput, poolID)
	}

	pool, err := h.profiles.Get(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: pool %s not found", dosage.ErrInvalidInput, id)
	}
	if err != nil {
		return 0, fmt.Errorf("get pool %s: %w", id, err)
	}

	return pool.VolumeLiters, nil
}

func record(ctx context.Context, req dosage.Request, result dosage.Result, elapsed float64) {
	attrs := metric.WithAttributes(
		attribute.String("kind", req.CalculationType),
		attribute.String("product", req.ProductType),
	)
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	amountGauge.Record(ctx, result.Amount, metric.WithAttributes(
		attribute.String("kind", req.CalculationType),
		attribute.String("unit", string(result.Unit)),
	))
}

// errorResponse maps an error to its HTTP status and client message.
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, dosage.ErrUnknownCalculationType):
		return http.StatusBadRequest, "Unknown calculation type"
	case errors.Is(err, dosage.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// opName keeps metric attributes bounded to the known kinds.
func opName(calculationType string) string {
	kind, err := dosage.ParseKind(calculationType)
	if err != nil {
		return "unknown"
	}
	return string(kind)
}
