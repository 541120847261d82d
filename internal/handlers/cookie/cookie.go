// Package cookie decodes recipe payloads carried in the Cookie header and
// bakes them against a pantry.
package cookie

import (
	"context"
	"net/http"

	"hunt-api/internal/metrics"
	"hunt-api/internal/shared"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type CookieHandler struct {
	Log    *zap.SugaredLogger
	Tracer trace.Tracer
}

func NewCookieHandler(log *zap.SugaredLogger, tracer trace.Tracer) *CookieHandler {
	return &CookieHandler{Log: log, Tracer: tracer}
}

// DecodeInput contains all data needed for DecodeLogic
type DecodeInput struct {
	Ctx    context.Context
	Header http.Header
	// Log is the request scoped logger, falls back to the handler logger
	Log *zap.SugaredLogger
}

type DecodeOutput struct {
	Payload string
}

// BakeInput contains all data needed for BakeLogic
type BakeInput struct {
	Ctx    context.Context
	Header http.Header
	Log    *zap.SugaredLogger
}

type BakeOutput struct {
	Result       *BatchResult
	PayloadBytes int
}

func (h *CookieHandler) DecodeLogic(input DecodeInput) (*DecodeOutput, error) {
	ctx, span := h.Tracer.Start(input.Ctx, "cookie.decode_request")
	defer span.End()

	payload, err := h.decode(ctx, input.Header, h.logger(input.Log))
	if err != nil {
		h.reject(span, err)
		return nil, err
	}
	return &DecodeOutput{Payload: payload}, nil
}

func (h *CookieHandler) BakeLogic(input BakeInput) (*BakeOutput, error) {
	ctx, span := h.Tracer.Start(input.Ctx, "cookie.bake_request")
	defer span.End()

	payload, err := h.decode(ctx, input.Header, h.logger(input.Log))
	if err != nil {
		h.reject(span, err)
		return nil, err
	}

	_, parseSpan := h.Tracer.Start(ctx, "cookie.parse")
	req, err := ParseRecipeRequest(payload)
	parseSpan.End()
	if err != nil {
		h.reject(span, err)
		return nil, err
	}

	_, bakeSpan := h.Tracer.Start(ctx, "cookie.bake")
	result := Bake(req)
	bakeSpan.SetAttributes(
		attribute.Int("recipe.ingredients", len(req.Recipe)),
		attribute.Int("pantry.ingredients", len(req.Pantry)),
		attribute.Int64("cookies", int64(result.Cookies)),
	)
	bakeSpan.End()

	metrics.CookiesBaked.Observe(float64(result.Cookies))
	return &BakeOutput{Result: result, PayloadBytes: len(payload)}, nil
}

func (h *CookieHandler) decode(ctx context.Context, header http.Header, log *zap.SugaredLogger) (string, error) {
	_, span := h.Tracer.Start(ctx, "cookie.decode")
	defer span.End()

	payload, err := DecodePayload(header)
	if err != nil {
		return "", err
	}
	log.Debugw("decoded cookie payload", "payload", payload)
	return payload, nil
}

func (h *CookieHandler) reject(span trace.Span, err error) {
	reason := shared.RejectionReason(err)
	metrics.PayloadRejections.WithLabelValues(reason).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, reason)
}

func (h *CookieHandler) logger(log *zap.SugaredLogger) *zap.SugaredLogger {
	if log != nil {
		return log
	}
	return h.Log
}
