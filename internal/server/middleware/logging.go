package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"feedback_service/pkg/ctxdata"
	"feedback_service/pkg/logger"
)

const HeaderTraceID = "X-Trace-Id"

// NewLoggingMiddleware tags every request with a trace id and logs one line
// when it finishes. A uuid trace id from the gateway is kept, anything else
// is replaced. Server errors log at error level and client errors at warn.
func NewLoggingMiddleware(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			traceID := requestTraceID(r)

			r.Header.Set(HeaderTraceID, traceID)
			w.Header().Set(HeaderTraceID, traceID)

			ctx := logger.ContextWithLogger(r.Context(), log)
			ctx = ctxdata.WithTraceID(ctx, traceID)
			r = r.WithContext(ctx)

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			}
			if rctx := chi.RouteContext(ctx); rctx != nil && rctx.RoutePattern() != "" {
				fields = append(fields, zap.String("route", rctx.RoutePattern()))
			}
			// identity is checked later in the chain, so only a well-formed claim is logged
			if caller, err := ctxdata.ParseCaller(r.Header.Get(HeaderUserID), r.Header.Get(HeaderUserRole)); err == nil {
				fields = append(fields, zap.String("user_id", caller.UserID.String()))
			}

			switch {
			case status >= http.StatusInternalServerError:
				log.ErrorContext(ctx, "Request failed", fields...)
			case status >= http.StatusBadRequest:
				log.WarnContext(ctx, "Request rejected", fields...)
			default:
				log.InfoContext(ctx, "Request completed", fields...)
			}
		})
	}
}

func requestTraceID(r *http.Request) string {
	if id, err := uuid.Parse(r.Header.Get(HeaderTraceID)); err == nil && id != uuid.Nil {
		return id.String()
	}
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}
