package middleware

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"feedback_service/internal/domain"
	"feedback_service/pkg/ctxdata"
	"feedback_service/pkg/logger"
)

const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

var errUnknownRole = errors.New("unknown user role")

// NewIdentityMiddleware trusts the identity headers set by the upstream
// gateway and stores the caller in the request context. Requests without a
// valid user id and a known role are rejected with 401.
func NewIdentityMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			caller, err := ctxdata.ParseCaller(r.Header.Get(HeaderUserID), r.Header.Get(HeaderUserRole))
			if err == nil && !domain.UserRole(caller.Role).IsValid() {
				err = errUnknownRole
			}
			if err != nil {
				if log, ok := logger.FromContext(ctx); ok {
					log.InfoContext(ctx, "Rejected request identity",
						zap.String("path", r.URL.Path),
						zap.Error(err),
					)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxdata.WithCaller(ctx, caller)))
		})
	}
}

// ActorFromContext maps the request caller onto the domain actor. Callers
// with a role outside the domain set are not actors.
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	caller, ok := ctxdata.CallerFrom(ctx)
	if !ok {
		return domain.Actor{}, false
	}
	role := domain.UserRole(caller.Role)
	if !role.IsValid() {
		return domain.Actor{}, false
	}
	return domain.Actor{ID: caller.UserID, Role: role}, true
}
