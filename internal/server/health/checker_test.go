package health

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	"feedback_service/pkg/ctxdata"
	"feedback_service/pkg/logger"
)

func TestCheckerHTTP(t *testing.T) {
	c := NewChecker(clockwork.NewFakeClock(), logger.NewNop())

	var dbErr error
	c.Add("postgres", func(context.Context) error { return dbErr })
	c.Add("redis", func(context.Context) error { return nil })

	assert.True(t, c.Check(context.Background()))
	rec := httptest.NewRecorder()
	c.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	dbErr = errors.New("connection refused")
	assert.False(t, c.Check(context.Background()))
	rec = httptest.NewRecorder()
	c.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"degraded","checks":{"postgres":"connection refused"}}`, rec.Body.String())
}

func TestCheckerGRPC(t *testing.T) {
	c := NewChecker(clockwork.NewFakeClock(), logger.NewNop())
	var probeErr error
	c.Add("kafka", func(context.Context) error { return probeErr })

	lis := bufconn.Listen(1 << 20)
	srv := c.NewGRPCServer()
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	client := healthpb.NewHealthClient(conn)

	c.Check(context.Background())
	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	probeErr = errors.New("no brokers")
	c.Check(context.Background())
	resp, err = client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestMetadataUnaryInterceptor(t *testing.T) {
	interceptor := NewMetadataUnaryInterceptor()
	userID := uuid.New()
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		"x-trace-id", "trace-1",
		"x-user-id", userID.String(),
		"x-user-role", "admin",
	))

	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/test"}, func(ctx context.Context, _ interface{}) (interface{}, error) {
		traceID, _ := ctxdata.TraceID(ctx)
		caller, ok := ctxdata.CallerFrom(ctx)
		assert.Equal(t, "trace-1", traceID)
		assert.True(t, ok)
		assert.Equal(t, ctxdata.Caller{UserID: userID, Role: "admin"}, caller)
		return nil, nil
	})
	require.NoError(t, err)
}

func TestMetadataUnaryInterceptor_DropsMalformedIdentity(t *testing.T) {
	interceptor := NewMetadataUnaryInterceptor()
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		"x-user-id", "user-1",
		"x-user-role", "admin",
	))

	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/test"}, func(ctx context.Context, _ interface{}) (interface{}, error) {
		_, ok := ctxdata.CallerFrom(ctx)
		assert.False(t, ok)
		_, ok = ctxdata.TraceID(ctx)
		assert.False(t, ok)
		return nil, nil
	})
	require.NoError(t, err)
}

func TestUnaryLoggingInterceptorPassesErrors(t *testing.T) {
	interceptor := NewUnaryLoggingInterceptor(logger.NewNop())
	wantErr := errors.New("boom")

	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/test"}, func(ctx context.Context, _ interface{}) (interface{}, error) {
		_, ok := logger.FromContext(ctx)
		assert.True(t, ok)
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}
