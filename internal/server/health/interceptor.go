package health

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"

	"feedback_service/pkg/ctxdata"
	"feedback_service/pkg/logger"
)

// NewMetadataUnaryInterceptor copies the gateway's trace and identity
// metadata into the context. A malformed identity is dropped, not rejected,
// since health checks are anonymous.
func NewMetadataUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if traceID := firstValue(md, "x-trace-id"); traceID != "" {
				ctx = ctxdata.WithTraceID(ctx, traceID)
			}
			caller, err := ctxdata.ParseCaller(firstValue(md, "x-user-id"), firstValue(md, "x-user-role"))
			if err == nil {
				ctx = ctxdata.WithCaller(ctx, caller)
			}
		}

		return handler(ctx, req)
	}
}

func NewUnaryLoggingInterceptor(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()

		clientIP := "unknown"
		if p, ok := peer.FromContext(ctx); ok {
			clientIP = p.Addr.String()
		}

		ctx = logger.ContextWithLogger(ctx, log)

		resp, err := handler(ctx, req)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("client_ip", clientIP),
			zap.Duration("duration", time.Since(start)),
		}

		if err != nil {
			fields = append(fields, zap.Error(err))
			log.ErrorContext(ctx, "request failed", fields...)
		} else {
			log.DebugContext(ctx, "request handled", fields...)
		}

		return resp, err
	}
}

func firstValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
