// Package health reports dependency status over gRPC health checking and a
// plain HTTP endpoint.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"feedback_service/pkg/logger"
)

const (
	ServiceName  = "feedback.FeedbackService"
	probeTimeout = 2 * time.Second
)

// Probe returns nil when the dependency is usable.
type Probe func(ctx context.Context) error

type probe struct {
	name string
	fn   Probe
}

type Checker struct {
	mu      sync.RWMutex
	probes  []probe
	results map[string]error
	srv     *grpchealth.Server
	clock   clockwork.Clock
	log     *logger.Logger
}

func NewChecker(clock clockwork.Clock, log *logger.Logger) *Checker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	srv := grpchealth.NewServer()
	srv.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	return &Checker{
		results: make(map[string]error),
		srv:     srv,
		clock:   clock,
		log:     log,
	}
}

func (c *Checker) Add(name string, fn Probe) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.probes = append(c.probes, probe{name: name, fn: fn})
}

// Check runs every probe and updates the reported serving status. It
// returns true when all probes pass.
func (c *Checker) Check(ctx context.Context) bool {
	c.mu.RLock()
	probes := append([]probe(nil), c.probes...)
	c.mu.RUnlock()

	results := make(map[string]error, len(probes))
	healthy := true
	for _, p := range probes {
		pctx, cancel := context.WithTimeout(ctx, probeTimeout)
		err := p.fn(pctx)
		cancel()
		results[p.name] = err
		if err != nil {
			healthy = false
			c.log.WarnContext(ctx, "health probe failed", zap.String("probe", p.name), zap.Error(err))
		}
	}

	c.mu.Lock()
	c.results = results
	c.mu.Unlock()

	status := healthpb.HealthCheckResponse_SERVING
	if !healthy {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	c.srv.SetServingStatus("", status)
	c.srv.SetServingStatus(ServiceName, status)
	return healthy
}

// Run re-checks on every interval until ctx is cancelled.
func (c *Checker) Run(ctx context.Context, interval time.Duration) {
	c.Check(ctx)

	ticker := c.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			c.Check(ctx)
		}
	}
}

// Shutdown marks every service NOT_SERVING so load balancers drain first.
func (c *Checker) Shutdown() {
	c.srv.Shutdown()
}

type statusResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ServeHTTP reports the result of the last Check.
func (c *Checker) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	c.mu.RLock()
	failed := make(map[string]string)
	names := make([]string, 0, len(c.results))
	for name := range c.results {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := c.results[name]; err != nil {
			failed[name] = err.Error()
		}
	}
	c.mu.RUnlock()

	resp := statusResponse{Status: "ok"}
	code := http.StatusOK
	if len(failed) > 0 {
		resp = statusResponse{Status: "degraded", Checks: failed}
		code = http.StatusServiceUnavailable
	}

	data, _ := json.Marshal(resp)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(data)
}

// NewGRPCServer builds a gRPC server exposing the standard health service.
func (c *Checker) NewGRPCServer() *grpc.Server {
	interceptor := grpc_middleware.ChainUnaryServer(
		NewMetadataUnaryInterceptor(),
		NewUnaryLoggingInterceptor(c.log),
	)

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(interceptor),
	)
	healthpb.RegisterHealthServer(grpcServer, c.srv)
	return grpcServer
}
