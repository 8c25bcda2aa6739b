// Package health exposes the standard gRPC health service and keeps its
// status in line with database reachability.
package health

import (
	"context"
	"time"

	"github.com/sbilibin2017/roommate-matcher/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the service reported alongside the overall ("") status.
const ServiceName = "roommate-matcher"

// Pinger reports whether a dependency answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Checker periodically pings the database and publishes SERVING or NOT_SERVING.
type Checker struct {
	server   *health.Server
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration
}

// NewChecker creates a Checker. Status starts as NOT_SERVING until the first check.
func NewChecker(pinger Pinger, interval time.Duration) *Checker {
	c := &Checker{
		server:   health.NewServer(),
		pinger:   pinger,
		interval: interval,
		timeout:  interval / 2,
	}
	c.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return c
}

// Register attaches the health service to a gRPC server.
func (c *Checker) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, c.server)
}

// Check pings once and updates the status.
func (c *Checker) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := c.pinger.PingContext(ctx); err != nil {
		logger.Log.Warnw("database ping failed", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	c.set(status)
	return status
}

// Run checks on every tick until ctx is done, then reports NOT_SERVING for good.
func (c *Checker) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			c.server.Shutdown()
			return
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}

func (c *Checker) set(status healthpb.HealthCheckResponse_ServingStatus) {
	c.server.SetServingStatus("", status)
	c.server.SetServingStatus(ServiceName, status)
}
