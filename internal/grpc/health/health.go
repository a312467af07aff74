// Package health поднимает стандартный gRPC health-сервис.
// Статус сервиса обновляется периодической проверкой хранилища.
package health

import (
	"context"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	service  string
	pinger   Pinger
	interval time.Duration
	grpc     *grpc.Server
	health   *health.Server
	logger   *zap.Logger
}

// NewServer создаёт сервер. pinger может быть nil: in-memory хранилище всегда доступно.
func NewServer(service string, pinger Pinger, interval time.Duration, logger *zap.Logger) *Server {
	s := &Server{
		service:  service,
		pinger:   pinger,
		interval: interval,
		grpc:     grpc.NewServer(),
		health:   health.NewServer(),
		logger:   logger,
	}
	healthpb.RegisterHealthServer(s.grpc, s.health)
	return s
}

// Check выставляет статус по результату проверки хранилища.
func (s *Server) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if s.pinger != nil {
		if err := s.pinger.Ping(ctx); err != nil {
			s.logger.Warn("Storage ping failed", zap.Error(err))
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(s.service, status)
	return status
}

// Serve принимает соединения на lis, пока не отменён ctx.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.Check(ctx)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.health.Shutdown()
				s.grpc.GracefulStop()
				return
			case <-ticker.C:
				s.Check(ctx)
			}
		}
	}()

	s.logger.Info("gRPC health сервер запущен", zap.String("address", lis.Addr().String()))
	return s.grpc.Serve(lis)
}
