package grpcserver

import (
	"context"
	"fmt"
	"net"
	"time"

	"dispatch/pkg/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
)

const (
	KeepaliveTime    = 5 * time.Minute
	KeepaliveTimeout = 3 * time.Second
	KeepaliveMinTime = 30 * time.Second

	// ServiceName имя в grpc.health.v1 для проверок конкретного сервиса.
	ServiceName = "dispatch"
)

// Server gRPC сервер только с health-сервисом: его опрашивают балансировщики
// и оркестратор, бизнес API остается в HTTP.
type Server struct {
	log    logger.Logger
	server *grpc.Server
	health *health.Server
}

func New(log logger.Logger) *Server {
	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime: KeepaliveMinTime,
		}),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Server{
		log: log.With(
			logger.NewField("component", "grpc-server"),
		),
		server: server,
		health: healthServer,
	}
}

// Serve блокируется до Stop или ошибки листенера.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("gRPC server starting",
		logger.NewField("addr", lis.Addr().String()),
	)
	if err := s.server.Serve(lis); err != nil {
		return fmt.Errorf("gRPC serve: %w", err)
	}
	return nil
}

// Drain переводит health в NOT_SERVING до остановки HTTP сервера.
func (s *Server) Drain() {
	s.health.Shutdown()
}

// Stop ждет завершения активных RPC не дольше ctx.
func (s *Server) Stop(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.log.Warn("gRPC graceful stop timeout, forcing stop")
		s.server.Stop()
	}
}
