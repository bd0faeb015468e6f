package rpcserver

import (
	"context"
	"errors"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/AntonStoeckl/library-admin-rpc/rpc/librarypb"
	"github.com/AntonStoeckl/library-admin-rpc/shell"
)

// DefaultWorkers is the number of calls served concurrently unless WithWorkers says otherwise.
const DefaultWorkers = 10

// ErrInvalidWorkers is returned when the worker count is not positive.
var ErrInvalidWorkers = errors.New("rpcserver: workers must be positive")

// Server hosts the library administration service and the standard health service.
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server

	workers          int
	serverOptions    []grpc.ServerOption
	logger           shell.Logger
	contextualLogger shell.ContextualLogger
	metrics          shell.MetricsCollector
	tracing          shell.TracingCollector
}

// Option defines a functional option for configuring a Server.
type Option func(*Server) error

// WithWorkers sets how many calls are served at the same time.
func WithWorkers(workers int) Option {
	return func(s *Server) error {
		if workers <= 0 {
			return ErrInvalidWorkers
		}

		s.workers = workers
		return nil
	}
}

// WithLogger sets the logger for per-call logs.
func WithLogger(logger shell.Logger) Option {
	return func(s *Server) error {
		s.logger = logger
		return nil
	}
}

// WithContextualLogger sets a context-aware logger; it takes precedence over WithLogger.
func WithContextualLogger(logger shell.ContextualLogger) Option {
	return func(s *Server) error {
		s.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for per-call metrics.
func WithMetrics(collector shell.MetricsCollector) Option {
	return func(s *Server) error {
		s.metrics = collector
		return nil
	}
}

// WithTracing sets the tracing collector for per-call spans.
func WithTracing(collector shell.TracingCollector) Option {
	return func(s *Server) error {
		s.tracing = collector
		return nil
	}
}

// WithServerOptions appends raw grpc.ServerOptions, e.g. keepalive settings.
func WithServerOptions(options ...grpc.ServerOption) Option {
	return func(s *Server) error {
		s.serverOptions = append(s.serverOptions, options...)
		return nil
	}
}

// NewServer creates a Server serving the given handlers.
func NewServer(handlers librarypb.LibraryServiceServer, options ...Option) (*Server, error) {
	if handlers == nil {
		return nil, errors.New("rpcserver: handlers must not be nil")
	}

	s := &Server{workers: DefaultWorkers}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	limit := newLimiter(s.workers, s.metrics)
	observe := &observer{
		logger:           s.logger,
		contextualLogger: s.contextualLogger,
		metrics:          s.metrics,
		tracing:          s.tracing,
	}

	serverOptions := append([]grpc.ServerOption{
		grpc.NumStreamWorkers(uint32(s.workers)),
		grpc.ChainUnaryInterceptor(limit.unary, observe.unary),
		grpc.ChainStreamInterceptor(limit.stream, observe.stream),
	}, s.serverOptions...)

	s.grpcServer = grpc.NewServer(serverOptions...)
	s.health = health.NewServer()

	librarypb.RegisterLibraryServiceServer(s.grpcServer, handlers)
	healthpb.RegisterHealthServer(s.grpcServer, s.health)
	s.health.SetServingStatus(librarypb.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return s, nil
}

// Serve accepts connections on lis until Stop or GracefulStop is called.
func (s *Server) Serve(lis net.Listener) error {
	err := s.grpcServer.Serve(lis)
	if errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}

	return err
}

// GracefulStop marks the service as not serving and waits for running calls to finish.
// When ctx ends first, the remaining calls are cut off.
func (s *Server) GracefulStop(ctx context.Context) {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.grpcServer.Stop()
		<-done
	}
}

// Stop closes all connections and cancels running calls.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpcServer.Stop()
}
