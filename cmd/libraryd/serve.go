package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"github.com/AntonStoeckl/library-admin-rpc/catalog/oteladapters"
	"github.com/AntonStoeckl/library-admin-rpc/catalog/sqlengine"
	"github.com/AntonStoeckl/library-admin-rpc/credentials"
	"github.com/AntonStoeckl/library-admin-rpc/rpcserver"
	"github.com/AntonStoeckl/library-admin-rpc/shell/config"
)

const instrumentationName = "github.com/AntonStoeckl/library-admin-rpc"

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the library administration RPC service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.serve(ctx)
		},
	}

	cmd.Flags().String(flagListen, "", "address to listen on (default \":50051\")")
	cmd.Flags().Int(flagWorkers, 0, "number of calls served at the same time (default 10)")
	cmd.Flags().Bool(flagObservability, false, "export traces, metrics and logs over OTLP gRPC")

	return cmd
}

// instrumentation holds the options that plug logging, metrics and tracing into the store and the server.
type instrumentation struct {
	storeOptions  []sqlengine.Option
	serverOptions []rpcserver.Option
	shutdown      func()
}

func (a *app) instrument(ctx context.Context) (instrumentation, error) {
	logger := a.newLogger()

	if !a.cfg.Observability {
		return instrumentation{
			storeOptions:  []sqlengine.Option{sqlengine.WithLogger(logger)},
			serverOptions: []rpcserver.Option{rpcserver.WithLogger(logger)},
			shutdown:      func() {},
		}, nil
	}

	providers, err := config.NewObservabilityProviders(ctx, a.cfg, version)
	if err != nil {
		return instrumentation{}, err
	}

	logger.Info(logMsgObservability,
		logAttrTraces, a.cfg.TraceEndpoint,
		logAttrMetrics, a.cfg.MetricsEndpoint,
		logAttrLogs, a.cfg.LogsEndpoint,
	)

	metrics := oteladapters.NewMetricsCollector(otel.Meter(instrumentationName))
	tracing := oteladapters.NewTracingCollector(otel.Tracer(instrumentationName))
	contextualLogger := oteladapters.NewSlogBridgeLogger(instrumentationName, a.newLogHandler(),
		otelslog.WithLoggerProvider(providers.LoggerProvider),
		otelslog.WithVersion(version),
	)

	return instrumentation{
		storeOptions: []sqlengine.Option{
			sqlengine.WithContextualLogger(contextualLogger),
			sqlengine.WithMetrics(metrics),
			sqlengine.WithTracing(tracing),
		},
		serverOptions: []rpcserver.Option{
			rpcserver.WithContextualLogger(contextualLogger),
			rpcserver.WithMetrics(metrics),
			rpcserver.WithTracing(tracing),
		},
		shutdown: func() {
			if err := providers.Shutdown(); err != nil {
				logger.Warn(logMsgProviderFailure, logAttrError, err.Error())
			}
		},
	}, nil
}

func (a *app) serve(ctx context.Context) error {
	logger := a.newLogger()

	instr, err := a.instrument(ctx)
	if err != nil {
		return err
	}
	defer instr.shutdown()

	storage, err := config.OpenStorage(ctx, a.cfg, instr.storeOptions...)
	if err != nil {
		return err
	}
	defer storage.Close()

	if err := storage.Migrate(ctx); err != nil {
		return err
	}

	handlers, err := rpcserver.NewHandlers(
		storage.Books,
		storage.StaffAccounts,
		storage.Clients,
		credentials.NewAuthenticator(storage.StaffAccounts),
	)
	if err != nil {
		return err
	}

	server, err := rpcserver.NewServer(handlers, append(instr.serverOptions, rpcserver.WithWorkers(a.cfg.Workers))...)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", a.cfg.ListenAddress)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(logMsgServing,
			logAttrAddress, lis.Addr().String(),
			logAttrWorkers, a.cfg.Workers,
			logAttrDriver, a.cfg.Driver,
			logAttrVersion, version,
		)

		return server.Serve(lis)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info(logMsgShuttingDown)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()

		server.GracefulStop(shutdownCtx)

		return nil
	})

	err = g.Wait()
	logger.Info(logMsgStopped)

	return err
}
