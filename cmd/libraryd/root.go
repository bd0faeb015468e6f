package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/AntonStoeckl/library-admin-rpc/shell/config"
)

const (
	flagDriver        = "driver"
	flagDSN           = "dsn"
	flagReplicaDSN    = "replica-dsn"
	flagLogLevel      = "log-level"
	flagListen        = "listen"
	flagWorkers       = "workers"
	flagObservability = "observability"
)

// envForFlag maps each configuration flag to the environment variable it overrides.
var envForFlag = map[string]string{
	flagDriver:        config.EnvDriver,
	flagDSN:           config.EnvDSN,
	flagReplicaDSN:    config.EnvReplicaDSN,
	flagLogLevel:      config.EnvLogLevel,
	flagListen:        config.EnvListenAddress,
	flagWorkers:       config.EnvWorkers,
	flagObservability: config.EnvObservability,
}

// app carries what every sub command shares.
type app struct {
	cfg       config.ServerConfig
	lookupEnv func(string) (string, bool)
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) *cobra.Command {
	a := &app{lookupEnv: lookupEnv, stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:          "libraryd",
		Short:        "Library administration RPC service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd.Flags())
		},
	}

	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.String(flagDriver, config.DriverSQLite, "storage driver: postgres, postgres-sql, postgres-sqlx, sqlite or memory")
	flags.String(flagDSN, "", "database DSN, or the database file for sqlite")
	flags.String(flagReplicaDSN, "", "read replica DSN (postgres driver only)")
	flags.String(flagLogLevel, "info", "log level: debug, info, warn or error")

	root.AddCommand(
		newServeCommand(a),
		newMigrateCommand(a),
		newCreateStaffCommand(a),
	)

	return root
}

// loadConfig reads the LIBRARY_* environment, with every explicitly set flag taking precedence.
func (a *app) loadConfig(flags *pflag.FlagSet) error {
	overridden := make(map[string]string)

	for flagName, envName := range envForFlag {
		if f := flags.Lookup(flagName); f != nil && f.Changed {
			overridden[envName] = f.Value.String()
		}
	}

	cfg, err := config.LoadServerConfig(func(key string) (string, bool) {
		if value, ok := overridden[key]; ok {
			return value, true
		}

		return a.lookupEnv(key)
	})
	if err != nil {
		return err
	}

	a.cfg = cfg

	return nil
}

func (a *app) newLogger() *slog.Logger {
	return slog.New(a.newLogHandler())
}

func (a *app) newLogHandler() slog.Handler {
	return slog.NewJSONHandler(a.stderr, &slog.HandlerOptions{Level: a.cfg.LogLevel})
}
