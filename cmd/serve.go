/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/compflow/server"
)

const defaultShutdownTimeout = 30 * time.Second

// ServeCmd represents the serve command
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the flow relations over HTTP/JSON",
	Long: `
Starts the HTTP API with one POST endpoint per flow type under /api and a health check at /health.
SIGINT or SIGTERM drains in-flight requests before exiting.

compflow serve --listen :8080 --requestTimeout 5s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(viper.GetString("logLevel"))
		if err != nil {
			return err
		}
		os.Exit(Serve(logger))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ServeCmd)
	ServeCmd.Flags().StringP("listen", "l", server.DefaultListen, "address to listen on")
	ServeCmd.Flags().Duration("requestTimeout", server.DefaultRequestTimeout, "time limit of one computation")
	ServeCmd.Flags().Duration("shutdownTimeout", defaultShutdownTimeout, "time allowed to drain requests on shutdown")
	for _, key := range []string{"listen", "requestTimeout", "shutdownTimeout"} {
		_ = viper.BindPFlag(key, ServeCmd.Flags().Lookup(key))
	}
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

// Serve runs the API until a termination signal and returns the process exit code
func Serve(logger *slog.Logger) int {
	shutdownTimeout := viper.GetDuration("shutdownTimeout")
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		logger.Error("failed to create mono application", "error", err)
		return 1
	}

	app.Register(server.NewModule(server.Config{
		Listen:         viper.GetString("listen"),
		RequestTimeout: viper.GetDuration("requestTimeout"),
		Tolerance:      viper.GetFloat64("tolerance"),
		MaxIterations:  viper.GetInt("maxIterations"),
		AccessLog:      os.Stdout,
	}, logger))

	if err = app.Start(context.Background()); err != nil {
		logger.Error("failed to start application", "error", err)
		return 1
	}
	logger.Info("compflow API started", "listen", viper.GetString("listen"))

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				logger.Info("graceful shutdown initiated")
				return app.Stop(ctx)
			},
		},
	)
	exitCode := <-wait
	logger.Info("application exited", "code", exitCode)
	return exitCode
}
