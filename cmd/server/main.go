package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/breakout/internal/application"
	"github.com/eugenenazirov/breakout/internal/config"
	"github.com/eugenenazirov/breakout/internal/logging"
)

var signalNotify = signal.Notify

func main() {
	kingpinApp := kingpin.New("breakout", "Breakout tuning service - loads game tuning and serves it to gameplay tooling")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	assetsDir := kingpinApp.Flag("assets-dir", "Directory holding the bundled read-only assets").String()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()

	serveCmd := kingpinApp.Command("serve", "Serve the tuning inspector API").Default()
	port := serveCmd.Flag("port", "HTTP port exposed by the service").String()
	rateLimitRPSFlag := serveCmd.Flag("rate-limit-rps", "Requests per second allowed (set 0 to disable)").Default("-1").Float64()
	rateLimitBurstFlag := serveCmd.Flag("rate-limit-burst", "Burst capacity for rate limiter (set 0 to disable)").Default("-1").Int()

	dumpCmd := kingpinApp.Command("dump", "Print the loaded tuning and exit")
	format := dumpCmd.Flag("format", "Output format").Default(formatYAML).Enum(formatYAML, formatJSON, formatTOML)

	command := kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *assetsDir != "" {
		overrides.AssetsDir = assetsDir
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	if *port != "" {
		overrides.Port = port
	}

	if *rateLimitRPSFlag >= 0 {
		overrides.RateLimitRPS = rateLimitRPSFlag
	}

	if *rateLimitBurstFlag >= 0 {
		overrides.RateLimitBurst = rateLimitBurstFlag
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if command == dumpCmd.FullCommand() {
		if err := dump(os.Stdout, application.LoadTuning(cfg, logger), *format); err != nil {
			logger.Fatal("failed to dump tuning", zap.Error(err))
		}
		return
	}

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	if err := app.Start(); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}

	shutdown(app.Server(), cfg.ShutdownGracePeriod, logger, app.Close)
}

// shutdown blocks until a termination signal, drains the server and then
// runs release.
func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger, release func()) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
	if release != nil {
		release()
	}
}
