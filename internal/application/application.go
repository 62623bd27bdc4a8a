package application

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/breakout/internal/api"
	"github.com/eugenenazirov/breakout/internal/audio"
	"github.com/eugenenazirov/breakout/internal/bundle"
	"github.com/eugenenazirov/breakout/internal/config"
	"github.com/eugenenazirov/breakout/internal/tuning"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	tuning  api.Tuning
	sound   *audio.Context
	speaker *audio.Object
	handler *api.Handler
	router  http.Handler
	logger  *zap.Logger
	server  *http.Server
}

// LoadTuning reads the tuning asset named by cfg. It always yields a usable
// record; Result says how much of it came from the asset. An assets dir that
// cannot be resolved is used as given, so the open fails and defaults apply.
func LoadTuning(cfg config.Config, logger *zap.Logger) api.Tuning {
	if dir, err := bundle.Resolve(cfg.AssetsDir); err == nil {
		cfg.AssetsDir = dir
	}
	path := cfg.TuningPath()
	rec, res := tuning.NewLoader(logger).Load(path)
	return api.Tuning{Record: rec, Result: res, Source: path}
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	tun := LoadTuning(cfg, logger)

	sound := audio.NewContext()
	speaker := &audio.Object{Name: "GameAudioSource"}
	boot := audio.NewBootstrap(sound, func() audio.Output {
		return audio.NewLogOutput(logger.Named("audio"))
	}, logger)
	boot.Activate(speaker)

	handler := api.NewHandler(tun, sound)
	apiRouter := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	return &App{
		tuning:  tun,
		sound:   sound,
		speaker: speaker,
		handler: handler,
		router:  apiRouter,
		logger:  logger,
		server:  NewServer(cfg, apiRouter),
	}, nil
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// Tuning returns the tuning loaded at startup.
func (a *App) Tuning() api.Tuning {
	return a.tuning
}

// Audio returns the process-wide audio context.
func (a *App) Audio() *audio.Context {
	return a.sound
}

// Close tears down the audio speaker. The audio context stays initialized;
// it lives for the rest of the process.
func (a *App) Close() {
	a.speaker.Destroy()
	a.logger.Info("audio speaker released", zap.String("name", a.speaker.Name))
}
