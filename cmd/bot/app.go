package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"chanager/internal/adapters/discord"
	"chanager/internal/adapters/discord/commands"
	"chanager/internal/config"

	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	config             *config.Config
	discord            *discordgo.Session
	gateway            *discord.Gateway
	router             *commands.Router
	metricsServer      *http.Server
	registeredCommands []*discordgo.ApplicationCommand
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	session, err := discord.NewSession(cfg)
	if err != nil {
		return nil, err
	}

	gateway := discord.NewGateway(session)

	router := commands.NewRouter()
	commands.NewBotHandler(gateway).Register(router)

	pins := discord.NewPinNoticeFilter(gateway)

	session.AddHandler(commands.ReadyHandler)
	session.AddHandler(router.HandleFunc())
	session.AddHandler(pins.HandleFunc())

	return &App{
		config:  cfg,
		discord: session,
		gateway: gateway,
		router:  router,
	}, nil
}

func (a *App) Run() error {
	if err := a.discord.Open(); err != nil {
		slog.Error("Failed to open discord session", "error", err)
		return err
	}

	a.registeredCommands = commands.RegisterCommands(
		a.discord,
		commands.GetApplicationCommands(),
		a.discord.State.User.ID,
		a.config.DiscordGuildID,
	)

	a.startMetricsServer()

	return nil
}

func (a *App) startMetricsServer() {
	if a.config.MetricsAddr == "" {
		slog.Info("Metrics server disabled")
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	a.metricsServer = &http.Server{
		Addr:              a.config.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("Starting metrics server", "addr", a.config.MetricsAddr)
		if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", "error", err)
		}
	}()
}

// Shutdown removes the registered commands and closes the gateway session
// and metrics server. Components that were never started are skipped.
func (a *App) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down...")

	var errs []error

	if a.discord != nil {
		if a.discord.State != nil && a.discord.State.User != nil {
			commands.CleanupCommands(a.discord, a.registeredCommands, a.discord.State.User.ID, a.config.DiscordGuildID)
		}
		if err := a.discord.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
