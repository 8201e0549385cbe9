// Command passclipd serves the password generator over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/passclip/passclip-go/internal/config"
	"github.com/passclip/passclip-go/internal/crypto"
	"github.com/passclip/passclip-go/internal/handler"
	"github.com/passclip/passclip-go/internal/middleware"
	"github.com/passclip/passclip-go/internal/service"
)

var (
	errNoSecret = errors.New("API_SECRET must be set to issue tokens")
	errUsage    = errors.New("invalid usage")
)

type options struct {
	issueToken bool
	client     string
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if opts.issueToken {
		if err := printToken(os.Stdout, cfg, opts.client); err != nil {
			slog.Error("issuing token failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if !cfg.AuthEnabled() {
		if cfg.Env == "production" {
			slog.Error("API_SECRET must be set in production environment")
			os.Exit(1)
		}
		slog.Warn("API_SECRET not set, generate endpoint is unauthenticated")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, service.NewGeneratorService()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "auth", cfg.AuthEnabled())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	flagSet := pflag.NewFlagSet("passclipd", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() { printHelp(stderr, flagSet) }
	flagSet.StringVar(&opts.client, "issue-token", "", "print an API token for the named client and exit")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return options{}, err
		}
		return options{}, fmt.Errorf("%w: %w", errUsage, err)
	}

	if rest := flagSet.Args(); len(rest) > 0 {
		fmt.Fprintf(stderr, "unexpected argument: %s\n", rest[0])
		printHelp(stderr, flagSet)
		return options{}, errUsage
	}

	opts.issueToken = flagSet.Changed("issue-token")
	return opts, nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprint(w, `passclipd - password generator HTTP API

Serves POST /api/v1/generate and GET /health. Configuration comes from the
environment or a .env file: PORT, ENV, API_SECRET, TOKEN_EXPIRY,
RATE_LIMIT_RPS, RATE_LIMIT_BURST.

Usage:
  passclipd [flags]

Flags:
`)
	flagSet.PrintDefaults()
}

func newRouter(cfg config.Config, genService *service.GeneratorService) http.Handler {
	genHandler := handler.NewGeneratorHandler(genService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", handler.HandleHealth)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		if cfg.AuthEnabled() {
			r.Use(middleware.JWTAuth(cfg.APISecret))
		}
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})

	return r
}

func printToken(w io.Writer, cfg config.Config, client string) error {
	if !cfg.AuthEnabled() {
		return errNoSecret
	}
	if client == "" {
		client = "default"
	}

	token, err := crypto.GenerateToken(client, cfg.APISecret, cfg.TokenExpiry)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, token)
	return err
}
