package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "MemoryStoryAgent/docs"
	"MemoryStoryAgent/internal/agent"
	"MemoryStoryAgent/internal/auth"
	"MemoryStoryAgent/internal/config"
	"MemoryStoryAgent/internal/handler"
	"MemoryStoryAgent/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

// @title           Memory Story Agent API
// @version         1.0
// @description     회상 내용을 바탕으로 이야기, 음성, 이미지, 플레이리스트를 생성하는 API
// @host            localhost:5009
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:           "api",
		Short:         "Memory Story Agent HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
				return err
			}
			defer logger.Sync() //nolint:errcheck
			zap.ReplaceGlobals(logger)

			if err := run(cmd.Context(), envFile, verbose, logger); err != nil {
				logger.Error("server stopped with error", zap.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "path to a .env file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func run(ctx context.Context, envFile string, verbose bool, logger *zap.Logger) error {
	if err := config.LoadEnv(envFile); err != nil {
		logger.Warn(".env file not loaded, using process environment", zap.String("path", envFile), zap.Error(err))
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.Store.Backend, err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Warn("closing store", zap.Error(err))
		}
	}()
	logger.Info("profile store ready", zap.String("backend", cfg.Store.Backend))

	providers, closeProviders, err := newProviders(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeProviders()

	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, auth.DefaultTokenTTL)
	if err != nil {
		return err
	}

	service := agent.NewService(store, providers, tokens, modelsFromConfig(cfg), logger.Named("agent"))

	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	routerCfg := handler.RouterConfig{
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   rate.Limit(cfg.RateLimitRPS),
		RateBurst:   cfg.RateLimitBurst,
		Logger:      logger.Named("http"),
	}
	if cfg.RequireAuth {
		routerCfg.Tokens = tokens
	}
	router := handler.NewRouter(handler.NewHandler(service, logger.Named("handler")), routerCfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", srv.Addr),
			zap.String("textProvider", cfg.TextProvider),
			zap.String("speechProvider", cfg.SpeechProvider),
			zap.Bool("requireAuth", cfg.RequireAuth))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
