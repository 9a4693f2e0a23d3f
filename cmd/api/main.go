package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dental-scheduler/internal/audit"
	"github.com/BruksfildServices01/dental-scheduler/internal/auth"
	"github.com/BruksfildServices01/dental-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/dental-scheduler/internal/db"
	domain "github.com/BruksfildServices01/dental-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-scheduler/internal/handlers"
	"github.com/BruksfildServices01/dental-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/dental-scheduler/internal/logger"
	"github.com/BruksfildServices01/dental-scheduler/internal/metrics"
	"github.com/BruksfildServices01/dental-scheduler/internal/middleware"
	"github.com/BruksfildServices01/dental-scheduler/internal/routes"
	appointmentUC "github.com/BruksfildServices01/dental-scheduler/internal/usecase/appointment"
)

const auditQueueSize = 256

func main() {
	devToken := flag.String("token", "", "print a signed token for userID:role and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, 0)

	if *devToken != "" {
		if err := printToken(tokens, *devToken); err != nil {
			fmt.Fprintf(os.Stderr, "token: %v\n", err)
			os.Exit(1)
		}
		return
	}

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	os.Exit(exitCode(log, run(cfg, tokens, log)))
}

// exitCode flushes log before the process exits; os.Exit skips defers.
func exitCode(log *zap.Logger, err error) int {
	code := 0
	if err != nil {
		log.Error("server stopped", zap.Error(err))
		code = 1
	}
	_ = log.Sync()
	return code
}

func printToken(tokens *auth.TokenService, pair string) error {
	userID, role, ok := strings.Cut(pair, ":")
	if !ok {
		return errors.New("expected userID:role")
	}

	token, err := tokens.Issue(userID, role)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func run(cfg *config.Config, tokens *auth.TokenService, log *zap.Logger) error {
	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		return err
	}

	// ------------------------------
	// Wiring
	// ------------------------------
	dispatcher := audit.NewDispatcher(audit.New(db), log, auditQueueSize)
	repo := repository.NewAppointmentGormRepository(db)
	service := appointmentUC.NewService(
		repo,
		dispatcher,
		domain.ClinicHoursFromConfig(cfg),
		cfg.ClinicTimezone,
	)
	appointmentHandler := handlers.NewAppointmentHandler(service, log)
	httpMetrics := metrics.NewHTTP()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins()))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics(httpMetrics))

	r.GET("/metrics", gin.WrapH(httpMetrics.Handler()))
	routes.RegisterRoutes(r, appointmentHandler, auth.NewJWTProvider(tokens), log)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Error("audit drain", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}
