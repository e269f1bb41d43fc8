package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	documentspb "github.com/docuflow/idextract/gen/proto/documents/v1"
	"github.com/docuflow/idextract/internal/classify"
	"github.com/docuflow/idextract/internal/common"
	"github.com/docuflow/idextract/internal/export"
	"github.com/docuflow/idextract/internal/extract"
	"github.com/docuflow/idextract/internal/fields"
	"github.com/docuflow/idextract/internal/httpapi"
	"github.com/docuflow/idextract/internal/imaging"
	"github.com/docuflow/idextract/internal/llm/openai"
	"github.com/docuflow/idextract/internal/pipeline"
	repo "github.com/docuflow/idextract/internal/repository"
	svc "github.com/docuflow/idextract/internal/server"
	"github.com/docuflow/idextract/internal/storage"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewFileStore(cfg.Storage.UploadDir, logger)
	if err != nil {
		logger.Error("failed to create file store", "error", err)
		os.Exit(1)
	}

	recognizer := openai.NewClient(openai.Config{
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	documents := repo.NewDocumentRepository(entc, logger)
	processor := pipeline.NewProcessor(
		imaging.NewNormalizer(imaging.Config{MaxWidth: cfg.Pipeline.MaxImageWidth}, logger),
		classify.New(recognizer, logger),
		extract.New(recognizer, extract.Config{ConfidenceThreshold: cfg.Pipeline.FieldConfidenceThreshold}, logger),
		fields.NewNormalizer(logger),
		store,
		documents,
		logger,
	)
	exporter := export.NewService(documents, logger)

	grpcServer := grpc.NewServer()
	documentspb.RegisterDocumentsServiceServer(grpcServer, svc.NewDocumentService(processor, documents, exporter, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           httpapi.NewHandler(processor, documents, store, exporter, logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
		if err != nil {
			return err
		}
		logger.Info("grpc listening", "addr", cfg.Server.GRPCAddr)
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		logger.Info("http listening", "addr", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
		grpcServer.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
