package main

import (
	"context"
	"fmt"
	"time"

	"github.com/docuflow/idextract/internal/repository"
)

// openStore connects to the configured database and returns the document
// repository plus a cleanup func. Commands that operate on stored documents
// all go through here.
func openStore(ctx context.Context) (repository.DocumentRepository, func(), error) {
	if cfg.Database.DSN == "" {
		return nil, nil, fmt.Errorf("DB_URL env var is required")
	}

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { repository.Close(entc, pool, logger) }

	if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		cleanup()
		return nil, nil, err
	}
	return repository.NewDocumentRepository(entc, logger), cleanup, nil
}
