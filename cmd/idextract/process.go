package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/docuflow/idextract/constants"
	"github.com/docuflow/idextract/internal/async"
	"github.com/docuflow/idextract/internal/classify"
	"github.com/docuflow/idextract/internal/entity"
	"github.com/docuflow/idextract/internal/extract"
	"github.com/docuflow/idextract/internal/fields"
	"github.com/docuflow/idextract/internal/imaging"
	"github.com/docuflow/idextract/internal/llm/openai"
	"github.com/docuflow/idextract/internal/pipeline"
	"github.com/docuflow/idextract/internal/repository"
	"github.com/docuflow/idextract/internal/storage"
)

var (
	processDir     string
	processWorkers int
	processAsJSON  bool
)

var processCmd = &cobra.Command{
	Use:   "process [files...]",
	Short: "Run documents through the extraction pipeline",
	Long:  "Processes image or PDF files and prints the extracted fields. Results are kept in memory unless DB_URL points at a database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY env var is required")
		}

		paths, err := collectPaths(args, processDir)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no files to process; pass file arguments or --dir")
		}

		processor, _, cleanup, err := buildProcessor(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		var mu sync.Mutex
		failures := 0
		queue := async.NewProcessorQueue(processor, logger,
			async.WithWorkers(processWorkers),
			async.WithQueueSize(len(paths)),
			async.WithProcessTimeout(3*time.Minute),
			async.WithOnDone(func(job async.Job, doc *entity.Document, err error) {
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					failures++
					fmt.Fprintf(os.Stderr, "%s: %v\n", job.Path, err)
					return
				}
				printDocument(job.Path, doc)
			}),
		)
		for _, p := range paths {
			if err := queue.Enqueue(ctx, async.Job{Path: p}); err != nil {
				queue.Shutdown(context.Background())
				return err
			}
		}
		queue.Shutdown(context.Background())

		if failures > 0 {
			return fmt.Errorf("%d of %d documents failed", failures, len(paths))
		}
		return nil
	},
}

func init() {
	processCmd.Flags().StringVar(&processDir, "dir", "", "process every supported file in a directory")
	processCmd.Flags().IntVar(&processWorkers, "workers", 4, "number of concurrent pipeline workers")
	processCmd.Flags().BoolVar(&processAsJSON, "json", false, "print full document JSON instead of a summary")
}

func collectPaths(args []string, dir string) ([]string, error) {
	paths := append([]string{}, args...)
	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			ext := constants.NormalizeExt(filepath.Ext(e.Name()))
			if _, ok := constants.AllowedExtensions[ext]; ok {
				paths = append(paths, filepath.Join(dir, e.Name()))
			}
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// buildProcessor wires the pipeline against the configured database, or an
// in-memory store when DB_URL is unset.
func buildProcessor(ctx context.Context) (*pipeline.Processor, repository.DocumentRepository, func(), error) {
	cleanup := func() {}

	var documents repository.DocumentRepository
	if cfg.Database.DSN != "" {
		entc, pool, err := repository.Open(ctx, repository.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		cleanup = func() { repository.Close(entc, pool, logger) }
		documents = repository.NewDocumentRepository(entc, logger)
	} else {
		documents = repository.NewMemoryRepository()
	}

	store, err := storage.NewFileStore(cfg.Storage.UploadDir, logger)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}

	recognizer := openai.NewClient(openai.Config{
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	processor := pipeline.NewProcessor(
		imaging.NewNormalizer(imaging.Config{MaxWidth: cfg.Pipeline.MaxImageWidth}, logger),
		classify.New(recognizer, logger),
		extract.New(recognizer, extract.Config{ConfidenceThreshold: cfg.Pipeline.FieldConfidenceThreshold}, logger),
		fields.NewNormalizer(logger),
		store,
		documents,
		logger,
	)
	return processor, documents, cleanup, nil
}

func printDocument(path string, doc *entity.Document) {
	if processAsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(doc)
		return
	}

	review := ""
	if doc.RequiresReview() {
		review = " (requires review)"
	}
	fmt.Printf("%s: %s, confidence %.2f%s\n", path, doc.DocumentType.DisplayName(), doc.Confidence, review)
	for _, f := range doc.Fields {
		marker := ""
		if f.NeedsReview() {
			marker = " *"
		}
		fmt.Printf("  %-20s %s%s\n", f.FieldName+":", f.EffectiveValue(), marker)
	}
	if strings.TrimSpace(doc.StoredFileRef) != "" {
		fmt.Printf("  normalized image: %s\n", doc.StoredFileRef)
	}
}
