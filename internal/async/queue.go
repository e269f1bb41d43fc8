package async

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docuflow/idextract/constants"
	"github.com/docuflow/idextract/internal/common"
	"github.com/docuflow/idextract/internal/entity"
	"github.com/docuflow/idextract/internal/pipeline"
)

// Job is one file to run through the pipeline.
type Job struct {
	Path        string
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

var ErrQueueClosed = errors.New("queue is shut down")

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.size = n
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

// WithOnDone installs a completion callback, invoked once per job from the
// worker goroutine.
func WithOnDone(fn func(Job, *entity.Document, error)) Option {
	return func(q *ProcessorQueue) { q.onDone = fn }
}

// ProcessorQueue fans jobs out to a fixed pool of workers, each running the
// full pipeline on one file at a time.
type ProcessorQueue struct {
	processor *pipeline.Processor
	logger    *slog.Logger

	workers int
	size    int
	timeout time.Duration
	onDone  func(Job, *entity.Document, error)

	jobs chan Job
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewProcessorQueue(processor *pipeline.Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		processor: processor,
		logger:    logger,
		workers:   4,
		size:      256,
		timeout:   3 * time.Minute,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.jobs = make(chan Job, q.size)
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
	return q
}

func (q *ProcessorQueue) Enqueue(ctx context.Context, job Job) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	q.mu.Unlock()

	if job.TraceID == "" {
		job.TraceID = uuid.NewString()
	}
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}

	select {
	case q.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops accepting jobs and waits for in-flight work, or returns
// early when ctx expires.
func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		q.logger.Warn("queue.shutdown_timeout")
	}
}

func (q *ProcessorQueue) worker(id int) {
	defer q.wg.Done()
	for job := range q.jobs {
		doc, err := q.run(job)
		if err != nil {
			q.logger.Error("queue.job_failed", "worker", id, "path", job.Path, "trace_id", job.TraceID, "error", err)
		} else {
			q.logger.Info("queue.job_done", "worker", id, "path", job.Path, "trace_id", job.TraceID, "document_id", doc.ID)
		}
		if q.onDone != nil {
			q.onDone(job, doc, err)
		}
	}
}

func (q *ProcessorQueue) run(job Job) (*entity.Document, error) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()
	ctx = common.WithRequestID(ctx, job.TraceID)

	data, err := os.ReadFile(job.Path)
	if err != nil {
		return nil, err
	}
	ext := constants.NormalizeExt(filepath.Ext(job.Path))
	return q.processor.Process(ctx, pipeline.UploadRequest{
		Filename:  filepath.Base(job.Path),
		MediaType: constants.MapExtToMediaType(ext),
		Data:      data,
	})
}
