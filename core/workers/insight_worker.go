// ABOUTME: Insight worker runs AI insight requests in a bounded background pool
// ABOUTME: Lets the reader open an article without waiting on the model

package workers

import (
	"context"
	"sync"
	"time"

	"biblicalman-api/core/domain"
	"biblicalman-api/core/interfaces"
)

// InsightJob asks for one article's insight. Done is called from a worker
// goroutine with the result.
type InsightJob struct {
	Article domain.Article
	Context context.Context
	Done    func(insight domain.Insight, err error)
}

// InsightWorker manages the background insight pool
type InsightWorker struct {
	generator     interfaces.InsightGenerator
	logger        interfaces.Logger
	jobQueue      chan *InsightJob
	maxWorkers    int
	jobTimeout    time.Duration
	submitTimeout time.Duration
	wg            sync.WaitGroup
	ctx           context.Context
	cancel        context.CancelFunc
	mu            sync.RWMutex
	running       bool
	stopped       bool
}

// WorkerConfig holds configuration for the insight worker
type WorkerConfig struct {
	MaxWorkers int
	QueueSize  int
	// JobTimeout bounds a single Generate call
	JobTimeout time.Duration
	// SubmitTimeout is how long Submit waits for queue space
	SubmitTimeout time.Duration
}

// DefaultWorkerConfig returns the default worker configuration
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		MaxWorkers:    4,
		QueueSize:     64,
		JobTimeout:    30 * time.Second,
		SubmitTimeout: time.Second,
	}
}

// NewInsightWorker creates a new insight worker
func NewInsightWorker(generator interfaces.InsightGenerator, logger interfaces.Logger, config WorkerConfig) *InsightWorker {
	defaults := DefaultWorkerConfig()
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = defaults.MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.JobTimeout <= 0 {
		config.JobTimeout = defaults.JobTimeout
	}
	if config.SubmitTimeout <= 0 {
		config.SubmitTimeout = defaults.SubmitTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &InsightWorker{
		generator:     generator,
		logger:        interfaces.LoggerOrNop(logger),
		jobQueue:      make(chan *InsightJob, config.QueueSize),
		maxWorkers:    config.MaxWorkers,
		jobTimeout:    config.JobTimeout,
		submitTimeout: config.SubmitTimeout,
		ctx:           ctx,
		cancel:        cancel,
	}
}

// Start starts the worker pool. A stopped pool cannot be restarted.
func (iw *InsightWorker) Start() error {
	iw.mu.Lock()
	defer iw.mu.Unlock()

	if iw.running {
		return nil
	}
	if iw.stopped {
		return ErrWorkerStopped
	}

	for i := 0; i < iw.maxWorkers; i++ {
		iw.wg.Add(1)
		go iw.run(i)
	}

	iw.running = true
	return nil
}

// Stop stops the worker pool and waits for in-flight jobs to return.
// Queued jobs that have not started are dropped.
func (iw *InsightWorker) Stop() error {
	iw.mu.Lock()
	defer iw.mu.Unlock()

	if !iw.running {
		return nil
	}

	iw.cancel()
	close(iw.jobQueue)
	iw.wg.Wait()

	iw.running = false
	iw.stopped = true
	return nil
}

// Submit queues a job, waiting briefly for space
func (iw *InsightWorker) Submit(job *InsightJob) error {
	iw.mu.RLock()
	defer iw.mu.RUnlock()

	if !iw.running {
		return ErrWorkerNotRunning
	}

	timer := time.NewTimer(iw.submitTimeout)
	defer timer.Stop()

	select {
	case iw.jobQueue <- job:
		return nil
	case <-timer.C:
		return ErrQueueFull
	}
}

// run is the main loop for each worker
func (iw *InsightWorker) run(id int) {
	defer iw.wg.Done()

	for {
		select {
		case job, ok := <-iw.jobQueue:
			if !ok {
				return
			}
			iw.process(id, job)
		case <-iw.ctx.Done():
			return
		}
	}
}

// process runs a single job
func (iw *InsightWorker) process(id int, job *InsightJob) {
	parent := job.Context
	if parent == nil {
		parent = iw.ctx
	}
	ctx, cancel := context.WithTimeout(parent, iw.jobTimeout)
	defer cancel()

	insight, err := iw.generator.Generate(ctx, job.Article)
	if err != nil {
		iw.logger.Warn("Insight generation failed", map[string]interface{}{
			"worker":     id,
			"article_id": job.Article.ID,
			"error":      err.Error(),
		})
	}

	if job.Done != nil {
		job.Done(insight, err)
	}
}

// Error definitions
var (
	ErrWorkerNotRunning = &WorkerError{Message: "worker pool is not running"}
	ErrWorkerStopped    = &WorkerError{Message: "worker pool has been stopped"}
	ErrQueueFull        = &WorkerError{Message: "job queue is full"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
