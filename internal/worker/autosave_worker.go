package worker

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/logger"
)

// Saver persists the current game state
type Saver interface {
	Save(ctx context.Context) error
}

// AutosaveWorker saves the game on a fixed interval. Saves run on a
// single-worker pool; a tick that arrives while a save is still queued is skipped.
type AutosaveWorker struct {
	BaseWorker
	saver    Saver
	interval time.Duration
	pool     *Pool
}

// NewAutosaveWorker creates a worker that calls saver.Save every interval
func NewAutosaveWorker(saver Saver, interval time.Duration) *AutosaveWorker {
	w := &AutosaveWorker{
		saver:    saver,
		interval: interval,
		pool:     NewPool(autosaveWorkers, autosaveQueueSize),
	}
	w.init()
	return w
}

// Start begins the ticker loop
func (w *AutosaveWorker) Start() {
	w.pool.Start()
	w.wg.Add(1)
	go w.loop()
	logger.FromContext(context.Background()).Info(LogMsgAutosaveScheduled, "interval", w.interval)
}

func (w *AutosaveWorker) loop() {
	defer w.wg.Done()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !w.pool.TryEnqueue(&saveJob{saver: w.saver}) {
				logger.FromContext(context.Background()).Warn(LogMsgAutosaveSkipped)
			}
		case <-w.stopping():
			return
		}
	}
}

// Shutdown stops the ticker and waits for an in-flight save to finish
func (w *AutosaveWorker) Shutdown(ctx context.Context) error {
	err := w.shutdownInternal(ctx, autosaveWorkerName)

	stopped := make(chan struct{})
	go func() {
		w.pool.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run starts the worker and blocks until ctx is cancelled, then shuts down
func (w *AutosaveWorker) Run(ctx context.Context) error {
	w.Start()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return w.Shutdown(shutdownCtx)
}

// saveJob is one autosave
type saveJob struct {
	saver Saver
}

func (j *saveJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgAutosaveStarting)

	err := j.saver.Save(ctx)
	if errors.Is(err, domain.ErrSessionClosed) {
		log.Debug(LogMsgAutosaveSessionClosed)
		return nil
	}
	if err != nil {
		return err
	}

	log.Info(LogMsgAutosaveCompleted)
	return nil
}
