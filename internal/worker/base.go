package worker

import (
	"context"
	"sync"

	"github.com/osse101/TextMaple_Go/internal/logger"
)

// BaseWorker provides the shutdown signal and in-flight tracking shared by background workers
type BaseWorker struct {
	once     sync.Once
	shutdown chan struct{}
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

// stopping is closed once shutdown has begun
func (w *BaseWorker) stopping() <-chan struct{} {
	return w.shutdown
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgWorkerShuttingDown, "worker", workerName)

	w.once.Do(func() { close(w.shutdown) })

	// Wait for in-flight executions
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgWorkerShutdownComplete, "worker", workerName)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgWorkerShutdownTimeout, "worker", workerName)
		return ctx.Err()
	}
}
