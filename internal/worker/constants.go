package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages shared by all workers
const (
	LogMsgWorkerShuttingDown     = "Shutting down worker"
	LogMsgWorkerShutdownComplete = "Worker shutdown complete"
	LogMsgWorkerShutdownTimeout  = "Worker shutdown timeout"
)

// ============================================================================
// Log Messages - Autosave Worker
// ============================================================================

// Log messages for autosave worker operations
const (
	LogMsgAutosaveScheduled     = "Autosave scheduled"
	LogMsgAutosaveStarting      = "Autosave starting"
	LogMsgAutosaveCompleted     = "Autosave completed"
	LogMsgAutosaveSkipped       = "Autosave skipped, previous save still pending"
	LogMsgAutosaveSessionClosed = "Autosave skipped, session closed"
)

// ============================================================================
// Autosave Configuration
// ============================================================================

const (
	autosaveWorkerName = "autosave worker"
	autosaveWorkers    = 1
	autosaveQueueSize  = 1

	// ShutdownTimeout bounds how long Run waits for an in-flight save
	ShutdownTimeout = 10 * time.Second
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
