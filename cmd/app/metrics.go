package main

import (
	"context"

	"github.com/osse101/TextMaple_Go/internal/logger"
)

type runner interface {
	Run(ctx context.Context) error
}

// serveMetrics runs the metrics endpoint. A failure is logged and swallowed
// so that the game keeps running without it.
func serveMetrics(ctx context.Context, srv runner) error {
	if err := srv.Run(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgMetricsFailed, "error", err)
	}
	return nil
}
