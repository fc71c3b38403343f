package storage

import "tickScope/internal/model"

// Storage defines a sink for position metrics.
type Storage interface {
	PutMetricsBatch(metrics []model.PositionMetrics) error
}
