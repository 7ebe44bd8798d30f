package service

import "time"

// OperationRecorder records the outcome of workflow operations for monitoring.
type OperationRecorder interface {
	// Observe records one finished operation.
	Observe(operation string, err error, elapsed time.Duration)

	// DevicesAffected records how many devices an operation changed.
	DevicesAffected(operation string, count int)
}
