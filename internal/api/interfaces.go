package api

import "context"

// HealthChecker reports the state of the storage behind the services.
type HealthChecker interface {
	Ping(ctx context.Context) error
	// Degraded is true while writes are refused.
	Degraded() bool
}
