package usecase

import "time"

const (
	// DefaultCacheTTL is how long cached charge results live when no TTL is configured
	DefaultCacheTTL = 24 * time.Hour

	// DefaultListLimit is the page size used when none is requested
	DefaultListLimit = 20

	// MaxListLimit caps requested page sizes
	MaxListLimit = 100
)
