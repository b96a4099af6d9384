package smoke

import "time"

// Config holds configuration for a smoke run.
type Config struct {
	BaseURL    string        // Base URL of the service
	Selections int           // Number of random selections to issue
	Top        int           // Expected tally size limit, 0 reads it from /stats
	Workers    int           // Number of concurrent requests
	Timeout    time.Duration // HTTP request timeout
	Seed       uint64        // Seed of the selection generator, 0 is random
	Verbose    bool          // Log every selection
}

// Defaults for the command line flags.
const (
	DefaultBaseURL    = "http://localhost:9080"
	DefaultSelections = 200
	DefaultWorkers    = 8
	DefaultTimeout    = 10 * time.Second
)

// Stats holds smoke run statistics.
type Stats struct {
	Selections   int
	Verified     int
	Violations   int
	Failed       int
	EmptyResults int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
}
