package config

import "time"

const (
	// MIN_SAMPLES and MAX_SAMPLES bound the sample window the panel accepts
	MIN_SAMPLES = 2
	MAX_SAMPLES = 50

	// DEFAULT_SAMPLES is the window size on startup
	DEFAULT_SAMPLES = 20

	// DEFAULT_INTERVAL is the time between auto-updates in seconds
	DEFAULT_INTERVAL = 10

	// DEFAULT_TIMEOUT is the provider query timeout in seconds
	DEFAULT_TIMEOUT = 5

	// ENV_PREFIX is prepended to every environment variable, e.g. MEMTOP_SAMPLES
	ENV_PREFIX = "memtop"
)

// DefaultInterval returns the auto-update interval as a time.Duration
func DefaultInterval() time.Duration {
	return time.Duration(DEFAULT_INTERVAL) * time.Second
}

// DefaultTimeout returns the query timeout as a time.Duration
func DefaultTimeout() time.Duration {
	return time.Duration(DEFAULT_TIMEOUT) * time.Second
}

// ClampSamples keeps n inside [MIN_SAMPLES, MAX_SAMPLES]
func ClampSamples(n int) int {
	if n < MIN_SAMPLES {
		return MIN_SAMPLES
	}
	if n > MAX_SAMPLES {
		return MAX_SAMPLES
	}
	return n
}
