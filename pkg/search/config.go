package search

import (
	"fmt"
	"time"
)

const (
	defaultThreshold  = 0.75
	defaultMaxResults = 100
	defaultTimeout    = 5 * time.Second
	defaultMinLatency = 500 * time.Millisecond
	defaultMaxLatency = 1500 * time.Millisecond
)

// Options represents configuration options for a search engine.
type Options struct {
	debug      bool          // Enable debug logging.
	threshold  float64       // Minimum relevance a result must score to be kept.
	maxResults int           // Maximum number of results returned.
	timeout    time.Duration // How long a search may run before it is abandoned.
	minLatency time.Duration // Lower bound of the simulated backend latency.
	maxLatency time.Duration // Upper bound of the simulated backend latency.
	domains    []string      // Mock result domains.
	keywords   []string      // Mock result keywords.
}

// Config is a function on the Options for the search engine.
// These are used to configure particular options.
type Config func(*Options) error

func DefaultOptions() *Options {
	return &Options{
		debug:      false,
		threshold:  defaultThreshold,
		maxResults: defaultMaxResults,
		timeout:    defaultTimeout,
		minLatency: defaultMinLatency,
		maxLatency: defaultMaxLatency,
	}
}

func WithDebug() Config {
	return func(o *Options) error {
		o.debug = true
		return nil
	}
}

func WithThreshold(v float64) Config {
	return func(o *Options) error {
		if v < 0 || v > 1 {
			return fmt.Errorf("relevance threshold must be within [0, 1], got %v", v)
		}
		o.threshold = v
		return nil
	}
}

func WithMaxResults(n int) Config {
	return func(o *Options) error {
		if n <= 0 {
			return fmt.Errorf("max results must be positive, got %d", n)
		}
		o.maxResults = n
		return nil
	}
}

func WithTimeout(d time.Duration) Config {
	return func(o *Options) error {
		if d <= 0 {
			return fmt.Errorf("search timeout must be positive, got %s", d)
		}
		o.timeout = d
		return nil
	}
}

func WithLatencyRange(min, max time.Duration) Config {
	return func(o *Options) error {
		if min < 0 || max < min {
			return fmt.Errorf("invalid latency range [%s, %s]", min, max)
		}
		o.minLatency = min
		o.maxLatency = max
		return nil
	}
}

func WithCorpus(domains, keywords []string) Config {
	return func(o *Options) error {
		o.domains = domains
		o.keywords = keywords
		return nil
	}
}
