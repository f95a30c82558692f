package compiler

import "fmt"

const (
	defaultOutputPath = "incognito_cookies.dat"
	defaultChunkSize  = 1000
	defaultMaxWorkers = 8
)

// Options represents configuration options for a cookie compiler.
type Options struct {
	debug       bool   // Enable debug logging.
	outputPath  string // Path of the compiled cookie file.
	tempDir     string // Directory for temporary chunk files. Defaults to the output file's directory.
	chunkSize   int    // Number of cookies written per chunk file.
	maxWorkers  int    // Maximum number of concurrent chunk writers.
	alwaysFSync bool   // Should flush filesystem buffers after every chunk.
	noLock      bool   // Skip the exclusive lock file around compilation.
}

// Config is a function on the Options for the compiler.
// These are used to configure particular options.
type Config func(*Options) error

func DefaultOptions() *Options {
	return &Options{
		debug:       false,
		outputPath:  defaultOutputPath,
		chunkSize:   defaultChunkSize,
		maxWorkers:  defaultMaxWorkers,
		alwaysFSync: false,
	}
}

func WithDebug() Config {
	return func(o *Options) error {
		o.debug = true
		return nil
	}
}

func WithOutputPath(path string) Config {
	return func(o *Options) error {
		if path == "" {
			return fmt.Errorf("output path cannot be empty")
		}
		o.outputPath = path
		return nil
	}
}

func WithTempDir(dir string) Config {
	return func(o *Options) error {
		o.tempDir = dir
		return nil
	}
}

func WithChunkSize(n int) Config {
	return func(o *Options) error {
		if n <= 0 {
			return fmt.Errorf("chunk size must be positive, got %d", n)
		}
		o.chunkSize = n
		return nil
	}
}

func WithMaxWorkers(n int) Config {
	return func(o *Options) error {
		if n <= 0 {
			return fmt.Errorf("max workers must be positive, got %d", n)
		}
		o.maxWorkers = n
		return nil
	}
}

func WithAlwaysSync() Config {
	return func(o *Options) error {
		o.alwaysFSync = true
		return nil
	}
}

func WithNoLock() Config {
	return func(o *Options) error {
		o.noLock = true
		return nil
	}
}
