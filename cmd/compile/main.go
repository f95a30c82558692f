package main

import (
	"os"
	"time"

	"github.com/TypeDummying/AIuminum/pkg/compiler"
)

var (
	// Version of the build. This is injected at build-time.
	buildString = "unknown"
)

// Defaults mirror the stock incognito build of the browser.
const (
	defaultOutput = "incognito_cookies.dat"
	defaultCount  = 1000000
)

func main() {
	ko, err := initConfig()
	if err != nil {
		os.Stderr.WriteString("error loading config: " + err.Error() + "\n")
		os.Exit(1)
	}

	lo := initLogger(ko)
	lo.Info("starting cookie compiler", "version", buildString)

	out := ko.String("compiler.output")
	if out == "" {
		out = defaultOutput
	}

	opts := []compiler.Config{compiler.WithOutputPath(out)}
	if ko.String("app.log") == "debug" {
		opts = append(opts, compiler.WithDebug())
	}
	if dir := ko.String("compiler.temp_dir"); dir != "" {
		opts = append(opts, compiler.WithTempDir(dir))
	}
	if n := ko.Int("compiler.chunk_size"); n > 0 {
		opts = append(opts, compiler.WithChunkSize(n))
	}
	if n := ko.Int("compiler.max_workers"); n > 0 {
		opts = append(opts, compiler.WithMaxWorkers(n))
	}
	if ko.Bool("compiler.fsync") {
		opts = append(opts, compiler.WithAlwaysSync())
	}
	if ko.Bool("compiler.no_lock") {
		opts = append(opts, compiler.WithNoLock())
	}

	comp, err := compiler.Init(opts...)
	if err != nil {
		lo.Fatal("error initialising compiler", "error", err)
	}

	count := ko.Int("compiler.count")
	if count <= 0 {
		count = defaultCount
	}

	lo.Info("generating random cookies", "count", count)
	comp.GenerateRandom(count)

	start := time.Now()
	if err := comp.Compile(); err != nil {
		lo.Fatal("error compiling cookies", "error", err)
	}

	lo.Info("cookie compilation done", "path", out, "took", time.Since(start).String())
}
