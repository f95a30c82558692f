// Package compiler assembles in-memory cookies into a compiled cookie
// file, sharding the work across a bounded pool of chunk writers.
package compiler

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/TypeDummying/AIuminum/internal/datafile"
	"github.com/TypeDummying/AIuminum/pkg/cookie"
	"github.com/zerodha/logf"
)

const LOCK_SUFFIX = ".lock"

type Compiler struct {
	sync.Mutex

	lo   logf.Logger
	opts *Options
	rnd  *rand.Rand

	cookies   []cookie.Cookie // Pending cookies in insertion order.
	compiling atomic.Bool
}

// initLogger initializes logger instance.
func initLogger(debug bool) logf.Logger {
	opts := logf.Opts{EnableCaller: true}
	if debug {
		opts.Level = logf.DebugLevel
	}
	return logf.New(opts)
}

// Init initialises a compiler for assembling cookie files.
func Init(cfg ...Config) (*Compiler, error) {
	opts := DefaultOptions()
	for _, c := range cfg {
		if err := c(opts); err != nil {
			return nil, err
		}
	}

	c := &Compiler{
		lo:   initLogger(opts.debug),
		opts: opts,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	return c, nil
}

// Add appends a cookie to the set awaiting compilation.
func (c *Compiler) Add(ck cookie.Cookie) {
	c.Lock()
	defer c.Unlock()

	c.cookies = append(c.cookies, ck)
}

// Remove drops every pending cookie matching the given name and domain.
func (c *Compiler) Remove(name, domain string) {
	c.Lock()
	defer c.Unlock()

	kept := c.cookies[:0]
	for _, ck := range c.cookies {
		if ck.Name == name && ck.Domain == domain {
			continue
		}
		kept = append(kept, ck)
	}
	c.cookies = kept
}

// Clear drops every pending cookie.
func (c *Compiler) Clear() {
	c.Lock()
	defer c.Unlock()

	c.cookies = nil
}

// Len returns the number of cookies awaiting compilation.
func (c *Compiler) Len() int {
	c.Lock()
	defer c.Unlock()

	return len(c.cookies)
}

// Compile writes the pending cookies to the output file. Cookies are
// split into chunks, each chunk is serialised to its own temporary file
// by a pool of workers and the finished chunks are concatenated into
// the output in chunk order. Only one compilation may run at a time.
func (c *Compiler) Compile() error {
	if !c.compiling.CompareAndSwap(false, true) {
		return ErrCompileInProgress
	}
	defer c.compiling.Store(false)

	c.Lock()
	pending := make([]cookie.Cookie, len(c.cookies))
	copy(pending, c.cookies)
	c.Unlock()

	var (
		begin = time.Now()
		out   = c.opts.outputPath
		dir   = c.opts.tempDir
	)
	if dir == "" {
		dir = filepath.Dir(out)
	}

	// Hold an exclusive lock next to the output file so that two
	// processes cannot interleave chunks into the same output.
	if !c.opts.noLock {
		flockF, err := createFlockFile(out + LOCK_SUFFIX)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrLocked, err)
		}
		defer func() {
			if err := destroyFlockFile(flockF); err != nil {
				c.lo.Error("error destroying lock file", "error", err)
			}
		}()
	}

	numChunks := (len(pending) + c.opts.chunkSize - 1) / c.opts.chunkSize

	var (
		wg     sync.WaitGroup
		sem    = make(chan struct{}, c.opts.maxWorkers)
		chunks = make([]*datafile.ChunkFile, numChunks)
		errs   = make([]error, numChunks)
	)

	for i := 0; i < numChunks; i++ {
		from := i * c.opts.chunkSize
		to := from + c.opts.chunkSize
		if to > len(pending) {
			to = len(pending)
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, chunk []cookie.Cookie) {
			defer wg.Done()
			defer func() { <-sem }()

			cf, err := c.writeChunk(idx, chunk, dir)
			if err != nil {
				errs[idx] = err
				return
			}
			chunks[idx] = cf
		}(i, pending[from:to])
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			c.removeChunks(chunks)
			return fmt.Errorf("error writing cookie chunks: %w", err)
		}
	}

	if err := c.mergeChunks(chunks, out); err != nil {
		c.removeChunks(chunks)
		return err
	}

	c.lo.Info("compiled cookies",
		"count", len(pending), "chunks", numChunks, "path", out, "took", time.Since(begin).String())

	return nil
}

// writeChunk serialises one chunk of cookies into its temporary file.
func (c *Compiler) writeChunk(idx int, chunk []cookie.Cookie, dir string) (*datafile.ChunkFile, error) {
	cf, err := datafile.New(dir, idx)
	if err != nil {
		return nil, err
	}

	for _, ck := range chunk {
		if err := cf.WriteRecord(cookie.FormatLine(ck)); err != nil {
			cf.Close()
			return nil, fmt.Errorf("error writing record to chunk %d: %w", idx, err)
		}
	}

	if c.opts.alwaysFSync {
		if err := cf.Sync(); err != nil {
			cf.Close()
			return nil, fmt.Errorf("error syncing chunk %d: %w", idx, err)
		}
	}

	if err := cf.Close(); err != nil {
		return nil, fmt.Errorf("error closing chunk %d: %w", idx, err)
	}

	c.lo.Debug("wrote cookie chunk", "id", idx, "cookies", len(chunk), "bytes", cf.Size())

	return cf, nil
}

// mergeChunks concatenates the finished chunk files into the output
// file in chunk order, deleting each chunk once it has been copied.
func (c *Compiler) mergeChunks(chunks []*datafile.ChunkFile, out string) error {
	f, err := os.OpenFile(out, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening output file: %w", err)
	}

	for _, cf := range chunks {
		if err := cf.AppendTo(f); err != nil {
			f.Close()
			return err
		}
		if err := cf.Remove(); err != nil {
			f.Close()
			return fmt.Errorf("error removing chunk file: %w", err)
		}
	}

	if c.opts.alwaysFSync {
		if err := f.Sync(); err != nil {
			f.Close()
			return fmt.Errorf("error syncing output file: %w", err)
		}
	}

	return f.Close()
}

// removeChunks deletes whatever chunk files are still on disk after a
// failed compilation.
func (c *Compiler) removeChunks(chunks []*datafile.ChunkFile) {
	for _, cf := range chunks {
		if cf == nil {
			continue
		}
		if err := cf.Remove(); err != nil && !os.IsNotExist(err) {
			c.lo.Error("error removing chunk file", "path", cf.Path(), "error", err)
		}
	}
}
