// Package search implements the simulated page search demo of the
// Aluminum browser: it sanitises a query, fabricates mock results on a
// background worker and ranks them by a term-overlap heuristic.
package search

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/zerodha/logf"
)

// Result is a single ranked search hit.
type Result struct {
	URL       string
	Title     string
	Relevance float64
}

type Engine struct {
	sync.Mutex

	lo   logf.Logger
	opts *Options
	rnd  *rand.Rand

	query string
}

// queryClean strips every character outside lowercase alphanumerics and
// whitespace from a sanitised query.
var queryClean = regexp.MustCompile(`[^a-z0-9\s]+`)

// initLogger initializes logger instance.
func initLogger(debug bool) logf.Logger {
	opts := logf.Opts{EnableCaller: true}
	if debug {
		opts.Level = logf.DebugLevel
	}
	return logf.New(opts)
}

// New initialises a search engine.
func New(cfg ...Config) (*Engine, error) {
	opts := DefaultOptions()
	for _, c := range cfg {
		if err := c(opts); err != nil {
			return nil, err
		}
	}

	e := &Engine{
		lo:   initLogger(opts.debug),
		opts: opts,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	return e, nil
}

// SetQuery stores the search query after sanitising it: surrounding
// whitespace is trimmed, the text is lowercased and every character
// outside [a-z0-9 ] is dropped.
func (e *Engine) SetQuery(q string) {
	q = strings.TrimSpace(q)
	q = strings.ToLower(q)
	q = queryClean.ReplaceAllString(q, "")

	e.Lock()
	defer e.Unlock()

	e.query = q
}

// Query returns the sanitised query currently set on the engine.
func (e *Engine) Query() string {
	e.Lock()
	defer e.Unlock()

	return e.query
}

// Search runs the simulated search and returns the ranked results. The
// synthesis happens on a background worker; Search waits for it up to
// the configured timeout. An empty (or fully sanitised away) query is
// rejected.
func (e *Engine) Search(ctx context.Context) ([]Result, error) {
	e.Lock()
	var (
		query = e.query
		seed  = e.rnd.Int63()
	)
	e.Unlock()

	if query == "" {
		return nil, ErrEmptyQuery
	}

	ctx, cancel := context.WithTimeout(ctx, e.opts.timeout)
	defer cancel()

	// Buffered so an abandoned worker can still deliver and exit.
	ch := make(chan []Result, 1)
	go func() {
		ch <- e.synthesize(query, rand.New(rand.NewSource(seed)))
	}()

	select {
	case results := <-ch:
		e.lo.Debug("search finished", "query", query, "results", len(results))
		return results, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrSearchTimeout
		}
		return nil, ctx.Err()
	}
}

// synthesize fabricates raw results from the mock corpus after a
// simulated backend delay and hands them to the ranking pass. An empty
// corpus produces no results.
func (e *Engine) synthesize(query string, rnd *rand.Rand) []Result {
	if d := e.latency(rnd); d > 0 {
		time.Sleep(d)
	}

	if len(e.opts.domains) == 0 || len(e.opts.keywords) == 0 {
		return nil
	}

	raw := make([]Result, 0, e.opts.maxResults)
	for i := 0; i < e.opts.maxResults; i++ {
		var (
			domain = e.opts.domains[rnd.Intn(len(e.opts.domains))]
			kw1    = e.opts.keywords[rnd.Intn(len(e.opts.keywords))]
			kw2    = e.opts.keywords[rnd.Intn(len(e.opts.keywords))]
			kw3    = e.opts.keywords[rnd.Intn(len(e.opts.keywords))]
		)
		raw = append(raw, Result{
			URL:   "https://www." + domain + "/" + kw1,
			Title: kw2 + " " + kw3 + " - " + domain,
		})
	}

	return e.rank(query, raw)
}

// rank scores every raw result, drops those below the relevance
// threshold and orders the rest by descending relevance, truncated to
// the configured maximum.
func (e *Engine) rank(query string, raw []Result) []Result {
	ranked := raw[:0]
	for _, r := range raw {
		r.Relevance = relevance(query, r.URL, r.Title)
		if r.Relevance < e.opts.threshold {
			continue
		}
		ranked = append(ranked, r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Relevance > ranked[j].Relevance
	})

	if len(ranked) > e.opts.maxResults {
		ranked = ranked[:e.opts.maxResults]
	}

	return ranked
}

// relevance scores how well a result matches the query: 0.2 for every
// query term contained in the result text plus 0.5 when the whole
// phrase appears, capped at 1.0.
func relevance(query, url, title string) float64 {
	combined := strings.ToLower(url + " " + title)

	var score float64
	for _, term := range strings.Fields(query) {
		if strings.Contains(combined, term) {
			score += 0.2
		}
	}
	if strings.Contains(combined, query) {
		score += 0.5
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// latency picks the simulated backend delay for one search.
func (e *Engine) latency(rnd *rand.Rand) time.Duration {
	min, max := e.opts.minLatency, e.opts.maxLatency
	if max <= min {
		return min
	}
	return min + time.Duration(rnd.Int63n(int64(max-min)))
}
