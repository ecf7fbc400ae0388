// Package runner fans a list of files out to digest workers.
package runner

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	"github.com/bamsammich/sha2sum"
)

// DefaultWorkers is used when Config.Workers is unset.
const DefaultWorkers = 4

// Config controls a digest pass.
type Config struct {
	Algorithm    sha2sum.Algorithm
	Workers      int // number of concurrent workers (default DefaultWorkers)
	MaxPerSecond int // files hashed per second across all workers; 0 = no throttle
}

// Result is the outcome for a single input path. Exactly one of Sum and
// Err is meaningful.
type Result struct {
	Path string
	Sum  string
	Err  error
}

// Run digests every path and returns one Result per input, in input
// order. One file failing does not stop the others; cancellation of ctx
// stops scheduling and marks unfinished entries with ctx.Err().
func Run(ctx context.Context, paths []string, cfg Config) []Result {
	results := make([]Result, len(paths))
	for i, p := range paths {
		results[i].Path = p
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	var limiter *rate.Limiter
	if cfg.MaxPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.MaxPerSecond), 1)
	}

	tasks := make(chan int)
	go func() {
		defer close(tasks)
		for i := range paths {
			select {
			case tasks <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				if limiter != nil {
					if err := limiter.Wait(ctx); err != nil {
						results[i].Err = err
						continue
					}
				}
				sum, err := sha2sum.FileContext(ctx, results[i].Path, cfg.Algorithm)
				results[i].Sum, results[i].Err = sum, err
			}
		}()
	}
	wg.Wait()

	// Inputs never handed to a worker still need a terminal state.
	if ctx.Err() != nil {
		for i := range results {
			if results[i].Sum == "" && results[i].Err == nil {
				results[i].Err = ctx.Err()
			}
		}
	}
	return results
}
