// Package parallel provides bounded parallel loops for tensor kernels.
package parallel

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Maximum number of goroutines running at once.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// Sequential returns a config that always runs loops on the calling goroutine.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// Normalize fills in zero or negative fields with defaults.
func (c Config) Normalize() Config {
	if c.NumWorkers <= 0 {
		c.NumWorkers = runtime.NumCPU()
	}
	if c.MinChunkSize <= 0 {
		c.MinChunkSize = 1
	}
	return c
}

// workerPanic carries a value recovered from f on a worker goroutine.
type workerPanic struct {
	value any
}

func (p *workerPanic) Error() string {
	return fmt.Sprintf("parallel: worker panicked: %v", p.value)
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
// Every index is passed to f exactly once; For returns after all calls finish.
// A panic in f is re-raised on the calling goroutine with the original value.
func For(n int, f func(i int), cfg Config) {
	cfg = cfg.Normalize()
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize*2 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &workerPanic{value: r}
				}
			}()
			for i := start; i < end; i++ {
				f(i)
			}
			return nil
		})
	}
	// Workers only fail by panicking.
	if err := g.Wait(); err != nil {
		panic(err.(*workerPanic).value)
	}
}

// For2D executes f(r, c) for every cell of a rows x cols grid.
// Used for kernels whose output elements are independent, like matmul.
func For2D(rows, cols int, f func(r, c int), cfg Config) {
	if cols == 0 {
		return
	}
	For(rows*cols, func(k int) {
		f(k/cols, k%cols)
	}, cfg)
}
