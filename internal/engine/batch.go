package engine

import (
	"context"
	"sync"

	"github.com/androclassic/quantum-particle-simulation/internal/quantum"
)

// RunBatch evolves several initial states under the same engine
// configuration concurrently, one goroutine per state. Each run gets
// its own Engine so no scratch buffers are shared. The first error
// encountered is returned; ctx cancellation aborts runs that have not
// started.
func (e *Engine) RunBatch(ctx context.Context, seeds []quantum.Wavefunction, cond func() Condition) ([]*Trace, error) {
	traces := make([]*Trace, len(seeds))
	errs := make([]error, len(seeds))

	var wg sync.WaitGroup
	for i := range seeds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			run, err := New(e.grid, e.potential, e.cfg)
			if err != nil {
				errs[idx] = err
				return
			}
			var c Condition
			if cond != nil {
				c = cond()
			}
			traces[idx], errs[idx] = run.Run(seeds[idx], c)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return traces, nil
}
