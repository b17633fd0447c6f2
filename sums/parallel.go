package sums

import (
	"context"
	"runtime"
	"sync"

	"github.com/bcspragu/subsums"
	"github.com/bcspragu/subsums/combos"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// checkEvery is how many sequences a worker sums between context checks.
const checkEvery = 1 << 12

// ParallelSumsOfLength computes the same set as SumsOfLength, splitting the
// work by the value at the first position. Each first value is handed to one
// of workers goroutines, which sums the length k-1 suffixes on its own. If
// workers is less than one, runtime.NumCPU() is used.
func ParallelSumsOfLength(ctx context.Context, k int, alphabet []int, workers int) (subsums.SumSet, error) {
	if k < 0 {
		return nil, errors.Wrapf(subsums.ErrInvalidArgument, "sequence length %d is negative", k)
	}
	// Nothing to split.
	if k == 0 || len(alphabet) == 0 {
		return SumsOfLength(k, alphabet)
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	var (
		mu     sync.Mutex
		result = subsums.NewSumSet()
	)

	g, ctx := errgroup.WithContext(ctx)
	firsts := make(chan int)

	g.Go(func() error {
		defer close(firsts)
		for _, v := range alphabet {
			select {
			case firsts <- v:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			local := subsums.NewSumSet()
			for first := range firsts {
				it, err := combos.NewSequences(k-1, alphabet)
				if err != nil {
					return err
				}
				for n := 0; it.Next(); n++ {
					if n%checkEvery == 0 {
						if err := ctx.Err(); err != nil {
							return err
						}
					}
					local.Insert(first + it.Sum())
				}
			}

			mu.Lock()
			defer mu.Unlock()
			for v := range local {
				result.Insert(v)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
