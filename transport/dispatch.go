// File: dispatch.go
// Role: batch processing of base_requests (sequential, order-independent
// inserts) and stat_requests (spec.md §5 "parallel profile": answers are
// computed concurrently via errgroup, then reassembled in request order so
// the JSON answer array is still deterministic even though computation
// order is not).
package transport

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// LoadBase applies every base_requests item (AddStop/AddBus) in order.
// Stop requests are applied before Bus requests within the batch, since a
// bus's waybill may reference a stop declared later in the same document
// (spec.md §3 "Build-phase ordering is not guaranteed").
func (c *Catalog) LoadBase(reqs []Request) error {
	for _, r := range reqs {
		if r.Kind != KindAddStop {
			continue
		}
		if err := c.AddStop(r.Stop); err != nil {
			return err
		}
	}
	for _, r := range reqs {
		if r.Kind != KindAddBus {
			continue
		}
		if err := c.AddBus(r.Bus); err != nil {
			return err
		}
	}

	return nil
}

// ProcessBatch answers every stat_requests item and returns the answers
// in the same order as reqs, regardless of which goroutine finished
// first. A non-nil error here is a configuration error (spec.md §7,
// ErrUnknownRequestType or a Dijkstra precondition failure) — distinct
// from the in-band "not found" answers individual requests may carry.
//
// workers caps how many stat_requests are in flight at once (spec.md §5
// "parallel profile" worker pool); workers <= 0 means unbounded.
func (c *Catalog) ProcessBatch(ctx context.Context, reqs []Request, workers int) ([]interface{}, error) {
	answers := make([]interface{}, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, r := range reqs {
		i, r := i, r
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			answer, err := c.Process(r)
			if err != nil {
				return err
			}
			answers[i] = answer

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return answers, nil
}
