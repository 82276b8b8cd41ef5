//go:build property

package watcher

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestDebouncerProperties checks batching invariants of the debouncer.
func TestDebouncerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(9876)
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	properties.Property("a burst becomes one batch with one event per path", prop.ForAll(
		func(ids []int) bool {
			if len(ids) == 0 {
				return true
			}

			d := NewDebouncer(15 * time.Millisecond)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go d.Run(ctx)

			unique := make(map[string]struct{})
			for _, id := range ids {
				path := fmt.Sprintf("/catalog-%d.yml", id)
				unique[path] = struct{}{}
				d.Add(ChangeEvent{Type: EventTypeModified, Path: path})
			}

			select {
			case batch := <-d.Output():
				if len(batch) != len(unique) {
					return false
				}
				return sort.SliceIsSorted(batch, func(i, j int) bool {
					return batch[i].Path < batch[j].Path
				})
			case <-time.After(2 * time.Second):
				return false
			}
		},
		gen.SliceOfN(20, gen.IntRange(0, 5)),
	))

	properties.TestingRun(t)
}
