package core

import (
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkgroupSize is the fixed edge length of the square workgroups every
// kernel is dispatched with.
const WorkgroupSize = 8

// Kernel is the per-invocation body of a compute pass. It receives global
// invocation coordinates, which can exceed the grid when the index space is
// rounded up to whole workgroups; bounds handling is the kernel's (or the
// texture access contract's) responsibility.
type Kernel func(x, y int)

// Dispatcher fans kernel invocations out over a bounded pool of goroutines,
// one workgroup at a time. A dispatch only returns once every invocation has
// completed, which is the completion barrier the host relies on to order the
// count pass before the step pass that consumes its result.
type Dispatcher struct {
	workers int
}

// NewDispatcher returns a dispatcher using the given number of workers, or
// one worker per CPU when workers is not positive.
func NewDispatcher(workers int) *Dispatcher {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Dispatcher{workers: workers}
}

// Dispatch runs the kernel over an index space covering w*h cells, rounded
// up to whole workgroups. Workgroup execution order is unspecified.
func (d *Dispatcher) Dispatch(w, h int, k Kernel) {
	d.run(w, h, k, nil)
}

// DispatchShuffled behaves like Dispatch but visits workgroups in a random
// permutation drawn from rng. Kernel results must not depend on scheduling
// order; tests use this to exercise that property deliberately.
func (d *Dispatcher) DispatchShuffled(w, h int, k Kernel, rng *rand.Rand) {
	groupsX := (w + WorkgroupSize - 1) / WorkgroupSize
	groupsY := (h + WorkgroupSize - 1) / WorkgroupSize
	d.run(w, h, k, rng.Perm(groupsX*groupsY))
}

func (d *Dispatcher) run(w, h int, k Kernel, order []int) {
	groupsX := (w + WorkgroupSize - 1) / WorkgroupSize
	groupsY := (h + WorkgroupSize - 1) / WorkgroupSize
	total := groupsX * groupsY
	if total == 0 {
		return
	}

	workers := d.workers
	if workers > total {
		workers = total
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				n := int(next.Add(1)) - 1
				if n >= total {
					return
				}
				group := n
				if order != nil {
					group = order[n]
				}
				baseX := (group % groupsX) * WorkgroupSize
				baseY := (group / groupsX) * WorkgroupSize
				for ly := 0; ly < WorkgroupSize; ly++ {
					for lx := 0; lx < WorkgroupSize; lx++ {
						k(baseX+lx, baseY+ly)
					}
				}
			}
		}()
	}
	wg.Wait()
}
