package tsp

import (
	"context"
	"time"
)

// checkEvery is the number of work units between clock and context reads.
// One expansion is one unit; generating a child costs what building it
// costs (path copy, MST estimate), so wide expansions are checked often.
const checkEvery = 4096

// budget enforces MaxExpansions, TimeLimit and cancellation for one search call.
type budget struct {
	max         int
	used        int
	work        int
	ctx         context.Context
	useDeadline bool
	deadline    time.Time
}

func newBudget(o Options) *budget {
	b := &budget{max: o.MaxExpansions, ctx: o.Context}
	if o.TimeLimit > 0 {
		b.useDeadline = true
		b.deadline = time.Now().Add(o.TimeLimit)
	}

	return b
}

// expand charges one expansion against MaxExpansions and one work unit.
func (b *budget) expand() error {
	b.used++
	if b.max > 0 && b.used > b.max {
		return ErrExpansionLimit
	}

	return b.charge(1)
}

// charge accounts units of work and reads the clock once checkEvery units
// have piled up since the last read.
func (b *budget) charge(units int) error {
	b.work += units
	if b.work < checkEvery {
		return nil
	}
	b.work = 0

	return b.check()
}

// check reports cancellation or an expired deadline.
func (b *budget) check() error {
	if b.ctx != nil {
		if err := b.ctx.Err(); err != nil {
			return err
		}
	}
	if b.useDeadline && time.Now().After(b.deadline) {
		return ErrTimeLimit
	}

	return nil
}

// incumbent is the best-so-far accumulator owned by one search call.
type incumbent struct {
	tour  []int
	cost  float64
	found bool
}

// offer records tour if it is the first completion or strictly cheaper than
// the current best. The first completion is kept even at +Inf cost so that
// instances without a finite cycle still yield a tour.
func (in *incumbent) offer(tour []int, cost float64) bool {
	if in.found && !(cost < in.cost) {
		return false
	}
	in.tour = append(in.tour[:0], tour...)
	in.cost = cost
	in.found = true

	return true
}

func (in *incumbent) result(a Algorithm, st Stats) Result {
	if !in.found {
		return Result{Algorithm: a, Stats: st}
	}

	return Result{Algorithm: a, Tour: in.tour, Cost: in.cost, Stats: st}
}
