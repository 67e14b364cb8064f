package engine

import (
	"context"
	"time"
)

// timeManager holds the deadline of one decision. The search polls IsDone
// at the top of every node; nothing interrupts it in between.
type timeManager struct {
	ctx      context.Context
	deadline time.Time
}

func newTimeManager(ctx context.Context, start time.Time, limit time.Duration) *timeManager {
	var deadline time.Time
	if limit > 0 {
		deadline = start.Add(limit)
	}
	if d, ok := ctx.Deadline(); ok && (deadline.IsZero() || d.Before(deadline)) {
		deadline = d
	}
	return &timeManager{
		ctx:      ctx,
		deadline: deadline,
	}
}

func (tm *timeManager) Deadline() time.Time {
	return tm.deadline
}

func (tm *timeManager) IsDone() bool {
	if !tm.deadline.IsZero() && time.Now().After(tm.deadline) {
		return true
	}
	return tm.ctx.Err() != nil
}
