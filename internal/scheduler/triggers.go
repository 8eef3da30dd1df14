package scheduler

import (
	"context"
	"log"
	"time"
)

// Trigger is an explicit day-of-week/time-of-day rule that fires a
// processing cycle. The run loop evaluates the rule list every tick, so
// there is no hidden global job registration.
type Trigger struct {
	Weekday time.Weekday
	Hour    int
	Minute  int
}

func (t Trigger) matches(now time.Time) bool {
	return now.Weekday() == t.Weekday && now.Hour() == t.Hour && now.Minute() == t.Minute
}

// DefaultTriggers is the stock posting cadence: morning posts Mon/Wed/Fri,
// afternoon Tue/Thu, evening on weekends.
func DefaultTriggers() []Trigger {
	return []Trigger{
		{Weekday: time.Monday, Hour: 8},
		{Weekday: time.Wednesday, Hour: 8},
		{Weekday: time.Friday, Hour: 8},
		{Weekday: time.Tuesday, Hour: 15},
		{Weekday: time.Thursday, Hour: 15},
		{Weekday: time.Saturday, Hour: 19},
		{Weekday: time.Sunday, Hour: 19},
	}
}

// TriggerDue reports whether any trigger rule matches now, firing at most
// once per matching minute.
func (e *Engine) triggerDue(now, lastFired time.Time) bool {
	minute := now.Truncate(time.Minute)
	if minute.Equal(lastFired) {
		return false
	}
	for _, t := range e.triggers {
		if t.matches(now) {
			return true
		}
	}
	return false
}

// Run is the cadence loop: it seeds the queue with an initial batch, then
// wakes once a minute to evaluate the trigger rules, running at most one
// processing cycle to completion per wake. On cancellation it performs one
// final persist; a cycle interrupted mid-flight is not rolled back.
func (e *Engine) Run(ctx context.Context) {
	log.Println("Starting content scheduler...")

	batch := e.GenerateBatch(ctx, "viral drone content", 3)
	if len(batch) > 0 {
		e.Enqueue(batch)
	}

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	var lastFired time.Time
	for {
		select {
		case <-ctx.Done():
			log.Println("Scheduler stopped")
			e.Flush()
			return
		case now := <-ticker.C:
			if e.triggerDue(now, lastFired) {
				lastFired = now.Truncate(time.Minute)
				posted := e.ProcessQueue(ctx)
				if posted > 0 {
					log.Printf("Posted %d items", posted)
				}
			}
		}
	}
}
