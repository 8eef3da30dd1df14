package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTriggerMatches(t *testing.T) {
	t.Parallel()

	trigger := Trigger{Weekday: time.Monday, Hour: 8, Minute: 0}

	monday8am := time.Date(2026, 8, 3, 8, 0, 30, 0, time.UTC)
	assert.True(t, trigger.matches(monday8am))
	assert.False(t, trigger.matches(monday8am.Add(time.Minute)))
	assert.False(t, trigger.matches(monday8am.Add(24*time.Hour))) // Tuesday
	assert.False(t, trigger.matches(monday8am.Add(-time.Hour)))
}

func TestDefaultTriggers(t *testing.T) {
	t.Parallel()

	triggers := DefaultTriggers()
	assert.Len(t, triggers, 7)

	byDay := map[time.Weekday]int{}
	for _, tr := range triggers {
		byDay[tr.Weekday] = tr.Hour
	}

	assert.Equal(t, 8, byDay[time.Monday])
	assert.Equal(t, 8, byDay[time.Wednesday])
	assert.Equal(t, 8, byDay[time.Friday])
	assert.Equal(t, 15, byDay[time.Tuesday])
	assert.Equal(t, 15, byDay[time.Thursday])
	assert.Equal(t, 19, byDay[time.Saturday])
	assert.Equal(t, 19, byDay[time.Sunday])
}

func TestTriggerDueFiresOncePerMinute(t *testing.T) {
	t.Parallel()

	e := &Engine{triggers: []Trigger{{Weekday: time.Monday, Hour: 8, Minute: 0}}}

	tick := time.Date(2026, 8, 3, 8, 0, 10, 0, time.UTC)
	assert.True(t, e.triggerDue(tick, time.Time{}))

	// Same minute, already fired.
	fired := tick.Truncate(time.Minute)
	assert.False(t, e.triggerDue(tick.Add(20*time.Second), fired))

	// Next matching minute a week later.
	nextWeek := tick.Add(7 * 24 * time.Hour)
	assert.True(t, e.triggerDue(nextWeek, fired))

	// Non-matching minute.
	assert.False(t, e.triggerDue(tick.Add(5*time.Minute), fired))
}
