package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrainAll_SamePriorityRunsInEnqueueOrder(t *testing.T) {
	g := NewGame(nil, nil)
	var log []string
	a := newRecordAction("a", &log, 1, 0)
	b := newRecordAction("b", &log, 1, 0)
	g.mainQueue.Enqueue(a)
	g.mainQueue.Enqueue(b)

	require.NoError(t, g.mainQueue.DrainAll())
	require.Equal(t, []string{"run:a", "run:b"}, log)
}

func TestDrainAll_HigherPriorityBatchRunsFirst(t *testing.T) {
	g := NewGame(nil, nil)
	var log []string
	low := newRecordAction("low", &log, 1, 0)
	high := newRecordAction("high", &log, 1, 10)
	g.mainQueue.Enqueue(low)
	g.mainQueue.Enqueue(high)

	require.NoError(t, g.mainQueue.DrainAll())
	require.Equal(t, []string{"run:high", "run:low"}, log)
}

func TestDrainAll_CancelledActionNeverRunsButIsRecorded(t *testing.T) {
	g := NewGame(nil, nil)
	var log []string
	a := newRecordAction("a", &log, 1, 0)
	a.Cancel()
	g.mainQueue.Enqueue(a)

	require.NoError(t, g.mainQueue.DrainAll())
	require.Empty(t, log)

	hist := g.mainQueue.History()
	require.Len(t, hist, 1)
	require.False(t, hist[0].Ran)
	require.Nil(t, hist[0].Failed)
}

func TestDrainAll_FailedActionRecordedNoPostAction(t *testing.T) {
	g := NewGame(nil, nil)
	var log []string
	a := newRecordAction("a", &log, 1, 0)
	a.failAt = true
	g.mainQueue.Enqueue(a)

	var postFired []string
	subscribeRecorder(g, KindPostAction, 999, &postFired, "post", nil)

	require.NoError(t, g.mainQueue.DrainAll())
	require.Empty(t, postFired)

	hist := g.mainQueue.History()
	require.Len(t, hist, 1)
	require.False(t, hist[0].Ran)
	require.NotNil(t, hist[0].Failed)
}

// TestDrainAll_PreThenRunThenPostAcrossWholeBatch exercises scenario S6's
// ordering: with two same-priority actions A and B, every pre-response
// across the batch is collected and drained before either A or B runs, and
// every post-response across the batch is collected before its sub-queue
// drains. Observed order: pre(A), pre(B), run(B-before-A is not guaranteed,
// enqueue order is), so with FIFO enqueue order A,B we expect
// pre(A), pre(B), run(A), post(A), run(B), post(B).
func TestDrainAll_PreAndPostDispatchSpanWholeBatch(t *testing.T) {
	g := NewGame(nil, nil)
	var log []string
	a := newRecordAction("A", &log, 1, 0)
	b := newRecordAction("B", &log, 1, 0)

	subscribeRecorder(g, KindPreAction, 101, &log, "prehook", func(e Event) []Action {
		pre := e.(*EPreAction)
		ra := pre.Action.(*recordAction)
		log = append(log[:len(log)-1], "pre:"+ra.label)
		return nil
	})
	subscribeRecorder(g, KindPostAction, 102, &log, "posthook", func(e Event) []Action {
		post := e.(*EPostAction)
		ra := post.Action.(*recordAction)
		log = append(log[:len(log)-1], "post:"+ra.label)
		return nil
	})

	g.mainQueue.Enqueue(a)
	g.mainQueue.Enqueue(b)
	require.NoError(t, g.mainQueue.DrainAll())

	require.Equal(t, []string{
		"pre:A", "pre:B", "run:A", "post:A", "run:B", "post:B",
	}, log)
}

func TestDrainAll_NestedSubQueueHistoryRetainedEvenWhenCancelled(t *testing.T) {
	g := NewGame(nil, nil)
	var log, hookLog []string
	target := newRecordAction("target", &log, 1, 0)

	subscribeRecorder(g, KindPreAction, 201, &hookLog, "cancelhook", func(e Event) []Action {
		pre := e.(*EPreAction)
		if pre.Action == target {
			return []Action{newCancelingAction(201, 50, target, &log)}
		}
		return nil
	})
	g.mainQueue.Enqueue(target)
	require.NoError(t, g.mainQueue.DrainAll())

	require.Equal(t, []string{"run:canceller"}, log) // target never ran

	hist := g.mainQueue.History()
	require.Len(t, hist, 2) // the canceller's own entry, then target's (not-ran) entry
	require.True(t, hist[0].Ran)
	require.False(t, hist[1].Ran)
}

func TestDrainAll_DepthExceededIsEngineBug(t *testing.T) {
	g := NewGame(nil, nil)
	g.SetMaxQueueDepth(1)
	deep := newActionQueue(g, 5)
	err := deep.DrainAll()
	require.Error(t, err)
	var bug *EngineBug
	require.ErrorAs(t, err, &bug)
}
