package engine

import "testing"

func TestEventInvokesAllListeners(t *testing.T) {
	var e Event
	var calls int
	e.AddListener(func() { calls++ })
	e.AddListener(func() { calls++ })
	e.AddListener(nil) // ignored

	e.Invoke()

	if calls != 2 {
		t.Errorf("Expected 2 listener calls, got %d", calls)
	}
	if e.ListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", e.ListenerCount())
	}
}

func TestEventRemoveAllListeners(t *testing.T) {
	var e Event
	var calls int
	e.AddListener(func() { calls++ })

	e.RemoveAllListeners()
	e.Invoke()

	if calls != 0 || e.ListenerCount() != 0 {
		t.Error("RemoveAllListeners left listeners behind")
	}
}

func TestEventWithArgPassesArgument(t *testing.T) {
	var e EventWithArg[int]
	var got []int
	e.AddListener(func(v int) { got = append(got, v) })
	e.AddListener(func(v int) { got = append(got, v*2) })

	e.Invoke(21)

	if len(got) != 2 || got[0] != 21 || got[1] != 42 {
		t.Errorf("Listeners received %v", got)
	}
}
