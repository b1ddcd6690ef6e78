package starling

import (
	"math"
	"testing"
)

// tickRecorder is a minimal Animatable that logs every advance it receives.
type tickRecorder struct {
	name   string
	deltas []float64
	log    *[]string
	onTick func(dt float64)
}

func (r *tickRecorder) AdvanceTime(dt float64) {
	r.deltas = append(r.deltas, dt)
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
	if r.onTick != nil {
		r.onTick(dt)
	}
}

func TestJugglerAddRemoveContains(t *testing.T) {
	j := NewJuggler()
	a := &tickRecorder{name: "a"}

	j.Add(a)
	if !j.Contains(a) {
		t.Fatal("added object should be contained")
	}

	j.Remove(a)
	if j.Contains(a) {
		t.Fatal("removed object should not be contained")
	}

	j.AdvanceTime(1.0)
	if len(a.deltas) != 0 {
		t.Error("removed object must not be advanced")
	}
}

func TestJugglerAddIsIdempotent(t *testing.T) {
	j := NewJuggler()
	a := &tickRecorder{name: "a"}

	j.Add(a)
	j.Add(a)
	j.AdvanceTime(1.0)

	if len(a.deltas) != 1 {
		t.Errorf("object advanced %d times in one pass, want 1", len(a.deltas))
	}
}

func TestJugglerAdvancesInInsertionOrder(t *testing.T) {
	j := NewJuggler()
	var log []string
	j.Add(&tickRecorder{name: "a", log: &log})
	j.Add(&tickRecorder{name: "b", log: &log})
	j.Add(&tickRecorder{name: "c", log: &log})

	j.AdvanceTime(0.5)

	want := []string{"a", "b", "c"}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("advance order = %v, want %v", log, want)
		}
	}
}

func TestJugglerZeroOrNegativeDeltaIsNoOp(t *testing.T) {
	j := NewJuggler()
	a := &tickRecorder{name: "a"}
	j.Add(a)

	j.AdvanceTime(0)
	j.AdvanceTime(-1)

	if len(a.deltas) != 0 {
		t.Error("non-positive deltas must not advance members")
	}
	if j.ElapsedTime() != 0 {
		t.Error("non-positive deltas must not accumulate elapsed time")
	}
}

func TestJugglerElapsedTimeAccumulates(t *testing.T) {
	j := NewJuggler()
	j.AdvanceTime(0.5)
	j.AdvanceTime(0.25)

	if math.Abs(j.ElapsedTime()-0.75) > tol {
		t.Errorf("ElapsedTime = %v, want 0.75", j.ElapsedTime())
	}
}

func TestJugglerAddDuringPassWaitsForNextPass(t *testing.T) {
	j := NewJuggler()
	late := &tickRecorder{name: "late"}
	early := &tickRecorder{name: "early"}
	early.onTick = func(dt float64) { j.Add(late) }
	j.Add(early)

	j.AdvanceTime(1.0)
	if len(late.deltas) != 0 {
		t.Fatal("object added mid-pass must not be advanced in the same pass")
	}

	j.AdvanceTime(1.0)
	if len(late.deltas) != 1 {
		t.Errorf("object added mid-pass advanced %d times on the next pass, want 1", len(late.deltas))
	}
}

func TestJugglerRemoveDuringPassSkipsLaterMember(t *testing.T) {
	j := NewJuggler()
	victim := &tickRecorder{name: "victim"}
	remover := &tickRecorder{name: "remover"}
	remover.onTick = func(dt float64) { j.Remove(victim) }
	j.Add(remover)
	j.Add(victim) // after remover, so the removal lands mid-pass

	j.AdvanceTime(1.0)

	if len(victim.deltas) != 0 {
		t.Error("object removed mid-pass must not be advanced afterwards")
	}
}

func TestJugglerReAddDuringPassNotAdvancedTwice(t *testing.T) {
	j := NewJuggler()
	victim := &tickRecorder{name: "victim"}
	churner := &tickRecorder{name: "churner"}
	churner.onTick = func(dt float64) {
		j.Remove(victim)
		j.Add(victim)
		churner.onTick = nil // churn once; later passes leave victim alone
	}
	j.Add(churner)
	j.Add(victim)

	j.AdvanceTime(1.0)

	if len(victim.deltas) != 0 {
		t.Error("object removed and re-added mid-pass must wait for the next pass")
	}

	j.AdvanceTime(1.0)
	if len(victim.deltas) != 1 {
		t.Errorf("re-added object advanced %d times on the next pass, want 1", len(victim.deltas))
	}
}

func TestJugglerCompletedTweenEvictsItself(t *testing.T) {
	j := NewJuggler()
	node := NewNode("n")
	tw := NewTween(node, 1.0, Linear)
	tw.Animate("x", 10)
	j.Add(tw)

	j.AdvanceTime(1.0)

	if j.Contains(tw) {
		t.Error("completed tween should have been evicted")
	}
	if node.X != 10 {
		t.Errorf("X = %v, want 10", node.X)
	}
}

func TestJugglerRemoveFromOwnCompletionCallback(t *testing.T) {
	j := NewJuggler()
	tw := NewTween(NewNode("n"), 1.0, Linear)
	tw.OnComplete = func() { j.Remove(tw) } // redundant with the signal; must be safe
	j.Add(tw)

	j.AdvanceTime(1.0)
	j.AdvanceTime(1.0)

	if j.Contains(tw) {
		t.Error("tween should stay removed")
	}
}

func TestJugglerChainedTweenStartsNextPass(t *testing.T) {
	j := NewJuggler()
	node := NewNode("n")

	first := NewTween(node, 1.0, Linear)
	first.Animate("x", 10)
	second := NewTween(node, 1.0, Linear)
	second.Animate("x", 0)
	first.Chain(second)
	j.Add(first)

	// Completes first; second is added mid-pass and must not consume the
	// same tick's excess.
	j.AdvanceTime(1.5)
	if !j.Contains(second) {
		t.Fatal("chained tween should be added on completion")
	}
	if node.X != 10 {
		t.Errorf("X = %v, want 10 (chained tween not yet advanced)", node.X)
	}

	j.AdvanceTime(0.5)
	if math.Abs(node.X-5) > tol {
		t.Errorf("X = %v, want ~5 (chained tween halfway)", node.X)
	}
}

func TestJugglerRemoveTweensOf(t *testing.T) {
	j := NewJuggler()
	keep := NewNode("keep")
	drop := NewNode("drop")

	kept := NewTween(keep, 1.0, Linear)
	dropped := NewTween(drop, 1.0, Linear)
	j.Add(kept)
	j.Add(dropped)

	j.RemoveTweensOf(drop)

	if j.Contains(dropped) {
		t.Error("tween of the dropped target should be removed")
	}
	if !j.Contains(kept) {
		t.Error("tween of another target must stay")
	}
}

func TestJugglerPurge(t *testing.T) {
	j := NewJuggler()
	a := &tickRecorder{name: "a"}
	tw := NewTween(NewNode("n"), 1.0, Linear)
	j.Add(a)
	j.Add(tw)

	j.Purge()

	if j.Contains(a) || j.Contains(tw) {
		t.Error("purged juggler should be empty")
	}
	j.AdvanceTime(1.0)
	if len(a.deltas) != 0 {
		t.Error("purged object must not be advanced")
	}
}

func TestJugglerDelayCall(t *testing.T) {
	j := NewJuggler()
	fired := 0
	tw := j.DelayCall(func() { fired++ }, 1.0)

	j.AdvanceTime(0.5)
	if fired != 0 {
		t.Fatal("delayed call fired early")
	}

	j.AdvanceTime(0.5)
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
	if j.Contains(tw) {
		t.Error("delayed call should remove itself after firing")
	}

	j.AdvanceTime(1.0)
	if fired != 1 {
		t.Error("delayed call must fire exactly once")
	}
}

func TestJugglerDelayCallZeroDelayFiresNextTick(t *testing.T) {
	j := NewJuggler()
	fired := 0
	j.DelayCall(func() { fired++ }, 0)

	j.AdvanceTime(0.001)
	if fired != 1 {
		t.Errorf("fired = %d, want 1 (zero delay fires on the first tick)", fired)
	}
}

func TestJugglerDelayCallRepeats(t *testing.T) {
	j := NewJuggler()
	fired := 0
	tw := j.DelayCall(func() { fired++ }, 1.0)
	tw.RepeatCount = 3

	for i := 0; i < 3; i++ {
		j.AdvanceTime(1.0)
	}

	if fired != 3 {
		t.Errorf("fired = %d, want 3 (once per cycle)", fired)
	}
	if j.Contains(tw) {
		t.Error("repeating call should detach after its final cycle")
	}
}

func TestJugglerDelayCallRecyclesTweens(t *testing.T) {
	j := NewJuggler()
	first := j.DelayCall(func() {}, 0.5)
	j.AdvanceTime(0.5) // fires and releases back to the pool

	second := j.DelayCall(func() {}, 0.5)
	if first != second {
		t.Error("DelayCall should reuse the pooled tween instance")
	}
}

func TestJugglerDelayCallNilCallbackPanics(t *testing.T) {
	j := NewJuggler()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil callback, got none")
		}
	}()
	j.DelayCall(nil, 1.0)
}

func TestJugglerTweenHelper(t *testing.T) {
	j := NewJuggler()
	node := NewNode("n")

	tw := j.Tween(node, 1.0, Linear)
	tw.Animate("x", 10)

	j.AdvanceTime(1.0)

	if node.X != 10 {
		t.Errorf("X = %v, want 10", node.X)
	}
	if j.Contains(tw) {
		t.Error("helper tween should detach on completion")
	}
}

func TestJugglerNesting(t *testing.T) {
	parent := NewJuggler()
	child := NewJuggler()
	node := NewNode("n")

	tw := NewTween(node, 1.0, Linear)
	tw.Animate("x", 10)
	child.Add(tw)
	parent.Add(child)

	parent.AdvanceTime(0.5)
	if math.Abs(node.X-5) > tol {
		t.Errorf("X = %v, want ~5 (nested juggler advanced)", node.X)
	}

	parent.Remove(child) // pauses the whole sub-timeline
	parent.AdvanceTime(0.5)
	if math.Abs(node.X-5) > tol {
		t.Errorf("X = %v, want ~5 after pausing the sub-juggler", node.X)
	}
}

func TestJugglerAdvanceZeroAlloc(t *testing.T) {
	j := NewJuggler()
	node := NewNode("n")
	tw := NewTween(node, 1000.0, Linear)
	tw.Animate("x", 10)
	j.Add(tw)

	j.AdvanceTime(0.01)

	result := testing.AllocsPerRun(100, func() {
		j.AdvanceTime(0.001)
	})
	if result > 0 {
		t.Errorf("Juggler.AdvanceTime allocated %f times per run, want 0", result)
	}
}
