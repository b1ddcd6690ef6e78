package starling

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// PropertyTarget is the capability a Tween needs from its target: numeric
// fields addressable by name. Property reports the current value and whether
// the name resolves; SetProperty reports whether the write was accepted.
//
// Node implements PropertyTarget for its transform fields and alpha; any
// application type can implement it for its own fields.
type PropertyTarget interface {
	Property(name string) (float64, bool)
	SetProperty(name string, value float64) bool
}

// disposable lets a Tween stop writing to a target that has been torn down
// mid-animation. Node satisfies it; plain targets simply never match.
type disposable interface {
	IsDisposed() bool
}

// minimumTime is the floor for a tween's total time, avoiding division by
// zero while keeping near-instant tweens working.
const minimumTime = 0.0001

// Tween animates named numeric properties on a target object over time.
//
// Configure with Animate (or the MoveTo/ScaleTo/FadeTo shorthands), add the
// tween to a Juggler, and it runs to completion and detaches itself. A Tween
// holds no clock: AdvanceTime is fed the frame delta by its juggler.
//
// The zero value is not usable; create tweens with NewTween or via
// TweenPool.Acquire.
type Tween struct {
	// RepeatCount is the number of cycles to run: 1 (the default) runs once,
	// values above 1 run that many times, 0 repeats forever. Counts down as
	// finite cycles complete.
	RepeatCount int
	// RepeatDelay is the pause in seconds before each repeat cycle.
	RepeatDelay float64
	// Reverse runs every odd cycle backwards, yoyo style.
	Reverse bool
	// RoundToInt rounds interpolated values to the nearest integer before
	// they are written to the target.
	RoundToInt bool

	// Lifecycle callbacks, all optional. OnStart fires once when the tween
	// first advances past its delay; OnUpdate after every property write
	// pass; OnRepeat at each cycle boundary; OnComplete after the final
	// cycle, when the tween has already asked its juggler to drop it.
	OnStart    func()
	OnUpdate   func()
	OnRepeat   func()
	OnComplete func()

	target     PropertyTarget
	properties []string
	startVals  []float64
	endVals    []float64

	totalTime      float64
	currentTime    float64
	delay          float64
	progress       float64
	currentCycle   int
	transitionName string
	transitionFunc TransitionFunc

	nextTween       *Tween
	removeRequested Signal
}

// NewTween creates a tween for the given target running for time seconds
// using the named transition. Panics if the transition name is unknown.
// A nil target is allowed; Animate calls then become no-ops, which is
// exactly what Juggler.DelayCall relies on.
func NewTween(target PropertyTarget, time float64, transition string) *Tween {
	t := &Tween{}
	t.Reset(target, time, transition)
	return t
}

// Reset reinitializes the tween as if newly constructed, reusing its
// internal storage. Returns the tween so pooled acquisition can chain.
// Panics if the transition name is unknown.
func (t *Tween) Reset(target PropertyTarget, time float64, transition string) *Tween {
	t.target = target
	t.totalTime = math.Max(minimumTime, time)
	t.currentTime = 0
	t.delay = 0
	t.progress = 0
	t.currentCycle = -1
	t.RepeatCount = 1
	t.RepeatDelay = 0
	t.Reverse = false
	t.RoundToInt = false
	t.OnStart = nil
	t.OnUpdate = nil
	t.OnRepeat = nil
	t.OnComplete = nil
	t.nextTween = nil
	t.properties = t.properties[:0]
	t.startVals = t.startVals[:0]
	t.endVals = t.endVals[:0]
	t.removeRequested.Clear()
	t.transitionName = transition
	t.transitionFunc = TransitionNamed(transition)
	return t
}

// Animate records that the named property should move from its current value
// to endValue over the tween's duration. The start value is sampled lazily,
// on the first advance past time zero, so tweens configured ahead of time
// pick up wherever the target is when they actually start.
//
// Calling Animate twice for the same property keeps both entries; writes
// follow insertion order, so the later entry wins. A tween with a nil
// target ignores Animate calls. Panics if the property does not resolve on
// the target.
func (t *Tween) Animate(property string, endValue float64) {
	if t.target == nil {
		return
	}
	if _, ok := t.target.Property(property); !ok {
		panic(fmt.Sprintf("starling: target has no numeric property %q", property))
	}
	t.properties = append(t.properties, property)
	t.startVals = append(t.startVals, math.NaN())
	t.endVals = append(t.endVals, endValue)
}

// MoveTo animates the target's "x" and "y" properties.
func (t *Tween) MoveTo(x, y float64) {
	t.Animate("x", x)
	t.Animate("y", y)
}

// ScaleTo animates the target's "scaleX" and "scaleY" properties to the
// same factor.
func (t *Tween) ScaleTo(factor float64) {
	t.Animate("scaleX", factor)
	t.Animate("scaleY", factor)
}

// FadeTo animates the target's "alpha" property.
func (t *Tween) FadeTo(alpha float64) {
	t.Animate("alpha", alpha)
}

// AdvanceTime moves the tween forward by dt seconds.
//
// A delta larger than the remaining cycle time is folded across repeat
// boundaries: the excess re-enters the loop after the cycle's repeat or
// completion handling, so one oversized tick crosses as many cycles as it
// covers. The carry-over is a loop rather than recursion so a pathological
// delta cannot grow the stack.
func (t *Tween) AdvanceTime(dt float64) {
	for {
		if dt == 0 || (t.RepeatCount == 1 && t.currentTime == t.totalTime) {
			return
		}

		previousTime := t.currentTime
		restTime := t.totalTime - t.currentTime
		carryOver := 0.0
		if dt > restTime {
			carryOver = dt - restTime
		}

		t.currentTime += dt
		if t.currentTime <= 0 {
			return // delay not over yet
		}
		if t.currentTime > t.totalTime {
			t.currentTime = t.totalTime
		}

		if t.currentCycle < 0 && previousTime <= 0 && t.currentTime > 0 {
			t.currentCycle++
			if t.OnStart != nil {
				t.OnStart()
			}
		}

		ratio := t.currentTime / t.totalTime
		if t.Reverse && t.currentCycle%2 == 1 {
			ratio = 1.0 - ratio
		}
		t.progress = t.transitionFunc(ratio)

		if d, ok := t.target.(disposable); !ok || !d.IsDisposed() {
			for i, property := range t.properties {
				if math.IsNaN(t.startVals[i]) {
					v, _ := t.target.Property(property)
					t.startVals[i] = v
				}
				current := t.startVals[i] + t.progress*(t.endVals[i]-t.startVals[i])
				if t.RoundToInt {
					current = math.Round(current)
				}
				t.target.SetProperty(property, current)
			}
		}

		if t.OnUpdate != nil {
			t.OnUpdate()
		}

		if previousTime < t.totalTime && t.currentTime >= t.totalTime {
			if t.RepeatCount == 0 || t.RepeatCount > 1 {
				t.currentTime = -t.RepeatDelay
				t.currentCycle++
				if t.RepeatCount > 1 {
					t.RepeatCount--
				}
				if t.OnRepeat != nil {
					t.OnRepeat()
				}
			} else {
				// The callback may reset this tween and hand it to another
				// juggler, so removal must be requested first: by the time
				// user code runs, the tween is already detached.
				onComplete := t.OnComplete
				t.removeRequested.Emit(t)
				if onComplete != nil {
					onComplete()
				}
			}
		}

		if carryOver == 0 {
			return
		}
		dt = carryOver
	}
}

// EndValue returns the value the named property is animating towards.
// Panics if the property was never passed to Animate.
func (t *Tween) EndValue(property string) float64 {
	for i := len(t.properties) - 1; i >= 0; i-- {
		if t.properties[i] == property {
			return t.endVals[i]
		}
	}
	panic(fmt.Sprintf("starling: property %q is not animated by this tween", property))
}

// IsComplete reports whether the tween has played through its final cycle.
// Complete tweens ignore further AdvanceTime calls.
func (t *Tween) IsComplete() bool {
	return t.currentTime >= t.totalTime && t.RepeatCount == 1
}

// Target returns the tween's target, which may be nil.
func (t *Tween) Target() PropertyTarget { return t.target }

// TotalTime returns the duration of one cycle in seconds.
func (t *Tween) TotalTime() float64 { return t.totalTime }

// CurrentTime returns the elapsed time within the current cycle. Negative
// while a delay or repeat delay is pending.
func (t *Tween) CurrentTime() float64 { return t.currentTime }

// Progress returns the eased progress computed by the most recent advance.
func (t *Tween) Progress() float64 { return t.progress }

// CurrentCycle returns the zero-based repeat cycle index, or -1 before the
// tween has started.
func (t *Tween) CurrentCycle() int { return t.currentCycle }

// Transition returns the name of the active transition, or "custom" after
// SetTransitionFunc.
func (t *Tween) Transition() string { return t.transitionName }

// SetTransition switches to a registered transition by name.
// Panics if the name is unknown.
func (t *Tween) SetTransition(name string) {
	t.transitionName = name
	t.transitionFunc = TransitionNamed(name)
}

// SetTransitionFunc installs a custom transition, bypassing the registry.
func (t *Tween) SetTransitionFunc(fn TransitionFunc) {
	t.transitionName = "custom"
	t.transitionFunc = fn
}

// SetEaseFunc installs a gween easing function as the transition.
func (t *Tween) SetEaseFunc(fn ease.TweenFunc) {
	t.SetTransitionFunc(fromEase(fn))
}

// Delay returns the pause in seconds before the tween starts.
func (t *Tween) Delay() float64 { return t.delay }

// SetDelay changes the start delay. The adjustment is applied to the
// tween's internal clock, so changing the delay mid-wait keeps the absolute
// start moment consistent: lowering an 0.5s delay to 0.2s moves the clock
// forward by 0.3s.
func (t *Tween) SetDelay(delay float64) {
	t.currentTime = t.currentTime + t.delay - delay
	t.delay = delay
}

// Chain schedules next to be added to this tween's juggler when this tween
// completes, and returns next so chains read fluently. Panics if linking
// next would make the chain loop back on itself.
func (t *Tween) Chain(next *Tween) *Tween {
	for c := next; c != nil; c = c.nextTween {
		if c == t {
			panic("starling: tween chain would form a cycle")
		}
	}
	t.nextTween = next
	return next
}

// NextTween returns the chained follow-up tween, or nil.
func (t *Tween) NextTween() *Tween { return t.nextTween }

// RemoveRequested exposes the signal a juggler listens on to learn the
// tween wants to be dropped. Emitted once, on completion, before OnComplete
// runs.
func (t *Tween) RemoveRequested() *Signal { return &t.removeRequested }

// TweenPool is a free list of tweens. Pools are plain values owned by
// whoever needs one (each Juggler owns one for DelayCall); they are not
// safe for concurrent use.
type TweenPool struct {
	free []*Tween
}

// Acquire returns a reset pooled tween, or a new one if the pool is empty.
func (p *TweenPool) Acquire(target PropertyTarget, time float64, transition string) *Tween {
	if n := len(p.free); n > 0 {
		t := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return t.Reset(target, time, transition)
	}
	return NewTween(target, time, transition)
}

// Release clears every external reference the tween holds — target,
// callbacks, custom transition, chain, signal listeners — and returns it to
// the pool. Without this a pooled tween would pin the object graphs of
// animations long since finished.
func (p *TweenPool) Release(t *Tween) {
	t.target = nil
	t.OnStart = nil
	t.OnUpdate = nil
	t.OnRepeat = nil
	t.OnComplete = nil
	t.nextTween = nil
	t.transitionFunc = nil
	t.transitionName = ""
	t.removeRequested.Clear()
	p.free = append(p.free, t)
}
