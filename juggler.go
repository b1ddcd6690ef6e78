package starling

// Juggler advances a collection of animatables, once per AdvanceTime call.
//
// Membership may change from inside callbacks while a pass is running:
// items added during a pass receive their first advance on the next pass,
// and removed items are not advanced again within the current one. Items
// that expose a RemoveRequested signal (Tween does) are dropped
// automatically when they ask for it.
//
// Jugglers nest: a Juggler is itself an Animatable, so a sub-juggler added
// to another runs on its parent's timeline and can be paused wholesale by
// removing it.
type Juggler struct {
	objects []Animatable
	connIDs map[Animatable]int
	elapsed float64
	pool    TweenPool
}

// NewJuggler creates an empty juggler.
func NewJuggler() *Juggler {
	return &Juggler{connIDs: make(map[Animatable]int)}
}

// Add inserts the object at the end of the advance order. Adding an object
// that is already present does nothing, so an object is never advanced
// twice per pass.
func (j *Juggler) Add(object Animatable) {
	if object == nil || j.Contains(object) {
		return
	}
	if em, ok := object.(removeEmitter); ok {
		j.connIDs[object] = em.RemoveRequested().Connect(j.onRemoveRequested)
	}
	j.objects = append(j.objects, object)
}

// Contains reports whether the object is currently managed by this juggler.
func (j *Juggler) Contains(object Animatable) bool {
	for _, o := range j.objects {
		if o == object {
			return true
		}
	}
	return false
}

// Remove detaches the object. Safe to call from inside any callback,
// including the object's own, while a pass is in flight: the slot is
// cleared in place and compacted on the next pass.
func (j *Juggler) Remove(object Animatable) {
	if object == nil {
		return
	}
	for i, o := range j.objects {
		if o == object {
			j.disconnect(object)
			j.objects[i] = nil
			return
		}
	}
}

// RemoveTweensOf removes all tweens animating the given target.
// Typically called before disposing the target.
func (j *Juggler) RemoveTweensOf(target PropertyTarget) {
	if target == nil {
		return
	}
	for i, o := range j.objects {
		if t, ok := o.(*Tween); ok && t.Target() == target {
			j.disconnect(o)
			j.objects[i] = nil
		}
	}
}

// Purge removes every object at once.
//
// Unlike the individual removal paths, objects purged mid-pass may include
// ones that were about to be advanced; don't call Purge from inside a
// callback of an object this juggler manages.
func (j *Juggler) Purge() {
	for i, o := range j.objects {
		if o != nil {
			j.disconnect(o)
		}
		j.objects[i] = nil
	}
	j.objects = j.objects[:0]
}

// DelayCall invokes call after delay seconds on this juggler's timeline.
//
// The returned tween is already added; keep it to Remove the pending call,
// or set RepeatCount on it for a repeating timer. The tween comes from the
// juggler's internal pool and is recycled after it fires, so don't retain
// it past completion.
func (j *Juggler) DelayCall(call func(), delay float64) *Tween {
	if call == nil {
		panic("starling: DelayCall requires a callback")
	}
	t := j.pool.Acquire(nil, delay, Linear)
	t.OnComplete = call
	t.OnRepeat = call // fires per cycle when used as a repeating timer
	j.Add(t)
	// Recycle after the juggler has processed the removal. Connected after
	// Add so the juggler's own eviction listener runs first.
	t.RemoveRequested().Connect(func(sender Animatable) {
		j.pool.Release(sender.(*Tween))
	})
	return t
}

// Tween acquires a pooled tween for target, adds it, and returns it for
// configuration. The tween is recycled once it completes, so configure it
// synchronously and don't retain it past completion.
func (j *Juggler) Tween(target PropertyTarget, time float64, transition string) *Tween {
	t := j.pool.Acquire(target, time, transition)
	j.Add(t)
	t.RemoveRequested().Connect(func(sender Animatable) {
		j.pool.Release(sender.(*Tween))
	})
	return t
}

// ElapsedTime returns the total time this juggler has been advanced by.
func (j *Juggler) ElapsedTime() float64 { return j.elapsed }

// AdvanceTime advances every object that was a member when the call
// started, in insertion order. Slots cleared by mid-pass removals are
// compacted in place; objects appended by callbacks sit past the snapshot
// count and wait for the next pass. A dt <= 0 is a no-op.
func (j *Juggler) AdvanceTime(dt float64) {
	if dt <= 0 {
		return
	}
	j.elapsed += dt

	numObjects := len(j.objects)
	currentIndex := 0

	for i := 0; i < numObjects; i++ {
		object := j.objects[i]
		if object == nil {
			continue
		}
		// Shift the object into the next free slot so removals leave no
		// holes behind the cursor, then advance it.
		if currentIndex != i {
			j.objects[currentIndex] = object
			j.objects[i] = nil
		}
		currentIndex++
		object.AdvanceTime(dt)
	}

	if currentIndex != numObjects {
		// Move anything appended during the pass down over the vacated
		// slots, preserving order.
		numAdded := len(j.objects) - numObjects
		for i := 0; i < numAdded; i++ {
			j.objects[currentIndex] = j.objects[numObjects+i]
			currentIndex++
		}
		for i := len(j.objects) - 1; i >= currentIndex; i-- {
			j.objects[i] = nil
		}
		j.objects = j.objects[:currentIndex]
	}
}

// onRemoveRequested evicts the sender. When a completed tween carries a
// chained follow-up, the follow-up is added here; being added mid-pass, it
// starts on the next pass.
func (j *Juggler) onRemoveRequested(sender Animatable) {
	j.Remove(sender)
	if t, ok := sender.(*Tween); ok && t.IsComplete() {
		if next := t.NextTween(); next != nil {
			j.Add(next)
		}
	}
}

// disconnect drops the juggler's listener on the object's removal signal.
func (j *Juggler) disconnect(object Animatable) {
	if id, ok := j.connIDs[object]; ok {
		if em, ok := object.(removeEmitter); ok {
			em.RemoveRequested().Disconnect(id)
		}
		delete(j.connIDs, object)
	}
}
