package starling

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// TransitionFunc maps a normalized time ratio in [0, 1] to an eased progress
// value. Eased progress may leave [0, 1] for overshooting curves (back,
// elastic); it always starts at 0 and ends at 1.
type TransitionFunc func(ratio float64) float64

// Named transitions, resolvable via NewTween / Tween.Reset / TransitionNamed.
const (
	Linear           = "linear"
	EaseIn           = "easeIn"
	EaseOut          = "easeOut"
	EaseInOut        = "easeInOut"
	EaseOutIn        = "easeOutIn"
	EaseInBack       = "easeInBack"
	EaseOutBack      = "easeOutBack"
	EaseInOutBack    = "easeInOutBack"
	EaseOutInBack    = "easeOutInBack"
	EaseInElastic    = "easeInElastic"
	EaseOutElastic   = "easeOutElastic"
	EaseInOutElastic = "easeInOutElastic"
	EaseOutInElastic = "easeOutInElastic"
	EaseInBounce     = "easeInBounce"
	EaseOutBounce    = "easeOutBounce"
	EaseInOutBounce  = "easeInOutBounce"
	EaseOutInBounce  = "easeOutInBounce"
)

// transitions is the name registry. Populated at init with the standard
// table; extended by RegisterTransition. Single-threaded like the rest of
// the package — register before animating.
var transitions = map[string]TransitionFunc{}

func init() {
	RegisterTransition(Linear, fromEase(ease.Linear))
	RegisterTransition(EaseIn, fromEase(ease.InCubic))
	RegisterTransition(EaseOut, fromEase(ease.OutCubic))
	RegisterTransition(EaseInOut, fromEase(ease.InOutCubic))
	RegisterTransition(EaseOutIn, fromEase(ease.OutInCubic))
	RegisterTransition(EaseInBack, fromEase(ease.InBack))
	RegisterTransition(EaseOutBack, fromEase(ease.OutBack))
	RegisterTransition(EaseInOutBack, fromEase(ease.InOutBack))
	RegisterTransition(EaseOutInBack, fromEase(ease.OutInBack))
	RegisterTransition(EaseInElastic, fromEase(ease.InElastic))
	RegisterTransition(EaseOutElastic, fromEase(ease.OutElastic))
	RegisterTransition(EaseInOutElastic, fromEase(ease.InOutElastic))
	RegisterTransition(EaseOutInElastic, fromEase(ease.OutInElastic))
	RegisterTransition(EaseInBounce, fromEase(ease.InBounce))
	RegisterTransition(EaseOutBounce, fromEase(ease.OutBounce))
	RegisterTransition(EaseInOutBounce, fromEase(ease.InOutBounce))
	RegisterTransition(EaseOutInBounce, fromEase(ease.OutInBounce))
}

// fromEase adapts a gween easing function to a TransitionFunc by evaluating
// it over the unit interval (begin 0, change 1, duration 1).
func fromEase(fn ease.TweenFunc) TransitionFunc {
	return func(ratio float64) float64 {
		return float64(fn(float32(ratio), 0, 1, 1))
	}
}

// RegisterTransition makes fn resolvable under the given name, replacing any
// previous registration. Panics if fn is nil.
func RegisterTransition(name string, fn TransitionFunc) {
	if fn == nil {
		panic("starling: cannot register nil transition")
	}
	transitions[name] = fn
}

// RegisterEaseTransition registers a gween easing function under the given
// name, so curves from the ease package slot directly into the registry.
func RegisterEaseTransition(name string, fn ease.TweenFunc) {
	RegisterTransition(name, fromEase(fn))
}

// TransitionNamed resolves a registered transition.
// Panics if the name is unknown.
func TransitionNamed(name string) TransitionFunc {
	fn, ok := transitions[name]
	if !ok {
		panic(fmt.Sprintf("starling: unknown transition %q", name))
	}
	return fn
}
