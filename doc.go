// Package starling is a retained-mode 2D display-tree framework whose heart
// is a time-driven animation engine: [Tween] interpolates named numeric
// properties on a target, and [Juggler] advances any number of animatables
// once per frame.
//
// Nothing in the core touches a clock. The host loop measures a frame delta
// and feeds it in; [Run] provides such a loop on top of [Ebitengine], but any
// driver that calls [Stage.AdvanceTime] works, including tests.
//
// # Quick start
//
//	stage := starling.NewStage(640, 480)
//
//	hero := starling.NewNode("hero")
//	stage.Root().AddChild(hero)
//
//	tween := starling.NewTween(hero, 2.0, "easeInOut")
//	tween.Animate("x", 300)
//	tween.Animate("rotation", math.Pi/2)
//	tween.OnComplete = func() { log.Println("arrived") }
//	stage.Juggler().Add(tween)
//
//	starling.Run(stage, starling.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//
// # Tweens
//
// A Tween animates any target implementing [PropertyTarget]. Delay, repeat
// (with optional per-repeat delay and yoyo reversal), integer rounding, and
// chained follow-up tweens are all supported, and a single oversized frame
// delta is folded across as many repeat cycles as it covers. Easing comes
// from the named transition registry, backed by [gween/ease]; custom curves
// plug in via [Tween.SetTransitionFunc] or [RegisterTransition].
//
// # Jugglers
//
// A Juggler advances everything added to it, once per [Juggler.AdvanceTime]
// call. Membership may change freely from inside callbacks: items added
// during a pass wait for the next pass, removed items are not advanced
// again. [Juggler.DelayCall] schedules a one-shot function on the same
// timeline.
//
// [Ebitengine]: https://ebitengine.org
// [gween/ease]: https://github.com/tanema/gween
package starling
