// Package anim implements a staggered animation sequencer: one driver
// sweeps a global progress value across [0, 1] and fans it out to named
// properties, each animating over its own sub-interval with its own easing
// curve and tween.
package anim
