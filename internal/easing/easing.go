// Package easing provides progress curves for animations.
//
// A Func maps linear progress in [0, 1] to eased progress. Curves are not
// required to stay inside [0, 1] (back and elastic curves overshoot), and
// f(1) is not forced to 1: a curve that ends elsewhere leaves the target
// short of its final state, which is the caller's problem.
package easing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fogleman/ease"
)

// Func maps normalized progress to eased progress.
type Func func(t float64) float64

// Linear is the identity curve and the default for every animation.
func Linear(t float64) float64 {
	return t
}

// Smooth is a smoothstep S-curve.
func Smooth(t float64) float64 {
	return t * t * (3 - 2*t)
}

// ThereAndBack runs the curve forward and back again. f(1) = 0, so an
// animation using it ends at its initial state.
func ThereAndBack(t float64) float64 {
	if t < 0.5 {
		return 2 * t
	}
	return 2 - 2*t
}

var curves = map[string]Func{
	"linear":         Linear,
	"smooth":         Smooth,
	"there_and_back": ThereAndBack,
	"in_quad":        ease.InQuad,
	"out_quad":       ease.OutQuad,
	"in_out_quad":    ease.InOutQuad,
	"in_cubic":       ease.InCubic,
	"out_cubic":      ease.OutCubic,
	"in_out_cubic":   ease.InOutCubic,
	"in_sine":        ease.InSine,
	"out_sine":       ease.OutSine,
	"in_out_sine":    ease.InOutSine,
	"in_back":        ease.InBack,
	"out_back":       ease.OutBack,
	"in_out_back":    ease.InOutBack,
	"in_bounce":      ease.InBounce,
	"out_bounce":     ease.OutBounce,
	"in_out_bounce":  ease.InOutBounce,
	"in_elastic":     ease.InElastic,
	"out_elastic":    ease.OutElastic,
}

// Lookup resolves a curve by name. The empty name resolves to Linear.
// Names are case-insensitive and accept '-' in place of '_'.
func Lookup(name string) (Func, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if key == "" {
		return Linear, nil
	}
	f, ok := curves[key]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return f, nil
}

// Names returns the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OrLinear returns f, or Linear when f is nil.
func OrLinear(f Func) Func {
	if f == nil {
		return Linear
	}
	return f
}
