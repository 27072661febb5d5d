// Package astro provides light-curve profile bases for astrophysical
// features: a flare (fast-rise, exponential-decay) profile and an
// exponential detector ramp.
//
// Each profile's shape parameters are fixed at construction and only the
// amplitude is fitted, so the components stay linear and stack freely with
// polynomial or spline backgrounds via the combined package.
package astro
