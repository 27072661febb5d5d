// Package serialize persists generators and fit results as YAML documents.
//
// A document records the generator kind, its construction parameters, the
// per-coefficient prior, any nested components (for stacked and cross-term
// generators), and — when present — the fit state (posterior mean, sigmas
// and covariance). Loading reconstructs the concrete generator through its
// public constructor, so every validation rule applies to persisted models
// exactly as it does to hand-built ones.
//
// Uninformative prior sigmas round-trip as YAML's native `.inf`.
package serialize
