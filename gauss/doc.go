// Package gauss provides Gaussian profile bases for PSF-like features:
// a 1-D profile, its centroid derivative (the linearized shift term), and a
// separable 2-D profile over paired input vectors.
//
// The profile shape (mean, stddev) is fixed at construction; only the
// amplitude is a fitted coefficient, which keeps the model linear. Combine a
// Gaussian with its DGaussian column to fit small centroid offsets without
// leaving the linear regime.
package gauss
