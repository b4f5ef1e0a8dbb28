// Package wincorr removes the bias an optical window (for example a cryostat
// viewport) introduces into reflectance spectra.
//
// Light reaching the detector through q window interfaces is modelled as a
// truncated series of internal reflections. For one measured reflectance R0
// and window transmission T the corrected reflectance x is the real root of
//
//	P(x) = -R0 + Σ_{i=1..9} T^(2q) · (1-T)^(i-1) · x^i
//
// optionally followed by the empirical extended-geometry calibration
// x / (1.0245 - 0.10612·x). The measurement uncertainty is rescaled by the
// same factor as the reflectance.
//
// Every sample is corrected independently. Degenerate samples (no real root,
// zero reflectance, zero denominators) show up as NaN or Inf in the result;
// only unexpected failures are reported as an [*Error], and they abort the
// whole batch.
package wincorr
