// Package transmission holds window-material transmission tables and the
// piecewise-linear lookup used by the window correction.
//
// A [Table] maps wavelength to the fraction of light transmitted by one
// window material. Lookups between table points are linear; lookups outside
// the table domain are clamped to the nearest boundary value rather than
// extrapolated. Callers that need to know whether a spectrum falls inside
// the calibrated domain can ask [Table.Covers].
package transmission
