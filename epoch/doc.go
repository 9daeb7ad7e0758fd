// Package epoch provides a Julian Ephemeris Date holder used as the time
// argument for precession polynomials.
//
// A JDate exposes successive powers of T, the number of Julian centuries
// of Terrestrial Time elapsed since J2000.0. Powers are memoized on the
// JDate itself, so repeated polynomial evaluations at one epoch only pay
// for each multiplication once.
package epoch
