// Package signal samples the reference waveforms used by the teaching
// widgets and provides the small sampled-signal helpers around them:
// aliasing, PCM quantization, Fourier partial sums, seeded noise, and the
// single-slit diffraction and Euler helix curves.
//
// [Sample] is the entry point for continuous-time shapes (sine, cosine,
// rectangular pulse, sinc) evaluated on an evenly spaced grid.
package signal
