// Package spectrum compares naive DFT and FFT costs and provides the
// frequency-domain helpers behind the duality and OFDM widgets.
//
// [EstimateCost] is closed-form: it counts operations and never runs a
// transform. [Bins] and [Transform] do run a real FFT (algo-fft backend)
// when a widget needs the spectrum of a sampled series.
package spectrum
