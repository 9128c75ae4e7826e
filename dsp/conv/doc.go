// Package conv provides direct linear convolution and cross-correlation of
// sampled signals, and the sampled convolution integral of two continuous
// signals used to visualize y(t) = ∫ x(τ)·h(t−τ) dτ.
//
// All routines are direct O(N·M) time-domain sums. The signals drawn by
// the lesson widgets are a few hundred samples long, where a direct sum
// beats FFT block convolution.
//
//	y, err := conv.Direct(x, h)                    // full, len(x)+len(h)-1
//	c, err := conv.Correlate(rx, tpl, conv.ModeValid)
//	i, v := conv.FindPeak(c)
package conv
