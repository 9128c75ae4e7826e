// Package zplane evaluates the magnitude response of a discrete-time
// system from its poles and zeros.
//
// On the unit circle z = e^{jω} the gain is the product of distances to
// the zeros divided by the product of distances to the poles:
//
//	|H(e^{jω})| = Π|z - z_i| / Π|z - p_k|
//
// Poles close to the circle raise peaks at their angle, zeros close to it
// carve notches. Stability is reported, never enforced.
package zplane
