// Package pn generates pseudo-noise sequences from Fibonacci linear
// feedback shift registers and builds the spread-spectrum helpers on top
// of them: direct-sequence spreading with a chip code and random channel
// hopping.
//
// A register of width w holds bits s[0..w-1]. One step emits the XOR of
// the tapped bits and shifts it in at position 0:
//
//	out  = s[t0] ^ s[t1] ^ ...
//	next = [out, s[0], ..., s[w-2]]
//
// With taps {3, 2} and seed 1001 the 4-bit register runs through all 15
// non-zero states before repeating.
package pn
