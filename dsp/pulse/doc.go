// Package pulse synthesizes pulse-shaping impulse responses and the
// matched filter that detects them.
//
// [RaisedCosine] samples the raised-cosine response over a symmetric span
// of symbols. Both removable singularities of the closed form, t = 0 and
// |t| = 1/(2*rollOff), are replaced by their analytic limits, so the
// response is finite for every roll-off and oversampling factor.
package pulse
