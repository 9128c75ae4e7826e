package webdemo

// Topic ids, matching the lesson routes of the site.
const (
	TopicPNSequence  = "pn-sequence"
	TopicFHSS        = "fhss"
	TopicAccess      = "aloha-csma"
	TopicPoleZero    = "pole-zero-analysis"
	TopicPulse       = "pulse-shaping"
	TopicCost        = "dft-vs-fft"
	TopicConvolution = "convolution"
)

const (
	pointKindPole = "pole"
	pointKindZero = "zero"
)
