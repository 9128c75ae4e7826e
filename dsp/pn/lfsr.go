package pn

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// State is the content of a shift register, one bit (0 or 1) per element.
type State []uint8

// DefaultTaps are the feedback taps of the default 4-bit register.
func DefaultTaps() []int { return []int{3, 2} }

// DefaultSeed is the initial content of the default 4-bit register.
func DefaultSeed() State { return State{1, 0, 0, 1} }

// Init validates seed as a register of the given width and returns a copy.
// The all-zero seed is accepted; it is a fixed point that emits only zeros.
func Init(seed []uint8, width int) (State, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: register width must be >= 1: %d", core.ErrInvalidParameter, width)
	}
	if len(seed) != width {
		return nil, fmt.Errorf("%w: seed length must equal width %d: %d", core.ErrInvalidParameter, width, len(seed))
	}
	for i, b := range seed {
		if b > 1 {
			return nil, fmt.Errorf("%w: seed bit %d must be 0 or 1: %d", core.ErrInvalidParameter, i, b)
		}
	}
	s := make(State, width)
	copy(s, seed)
	return s, nil
}

// ParseState reads a register from a string of '0' and '1' characters.
func ParseState(str string) (State, error) {
	s := make(State, 0, len(str))
	for i, r := range str {
		switch r {
		case '0':
			s = append(s, 0)
		case '1':
			s = append(s, 1)
		default:
			return nil, fmt.Errorf("%w: state character %d must be 0 or 1: %q", core.ErrInvalidParameter, i, r)
		}
	}
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: state must not be empty", core.ErrInvalidParameter)
	}
	return s, nil
}

// IsZero reports whether every bit is 0.
func (s State) IsZero() bool {
	for _, b := range s {
		if b != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether s and o hold the same bits.
func (s State) Equal(o State) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)
	return out
}

func (s State) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, v := range s {
		b.WriteByte('0' + v)
	}
	return b.String()
}

// Step advances the register once. It returns the emitted bit and the new
// state; s itself is left untouched.
func Step(s State, taps []int) (uint8, State, error) {
	if err := validateTaps(len(s), taps); err != nil {
		return 0, nil, err
	}
	next := make(State, len(s))
	out := stepInto(next, s, taps)
	return out, next, nil
}

// stepInto writes the successor of src into dst. dst and src may alias.
func stepInto(dst, src State, taps []int) uint8 {
	var out uint8
	for _, t := range taps {
		out ^= src[t]
	}
	copy(dst[1:], src[:len(src)-1])
	dst[0] = out
	return out
}

func validateTaps(width int, taps []int) error {
	if width < 1 {
		return fmt.Errorf("%w: register must not be empty", core.ErrInvalidParameter)
	}
	if len(taps) == 0 {
		return fmt.Errorf("%w: taps must not be empty", core.ErrInvalidParameter)
	}
	for _, t := range taps {
		if t < 0 || t >= width {
			return fmt.Errorf("%w: tap must be in [0,%d): %d", core.ErrInvalidParameter, width, t)
		}
	}
	return nil
}

// Period returns the number of steps after which the register first
// returns to seed, or 0 if that does not happen within limit steps.
// Registers whose last bit is not tapped are not invertible and may never
// return to their seed.
func Period(seed State, taps []int, limit int) (int, error) {
	if err := validateTaps(len(seed), taps); err != nil {
		return 0, err
	}
	if limit < 1 {
		return 0, fmt.Errorf("%w: period limit must be >= 1: %d", core.ErrInvalidParameter, limit)
	}
	cur := seed.Clone()
	for n := 1; n <= limit; n++ {
		stepInto(cur, cur, taps)
		if cur.Equal(seed) {
			return n, nil
		}
	}
	return 0, nil
}

// IsMaximal reports whether taps give a maximal-length register of the
// given width, i.e. a period of 2^width - 1 from any non-zero seed.
func IsMaximal(width int, taps []int) (bool, error) {
	if width < 1 || width > 30 {
		return false, fmt.Errorf("%w: width must be in [1,30]: %d", core.ErrInvalidParameter, width)
	}
	seed := make(State, width)
	seed[0] = 1
	want := 1<<width - 1
	p, err := Period(seed, taps, want)
	if err != nil {
		return false, err
	}
	return p == want, nil
}

// Generator is a stateful register that remembers its seed.
type Generator struct {
	seed  State
	state State
	taps  []int
}

// NewGenerator validates seed and taps and returns a generator positioned
// at seed.
func NewGenerator(seed State, taps []int) (*Generator, error) {
	s, err := Init(seed, len(seed))
	if err != nil {
		return nil, err
	}
	if err := validateTaps(len(s), taps); err != nil {
		return nil, err
	}
	return &Generator{
		seed:  s,
		state: s.Clone(),
		taps:  append([]int(nil), taps...),
	}, nil
}

// NewDefaultGenerator returns the 4-bit register with seed 1001 and taps
// {3, 2}.
func NewDefaultGenerator() *Generator {
	g, err := NewGenerator(DefaultSeed(), DefaultTaps())
	if err != nil {
		panic(err)
	}
	return g
}

// Next advances the register and returns the emitted bit.
func (g *Generator) Next() uint8 {
	return stepInto(g.state, g.state, g.taps)
}

// Bits returns the next n emitted bits.
func (g *Generator) Bits(n int) []uint8 {
	if n <= 0 {
		return nil
	}
	out := make([]uint8, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}

// State returns a copy of the current register content.
func (g *Generator) State() State { return g.state.Clone() }

// Seed returns a copy of the seed.
func (g *Generator) Seed() State { return g.seed.Clone() }

// Taps returns a copy of the feedback taps.
func (g *Generator) Taps() []int { return append([]int(nil), g.taps...) }

// Width returns the register width.
func (g *Generator) Width() int { return len(g.seed) }

// Reset rewinds the register to its seed.
func (g *Generator) Reset() {
	copy(g.state, g.seed)
}
