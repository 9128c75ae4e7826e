package access

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// Defaults of the random-access widget.
const (
	DefaultNodes    = 5
	DefaultTimeline = 50
	DefaultLoad     = 0.5
	// sendFactor scales the offered load into a per-node send probability.
	sendFactor = 0.2
)

// Protocol selects the channel access rule.
type Protocol int

const (
	// ALOHA transmits whenever a node has data.
	ALOHA Protocol = iota
	// CSMA defers a lone transmission when the previous slot was busy.
	CSMA
)

func (p Protocol) String() string {
	switch p {
	case ALOHA:
		return "aloha"
	case CSMA:
		return "csma"
	default:
		return fmt.Sprintf("Protocol(%d)", int(p))
	}
}

// ParseProtocol accepts "aloha" and "csma".
func ParseProtocol(name string) (Protocol, error) {
	switch name {
	case "aloha":
		return ALOHA, nil
	case "csma":
		return CSMA, nil
	}
	return 0, fmt.Errorf("%w: unknown access protocol: %q", core.ErrInvalidParameter, name)
}

// SlotStatus is the outcome of one slot.
type SlotStatus int

const (
	Idle SlotStatus = iota
	Success
	Collision
	Backoff
)

func (s SlotStatus) String() string {
	switch s {
	case Idle:
		return "idle"
	case Success:
		return "success"
	case Collision:
		return "collision"
	case Backoff:
		return "backoff"
	default:
		return fmt.Sprintf("SlotStatus(%d)", int(s))
	}
}

func (s SlotStatus) busy() bool { return s == Success || s == Collision }

// Slot records one step of the channel. Nodes lists the transmitters that
// occupied the channel; it is empty for idle and backoff slots.
type Slot struct {
	Status SlotStatus
	Nodes  []int
}

// Stats accumulates frame counts over a run. Sent counts every frame put
// on the air, so a collision of k nodes adds k.
type Stats struct {
	Sent       int
	Successes  int
	Collisions int
	Slots      int
}

// SuccessRate is Successes/Sent, 0 before anything was sent.
func (s Stats) SuccessRate() float64 {
	if s.Sent == 0 {
		return 0
	}
	return float64(s.Successes) / float64(s.Sent)
}

// Throughput is the fraction of slots carrying a successful frame.
func (s Stats) Throughput() float64 {
	if s.Slots == 0 {
		return 0
	}
	return float64(s.Successes) / float64(s.Slots)
}

// Simulator steps a shared channel one slot at a time.
type Simulator struct {
	protocol Protocol
	load     float64
	nodes    int
	capacity int
	rng      *rand.Rand

	timeline []Slot
	stats    Stats
}

// NewSimulator returns a simulator with DefaultNodes nodes and a timeline
// of DefaultTimeline slots. Each node sends in a slot with probability
// load*0.2.
func NewSimulator(protocol Protocol, load float64, rng *rand.Rand) (*Simulator, error) {
	if protocol != ALOHA && protocol != CSMA {
		return nil, fmt.Errorf("%w: unknown access protocol: %d", core.ErrInvalidParameter, int(protocol))
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: simulator needs a random source", core.ErrInvalidParameter)
	}
	s := &Simulator{
		protocol: protocol,
		nodes:    DefaultNodes,
		capacity: DefaultTimeline,
		rng:      rng,
		timeline: make([]Slot, 0, DefaultTimeline),
	}
	if err := s.SetLoad(load); err != nil {
		return nil, err
	}
	return s, nil
}

// SetLoad changes the offered load, which must lie in [0, 5] so the send
// probability stays a probability.
func (s *Simulator) SetLoad(load float64) error {
	if math.IsNaN(load) || load < 0 || load*sendFactor > 1 {
		return fmt.Errorf("%w: load must be in [0,%v]: %v", core.ErrInvalidParameter, 1/sendFactor, load)
	}
	s.load = load
	return nil
}

// SetProtocol switches the access rule without clearing history.
func (s *Simulator) SetProtocol(p Protocol) { s.protocol = p }

// Protocol returns the access rule.
func (s *Simulator) Protocol() Protocol { return s.protocol }

// Load returns the offered load.
func (s *Simulator) Load() float64 { return s.load }

// Nodes returns the number of nodes.
func (s *Simulator) Nodes() int { return s.nodes }

// Step simulates one slot, appends it to the timeline and returns it.
func (s *Simulator) Step() Slot {
	p := s.load * sendFactor
	var senders []int
	for n := range s.nodes {
		if s.rng.Float64() < p {
			senders = append(senders, n)
		}
	}

	slot := Slot{Status: Idle}
	switch {
	case len(senders) == 1:
		if s.protocol == CSMA && len(s.timeline) > 0 && s.timeline[len(s.timeline)-1].Status.busy() {
			slot.Status = Backoff
			break
		}
		slot = Slot{Status: Success, Nodes: senders}
		s.stats.Successes++
		s.stats.Sent++
	case len(senders) > 1:
		slot = Slot{Status: Collision, Nodes: senders}
		s.stats.Collisions++
		s.stats.Sent += len(senders)
	}
	s.stats.Slots++

	if len(s.timeline) == s.capacity {
		copy(s.timeline, s.timeline[1:])
		s.timeline = s.timeline[:len(s.timeline)-1]
	}
	s.timeline = append(s.timeline, slot)
	return slot
}

// Timeline returns the most recent slots, oldest first.
func (s *Simulator) Timeline() []Slot {
	return append([]Slot(nil), s.timeline...)
}

// Stats returns the counters since the last Reset.
func (s *Simulator) Stats() Stats { return s.stats }

// Reset clears the timeline and statistics and returns to ALOHA at
// DefaultLoad.
func (s *Simulator) Reset() {
	s.timeline = s.timeline[:0]
	s.stats = Stats{}
	s.protocol = ALOHA
	s.load = DefaultLoad
}

// PureAlohaThroughput is S = G·e^(-2G) for offered load G frames per
// frame time.
func PureAlohaThroughput(g float64) float64 {
	return g * math.Exp(-2*g)
}

// SlottedAlohaThroughput is S = G·e^(-G).
func SlottedAlohaThroughput(g float64) float64 {
	return g * math.Exp(-g)
}
