package coding

import (
	"bytes"
	"fmt"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/klauspost/reedsolomon"
)

// ErasureCode splits a payload into data shards and adds Reed-Solomon
// parity shards. Any parity shards may be lost and the payload still
// recovered.
type ErasureCode struct {
	enc    reedsolomon.Encoder
	data   int
	parity int
}

// NewErasureCode returns a code with the given shard counts.
func NewErasureCode(data, parity int) (*ErasureCode, error) {
	if data < 1 {
		return nil, fmt.Errorf("%w: data shards must be >= 1: %d", core.ErrInvalidParameter, data)
	}
	if parity < 1 {
		return nil, fmt.Errorf("%w: parity shards must be >= 1: %d", core.ErrInvalidParameter, parity)
	}
	if data+parity > 256 {
		return nil, fmt.Errorf("%w: total shards must be <= 256: %d", core.ErrInvalidParameter, data+parity)
	}
	enc, err := reedsolomon.New(data, parity)
	if err != nil {
		return nil, fmt.Errorf("coding: %w", err)
	}
	return &ErasureCode{enc: enc, data: data, parity: parity}, nil
}

// DataShards returns the number of data shards.
func (c *ErasureCode) DataShards() int { return c.data }

// ParityShards returns the number of parity shards.
func (c *ErasureCode) ParityShards() int { return c.parity }

// Encode splits payload into equally sized data shards (zero padded) and
// computes the parity shards. The returned slice has DataShards()+
// ParityShards() entries.
func (c *ErasureCode) Encode(payload []byte) ([][]byte, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: payload must not be empty", core.ErrInvalidParameter)
	}
	shards, err := c.enc.Split(append([]byte(nil), payload...))
	if err != nil {
		return nil, fmt.Errorf("coding: split: %w", err)
	}
	if err := c.enc.Encode(shards); err != nil {
		return nil, fmt.Errorf("coding: encode: %w", err)
	}
	return shards, nil
}

// Reconstruct rebuilds missing shards (nil entries) in place and returns
// the first size bytes of the payload.
func (c *ErasureCode) Reconstruct(shards [][]byte, size int) ([]byte, error) {
	if len(shards) != c.data+c.parity {
		return nil, fmt.Errorf("%w: expected %d shards, got %d",
			core.ErrInvalidParameter, c.data+c.parity, len(shards))
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: payload size must be >= 0: %d", core.ErrInvalidParameter, size)
	}
	if err := c.enc.Reconstruct(shards); err != nil {
		return nil, fmt.Errorf("coding: reconstruct: %w", err)
	}
	ok, err := c.enc.Verify(shards)
	if err != nil {
		return nil, fmt.Errorf("coding: verify: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("coding: parity mismatch after reconstruction")
	}
	var buf bytes.Buffer
	if err := c.enc.Join(&buf, shards, size); err != nil {
		return nil, fmt.Errorf("coding: join: %w", err)
	}
	return buf.Bytes(), nil
}

// Verify reports whether the parity shards match the data shards.
func (c *ErasureCode) Verify(shards [][]byte) (bool, error) {
	ok, err := c.enc.Verify(shards)
	if err != nil {
		return false, fmt.Errorf("coding: verify: %w", err)
	}
	return ok, nil
}
