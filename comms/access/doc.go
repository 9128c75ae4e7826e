// Package access models how several transmitters share one channel:
// random access (pure and slotted ALOHA, a carrier-sense variant) as a
// slot-by-slot simulation with throughput formulas, and code division with
// orthogonal Walsh codes.
package access
