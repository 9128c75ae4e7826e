package info

import (
	"container/heap"
)

type huffNode struct {
	weight  float64
	symbols []int
	order   int
}

type huffQueue []*huffNode

func (q huffQueue) Len() int { return len(q) }
func (q huffQueue) Less(i, j int) bool {
	if q[i].weight != q[j].weight {
		return q[i].weight < q[j].weight
	}
	return q[i].order < q[j].order
}
func (q huffQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *huffQueue) Push(x any)   { *q = append(*q, x.(*huffNode)) }
func (q *huffQueue) Pop() any {
	old := *q
	n := old[len(old)-1]
	*q = old[:len(old)-1]
	return n
}

// HuffmanLengths returns the codeword length per symbol of a binary
// Huffman code for probs. Ties merge in input order, so results are
// deterministic. A single symbol gets length 1.
func HuffmanLengths(probs []float64) ([]int, error) {
	p, err := Normalize(probs)
	if err != nil {
		return nil, err
	}
	lengths := make([]int, len(p))
	if len(p) == 1 {
		lengths[0] = 1
		return lengths, nil
	}

	q := make(huffQueue, len(p))
	for i, w := range p {
		q[i] = &huffNode{weight: w, symbols: []int{i}, order: i}
	}
	heap.Init(&q)
	order := len(p)
	for q.Len() > 1 {
		a := heap.Pop(&q).(*huffNode)
		b := heap.Pop(&q).(*huffNode)
		for _, s := range a.symbols {
			lengths[s]++
		}
		for _, s := range b.symbols {
			lengths[s]++
		}
		heap.Push(&q, &huffNode{
			weight:  a.weight + b.weight,
			symbols: append(append([]int(nil), a.symbols...), b.symbols...),
			order:   order,
		})
		order++
	}
	return lengths, nil
}

// AverageLength returns Σ p_i·l_i over normalized probs.
func AverageLength(probs []float64, lengths []int) (float64, error) {
	p, err := Normalize(probs)
	if err != nil {
		return 0, err
	}
	if len(lengths) != len(p) {
		return 0, errLengthMismatch(len(p), len(lengths))
	}
	avg := 0.0
	for i, l := range lengths {
		avg += p[i] * float64(l)
	}
	return avg, nil
}
