package solver

import "container/heap"

// frontier is the container of live B&B nodes.
type frontier interface {
	push(n *searchNode)
	pop() *searchNode
	len() int
	peak() int
}

// newFrontier returns the container selected by f.
func newFrontier(f Frontier) (frontier, error) {
	switch f {
	case DepthFirst:
		return &stackFrontier{}, nil
	case BestFirst:
		return &heapFrontier{}, nil
	default:
		return nil, ErrUnsupportedFrontier
	}
}

// stackFrontier is a LIFO stack: depth-first exploration.
type stackFrontier struct {
	nodes []*searchNode
	max   int
}

func (s *stackFrontier) push(n *searchNode) {
	s.nodes = append(s.nodes, n)
	if len(s.nodes) > s.max {
		s.max = len(s.nodes)
	}
}

func (s *stackFrontier) pop() *searchNode {
	last := len(s.nodes) - 1
	n := s.nodes[last]
	s.nodes[last] = nil // release the path for GC
	s.nodes = s.nodes[:last]

	return n
}

func (s *stackFrontier) len() int  { return len(s.nodes) }
func (s *stackFrontier) peak() int { return s.max }

// heapFrontier pops the node with the largest bound first.
// Ties prefer deeper nodes, then insertion order, keeping runs reproducible.
type heapFrontier struct {
	pq  nodePQ
	seq uint64
	max int
}

func (h *heapFrontier) push(n *searchNode) {
	h.seq++
	n.seq = h.seq
	heap.Push(&h.pq, n)
	if h.pq.Len() > h.max {
		h.max = h.pq.Len()
	}
}

func (h *heapFrontier) pop() *searchNode { return heap.Pop(&h.pq).(*searchNode) }
func (h *heapFrontier) len() int         { return h.pq.Len() }
func (h *heapFrontier) peak() int        { return h.max }

// nodePQ implements heap.Interface as a max-heap on bound.
type nodePQ []*searchNode

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.bound != b.bound {
		return a.bound > b.bound
	}
	if a.level != b.level {
		return a.level > b.level
	}

	return a.seq < b.seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*searchNode)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	*pq = old[:last]

	return n
}
