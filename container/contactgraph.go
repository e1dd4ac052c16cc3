package container

import (
	"github.com/tempnet-io/tempnet/cardinality"
	"github.com/tempnet-io/tempnet/temporal"
)

// ContactGraph is the static projection of a contact sequence: an undirected weighted adjacency structure where an
// edge's weight is the number of contacts (or an explicit weight, for graphs loaded from files) between its
// endpoints. Node and neighbor enumeration is in ascending node ID order.
type ContactGraph struct {
	weights   map[uint64]map[uint64]float64
	neighbors map[uint64]cardinality.Duplex
	nodes     cardinality.Duplex
	numEdges  uint64
}

func NewContactGraph() *ContactGraph {
	return &ContactGraph{
		weights:   map[uint64]map[uint64]float64{},
		neighbors: map[uint64]cardinality.Duplex{},
		nodes:     cardinality.NewBitmap64(),
	}
}

// FromLog collapses a contact log into its aggregate graph, counting one unit of weight per event.
func FromLog(log *temporal.ContactLog) *ContactGraph {
	graph := NewContactGraph()

	log.EachEvent(func(event temporal.Event) bool {
		graph.AddContact(event.A, event.B)
		return true
	})

	return graph
}

// AddNode registers a node without requiring an incident edge.
func (s *ContactGraph) AddNode(node uint64) {
	s.nodes.Add(node)
}

// AddContact increments the weight of the edge between a and b by one, creating the edge if absent.
func (s *ContactGraph) AddContact(a, b uint64) {
	s.AddWeight(a, b, 1)
}

// AddWeight adds the given weight onto the edge between a and b, creating the edge if absent.
func (s *ContactGraph) AddWeight(a, b uint64, weight float64) {
	s.SetWeight(a, b, s.Weight(a, b)+weight)
}

// SetWeight sets the weight of the undirected edge between a and b.
func (s *ContactGraph) SetWeight(a, b uint64, weight float64) {
	s.nodes.Add(a, b)

	if s.link(a, b, weight) {
		s.numEdges += 1
	}

	s.link(b, a, weight)
}

func (s *ContactGraph) link(from, to uint64, weight float64) bool {
	adjacent, exists := s.weights[from]

	if !exists {
		adjacent = map[uint64]float64{}

		s.weights[from] = adjacent
		s.neighbors[from] = cardinality.NewBitmap64()
	}

	_, hadEdge := adjacent[to]

	adjacent[to] = weight
	s.neighbors[from].Add(to)

	return !hadEdge
}

// Weight returns the weight of the edge between a and b, or zero if no such edge exists.
func (s *ContactGraph) Weight(a, b uint64) float64 {
	if adjacent, exists := s.weights[a]; exists {
		return adjacent[b]
	}

	return 0
}

// HasEdge returns true if an edge exists between a and b.
func (s *ContactGraph) HasEdge(a, b uint64) bool {
	if adjacent, exists := s.weights[a]; exists {
		_, hasEdge := adjacent[b]
		return hasEdge
	}

	return false
}

func (s *ContactGraph) NumNodes() uint64 {
	return s.nodes.Cardinality()
}

func (s *ContactGraph) NumEdges() uint64 {
	return s.numEdges
}

// Nodes returns the set of registered node IDs.
func (s *ContactGraph) Nodes() cardinality.Duplex {
	return s.nodes.Clone()
}

// Degrees returns the number of distinct neighbors of the given node.
func (s *ContactGraph) Degrees(node uint64) uint64 {
	if neighbors, exists := s.neighbors[node]; exists {
		return neighbors.Cardinality()
	}

	return 0
}

// Strength returns the sum of the weights of the node's incident edges.
func (s *ContactGraph) Strength(node uint64) float64 {
	var strength float64

	if adjacent, exists := s.weights[node]; exists {
		for _, weight := range adjacent {
			strength += weight
		}
	}

	return strength
}

func (s *ContactGraph) EachNode(delegate func(node uint64) bool) {
	s.nodes.Each(delegate)
}

// EachAdjacent enumerates the neighbors of the given node in ascending ID order along with the connecting edge
// weights.
func (s *ContactGraph) EachAdjacent(node uint64, delegate func(adjacent uint64, weight float64) bool) {
	if neighbors, exists := s.neighbors[node]; exists {
		adjacent := s.weights[node]

		neighbors.Each(func(neighbor uint64) bool {
			return delegate(neighbor, adjacent[neighbor])
		})
	}
}

// Adjacent returns the node's neighbors in ascending ID order.
func (s *ContactGraph) Adjacent(node uint64) []uint64 {
	if neighbors, exists := s.neighbors[node]; exists {
		return neighbors.Slice()
	}

	return nil
}

// EachEdge enumerates every undirected edge exactly once, with a < b.
func (s *ContactGraph) EachEdge(delegate func(a, b uint64, weight float64) bool) {
	halted := false

	s.nodes.Each(func(node uint64) bool {
		s.EachAdjacent(node, func(adjacent uint64, weight float64) bool {
			if node < adjacent {
				if !delegate(node, adjacent, weight) {
					halted = true
				}
			}

			return !halted
		})

		return !halted
	})
}
