package temporal

// NodeIndex interns opaque node labels as dense uint64 IDs. The first lookup of an unseen label allocates the next
// free ID; repeated lookups return the same ID. Readers and event-source drivers use the index to translate
// external identifiers into the integer node IDs the measure implementations operate on.
type NodeIndex struct {
	ids    map[string]uint64
	labels []string
}

func NewNodeIndex() *NodeIndex {
	return &NodeIndex{
		ids: map[string]uint64{},
	}
}

// ID returns the dense ID for the given label, allocating a new one if the label has not been seen before.
func (s *NodeIndex) ID(label string) uint64 {
	if id, exists := s.ids[label]; exists {
		return id
	}

	id := uint64(len(s.labels))

	s.ids[label] = id
	s.labels = append(s.labels, label)

	return id
}

// Label returns the label interned for the given ID. The second return value is false if the ID was never
// allocated.
func (s *NodeIndex) Label(id uint64) (string, bool) {
	if id >= uint64(len(s.labels)) {
		return "", false
	}

	return s.labels[id], true
}

func (s *NodeIndex) Len() int {
	return len(s.labels)
}

// EachLabel enumerates interned labels in ID allocation order.
func (s *NodeIndex) EachLabel(delegate func(label string, id uint64) bool) {
	for id, label := range s.labels {
		if !delegate(label, uint64(id)) {
			break
		}
	}
}
