package container

import (
	"sort"
)

const (
	PropertyTypeInt PropertyType = iota
	PropertyTypeFloat
	PropertyTypeString
	PropertyTypeMixed
)

// PropertyType classifies the value type of a named node property across all nodes carrying it.
type PropertyType int

func (s PropertyType) String() string {
	switch s {
	case PropertyTypeInt:
		return "int"
	case PropertyTypeFloat:
		return "float"
	case PropertyTypeString:
		return "string"
	default:
		return "mixed"
	}
}

// NodeProperties stores named per-node property values keyed by dense node ID. Values are dynamically typed; a
// property whose values do not share one of int, float64 or string classifies as mixed.
type NodeProperties struct {
	values map[string]map[uint64]any
}

func NewNodeProperties() *NodeProperties {
	return &NodeProperties{
		values: map[string]map[uint64]any{},
	}
}

// Declare registers a property name without assigning values. Declaring an existing property is a no-op.
func (s *NodeProperties) Declare(name string) {
	if _, exists := s.values[name]; !exists {
		s.values[name] = map[uint64]any{}
	}
}

func (s *NodeProperties) Set(name string, node uint64, value any) {
	s.Declare(name)
	s.values[name][node] = value
}

func (s *NodeProperties) Get(name string, node uint64) (any, bool) {
	if nodeValues, exists := s.values[name]; exists {
		value, hasValue := nodeValues[node]
		return value, hasValue
	}

	return nil, false
}

// Names returns the declared property names in lexical order.
func (s *NodeProperties) Names() []string {
	names := make([]string, 0, len(s.values))

	for name := range s.values {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Type classifies the named property by inspecting every assigned value.
func (s *NodeProperties) Type(name string) PropertyType {
	var (
		allInt    = true
		allFloat  = true
		allString = true
	)

	for _, value := range s.values[name] {
		switch value.(type) {
		case int:
			allFloat = false
			allString = false
		case float64:
			allInt = false
			allString = false
		case string:
			allInt = false
			allFloat = false
		default:
			allInt = false
			allFloat = false
			allString = false
		}
	}

	switch {
	case allInt:
		return PropertyTypeInt
	case allFloat:
		return PropertyTypeFloat
	case allString:
		return PropertyTypeString
	default:
		return PropertyTypeMixed
	}
}

// NumericNames returns the names of all properties whose values are uniformly numeric.
func (s *NodeProperties) NumericNames() []string {
	var numeric []string

	for _, name := range s.Names() {
		switch s.Type(name) {
		case PropertyTypeInt, PropertyTypeFloat:
			numeric = append(numeric, name)
		}
	}

	return numeric
}
