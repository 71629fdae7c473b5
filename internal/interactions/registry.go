package interactions

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownNode   = errors.New("unknown interaction node")
	ErrDuplicateNode = errors.New("interaction node already registered")
)

// Node pairs a descriptor with the runner that executes it.
type Node struct {
	Descriptor Descriptor
	Runner     Runner
}

// Registry holds the available nodes. Populate it before serving; it is not
// safe for concurrent registration.
type Registry struct {
	nodes map[string]Node
}

func NewRegistry() *Registry {
	return &Registry{nodes: make(map[string]Node)}
}

// Register adds a node. Names must be unique.
func (r *Registry) Register(n Node) error {
	name := n.Descriptor.Name
	if name == "" {
		return errors.New("interaction node requires a name")
	}
	if n.Runner == nil {
		return fmt.Errorf("interaction node %s requires a runner", name)
	}
	if _, exists := r.nodes[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateNode, name)
	}
	r.nodes[name] = n
	return nil
}

// Get retrieves a node by name.
func (r *Registry) Get(name string) (Node, bool) {
	n, ok := r.nodes[name]
	return n, ok
}

// All returns every descriptor, sorted by name.
func (r *Registry) All() []Descriptor {
	result := make([]Descriptor, 0, len(r.nodes))
	for _, n := range r.nodes {
		result = append(result, n.Descriptor)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
