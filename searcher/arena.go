package searcher

import "errors"

// NodeID identifies a node within one arena. IDs are assigned sequentially
// at creation and never reused, so they stay valid for the whole run.
type NodeID int

// NoNode is the parent id of the root node.
const NoNode NodeID = -1

// State is the opaque payload describing the reasoning path accumulated up
// to a node. Its content is defined by the Generator; the searcher never
// interprets it.
type State any

var errRootExists = errors.New("root node already created")

type node struct {
	id       NodeID
	parent   NodeID
	children []NodeID // insertion order only, no implied ranking
	state    State
	visits   int
	value    float64 // cumulative backpropagated score
	terminal bool
}

// averageValue is undefined for unvisited nodes; callers must special-case
// visits == 0 instead of dividing by zero.
func (n *node) averageValue() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.value / float64(n.visits)
}

// arena owns every node of one search tree. Nodes live in a flat slice
// indexed by id; parent/child links are ids, not owning references, so the
// tree is acyclic by construction and has no lifetime ambiguity.
type arena struct {
	nodes []node
}

func newArena() *arena {
	return &arena{}
}

func (a *arena) createRoot(state State) (NodeID, error) {
	if len(a.nodes) > 0 {
		return NoNode, errRootExists
	}
	a.nodes = append(a.nodes, node{id: 0, parent: NoNode, state: state})
	return 0, nil
}

func (a *arena) createChild(parent NodeID, state State) (NodeID, error) {
	if !a.valid(parent) {
		return NoNode, UnknownNodeError{ID: parent}
	}
	id := NodeID(len(a.nodes))
	a.nodes = append(a.nodes, node{id: id, parent: parent, state: state})
	a.nodes[parent].children = append(a.nodes[parent].children, id)
	return id, nil
}

func (a *arena) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(a.nodes)
}

// get panics on an id the arena never issued: every internal caller works
// with ids it created, so a miss is arena misuse, not a runtime condition.
func (a *arena) get(id NodeID) *node {
	if !a.valid(id) {
		panic(UnknownNodeError{ID: id})
	}
	return &a.nodes[id]
}

// ancestors returns the path from the given node up to and including the
// root, in child-to-root order.
func (a *arena) ancestors(id NodeID) ([]NodeID, error) {
	if !a.valid(id) {
		return nil, UnknownNodeError{ID: id}
	}
	var chain []NodeID
	for id != NoNode {
		chain = append(chain, id)
		id = a.nodes[id].parent
	}
	return chain, nil
}

// pathFromRoot returns the reverse of ancestors: root-to-node order.
func (a *arena) pathFromRoot(id NodeID) ([]NodeID, error) {
	chain, err := a.ancestors(id)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

func (a *arena) size() int {
	return len(a.nodes)
}
