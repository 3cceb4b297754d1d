package dag

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [DAG.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [DAG.AddNode] when a node with the same
	// ID already exists.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [DAG.AddEdge] when the From node does
	// not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [DAG.AddEdge] when the To node does
	// not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrNonConsecutiveRows is returned by [DAG.Validate] when an edge does not
	// go from row r to row r+1.
	ErrNonConsecutiveRows = errors.New("edges must connect consecutive rows")

	// ErrGraphHasCycle is returned by [DAG.Validate] when a cycle is detected.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// Metadata stores arbitrary key-value pairs attached to nodes, edges or the
// graph.
type Metadata map[string]any

// Node is a vertex assigned to a row (0 = top).
type Node struct {
	ID   string
	Row  int
	Meta Metadata
}

// Flag reports whether the node's metadata holds key set to true.
func (n Node) Flag(key string) bool {
	v, _ := n.Meta[key].(bool)
	return v
}

// Edge is a directed connection from a node to a node one row below.
type Edge struct {
	From string
	To   string
	Meta Metadata
}

// DAG is a directed acyclic graph whose nodes are organized into rows.
// The zero value is not usable; use [New].
type DAG struct {
	order    []string
	nodes    map[string]*Node
	edges    []Edge
	outgoing map[string][]string
	incoming map[string][]string
	rows     map[int][]*Node
	meta     Metadata
}

// New creates an empty DAG with optional graph-level metadata.
func New(meta Metadata) *DAG {
	if meta == nil {
		meta = Metadata{}
	}
	return &DAG{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
		rows:     make(map[int][]*Node),
		meta:     meta,
	}
}

// Meta returns the graph-level metadata map.
func (d *DAG) Meta() Metadata { return d.meta }

// AddNode adds a node and indexes it by row.
func (d *DAG) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := d.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Meta == nil {
		n.Meta = Metadata{}
	}
	node := &n
	d.nodes[node.ID] = node
	d.order = append(d.order, node.ID)
	d.rows[node.Row] = append(d.rows[node.Row], node)
	return nil
}

// AddEdge adds a directed edge between two existing nodes. Row consistency is
// checked by [DAG.Validate], not here.
func (d *DAG) AddEdge(e Edge) error {
	if _, ok := d.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := d.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if e.Meta == nil {
		e.Meta = Metadata{}
	}
	d.edges = append(d.edges, e)
	d.outgoing[e.From] = append(d.outgoing[e.From], e.To)
	d.incoming[e.To] = append(d.incoming[e.To], e.From)
	return nil
}

// Nodes returns all nodes in insertion order. The pointers refer to the nodes
// stored in the graph.
func (d *DAG) Nodes() []*Node {
	nodes := make([]*Node, len(d.order))
	for i, id := range d.order {
		nodes[i] = d.nodes[id]
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (d *DAG) Edges() []Edge { return slices.Clone(d.edges) }

// NodeCount returns the number of nodes in the graph.
func (d *DAG) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges in the graph.
func (d *DAG) EdgeCount() int { return len(d.edges) }

// Node returns the node with the given ID.
func (d *DAG) Node(id string) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// Children returns the IDs of nodes id has edges to. Read-only.
func (d *DAG) Children(id string) []string { return d.outgoing[id] }

// Parents returns the IDs of nodes with edges to id. Read-only.
func (d *DAG) Parents(id string) []string { return d.incoming[id] }

// NodesInRow returns the nodes of a row in insertion order.
func (d *DAG) NodesInRow(row int) []*Node { return d.rows[row] }

// RowCount returns the number of distinct rows.
func (d *DAG) RowCount() int { return len(d.rows) }

// RowIDs returns all row indices in ascending order.
func (d *DAG) RowIDs() []int {
	return slices.Sorted(maps.Keys(d.rows))
}

// MaxRow returns the highest row index, or 0 if the graph is empty.
func (d *DAG) MaxRow() int {
	ids := d.RowIDs()
	if len(ids) == 0 {
		return 0
	}
	return ids[len(ids)-1]
}

// Sources returns nodes without incoming edges, in insertion order.
func (d *DAG) Sources() []*Node {
	var out []*Node
	for _, id := range d.order {
		if len(d.incoming[id]) == 0 {
			out = append(out, d.nodes[id])
		}
	}
	return out
}

// Sinks returns nodes without outgoing edges, in insertion order.
func (d *DAG) Sinks() []*Node {
	var out []*Node
	for _, id := range d.order {
		if len(d.outgoing[id]) == 0 {
			out = append(out, d.nodes[id])
		}
	}
	return out
}

// Validate checks that every edge joins consecutive rows and that the graph
// is acyclic.
func (d *DAG) Validate() error {
	for _, e := range d.edges {
		if d.nodes[e.To].Row != d.nodes[e.From].Row+1 {
			return ErrNonConsecutiveRows
		}
	}
	return d.detectCycles()
}

func (d *DAG) detectCycles() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(d.nodes))
	var visit func(id string) bool
	visit = func(id string) bool {
		color[id] = gray
		for _, child := range d.outgoing[id] {
			switch color[child] {
			case white:
				if visit(child) {
					return true
				}
			case gray:
				return true
			}
		}
		color[id] = black
		return false
	}

	for _, id := range d.order {
		if color[id] == white && visit(id) {
			return ErrGraphHasCycle
		}
	}
	return nil
}
