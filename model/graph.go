package model

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Graph holds every container/element edge in one table. The per-container
// and per-element indexes are derived from it and only touched by putEdge
// and dropEdge, under the same lock, so both directions change together.
type Graph struct {
	mu    sync.RWMutex
	seq   uint64
	edges map[edgeKey]edge

	byContainer map[*Identity]map[*Identity]struct{}
	byElement   map[*Identity]map[*Identity]struct{}

	logger  *slog.Logger
	metrics *Metrics
}

type edgeKey struct {
	container *Identity
	element   *Identity
}

type edge struct {
	seq       uint64
	container Container
	element   Node
}

// GraphOption configures a Graph.
type GraphOption func(*Graph)

// WithLogger sets the graph logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) GraphOption {
	return func(g *Graph) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithMetrics records edge changes in m.
func WithMetrics(m *Metrics) GraphOption {
	return func(g *Graph) {
		g.metrics = m
	}
}

// NewGraph creates an empty graph.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		edges:       make(map[edgeKey]edge),
		byContainer: make(map[*Identity]map[*Identity]struct{}),
		byElement:   make(map[*Identity]map[*Identity]struct{}),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// link records c owning e. It reports whether a new edge was created.
func (g *Graph) link(c Container, e Node) (bool, error) {
	if err := g.checkElement(e); err != nil {
		g.metrics.rejected(opLink)
		return false, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	key := edgeKey{container: c.node(), element: e.node()}
	if _, ok := g.edges[key]; ok || g.ownsID(key.container, e.ID()) {
		g.metrics.observe(opLink, false, len(g.edges))
		return false, nil
	}
	g.putEdge(key, c, e)
	g.metrics.observe(opLink, true, len(g.edges))

	g.logger.Debug("Linked element",
		slog.String("container", c.ID()),
		slog.String("element", e.ID()),
		slog.String("kind", e.Kind().String()))
	return true, nil
}

// unlink removes the edge between c and e if present. It reports whether an
// edge was removed.
func (g *Graph) unlink(c Container, e Node) (bool, error) {
	if err := checkNode(e); err != nil {
		g.metrics.rejected(opUnlink)
		return false, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// A node bound to another graph has no edge here, so removing it is a no-op.
	key := edgeKey{container: c.node(), element: e.node()}
	if _, ok := g.edges[key]; !ok {
		g.metrics.observe(opUnlink, false, len(g.edges))
		return false, nil
	}
	g.dropEdge(key)
	g.metrics.observe(opUnlink, true, len(g.edges))

	g.logger.Debug("Unlinked element",
		slog.String("container", c.ID()),
		slog.String("element", e.ID()))
	return true, nil
}

func (g *Graph) putEdge(key edgeKey, c Container, e Node) {
	g.seq++
	g.edges[key] = edge{seq: g.seq, container: c, element: e}

	if g.byContainer[key.container] == nil {
		g.byContainer[key.container] = make(map[*Identity]struct{})
	}
	g.byContainer[key.container][key.element] = struct{}{}

	if g.byElement[key.element] == nil {
		g.byElement[key.element] = make(map[*Identity]struct{})
	}
	g.byElement[key.element][key.container] = struct{}{}
}

func (g *Graph) dropEdge(key edgeKey) {
	delete(g.edges, key)

	delete(g.byContainer[key.container], key.element)
	if len(g.byContainer[key.container]) == 0 {
		delete(g.byContainer, key.container)
	}

	delete(g.byElement[key.element], key.container)
	if len(g.byElement[key.element]) == 0 {
		delete(g.byElement, key.element)
	}
}

// checkElement rejects values that cannot be elements of g.
func (g *Graph) checkElement(e Node) error {
	if err := checkNode(e); err != nil {
		return err
	}
	if e.node().graph != g {
		return fmt.Errorf("%w: %s %q belongs to another graph", ErrInvalidType, e.Kind(), e.ID())
	}
	return nil
}

// checkNode rejects values that cannot be elements of any graph.
func checkNode(e Node) error {
	if isNilNode(e) {
		return fmt.Errorf("%w: element is nil", ErrInvalidType)
	}
	if e.node().self == nil {
		return fmt.Errorf("%w: element was not constructed", ErrInvalidType)
	}
	if _, ok := e.(Container); ok {
		return fmt.Errorf("%w: %s %q is a container and cannot be an element", ErrInvalidType, e.Kind(), e.ID())
	}
	return nil
}

// ownsID reports whether c already owns an element with the given id.
// Elements are equal when their ids are, so a second node with a taken id
// is not added.
func (g *Graph) ownsID(c *Identity, id string) bool {
	for el := range g.byContainer[c] {
		if el.ID() == id {
			return true
		}
	}
	return false
}

// elementsOf returns the elements of c in the order they were added.
func (g *Graph) elementsOf(c *Identity) []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]edge, 0, len(g.byContainer[c]))
	for el := range g.byContainer[c] {
		edges = append(edges, g.edges[edgeKey{container: c, element: el}])
	}
	sortBySeq(edges)

	nodes := make([]Node, len(edges))
	for i, ed := range edges {
		nodes[i] = ed.element
	}
	return nodes
}

// membershipOf returns the containers of e in the order they added it.
func (g *Graph) membershipOf(e *Identity) []Container {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]edge, 0, len(g.byElement[e]))
	for c := range g.byElement[e] {
		edges = append(edges, g.edges[edgeKey{container: c, element: e}])
	}
	sortBySeq(edges)

	containers := make([]Container, len(edges))
	for i, ed := range edges {
		containers[i] = ed.container
	}
	return containers
}

// Contains reports whether c owns e.
func (g *Graph) Contains(c Container, e Node) bool {
	if isNilNode(c) || isNilNode(e) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edges[edgeKey{container: c.node(), element: e.node()}]
	return ok
}

// countOf returns the number of elements owned by c.
func (g *Graph) countOf(c *Identity) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.byContainer[c])
}

// Len returns the number of edges.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

func sortBySeq(edges []edge) {
	slices.SortFunc(edges, func(a, b edge) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})
}
