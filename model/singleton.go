package model

import "sync"

// Default taxonomy and graph used when no option overrides them.
var (
	defaultTaxonomy *Taxonomy
	defaultGraph    *Graph
	defaultOnce     sync.Once
)

// DefaultTaxonomy returns the shared taxonomy with the built-in kinds.
func DefaultTaxonomy() *Taxonomy {
	initDefaults(nil, nil)
	return defaultTaxonomy
}

// DefaultGraph returns the shared graph.
func DefaultGraph() *Graph {
	initDefaults(nil, nil)
	return defaultGraph
}

// InitDefaults installs a custom default taxonomy and graph. Nil arguments
// keep the built-in default. Only the first call, before any default is
// used, has any effect.
func InitDefaults(t *Taxonomy, g *Graph) {
	initDefaults(t, g)
}

func initDefaults(t *Taxonomy, g *Graph) {
	defaultOnce.Do(func() {
		if t == nil {
			var err error
			t, err = NewStandardTaxonomy(DefaultPermitted())
			if err != nil {
				panic(err)
			}
		}
		if g == nil {
			g = NewGraph()
		}
		defaultTaxonomy = t
		defaultGraph = g
	})
}

// ResetDefaults clears the defaults for testing purposes.
// This is NOT thread-safe and should only be used in tests.
func ResetDefaults() {
	defaultOnce = sync.Once{}
	defaultTaxonomy = nil
	defaultGraph = nil
}
