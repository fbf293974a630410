package model

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProject(t *testing.T, env *testEnv, fields Fields) *Project {
	t.Helper()
	p, err := NewProject(fields, env.opts()...)
	require.NoError(t, err)
	return p
}

func newClass(t *testing.T, env *testEnv, fields Fields) *Class {
	t.Helper()
	c, err := NewClass(fields, env.opts()...)
	require.NoError(t, err)
	return c
}

// Both directions of the edge table must agree for every pair.
func assertConsistent(t *testing.T, projects []*Project, elements []Node) {
	t.Helper()
	for _, p := range projects {
		for _, e := range elements {
			inElements := false
			for _, x := range p.Elements() {
				if x == e {
					inElements = true
				}
			}
			inMembership := false
			for _, c := range e.Membership() {
				if c == Container(p) {
					inMembership = true
				}
			}
			assert.Equal(t, inElements, inMembership,
				"project %s / element %s disagree", p.ID(), e.ID())
		}
	}
}

func TestAddElementFiveTimes(t *testing.T) {
	env := newTestEnv(t)
	p := newProject(t, env, nil)
	c := newClass(t, env, nil)

	for range 5 {
		require.NoError(t, p.AddElement(c))
	}

	assert.Equal(t, 1, p.Len())
	assert.Len(t, p.Elements(), 1)
	assert.Len(t, c.Membership(), 1)
	assert.Equal(t, 1, env.graph.Len())
}

func TestAddThenRemoveRestoresState(t *testing.T) {
	env := newTestEnv(t)
	p := newProject(t, env, nil)
	c := newClass(t, env, nil)

	require.NoError(t, p.AddElement(c))
	require.NoError(t, p.RemoveElement(c))

	assert.Empty(t, p.Elements())
	assert.Empty(t, c.Membership())
	assert.Equal(t, 0, env.graph.Len())
	assert.Empty(t, env.graph.byContainer)
	assert.Empty(t, env.graph.byElement)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	env := newTestEnv(t)
	p := newProject(t, env, nil)
	owned := newClass(t, env, nil)
	stranger := newClass(t, env, nil)

	require.NoError(t, p.AddElement(owned))
	require.NoError(t, p.RemoveElement(stranger))
	require.NoError(t, p.RemoveElement(stranger))

	assert.Equal(t, []Node{owned}, p.Elements())
	assert.Empty(t, stranger.Membership())
}

func TestMembershipOrderFollowsAdds(t *testing.T) {
	env := newTestEnv(t)
	a := newProject(t, env, Fields{"id": "a"})
	b := newProject(t, env, Fields{"id": "b"})
	c := newProject(t, env, Fields{"id": "c"})
	cls := newClass(t, env, nil)

	for _, p := range []*Project{b, c, a, b} {
		require.NoError(t, p.AddElement(cls))
	}

	ids := func() []string {
		var out []string
		for _, m := range cls.Membership() {
			out = append(out, m.ID())
		}
		return out
	}
	assert.Equal(t, []string{"b", "c", "a"}, ids())

	require.NoError(t, c.RemoveElement(cls))
	assert.Equal(t, []string{"b", "a"}, ids())

	require.NoError(t, c.AddElement(cls))
	assert.Equal(t, []string{"b", "a", "c"}, ids())
}

func TestRemoveFromOneProjectKeepsOthers(t *testing.T) {
	env := newTestEnv(t)
	p1 := newProject(t, env, nil)
	p2 := newProject(t, env, nil)
	cls := newClass(t, env, nil)

	require.NoError(t, p1.AddElement(cls))
	require.NoError(t, p2.AddElement(cls))
	require.NoError(t, p1.RemoveElement(cls))

	assert.False(t, p1.Contains(cls))
	assert.True(t, p2.Contains(cls))
	require.Len(t, cls.Membership(), 1)
	assert.Same(t, p2, cls.Membership()[0])
}

func TestAddElementRejectsInvalidElements(t *testing.T) {
	env := newTestEnv(t)
	p := newProject(t, env, nil)
	other := newProject(t, env, nil)

	foreignEnv := newTestEnv(t)
	foreign := newClass(t, foreignEnv, nil)

	var nilClass *Class

	tests := []struct {
		name string
		e    Node
	}{
		{"nil", nil},
		{"typed nil", nilClass},
		{"unconstructed", &Class{}},
		{"self", p},
		{"another project", other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, p.AddElement(tt.e), ErrInvalidType)
			assert.ErrorIs(t, p.RemoveElement(tt.e), ErrInvalidType)
			assert.Equal(t, 0, p.Len())
		})
	}
	assert.Empty(t, other.Membership())
	assert.Empty(t, p.Membership())

	// A node bound to another graph cannot join, but removing it is a no-op.
	assert.ErrorIs(t, p.AddElement(foreign), ErrInvalidType)
	assert.NoError(t, p.RemoveElement(foreign))
	assert.Equal(t, 0, p.Len())
	assert.Empty(t, foreign.Membership())
}

func TestAddElementWithTakenIDIsNoop(t *testing.T) {
	env := newTestEnv(t)
	p := newProject(t, env, nil)
	a := newClass(t, env, Fields{"id": "dup"})
	b := newClass(t, env, Fields{"id": "dup"})
	require.True(t, SameID(a, b))

	require.NoError(t, p.AddElement(a))
	require.NoError(t, p.AddElement(b))

	require.Equal(t, 1, p.Len())
	assert.Same(t, a, p.Elements()[0])
	assert.Empty(t, b.Membership())
	assertConsistent(t, []*Project{p}, []Node{a, b})

	// Once the first is gone the id is free again.
	require.NoError(t, p.RemoveElement(a))
	require.NoError(t, p.AddElement(b))
	require.Equal(t, 1, p.Len())
	assert.Same(t, b, p.Elements()[0])
}

func TestElementsIsSnapshot(t *testing.T) {
	env := newTestEnv(t)
	p := newProject(t, env, nil)
	c1 := newClass(t, env, nil)
	c2 := newClass(t, env, nil)
	require.NoError(t, p.AddElement(c1))

	view := p.Elements()
	view[0] = c2
	_ = append(view, c2)

	assert.Equal(t, []Node{c1}, p.Elements())
	assert.False(t, p.Contains(c2))

	members := c1.Membership()
	members[0] = nil
	assert.Same(t, p, c1.Membership()[0])
}

func TestGraphInvariantUnderRandomOperations(t *testing.T) {
	env := newTestEnv(t)
	projects := []*Project{newProject(t, env, nil), newProject(t, env, nil), newProject(t, env, nil)}
	var elements []Node
	for i := range 4 {
		elements = append(elements, newClass(t, env, Fields{"id": fmt.Sprintf("c%d", i)}))
	}

	for step := range 60 {
		p := projects[step%len(projects)]
		e := elements[(step*7)%len(elements)]
		if step%3 == 2 {
			require.NoError(t, p.RemoveElement(e))
		} else {
			require.NoError(t, p.AddElement(e))
		}
		assertConsistent(t, projects, elements)
	}
}

func TestConcurrentAddRemove(t *testing.T) {
	env := newTestEnv(t)
	p := newProject(t, env, nil)
	var elements []Node
	for range 8 {
		elements = append(elements, newClass(t, env, nil))
	}

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := range 100 {
				e := elements[(w+i)%len(elements)]
				if i%2 == 0 {
					_ = p.AddElement(e)
				} else {
					_ = p.RemoveElement(e)
				}
				_ = p.Elements()
				_ = e.Membership()
			}
		}(w)
	}
	wg.Wait()

	assertConsistent(t, []*Project{p}, elements)
}

func TestGraphLogsEdgeChanges(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	env := newTestEnv(t)
	env.graph = NewGraph(WithLogger(logger))
	p := newProject(t, env, Fields{"id": "proj"})
	c := newClass(t, env, Fields{"id": "cls"})

	require.NoError(t, p.AddElement(c))
	require.NoError(t, p.RemoveElement(c))

	out := buf.String()
	assert.Contains(t, out, "Linked element")
	assert.Contains(t, out, "Unlinked element")
	assert.Contains(t, out, "container=proj")
	assert.Contains(t, out, "element=cls")
}
