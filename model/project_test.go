package model

import (
	"testing"

	"github.com/c360studio/ontomodel/vocabulary/ontouml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectMetadata(t *testing.T) {
	env := newTestEnv(t)
	p, err := NewProject(Fields{
		"names":                []LangString{{Text: "Library", Lang: "en"}, {Text: "Biblioteca", Lang: "pt"}},
		"keywords":             []string{" books ", "loans"},
		"languages":            "en",
		"namespace":            "https://example.org/library#",
		"license":              "CC-BY-4.0",
		"publisher":            " ACME ",
		"representation_style": ontouml.StyleOntoUML,
		"creators":             []string{"ada"},
	}, env.opts()...)
	require.NoError(t, err)

	assert.Equal(t, "Library", p.Name())
	assert.Len(t, p.Names(), 2)
	assert.Equal(t, []string{"books", "loans"}, p.List("keywords"))
	assert.Equal(t, []string{"en"}, p.List("languages"))
	assert.Nil(t, p.List("themes"))
	assert.Equal(t, "https://example.org/library#", p.Namespace())
	assert.Equal(t, "CC-BY-4.0", p.License())
	assert.Equal(t, "ACME", p.Publisher())
	assert.Equal(t, ontouml.StyleOntoUML, p.RepresentationStyle())
	assert.Equal(t, []string{"ada"}, p.Creators())

	keywords := p.List("keywords")
	keywords[0] = "changed"
	assert.Equal(t, "books", p.List("keywords")[0])
}

func TestProjectMetadataValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		fields  Fields
		wantErr error
	}{
		{"empty keyword", Fields{"keywords": []string{"ok", " "}}, ErrInvalidValue},
		{"keywords of wrong type", Fields{"keywords": 3}, ErrInvalidType},
		{"empty creator", Fields{"creators": []string{""}}, ErrInvalidValue},
		{"empty name text", Fields{"names": []LangString{{Lang: "en"}}}, ErrInvalidValue},
		{"blank publisher", Fields{"publisher": "  "}, ErrInvalidValue},
		{"unknown style", Fields{"representation_style": "umlStyle"}, ErrInvalidValue},
		{"style of wrong type", Fields{"representation_style": 1}, ErrInvalidType},
		{"style as string", Fields{"representation_style": "ufoStyle"}, nil},
		{"unset publisher", Fields{"publisher": nil}, nil},
		{"membership", Fields{"in_project": nil}, ErrReadOnlyField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProject(tt.fields, env.opts()...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProjectRepresentationStyleDefault(t *testing.T) {
	env := newTestEnv(t)
	p := newProject(t, env, nil)
	assert.Equal(t, ontouml.StyleOntoUML, p.RepresentationStyle())

	require.NoError(t, p.Set("representation_style", ontouml.StyleUFO))
	assert.Equal(t, ontouml.StyleUFO, p.RepresentationStyle())

	require.NoError(t, p.Set("representation_style", nil))
	assert.Equal(t, ontouml.StyleOntoUML, p.RepresentationStyle())

	assert.ErrorIs(t, p.Set("representation_style", ""), ErrInvalidValue)
	assert.Equal(t, ontouml.StyleOntoUML, p.RepresentationStyle())
}

func TestProjectSetKeepsValueOnFailure(t *testing.T) {
	env := newTestEnv(t)
	p := newProject(t, env, Fields{"keywords": []string{"a"}})

	assert.ErrorIs(t, p.Set("keywords", []string{"b", ""}), ErrInvalidValue)
	assert.Equal(t, []string{"a"}, p.List("keywords"))

	require.NoError(t, p.Set("keywords", []string{"b"}))
	assert.Equal(t, []string{"b"}, p.List("keywords"))
}

func TestProjectRootPackage(t *testing.T) {
	env := newTestEnv(t)
	p := newProject(t, env, nil)

	outside, err := NewPackage(nil, env.opts()...)
	require.NoError(t, err)
	assert.ErrorIs(t, p.SetRootPackage(outside), ErrInvalidValue)
	assert.Nil(t, p.RootPackage())

	root, err := p.CreatePackage(Fields{"names": "root"})
	require.NoError(t, err)
	require.NoError(t, p.SetRootPackage(root))
	assert.Same(t, root, p.RootPackage())

	assert.ErrorIs(t, p.RemoveElement(root), ErrInvalidValue)
	assert.True(t, p.Contains(root))

	assert.ErrorIs(t, p.Set("root_package", "root"), ErrInvalidType)

	require.NoError(t, p.SetRootPackage(nil))
	require.NoError(t, p.RemoveElement(root))
	assert.False(t, p.Contains(root))
}

func TestProjectRootPackageAtConstruction(t *testing.T) {
	env := newTestEnv(t)
	pkg, err := NewPackage(nil, env.opts()...)
	require.NoError(t, err)

	_, err = NewProject(Fields{"root_package": pkg}, env.opts()...)
	assert.ErrorIs(t, err, ErrInvalidValue, "a new project has no elements yet")
}

func TestProjectCreateHelpers(t *testing.T) {
	env := newTestEnv(t)
	p := newProject(t, env, nil)

	pkg, err := p.CreatePackage(nil)
	require.NoError(t, err)
	cls, err := p.CreateClass(Fields{"names": "Book", "stereotype": ontouml.StereotypeKind})
	require.NoError(t, err)
	note, err := p.CreateNote(Fields{"text": "loans expire after 30 days"})
	require.NoError(t, err)
	diagram, err := NewDiagram(Fields{"owner": pkg}, env.opts()...)
	require.NoError(t, err)
	require.NoError(t, p.AddElement(diagram))

	assert.Equal(t, 4, p.Len())
	assert.Equal(t, []*Package{pkg}, p.Packages())
	assert.Equal(t, []*Class{cls}, p.Classes())
	assert.Equal(t, []*Note{note}, p.Notes())
	assert.Equal(t, []*Diagram{diagram}, p.Diagrams())
	assert.Same(t, cls, p.ElementByID(cls.ID()))
	assert.Nil(t, p.ElementByID("missing"))

	for _, e := range []Node{pkg, cls, note} {
		require.Len(t, e.Membership(), 1)
		assert.Same(t, p, e.Membership()[0])
		assert.Same(t, env.graph, e.node().Graph())
	}
}

func TestProjectCreateHelpersInheritPolicy(t *testing.T) {
	env := newTestEnv(t)
	p, err := NewProject(nil, env.opts(WithIDPolicy(IDPolicy{MinLength: 5, MinReassignLength: 5}))...)
	require.NoError(t, err)

	_, err = p.CreateClass(Fields{"id": "abc"})
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, 0, p.Len())
}

func TestProjectCreateHelperFailureLeavesNoEdge(t *testing.T) {
	env := newTestEnv(t)
	p := newProject(t, env, nil)

	_, err := p.CreateClass(Fields{"stereotype": "nonsense"})
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 0, env.graph.Len())
}
