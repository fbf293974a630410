// Package model implements the OntoUML object model: node identity, the
// taxonomy gate, and the ownership graph between projects and elements.
//
// Every node embeds an Identity and is built by a constructor taking a field
// bag:
//
//	project, err := model.NewProject(model.Fields{"names": "Library"})
//	class, err := model.NewClass(model.Fields{"stereotype": ontouml.StereotypeKind})
//	err = project.AddElement(class)
//
// Construction first checks the node's kind against the taxonomy: a kind is
// accepted only if it is, or descends from, one of the permitted shapes
// (NamedElement and Shape by default). Fields are then validated; modified
// may never precede created, membership is read-only, and undeclared fields
// are rejected.
//
// Ownership edges live in a Graph. Project.AddElement and
// Project.RemoveElement are the only operations that change them, and both
// directions (Project.Elements and Identity.Membership) are read from the
// same edge table, so they always agree.
package model
