// Package ontouml provides the OntoUML vocabulary: the closed term lists
// (class stereotypes, ontological natures, relation stereotypes, aggregation
// kinds, representation styles) and the predicates describing model
// elements and projects.
//
// Predicates use three-level dotted notation (ontouml.category.property) and
// are registered with the semstreams vocabulary registry in init(), each with
// a description, data type and IRI. Import the package for its side effect
// to make the metadata available:
//
//	import _ "github.com/c360studio/ontomodel/vocabulary/ontouml"
//
//	meta := vocabulary.GetPredicateMetadata(ontouml.ProjectContains)
//	fmt.Println(meta.StandardIRI) // https://w3id.org/ontouml#containsModelElement
package ontouml
