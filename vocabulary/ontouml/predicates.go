package ontouml

import (
	"maps"
	"slices"

	"github.com/c360studio/semstreams/vocabulary"
)

// Element predicates apply to every OntoUML element.
const (
	// ElementID is the element identifier.
	ElementID = "ontouml.element.id"

	// ElementCreated is the RFC3339 creation timestamp.
	ElementCreated = "ontouml.element.created"

	// ElementModified is the RFC3339 last modification timestamp.
	// Never earlier than ElementCreated.
	ElementModified = "ontouml.element.modified"

	// ElementKind is the element type name (Project, Class, Rectangle...).
	ElementKind = "ontouml.element.kind"

	// ElementInProject links an element to each project that contains it.
	// Maintained by the project; inverse of ProjectContains.
	ElementInProject = "ontouml.element.in_project"
)

// Named element predicates describe human-facing metadata.
const (
	NamedName          = "ontouml.named.name"
	NamedAltName       = "ontouml.named.alt_name"
	NamedDescription   = "ontouml.named.description"
	NamedEditorialNote = "ontouml.named.editorial_note"
	NamedCreator       = "ontouml.named.creator"
	NamedContributor   = "ontouml.named.contributor"
)

// Project predicates.
const (
	// ProjectContains links a project to each element it contains.
	ProjectContains = "ontouml.project.contains"

	ProjectAcronym             = "ontouml.project.acronym"
	ProjectCitation            = "ontouml.project.bibliographic_citation"
	ProjectKeyword             = "ontouml.project.keyword"
	ProjectLandingPage         = "ontouml.project.landing_page"
	ProjectLanguage            = "ontouml.project.language"
	ProjectNamespace           = "ontouml.project.namespace"
	ProjectSource              = "ontouml.project.source"
	ProjectAccessRights        = "ontouml.project.access_rights"
	ProjectOntologyType        = "ontouml.project.ontology_type"
	ProjectTheme               = "ontouml.project.theme"
	ProjectLicense             = "ontouml.project.license"
	ProjectContext             = "ontouml.project.context"
	ProjectDesignedForTask     = "ontouml.project.designed_for_task"
	ProjectPublisher           = "ontouml.project.publisher"
	ProjectRootPackage         = "ontouml.project.root_package"
	ProjectRepresentationStyle = "ontouml.project.representation_style"
)

// Class predicates.
const (
	// ClassStereotypePredicate is the class stereotype.
	// Values: see ClassStereotypes
	ClassStereotypePredicate = "ontouml.class.stereotype"

	// ClassRestrictedTo is an ontological nature the class is restricted to.
	// Always at least one value.
	ClassRestrictedTo = "ontouml.class.restricted_to"

	ClassIsAbstract  = "ontouml.class.is_abstract"
	ClassIsDerived   = "ontouml.class.is_derived"
	ClassIsPowertype = "ontouml.class.is_powertype"
	ClassOrder       = "ontouml.class.order"
)

// FieldPredicates maps model field names to their predicate.
var FieldPredicates = map[string]string{
	"id":                      ElementID,
	"created":                 ElementCreated,
	"modified":                ElementModified,
	"in_project":              ElementInProject,
	"membership":              ElementInProject,
	"names":                   NamedName,
	"alt_names":               NamedAltName,
	"description":             NamedDescription,
	"editorial_notes":         NamedEditorialNote,
	"creators":                NamedCreator,
	"contributors":            NamedContributor,
	"acronyms":                ProjectAcronym,
	"bibliographic_citations": ProjectCitation,
	"keywords":                ProjectKeyword,
	"landing_pages":           ProjectLandingPage,
	"languages":               ProjectLanguage,
	"namespace":               ProjectNamespace,
	"sources":                 ProjectSource,
	"access_rights":           ProjectAccessRights,
	"ontology_types":          ProjectOntologyType,
	"themes":                  ProjectTheme,
	"license":                 ProjectLicense,
	"contexts":                ProjectContext,
	"designed_for_task":       ProjectDesignedForTask,
	"publisher":               ProjectPublisher,
	"root_package":            ProjectRootPackage,
	"representation_style":    ProjectRepresentationStyle,
	"stereotype":              ClassStereotypePredicate,
	"restricted_to":           ClassRestrictedTo,
	"is_abstract":             ClassIsAbstract,
	"is_derived":              ClassIsDerived,
	"is_powertype":            ClassIsPowertype,
	"order":                   ClassOrder,
}

// Predicates returns every predicate in this vocabulary, sorted.
func Predicates() []string {
	set := make(map[string]struct{}, len(FieldPredicates)+2)
	for _, p := range FieldPredicates {
		set[p] = struct{}{}
	}
	set[ElementKind] = struct{}{}
	set[ProjectContains] = struct{}{}
	return slices.Sorted(maps.Keys(set))
}

func init() {
	// Element predicates
	vocabulary.Register(ElementID,
		vocabulary.WithDescription("Element identifier"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.DcIdentifier))

	vocabulary.Register(ElementCreated,
		vocabulary.WithDescription("Element creation timestamp (RFC3339)"),
		vocabulary.WithDataType("datetime"),
		vocabulary.WithIRI(dctermsCreated))

	vocabulary.Register(ElementModified,
		vocabulary.WithDescription("Element last modification timestamp (RFC3339), never before creation"),
		vocabulary.WithDataType("datetime"),
		vocabulary.WithIRI(dctermsModified))

	vocabulary.Register(ElementKind,
		vocabulary.WithDescription("Element type name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type"))

	vocabulary.Register(ElementInProject,
		vocabulary.WithDescription("Project containing the element"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"project"))

	// Named element predicates
	vocabulary.Register(NamedName,
		vocabulary.WithDescription("Preferred name of the element"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.SkosPrefLabel))

	vocabulary.Register(NamedAltName,
		vocabulary.WithDescription("Alternative name of the element"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.SkosAltLabel))

	vocabulary.Register(NamedDescription,
		vocabulary.WithDescription("Free-text description of the element"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(dctermsDescription))

	vocabulary.Register(NamedEditorialNote,
		vocabulary.WithDescription("Editorial note about the element"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(skosEditorialNote))

	vocabulary.Register(NamedCreator,
		vocabulary.WithDescription("Creator of the element"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.ProvWasAttributedTo))

	vocabulary.Register(NamedContributor,
		vocabulary.WithDescription("Contributor to the element"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(dctermsContributor))

	// Project predicates
	vocabulary.Register(ProjectContains,
		vocabulary.WithDescription("Element contained in the project"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"containsModelElement"))

	vocabulary.Register(ProjectAcronym,
		vocabulary.WithDescription("Acronym of the project"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"acronym"))

	vocabulary.Register(ProjectCitation,
		vocabulary.WithDescription("Bibliographic citation for the project"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI("http://purl.org/dc/terms/bibliographicCitation"))

	vocabulary.Register(ProjectKeyword,
		vocabulary.WithDescription("Keyword describing the project"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(dcatKeyword))

	vocabulary.Register(ProjectLandingPage,
		vocabulary.WithDescription("Landing page URL of the project"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(dcatLandingPage))

	vocabulary.Register(ProjectLanguage,
		vocabulary.WithDescription("Language used by the project"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(dctermsLanguage))

	vocabulary.Register(ProjectNamespace,
		vocabulary.WithDescription("Namespace IRI of the project"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(voidNamespace))

	vocabulary.Register(ProjectSource,
		vocabulary.WithDescription("Source the project derives from"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.DcSource))

	vocabulary.Register(ProjectAccessRights,
		vocabulary.WithDescription("Access rights statement"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(dctermsAccessRight))

	vocabulary.Register(ProjectOntologyType,
		vocabulary.WithDescription("Ontology type of the project"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"ontologyType"))

	vocabulary.Register(ProjectTheme,
		vocabulary.WithDescription("Theme of the project"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(dcatTheme))

	vocabulary.Register(ProjectLicense,
		vocabulary.WithDescription("License of the project"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(dctermsLicense))

	vocabulary.Register(ProjectContext,
		vocabulary.WithDescription("Context the project was built for"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"context"))

	vocabulary.Register(ProjectDesignedForTask,
		vocabulary.WithDescription("Task the project was designed for"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"designedForTask"))

	vocabulary.Register(ProjectPublisher,
		vocabulary.WithDescription("Publisher of the project"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(dctermsPublisher))

	vocabulary.Register(ProjectRootPackage,
		vocabulary.WithDescription("Root package of the project, one of its elements"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"root"))

	vocabulary.Register(ProjectRepresentationStyle,
		vocabulary.WithDescription("Representation style: ontoumlStyle or ufoStyle"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"representationStyle"))

	// Class predicates
	vocabulary.Register(ClassStereotypePredicate,
		vocabulary.WithDescription("OntoUML class stereotype"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"stereotype"))

	vocabulary.Register(ClassRestrictedTo,
		vocabulary.WithDescription("Ontological nature the class is restricted to"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"restrictedTo"))

	vocabulary.Register(ClassIsAbstract,
		vocabulary.WithDescription("Whether the class is abstract"),
		vocabulary.WithDataType("bool"),
		vocabulary.WithIRI(Namespace+"isAbstract"))

	vocabulary.Register(ClassIsDerived,
		vocabulary.WithDescription("Whether the class is derived"),
		vocabulary.WithDataType("bool"),
		vocabulary.WithIRI(Namespace+"isDerived"))

	vocabulary.Register(ClassIsPowertype,
		vocabulary.WithDescription("Whether the class is a powertype"),
		vocabulary.WithDataType("bool"),
		vocabulary.WithIRI(Namespace+"isPowertype"))

	vocabulary.Register(ClassOrder,
		vocabulary.WithDescription("Instantiation order of the class (positive integer or *)"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"order"))
}
