package ontouml

// Namespace is the base IRI of the OntoUML vocabulary.
const Namespace = "https://w3id.org/ontouml#"

// Dublin Core terms not exported by the semstreams vocabulary package.
const (
	dctermsCreated     = "http://purl.org/dc/terms/created"
	dctermsModified    = "http://purl.org/dc/terms/modified"
	dctermsDescription = "http://purl.org/dc/terms/description"
	dctermsContributor = "http://purl.org/dc/terms/contributor"
	dctermsLicense     = "http://purl.org/dc/terms/license"
	dctermsPublisher   = "http://purl.org/dc/terms/publisher"
	dctermsLanguage    = "http://purl.org/dc/terms/language"
	dctermsAccessRight = "http://purl.org/dc/terms/accessRights"
	dcatKeyword        = "http://www.w3.org/ns/dcat#keyword"
	dcatTheme          = "http://www.w3.org/ns/dcat#theme"
	dcatLandingPage    = "http://www.w3.org/ns/dcat#landingPage"
	skosEditorialNote  = "http://www.w3.org/2004/02/skos/core#editorialNote"
	voidNamespace      = "http://rdfs.org/ns/void#uriSpace"
)

// Class IRIs for the OntoUML element types.
const (
	ClassProject          = Namespace + "Project"
	ClassPackage          = Namespace + "Package"
	ClassClass            = Namespace + "Class"
	ClassNote             = Namespace + "Note"
	ClassLink             = Namespace + "Link"
	ClassDiagram          = Namespace + "Diagram"
	ClassRectangle        = Namespace + "Rectangle"
	ClassText             = Namespace + "Text"
	ClassPath             = Namespace + "Path"
	ClassNamedElement     = Namespace + "NamedElement"
	ClassShape            = Namespace + "Shape"
	ClassModelElement     = Namespace + "ModelElement"
	ClassRectangularShape = Namespace + "RectangularShape"
)

// ClassIRIs maps element kind names to their class IRI.
var ClassIRIs = map[string]string{
	"Project":          ClassProject,
	"Package":          ClassPackage,
	"Class":            ClassClass,
	"Note":             ClassNote,
	"Link":             ClassLink,
	"Diagram":          ClassDiagram,
	"Rectangle":        ClassRectangle,
	"Text":             ClassText,
	"Path":             ClassPath,
	"NamedElement":     ClassNamedElement,
	"Shape":            ClassShape,
	"ModelElement":     ClassModelElement,
	"RectangularShape": ClassRectangularShape,
}
