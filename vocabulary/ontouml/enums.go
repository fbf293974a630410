package ontouml

import "slices"

// ClassStereotype is the OntoUML stereotype of a class.
type ClassStereotype string

const (
	StereotypeAbstract            ClassStereotype = "abstract"
	StereotypeCategory            ClassStereotype = "category"
	StereotypeCollective          ClassStereotype = "collective"
	StereotypeDatatype            ClassStereotype = "datatype"
	StereotypeEnumeration         ClassStereotype = "enumeration"
	StereotypeEvent               ClassStereotype = "event"
	StereotypeHistoricalRole      ClassStereotype = "historicalRole"
	StereotypeHistoricalRoleMixin ClassStereotype = "historicalRoleMixin"
	StereotypeKind                ClassStereotype = "kind"
	StereotypeMixin               ClassStereotype = "mixin"
	StereotypeMode                ClassStereotype = "mode"
	StereotypePhase               ClassStereotype = "phase"
	StereotypePhaseMixin          ClassStereotype = "phaseMixin"
	StereotypeQuality             ClassStereotype = "quality"
	StereotypeQuantity            ClassStereotype = "quantity"
	StereotypeRelator             ClassStereotype = "relator"
	StereotypeRole                ClassStereotype = "role"
	StereotypeRoleMixin           ClassStereotype = "roleMixin"
	StereotypeSituation           ClassStereotype = "situation"
	StereotypeSubkind             ClassStereotype = "subkind"
	StereotypeType                ClassStereotype = "type"
)

// ClassStereotypes lists every class stereotype.
var ClassStereotypes = []ClassStereotype{
	StereotypeAbstract, StereotypeCategory, StereotypeCollective, StereotypeDatatype,
	StereotypeEnumeration, StereotypeEvent, StereotypeHistoricalRole, StereotypeHistoricalRoleMixin,
	StereotypeKind, StereotypeMixin, StereotypeMode, StereotypePhase, StereotypePhaseMixin,
	StereotypeQuality, StereotypeQuantity, StereotypeRelator, StereotypeRole, StereotypeRoleMixin,
	StereotypeSituation, StereotypeSubkind, StereotypeType,
}

// Valid reports whether s is a known class stereotype.
func (s ClassStereotype) Valid() bool {
	return slices.Contains(ClassStereotypes, s)
}

// OntologicalNature classifies the instances a class may have.
type OntologicalNature string

const (
	NatureAbstract          OntologicalNature = "abstract"
	NatureCollective        OntologicalNature = "collective"
	NatureEvent             OntologicalNature = "event"
	NatureExtrinsicMode     OntologicalNature = "extrinsicMode"
	NatureFunctionalComplex OntologicalNature = "functionalComplex"
	NatureIntrinsicMode     OntologicalNature = "intrinsicMode"
	NatureQuality           OntologicalNature = "quality"
	NatureQuantity          OntologicalNature = "quantity"
	NatureRelator           OntologicalNature = "relator"
	NatureSituation         OntologicalNature = "situation"
	NatureType              OntologicalNature = "type"
)

// OntologicalNatures lists every ontological nature.
var OntologicalNatures = []OntologicalNature{
	NatureAbstract, NatureCollective, NatureEvent, NatureExtrinsicMode, NatureFunctionalComplex,
	NatureIntrinsicMode, NatureQuality, NatureQuantity, NatureRelator, NatureSituation, NatureType,
}

// Valid reports whether n is a known ontological nature.
func (n OntologicalNature) Valid() bool {
	return slices.Contains(OntologicalNatures, n)
}

// RelationStereotype is the OntoUML stereotype of a relation.
type RelationStereotype string

const (
	RelationBringsAbout          RelationStereotype = "bringsAbout"
	RelationCharacterization     RelationStereotype = "characterization"
	RelationComparative          RelationStereotype = "comparative"
	RelationComponentOf          RelationStereotype = "componentOf"
	RelationCreation             RelationStereotype = "creation"
	RelationDerivation           RelationStereotype = "derivation"
	RelationExternalDependence   RelationStereotype = "externalDependence"
	RelationHistoricalDependence RelationStereotype = "historicalDependence"
	RelationInstantiation        RelationStereotype = "instantiation"
	RelationManifestation        RelationStereotype = "manifestation"
	RelationMaterial             RelationStereotype = "material"
	RelationMediation            RelationStereotype = "mediation"
	RelationMemberOf             RelationStereotype = "memberOf"
	RelationParticipation        RelationStereotype = "participation"
	RelationParticipational      RelationStereotype = "participational"
	RelationSubCollectionOf      RelationStereotype = "subCollectionOf"
	RelationSubQuantityOf        RelationStereotype = "subQuantityOf"
	RelationTermination          RelationStereotype = "termination"
	RelationTriggers             RelationStereotype = "triggers"
)

// RelationStereotypes lists every relation stereotype.
var RelationStereotypes = []RelationStereotype{
	RelationBringsAbout, RelationCharacterization, RelationComparative, RelationComponentOf,
	RelationCreation, RelationDerivation, RelationExternalDependence, RelationHistoricalDependence,
	RelationInstantiation, RelationManifestation, RelationMaterial, RelationMediation,
	RelationMemberOf, RelationParticipation, RelationParticipational, RelationSubCollectionOf,
	RelationSubQuantityOf, RelationTermination, RelationTriggers,
}

// Valid reports whether s is a known relation stereotype.
func (s RelationStereotype) Valid() bool {
	return slices.Contains(RelationStereotypes, s)
}

// PropertyStereotype is the OntoUML stereotype of a property.
type PropertyStereotype string

const (
	PropertyBegin PropertyStereotype = "begin"
	PropertyEnd   PropertyStereotype = "end"
)

// Valid reports whether s is a known property stereotype.
func (s PropertyStereotype) Valid() bool {
	return s == PropertyBegin || s == PropertyEnd
}

// AggregationKind describes how a property end aggregates its target.
type AggregationKind string

const (
	AggregationNone      AggregationKind = "none"
	AggregationShared    AggregationKind = "shared"
	AggregationComposite AggregationKind = "composite"
)

// Valid reports whether k is a known aggregation kind.
func (k AggregationKind) Valid() bool {
	switch k {
	case AggregationNone, AggregationShared, AggregationComposite:
		return true
	}
	return false
}

// RepresentationStyle is the modeling style a project follows.
type RepresentationStyle string

const (
	StyleOntoUML RepresentationStyle = "ontoumlStyle"
	StyleUFO     RepresentationStyle = "ufoStyle"
)

// Valid reports whether s is a known representation style.
func (s RepresentationStyle) Valid() bool {
	return s == StyleOntoUML || s == StyleUFO
}
