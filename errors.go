package odataclient

import (
	"fmt"
	"strings"
)

// ConfigurationError indicates malformed construction arguments or missing
// required configuration, such as a DataService without a service name or a
// DataProperty declaring both a simple DataType and a complex type name.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// ValidationError indicates that a registration request violates a store
// invariant, such as adding an EntityType without key properties or adding a
// DataService whose name is already taken without requesting an overwrite.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError indicates that a lookup by name failed. Kind describes what was
// looked up ("entity type", "resource name", ...).
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// AmbiguousNameError indicates that a short type name resolves to more than one
// registered qualified type name. Callers must retry with one of the listed
// qualified candidates.
type AmbiguousNameError struct {
	ShortName  string
	Candidates []string
}

func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("type name %q is ambiguous, matches: %s", e.ShortName, strings.Join(e.Candidates, ", "))
}

// NamingConventionError indicates that a NamingConvention failed its round-trip
// check for a property name: mapping the name to the other side and back did not
// reproduce the original.
type NamingConventionError struct {
	Convention   string
	Name         string
	RoundTripped string
}

func (e *NamingConventionError) Error() string {
	return fmt.Sprintf("naming convention %q does not round-trip name %q (got %q)", e.Convention, e.Name, e.RoundTripped)
}

// UnresolvedComplexTypeError indicates that a DataProperty references a complex
// type that is not registered. Complex types must be added before any entity
// type that uses them.
type UnresolvedComplexTypeError struct {
	TypeName        string
	PropertyName    string
	ComplexTypeName string
}

func (e *UnresolvedComplexTypeError) Error() string {
	return fmt.Sprintf("property %s.%s references unresolved complex type %q", e.TypeName, e.PropertyName, e.ComplexTypeName)
}

// SchemaIntegrityError indicates that a bulk schema conversion or import left
// navigation properties whose target entity types were never defined.
type SchemaIntegrityError struct {
	// MissingTypes lists the qualified names of target types that could not be
	// resolved, each with the associations that require them.
	MissingTypes []string
}

func (e *SchemaIntegrityError) Error() string {
	return fmt.Sprintf("schema references undefined entity types: %s", strings.Join(e.MissingTypes, ", "))
}

// VersionError indicates that an imported metadata document was produced by an
// incompatible metadata version.
type VersionError struct {
	Expected string
	Actual   string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("incompatible metadata version %q, expected %q", e.Actual, e.Expected)
}

// ConfigMismatchError indicates that an imported metadata document was produced
// under a different store configuration (naming convention or comparison
// options) than the importing store uses.
type ConfigMismatchError struct {
	Setting     string
	StoreValue  string
	ImportValue string
}

func (e *ConfigMismatchError) Error() string {
	return fmt.Sprintf("imported metadata uses %s %q but the store uses %q", e.Setting, e.ImportValue, e.StoreValue)
}

// AlreadyFetchedError indicates that metadata for a service name was already
// obtained, either through FetchMetadata or through an import that included the
// service. A MetadataStore fetches each service at most once.
type AlreadyFetchedError struct {
	ServiceName string
}

func (e *AlreadyFetchedError) Error() string {
	return fmt.Sprintf("metadata for service %q has already been fetched", e.ServiceName)
}
