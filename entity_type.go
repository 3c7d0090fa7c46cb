package odataclient

import "strings"

// AutoGeneratedKeyType enumerates how key values for new entities are produced.
type AutoGeneratedKeyType string

const (
	// AutoGeneratedKeyTypeNone means the client supplies key values.
	AutoGeneratedKeyTypeNone AutoGeneratedKeyType = "None"
	// AutoGeneratedKeyTypeIdentity means the backend assigns key values.
	AutoGeneratedKeyTypeIdentity AutoGeneratedKeyType = "Identity"
	// AutoGeneratedKeyTypeKeyGenerator means a client-side generator produces
	// temporary keys that the backend replaces on save.
	AutoGeneratedKeyTypeKeyGenerator AutoGeneratedKeyType = "KeyGenerator"
)

// InstanceFactory produces a new, empty entity instance for a structural type.
// The entity runtime registers factories through RegisterEntityTypeCtor; the
// metadata layer only stores and hands them out.
type InstanceFactory func() interface{}

// InstanceInitializer is invoked on each freshly created instance.
type InstanceInitializer func(instance interface{})

// EntityTypeConfig describes an EntityType to be constructed.
type EntityTypeConfig struct {
	// ShortName is the type name without namespace; empty creates an anonymous type
	ShortName string
	// Namespace qualifies the short name
	Namespace string
	// AutoGeneratedKeyType defaults to AutoGeneratedKeyTypeNone
	AutoGeneratedKeyType AutoGeneratedKeyType
	// DefaultResourceName is the collection name instances are queried under
	DefaultResourceName string
	// DataProperties in declaration order
	DataProperties []*DataProperty
	// NavigationProperties in declaration order
	NavigationProperties []*NavigationProperty
	// Validators applied at the entity level
	Validators []*Validator
}

// EntityType describes the shape of an entity: its data properties, key,
// navigation properties, and how its key values are generated. An EntityType
// is built standalone and becomes part of a type graph when registered with a
// MetadataStore, which resolves its names, complex types, foreign keys and
// inverse associations.
type EntityType struct {
	structuralTypeBase
	// navigationProperties in declaration order
	navigationProperties []*NavigationProperty
	// autoGeneratedKeyType records how key values are produced
	autoGeneratedKeyType AutoGeneratedKeyType
	// defaultResourceName is assigned once, first writer wins
	defaultResourceName string
	// instanceFactory and instanceInitializer are bound from the ctor registry
	instanceFactory     InstanceFactory
	instanceInitializer InstanceInitializer
}

// NewEntityType creates an entity type from its configuration.
func NewEntityType(cfg EntityTypeConfig) (*EntityType, error) {
	keyType := cfg.AutoGeneratedKeyType
	if keyType == "" {
		keyType = AutoGeneratedKeyTypeNone
	}
	switch keyType {
	case AutoGeneratedKeyTypeNone, AutoGeneratedKeyTypeIdentity, AutoGeneratedKeyTypeKeyGenerator:
	default:
		return nil, &ConfigurationError{Message: "unknown auto generated key type " + string(keyType)}
	}
	et := &EntityType{
		structuralTypeBase: structuralTypeBase{
			shortName: cfg.ShortName,
			namespace: cfg.Namespace,
		},
		autoGeneratedKeyType: keyType,
		defaultResourceName:  cfg.DefaultResourceName,
	}
	et.validators = append(et.validators, cfg.Validators...)
	for _, dp := range cfg.DataProperties {
		if err := et.AddProperty(dp); err != nil {
			return nil, err
		}
	}
	for _, np := range cfg.NavigationProperties {
		if err := et.AddProperty(np); err != nil {
			return nil, err
		}
	}
	return et, nil
}

// IsEntityType reports true; part of the StructuralType interface.
func (et *EntityType) IsEntityType() bool { return true }

// AddProperty attaches a data or navigation property. Once the type is
// registered with a store, only unmapped data properties may be added.
func (et *EntityType) AddProperty(p Property) error {
	switch prop := p.(type) {
	case *DataProperty:
		return et.attachDataProperty(et, prop)
	case *NavigationProperty:
		return et.attachNavigationProperty(prop)
	default:
		return &ConfigurationError{Message: "unsupported property kind"}
	}
}

func (et *EntityType) attachNavigationProperty(np *NavigationProperty) error {
	if np == nil {
		return &ConfigurationError{Message: "cannot add a nil property"}
	}
	if et.store != nil {
		return &ValidationError{
			Message: "type " + et.Name() + " is registered, navigation properties can no longer be added",
		}
	}
	if np.parent != nil && np.parent != et {
		return &ValidationError{Message: "property already belongs to another type"}
	}
	name := np.Name()
	if name == "" {
		name = np.NameOnServer()
	}
	if name != "" && et.FindNavigationProperty(name) != nil {
		return &ValidationError{Message: "property " + name + " already exists on type " + et.Name()}
	}
	np.setParent(et)
	et.navigationProperties = append(et.navigationProperties, np)
	return nil
}

// NavigationProperties returns the navigation properties in declaration order.
func (et *EntityType) NavigationProperties() []*NavigationProperty {
	out := make([]*NavigationProperty, len(et.navigationProperties))
	copy(out, et.navigationProperties)
	return out
}

// FindNavigationProperty looks up a navigation property by client name, then
// server name. It returns nil when no property matches.
func (et *EntityType) FindNavigationProperty(name string) *NavigationProperty {
	for _, np := range et.navigationProperties {
		if np.Name() == name {
			return np
		}
	}
	for _, np := range et.navigationProperties {
		if np.NameOnServer() == name {
			return np
		}
	}
	return nil
}

// FindProperty looks up a data property first, then a navigation property.
func (et *EntityType) FindProperty(name string) Property {
	if dp := et.FindDataProperty(name); dp != nil {
		return dp
	}
	if np := et.FindNavigationProperty(name); np != nil {
		return np
	}
	return nil
}

// ResolvePropertyPath resolves a dotted property path such as
// "Address.City" or "Customer.CompanyName", traversing complex types and
// resolved navigation properties. It returns nil when any segment is missing
// or when a navigation segment's target has not been resolved yet.
func (et *EntityType) ResolvePropertyPath(path string) Property {
	segments := strings.Split(path, ".")
	var current StructuralType = et
	for i, segment := range segments {
		last := i == len(segments)-1
		var prop Property
		if entity, ok := current.(*EntityType); ok {
			prop = entity.FindProperty(segment)
		} else {
			if dp := current.FindDataProperty(segment); dp != nil {
				prop = dp
			}
		}
		if prop == nil {
			return nil
		}
		if last {
			return prop
		}
		switch p := prop.(type) {
		case *DataProperty:
			if p.ComplexType() == nil {
				return nil
			}
			current = p.ComplexType()
		case *NavigationProperty:
			if p.EntityType() == nil {
				return nil
			}
			current = p.EntityType()
		}
	}
	return nil
}

// KeyProperties returns the data properties that form the entity key.
func (et *EntityType) KeyProperties() []*DataProperty {
	var out []*DataProperty
	for _, dp := range et.dataProperties {
		if dp.IsPartOfKey() {
			out = append(out, dp)
		}
	}
	return out
}

// ForeignKeyProperties returns the data properties bound to navigation
// properties as foreign keys.
func (et *EntityType) ForeignKeyProperties() []*DataProperty {
	var out []*DataProperty
	for _, dp := range et.dataProperties {
		if dp.IsForeignKey() {
			out = append(out, dp)
		}
	}
	return out
}

// ConcurrencyProperties returns the concurrency-token properties.
func (et *EntityType) ConcurrencyProperties() []*DataProperty {
	var out []*DataProperty
	for _, dp := range et.dataProperties {
		if dp.IsConcurrencyProperty() {
			out = append(out, dp)
		}
	}
	return out
}

// UnmappedProperties returns the client-only properties.
func (et *EntityType) UnmappedProperties() []*DataProperty {
	var out []*DataProperty
	for _, dp := range et.dataProperties {
		if dp.IsUnmapped() {
			out = append(out, dp)
		}
	}
	return out
}

// ComplexProperties returns the complex-typed properties.
func (et *EntityType) ComplexProperties() []*DataProperty {
	var out []*DataProperty
	for _, dp := range et.dataProperties {
		if dp.IsComplexProperty() {
			out = append(out, dp)
		}
	}
	return out
}

// AutoGeneratedKeyType returns how key values for this type are produced.
func (et *EntityType) AutoGeneratedKeyType() AutoGeneratedKeyType {
	return et.autoGeneratedKeyType
}

// DefaultResourceName returns the collection name instances of this type are
// queried under, empty until one has been assigned.
func (et *EntityType) DefaultResourceName() string { return et.defaultResourceName }

// setDefaultResourceName assigns the resource name. First writer wins.
func (et *EntityType) setDefaultResourceName(resourceName string) {
	if et.defaultResourceName == "" {
		et.defaultResourceName = resourceName
	}
}

// InstanceFactory returns the registered factory for this type, nil when the
// entity runtime has not registered one.
func (et *EntityType) InstanceFactory() InstanceFactory { return et.instanceFactory }

// CreateInstance creates a new entity instance through the registered factory
// and runs the registered initializer on it. It returns nil when no factory
// is registered.
func (et *EntityType) CreateInstance() interface{} {
	if et.instanceFactory == nil {
		return nil
	}
	instance := et.instanceFactory()
	if et.instanceInitializer != nil {
		et.instanceInitializer(instance)
	}
	return instance
}

func (et *EntityType) setInstanceFactory(factory InstanceFactory, init InstanceInitializer) {
	et.instanceFactory = factory
	et.instanceInitializer = init
}

func (et *EntityType) properties() []Property {
	out := make([]Property, 0, len(et.dataProperties)+len(et.navigationProperties))
	for _, dp := range et.dataProperties {
		out = append(out, dp)
	}
	for _, np := range et.navigationProperties {
		out = append(out, np)
	}
	return out
}
