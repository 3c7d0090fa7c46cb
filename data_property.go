package odataclient

// DataPropertyConfig describes a DataProperty to be constructed. At least one
// of Name and NameOnServer is required; the other side is derived from the
// store's naming convention when the owning type is registered.
type DataPropertyConfig struct {
	// Name is the client-side property name
	Name string
	// NameOnServer is the server-side property name
	NameOnServer string
	// DataType is the primitive type; mutually exclusive with ComplexTypeName.
	// Defaults to DataTypeString when neither is set.
	DataType *DataType
	// ComplexTypeName is the qualified name of a complex type
	ComplexTypeName string
	// IsNullable defaults to true; key properties are forced non-nullable
	IsNullable *bool
	// IsPartOfKey marks the property as part of the entity key
	IsPartOfKey bool
	// IsUnmapped marks a client-only property excluded from the server shape
	IsUnmapped bool
	// ConcurrencyMode is "Fixed" for concurrency-token properties
	ConcurrencyMode string
	// MaxLength limits string length; nil means unbounded
	MaxLength *int
	// DefaultValue overrides the DataType default for non-nullable properties
	DefaultValue interface{}
	// EnumTypeName records the server enum type the property was declared with
	EnumTypeName string
	// Validators to attach in addition to those derived during conversion
	Validators []*Validator
}

// DataProperty describes a simple or complex-typed property of a structural
// type. Exactly one of DataType and ComplexTypeName is set. Non-nullable
// simple properties always carry a non-nil default value; complex-typed
// properties have no default.
type DataProperty struct {
	name            string
	nameOnServer    string
	dataType        *DataType
	complexTypeName string
	complexType     *ComplexType
	isNullable      bool
	isPartOfKey     bool
	isUnmapped      bool
	concurrencyMode string
	maxLength       *int
	defaultValue    interface{}
	enumTypeName    string
	validators      []*Validator
	// relatedNavigationProperty is set when the property serves as a foreign
	// key for a scalar navigation property on the same type
	relatedNavigationProperty *NavigationProperty
	parent                    StructuralType
}

// NewDataProperty creates a data property from its configuration.
func NewDataProperty(cfg DataPropertyConfig) (*DataProperty, error) {
	if cfg.Name == "" && cfg.NameOnServer == "" {
		return nil, &ConfigurationError{Message: "data property requires a name or a server name"}
	}
	if cfg.DataType != nil && cfg.ComplexTypeName != "" {
		return nil, &ConfigurationError{
			Message: "data property " + cfg.Name + cfg.NameOnServer + " declares both a data type and a complex type",
		}
	}
	dt := cfg.DataType
	if dt == nil && cfg.ComplexTypeName == "" {
		dt = DataTypeString
	}
	nullable := cfg.IsNullable == nil || *cfg.IsNullable
	if cfg.IsPartOfKey {
		nullable = false
	}
	defaultValue := cfg.DefaultValue
	if defaultValue == nil && !nullable && dt != nil {
		defaultValue = dt.DefaultValue()
	}
	dp := &DataProperty{
		name:            cfg.Name,
		nameOnServer:    cfg.NameOnServer,
		dataType:        dt,
		complexTypeName: cfg.ComplexTypeName,
		isNullable:      nullable,
		isPartOfKey:     cfg.IsPartOfKey,
		isUnmapped:      cfg.IsUnmapped,
		concurrencyMode: cfg.ConcurrencyMode,
		maxLength:       cfg.MaxLength,
		defaultValue:    defaultValue,
		enumTypeName:    cfg.EnumTypeName,
	}
	dp.validators = append(dp.validators, cfg.Validators...)
	return dp, nil
}

// Name returns the client-side property name.
func (dp *DataProperty) Name() string { return dp.name }

// NameOnServer returns the server-side property name.
func (dp *DataProperty) NameOnServer() string { return dp.nameOnServer }

// DataType returns the primitive type, nil for complex-typed properties.
func (dp *DataProperty) DataType() *DataType { return dp.dataType }

// ComplexTypeName returns the qualified complex type name, empty for simple
// properties.
func (dp *DataProperty) ComplexTypeName() string { return dp.complexTypeName }

// ComplexType returns the resolved complex type once the owning type has been
// registered with a store.
func (dp *DataProperty) ComplexType() *ComplexType { return dp.complexType }

// IsComplexProperty reports whether the property is complex-typed.
func (dp *DataProperty) IsComplexProperty() bool { return dp.complexTypeName != "" }

// IsNullable reports whether the property accepts null values.
func (dp *DataProperty) IsNullable() bool { return dp.isNullable }

// IsPartOfKey reports whether the property belongs to the entity key.
func (dp *DataProperty) IsPartOfKey() bool { return dp.isPartOfKey }

// IsUnmapped reports whether the property is a client-only addition.
func (dp *DataProperty) IsUnmapped() bool { return dp.isUnmapped }

// ConcurrencyMode returns the declared concurrency mode ("Fixed" or "None").
func (dp *DataProperty) ConcurrencyMode() string { return dp.concurrencyMode }

// IsConcurrencyProperty reports whether the property is a concurrency token.
func (dp *DataProperty) IsConcurrencyProperty() bool { return dp.concurrencyMode == "Fixed" }

// MaxLength returns the maximum string length, nil when unbounded.
func (dp *DataProperty) MaxLength() *int { return dp.maxLength }

// DefaultValue returns the property default. It is non-nil for non-nullable
// simple properties; complex-typed properties have no default.
func (dp *DataProperty) DefaultValue() interface{} { return dp.defaultValue }

// EnumTypeName returns the server enum type name the property was declared
// with, empty for non-enum properties.
func (dp *DataProperty) EnumTypeName() string { return dp.enumTypeName }

// Validators returns the validators attached to the property.
func (dp *DataProperty) Validators() []*Validator {
	out := make([]*Validator, len(dp.validators))
	copy(out, dp.validators)
	return out
}

// AddValidator appends a validator to the property.
func (dp *DataProperty) AddValidator(v *Validator) {
	if v == nil {
		return
	}
	dp.validators = append(dp.validators, v)
}

// RelatedNavigationProperty returns the navigation property this property
// serves as a foreign key for, nil when it is not a foreign key.
func (dp *DataProperty) RelatedNavigationProperty() *NavigationProperty {
	return dp.relatedNavigationProperty
}

// IsForeignKey reports whether the property backs a navigation property.
func (dp *DataProperty) IsForeignKey() bool { return dp.relatedNavigationProperty != nil }

// Parent returns the structural type that owns the property.
func (dp *DataProperty) Parent() StructuralType { return dp.parent }

// IsDataProperty reports true; part of the Property capability interface.
func (dp *DataProperty) IsDataProperty() bool { return true }

// IsNavigationProperty reports false; part of the Property capability interface.
func (dp *DataProperty) IsNavigationProperty() bool { return false }

func (dp *DataProperty) setNamePair(client, server string) {
	dp.name = client
	dp.nameOnServer = server
}

func (dp *DataProperty) setParent(t StructuralType) { dp.parent = t }
