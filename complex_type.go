package odataclient

// ComplexTypeConfig describes a ComplexType to be constructed.
type ComplexTypeConfig struct {
	// ShortName is the type name without namespace; empty creates an anonymous type
	ShortName string
	// Namespace qualifies the short name
	Namespace string
	// DataProperties in declaration order
	DataProperties []*DataProperty
	// Validators applied at the type level
	Validators []*Validator
}

// ComplexType describes a named value shape embedded in entities: data
// properties only, no keys and no navigation properties. Complex types must be
// registered with a store before any entity type that references them.
type ComplexType struct {
	structuralTypeBase
}

// NewComplexType creates a complex type from its configuration.
func NewComplexType(cfg ComplexTypeConfig) (*ComplexType, error) {
	ct := &ComplexType{
		structuralTypeBase: structuralTypeBase{
			shortName: cfg.ShortName,
			namespace: cfg.Namespace,
		},
	}
	ct.validators = append(ct.validators, cfg.Validators...)
	for _, dp := range cfg.DataProperties {
		if err := ct.AddProperty(dp); err != nil {
			return nil, err
		}
	}
	return ct, nil
}

// IsEntityType reports false; part of the StructuralType interface.
func (ct *ComplexType) IsEntityType() bool { return false }

// AddProperty attaches a data property. Complex types reject navigation and
// key properties.
func (ct *ComplexType) AddProperty(p Property) error {
	dp, ok := p.(*DataProperty)
	if !ok {
		return &ValidationError{Message: "complex type " + ct.Name() + " cannot have navigation properties"}
	}
	if dp != nil && dp.IsPartOfKey() {
		return &ValidationError{Message: "complex type " + ct.Name() + " cannot have key properties"}
	}
	return ct.attachDataProperty(ct, dp)
}

func (ct *ComplexType) properties() []Property {
	out := make([]Property, 0, len(ct.dataProperties))
	for _, dp := range ct.dataProperties {
		out = append(out, dp)
	}
	return out
}
