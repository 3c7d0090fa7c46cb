package odataclient

import "sync"

// ConfigRegistry is a named lookup table for the pluggable pieces of the
// metadata model: naming conventions, local query comparison options,
// validator factories, metadata adapters, and results adapters. Imported
// metadata documents reference these by name only, so the importing process
// must have registered matching entries.
//
// The package keeps one shared default registry (see DefaultRegistry). It is
// process-wide mutable state guarded by an RWMutex; tests that register custom
// entries should call Reset when done. Store-level configuration through
// StoreConfig is preferred wherever a name lookup is not required.
type ConfigRegistry struct {
	mu sync.RWMutex
	// namingConventions maps convention name to convention
	namingConventions map[string]*NamingConvention
	// comparisonOptions maps options name to options
	comparisonOptions map[string]*LocalQueryComparisonOptions
	// validatorFactories maps validator name to its reconstruction factory
	validatorFactories map[string]ValidatorFactory
	// metadataAdapters maps adapter name to adapter instance
	metadataAdapters map[string]MetadataAdapter
	// resultsAdapters maps results-adapter name to instance
	resultsAdapters map[string]*JsonResultsAdapter
	// defaults applied to stores and data services that do not specify their own
	defaultNamingConvention  *NamingConvention
	defaultComparisonOptions *LocalQueryComparisonOptions
	defaultAdapterName       string
}

// NewConfigRegistry creates a registry seeded with the built-in conventions,
// comparison options, validators, and the OData metadata adapter.
func NewConfigRegistry() *ConfigRegistry {
	r := &ConfigRegistry{}
	r.reset()
	return r
}

var sharedRegistry = NewConfigRegistry()

// DefaultRegistry returns the shared process-wide registry.
func DefaultRegistry() *ConfigRegistry {
	return sharedRegistry
}

func (r *ConfigRegistry) reset() {
	r.namingConventions = map[string]*NamingConvention{
		NamingConventionNone.Name():      NamingConventionNone,
		NamingConventionCamelCase.Name(): NamingConventionCamelCase,
	}
	r.comparisonOptions = map[string]*LocalQueryComparisonOptions{
		ComparisonOptionsCaseInsensitiveSQL.Name(): ComparisonOptionsCaseInsensitiveSQL,
		ComparisonOptionsCaseSensitive.Name():      ComparisonOptionsCaseSensitive,
	}
	r.validatorFactories = map[string]ValidatorFactory{}
	r.metadataAdapters = map[string]MetadataAdapter{}
	r.resultsAdapters = map[string]*JsonResultsAdapter{}
	r.defaultNamingConvention = NamingConventionNone
	r.defaultComparisonOptions = ComparisonOptionsCaseInsensitiveSQL
	r.defaultAdapterName = ODataAdapterName

	registerCoreValidators(r)
	oda := NewODataMetadataAdapter(nil)
	r.metadataAdapters[oda.Name()] = oda
	r.resultsAdapters[oda.DefaultResultsAdapter().Name] = oda.DefaultResultsAdapter()
}

// Reset restores the registry to its built-in contents, discarding custom
// registrations and default overrides. Intended for tests.
func (r *ConfigRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reset()
}

// RegisterNamingConvention registers a convention by name, replacing any
// previous convention with the same name.
func (r *ConfigRegistry) RegisterNamingConvention(nc *NamingConvention) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.namingConventions[nc.Name()] = nc
}

// LookupNamingConvention resolves a convention by name.
func (r *ConfigRegistry) LookupNamingConvention(name string) (*NamingConvention, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	nc, ok := r.namingConventions[name]
	return nc, ok
}

// RegisterComparisonOptions registers comparison options by name.
func (r *ConfigRegistry) RegisterComparisonOptions(o *LocalQueryComparisonOptions) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comparisonOptions[o.Name()] = o
}

// LookupComparisonOptions resolves comparison options by name.
func (r *ConfigRegistry) LookupComparisonOptions(name string) (*LocalQueryComparisonOptions, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.comparisonOptions[name]
	return o, ok
}

// RegisterValidatorFactory registers the factory used to rebuild a validator
// with the given name from an imported document.
func (r *ConfigRegistry) RegisterValidatorFactory(name string, f ValidatorFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validatorFactories[name] = f
}

// LookupValidatorFactory resolves a validator factory by name.
func (r *ConfigRegistry) LookupValidatorFactory(name string) (ValidatorFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.validatorFactories[name]
	return f, ok
}

// RegisterMetadataAdapter registers a metadata adapter under its own name.
func (r *ConfigRegistry) RegisterMetadataAdapter(a MetadataAdapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metadataAdapters[a.Name()] = a
}

// LookupMetadataAdapter resolves a metadata adapter by name.
func (r *ConfigRegistry) LookupMetadataAdapter(name string) (MetadataAdapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.metadataAdapters[name]
	return a, ok
}

// RegisterResultsAdapter registers a results adapter under its own name.
func (r *ConfigRegistry) RegisterResultsAdapter(ra *JsonResultsAdapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resultsAdapters[ra.Name] = ra
}

// LookupResultsAdapter resolves a results adapter by name.
func (r *ConfigRegistry) LookupResultsAdapter(name string) (*JsonResultsAdapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ra, ok := r.resultsAdapters[name]
	return ra, ok
}

// SetDefaultNamingConvention sets the convention applied to stores constructed
// without an explicit one.
func (r *ConfigRegistry) SetDefaultNamingConvention(nc *NamingConvention) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultNamingConvention = nc
}

// DefaultNamingConvention returns the current default convention.
func (r *ConfigRegistry) DefaultNamingConvention() *NamingConvention {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultNamingConvention
}

// SetDefaultComparisonOptions sets the options applied to stores constructed
// without explicit ones.
func (r *ConfigRegistry) SetDefaultComparisonOptions(o *LocalQueryComparisonOptions) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultComparisonOptions = o
}

// DefaultComparisonOptions returns the current default comparison options.
func (r *ConfigRegistry) DefaultComparisonOptions() *LocalQueryComparisonOptions {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultComparisonOptions
}

// SetDefaultAdapterName sets the adapter assigned to data services that do not
// name one.
func (r *ConfigRegistry) SetDefaultAdapterName(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultAdapterName = name
}

// DefaultAdapterName returns the adapter name assigned to data services that
// do not name one.
func (r *ConfigRegistry) DefaultAdapterName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultAdapterName
}
