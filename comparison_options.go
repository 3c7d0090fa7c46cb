package odataclient

// LocalQueryComparisonOptions describes how string comparisons behave when
// query results are evaluated locally, so that local evaluation can match the
// semantics of the remote data source.
type LocalQueryComparisonOptions struct {
	// name identifies the options in exported metadata documents
	name string
	// isCaseSensitive controls string equality and ordering
	isCaseSensitive bool
	// usesSql92CompliantStringComparison enables SQL-92 trailing-space padding
	usesSql92CompliantStringComparison bool
}

// NewLocalQueryComparisonOptions creates a named comparison-options value.
func NewLocalQueryComparisonOptions(name string, caseSensitive, sql92Compliant bool) (*LocalQueryComparisonOptions, error) {
	if name == "" {
		return nil, &ConfigurationError{Message: "local query comparison options require a name"}
	}
	return &LocalQueryComparisonOptions{
		name:                               name,
		isCaseSensitive:                    caseSensitive,
		usesSql92CompliantStringComparison: sql92Compliant,
	}, nil
}

// Name returns the registered name of the options value.
func (o *LocalQueryComparisonOptions) Name() string { return o.name }

// IsCaseSensitive reports whether local string comparisons are case sensitive.
func (o *LocalQueryComparisonOptions) IsCaseSensitive() bool { return o.isCaseSensitive }

// UsesSql92CompliantStringComparison reports whether trailing spaces are
// ignored during local string comparison, matching SQL-92 padding rules.
func (o *LocalQueryComparisonOptions) UsesSql92CompliantStringComparison() bool {
	return o.usesSql92CompliantStringComparison
}

// SetAsDefault registers the options and makes them the default for stores
// constructed afterwards. Existing stores keep their captured options.
func (o *LocalQueryComparisonOptions) SetAsDefault() {
	r := DefaultRegistry()
	r.RegisterComparisonOptions(o)
	r.SetDefaultComparisonOptions(o)
}

// ComparisonOptionsCaseInsensitiveSQL matches the default behavior of most SQL
// databases: case-insensitive comparison with SQL-92 trailing-space padding.
var ComparisonOptionsCaseInsensitiveSQL = &LocalQueryComparisonOptions{
	name:                               "caseInsensitiveSQL",
	isCaseSensitive:                    false,
	usesSql92CompliantStringComparison: true,
}

// ComparisonOptionsCaseSensitive compares strings exactly.
var ComparisonOptionsCaseSensitive = &LocalQueryComparisonOptions{
	name:            "caseSensitive",
	isCaseSensitive: true,
}
