package odataclient

import "strings"

// DataServiceConfig describes a DataService or a partial layer of one. Pointer
// fields distinguish "not specified" from an explicit false, which is what
// makes first-non-nil-wins merging in ResolveDataService possible.
type DataServiceConfig struct {
	// ServiceName is the service root; normalized to end with "/"
	ServiceName string
	// AdapterName names the MetadataAdapter used to fetch metadata
	AdapterName string
	// HasServerMetadata is false for services whose metadata is authored client-side
	HasServerMetadata *bool
	// UseJsonp requests JSONP transport from adapters that support it
	UseJsonp *bool
	// JsonResultsAdapter overrides the adapter's default results adapter
	JsonResultsAdapter *JsonResultsAdapter
}

// DataService describes a named remote data source: its service root, the
// adapter used to talk to it, and the results adapter used to shape its
// payloads. A DataService is immutable once resolved; Using derives a copy
// with overridden fields.
type DataService struct {
	serviceName        string
	adapterName        string
	hasServerMetadata  bool
	useJsonp           bool
	adapter            MetadataAdapter
	jsonResultsAdapter *JsonResultsAdapter
}

// NormalizeServiceName trims a service name and guarantees a trailing path
// separator, so that equal services always produce equal cache keys:
// "api/Foo" -> "api/Foo/", "api/Foo/" unchanged.
func NormalizeServiceName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || strings.HasSuffix(trimmed, "/") {
		return trimmed
	}
	return trimmed + "/"
}

// NewDataService resolves a single configuration into a DataService.
//
// # Example
//
//	ds, err := odataclient.NewDataService(odataclient.DataServiceConfig{
//	    ServiceName: "https://example.com/api/northwind",
//	})
func NewDataService(cfg DataServiceConfig) (*DataService, error) {
	return ResolveDataService(&cfg)
}

// ResolveDataService merges partial configurations into a DataService. Fields
// are resolved first-non-nil-wins in argument order, with a lowest-priority
// default layer of {HasServerMetadata: true, UseJsonp: false} and the
// registry's default adapter name. A non-empty service name is required, and
// the named adapter must be registered.
func ResolveDataService(configs ...*DataServiceConfig) (*DataService, error) {
	registry := DefaultRegistry()
	defaultTrue := true
	defaultFalse := false
	layers := make([]*DataServiceConfig, 0, len(configs)+1)
	layers = append(layers, configs...)
	layers = append(layers, &DataServiceConfig{
		AdapterName:       registry.DefaultAdapterName(),
		HasServerMetadata: &defaultTrue,
		UseJsonp:          &defaultFalse,
	})

	var merged DataServiceConfig
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		if merged.ServiceName == "" {
			merged.ServiceName = layer.ServiceName
		}
		if merged.AdapterName == "" {
			merged.AdapterName = layer.AdapterName
		}
		if merged.HasServerMetadata == nil {
			merged.HasServerMetadata = layer.HasServerMetadata
		}
		if merged.UseJsonp == nil {
			merged.UseJsonp = layer.UseJsonp
		}
		if merged.JsonResultsAdapter == nil {
			merged.JsonResultsAdapter = layer.JsonResultsAdapter
		}
	}

	if strings.TrimSpace(merged.ServiceName) == "" {
		return nil, &ConfigurationError{Message: "data service requires a service name"}
	}
	adapter, ok := registry.LookupMetadataAdapter(merged.AdapterName)
	if !ok {
		return nil, &ConfigurationError{Message: "unknown metadata adapter " + merged.AdapterName}
	}
	ds := &DataService{
		serviceName:        NormalizeServiceName(merged.ServiceName),
		adapterName:        merged.AdapterName,
		hasServerMetadata:  *merged.HasServerMetadata,
		useJsonp:           *merged.UseJsonp,
		adapter:            adapter,
		jsonResultsAdapter: merged.JsonResultsAdapter,
	}
	if ds.jsonResultsAdapter == nil {
		ds.jsonResultsAdapter = adapter.DefaultResultsAdapter()
	}
	return ds, nil
}

// newDataServiceFromExport rebuilds a DataService from an imported document.
// Unlike ResolveDataService it tolerates an unregistered adapter name: the
// adapter is resolved lazily when the service is fetched, so that documents
// can be imported before their adapters are registered.
func newDataServiceFromExport(serviceName, adapterName, resultsAdapterName string, hasServerMetadata, useJsonp bool) *DataService {
	registry := DefaultRegistry()
	ds := &DataService{
		serviceName:       NormalizeServiceName(serviceName),
		adapterName:       adapterName,
		hasServerMetadata: hasServerMetadata,
		useJsonp:          useJsonp,
	}
	if adapter, ok := registry.LookupMetadataAdapter(adapterName); ok {
		ds.adapter = adapter
		ds.jsonResultsAdapter = adapter.DefaultResultsAdapter()
	}
	if resultsAdapterName != "" {
		if ra, ok := registry.LookupResultsAdapter(resultsAdapterName); ok {
			ds.jsonResultsAdapter = ra
		}
	}
	return ds
}

// ServiceName returns the normalized service root.
func (ds *DataService) ServiceName() string { return ds.serviceName }

// AdapterName returns the name of the metadata adapter.
func (ds *DataService) AdapterName() string { return ds.adapterName }

// HasServerMetadata reports whether the service exposes a metadata document.
func (ds *DataService) HasServerMetadata() bool { return ds.hasServerMetadata }

// UseJsonp reports whether JSONP transport was requested.
func (ds *DataService) UseJsonp() bool { return ds.useJsonp }

// Adapter returns the resolved metadata adapter, nil when the adapter name was
// not registered at resolution time.
func (ds *DataService) Adapter() MetadataAdapter { return ds.adapter }

// ResultsAdapter returns the results adapter used to shape payloads from this
// service.
func (ds *DataService) ResultsAdapter() *JsonResultsAdapter { return ds.jsonResultsAdapter }

// Using derives a new DataService with the given fields overridden and all
// other fields taken from the receiver.
func (ds *DataService) Using(cfg *DataServiceConfig) (*DataService, error) {
	hasServerMetadata := ds.hasServerMetadata
	useJsonp := ds.useJsonp
	base := &DataServiceConfig{
		ServiceName:        ds.serviceName,
		AdapterName:        ds.adapterName,
		HasServerMetadata:  &hasServerMetadata,
		UseJsonp:           &useJsonp,
		JsonResultsAdapter: ds.jsonResultsAdapter,
	}
	return ResolveDataService(cfg, base)
}
