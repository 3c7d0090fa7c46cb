// Package odataclient implements client-side entity metadata management for
// OData services: a registry of entity and complex types, their properties
// and associations, and the conversion between server-described CSDL/EDMX
// schema documents and the client-side canonical representation.
//
// # MetadataStore
//
// The MetadataStore is the central registry. Types may be registered by hand,
// converted from a service's metadata document, or imported from a previously
// exported JSON document. Schema input is order-independent: a navigation
// property may reference a target type that has not been registered yet, in
// which case the store parks it in an incomplete-association index and links
// target and inverse pointers as soon as the missing side arrives. A bulk
// conversion whose navigation targets never arrive fails with a
// SchemaIntegrityError and leaves the store untouched.
//
//	store := odataclient.NewMetadataStore()
//	ds, err := odataclient.NewDataService(odataclient.DataServiceConfig{
//	    ServiceName: "https://example.com/api/northwind",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := store.FetchMetadata(ctx, ds); err != nil {
//	    log.Fatal(err)
//	}
//
// # Offline caching
//
// ExportMetadata serializes the whole registry as one versioned JSON document
// that ImportMetadata reproduces losslessly. A store configured with a
// MetadataCache persists these documents in a database and serves later
// fetches from it, so applications can build their type graph without a
// network round-trip.
//
// # Naming conventions
//
// A NamingConvention maps property names between their server-side and
// client-side forms in both directions. The store verifies at registration
// time that the convention round-trips every name it derives and rejects the
// type otherwise, so a lossy convention can never silently corrupt names.
package odataclient
