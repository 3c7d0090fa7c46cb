//go:build example

// Package main demonstrates the metadata registry in go-odata-client.
//
// This example shows how to:
// 1. Build and register entity and complex types by hand
// 2. Fetch a service's metadata document and walk the resulting type graph
// 3. Export the registry and import it into a fresh store
// 4. Use a database-backed cache so clients can start offline
//
// Note: This is a standalone example file. It cannot be run directly with
// other example files due to package conflicts.
package main

import (
	"context"
	"fmt"
	"log"

	odataclient "github.com/nlstn/go-odata-client"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Example 1: Registering types by hand
// ====================================

func registerTypesByHand() *odataclient.MetadataStore {
	store := odataclient.NewMetadataStore()

	customerID, _ := odataclient.NewDataProperty(odataclient.DataPropertyConfig{
		Name:        "ID",
		DataType:    odataclient.DataTypeInt64,
		IsPartOfKey: true,
	})
	companyName, _ := odataclient.NewDataProperty(odataclient.DataPropertyConfig{
		Name:     "CompanyName",
		DataType: odataclient.DataTypeString,
	})
	customerOrders, _ := odataclient.NewNavigationProperty(odataclient.NavigationPropertyConfig{
		Name:            "Orders",
		EntityTypeName:  "Order:#Example.Model",
		AssociationName: "FK_Order_Customer",
	})
	customer, _ := odataclient.NewEntityType(odataclient.EntityTypeConfig{
		ShortName:            "Customer",
		Namespace:            "Example.Model",
		AutoGeneratedKeyType: odataclient.AutoGeneratedKeyTypeIdentity,
		DataProperties:       []*odataclient.DataProperty{customerID, companyName},
		NavigationProperties: []*odataclient.NavigationProperty{customerOrders},
	})

	// Adding Customer parks its Orders navigation until Order arrives; the
	// store links both inverse pointers as soon as it does.
	if err := store.AddEntityType(customer); err != nil {
		log.Fatal(err)
	}

	orderID, _ := odataclient.NewDataProperty(odataclient.DataPropertyConfig{
		Name:        "ID",
		DataType:    odataclient.DataTypeInt64,
		IsPartOfKey: true,
	})
	orderCustomerID, _ := odataclient.NewDataProperty(odataclient.DataPropertyConfig{
		Name:     "CustomerID",
		DataType: odataclient.DataTypeInt64,
	})
	orderCustomer, _ := odataclient.NewNavigationProperty(odataclient.NavigationPropertyConfig{
		Name:            "Customer",
		EntityTypeName:  "Customer:#Example.Model",
		IsScalar:        true,
		AssociationName: "FK_Order_Customer",
		ForeignKeyNames: []string{"CustomerID"},
	})
	order, _ := odataclient.NewEntityType(odataclient.EntityTypeConfig{
		ShortName:            "Order",
		Namespace:            "Example.Model",
		DataProperties:       []*odataclient.DataProperty{orderID, orderCustomerID},
		NavigationProperties: []*odataclient.NavigationProperty{orderCustomer},
	})
	if err := store.AddEntityType(order); err != nil {
		log.Fatal(err)
	}

	inverse := orderCustomer.Inverse()
	fmt.Printf("Order.Customer inverse: %s\n", inverse.Name())
	return store
}

// Example 2: Fetching metadata from a service
// ===========================================

func fetchServiceMetadata() {
	store := odataclient.NewMetadataStore()

	ds, err := odataclient.NewDataService(odataclient.DataServiceConfig{
		ServiceName: "https://services.odata.org/V3/Northwind/Northwind.svc",
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := store.FetchMetadata(context.Background(), ds); err != nil {
		log.Fatal(err)
	}
	for _, et := range store.EntityTypes() {
		fmt.Printf("%s (resource %s, %d properties)\n",
			et.Name(), et.DefaultResourceName(), len(et.DataProperties()))
	}
}

// Example 3: Export / import round-trip
// =====================================

func exportImportRoundTrip(store *odataclient.MetadataStore) {
	doc, err := store.ExportMetadata()
	if err != nil {
		log.Fatal(err)
	}

	fresh := odataclient.NewMetadataStore()
	if err := fresh.ImportMetadata(doc); err != nil {
		log.Fatal(err)
	}
	t, err := fresh.GetEntityType("Customer")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Imported %s with %d properties\n", t.Name(), len(t.DataProperties()))
}

// Example 4: Offline caching
// ==========================

func fetchWithSQLiteCache() {
	db, err := gorm.Open(sqlite.Open("metadata-cache.db"), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}
	cache, err := odataclient.NewMetadataCache(db)
	if err != nil {
		log.Fatal(err)
	}
	store, err := odataclient.NewMetadataStoreWithConfig(odataclient.StoreConfig{Cache: cache})
	if err != nil {
		log.Fatal(err)
	}

	ds, err := odataclient.NewDataService(odataclient.DataServiceConfig{
		ServiceName: "https://services.odata.org/V3/Northwind/Northwind.svc",
	})
	if err != nil {
		log.Fatal(err)
	}
	// The first run fetches from the service and primes the cache; later runs
	// are served from the database without a network round-trip.
	if err := store.FetchMetadata(context.Background(), ds); err != nil {
		log.Fatal(err)
	}
}

func fetchWithPostgresCache() {
	dsn := "host=localhost user=odata dbname=odata sslmode=disable"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}
	cache, err := odataclient.NewMetadataCache(db)
	if err != nil {
		log.Fatal(err)
	}
	store, err := odataclient.NewMetadataStoreWithConfig(odataclient.StoreConfig{Cache: cache})
	if err != nil {
		log.Fatal(err)
	}
	_ = store
}

func main() {
	store := registerTypesByHand()
	exportImportRoundTrip(store)
	fetchServiceMetadata()
	fetchWithSQLiteCache()
}
