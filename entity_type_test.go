package odataclient

import "testing"

func TestQualifyTypeName(t *testing.T) {
	if got := QualifyTypeName("Customer", "My.Org"); got != "Customer:#My.Org" {
		t.Errorf("Unexpected qualified name %q", got)
	}
	if got := QualifyTypeName("Customer", ""); got != "Customer" {
		t.Errorf("Empty namespace must yield the short name, got %q", got)
	}
	short, ns := ParseQualifiedTypeName("Customer:#My.Org")
	if short != "Customer" || ns != "My.Org" {
		t.Errorf("Unexpected parse result %q, %q", short, ns)
	}
	short, ns = ParseQualifiedTypeName("Customer")
	if short != "Customer" || ns != "" {
		t.Errorf("Unexpected parse result %q, %q", short, ns)
	}
}

func TestResolvePropertyPath(t *testing.T) {
	store := NewMetadataStore()
	address, err := NewComplexType(ComplexTypeConfig{
		ShortName: "Address",
		Namespace: "Test.Model",
		DataProperties: []*DataProperty{
			mustDataProperty(t, DataPropertyConfig{Name: "City", DataType: DataTypeString}),
		},
	})
	if err != nil {
		t.Fatalf("Failed to create complex type: %v", err)
	}
	if err := store.AddEntityType(address); err != nil {
		t.Fatalf("Failed to add complex type: %v", err)
	}

	order, customer := newOrderAndCustomer(t)
	customerAddress := mustDataProperty(t, DataPropertyConfig{Name: "Address", ComplexTypeName: "Address"})
	if err := customer.AddProperty(customerAddress); err != nil {
		t.Fatalf("Failed to add property: %v", err)
	}
	if err := store.AddEntityType(order); err != nil {
		t.Fatalf("Failed to add entity type: %v", err)
	}
	if err := store.AddEntityType(customer); err != nil {
		t.Fatalf("Failed to add entity type: %v", err)
	}

	cases := []struct {
		path string
		want string
	}{
		{"ID", "ID"},
		{"Customer", "Customer"},
		{"Customer.CompanyName", "CompanyName"},
		{"Customer.Address.City", "City"},
		{"Customer.Missing", ""},
		{"ID.Nothing", ""},
		{"Nothing", ""},
	}
	for _, tc := range cases {
		got := order.ResolvePropertyPath(tc.path)
		if tc.want == "" {
			if got != nil {
				t.Errorf("ResolvePropertyPath(%q) = %v, want nil", tc.path, got)
			}
			continue
		}
		if got == nil || got.Name() != tc.want {
			t.Errorf("ResolvePropertyPath(%q) = %v, want %q", tc.path, got, tc.want)
		}
	}
}

func TestResolvePropertyPathUnresolvedNavigation(t *testing.T) {
	store := NewMetadataStore()
	order, _ := newOrderAndCustomer(t)
	if err := store.AddEntityType(order); err != nil {
		t.Fatalf("Failed to add entity type: %v", err)
	}
	// Customer is not registered, so the navigation segment cannot be crossed.
	if got := order.ResolvePropertyPath("Customer.CompanyName"); got != nil {
		t.Errorf("Expected nil for an unresolved navigation segment, got %v", got)
	}
	// The navigation property itself still resolves as a final segment.
	if got := order.ResolvePropertyPath("Customer"); got == nil {
		t.Error("Expected the navigation property itself to resolve")
	}
}

func TestCreateInstanceWithoutFactory(t *testing.T) {
	_, customer := newOrderAndCustomer(t)
	if customer.CreateInstance() != nil {
		t.Error("Expected nil without a registered factory")
	}
}

func TestConcurrencyProperties(t *testing.T) {
	et := mustEntityType(t, EntityTypeConfig{
		ShortName: "Product",
		Namespace: "Test.Model",
		DataProperties: []*DataProperty{
			mustDataProperty(t, DataPropertyConfig{Name: "ID", DataType: DataTypeInt64, IsPartOfKey: true}),
			mustDataProperty(t, DataPropertyConfig{Name: "RowVersion", DataType: DataTypeBinary, ConcurrencyMode: "Fixed"}),
		},
	})
	props := et.ConcurrencyProperties()
	if len(props) != 1 || props[0].Name() != "RowVersion" {
		t.Errorf("Expected RowVersion as the concurrency property, got %v", props)
	}
	if !props[0].IsConcurrencyProperty() {
		t.Error("Fixed concurrency mode must mark the property")
	}
}
