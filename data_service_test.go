package odataclient

import "testing"

func TestNormalizeServiceName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"api/foo", "api/foo/"},
		{"api/foo/", "api/foo/"},
		{"  api/foo  ", "api/foo/"},
		{"https://example.org/odata", "https://example.org/odata/"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeServiceName(tc.in); got != tc.want {
			t.Errorf("NormalizeServiceName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewDataServiceDefaults(t *testing.T) {
	ds, err := NewDataService(DataServiceConfig{ServiceName: "api/foo"})
	if err != nil {
		t.Fatalf("Failed to create data service: %v", err)
	}
	if ds.ServiceName() != "api/foo/" {
		t.Errorf("Expected normalized name api/foo/, got %q", ds.ServiceName())
	}
	if ds.AdapterName() != ODataAdapterName {
		t.Errorf("Expected default adapter %q, got %q", ODataAdapterName, ds.AdapterName())
	}
	if !ds.HasServerMetadata() {
		t.Error("HasServerMetadata must default to true")
	}
	if ds.UseJsonp() {
		t.Error("UseJsonp must default to false")
	}
	if ds.Adapter() == nil || ds.ResultsAdapter() == nil {
		t.Error("Defaults must resolve an adapter and its results adapter")
	}
}

func TestNewDataServiceRequiresName(t *testing.T) {
	if _, err := NewDataService(DataServiceConfig{}); err == nil {
		t.Error("Expected an error without a service name")
	}
	if _, err := NewDataService(DataServiceConfig{ServiceName: "   "}); err == nil {
		t.Error("Expected an error for a blank service name")
	}
}

func TestNewDataServiceUnknownAdapter(t *testing.T) {
	_, err := NewDataService(DataServiceConfig{ServiceName: "api/foo", AdapterName: "Bogus"})
	if err == nil {
		t.Error("Expected an error for an unregistered adapter")
	}
}

func TestResolveDataServiceMergesLayers(t *testing.T) {
	noMetadata := false
	ds, err := ResolveDataService(
		&DataServiceConfig{ServiceName: "api/foo"},
		&DataServiceConfig{HasServerMetadata: &noMetadata, ServiceName: "api/ignored"},
	)
	if err != nil {
		t.Fatalf("Failed to resolve data service: %v", err)
	}
	if ds.ServiceName() != "api/foo/" {
		t.Errorf("First layer must win for the service name, got %q", ds.ServiceName())
	}
	if ds.HasServerMetadata() {
		t.Error("Later layers must fill fields the first layer left unset")
	}
}

func TestDataServiceUsing(t *testing.T) {
	base, err := NewDataService(DataServiceConfig{ServiceName: "api/foo"})
	if err != nil {
		t.Fatalf("Failed to create data service: %v", err)
	}
	useJsonp := true
	derived, err := base.Using(&DataServiceConfig{UseJsonp: &useJsonp})
	if err != nil {
		t.Fatalf("Failed to derive data service: %v", err)
	}
	if derived == base {
		t.Fatal("Using must return a new service")
	}
	if !derived.UseJsonp() {
		t.Error("Override must apply to the derived service")
	}
	if base.UseJsonp() {
		t.Error("The base service must stay unchanged")
	}
	if derived.ServiceName() != base.ServiceName() {
		t.Errorf("Unset fields must carry over, got %q", derived.ServiceName())
	}
}
