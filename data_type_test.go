package odataclient

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestDataTypeFromEdm(t *testing.T) {
	cases := []struct {
		edm  string
		want *DataType
	}{
		{"Edm.String", DataTypeString},
		{"Edm.Int32", DataTypeInt32},
		{"Int64", DataTypeInt64},
		{"Edm.Duration", DataTypeTime},
		{"Edm.GeographyPolygon", DataTypeGeography},
		{"Edm.GeometryLineString", DataTypeGeometry},
		{"Edm.GeographyPoint", DataTypeGeographyPoint},
		{"Edm.NoSuchType", nil},
	}
	for _, tc := range cases {
		if got := DataTypeFromEdm(tc.edm); got != tc.want {
			t.Errorf("DataTypeFromEdm(%q) = %v, want %v", tc.edm, got, tc.want)
		}
	}
}

func TestDataTypeParseValue(t *testing.T) {
	if v, err := DataTypeInt32.ParseValue("42"); err != nil || v != int64(42) {
		t.Errorf("Expected int64 42, got %v, %v", v, err)
	}
	if v, err := DataTypeDecimal.ParseValue("79.99m"); err != nil {
		t.Errorf("Failed to parse decimal with suffix: %v", err)
	} else if d := v.(decimal.Decimal); !d.Equal(decimal.RequireFromString("79.99")) {
		t.Errorf("Expected 79.99, got %v", d)
	}
	if v, err := DataTypeBoolean.ParseValue("true"); err != nil || v != true {
		t.Errorf("Expected true, got %v, %v", v, err)
	}
	if v, err := DataTypeDateTime.ParseValue("1998-05-04"); err != nil {
		t.Errorf("Failed to parse date default: %v", err)
	} else if ts := v.(time.Time); ts.Year() != 1998 || ts.Month() != time.May {
		t.Errorf("Unexpected date %v", ts)
	}
	if _, err := DataTypeGuid.ParseValue("not-a-guid"); err == nil {
		t.Error("Expected an error for a malformed guid")
	}
	if _, err := DataTypeInt64.ParseValue("abc"); err == nil {
		t.Error("Expected an error for a malformed integer")
	}
	// Types without a parser carry the raw string through.
	if v, err := DataTypeTime.ParseValue("PT1H"); err != nil || v != "PT1H" {
		t.Errorf("Expected raw duration string, got %v, %v", v, err)
	}
}

func TestDataTypeCoerceValue(t *testing.T) {
	if v := DataTypeInt64.CoerceValue(float64(7)); v != int64(7) {
		t.Errorf("Expected int64 7, got %T %v", v, v)
	}
	if v := DataTypeDecimal.CoerceValue("12.5"); !v.(decimal.Decimal).Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("Expected decimal 12.5, got %v", v)
	}
	if v := DataTypeDateTimeOffset.CoerceValue("2020-01-02T03:04:05Z"); v.(time.Time).Day() != 2 {
		t.Errorf("Expected coerced time, got %v", v)
	}
	if v := DataTypeString.CoerceValue("plain"); v != "plain" {
		t.Errorf("Strings must pass through, got %v", v)
	}
	if v := DataTypeInt32.CoerceValue(nil); v != nil {
		t.Errorf("Nil must pass through, got %v", v)
	}
}

func TestDataTypeNextTempKeys(t *testing.T) {
	first := DataTypeInt64.Next().(int64)
	second := DataTypeInt64.Next().(int64)
	if first >= 0 || second >= 0 {
		t.Errorf("Temporary keys must be negative, got %d and %d", first, second)
	}
	if first == second {
		t.Error("Temporary keys must be distinct")
	}
	id := DataTypeGuid.Next().(string)
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("Guid temp key must be a valid UUID: %v", err)
	}
	if DataTypeBinary.Next() != nil {
		t.Error("Binary must not generate temporary keys")
	}
}

func TestSpatialTypeDefaults(t *testing.T) {
	if !DataTypeGeography.IsSpatial() || !DataTypeGeometryPoint.IsSpatial() {
		t.Error("Spatial family types must report IsSpatial")
	}
	if DataTypeGeographyPoint.DefaultValue() != "POINT (0 0)" {
		t.Errorf("Unexpected spatial default %v", DataTypeGeographyPoint.DefaultValue())
	}
}
