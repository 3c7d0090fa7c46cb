package odataclient

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DataType describes one of the primitive property types understood by the
// metadata model. Each DataType knows its wire name, its zero default used for
// non-nullable properties, its canonical validator, and how to parse raw
// default values found in schema documents.
//
// DataType values are shared catalog entries; do not mutate them.
type DataType struct {
	// name is the client-side type name ("String", "Int64", ...)
	name string
	// edmName is the wire name in schema documents ("Edm.String", ...)
	edmName string
	// defaultValue is assigned to non-nullable properties without an explicit default
	defaultValue interface{}
	// isNumeric is true for all number types including Decimal
	isNumeric bool
	// isInteger is true for the whole-number subset of the numeric types
	isInteger bool
	// isDate is true for the date and time types
	isDate bool
	// isSpatial is true for the Geography and Geometry families
	isSpatial bool
	// validator is the canonical validator attached to properties of this type
	validator *Validator
	// next produces client-side temporary key values, nil when unsupported
	next func() interface{}
	// parse converts a raw schema default-value string into a typed value
	parse func(string) (interface{}, error)
}

// Name returns the client-side type name.
func (dt *DataType) Name() string { return dt.name }

// EdmName returns the wire name used in schema documents.
func (dt *DataType) EdmName() string { return dt.edmName }

// DefaultValue returns the value assigned to non-nullable properties of this
// type when no explicit default is configured.
func (dt *DataType) DefaultValue() interface{} { return dt.defaultValue }

// IsNumeric reports whether the type is numeric (including Decimal).
func (dt *DataType) IsNumeric() bool { return dt.isNumeric }

// IsInteger reports whether the type is a whole-number type.
func (dt *DataType) IsInteger() bool { return dt.isInteger }

// IsDate reports whether the type carries date or time information.
func (dt *DataType) IsDate() bool { return dt.isDate }

// IsSpatial reports whether the type belongs to the Geography or Geometry family.
func (dt *DataType) IsSpatial() bool { return dt.isSpatial }

// Validator returns the canonical validator for the type, or nil when the type
// has none.
func (dt *DataType) Validator() *Validator { return dt.validator }

// Next returns the next client-generated temporary key value for the type.
// It returns nil for types that do not support temporary key generation.
// Integer types count downward from -1 so that generated keys never collide
// with server-issued ones; Guid uses a random UUID.
func (dt *DataType) Next() interface{} {
	if dt.next == nil {
		return nil
	}
	return dt.next()
}

// ParseValue converts a raw default-value string from a schema document into a
// value of this type.
func (dt *DataType) ParseValue(raw string) (interface{}, error) {
	if dt.parse == nil {
		return raw, nil
	}
	return dt.parse(raw)
}

// CoerceValue converts a value decoded from a JSON metadata document into the
// natural Go representation for this type. JSON decoding yields float64 for
// every number and strings for dates, decimals and UUIDs; CoerceValue restores
// the typed form. Values that cannot be coerced are returned unchanged.
func (dt *DataType) CoerceValue(value interface{}) interface{} {
	if value == nil {
		return nil
	}
	switch dt {
	case DataTypeInt64, DataTypeInt32, DataTypeInt16, DataTypeByte, DataTypeSByte:
		if f, ok := value.(float64); ok {
			return int64(f)
		}
	case DataTypeDecimal:
		switch v := value.(type) {
		case string:
			if d, err := decimal.NewFromString(v); err == nil {
				return d
			}
		case float64:
			return decimal.NewFromFloat(v)
		}
	case DataTypeDateTime, DataTypeDateTimeOffset:
		if s, ok := value.(string); ok {
			if t, err := parseDateValue(s); err == nil {
				return t
			}
		}
	case DataTypeBinary:
		if s, ok := value.(string); ok {
			return []byte(s)
		}
	}
	return value
}

// tempKeySequence feeds the integer temporary-key generators. Temporary keys
// count downward so they can never collide with server-assigned identifiers.
var tempKeySequence int64

func nextTempKey() int64 {
	return atomic.AddInt64(&tempKeySequence, -1)
}

func parseIntegerValue(raw string) (interface{}, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer default %q: %w", raw, err)
	}
	return v, nil
}

func parseDecimalValue(raw string) (interface{}, error) {
	// CSDL decimal literals may carry a type suffix, e.g. "79.99m".
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "mMfFdD")
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal default %q: %w", raw, err)
	}
	return d, nil
}

func parseFloatValue(raw string) (interface{}, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "mMfFdD")
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid floating point default %q: %w", raw, err)
	}
	return v, nil
}

func parseBoolValue(raw string) (interface{}, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid boolean default %q: %w", raw, err)
	}
	return v, nil
}

func parseGuidValue(raw string) (interface{}, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid guid default %q: %w", raw, err)
	}
	return id.String(), nil
}

var dateValueLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDateValue(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range dateValueLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date default %q", raw)
}

// The primitive type catalog. Durations (Edm.Time / Edm.Duration) are carried
// as ISO 8601 strings; spatial values as WKT strings.
var (
	DataTypeString = &DataType{
		name: "String", edmName: "Edm.String", defaultValue: "",
		validator: stringTypeValidator,
		next:      func() interface{} { return fmt.Sprintf("_%d", -nextTempKey()) },
	}
	DataTypeInt64 = &DataType{
		name: "Int64", edmName: "Edm.Int64", defaultValue: int64(0),
		isNumeric: true, isInteger: true,
		validator: int64TypeValidator,
		next:      func() interface{} { return nextTempKey() },
		parse:     parseIntegerValue,
	}
	DataTypeInt32 = &DataType{
		name: "Int32", edmName: "Edm.Int32", defaultValue: int64(0),
		isNumeric: true, isInteger: true,
		validator: int32TypeValidator,
		next:      func() interface{} { return nextTempKey() },
		parse:     parseIntegerValue,
	}
	DataTypeInt16 = &DataType{
		name: "Int16", edmName: "Edm.Int16", defaultValue: int64(0),
		isNumeric: true, isInteger: true,
		validator: int16TypeValidator,
		next:      func() interface{} { return nextTempKey() },
		parse:     parseIntegerValue,
	}
	DataTypeByte = &DataType{
		name: "Byte", edmName: "Edm.Byte", defaultValue: int64(0),
		isNumeric: true, isInteger: true,
		validator: byteTypeValidator,
		parse:     parseIntegerValue,
	}
	DataTypeSByte = &DataType{
		name: "SByte", edmName: "Edm.SByte", defaultValue: int64(0),
		isNumeric: true, isInteger: true,
		validator: sbyteTypeValidator,
		parse:     parseIntegerValue,
	}
	DataTypeDecimal = &DataType{
		name: "Decimal", edmName: "Edm.Decimal", defaultValue: decimal.Zero,
		isNumeric: true,
		validator: numberTypeValidator,
		parse:     parseDecimalValue,
	}
	DataTypeDouble = &DataType{
		name: "Double", edmName: "Edm.Double", defaultValue: float64(0),
		isNumeric: true,
		validator: numberTypeValidator,
		parse:     parseFloatValue,
	}
	DataTypeSingle = &DataType{
		name: "Single", edmName: "Edm.Single", defaultValue: float64(0),
		isNumeric: true,
		validator: numberTypeValidator,
		parse:     parseFloatValue,
	}
	DataTypeDateTime = &DataType{
		name: "DateTime", edmName: "Edm.DateTime", defaultValue: time.Time{},
		isDate:    true,
		validator: dateTypeValidator,
		parse:     func(raw string) (interface{}, error) { return parseDateValue(raw) },
	}
	DataTypeDateTimeOffset = &DataType{
		name: "DateTimeOffset", edmName: "Edm.DateTimeOffset", defaultValue: time.Time{},
		isDate:    true,
		validator: dateTypeValidator,
		parse:     func(raw string) (interface{}, error) { return parseDateValue(raw) },
	}
	DataTypeTime = &DataType{
		name: "Time", edmName: "Edm.Time", defaultValue: "PT0S",
		isDate:    true,
		validator: durationTypeValidator,
	}
	DataTypeBoolean = &DataType{
		name: "Boolean", edmName: "Edm.Boolean", defaultValue: false,
		validator: boolTypeValidator,
		parse:     parseBoolValue,
	}
	DataTypeGuid = &DataType{
		name: "Guid", edmName: "Edm.Guid", defaultValue: uuid.Nil.String(),
		validator: guidTypeValidator,
		next:      func() interface{} { return uuid.NewString() },
		parse:     parseGuidValue,
	}
	DataTypeBinary = &DataType{
		name: "Binary", edmName: "Edm.Binary", defaultValue: []byte{},
	}
	DataTypeUndefined = &DataType{
		name: "Undefined", edmName: "Edm.Undefined",
	}
	DataTypeGeography = &DataType{
		name: "Geography", edmName: "Edm.Geography", defaultValue: "GEOMETRYCOLLECTION EMPTY",
		isSpatial: true,
	}
	DataTypeGeographyPoint = &DataType{
		name: "GeographyPoint", edmName: "Edm.GeographyPoint", defaultValue: "POINT (0 0)",
		isSpatial: true,
	}
	DataTypeGeometry = &DataType{
		name: "Geometry", edmName: "Edm.Geometry", defaultValue: "GEOMETRYCOLLECTION EMPTY",
		isSpatial: true,
	}
	DataTypeGeometryPoint = &DataType{
		name: "GeometryPoint", edmName: "Edm.GeometryPoint", defaultValue: "POINT (0 0)",
		isSpatial: true,
	}
)

var allDataTypes = []*DataType{
	DataTypeString, DataTypeInt64, DataTypeInt32, DataTypeInt16, DataTypeByte,
	DataTypeSByte, DataTypeDecimal, DataTypeDouble, DataTypeSingle,
	DataTypeDateTime, DataTypeDateTimeOffset, DataTypeTime, DataTypeBoolean,
	DataTypeGuid, DataTypeBinary, DataTypeUndefined,
	DataTypeGeography, DataTypeGeographyPoint, DataTypeGeometry, DataTypeGeometryPoint,
}

// DataTypeFromName resolves a client-side type name ("Int32") to its catalog
// entry, or nil when the name is unknown.
func DataTypeFromName(name string) *DataType {
	for _, dt := range allDataTypes {
		if dt.name == name {
			return dt
		}
	}
	return nil
}

// DataTypeFromEdm resolves a wire type name ("Edm.Int32") to its catalog entry.
// The "Edm." prefix is optional. Unlisted Geography and Geometry subtypes fall
// back to their family entry; "Edm.Duration" is accepted as an alias for Time.
// Unknown names resolve to nil.
func DataTypeFromEdm(edmName string) *DataType {
	name := strings.TrimPrefix(edmName, "Edm.")
	if dt := DataTypeFromName(name); dt != nil {
		return dt
	}
	switch {
	case name == "Duration":
		return DataTypeTime
	case strings.HasPrefix(name, "Geography"):
		return DataTypeGeography
	case strings.HasPrefix(name, "Geometry"):
		return DataTypeGeometry
	}
	return nil
}
