package firebird

import (
	"encoding/json"
	"strings"
)

// DataType is the declared type of an attribute value.
type DataType int

const (
	String DataType = iota
	Int
	Double
	Boolean
	Array
)

var canonicalNames = map[DataType]string{
	String:  "String",
	Int:     "int",
	Double:  "double",
	Boolean: "boolean",
	Array:   "array",
}

// aliases maps lower-cased input names to their data type.
var aliases = map[string]DataType{
	"string":  String,
	"integer": Int,
	"int":     Int,
	"float":   Double,
	"double":  Double,
	"boolean": Boolean,
	"bool":    Boolean,
	"array":   Array,
}

// ParseDataType resolves a case-insensitive alias such as "Integer" or "bool".
func ParseDataType(alias string) (DataType, error) {
	dt, ok := aliases[strings.ToLower(alias)]
	if !ok {
		return 0, &DataTypeError{Alias: alias}
	}
	return dt, nil
}

// String returns the canonical wire name.
func (d DataType) String() string {
	if name, ok := canonicalNames[d]; ok {
		return name
	}
	return "unknown"
}

func (d DataType) MarshalJSON() ([]byte, error) {
	name, ok := canonicalNames[d]
	if !ok {
		return nil, &DataTypeError{Alias: d.String()}
	}
	return json.Marshal(name)
}

func (d *DataType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	dt, err := ParseDataType(s)
	if err != nil {
		return err
	}
	*d = dt
	return nil
}
