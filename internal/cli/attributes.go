// Package cli turns command line attribute arguments into Track calls.
package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Alwanly/firebird-track/pkg/firebird"
)

// Arg is one parsed "name=value" or "name:type=value" argument.
type Arg struct {
	Name  string
	Type  string
	Value string
}

// ParseArg splits a raw argument. The type part is optional.
func ParseArg(raw string) (Arg, error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok {
		return Arg{}, fmt.Errorf("attribute %q: expected name=value or name:type=value", raw)
	}
	name, typ, _ := strings.Cut(key, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return Arg{}, fmt.Errorf("attribute %q: empty name", raw)
	}
	return Arg{Name: name, Type: strings.TrimSpace(typ), Value: value}, nil
}

// Coerce converts the textual value to the Go value matching dt.
func Coerce(dt firebird.DataType, raw string) (any, error) {
	switch dt {
	case firebird.Int:
		return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	case firebird.Double:
		return strconv.ParseFloat(strings.TrimSpace(raw), 64)
	case firebird.Boolean:
		return strconv.ParseBool(strings.TrimSpace(raw))
	case firebird.Array:
		trimmed := strings.TrimSpace(raw)
		if strings.HasPrefix(trimmed, "[") {
			var out []any
			if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
				return nil, fmt.Errorf("invalid json array: %w", err)
			}
			return out, nil
		}
		if trimmed == "" {
			return []string{}, nil
		}
		parts := strings.Split(trimmed, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	default:
		return raw, nil
	}
}

// Apply routes each argument to the matching Track setter. Untyped
// arguments naming a well-known field go through its typed setter, other
// untyped arguments are sent as String.
func Apply(t *firebird.Track, args []Arg) error {
	for _, a := range args {
		if a.Type == "" {
			if err := applyKnown(t, a.Name, a.Value); err != nil {
				return err
			}
			continue
		}

		dt, err := firebird.ParseDataType(a.Type)
		if err != nil {
			return fmt.Errorf("attribute %s: %w", a.Name, err)
		}
		v, err := Coerce(dt, a.Value)
		if err != nil {
			return fmt.Errorf("attribute %s: cannot convert %q to %s: %w", a.Name, a.Value, dt, err)
		}
		if err := t.SetUserAttribute(a.Name, v, a.Type); err != nil {
			return err
		}
	}
	return nil
}

func applyKnown(t *firebird.Track, name, value string) error {
	switch name {
	case firebird.FieldFirstName:
		return t.SetFirstName(value)
	case firebird.FieldLastName:
		return t.SetLastName(value)
	case firebird.FieldUsername:
		return t.SetUsername(value)
	case firebird.FieldEmail:
		return t.SetEmail(value)
	case firebird.FieldMobileNumber:
		return t.SetMobileNumber(value)
	case firebird.FieldGender:
		t.SetGender(value)
	case firebird.FieldBirthDate:
		t.SetBirthDate(value)
	case firebird.FieldAddress:
		t.SetAddress(value)
	case firebird.FieldWhatsappNumber:
		t.SetWhatsappNumber(value)
	case firebird.FieldLocation:
		t.SetLocation(value)
	case firebird.FieldCity:
		t.SetCity(value)
	case firebird.FieldState:
		t.SetState(value)
	case firebird.FieldDistrict:
		t.SetDistrict(value)
	default:
		return t.SetUserAttribute(name, value, "string")
	}
	return nil
}
