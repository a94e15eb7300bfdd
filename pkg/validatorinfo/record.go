package validatorinfo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	FieldID   = "id"
	FieldSecp = "secp"
	FieldBls  = "bls"
	FieldName = "name"
	FieldLogo = "logo"
)

// Record is a single validator entry as stored in <network>/<secp>.json.
type Record struct {
	// Top level keys in file order.
	Keys []string
	// Decoded values, numbers are kept as json.Number.
	Fields map[string]any
}

// ParseRecord decodes a validator entry. The entry must be a json object.
func ParseRecord(data []byte) (*Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	token, err := dec.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected json object, got %v", token)
	}

	record := &Record{
		Keys:   []string{},
		Fields: map[string]any{},
	}

	for dec.More() {
		token, err = dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", token)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("invalid value for %q: %w", key, err)
		}

		if _, exists := record.Fields[key]; !exists {
			record.Keys = append(record.Keys, key)
		}

		record.Fields[key] = value
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after json object")
	}

	return record, nil
}

func (r *Record) Has(key string) bool {
	_, ok := r.Fields[key]
	return ok
}

// String returns the field value if it is a json string.
func (r *Record) String(key string) (string, bool) {
	str, ok := r.Fields[key].(string)
	return str, ok
}

func (r *Record) Secp() string {
	str, _ := r.String(FieldSecp)
	return str
}

func (r *Record) Bls() string {
	str, _ := r.String(FieldBls)
	return str
}

func (r *Record) Name() string {
	str, _ := r.String(FieldName)
	return str
}

func (r *Record) Logo() string {
	str, _ := r.String(FieldLogo)
	return str
}

// DisplayName returns the trimmed name, or the secp key for unnamed validators.
func (r *Record) DisplayName() string {
	name := strings.TrimSpace(r.Name())
	if name == "" {
		return r.Secp()
	}

	return name
}

// ValidatorID returns the on-chain validator id. It may be stored as number or decimal string.
func (r *Record) ValidatorID() (uint64, error) {
	switch id := r.Fields[FieldID].(type) {
	case json.Number:
		return strconv.ParseUint(id.String(), 10, 64)
	case string:
		return strconv.ParseUint(strings.TrimSpace(id), 10, 64)
	case nil:
		return 0, fmt.Errorf("validator id missing")
	default:
		return 0, fmt.Errorf("unsupported validator id type %v", TypeName(id))
	}
}

// FormatField returns a printable representation of a field, "<nil>" if unset.
func (r *Record) FormatField(key string) string {
	value, ok := r.Fields[key]
	if !ok || value == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%v", value)
}

// TypeName returns the json type of a decoded value.
func TypeName(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		if strings.ContainsAny(v.String(), ".eE") {
			return "number"
		}

		return "integer"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
