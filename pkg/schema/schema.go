// Package schema is a small declarative validator for untrusted JSON
// bodies. A Spec is an ordered table of field rules walked by a generic
// interpreter: unknown fields are stripped, defaults fill absent optional
// fields, and every violation is collected before reporting (no abort on
// the first error). Validation is a pure function of (input, spec); specs
// are built once at startup and never mutated afterwards.
package schema

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Type enumerates the value kinds a field rule can demand.
type Type int

const (
	TypeString Type = iota
	TypeBool
	TypeDate
	TypeArray
	TypeObject
)

// Field is a single declarative rule. Build instances through the
// combinator constructors (String, Bool, Date, Array, Object) and the
// chainable modifiers; zero values are not meaningful on their own.
type Field struct {
	typ        Type
	required   bool
	hasDefault bool
	def        interface{}
	enum       []string
	maxLen     int
	allowNull  bool
	uri        bool
	items      *Field
	fields     *Spec
}

// String declares a string field. String values are trimmed during
// normalization, mirroring how the API sanitized input.
func String() *Field { return &Field{typ: TypeString} }

// Bool declares a boolean field.
func Bool() *Field { return &Field{typ: TypeBool} }

// Date declares a date field accepting RFC 3339 or YYYY-MM-DD strings.
func Date() *Field { return &Field{typ: TypeDate} }

// Array declares an array field whose items all satisfy the given rule.
func Array(items *Field) *Field { return &Field{typ: TypeArray, items: items} }

// Object declares a nested object validated against its own Spec.
func Object(fields *Spec) *Field { return &Field{typ: TypeObject, fields: fields} }

// Required marks the field as mandatory.
func (f *Field) Required() *Field { f.required = true; return f }

// Default sets the value substituted when the field is absent.
func (f *Field) Default(v interface{}) *Field {
	f.def = v
	f.hasDefault = true
	return f
}

// Enum restricts a string field to the given values.
func (f *Field) Enum(values ...string) *Field { f.enum = values; return f }

// Max limits the length of a string field.
func (f *Field) Max(n int) *Field { f.maxLen = n; return f }

// AllowNull accepts an explicit JSON null as a valid value.
func (f *Field) AllowNull() *Field { f.allowNull = true; return f }

// URI requires a string field to parse as an absolute URI.
func (f *Field) URI() *Field { f.uri = true; return f }

type namedField struct {
	name string
	rule *Field
}

// Spec is an ordered set of field rules. Order only affects the order in
// which violations are reported.
type Spec struct {
	fields []namedField
}

func New() *Spec { return &Spec{} }

// Field appends a rule for the named field.
func (s *Spec) Field(name string, rule *Field) *Spec {
	s.fields = append(s.fields, namedField{name: name, rule: rule})
	return s
}

// ValidationError carries one message per violated constraint.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// Validate checks input against the declared fields. On success it returns a new map
// holding only declared fields, normalized and with defaults applied; the
// input map is never modified. On failure it returns a ValidationError
// listing every violation.
func (s *Spec) Validate(input map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(s.fields))
	var violations []string
	s.walk(input, "", out, &violations)
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	return out, nil
}

func (s *Spec) walk(input map[string]interface{}, prefix string, out map[string]interface{}, violations *[]string) {
	for _, nf := range s.fields {
		path := nf.name
		if prefix != "" {
			path = prefix + "." + nf.name
		}
		raw, present := input[nf.name]
		if !present {
			if nf.rule.required {
				*violations = append(*violations, fmt.Sprintf("%q es obligatorio", path))
				continue
			}
			if nf.rule.hasDefault {
				out[nf.name] = copyValue(nf.rule.def)
			}
			continue
		}
		if v, ok := nf.rule.normalize(raw, path, violations); ok {
			out[nf.name] = v
		}
	}
}

// normalize type-checks and cleans a single present value. The boolean
// reports whether a normalized value was produced; violations are appended
// either way.
func (f *Field) normalize(raw interface{}, path string, violations *[]string) (interface{}, bool) {
	if raw == nil {
		if f.allowNull {
			return nil, true
		}
		*violations = append(*violations, fmt.Sprintf("%q no puede ser nulo", path))
		return nil, false
	}

	switch f.typ {
	case TypeString:
		s, ok := raw.(string)
		if !ok {
			*violations = append(*violations, fmt.Sprintf("%q debe ser un texto", path))
			return nil, false
		}
		s = strings.TrimSpace(s)
		ok = true
		if f.maxLen > 0 && len(s) > f.maxLen {
			*violations = append(*violations, fmt.Sprintf("%q no debe exceder %d caracteres", path, f.maxLen))
			ok = false
		}
		if len(f.enum) > 0 && !contains(f.enum, s) {
			*violations = append(*violations, fmt.Sprintf("%q debe ser uno de: %s", path, strings.Join(f.enum, ", ")))
			ok = false
		}
		if f.uri {
			if u, err := url.Parse(s); err != nil || u.Scheme == "" {
				*violations = append(*violations, fmt.Sprintf("%q debe ser una URI válida", path))
				ok = false
			}
		}
		return s, ok

	case TypeBool:
		b, ok := raw.(bool)
		if !ok {
			*violations = append(*violations, fmt.Sprintf("%q debe ser un booleano", path))
			return nil, false
		}
		return b, true

	case TypeDate:
		switch v := raw.(type) {
		case time.Time:
			return v, true
		case string:
			for _, layout := range []string{time.RFC3339, "2006-01-02"} {
				if t, err := time.Parse(layout, v); err == nil {
					return t, true
				}
			}
		}
		*violations = append(*violations, fmt.Sprintf("%q debe ser una fecha válida", path))
		return nil, false

	case TypeArray:
		items, ok := raw.([]interface{})
		if !ok {
			*violations = append(*violations, fmt.Sprintf("%q debe ser una lista", path))
			return nil, false
		}
		normalized := make([]interface{}, 0, len(items))
		allOK := true
		for i, item := range items {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			v, itemOK := f.items.normalize(item, itemPath, violations)
			if !itemOK {
				allOK = false
				continue
			}
			normalized = append(normalized, v)
		}
		return normalized, allOK

	case TypeObject:
		m, ok := raw.(map[string]interface{})
		if !ok {
			*violations = append(*violations, fmt.Sprintf("%q debe ser un objeto", path))
			return nil, false
		}
		sub := make(map[string]interface{}, len(f.fields.fields))
		before := len(*violations)
		f.fields.walk(m, path, sub, violations)
		return sub, len(*violations) == before
	}
	return nil, false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// copyValue deep-copies default values so callers can mutate the result
// without touching the shared spec.
func copyValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[k] = copyValue(val)
		}
		return m
	case []interface{}:
		s := make([]interface{}, len(t))
		for i, val := range t {
			s[i] = copyValue(val)
		}
		return s
	case []string:
		s := make([]interface{}, len(t))
		for i, val := range t {
			s[i] = val
		}
		return s
	default:
		return v
	}
}
