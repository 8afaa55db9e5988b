package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Field identifies a filterable attribute of a StringRecord.
type Field string

// Filterable fields.
const (
	FieldValue            Field = "value"
	FieldLength           Field = "length"
	FieldIsPalindrome     Field = "is_palindrome"
	FieldUniqueCharacters Field = "unique_characters"
	FieldWordCount        Field = "word_count"
)

// Path returns the stored document path of the field. Derived properties
// live under "properties.".
func (f Field) Path() string {
	if f == FieldValue {
		return string(f)
	}
	return "properties." + string(f)
}

// IsNumeric returns true for integer-valued property fields.
func (f Field) IsNumeric() bool {
	switch f {
	case FieldLength, FieldUniqueCharacters, FieldWordCount:
		return true
	default:
		return false
	}
}

// Operator is the comparison applied by a Condition.
type Operator string

// Supported operators.
const (
	OpEq       Operator = "eq"
	OpGte      Operator = "gte"
	OpLte      Operator = "lte"
	OpContains Operator = "contains"
)

// Condition is a single comparison against a field.
// Value is a bool for is_palindrome, a float64 for numeric fields and a
// string for value.
type Condition struct {
	Field Field
	Op    Operator
	Value any
}

// String renders the condition for logs.
func (c Condition) String() string {
	switch c.Op {
	case OpEq:
		return fmt.Sprintf("%s = %v", c.Field.Path(), c.Value)
	case OpGte:
		return fmt.Sprintf("%s >= %v", c.Field.Path(), c.Value)
	case OpLte:
		return fmt.Sprintf("%s <= %v", c.Field.Path(), c.Value)
	case OpContains:
		return fmt.Sprintf("%s contains %q", c.Field.Path(), c.Value)
	default:
		return fmt.Sprintf("%s %s %v", c.Field.Path(), c.Op, c.Value)
	}
}

// Predicate is a conjunction of conditions. The zero value matches every record.
type Predicate struct {
	Conditions []Condition
}

// MatchAll returns the unconstrained predicate.
func MatchAll() Predicate {
	return Predicate{}
}

// And returns a predicate with the given conditions appended.
func (p Predicate) And(conds ...Condition) Predicate {
	out := make([]Condition, 0, len(p.Conditions)+len(conds))
	out = append(out, p.Conditions...)
	out = append(out, conds...)
	return Predicate{Conditions: out}
}

// IsEmpty returns true if the predicate has no conditions.
func (p Predicate) IsEmpty() bool {
	return len(p.Conditions) == 0
}

// String renders the predicate for logs.
func (p Predicate) String() string {
	if p.IsEmpty() {
		return "<all>"
	}
	parts := make([]string, len(p.Conditions))
	for i, c := range p.Conditions {
		parts[i] = c.String()
	}
	return strings.Join(parts, " AND ")
}

// Matches evaluates the predicate against a record.
func (p Predicate) Matches(r *StringRecord) bool {
	for _, c := range p.Conditions {
		if !c.matches(r) {
			return false
		}
	}
	return true
}

func (c Condition) matches(r *StringRecord) bool {
	switch c.Field {
	case FieldValue:
		s, ok := c.Value.(string)
		if !ok {
			return false
		}
		switch c.Op {
		case OpContains:
			return strings.Contains(r.Value, s)
		case OpEq:
			return r.Value == s
		default:
			return false
		}
	case FieldIsPalindrome:
		b, ok := c.Value.(bool)
		return ok && c.Op == OpEq && r.Properties.IsPalindrome == b
	case FieldLength, FieldUniqueCharacters, FieldWordCount:
		want, ok := c.Value.(float64)
		if !ok {
			return false
		}
		got := float64(r.Properties.number(c.Field))
		switch c.Op {
		case OpEq:
			return got == want
		case OpGte:
			return got >= want
		case OpLte:
			return got <= want
		default:
			return false
		}
	default:
		return false
	}
}

func (p StringProperties) number(f Field) int {
	switch f {
	case FieldLength:
		return p.Length
	case FieldUniqueCharacters:
		return p.UniqueCharacters
	case FieldWordCount:
		return p.WordCount
	default:
		return 0
	}
}

// Echo returns the predicate keyed by field name for display.
// Equality conditions map to their value; other operators are grouped
// into an object per field, e.g. {"length":{"gte":5,"lte":9}}.
func (p Predicate) Echo() FilterEcho {
	var echo FilterEcho
	index := make(map[Field]int)

	for _, c := range p.Conditions {
		i, seen := index[c.Field]
		if !seen {
			i = len(echo)
			index[c.Field] = i
			echo = append(echo, EchoEntry{Field: string(c.Field)})
		}

		if c.Op == OpEq {
			echo[i].Value = c.Value
			continue
		}
		ops, ok := echo[i].Value.(map[string]any)
		if !ok {
			ops = make(map[string]any)
		}
		ops[string(c.Op)] = c.Value
		echo[i].Value = ops
	}
	return echo
}

// EchoEntry is one field of a FilterEcho.
type EchoEntry struct {
	Field string
	Value any
}

// FilterEcho is an ordered, human-readable rendering of a predicate.
type FilterEcho []EchoEntry

// MarshalJSON encodes the echo as a JSON object in field order.
func (e FilterEcho) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Field)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", entry.Field, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
