// Package catalog holds the fixed set of named analytical queries the
// service exposes. Entries are static for the lifetime of the process
// and always execute through the storage gateway with bound parameters.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type ParamType string

const (
	ParamString ParamType = "string"
	ParamInt    ParamType = "int"
	ParamFloat  ParamType = "float"
	ParamTime   ParamType = "time"
)

// Param declares one expected query parameter.
type Param struct {
	Name string
	Type ParamType
}

// Column declares one output column with its logical type.
type Column struct {
	Name string
	Type ParamType
}

// Entry is a named, parameterized, read-only analytical statement.
type Entry struct {
	Name        string
	Title       string
	Description string
	Params      []Param
	Columns     []Column
	SQL         string

	// Binding lists param names in placeholder order when a param is
	// referenced more than once in the statement. Empty means params
	// bind in declaration order, once each.
	Binding []string
}

// Entries returns every catalog entry in stable listing order.
func Entries() []Entry {
	return append([]Entry(nil), entries...)
}

// Lookup finds an entry by name.
func Lookup(name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// BindArgs validates the raw parameter values against the entry's
// declaration and returns driver arguments in placeholder order.
func (e Entry) BindArgs(raw map[string]string) ([]any, error) {
	byName := make(map[string]any, len(e.Params))
	for _, p := range e.Params {
		value, ok := raw[p.Name]
		if !ok || strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("parameter %q is required", p.Name)
		}

		parsed, err := parseParam(p.Type, value)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		byName[p.Name] = parsed
	}

	for name := range raw {
		if _, ok := byName[name]; !ok {
			return nil, fmt.Errorf("unknown parameter %q", name)
		}
	}

	order := e.Binding
	if len(order) == 0 {
		order = make([]string, 0, len(e.Params))
		for _, p := range e.Params {
			order = append(order, p.Name)
		}
	}

	args := make([]any, 0, len(order))
	for _, name := range order {
		value, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("binding references undeclared parameter %q", name)
		}
		args = append(args, value)
	}
	return args, nil
}

func parseParam(kind ParamType, value string) (any, error) {
	value = strings.TrimSpace(value)
	switch kind {
	case ParamString:
		return value, nil
	case ParamInt:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("expected integer, got %q", value)
		}
		return n, nil
	case ParamFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("expected number, got %q", value)
		}
		return f, nil
	case ParamTime:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if ts, err := time.Parse(layout, value); err == nil {
				return ts.UTC(), nil
			}
		}
		return nil, fmt.Errorf("expected RFC3339 or YYYY-MM-DD timestamp, got %q", value)
	default:
		return nil, fmt.Errorf("unsupported parameter type %q", kind)
	}
}

// PlaceholderCount reports how many `?` placeholders the statement
// carries. Declared bindings must match it exactly.
func (e Entry) PlaceholderCount() int {
	return strings.Count(e.SQL, "?")
}
