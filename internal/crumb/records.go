package crumb

import (
	"sort"
	"strings"
)

// ArgValue is one (argument name, value) binding.
type ArgValue struct {
	Name  string
	Value string
}

// Record is an ordered sequence of bindings covering the open arguments from
// the first one up to some target argument, in positional order.
type Record []ArgValue

// Get returns the value bound to name in the record.
func (r Record) Get(name string) (string, bool) {
	for _, av := range r {
		if av.Name == name {
			return av.Value, true
		}
	}
	return "", false
}

// Map returns the record as an unordered binding map.
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r))
	for _, av := range r {
		m[av.Name] = av.Value
	}
	return m
}

// Names returns the argument names of the record in order.
func (r Record) Names() []string {
	names := make([]string, len(r))
	for i, av := range r {
		names[i] = av.Name
	}
	return names
}

// Extend returns a copy of the record with one more binding appended.
func (r Record) Extend(name, value string) Record {
	nr := make(Record, len(r), len(r)+1)
	copy(nr, r)
	return append(nr, ArgValue{Name: name, Value: value})
}

// Key returns a canonical identity for the record: its name/value pairs in
// sorted name order. Two records with the same bindings have the same key
// regardless of positional order.
func (r Record) Key() string {
	pairs := make([]string, len(r))
	for i, av := range r {
		pairs[i] = av.Name + "=" + av.Value
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "\x00")
}

// ValuesMap is a sequence of records: one row per discovered combination of
// argument values, columns in positional argument order.
type ValuesMap []Record

// Sort orders the records by their canonical keys for deterministic output.
func (vm ValuesMap) Sort() {
	sort.Slice(vm, func(i, j int) bool {
		return vm[i].Key() < vm[j].Key()
	})
}

// Values returns the column of values for one argument name.
func (vm ValuesMap) Values(name string) []string {
	var values []string
	for _, rec := range vm {
		if v, ok := rec.Get(name); ok {
			values = append(values, v)
		}
	}
	return values
}
