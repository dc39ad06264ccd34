// Package ops implements set-style operations over crumb paths: joint value
// maps, intersection and difference of two crumbs over shared argument names,
// tree copy/link, and pattern grouping.
package ops

import (
	"fmt"

	"github.com/tacogips/crumb/internal/crumb"
	"github.com/tacogips/crumb/internal/debug"
)

// JointValueMap enumerates each named argument independently and returns the
// combinations as records. Unlike Crumb.ValuesMap the names need not share a
// dependency chain: with more than one name the cartesian product of the
// independent value lists is taken, and when checkExists is true only the
// combinations that resolve to an existing path are kept. A single name is
// returned as-is, one record per value. Output is sorted.
func JointValueMap(c *crumb.Crumb, names []string, checkExists bool) (crumb.ValuesMap, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("joint value map requires at least one argument name")
	}

	lists := make([][]string, len(names))
	for i, name := range names {
		values, err := c.Values(name)
		if err != nil {
			return nil, err
		}
		lists[i] = values
	}

	if len(names) == 1 {
		vm := make(crumb.ValuesMap, 0, len(lists[0]))
		for _, v := range lists[0] {
			vm = append(vm, crumb.Record{}.Extend(names[0], v))
		}
		vm.Sort()
		return vm, nil
	}

	var vm crumb.ValuesMap
	for _, rec := range product(names, lists) {
		if checkExists {
			bound, err := c.Bind(rec.Map())
			if err != nil {
				return nil, err
			}
			if !bound.Exists() {
				continue
			}
		}
		vm = append(vm, rec)
	}
	vm.Sort()
	debug.Debug("[ops] JointValueMap: names=%v records=%d", names, len(vm))
	return vm, nil
}

// product returns the cartesian product of the value lists as records.
func product(names []string, lists [][]string) crumb.ValuesMap {
	vm := crumb.ValuesMap{crumb.Record{}}
	for i, name := range names {
		var next crumb.ValuesMap
		for _, rec := range vm {
			for _, v := range lists[i] {
				next = append(next, rec.Extend(name, v))
			}
		}
		vm = next
	}
	return vm
}

// Intersection returns the records with common values for the shared
// argument names of both crumbs, sorted. If on is empty every argument name
// common to both crumbs is used; an empty resolution is an error.
func Intersection(a, b *crumb.Crumb, on []string) (crumb.ValuesMap, error) {
	names, err := sharedArgs(a, b, on)
	if err != nil {
		return nil, err
	}

	ma, err := JointValueMap(a, names, true)
	if err != nil {
		return nil, err
	}
	mb, err := JointValueMap(b, names, true)
	if err != nil {
		return nil, err
	}

	inB := recordSet(mb)
	var out crumb.ValuesMap
	for _, rec := range ma {
		if _, ok := inB[rec.Key()]; ok {
			out = append(out, rec)
		}
	}
	out.Sort()
	return out, nil
}

// Difference returns the records present in a's joint value map but not in
// b's, over the shared argument names, sorted.
func Difference(a, b *crumb.Crumb, on []string) (crumb.ValuesMap, error) {
	names, err := sharedArgs(a, b, on)
	if err != nil {
		return nil, err
	}

	ma, err := JointValueMap(a, names, true)
	if err != nil {
		return nil, err
	}
	mb, err := JointValueMap(b, names, true)
	if err != nil {
		return nil, err
	}

	inB := recordSet(mb)
	var out crumb.ValuesMap
	for _, rec := range ma {
		if _, ok := inB[rec.Key()]; !ok {
			out = append(out, rec)
		}
	}
	out.Sort()
	return out, nil
}

// recordSet indexes a values map by canonical record keys.
func recordSet(vm crumb.ValuesMap) map[string]struct{} {
	set := make(map[string]struct{}, len(vm))
	for _, rec := range vm {
		set[rec.Key()] = struct{}{}
	}
	return set
}

// sharedArgs resolves the argument names two crumbs are compared on. If on is
// empty the open arguments common to both are used, in a's positional order;
// otherwise on must be a subset of both crumbs' open arguments.
func sharedArgs(a, b *crumb.Crumb, on []string) ([]string, error) {
	bOpen := make(map[string]struct{})
	for _, name := range b.OpenArgs() {
		bOpen[name] = struct{}{}
	}

	var names []string
	if len(on) == 0 {
		for _, name := range a.OpenArgs() {
			if _, ok := bOpen[name]; ok {
				names = append(names, name)
			}
		}
	} else {
		for _, name := range on {
			if !a.HasArg(name) {
				break
			}
			if _, ok := bOpen[name]; !ok {
				break
			}
			names = append(names, name)
		}
		if len(names) != len(on) {
			names = nil
		}
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("no matching arguments between %v and %v limited by %v",
			a.OpenArgs(), b.OpenArgs(), on)
	}
	return names, nil
}
