package app

import (
	"github.com/tacogips/crumb/internal/config"
	"github.com/tacogips/crumb/internal/crumb"
	"github.com/tacogips/crumb/internal/ops"
)

// CompareOptions holds options for intersect and diff.
type CompareOptions struct {
	// On restricts the comparison to these argument names. Empty compares
	// on every open argument the two crumb paths share.
	On []string
}

// Intersect returns the argument combinations that exist under both crumb
// paths, compared over their shared open arguments.
func Intersect(a, b CrumbSpec, cfg *config.Config, opts CompareOptions) (crumb.ValuesMap, error) {
	ca, cb, err := comparePair(a, b, cfg)
	if err != nil {
		return nil, err
	}
	vm, err := ops.Intersection(ca, cb, opts.On)
	if err != nil {
		return nil, NewCompareError("intersection failed", err)
	}
	return vm, nil
}

// Diff returns the argument combinations that exist under the first crumb
// path but not under the second.
func Diff(a, b CrumbSpec, cfg *config.Config, opts CompareOptions) (crumb.ValuesMap, error) {
	ca, cb, err := comparePair(a, b, cfg)
	if err != nil {
		return nil, err
	}
	vm, err := ops.Difference(ca, cb, opts.On)
	if err != nil {
		return nil, NewCompareError("difference failed", err)
	}
	return vm, nil
}

// comparePair builds both crumbs of a comparison.
func comparePair(a, b CrumbSpec, cfg *config.Config) (*crumb.Crumb, *crumb.Crumb, error) {
	ca, err := NewCrumb(a, cfg)
	if err != nil {
		return nil, nil, err
	}
	cb, err := NewCrumb(b, cfg)
	if err != nil {
		return nil, nil, err
	}
	return ca, cb, nil
}
