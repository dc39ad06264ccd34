package crumb

import (
	billy "github.com/go-git/go-billy/v5"
)

// Exists reports whether the crumb resolves to at least one existing path.
// A fully bound crumb exists iff its path exists (or is a symlink). A crumb
// with open arguments exists iff at least one full resolution of all
// remaining arguments yields an existing path.
func (c *Crumb) Exists() bool {
	if !c.HasArgs() {
		return pathExists(c.fs, c.Path())
	}

	prefix, _ := c.Split()
	if prefix == "" || !pathExists(c.fs, prefix) {
		return false
	}

	last, err := c.LastOpenArg()
	if err != nil {
		return false
	}
	vm, err := c.ValuesMap(last)
	if err != nil || len(vm) == 0 {
		return false
	}
	for _, rec := range vm {
		if pathExists(c.fs, c.render(rec.Map(), false)) {
			return true
		}
	}
	return false
}

// pathExists reports whether path exists on fs, counting dangling symlinks
// as existing.
func pathExists(fs billy.Filesystem, path string) bool {
	if _, err := fs.Stat(path); err == nil {
		return true
	}
	if _, err := fs.Lstat(path); err == nil {
		return true
	}
	return false
}
