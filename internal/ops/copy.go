package ops

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	billy "github.com/go-git/go-billy/v5"

	"github.com/tacogips/crumb/internal/crumb"
	"github.com/tacogips/crumb/internal/debug"
)

// TransferOptions configures CopyTree and LinkTree.
type TransferOptions struct {
	// ExistOK allows overwriting pre-existing destination entries.
	ExistOK bool
	// Verbose prints one line per transferred path to w.
	Verbose bool
	// Out receives verbose output; defaults to os.Stdout.
	Out io.Writer
}

func (o TransferOptions) out() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return os.Stdout
}

// transferPair is one resolved source path and its destination path.
type transferPair struct {
	src string
	dst string
}

// CopyTree copies every path resolved from src into the layout described by
// dst. The destination's open argument names must be a subset of the
// source's; each source combination fills the destination template and the
// file or directory tree is copied there.
func CopyTree(src, dst *crumb.Crumb, opts TransferOptions) error {
	pairs, err := resolvePairs(src, dst)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		if opts.Verbose {
			fmt.Fprintf(opts.out(), "Copying %s -> %s\n", p.src, p.dst)
		}
		if err := copyAll(src.Filesystem(), dst.Filesystem(), p.src, p.dst, opts.ExistOK); err != nil {
			return err
		}
	}
	return nil
}

// LinkTree creates the destination folder structure and symlinks each leaf
// resolved from src to its place in dst.
func LinkTree(src, dst *crumb.Crumb, opts TransferOptions) error {
	pairs, err := resolvePairs(src, dst)
	if err != nil {
		return err
	}
	fs := dst.Filesystem()
	for _, p := range pairs {
		if opts.Verbose {
			fmt.Fprintf(opts.out(), "Linking %s -> %s\n", p.src, p.dst)
		}
		if err := fs.MkdirAll(path.Dir(p.dst), 0o755); err != nil {
			return err
		}
		if _, err := fs.Lstat(p.dst); err == nil {
			if !opts.ExistOK {
				return fmt.Errorf("destination already exists: %s", p.dst)
			}
			if err := fs.Remove(p.dst); err != nil {
				return err
			}
		}
		if err := fs.Symlink(p.src, p.dst); err != nil {
			return err
		}
	}
	return nil
}

// resolvePairs enumerates src fully and binds each resulting record into dst.
// Every open argument of dst must be covered by the record.
func resolvePairs(src, dst *crumb.Crumb) ([]transferPair, error) {
	if !src.HasArgs() {
		if dst.HasArgs() {
			return nil, fmt.Errorf("destination crumb still has open arguments: %s", dst.Path())
		}
		return []transferPair{{src: src.Path(), dst: dst.Path()}}, nil
	}

	last, err := src.LastOpenArg()
	if err != nil {
		return nil, err
	}
	vm, err := src.ValuesMap(last)
	if err != nil {
		return nil, err
	}
	debug.Debug("[ops] resolvePairs: %d source combinations", len(vm))

	pairs := make([]transferPair, 0, len(vm))
	for _, rec := range vm {
		srcBound, err := src.Bind(rec.Map())
		if err != nil {
			return nil, err
		}

		dstBindings := make(map[string]string)
		for _, name := range dst.OpenArgs() {
			v, ok := rec.Get(name)
			if !ok {
				return nil, fmt.Errorf("destination argument %q has no value in source crumb %s",
					name, src.Path())
			}
			dstBindings[name] = v
		}
		dstBound, err := dst.Bind(dstBindings)
		if err != nil {
			return nil, err
		}
		if dstBound.HasArgs() {
			return nil, fmt.Errorf("destination crumb still has open arguments: %s", dstBound.Path())
		}
		pairs = append(pairs, transferPair{src: srcBound.Path(), dst: dstBound.Path()})
	}
	return pairs, nil
}

// copyAll copies a file or directory tree from srcFS to dstFS.
func copyAll(srcFS, dstFS billy.Filesystem, src, dst string, existOK bool) error {
	info, err := srcFS.Stat(src)
	if err != nil {
		return err
	}

	if info.IsDir() {
		if err := dstFS.MkdirAll(dst, 0o755); err != nil {
			return err
		}
		entries, err := srcFS.ReadDir(src)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			childSrc := path.Join(src, entry.Name())
			childDst := path.Join(dst, entry.Name())
			if err := copyAll(srcFS, dstFS, childSrc, childDst, existOK); err != nil {
				return err
			}
		}
		return nil
	}

	if _, err := dstFS.Stat(dst); err == nil {
		if !existOK {
			return fmt.Errorf("destination already exists: %s", dst)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := dstFS.MkdirAll(path.Dir(dst), 0o755); err != nil {
		return err
	}
	return copyFile(srcFS, dstFS, src, dst)
}

// copyFile copies a single file's content.
func copyFile(srcFS, dstFS billy.Filesystem, src, dst string) error {
	in, err := srcFS.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := dstFS.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
