package app

import (
	"fmt"
	"io"

	"github.com/tacogips/crumb/internal/config"
	"github.com/tacogips/crumb/internal/ops"
)

// TransferOptions holds options for copy and link.
type TransferOptions struct {
	// ExistOK allows overwriting pre-existing destination entries.
	ExistOK bool
	// Verbose prints one line per transferred path.
	Verbose bool
	// Out receives verbose output.
	Out io.Writer
}

// Copy resolves every combination of the source crumb path and copies each
// file or directory tree into the destination layout.
func Copy(src, dst CrumbSpec, cfg *config.Config, opts TransferOptions) error {
	cs, cd, err := comparePair(src, dst, cfg)
	if err != nil {
		return err
	}
	err = ops.CopyTree(cs, cd, ops.TransferOptions{
		ExistOK: opts.ExistOK,
		Verbose: opts.Verbose,
		Out:     opts.Out,
	})
	if err != nil {
		return NewTransferError(fmt.Sprintf("cannot copy %s to %s", src.Path, dst.Path), err)
	}
	return nil
}

// Link resolves every combination of the source crumb path and symlinks each
// leaf into the destination layout.
func Link(src, dst CrumbSpec, cfg *config.Config, opts TransferOptions) error {
	cs, cd, err := comparePair(src, dst, cfg)
	if err != nil {
		return err
	}
	err = ops.LinkTree(cs, cd, ops.TransferOptions{
		ExistOK: opts.ExistOK,
		Verbose: opts.Verbose,
		Out:     opts.Out,
	})
	if err != nil {
		return NewTransferError(fmt.Sprintf("cannot link %s to %s", src.Path, dst.Path), err)
	}
	return nil
}
