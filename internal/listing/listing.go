// Package listing implements the filename collection pipeline: scan a
// folder, keep the entries the options ask for, and sort the display
// names.
package listing

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/novafiles/lister/internal/natsort"
	"github.com/novafiles/lister/internal/types"
)

// AccessError reports a root folder that is missing, not a directory,
// or unreadable.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot access %s: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

var errNotDirectory = errors.New("not a directory")

// Collect scans the root folder described by opts and returns the
// sorted display names. Non-recursive runs return base names;
// recursive runs return root-relative, slash-separated paths.
//
// The scan is read-only and each call is independent: the result is a
// pure function of the filesystem state and the options. A missing or
// unreadable root fails with *AccessError. During a recursive walk an
// unreadable subdirectory is skipped and reported in Listing.Skipped
// rather than failing the whole run.
func Collect(opts types.ListOptions) (types.Listing, error) {
	if err := opts.Validate(); err != nil {
		return types.Listing{}, err
	}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return types.Listing{}, &AccessError{Path: opts.Root, Err: err}
	}

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.Listing{}, &AccessError{Path: opts.Root, Err: fs.ErrNotExist}
		}
		return types.Listing{}, &AccessError{Path: opts.Root, Err: err}
	}
	if !info.IsDir() {
		return types.Listing{}, &AccessError{Path: opts.Root, Err: errNotDirectory}
	}

	// Nothing enabled matches nothing. The root has already been
	// validated, so this is an empty result, not an error.
	if !opts.IncludeFiles && !opts.IncludeDirs {
		return types.Listing{}, nil
	}

	var result types.Listing
	if opts.Recursive {
		result, err = walk(root, opts)
	} else {
		result, err = readDir(root, opts)
	}
	if err != nil {
		return types.Listing{}, err
	}

	mode := opts.Sort
	if mode == "" {
		mode = natsort.Natural
	}
	natsort.Sort(result.Names, mode)
	return result, nil
}

// readDir enumerates the immediate children of root.
func readDir(root string, opts types.ListOptions) (types.Listing, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return types.Listing{}, &AccessError{Path: opts.Root, Err: err}
	}

	var names []string
	for _, entry := range entries {
		if !wanted(entry.IsDir(), opts) {
			continue
		}
		if !opts.Filter.Allowed(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	return types.Listing{Names: names}, nil
}

// walk traverses the whole tree under root. Display names are
// root-relative with forward slashes on every platform, so entries
// with the same base name in different subfolders stay distinct.
func walk(root string, opts types.ListOptions) (types.Listing, error) {
	var names, skipped []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return &AccessError{Path: opts.Root, Err: err}
			}
			// Unreadable subtree: record it and keep walking the rest.
			skipped = append(skipped, displayName(root, path))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		name := displayName(root, path)
		if !wanted(d.IsDir(), opts) || !opts.Filter.Allowed(name) {
			return nil
		}
		names = append(names, name)
		return nil
	})
	if err != nil {
		var accessErr *AccessError
		if errors.As(err, &accessErr) {
			return types.Listing{}, accessErr
		}
		return types.Listing{}, &AccessError{Path: opts.Root, Err: err}
	}

	return types.Listing{Names: names, Skipped: skipped}, nil
}

func displayName(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}

func wanted(isDir bool, opts types.ListOptions) bool {
	if isDir {
		return opts.IncludeDirs
	}
	return opts.IncludeFiles
}
