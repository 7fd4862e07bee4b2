package types

import (
	"errors"

	"github.com/novafiles/lister/internal/namefilter"
	"github.com/novafiles/lister/internal/natsort"
)

type (
	// ListOptions configures a single listing run. It is treated as an
	// immutable value: Collect never mutates it.
	ListOptions struct {
		// Root is the folder to list, absolute or relative to the
		// working directory.
		Root string
		// IncludeFiles includes regular (and other non-directory)
		// entries in the listing.
		IncludeFiles bool
		// IncludeDirs includes directories in the listing.
		IncludeDirs bool
		// Recursive walks the whole tree under Root instead of only
		// its immediate children. Display names become root-relative,
		// slash-separated paths.
		Recursive bool
		// Sort selects the comparator. Defaults to natural order when
		// empty.
		Sort natsort.Mode
		// Filter optionally drops entries by ignore pattern or exact
		// base name. Nil means no filtering.
		Filter *namefilter.Filter
	}

	// Listing is the outcome of a collect run: the sorted display
	// names, plus any subdirectories that could not be read during a
	// recursive walk and were skipped.
	Listing struct {
		Names   []string
		Skipped []string
	}
)

// Validate checks the option invariants that do not require touching
// the filesystem.
func (o *ListOptions) Validate() error {
	if o.Root == "" {
		return errors.New("root folder must not be empty")
	}
	if o.Sort != "" && !o.Sort.Valid() {
		return errors.New("invalid sort mode (use 'natural' or 'lexical')")
	}
	return nil
}
