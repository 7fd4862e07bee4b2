package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/novafiles/lister/internal/listfile"
	"github.com/novafiles/lister/internal/listing"
	"github.com/novafiles/lister/internal/namefilter"
	"github.com/novafiles/lister/internal/natsort"
	"github.com/novafiles/lister/internal/types"
)

// yamlListing is the machine-readable shape emitted by --format yaml.
type yamlListing struct {
	Root    string   `yaml:"root"`
	Count   int      `yaml:"count"`
	Names   []string `yaml:"names"`
	Skipped []string `yaml:"skipped,omitempty"`
}

func newListCmd() *cobra.Command {
	var (
		includeFiles bool
		includeDirs  bool
		recursive    bool
		sortMode     string
		ignore       []string
		output       string
		skipOutput   bool
		limit        int
		format       string
	)

	cmd := &cobra.Command{
		Use:   "list [folder]",
		Short: "List filenames under a folder, sorted",
		Long: `list scans a folder (the working directory by default), keeps files
and/or folders per the include flags, sorts the names, and prints
them one per line. With --output the full listing is written to a
text file instead; by default the output file's own name is dropped
from the listing so a rerun does not list it.`,
		Example: `lister list ~/photos --sort natural
lister list src --dirs --files=false --recursive
lister list . --recursive --ignore '.git/**' --output filenames_sorted.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			if format != "text" && format != "yaml" {
				return fmt.Errorf("invalid format %q (use 'text' or 'yaml')", format)
			}

			var skipNames []string
			if output != "" && skipOutput {
				skipNames = append(skipNames, filepath.Base(output))
			}
			filter, err := namefilter.New(ignore, skipNames)
			if err != nil {
				return err
			}

			result, err := listing.Collect(types.ListOptions{
				Root:         root,
				IncludeFiles: includeFiles,
				IncludeDirs:  includeDirs,
				Recursive:    recursive,
				Sort:         natsort.Mode(sortMode),
				Filter:       filter,
			})
			if err != nil {
				return err
			}

			for _, dir := range result.Skipped {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: skipped unreadable folder %s\n", dir)
			}

			if output != "" {
				if err := listfile.Write(output, result.Names); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d entries to %s\n", len(result.Names), output)
				return nil
			}

			if format == "yaml" {
				doc := yamlListing{
					Root:    root,
					Count:   len(result.Names),
					Names:   result.Names,
					Skipped: result.Skipped,
				}
				data, err := yaml.Marshal(doc)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			names := result.Names
			if limit > 0 && len(names) > limit {
				fmt.Fprintf(cmd.ErrOrStderr(), "showing %d of %d entries\n", limit, len(names))
				names = names[:limit]
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeFiles, "files", true, "include files in the listing")
	cmd.Flags().BoolVar(&includeDirs, "dirs", false, "include folders in the listing")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "recurse into subfolders")
	cmd.Flags().StringVar(&sortMode, "sort", string(natsort.Natural), "sort mode: natural or lexical")
	cmd.Flags().StringArrayVar(&ignore, "ignore", nil, "glob pattern to exclude (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the listing to this file instead of stdout")
	cmd.Flags().BoolVar(&skipOutput, "skip-output", true, "drop the output file's own name from the listing")
	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many names (0 = all)")
	cmd.Flags().StringVar(&format, "format", "text", "stdout format: text or yaml")

	return cmd
}
