// Package main implements the lister command line tool.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "lister",
		Short: "List, sort, and compare folder contents",
		Long: `lister collects the file and folder names under a chosen root,
sorts them in natural numeric or case-insensitive order, and prints
the listing or writes it to a plain text file, one name per line.
It can also diff two name lists and serve both operations to
MCP-compatible clients over stdio.`,
		Example: `lister list ~/Downloads --recursive --sort natural
lister list . --output filenames_sorted.txt
lister compare old.txt new.txt --output-dir results`,
	}
	root.AddCommand(newListCmd(), newCompareCmd(), newServeCmd())

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}
