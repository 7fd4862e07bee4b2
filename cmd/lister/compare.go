package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/novafiles/lister/internal/compare"
	"github.com/novafiles/lister/internal/types"
)

func newCompareCmd() *cobra.Command {
	var (
		ignoreCase bool
		outputDir  string
	)

	cmd := &cobra.Command{
		Use:   "compare <list-a> <list-b>",
		Short: "Diff two name list files",
		Long: `compare loads two text files of names (one per line, as written by
'lister list --output'), normalizes them, and reports which names
appear only in A, only in B, and in both. With --output-dir the
three sections and the combined report are written as text files.`,
		Example: `lister compare before.txt after.txt
lister compare a.txt b.txt --ignore-case --output-dir results`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawA, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read list A: %w", err)
			}
			rawB, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read list B: %w", err)
			}

			result := compare.Lists(string(rawA), string(rawB), types.CompareOptions{
				IgnoreCase: ignoreCase,
			})

			if outputDir != "" {
				if err := compare.WriteResults(outputDir, result); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote compare results to %s\n", outputDir)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), compare.Render(result))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "fold both lists to lower case before comparing")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "write result files into this folder instead of stdout")

	return cmd
}
