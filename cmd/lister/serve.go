package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

// serveRoot is the folder the MCP tools operate under. Tool paths are
// resolved relative to it and may not escape it.
var serveRoot string

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve [folder]",
		Short: "Serve listings to MCP clients over stdio",
		Long: `serve runs a Model Context Protocol server on stdin/stdout exposing
the listing pipeline and the list comparison as tools, scoped to the
given folder (the working directory by default).`,
		Example: `lister serve ~/Downloads`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		serveRoot = args[0]
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		serveRoot = wd
	}

	abs, err := filepath.Abs(serveRoot)
	if err != nil {
		return err
	}
	serveRoot = abs

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "lister",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}
	return nil
}
