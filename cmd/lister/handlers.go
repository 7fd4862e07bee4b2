package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/novafiles/lister/internal/compare"
	"github.com/novafiles/lister/internal/listing"
	"github.com/novafiles/lister/internal/natsort"
	"github.com/novafiles/lister/internal/types"
)

// resolveServePath joins a tool-supplied relative path onto the served
// root and rejects anything that would escape it.
func resolveServePath(relativePath string) (string, error) {
	relativePath = strings.TrimSpace(relativePath)
	relativePath = strings.TrimPrefix(relativePath, "/")

	fullPath := filepath.Join(serveRoot, relativePath)
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", err
	}

	relPath, err := filepath.Rel(serveRoot, absPath)
	if err != nil {
		return "", err
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}
	return absPath, nil
}

func handleList(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	root, err := resolveServePath(input.Path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListOutput{}, err
	}

	opts := types.ListOptions{
		Root:      root,
		Recursive: input.Recursive,
		Sort:      natsort.Mode(input.Sort),
	}
	switch input.Kind {
	case "", "files":
		opts.IncludeFiles = true
	case "dirs":
		opts.IncludeDirs = true
	case "all":
		opts.IncludeFiles = true
		opts.IncludeDirs = true
	default:
		return &mcp.CallToolResult{IsError: true}, ListOutput{},
			fmt.Errorf("invalid kind %q (use 'files', 'dirs', or 'all')", input.Kind)
	}

	result, err := listing.Collect(opts)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListOutput{}, err
	}

	names := result.Names
	total := len(names)
	truncated := false
	if input.Limit > 0 && total > input.Limit {
		names = names[:input.Limit]
		truncated = true
	}

	return nil, ListOutput{
		Names:     names,
		Total:     total,
		Skipped:   result.Skipped,
		Truncated: truncated,
	}, nil
}

func handleCompare(ctx context.Context, req *mcp.CallToolRequest, input CompareInput) (*mcp.CallToolResult, CompareOutput, error) {
	result := compare.Lists(
		strings.Join(input.ListA, "\n"),
		strings.Join(input.ListB, "\n"),
		types.CompareOptions{IgnoreCase: input.IgnoreCase},
	)

	return nil, CompareOutput{
		OnlyA: result.OnlyA,
		OnlyB: result.OnlyB,
		Both:  result.Both,
	}, nil
}
