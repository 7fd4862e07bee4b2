package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// ListInput contains parameters for listing a folder.
	ListInput struct {
		Path      string `json:"path,omitempty" jsonschema:"Folder relative to the served root (default: the root itself)"`
		Kind      string `json:"kind,omitempty" jsonschema:"What to list: 'files', 'dirs', or 'all' (default: files)"`
		Recursive bool   `json:"recursive,omitempty" jsonschema:"Recurse into subfolders (default: false)"`
		Sort      string `json:"sort,omitempty" jsonschema:"Sort mode: 'natural' or 'lexical' (default: natural)"`
		Limit     int    `json:"limit,omitempty" jsonschema:"Maximum number of names to return (default: all)"`
	}

	// ListOutput contains a sorted listing.
	ListOutput struct {
		Names     []string `json:"names"`
		Total     int      `json:"total"`
		Skipped   []string `json:"skipped,omitempty"`
		Truncated bool     `json:"truncated,omitempty"`
	}

	// CompareInput contains two name lists to diff.
	CompareInput struct {
		ListA      []string `json:"listA" jsonschema:"First list of names"`
		ListB      []string `json:"listB" jsonschema:"Second list of names"`
		IgnoreCase bool     `json:"ignoreCase,omitempty" jsonschema:"Fold both lists to lower case before comparing (default: false)"`
	}

	// CompareOutput contains the sections of a list comparison.
	CompareOutput struct {
		OnlyA []string `json:"onlyA"`
		OnlyB []string `json:"onlyB"`
		Both  []string `json:"both"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list",
		Description: "List file and folder names under a folder, sorted in natural numeric or case-insensitive lexicographic order. Recursive listings return root-relative paths. Unreadable subfolders are skipped and reported.",
	}, handleList)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "compare",
		Description: "Compare two name lists after trimming, de-duplicating, and sorting them. Returns the names only in A, only in B, and in both.",
	}, handleCompare)
}
