package types

type (
	// CompareResult holds the outcome of comparing two name lists.
	// All three slices are natural-sorted.
	CompareResult struct {
		OnlyA []string
		OnlyB []string
		Both  []string
	}

	// CompareOptions configures a list comparison.
	CompareOptions struct {
		// IgnoreCase folds both lists to lower case before comparing.
		IgnoreCase bool
	}
)
