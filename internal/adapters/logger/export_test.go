// export_test.go exports private functions for white-box testing.
package logger

// ErrorEntry mirrors errorEntry for assertions in the external test package.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// CollectErrorEntries exposes collectErrorEntries.
func CollectErrorEntries(err error) []ErrorEntry {
	entries := collectErrorEntries(err)
	out := make([]ErrorEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, ErrorEntry{Message: e.message, Metadata: e.metadata})
	}
	return out
}

// FormatMetadata exposes formatMetadata.
var FormatMetadata = formatMetadata
